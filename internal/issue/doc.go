// SPDX-License-Identifier: EPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// This package defines a catalog of known failure conditions with
// Markdown-formatted remediation guidance, improving the user experience when
// datetime construction or parsing fails during CLI operations. DST failures
// in particular confuse users ("that time is on my calendar, why is it
// invalid?"), so each catalog entry explains the underlying transition
// mechanics and links to reference material.
package issue
