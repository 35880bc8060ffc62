// SPDX-License-Identifier: MPL-2.0

// Command tzkit parses, converts, and checks timestamps without papering
// over daylight-saving-time transitions.
package main

import (
	// Bundle the IANA database so zone resolution works on hosts
	// without a system copy (notably Windows).
	_ "time/tzdata"
)

func main() {
	Execute()
}
