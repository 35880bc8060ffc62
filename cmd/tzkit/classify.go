// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tzkit/tzkit/internal/config"
	"github.com/tzkit/tzkit/internal/issue"
	"github.com/tzkit/tzkit/pkg/instant"
	"github.com/tzkit/tzkit/pkg/iso8601"
	"github.com/tzkit/tzkit/pkg/tz"
)

// issueFor maps a library error to its catalog entry, or 0 when no guidance
// exists for it.
func issueFor(err error) issue.Id {
	switch {
	case errors.Is(err, tz.ErrUnknownZone):
		return issue.UnknownZoneId
	case errors.Is(err, instant.ErrAmbiguousTime):
		return issue.AmbiguousTimeId
	case errors.Is(err, instant.ErrNonexistentTime):
		return issue.NonexistentTimeId
	case errors.Is(err, iso8601.ErrMalformedString):
		return issue.MalformedTimestampId
	case errors.Is(err, instant.ErrNaiveConversion),
		errors.Is(err, instant.ErrNaiveProjection):
		return issue.NaiveTimestampId
	case errors.Is(err, instant.ErrTypeMismatch):
		return issue.InvalidEpochId
	case errors.Is(err, config.ErrInvalidConfig),
		errors.Is(err, config.ErrUnknownOption):
		return issue.ConfigLoadFailedId
	}
	return 0
}

// reportErr prints remediation guidance for known failures and passes the
// error back so fang can render it. A nil error passes through untouched.
func reportErr(err error) error {
	if err == nil {
		return nil
	}
	if id := issueFor(err); id != 0 {
		if styled, rerr := issue.Get(id).Render(glamourStyle()); rerr == nil {
			fmt.Fprint(os.Stderr, styled)
		}
	}
	return err
}

// glamourStyle maps the configured color scheme to a glamour style name.
func glamourStyle() string {
	if loadedCfg.ColorScheme == config.ColorSchemeLight {
		return "light"
	}
	return "dark"
}
