// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/tzkit/tzkit/pkg/instant"
	"github.com/tzkit/tzkit/pkg/iso8601"

	"github.com/spf13/cobra"
)

// checkVerdict is the outcome of probing a wall-clock time against a zone.
type checkVerdict int

const (
	checkValid checkVerdict = iota
	checkAmbiguous
	checkNonexistent
)

// Exit codes for scripted use of `tzkit check`.
const (
	exitAmbiguous   = 2
	exitNonexistent = 3
)

var (
	checkZone string

	checkCmd = &cobra.Command{
		Use:   "check <timestamp>",
		Short: "Check a wall-clock time for DST ambiguity or nonexistence",
		Long: `Check a wall-clock time for DST ambiguity or nonexistence.

The timestamp is probed against --zone (or the configured default_zone):

  valid        exit 0  the time names exactly one instant
  ambiguous    exit 2  the time occurs twice (fall-back fold)
  nonexistent  exit 3  the time never occurs (spring-forward gap)

Timestamps carrying "Z" or a numeric offset already name one instant and
are always valid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zone, err := zoneOrDefault(checkZone)
			if err != nil {
				return reportErr(err)
			}

			// Checks are skipped at construction so the probe itself decides.
			i, err := iso8601.ParseInZone(args[0], zone, instant.SkipChecks())
			if err != nil {
				return reportErr(err)
			}

			// An input carrying Z or a numeric offset names one instant on
			// its own; the fold and gap probes only apply to naive inputs.
			if own, err := iso8601.Parse(args[0]); err == nil && !own.IsNaive() {
				fmt.Println(SuccessStyle.Render("valid") + "        " + ValueStyle.Render(iso8601.Format(i)))
				return nil
			}

			switch classifyInstant(i) {
			case checkAmbiguous:
				fmt.Println(WarningStyle.Render("ambiguous") + "    " + ValueStyle.Render(i.Fields().String()) + " occurs twice on " + ValueStyle.Render(i.Zone().String()))
				return &ExitError{Code: exitAmbiguous, Err: &instant.AmbiguousTimeError{Fields: i.Fields(), Zone: i.Zone()}}
			case checkNonexistent:
				fmt.Println(ErrorStyle.Render("nonexistent") + "  " + ValueStyle.Render(i.Fields().String()) + " is skipped by a transition on " + ValueStyle.Render(i.Zone().String()))
				return &ExitError{Code: exitNonexistent, Err: &instant.NonexistentTimeError{Fields: i.Fields(), Zone: i.Zone()}}
			default:
				fmt.Println(SuccessStyle.Render("valid") + "        " + ValueStyle.Render(iso8601.Format(i)))
				return nil
			}
		},
	}
)

func init() {
	checkCmd.Flags().StringVar(&checkZone, "zone", "", "IANA zone to probe against (default: configured default_zone)")
}

// classifyInstant decides the verdict for an instant built with checks
// skipped. The ambiguity probe runs first: a fold time round-trips
// consistently on whichever side was picked, so the order matters.
func classifyInstant(i instant.Instant) checkVerdict {
	switch {
	case instant.IsAmbiguousWithoutOffset(i):
		return checkAmbiguous
	case instant.IsInconsistent(i):
		return checkNonexistent
	default:
		return checkValid
	}
}
