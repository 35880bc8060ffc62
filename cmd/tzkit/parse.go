// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"strconv"

	"github.com/tzkit/tzkit/pkg/instant"
	"github.com/tzkit/tzkit/pkg/iso8601"

	"github.com/spf13/cobra"
)

var (
	parseZone     string
	parseEpochOut bool

	parseCmd = &cobra.Command{
		Use:   "parse <timestamp>",
		Short: "Parse an ISO-8601 timestamp and print its canonical form",
		Long: `Parse an ISO-8601 timestamp and print its canonical form.

Inputs carrying "Z" or a numeric offset name a physical instant on their
own. Inputs without one are naive: with --zone they are localized onto
that zone (failing on ambiguous or nonexistent wall-clock times), without
it they stay naive and cannot be rendered as epoch seconds.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zone, err := zoneFromFlag(parseZone)
			if err != nil {
				return reportErr(err)
			}

			i, err := iso8601.ParseInZone(args[0], zone, constructOpts()...)
			if err != nil {
				return reportErr(err)
			}

			if parseEpochOut {
				s, err := instant.ToEpoch(i)
				if err != nil {
					return reportErr(err)
				}
				fmt.Println(formatEpoch(s))
				return nil
			}

			printInstant(i)
			return nil
		},
	}
)

func init() {
	parseCmd.Flags().StringVar(&parseZone, "zone", "", "IANA zone to localize or re-project onto (e.g. Europe/Rome)")
	parseCmd.Flags().BoolVar(&parseEpochOut, "epoch", false, "print epoch seconds instead of the canonical form")
}

// printInstant prints the canonical form, plus zone details in verbose mode.
func printInstant(i instant.Instant) {
	fmt.Println(iso8601.Format(i))

	if !verbose {
		return
	}
	if i.IsNaive() {
		fmt.Println(VerboseStyle.Render("zone:   none (naive)"))
		return
	}
	fmt.Println(VerboseStyle.Render("zone:   ") + ValueStyle.Render(i.Zone().String()))
	fmt.Println(VerboseStyle.Render("offset: ") + ValueStyle.Render(i.OffsetString()))
	if s, err := instant.ToEpoch(i); err == nil {
		fmt.Println(VerboseStyle.Render("epoch:  ") + ValueStyle.Render(formatEpoch(s)))
	}
}

// formatEpoch renders epoch seconds without trailing zeros ("1685613600",
// "1685613600.5").
func formatEpoch(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}
