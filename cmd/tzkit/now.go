// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/tzkit/tzkit/pkg/instant"

	"github.com/spf13/cobra"
)

var (
	nowEpochOut bool

	nowCmd = &cobra.Command{
		Use:   "now",
		Short: "Print the current time on UTC",
		Long: `Print the current time on UTC.

The current time is only ever reported on UTC: "now" on a DST-observing
zone invites the same wall-clock traps the rest of the tool exists to
catch. Use "tzkit convert" to project an epoch onto another zone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if nowEpochOut {
				fmt.Println(formatEpoch(instant.NowEpoch()))
				return nil
			}
			printInstant(instant.NowUTC())
			return nil
		},
	}
)

func init() {
	nowCmd.Flags().BoolVar(&nowEpochOut, "epoch", false, "print whole epoch seconds instead of a timestamp")
}
