// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/tzkit/tzkit/pkg/instant"
	"github.com/tzkit/tzkit/pkg/iso8601"
	"github.com/tzkit/tzkit/pkg/tz"

	"github.com/spf13/cobra"
)

var (
	convertZone string

	convertCmd = &cobra.Command{
		Use:   "convert <epoch-seconds | timestamp>",
		Short: "Convert between epoch seconds and ISO-8601 timestamps",
		Long: `Convert between epoch seconds and ISO-8601 timestamps.

Numeric arguments are epoch seconds (fractional and negative values
accepted; use "--" before a negative value) and convert to a timestamp
on --zone. Anything else is parsed as a timestamp and converts to epoch
seconds; naive inputs are localized onto --zone first.

When --zone is absent the configured default_zone is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zone, err := zoneOrDefault(convertZone)
			if err != nil {
				return reportErr(err)
			}

			out, err := convertValue(args[0], zone, constructOpts())
			if err != nil {
				return reportErr(err)
			}
			fmt.Println(out)
			return nil
		},
	}
)

func init() {
	convertCmd.Flags().StringVar(&convertZone, "zone", "", "IANA zone for the converted value (default: configured default_zone)")
}

// convertValue converts in whichever direction the argument calls for:
// epoch seconds render as a timestamp on zone, timestamps render as epoch
// seconds.
func convertValue(arg string, zone tz.Zone, opts []instant.Option) (string, error) {
	if s, err := instant.EpochValue(arg); err == nil {
		return iso8601.Format(instant.FromEpoch(s, zone)), nil
	}

	i, err := iso8601.ParseInZone(arg, zone, opts...)
	if err != nil {
		return "", err
	}
	s, err := instant.ToEpoch(i)
	if err != nil {
		return "", err
	}
	return formatEpoch(s), nil
}
