// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"testing"

	"github.com/tzkit/tzkit/pkg/instant"
	"github.com/tzkit/tzkit/pkg/tz"
)

func TestConvertValue(t *testing.T) {
	rome, err := tz.Resolve("Europe/Rome")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		arg  string
		zone tz.Zone
		want string
	}{
		{name: "epoch to UTC", arg: "1685613600", zone: tz.UTC, want: "2023-06-01T10:00:00Z"},
		{name: "fractional epoch", arg: "1685613600.5", zone: tz.UTC, want: "2023-06-01T10:00:00.500000Z"},
		{name: "negative epoch", arg: "-3600", zone: tz.UTC, want: "1969-12-31T23:00:00Z"},
		{name: "epoch onto named zone", arg: "1685613600", zone: rome, want: "2023-06-01T12:00:00+02:00"},
		{name: "zoned timestamp to epoch", arg: "2023-06-01T10:00:00Z", zone: tz.UTC, want: "1685613600"},
		{name: "offset timestamp to epoch", arg: "2023-06-01T12:00:00+02:00", zone: tz.UTC, want: "1685613600"},
		{name: "naive timestamp localized", arg: "2023-06-01T12:00:00", zone: rome, want: "1685613600"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := convertValue(tt.arg, tt.zone, nil)
			if err != nil {
				t.Fatalf("convertValue(%q) error = %v", tt.arg, err)
			}
			if got != tt.want {
				t.Errorf("convertValue(%q) = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}

func TestConvertValueErrors(t *testing.T) {
	rome, err := tz.Resolve("Europe/Rome")
	if err != nil {
		t.Fatal(err)
	}

	t.Run("malformed input", func(t *testing.T) {
		if _, err := convertValue("not-a-time", rome, nil); err == nil {
			t.Error("convertValue accepted garbage")
		}
	})

	t.Run("naive without a zone", func(t *testing.T) {
		_, err := convertValue("2023-06-01T12:00:00", tz.Zone{}, nil)
		if !errors.Is(err, instant.ErrNaiveConversion) {
			t.Errorf("error = %v, want ErrNaiveConversion", err)
		}
	})

	t.Run("ambiguous without guessing", func(t *testing.T) {
		_, err := convertValue("2021-10-31T02:30:00", rome, nil)
		if !errors.Is(err, instant.ErrAmbiguousTime) {
			t.Errorf("error = %v, want ErrAmbiguousTime", err)
		}
	})

	t.Run("ambiguous with guessing", func(t *testing.T) {
		opts := []instant.Option{instant.AllowGuess(), instant.WithWarner(discardWarner{})}
		got, err := convertValue("2021-10-31T02:30:00", rome, opts)
		if err != nil {
			t.Fatalf("convertValue with AllowGuess error = %v", err)
		}
		if got != "1635640200" && got != "1635643800" {
			t.Errorf("guessed epoch = %s, want one side of the fold", got)
		}
	})
}

type discardWarner struct{}

func (discardWarner) Warnf(format string, args ...any) {}
