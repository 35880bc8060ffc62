// SPDX-License-Identifier: MPL-2.0

package tz

import (
	"errors"
	"testing"
	"time"

	_ "time/tzdata"
)

func TestResolveKnownZones(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		zone string
	}{
		{name: "europe", zone: "Europe/Rome"},
		{name: "america", zone: "America/New_York"},
		{name: "asia", zone: "Asia/Tokyo"},
		{name: "utc", zone: "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			z, err := Resolve(tt.zone)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.zone, err)
			}
			if z.Kind() != Named {
				t.Errorf("Resolve(%q).Kind() = %v, want Named", tt.zone, z.Kind())
			}
			if z.Location() == nil {
				t.Errorf("Resolve(%q).Location() is nil", tt.zone)
			}
			if z.String() != tt.zone {
				t.Errorf("Resolve(%q).String() = %q", tt.zone, z.String())
			}
		})
	}
}

func TestResolveUnknownZone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		zone string
	}{
		{name: "misspelled", zone: "Europe/Romee"},
		{name: "empty", zone: ""},
		{name: "local rejected", zone: "Local"},
		{name: "garbage", zone: "Not/AZone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Resolve(tt.zone)
			if err == nil {
				t.Fatalf("Resolve(%q) succeeded, want error", tt.zone)
			}
			if !errors.Is(err, ErrUnknownZone) {
				t.Errorf("error does not wrap ErrUnknownZone: %v", err)
			}
			var uze *UnknownZoneError
			if !errors.As(err, &uze) {
				t.Fatalf("error is not *UnknownZoneError: %v", err)
			}
			if uze.Name != tt.zone {
				t.Errorf("UnknownZoneError.Name = %q, want %q", uze.Name, tt.zone)
			}
		})
	}
}

func TestResolveCachesHandles(t *testing.T) {
	t.Parallel()

	first, err := Resolve("Europe/Paris")
	if err != nil {
		t.Fatal(err)
	}
	second, err := Resolve("Europe/Paris")
	if err != nil {
		t.Fatal(err)
	}
	if first.Location() != second.Location() {
		t.Error("repeated resolutions returned different *time.Location handles")
	}
}

func TestUTCCanonicalIdentity(t *testing.T) {
	t.Parallel()

	z, err := Resolve("UTC")
	if err != nil {
		t.Fatal(err)
	}
	if z.Location() != time.UTC {
		t.Error("Resolve(\"UTC\") is not backed by time.UTC")
	}
	if !z.IsUTC() {
		t.Error("Resolve(\"UTC\").IsUTC() = false")
	}
	if !UTC.IsUTC() {
		t.Error("UTC.IsUTC() = false")
	}
	if FixedOffset(0).IsUTC() {
		t.Error("FixedOffset(0).IsUTC() = true, want identity-based comparison to fail")
	}
}

func TestFixedOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		seconds int
		label   string
	}{
		{name: "positive", seconds: 7200, label: "UTC+02:00"},
		{name: "negative", seconds: -18000, label: "UTC-05:00"},
		{name: "half hour", seconds: 19800, label: "UTC+05:30"},
		{name: "zero", seconds: 0, label: "UTC+00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			z := FixedOffset(tt.seconds)
			if z.Kind() != Fixed {
				t.Errorf("Kind() = %v, want Fixed", z.Kind())
			}
			got, ok := z.FixedOffsetSeconds()
			if !ok || got != tt.seconds {
				t.Errorf("FixedOffsetSeconds() = %d, %v, want %d, true", got, ok, tt.seconds)
			}
			if z.String() != tt.label {
				t.Errorf("String() = %q, want %q", z.String(), tt.label)
			}
		})
	}
}

func TestNaiveZeroValue(t *testing.T) {
	t.Parallel()

	var z Zone
	if !z.IsNaive() {
		t.Error("zero Zone is not naive")
	}
	if z.Location() != nil {
		t.Error("naive zone has a location")
	}
	if z.String() != "naive" {
		t.Errorf("String() = %q, want \"naive\"", z.String())
	}
	if _, ok := z.FixedOffsetSeconds(); ok {
		t.Error("naive zone reports a fixed offset")
	}
}
