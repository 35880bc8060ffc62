// SPDX-License-Identifier: MPL-2.0

package iso8601

import (
	"testing"

	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzkit/tzkit/pkg/instant"
	"github.com/tzkit/tzkit/pkg/tz"
)

func TestParseFormatRoundTrip(t *testing.T) {
	t.Parallel()

	// One representative literal per supported grammar form.
	tests := []struct {
		name  string
		input string
	}{
		{name: "utc", input: "2023-06-01T10:00:00Z"},
		{name: "utc fractional", input: "2023-06-01T10:00:00.500000Z"},
		{name: "positive offset", input: "2023-06-01T10:00:00+02:00"},
		{name: "negative offset fractional", input: "2023-06-01T10:00:00.500000-05:00"},
		{name: "naive", input: "2023-06-01T10:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			i, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.input, Format(i))
		})
	}
}

func TestParseSpaceSeparator(t *testing.T) {
	t.Parallel()

	i, err := Parse("2023-06-01 10:00:00Z")
	require.NoError(t, err)
	// The canonical rendering uses T.
	assert.Equal(t, "2023-06-01T10:00:00Z", Format(i))
}

func TestParseComponents(t *testing.T) {
	t.Parallel()

	i, err := Parse("2023-06-01T10:30:15.250000+05:30")
	require.NoError(t, err)
	assert.Equal(t, instant.Fields{
		Year: 2023, Month: 6, Day: 1,
		Hour: 10, Minute: 30, Second: 15,
		Microsecond: 250000,
	}, i.Fields())
	off, err := instant.TZOffsetSeconds(i)
	require.NoError(t, err)
	assert.Equal(t, 19800, off)

	i, err = Parse("2023-06-01T10:00:00-05:00")
	require.NoError(t, err)
	off, err = instant.TZOffsetSeconds(i)
	require.NoError(t, err)
	assert.Equal(t, -18000, off)
}

func TestParseShortFractionScales(t *testing.T) {
	t.Parallel()

	tests := []struct {
		fraction string
		usec     int
	}{
		{fraction: "5", usec: 500000},
		{fraction: "25", usec: 250000},
		{fraction: "123456", usec: 123456},
		{fraction: "000001", usec: 1},
	}

	for _, tt := range tests {
		i, err := Parse("2023-06-01T10:00:00." + tt.fraction + "Z")
		require.NoError(t, err)
		assert.Equal(t, tt.usec, i.Fields().Microsecond, "fraction %q", tt.fraction)
	}
}

func TestParseZTagsUTC(t *testing.T) {
	t.Parallel()

	i, err := Parse("2023-06-01T10:00:00Z")
	require.NoError(t, err)
	assert.True(t, i.Zone().IsUTC())

	s, err := instant.ToEpoch(i)
	require.NoError(t, err)
	assert.Equal(t, float64(1685613600), s)
}

func TestParseNaiveForm(t *testing.T) {
	t.Parallel()

	i, err := Parse("2023-06-01T10:00:00")
	require.NoError(t, err)
	assert.True(t, i.IsNaive())

	_, err = instant.ToEpoch(i)
	assert.ErrorIs(t, err, instant.ErrNaiveConversion)
}

func TestParseInZone(t *testing.T) {
	t.Parallel()

	rome, err := tz.Resolve("Europe/Rome")
	require.NoError(t, err)

	// A naive-form string is localized onto the zone.
	i, err := ParseInZone("2023-06-01T10:00:00", rome)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Rome", i.Zone().String())
	s, err := instant.ToEpoch(i)
	require.NoError(t, err)
	assert.Equal(t, float64(1685613600-7200), s)

	// The factory's checks apply to the localized result.
	_, err = ParseInZone("2021-10-31T02:30:00", rome)
	assert.ErrorIs(t, err, instant.ErrAmbiguousTime)
	_, err = ParseInZone("2021-03-28T02:30:00", rome)
	assert.ErrorIs(t, err, instant.ErrNonexistentTime)

	// An offset-form string is re-projected onto the zone.
	i, err = ParseInZone("2023-06-01T10:00:00Z", rome)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Rome", i.Zone().String())
	assert.Equal(t, 12, i.Fields().Hour)
}

func TestParseMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "slash date separator", input: "2023/06/01 10:00:00"},
		{name: "no separator", input: "2023-06-01"},
		{name: "missing seconds", input: "2023-06-01T10:00"},
		{name: "non numeric component", input: "2023-06-01T10:xx:00"},
		{name: "offset without colon", input: "2023-06-01T10:00:00+0200"},
		{name: "fraction too long", input: "2023-06-01T10:00:00.1234567Z"},
		{name: "empty", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedString)

			var mse *MalformedStringError
			require.ErrorAs(t, err, &mse)
			assert.Equal(t, tt.input, mse.Input)
		})
	}
}

func TestParseInvalidFieldsSurface(t *testing.T) {
	t.Parallel()

	// Grammar-valid but calendar-invalid input fails in the factory, not the
	// grammar.
	_, err := Parse("2023-02-30T10:00:00Z")
	assert.ErrorIs(t, err, instant.ErrInvalidFields)
}

func TestFormatSuppressesZeroMicroseconds(t *testing.T) {
	t.Parallel()

	i, err := instant.Construct(instant.Fields{Year: 2023, Month: 6, Day: 1, Hour: 10}, instant.WithZone(tz.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2023-06-01T10:00:00Z", Format(i))

	i, err = instant.Construct(instant.Fields{Year: 2023, Month: 6, Day: 1, Hour: 10, Microsecond: 7}, instant.WithZone(tz.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2023-06-01T10:00:00.000007Z", Format(i))
}

func TestFormatNamedZoneUsesNumericOffset(t *testing.T) {
	t.Parallel()

	rome, err := tz.Resolve("Europe/Rome")
	require.NoError(t, err)

	i, err := instant.Construct(instant.Fields{Year: 2023, Month: 6, Day: 1, Hour: 10}, instant.WithZone(rome))
	require.NoError(t, err)
	assert.Equal(t, "2023-06-01T10:00:00+02:00", Format(i))
}
