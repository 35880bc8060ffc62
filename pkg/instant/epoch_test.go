// SPDX-License-Identifier: MPL-2.0

package instant

import (
	"testing"

	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzkit/tzkit/pkg/tz"
)

func TestEpochRoundTripUTC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    Fields
	}{
		{name: "plain", f: Fields{Year: 2023, Month: 6, Day: 1, Hour: 10}},
		{name: "with microseconds", f: Fields{Year: 2023, Month: 6, Day: 1, Hour: 10, Microsecond: 500000}},
		{name: "single microsecond", f: Fields{Year: 2023, Month: 6, Day: 1, Hour: 10, Microsecond: 1}},
		{name: "before epoch", f: Fields{Year: 1969, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59}},
		{name: "epoch zero", f: Fields{Year: 1970, Month: 1, Day: 1}},
		{name: "leap day", f: Fields{Year: 2024, Month: 2, Day: 29, Hour: 12, Second: 7, Microsecond: 123456}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			z, err := Construct(tt.f, WithZone(tz.UTC))
			require.NoError(t, err)
			s, err := ToEpoch(z)
			require.NoError(t, err)
			assert.Equal(t, z, FromEpoch(s, tz.UTC))
		})
	}
}

func TestEpochRoundTripNamedZone(t *testing.T) {
	t.Parallel()

	z := rome(t)
	f := Fields{Year: 2023, Month: 6, Day: 1, Hour: 10, Minute: 30, Second: 15, Microsecond: 250000}

	i, err := Construct(f, WithZone(z))
	require.NoError(t, err)
	s, err := ToEpoch(i)
	require.NoError(t, err)

	back := FromEpoch(s, z)
	assert.Equal(t, f, back.Fields())
	assert.Equal(t, i, back)
}

func TestEpochKnownValues(t *testing.T) {
	t.Parallel()

	i, err := Construct(Fields{Year: 2023, Month: 6, Day: 1, Hour: 10}, WithZone(tz.UTC))
	require.NoError(t, err)
	s, err := ToEpoch(i)
	require.NoError(t, err)
	assert.Equal(t, float64(1685613600), s)

	// The same wall clock two hours east of UTC is two hours earlier on the
	// absolute timeline.
	i, err = Construct(Fields{Year: 2023, Month: 6, Day: 1, Hour: 10}, WithOffset(7200))
	require.NoError(t, err)
	s, err = ToEpoch(i)
	require.NoError(t, err)
	assert.Equal(t, float64(1685613600-7200), s)
}

func TestFromEpochProjectsOntoZone(t *testing.T) {
	t.Parallel()

	tokyo, err := tz.Resolve("Asia/Tokyo")
	require.NoError(t, err)

	i := FromEpoch(1685613600.5, tokyo)
	assert.Equal(t, Fields{Year: 2023, Month: 6, Day: 1, Hour: 19, Microsecond: 500000}, i.Fields())
	assert.Equal(t, "Asia/Tokyo", i.Zone().String())

	// The naive marker defaults to UTC.
	i = FromEpoch(0, tz.Zone{})
	assert.Equal(t, Fields{Year: 1970, Month: 1, Day: 1}, i.Fields())
	assert.True(t, i.Zone().IsUTC())
}

func TestFromEpochNegativeFraction(t *testing.T) {
	t.Parallel()

	// -0.5 s before the epoch is 1969-12-31 23:59:59.500000.
	i := FromEpoch(-0.5, tz.UTC)
	assert.Equal(t, Fields{Year: 1969, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59, Microsecond: 500000}, i.Fields())
}

func TestToEpochIn(t *testing.T) {
	t.Parallel()

	naive, err := Construct(Fields{Year: 2023, Month: 6, Day: 1, Hour: 10})
	require.NoError(t, err)

	// Without an override a naive instant has no epoch representation.
	_, err = ToEpoch(naive)
	assert.ErrorIs(t, err, ErrNaiveConversion)

	// The override localizes the fields before converting.
	s, err := ToEpochIn(naive, tz.UTC)
	require.NoError(t, err)
	assert.Equal(t, float64(1685613600), s)

	s, err = ToEpochIn(naive, rome(t))
	require.NoError(t, err)
	assert.Equal(t, float64(1685613600-7200), s)
}

func TestEpochValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   any
		want    float64
		wantErr bool
	}{
		{name: "float64", value: 1685613600.5, want: 1685613600.5},
		{name: "int", value: 1685613600, want: 1685613600},
		{name: "int64", value: int64(-3600), want: -3600},
		{name: "uint32", value: uint32(42), want: 42},
		{name: "numeric string", value: "1685613600.25", want: 1685613600.25},
		{name: "non numeric string", value: "half past ten", wantErr: true},
		{name: "nil", value: nil, wantErr: true},
		{name: "bool", value: true, wantErr: true},
		{name: "struct", value: struct{}{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := EpochValue(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrTypeMismatch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
