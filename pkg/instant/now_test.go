// SPDX-License-Identifier: MPL-2.0

package instant

import (
	"errors"
	"math"
	"testing"
	"time"

	_ "time/tzdata"

	"github.com/tzkit/tzkit/pkg/tz"
)

func TestNowUTC(t *testing.T) {
	t.Parallel()

	before := time.Now().UTC()
	i := NowUTC()
	after := time.Now().UTC()

	if !i.Zone().IsUTC() {
		t.Fatal("NowUTC() zone is not canonical UTC")
	}
	s, err := ToEpoch(i)
	if err != nil {
		t.Fatal(err)
	}
	if s < float64(before.Unix()) || s > float64(after.Unix()+1) {
		t.Errorf("NowUTC() epoch %f outside [%d, %d]", s, before.Unix(), after.Unix()+1)
	}
}

func TestNowEpochWholeSeconds(t *testing.T) {
	t.Parallel()

	s := NowEpoch()
	if s != math.Trunc(s) {
		t.Errorf("NowEpoch() = %f, want whole-second resolution", s)
	}
}

func TestNowRejectsNonUTC(t *testing.T) {
	t.Parallel()

	z, err := tz.Resolve("Europe/Rome")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Now(z); !errors.Is(err, ErrNonUTCNow) {
		t.Errorf("Now(Europe/Rome) error = %v, want ErrNonUTCNow", err)
	}
	if _, err := Now(tz.UTC); err != nil {
		t.Errorf("Now(UTC) error = %v", err)
	}
}
