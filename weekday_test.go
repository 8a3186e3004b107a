package cctz

import (
	"fmt"
	"testing"
)

func ExampleCivil_Weekday() {
	fmt.Println(NewCivilDay(1970, 1, 1).Weekday())
	// Output: thursday
}

func ExampleNextWeekday() {
	thu := NewCivilDay(1970, 1, 1)
	fmt.Println(NextWeekday(thu, Monday))
	// Output: 1970-01-05
}

func TestWeekday_fixtures(t *testing.T) {
	for _, tc := range []struct {
		cd   CivilDay
		want Weekday
	}{
		{NewCivilDay(1970, 1, 1), Thursday},
		{NewCivilDay(2000, 1, 1), Saturday},
		{NewCivilDay(2001, 1, 1), Monday},
		{NewCivilDay(2016, 2, 29), Monday},
		{NewCivilDay(1969, 12, 31), Wednesday},
	} {
		if wd := tc.cd.Weekday(); wd != tc.want {
			t.Fatalf("%s failed [weekday of %s]: want %s, got %s",
				t.Name(), tc.cd, tc.want, wd)
		}
	}

	// The derivation reads the same through any unit.
	cs := NewCivilSecond(1970, 1, 1, 23, 59, 59)
	if wd := cs.Weekday(); wd != Thursday {
		t.Fatalf("%s failed [weekday via second]: got %s", t.Name(), wd)
	}
}

func TestWeekday_sevenDayCycle(t *testing.T) {
	cd := NewCivilDay(2016, 1, 1)
	base := cd.Weekday()
	for n := int64(1); n <= 14; n++ {
		got := cd.Add(n).Weekday()
		want := weekdaysForward[(int64(base)+n%7)%7]
		if got != want {
			t.Fatalf("%s failed [cycle at +%d]: want %s, got %s",
				t.Name(), n, want, got)
		}
	}
}

func TestWeekday_String(t *testing.T) {
	names := []string{"monday", "tuesday", "wednesday", "thursday",
		"friday", "saturday", "sunday"}
	for wd := Monday; wd <= Sunday; wd++ {
		if wd.String() != names[wd] {
			t.Fatalf("%s failed [name of %d]: got %s",
				t.Name(), int(wd), wd.String())
		}
	}
	if s := Weekday(9).String(); s != "weekday(9)" {
		t.Fatalf("%s failed [out of range]: got %s", t.Name(), s)
	}
}

func TestYearDay(t *testing.T) {
	for _, tc := range []struct {
		cd   CivilDay
		want int
	}{
		{NewCivilDay(1970, 1, 1), 1},
		{NewCivilDay(2000, 12, 31), 366},
		{NewCivilDay(2001, 12, 31), 365},
		{NewCivilDay(2016, 3, 1), 61},
		{NewCivilDay(2015, 3, 1), 60},
		{NewCivilDay(1900, 12, 31), 365},
	} {
		if yd := tc.cd.YearDay(); yd != tc.want {
			t.Fatalf("%s failed [yearday of %s]: want %d, got %d",
				t.Name(), tc.cd, tc.want, yd)
		}
	}
}

func TestNextPrevWeekday(t *testing.T) {
	thu := NewCivilDay(1970, 1, 1)

	if got := NextWeekday(thu, Friday); got != NewCivilDay(1970, 1, 2) {
		t.Fatalf("%s failed [next friday]: got %s", t.Name(), got)
	}
	// Same weekday lands a full week out, never the same day.
	if got := NextWeekday(thu, Thursday); got != NewCivilDay(1970, 1, 8) {
		t.Fatalf("%s failed [next thursday]: got %s", t.Name(), got)
	}
	if got := PrevWeekday(thu, Thursday); got != NewCivilDay(1969, 12, 25) {
		t.Fatalf("%s failed [prev thursday]: got %s", t.Name(), got)
	}
	if got := PrevWeekday(thu, Friday); got != NewCivilDay(1969, 12, 26) {
		t.Fatalf("%s failed [prev friday]: got %s", t.Name(), got)
	}
}

func TestNextPrevWeekday_window(t *testing.T) {
	// next is always within (d, d+7]; prev within [d-7, d).
	for off := int64(0); off < 14; off++ {
		cd := NewCivilDay(2016, 2, 20).Add(off)
		for wd := Monday; wd <= Sunday; wd++ {
			next := NextWeekday(cd, wd)
			if n := next.Since(cd); n < 1 || n > 7 {
				t.Fatalf("%s failed [next window]: %s -> %s (%d)",
					t.Name(), cd, next, n)
			}
			if next.Weekday() != wd {
				t.Fatalf("%s failed [next weekday]: %s -> %s",
					t.Name(), cd, next)
			}
			prev := PrevWeekday(cd, wd)
			if n := prev.Since(cd); n < -7 || n > -1 {
				t.Fatalf("%s failed [prev window]: %s -> %s (%d)",
					t.Name(), cd, prev, n)
			}
			if prev.Weekday() != wd {
				t.Fatalf("%s failed [prev weekday]: %s -> %s",
					t.Name(), cd, prev)
			}
		}
	}
}
