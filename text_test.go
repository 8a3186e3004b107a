package cctz

import (
	"fmt"
	"testing"
)

func ExampleCivil_String() {
	fmt.Println(NewCivilSecond(2015, 6, 28, 1, 2, 3))
	fmt.Println(NewCivilHour(2015, 6, 28, 1))
	fmt.Println(NewCivilMonth(2015, 6))
	fmt.Println(NewCivilYear(2015))
	// Output:
	// 2015-06-28T01:02:03
	// 2015-06-28T01
	// 2015-06
	// 2015
}

func ExampleParseCivilDay() {
	cd, err := ParseCivilDay("2016-02-30")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(cd)
	// Output: 2016-03-01
}

func TestString_perUnit(t *testing.T) {
	for _, tc := range []struct {
		got, want string
	}{
		{NewCivilYear(2016).String(), "2016"},
		{NewCivilMonth(2016, 2).String(), "2016-02"},
		{NewCivilDay(2016, 2, 9).String(), "2016-02-09"},
		{NewCivilHour(2016, 2, 9, 7).String(), "2016-02-09T07"},
		{NewCivilMinute(2016, 2, 9, 7, 5).String(), "2016-02-09T07:05"},
		{NewCivilSecond(2016, 2, 9, 7, 5, 3).String(), "2016-02-09T07:05:03"},
	} {
		if tc.got != tc.want {
			t.Fatalf("%s failed [rendering]: want %s, got %s",
				t.Name(), tc.want, tc.got)
		}
	}
}

func TestString_yearPadding(t *testing.T) {
	for _, tc := range []struct {
		y    int64
		want string
	}{
		{7, "0007"},
		{-5, "-0005"},
		{999, "0999"},
		{12345, "12345"},
		{-292277022657, "-292277022657"},
	} {
		if s := NewCivilYear(tc.y).String(); s != tc.want {
			t.Fatalf("%s failed [year padding]: want %s, got %s",
				t.Name(), tc.want, s)
		}
	}
}

func TestParse_roundTrip(t *testing.T) {
	cs := NewCivilSecond(2016, 2, 29, 12, 30, 45)
	if got, err := ParseCivilSecond(cs.String()); err != nil || got != cs {
		t.Fatalf("%s failed [second round trip]: got %s (%v)",
			t.Name(), got, err)
	}

	cm := NewCivilMinute(-44, 3, 15, 12, 30)
	if got, err := ParseCivilMinute(cm.String()); err != nil || got != cm {
		t.Fatalf("%s failed [minute round trip]: got %s (%v)",
			t.Name(), got, err)
	}

	ch := NewCivilHour(2016, 2, 29, 23)
	if got, err := ParseCivilHour(ch.String()); err != nil || got != ch {
		t.Fatalf("%s failed [hour round trip]: got %s (%v)",
			t.Name(), got, err)
	}

	cd := NewCivilDay(-4, 2, 29)
	if got, err := ParseCivilDay(cd.String()); err != nil || got != cd {
		t.Fatalf("%s failed [day round trip]: got %s (%v)",
			t.Name(), got, err)
	}

	cmo := NewCivilMonth(987654, 12)
	if got, err := ParseCivilMonth(cmo.String()); err != nil || got != cmo {
		t.Fatalf("%s failed [month round trip]: got %s (%v)",
			t.Name(), got, err)
	}

	cy := NewCivilYear(0)
	if got, err := ParseCivilYear(cy.String()); err != nil || got != cy {
		t.Fatalf("%s failed [year round trip]: got %s (%v)",
			t.Name(), got, err)
	}
}

func TestParse_normalizes(t *testing.T) {
	cd, err := ParseCivilDay("2016-02-30")
	if err != nil {
		t.Fatalf("%s failed [parse]: %v", t.Name(), err)
	}
	if cd != NewCivilDay(2016, 3, 1) {
		t.Fatalf("%s failed [parse normalization]: got %s", t.Name(), cd)
	}

	cs, err := ParseCivilSecond("2015-12-31T23:59:99")
	if err != nil {
		t.Fatalf("%s failed [parse]: %v", t.Name(), err)
	}
	if cs != NewCivilSecond(2016, 1, 1, 0, 0, 39) {
		t.Fatalf("%s failed [parse normalization]: got %s", t.Name(), cs)
	}
}

func TestParse_rejects(t *testing.T) {
	for _, s := range []string{
		"",
		"216",              // year too short
		"2016-2-30",        // one-digit month
		"2016-02-30x",      // trailing bytes
		"2016/02/30",       // wrong separators
		"2016-02",          // layout of a coarser unit
		"2016-02-30T00:00", // layout of a finer unit
	} {
		if _, err := ParseCivilDay(s); err == nil {
			t.Fatalf("%s failed [rejection of %q]", t.Name(), s)
		}
	}

	if _, err := ParseCivilYear("9223372036854775808"); err != errorCivilYear {
		t.Fatalf("%s failed [year overflow]: got %v", t.Name(), err)
	}

	if _, err := ParseCivilSecond("2016-02-30"); err == nil {
		t.Fatalf("%s failed [unit/layout mismatch]", t.Name())
	}
}
