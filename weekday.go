package cctz

/*
weekday.go contains the weekday enumeration and the table-driven
weekday, day-of-year and nearest-weekday derivations.
*/

/*
Weekday enumerates the days of the week, [Monday] through [Sunday].
*/
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

/*
String returns the lowercase English name of the receiver instance.
*/
func (r Weekday) String() string {
	if Monday <= r && r <= Sunday {
		return weekdayNames[r]
	}
	return "weekday(" + itoa(int(r)) + ")"
}

// weekdayByMonOff resolves the day-of-week congruence. The 7-entry
// rotation is extended to a 13-entry overlapping window so the index
// needs a single modulo.
var weekdayByMonOff = [13]Weekday{
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday,
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday,
}

// weekdayOffsets[m] is the fixed congruence offset for month m; the
// zeroth entry is a guard.
var weekdayOffsets = [1 + 12]int64{
	-1, 0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4,
}

/*
Weekday returns the day of the week on which the receiver falls.
*/
func (r Civil[U]) Weekday() Weekday {
	y, m, d := r.f.y, r.f.month(), r.f.day()
	// Map the year into [2001:2400]; equivalent modulo 400, and large
	// enough that no intermediate subtraction goes negative. January
	// and February count against the previous year so the leap day
	// sits at year end.
	wd := 2400 + y%400
	if m < 3 {
		wd--
	}
	wd += wd/4 - wd/100 + wd/400
	wd += weekdayOffsets[m] + d
	return weekdayByMonOff[wd%7+6]
}

// monthOffsets[m] counts the days before month m begins in a
// non-leap year; the zeroth entry is a guard.
var monthOffsets = [1 + 12]int{
	-1, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334,
}

/*
YearDay returns the day of the year on which the receiver falls,
[1:365] or [1:366] in a leap year.
*/
func (r Civil[U]) YearDay() int {
	yd := monthOffsets[r.Month()] + r.Day()
	if r.Month() > 2 && isLeapYear(r.f.y) {
		yd++
	}
	return yd
}

// The rotation tables below are doubled so a forward or backward
// scan never needs modular wraparound.
var weekdaysForward = [14]Weekday{
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday,
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday,
}

var weekdaysBackward = [14]Weekday{
	Sunday, Saturday, Friday, Thursday, Wednesday, Tuesday, Monday,
	Sunday, Saturday, Friday, Thursday, Wednesday, Tuesday, Monday,
}

/*
NextWeekday returns the first [CivilDay] strictly after cd that falls
on the weekday wd. The result is always within (cd, cd+7]; when cd
already falls on wd the result is seven days later, never cd itself.
*/
func NextWeekday(cd CivilDay, wd Weekday) CivilDay {
	base := cd.Weekday()
	for i := 0; ; i++ {
		if base == weekdaysForward[i] {
			for j := i + 1; ; j++ {
				if wd == weekdaysForward[j] {
					return cd.Add(int64(j - i))
				}
			}
		}
	}
}

/*
PrevWeekday returns the first [CivilDay] strictly before cd that
falls on the weekday wd. The result is always within [cd-7, cd).
*/
func PrevWeekday(cd CivilDay, wd Weekday) CivilDay {
	base := cd.Weekday()
	for i := 0; ; i++ {
		if base == weekdaysBackward[i] {
			for j := i + 1; ; j++ {
				if wd == weekdaysBackward[j] {
					return cd.Sub(int64(j - i))
				}
			}
		}
	}
}
