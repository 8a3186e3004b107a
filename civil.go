/*
Package cctz implements civil time: a time-zone-naive calendar and
clock on the proleptic Gregorian calendar.

A civil time is the familiar six-field breakdown -- year, month, day,
hour, minute, second -- with no attached time zone or UTC offset.
Values are aligned to one of six units and are always normalized:
construction accepts arbitrarily out-of-range fields (month 13, day
40, hour -5) and resolves them canonically, so

	NewCivilDay(2016, 2, 30) == NewCivilDay(2016, 3, 1)

Arithmetic steps a value by a signed count of its own unit, and the
same-unit difference inverts it exactly. Year magnitudes span the
full int64 range; every operation completes in bounded time that is
independent of input magnitude.

Time-zone conversion, leap seconds and locale-aware text handling are
out of scope; only the canonical renderings of the six normalized
fields are provided.
*/
package cctz

/*
civil.go implements the unit-tagged civil-time value type along with
its constructors, accessors, arithmetic, conversions and ordering.
*/

import (
	"cmp"
	"math"
)

/*
fields holds one normalized civil-time breakdown: Y-M-D HH:MM:SS.
The month and day are stored minus one so that the zero value decodes
to the valid civil time 0000-01-01 00:00:00.
*/
type fields struct {
	y  int64
	m  int8 // month-1, [0:11]
	d  int8 // day-1, [0:30]
	hh int8 // [0:23]
	mm int8 // [0:59]
	ss int8 // [0:59]
}

// newFields stores normalized field values. Callers guarantee each
// argument is already within its nominal range.
func newFields(y, m, d, hh, mm, ss int64) fields {
	return fields{y, int8(m - 1), int8(d - 1), int8(hh), int8(mm), int8(ss)}
}

func (f fields) month() int64  { return int64(f.m) + 1 }
func (f fields) day() int64    { return int64(f.d) + 1 }
func (f fields) hour() int64   { return int64(f.hh) }
func (f fields) minute() int64 { return int64(f.mm) }
func (f fields) second() int64 { return int64(f.ss) }

/*
Civil is an immutable civil-time value aligned to the unit U. Fields
finer than U always hold their nominal minimum (month and day read 1,
clock fields read 0).

Civil is comparable; == between two values of the same unit compares
all six fields. Use [Equal], [Compare], [Before] or [After] to relate
values of different units.

The zero Civil[U] is 0000-01-01 00:00:00 aligned to U, and is ready
for use.
*/
type Civil[U Unit] struct {
	f fields
}

/*
Unit-named aliases of [Civil]. Each is an ordinary type in every
respect; the alias only fixes the unit marker.
*/
type (
	CivilYear   = Civil[Year]
	CivilMonth  = Civil[Month]
	CivilDay    = Civil[Day]
	CivilHour   = Civil[Hour]
	CivilMinute = Civil[Minute]
	CivilSecond = Civil[Second]
)

// newCivil aligns f to U's unit; the one constructor every exported
// path funnels through.
func newCivil[U Unit](f fields) Civil[U] {
	var u U
	return Civil[U]{f: alignFields(u.rank(), f)}
}

/*
NewCivil returns a [Civil] of the chosen unit from six raw fields.
Any int64 value is accepted for every field; out-of-range values are
normalized by carrying into the next coarser field, and fields finer
than U are then discarded by alignment.

The fixed-arity constructors ([NewCivilYear] through
[NewCivilSecond]) are usually more convenient.
*/
func NewCivil[U Unit](y, m, d, hh, mm, ss int64) Civil[U] {
	return newCivil[U](normSecond(y, m, d, hh, mm, ss))
}

/*
NewCivilYear returns the [CivilYear] for year y.
*/
func NewCivilYear(y int64) CivilYear {
	return NewCivil[Year](y, 1, 1, 0, 0, 0)
}

/*
NewCivilMonth returns the normalized [CivilMonth] for year y, month m.
*/
func NewCivilMonth(y, m int64) CivilMonth {
	return NewCivil[Month](y, m, 1, 0, 0, 0)
}

/*
NewCivilDay returns the normalized [CivilDay] for year y, month m,
day d.
*/
func NewCivilDay(y, m, d int64) CivilDay {
	return NewCivil[Day](y, m, d, 0, 0, 0)
}

/*
NewCivilHour returns the normalized [CivilHour] for the given fields.
*/
func NewCivilHour(y, m, d, hh int64) CivilHour {
	return NewCivil[Hour](y, m, d, hh, 0, 0)
}

/*
NewCivilMinute returns the normalized [CivilMinute] for the given
fields.
*/
func NewCivilMinute(y, m, d, hh, mm int64) CivilMinute {
	return NewCivil[Minute](y, m, d, hh, mm, 0)
}

/*
NewCivilSecond returns the normalized [CivilSecond] for the given
fields.
*/
func NewCivilSecond(y, m, d, hh, mm, ss int64) CivilSecond {
	return NewCivil[Second](y, m, d, hh, mm, ss)
}

/*
MinCivil returns the minimum representable civil time of unit U:
year [math.MinInt64], January 1, 00:00:00.
*/
func MinCivil[U Unit]() Civil[U] {
	return NewCivil[U](math.MinInt64, 1, 1, 0, 0, 0)
}

/*
MaxCivil returns the maximum representable civil time of unit U:
year [math.MaxInt64], December 31, 23:59:59 (coarser units align the
trailing fields down as usual).
*/
func MaxCivil[U Unit]() Civil[U] {
	return NewCivil[U](math.MaxInt64, 12, 31, 23, 59, 59)
}

/*
Year returns the (wide) normalized year field.
*/
func (r Civil[U]) Year() int64 { return r.f.y }

/*
Month returns the normalized month field, [1:12].
*/
func (r Civil[U]) Month() int { return int(r.f.month()) }

/*
Day returns the normalized day field, [1:31].
*/
func (r Civil[U]) Day() int { return int(r.f.day()) }

/*
Hour returns the normalized hour field, [0:23].
*/
func (r Civil[U]) Hour() int { return int(r.f.hh) }

/*
Minute returns the normalized minute field, [0:59].
*/
func (r Civil[U]) Minute() int { return int(r.f.mm) }

/*
Second returns the normalized second field, [0:59].
*/
func (r Civil[U]) Second() int { return int(r.f.ss) }

/*
Add returns the receiver stepped forward by n of its own unit. The
result is freshly normalized; n may be any int64, negative included.
*/
func (r Civil[U]) Add(n int64) Civil[U] {
	var u U
	return Civil[U]{f: stepFields(u.rank(), r.f, n)}
}

/*
Sub returns the receiver stepped backward by n of its own unit.
*/
func (r Civil[U]) Sub(n int64) Civil[U] {
	if n == math.MinInt64 {
		// -n is unrepresentable; peel one step off first.
		return r.Add(-(n + 1)).Add(1)
	}
	return r.Add(-n)
}

/*
Next returns the receiver advanced by one of its unit.
*/
func (r Civil[U]) Next() Civil[U] { return r.Add(1) }

/*
Prev returns the receiver retreated by one of its unit.
*/
func (r Civil[U]) Prev() Civil[U] { return r.Sub(1) }

/*
Since returns the signed count of the receiver's unit elapsed from o
to the receiver, such that o.Add(r.Since(o)) == r for unit-aligned
values. Both operands share one unit by construction; differencing
across units is not expressible.
*/
func (r Civil[U]) Since(o Civil[U]) int64 {
	var u U
	return differenceFields(u.rank(), r.f, o.f)
}

/*
ToCivilYear converts v to a [CivilYear], discarding any month, day
and clock information v carries.
*/
func ToCivilYear[U Unit](v Civil[U]) CivilYear {
	return newCivil[Year](v.f)
}

/*
ToCivilMonth converts v to a [CivilMonth], discarding any day and
clock information v carries.
*/
func ToCivilMonth[U Unit](v Civil[U]) CivilMonth {
	return newCivil[Month](v.f)
}

/*
ToCivilDay converts v to a [CivilDay], discarding any clock
information v carries.
*/
func ToCivilDay[U Unit](v Civil[U]) CivilDay {
	return newCivil[Day](v.f)
}

/*
ToCivilHour converts v to a [CivilHour], discarding any minute and
second information v carries.
*/
func ToCivilHour[U Unit](v Civil[U]) CivilHour {
	return newCivil[Hour](v.f)
}

/*
ToCivilMinute converts v to a [CivilMinute], discarding any second
information v carries.
*/
func ToCivilMinute[U Unit](v Civil[U]) CivilMinute {
	return newCivil[Minute](v.f)
}

/*
ToCivilSecond converts v to a [CivilSecond]. Widening to the finest
unit is lossless; the conversion only zero-fills.
*/
func ToCivilSecond[U Unit](v Civil[U]) CivilSecond {
	return newCivil[Second](v.f)
}

/*
Equal reports whether a and b name the same civil time. All six
fields are compared regardless of the operands' units, so a
[CivilDay] can equal a [CivilSecond].
*/
func Equal[U1, U2 Unit](a Civil[U1], b Civil[U2]) bool {
	return a.f == b.f
}

/*
Compare orders a and b lexicographically over (year, month, day,
hour, minute, second), returning -1, 0 or +1. The operands' units
never influence the result.
*/
func Compare[U1, U2 Unit](a Civil[U1], b Civil[U2]) int {
	if c := cmp.Compare(a.f.y, b.f.y); c != 0 {
		return c
	}
	if c := cmp.Compare(a.f.m, b.f.m); c != 0 {
		return c
	}
	if c := cmp.Compare(a.f.d, b.f.d); c != 0 {
		return c
	}
	if c := cmp.Compare(a.f.hh, b.f.hh); c != 0 {
		return c
	}
	if c := cmp.Compare(a.f.mm, b.f.mm); c != 0 {
		return c
	}
	return cmp.Compare(a.f.ss, b.f.ss)
}

/*
Before reports whether a names an earlier civil time than b.
*/
func Before[U1, U2 Unit](a Civil[U1], b Civil[U2]) bool {
	return Compare(a, b) < 0
}

/*
After reports whether a names a later civil time than b.
*/
func After[U1, U2 Unit](a Civil[U1], b Civil[U2]) bool {
	return Compare(a, b) > 0
}
