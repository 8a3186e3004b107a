package cctz

/*
unit.go implements the closed set of civil-time unit markers and the
field alignment keyed by them.
*/

/*
Unit is qualified only by the six marker types defined within this
package, ordered coarsest to finest:

  - [Year]
  - [Month]
  - [Day]
  - [Hour]
  - [Minute]
  - [Second]

The unexported method seals the set; no type outside this package can
satisfy the interface, so [Civil] is only ever instantiated with the
six markers above.
*/
type Unit interface {
	rank() unitRank
}

/*
unitRank orders the units by precision, finest first. Normalization,
stepping, differencing, alignment and rendering all dispatch on it.
*/
type unitRank int8

const (
	rankSecond unitRank = iota
	rankMinute
	rankHour
	rankDay
	rankMonth
	rankYear
)

/*
Second is the [Unit] marker for [CivilSecond].
*/
type Second struct{}

/*
Minute is the [Unit] marker for [CivilMinute].
*/
type Minute struct{}

/*
Hour is the [Unit] marker for [CivilHour].
*/
type Hour struct{}

/*
Day is the [Unit] marker for [CivilDay].
*/
type Day struct{}

/*
Month is the [Unit] marker for [CivilMonth].
*/
type Month struct{}

/*
Year is the [Unit] marker for [CivilYear].
*/
type Year struct{}

func (Second) rank() unitRank { return rankSecond }
func (Minute) rank() unitRank { return rankMinute }
func (Hour) rank() unitRank   { return rankHour }
func (Day) rank() unitRank    { return rankDay }
func (Month) rank() unitRank  { return rankMonth }
func (Year) rank() unitRank   { return rankYear }

// alignFields zeroes every field finer than u. The stored month and
// day are biased so a zeroed field reads as its nominal minimum.
func alignFields(u unitRank, f fields) fields {
	switch u {
	case rankYear:
		f.m = 0
		fallthrough
	case rankMonth:
		f.d = 0
		fallthrough
	case rankDay:
		f.hh = 0
		fallthrough
	case rankHour:
		f.mm = 0
		fallthrough
	case rankMinute:
		f.ss = 0
	}
	return f
}
