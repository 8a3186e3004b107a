package cctz

/*
text.go implements the canonical textual forms of the civil-time
types: rendering via the String method on every value, and parsing of
exactly those renderings. Nothing here is locale aware; the layouts
are fixed.
*/

/*
Canonical layouts, one per unit, in the reference-time notation of
[time.Layout], for callers driving an external formatter. The year
field may carry a minus sign and more than four digits; all other
fields are fixed width.
*/
const (
	YearLayout   = "2006"
	MonthLayout  = "2006-01"
	DayLayout    = "2006-01-02"
	HourLayout   = "2006-01-02T15"
	MinuteLayout = "2006-01-02T15:04"
	SecondLayout = "2006-01-02T15:04:05"
)

/*
parse errors.
*/
var (
	errorCivilLayout = mkerr("civil time does not match its canonical layout")
	errorCivilYear   = mkerr("civil time year does not fit in an int64")
)

/*
String returns the canonical rendering of the receiver, truncated to
its unit: "2016" for a [CivilYear] through "2016-01-02T03:04:05" for
a [CivilSecond]. The year is zero padded to at least four digits;
every other field is exactly two.
*/
func (r Civil[U]) String() string {
	var u U
	return formatFields(u.rank(), r.f)
}

func formatFields(u unitRank, f fields) string {
	b := make([]byte, 0, 24)
	b = appendYear(b, f.y)
	if u == rankYear {
		return string(b)
	}
	b = appendPair(b, '-', f.month())
	if u == rankMonth {
		return string(b)
	}
	b = appendPair(b, '-', f.day())
	if u == rankDay {
		return string(b)
	}
	b = appendPair(b, 'T', f.hour())
	if u == rankHour {
		return string(b)
	}
	b = appendPair(b, ':', f.minute())
	if u == rankMinute {
		return string(b)
	}
	return string(appendPair(b, ':', f.second()))
}

// appendYear renders y with at least four digits. Formatting first
// sidesteps the unnegatable math.MinInt64.
func appendYear(b []byte, y int64) []byte {
	s := fmtInt(y, 10)
	if s[0] == '-' {
		b = append(b, '-')
		s = s[1:]
	}
	for n := len(s); n < 4; n++ {
		b = append(b, '0')
	}
	return append(b, s...)
}

func appendPair(b []byte, sep byte, v int64) []byte {
	b = append(b, sep)
	if v < 10 {
		b = append(b, '0')
	}
	return appInt(b, v, 10)
}

/*
ParseCivilYear parses the canonical layout "Y" (e.g. "2016").
*/
func ParseCivilYear(s string) (CivilYear, error) {
	f, err := parseFields(rankYear, s)
	if err != nil {
		return CivilYear{}, err
	}
	return CivilYear{f: f}, nil
}

/*
ParseCivilMonth parses the canonical layout "Y-M" (e.g. "2016-02").
*/
func ParseCivilMonth(s string) (CivilMonth, error) {
	f, err := parseFields(rankMonth, s)
	if err != nil {
		return CivilMonth{}, err
	}
	return CivilMonth{f: f}, nil
}

/*
ParseCivilDay parses the canonical layout "Y-M-D" (e.g.
"2016-02-30"). As with construction, well-formed but out-of-range
fields normalize rather than fail; the example yields 2016-03-01.
*/
func ParseCivilDay(s string) (CivilDay, error) {
	f, err := parseFields(rankDay, s)
	if err != nil {
		return CivilDay{}, err
	}
	return CivilDay{f: f}, nil
}

/*
ParseCivilHour parses the canonical layout "Y-M-DTH" (e.g.
"2016-02-28T17").
*/
func ParseCivilHour(s string) (CivilHour, error) {
	f, err := parseFields(rankHour, s)
	if err != nil {
		return CivilHour{}, err
	}
	return CivilHour{f: f}, nil
}

/*
ParseCivilMinute parses the canonical layout "Y-M-DTH:M" (e.g.
"2016-02-28T17:30").
*/
func ParseCivilMinute(s string) (CivilMinute, error) {
	f, err := parseFields(rankMinute, s)
	if err != nil {
		return CivilMinute{}, err
	}
	return CivilMinute{f: f}, nil
}

/*
ParseCivilSecond parses the canonical layout "Y-M-DTH:M:S" (e.g.
"2016-02-28T17:30:59").
*/
func ParseCivilSecond(s string) (CivilSecond, error) {
	f, err := parseFields(rankSecond, s)
	if err != nil {
		return CivilSecond{}, err
	}
	return CivilSecond{f: f}, nil
}

// parseFields decodes the canonical layout for the unit u, then runs
// the decoded fields through the normalization cascade so the parse
// surface and the constructors agree on out-of-range input.
func parseFields(u unitRank, s string) (fields, error) {
	y, rest, err := splitYear(s)
	if err != nil {
		return fields{}, err
	}
	m, d, hh, mm, ss := int64(1), int64(1), int64(0), int64(0), int64(0)
	if u < rankYear {
		if m, rest, err = parsePair(rest, '-'); err != nil {
			return fields{}, err
		}
	}
	if u < rankMonth {
		if d, rest, err = parsePair(rest, '-'); err != nil {
			return fields{}, err
		}
	}
	if u < rankDay {
		if hh, rest, err = parsePair(rest, 'T'); err != nil {
			return fields{}, err
		}
	}
	if u < rankHour {
		if mm, rest, err = parsePair(rest, ':'); err != nil {
			return fields{}, err
		}
	}
	if u < rankMinute {
		if ss, rest, err = parsePair(rest, ':'); err != nil {
			return fields{}, err
		}
	}
	if rest != "" {
		return fields{}, errorCivilLayout
	}
	return alignFields(u, normSecond(y, m, d, hh, mm, ss)), nil
}

// splitYear consumes an optional minus sign and at least four digits
// from the front of s.
func splitYear(s string) (int64, string, error) {
	i := 0
	if len(s) > 0 && s[0] == '-' {
		i = 1
	}
	j := i
	for j < len(s) && '0' <= s[j] && s[j] <= '9' {
		j++
	}
	if j-i < 4 {
		return 0, "", errorCivilLayout
	}
	y, err := pint(s[:j], 10, 64)
	if err != nil {
		return 0, "", errorCivilYear
	}
	return y, s[j:], nil
}

// parsePair consumes a separator byte and exactly two digits.
func parsePair(s string, sep byte) (int64, string, error) {
	if len(s) < 3 || s[0] != sep {
		return 0, "", errorCivilLayout
	}
	hi, lo := s[1], s[2]
	if hi < '0' || hi > '9' || lo < '0' || lo > '9' {
		return 0, "", errorCivilLayout
	}
	return int64(hi-'0')*10 + int64(lo-'0'), s[3:], nil
}
