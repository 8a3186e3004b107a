package cctz

/*
diff.go implements the day-count engine and the per-unit difference
between two normalized field sets. Differences compose from coarse to
fine through scaleAdd, so only the final combined magnitude need fit
in an int64.
*/

// scaleAdd returns v*f + a, rewritten as (v-+1)*f + a +- f so that a
// value adjacent to a representable limit does not overflow in the
// intermediate product.
func scaleAdd(v, f, a int64) int64 {
	if v < 0 {
		return ((v+1)*f + a) - f
	}
	return ((v-1)*f + a) + f
}

/*
ordinalDay maps a normalized Y/M/D to the number of days before or
after 1970-01-01.

The calendar is shifted so March 1 opens the year, putting the leap
day at the end of its (shifted) year; the shifted year decomposes
into a 400 year era and a year-of-era in [0:399], and the pieces
recombine in closed form. See
https://howardhinnant.github.io/date_algorithms.html for the
derivation. Probably overflows for years outside
[-292277022656:292277026595].
*/
func ordinalDay(y, m, d int64) int64 {
	eyear := y
	if m <= 2 {
		eyear--
	}
	era := eyear
	if era < 0 {
		era -= 399
	}
	era /= 400
	yoe := eyear - era*400 // [0:399]
	mp := m + 9
	if m > 2 {
		mp = m - 3
	}
	doy := (153*mp+2)/5 + d - 1            // [0:365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0:146096]
	return era*146097 + doe - 719468
}

/*
dayDifference returns the difference in days between two normalized
Y-M-D triples.

ordinalDay overflows for extreme years even when the true difference
between two such dates is small, so both years are first reduced
modulo 400 (bounding what reaches ordinalDay) while the removed whole
cycles accumulate separately in c4. When the two accumulators
disagree in sign, two full cycles shift between them; the doubled
shift is kept as-is rather than narrowed to one cycle, since
under-correcting would leave a residual sign mismatch at cycle
boundaries.
*/
func dayDifference(y1, m1, d1, y2, m2, d2 int64) int64 {
	c4off1 := y1 % 400
	c4off2 := y2 % 400
	c4 := (y1 - c4off1) - (y2 - c4off2)
	delta := ordinalDay(c4off1, m1, d1) - ordinalDay(c4off2, m2, d2)
	if c4 > 0 && delta < 0 {
		delta += 2 * 146097
		c4 -= 2 * 400
	} else if c4 < 0 && delta > 0 {
		delta -= 2 * 146097
		c4 += 2 * 400
	}
	return c4/400*146097 + delta
}

/*
differenceFields returns f1 - f2 counted in the unit u. The year term
is plain subtraction; each finer unit scales the next coarser result
by its conversion factor and adds its own field delta, with the day
term delegating to the day-count engine.
*/
func differenceFields(u unitRank, f1, f2 fields) int64 {
	switch u {
	case rankYear:
		return f1.y - f2.y
	case rankMonth:
		return scaleAdd(differenceFields(rankYear, f1, f2), 12,
			f1.month()-f2.month())
	case rankDay:
		return dayDifference(f1.y, f1.month(), f1.day(),
			f2.y, f2.month(), f2.day())
	case rankHour:
		return scaleAdd(differenceFields(rankDay, f1, f2), 24,
			f1.hour()-f2.hour())
	case rankMinute:
		return scaleAdd(differenceFields(rankHour, f1, f2), 60,
			f1.minute()-f2.minute())
	default: // rankSecond
		return scaleAdd(differenceFields(rankMinute, f1, f2), 60,
			f1.second()-f2.second())
	}
}
