package cctz

/*
norm.go implements the field-normalization cascade. Each level folds
its field's overflow into a carry for the next coarser level, finest
first: seconds, minutes, hours, then the month/day step. Only the day
level iterates, and every tier of that iteration is bounded by a
small constant independent of input magnitude.
*/

/*
normDay resolves the day field d plus a separate day carry cd against
year y and month m, with the finer fields already normalized.

The year is tracked as an offset ey confined near one 400 year cycle
(146097 days), so the working values stay small no matter how extreme
y is; whole cycles removed from d and cd ride along as +-400 year
adjustments to ey. The remaining surplus is consumed in tiers: whole
centuries (at most 4), whole 4-year blocks (at most 25), whole years
(at most 4), then whole months (at most 11). The original y is
recombined with the accumulated offset only at the very end.
*/
func normDay(y, m, d, cd, hh, mm, ss int64) fields {
	ey := y % 400
	oey := ey
	ey += (cd / 146097) * 400
	cd %= 146097
	if cd < 0 {
		ey -= 400
		cd += 146097
	}
	ey += (d / 146097) * 400
	d = d%146097 + cd
	if d > 0 {
		if d > 146097 {
			ey += 400
			d -= 146097
		}
	} else {
		if d > -365 {
			// We often hit the previous year when stepping a civil
			// time backwards, so special case it to avoid counting
			// up by 100/4/1-year chunks.
			ey--
			d += daysPerYear(ey, m)
		} else {
			ey -= 400
			d += 146097
		}
	}
	if d > 365 {
		yi := yearIndex(ey, m) // index into the 400 year cycle
		for {
			n := daysPerCentury(yi)
			if d <= n {
				break
			}
			d -= n
			ey += 100
			yi += 100
			if yi >= 400 {
				yi -= 400
			}
		}
		for {
			n := daysPer4Years(yi)
			if d <= n {
				break
			}
			d -= n
			ey += 4
			yi += 4
			if yi >= 400 {
				yi -= 400
			}
		}
		for {
			n := daysPerYear(ey, m)
			if d <= n {
				break
			}
			d -= n
			ey++
		}
	}
	if d > 28 {
		for {
			n := daysPerMonth(ey, m)
			if d <= n {
				break
			}
			d -= n
			if m++; m > 12 {
				ey++
				m = 1
			}
		}
	}
	return newFields(y+(ey-oey), m, d, hh, mm, ss)
}

// normMonth reduces an arbitrary month count to [1:12] with a year
// carry, then hands the day work to normDay. cd passes through
// untouched.
func normMonth(y, m, d, cd, hh, mm, ss int64) fields {
	if m != 12 {
		y += m / 12
		m %= 12
		if m <= 0 {
			y--
			m += 12
		}
	}
	return normDay(y, m, d, cd, hh, mm, ss)
}

func normHour(y, m, d, cd, hh, mm, ss int64) fields {
	cd += floorDiv(hh, 24)
	hh = floorMod(hh, 24)
	return normMonth(y, m, d, cd, hh, mm, ss)
}

// normMinute folds the minute overflow into the hour carry ch. The
// hour total is split before summing so neither half can overflow.
func normMinute(y, m, d, hh, ch, mm, ss int64) fields {
	ch += floorDiv(mm, 60)
	mm = floorMod(mm, 60)
	return normHour(y, m, d,
		floorDiv(hh, 24)+floorDiv(ch, 24),
		floorMod(hh, 24)+floorMod(ch, 24), mm, ss)
}

/*
normSecond normalizes six raw fields of unrestricted magnitude into
canonical form. Fields already within their nominal ranges take the
constant-work fast path; anything else enters the cascade at the
finest out-of-range level.
*/
func normSecond(y, m, d, hh, mm, ss int64) fields {
	// Fast path for fields that are already normalized, which is by
	// far the common case.
	if 0 <= ss && ss < 60 {
		if 0 <= mm && mm < 60 {
			if 0 <= hh && hh < 24 {
				if 1 <= d && d <= 28 && 1 <= m && m <= 12 {
					return newFields(y, m, d, hh, mm, ss)
				}
				return normMonth(y, m, d, 0, hh, mm, ss)
			}
			return normHour(y, m, d, floorDiv(hh, 24), floorMod(hh, 24), mm, ss)
		}
		return normMinute(y, m, d, hh, floorDiv(mm, 60), floorMod(mm, 60), ss)
	}
	cm := floorDiv(ss, 60)
	ss = floorMod(ss, 60)
	return normMinute(y, m, d, hh,
		floorDiv(mm, 60)+floorDiv(cm, 60),
		floorMod(mm, 60)+floorMod(cm, 60), ss)
}

/*
stepFields advances normalized fields by n of the unit u. Rather than
mutating a field in place, each case re-enters the cascade at its own
level with n pre-split into a coarser carry plus a remainder, so the
result is always freshly normalized.
*/
func stepFields(u unitRank, f fields, n int64) fields {
	switch u {
	case rankSecond:
		return normSecond(f.y, f.month(), f.day(), f.hour(),
			f.minute()+n/60, f.second()+n%60)
	case rankMinute:
		return normMinute(f.y, f.month(), f.day(), f.hour()+n/60, 0,
			f.minute()+n%60, f.second())
	case rankHour:
		return normHour(f.y, f.month(), f.day()+n/24, 0,
			f.hour()+n%24, f.minute(), f.second())
	case rankDay:
		return normDay(f.y, f.month(), f.day(), n,
			f.hour(), f.minute(), f.second())
	case rankMonth:
		return normMonth(f.y+n/12, f.month()+n%12, f.day(), 0,
			f.hour(), f.minute(), f.second())
	default: // rankYear
		// Year-aligned fields stay normalized under a plain year
		// shift (month and day are at their minima).
		return newFields(f.y+n, f.month(), f.day(),
			f.hour(), f.minute(), f.second())
	}
}
