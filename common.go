package cctz

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"errors"
	"strconv"

	"golang.org/x/exp/constraints"
)

/*
official import aliases.
*/
var (
	mkerr  func(string) error                    = errors.New
	itoa   func(int) string                      = strconv.Itoa
	fmtInt func(int64, int) string               = strconv.FormatInt
	appInt func([]byte, int64, int) []byte       = strconv.AppendInt
	pint   func(string, int, int) (int64, error) = strconv.ParseInt
)

/*
floorDiv returns v divided by p rounded toward negative infinity.
Go's native integer division truncates toward zero, which is the
wrong direction for carry propagation on negative field values.
*/
func floorDiv[T constraints.Signed](v, p T) T {
	q := v / p
	if v%p < 0 {
		q--
	}
	return q
}

/*
floorMod returns the non-negative remainder of v divided by p, the
companion of [floorDiv]: v == floorDiv(v,p)*p + floorMod(v,p).
*/
func floorMod[T constraints.Signed](v, p T) T {
	r := v % p
	if r < 0 {
		r += p
	}
	return r
}

func isLeapYear(y int64) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

/*
yearIndex returns the position of year y, as observed from month m,
within the 400 year Gregorian cycle. Months after February index the
following year so that the leap day lands at the end of its year.
*/
func yearIndex(y, m int64) int64 {
	if m > 2 {
		y++
	}
	yi := y % 400
	if yi < 0 {
		yi += 400
	}
	return yi
}

// The century starting at cycle index 0, or above 300, contains the
// /400 leap century and runs one day long.
func daysPerCentury(yi int64) int64 {
	if yi == 0 || yi > 300 {
		return 36525
	}
	return 36524
}

func daysPer4Years(yi int64) int64 {
	if yi == 0 || yi > 300 || (yi-1)%100 < 96 {
		return 1461
	}
	return 1460
}

// daysPerYear counts the days between month m of year y and month m
// of the following year.
func daysPerYear(y, m int64) int64 {
	if isLeapYear(yearFrom(y, m)) {
		return 366
	}
	return 365
}

func yearFrom(y, m int64) int64 {
	if m > 2 {
		y++
	}
	return y
}

// monthLengths[m] is the length of month m in a non-leap year. The
// zeroth entry is a guard; months index from 1.
var monthLengths = [1 + 12]int64{
	-1, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31,
}

func daysPerMonth(y, m int64) int64 {
	n := monthLengths[m]
	if m == 2 && isLeapYear(y) {
		n++
	}
	return n
}
