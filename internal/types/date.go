package types

import (
	"fmt"
	"strconv"
)

// Date is a YYMMDD date field. A zero day means "no date".
type Date struct {
	Year  int
	Month int
	Day   int
}

// ParseDate parses a six character YYMMDD field. Blank or partially numeric
// fields yield the zero Date.
func ParseDate(field string) Date {
	if len(field) != 6 {
		return Date{}
	}
	yy, errY := strconv.Atoi(field[0:2])
	mm, errM := strconv.Atoi(field[2:4])
	dd, errD := strconv.Atoi(field[4:6])
	if errY != nil || errM != nil || errD != nil {
		return Date{}
	}
	return Date{Year: 1900 + yy, Month: mm, Day: dd}
}

// IsZero reports whether the date is absent
func (d Date) IsZero() bool {
	return d.Day == 0
}

// String renders the date as YYYY-MM-DD, or an empty string when absent.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
