package labsync

import "time"

type dateOrYearKind int

const (
	dateOrYearAbsent dateOrYearKind = iota
	dateOrYearDate
	dateOrYearYear
)

// DateOrYear is the value of a document's date field. Sheet kinds with full
// publication dates carry a calendar date; the general kind only records a
// year, stored under the same field name. The tag keeps the two
// representations apart until the value is handed to the store.
// The zero value is absent.
type DateOrYear struct {
	kind dateOrYearKind
	date time.Time
	year int
}

// DateOf returns a date-valued DateOrYear.
func DateOf(t time.Time) DateOrYear {
	return DateOrYear{kind: dateOrYearDate, date: t}
}

// YearOf returns a year-valued DateOrYear.
func YearOf(y int) DateOrYear {
	return DateOrYear{kind: dateOrYearYear, year: y}
}

// IsAbsent reports whether the value holds neither a date nor a year.
func (d DateOrYear) IsAbsent() bool {
	return d.kind == dateOrYearAbsent
}

// Date returns the calendar date and whether the value holds one.
func (d DateOrYear) Date() (time.Time, bool) {
	return d.date, d.kind == dateOrYearDate
}

// Year returns the year and whether the value holds one.
func (d DateOrYear) Year() (int, bool) {
	return d.year, d.kind == dateOrYearYear
}

// Interface unwraps the value for storage: time.Time for dates, int for
// years, nil when absent.
func (d DateOrYear) Interface() interface{} {
	switch d.kind {
	case dateOrYearDate:
		return d.date
	case dateOrYearYear:
		return d.year
	default:
		return nil
	}
}
