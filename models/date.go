package models

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// dateRe matches MM/DD, MM/DD/YY and MM/DD/YYYY with either / or - as the
// separator. Single digit months and days are accepted.
var dateRe = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})(?:[/-](\d{4}|\d{2}))?$`)

// Date is an optional due date attached to a task. Year may be nil, in which
// case the date is treated as falling in the current calendar year whenever
// it is compared against a dated value.
type Date struct {
	Month int  `json:"month"`
	Day   int  `json:"day"`
	Year  *int `json:"year"`
}

// DateParseError reports input that could not be turned into a Date.
type DateParseError struct {
	Given  string
	Reason string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("could not parse date from %q: %s", e.Given, e.Reason)
}

// ParseDate parses user-supplied date text. Two-digit years are interpreted
// as 2000+YY. Day counts are validated per month: 31/30, and February gets 28
// days when no year is given and 29 when any year is present. No leap-year
// arithmetic is performed.
func ParseDate(s string) (*Date, error) {
	m := dateRe.FindStringSubmatch(s)
	if m == nil {
		return nil, &DateParseError{
			Given:  s,
			Reason: "invalid format; accepted formats are MM/DD, MM/DD/YY and MM/DD/YYYY, with / or - separators",
		}
	}

	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	var year *int
	if m[3] != "" {
		y, _ := strconv.Atoi(m[3])
		if y < 100 {
			y += 2000 // assume the 2000s for 2-digit years
		}
		year = &y
	}

	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		if day > 31 {
			return nil, &DateParseError{Given: s, Reason: "this month has at most 31 days"}
		}
	case 4, 6, 9, 11:
		if day > 30 {
			return nil, &DateParseError{Given: s, Reason: "this month has at most 30 days"}
		}
	case 2:
		febDays := 28
		if year != nil {
			// Any explicit year gets the leap allowance.
			febDays = 29
		}
		if day > febDays {
			return nil, &DateParseError{Given: s, Reason: fmt.Sprintf("February has at most %d days", febDays)}
		}
	default:
		return nil, &DateParseError{Given: s, Reason: "month must be between 1 and 12"}
	}

	return &Date{Month: month, Day: day, Year: year}, nil
}

// Compare orders d against o chronologically, returning a negative value, 0,
// or a positive value. A missing year resolves to the current calendar year,
// so a yearless date compares equal to the same month/day of this year. Two
// yearless dates compare by month and day alone.
func (d Date) Compare(o Date) int {
	curYear := time.Now().Year()
	dy, oy := curYear, curYear
	if d.Year != nil {
		dy = *d.Year
	}
	if o.Year != nil {
		oy = *o.Year
	}
	if dy != oy {
		return dy - oy
	}
	if d.Month != o.Month {
		return d.Month - o.Month
	}
	return d.Day - o.Day
}

// String renders MM/DD when no year is set, MM/DD/YYYY otherwise.
func (d Date) String() string {
	if d.Year != nil {
		return fmt.Sprintf("%02d/%02d/%d", d.Month, d.Day, *d.Year)
	}
	return fmt.Sprintf("%02d/%02d", d.Month, d.Day)
}
