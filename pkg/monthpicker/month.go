package monthpicker

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidMonth is returned by Parse when a value is not a canonical
// "YYYY-MM" month string.
var ErrInvalidMonth = errors.New("monthpicker: invalid month")

// MonthNames holds the short labels shown in the month grid.
var MonthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Month is a calendar month. Index is zero-based (0 = January).
type Month struct {
	Year  int
	Index int
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Index: int(t.Month()) - 1}
}

// Parse decodes a canonical "YYYY-MM" string. The year must be four digits
// and the month must be between 1 and 12.
func Parse(s string) (Month, error) {
	year, month, ok := strings.Cut(s, "-")
	if !ok || year == "" || month == "" {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}

	if len(year) != 4 || !allDigits(year) {
		return Month{}, fmt.Errorf("%w: %q: year must be four digits", ErrInvalidMonth, s)
	}

	if len(month) > 2 || !allDigits(month) {
		return Month{}, fmt.Errorf("%w: %q: month must be numeric", ErrInvalidMonth, s)
	}

	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)

	if m < 1 || m > 12 {
		return Month{}, fmt.Errorf("%w: %q: month out of range", ErrInvalidMonth, s)
	}

	return Month{Year: y, Index: m - 1}, nil
}

// String returns the canonical "YYYY-MM" form.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Index+1)
}

// Label returns the human form shown on the picker trigger, e.g. "Mar 2024".
func (m Month) Label() string {
	return fmt.Sprintf("%s %d", MonthNames[m.Index], m.Year)
}

// Compare returns -1, 0 or +1 depending on whether m is before, equal to or
// after o in calendar order.
func (m Month) Compare(o Month) int {
	switch {
	case m.Year < o.Year:
		return -1
	case m.Year > o.Year:
		return 1
	case m.Index < o.Index:
		return -1
	case m.Index > o.Index:
		return 1
	}
	return 0
}

// Before reports whether m comes before o.
func (m Month) Before(o Month) bool { return m.Compare(o) < 0 }

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
