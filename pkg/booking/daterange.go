package booking

import (
	"fmt"
	"strings"
	"time"
)

// DateRange is a half-open stay [CheckIn, CheckOut) of calendar dates held at UTC midnight.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// NewDateRange normalizes both ends to calendar dates and requires CheckIn < CheckOut.
func NewDateRange(checkIn time.Time, checkOut time.Time) (DateRange, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return DateRange{}, fmt.Errorf("%w: missing date", ErrDateRangeInvalid)
	}
	normalized := DateRange{CheckIn: NormalizeDate(checkIn), CheckOut: NormalizeDate(checkOut)}
	if !normalized.CheckIn.Before(normalized.CheckOut) {
		return DateRange{}, fmt.Errorf("%w: check-out %s must be after check-in %s", ErrDateRangeInvalid, FormatDate(normalized.CheckOut), FormatDate(normalized.CheckIn))
	}
	return normalized, nil
}

// NormalizeDate keeps the calendar date of value, read in its own location, at UTC midnight.
func NormalizeDate(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Nights returns the number of nights in the stay.
func (dateRange DateRange) Nights() int {
	return int(dateRange.CheckOut.Sub(dateRange.CheckIn) / hoursPerDay)
}

// Overlaps reports whether two stays share at least one night.
func (dateRange DateRange) Overlaps(other DateRange) bool {
	return dateRange.CheckIn.Before(other.CheckOut) && dateRange.CheckOut.After(other.CheckIn)
}

// Contains reports whether the night starting on day belongs to the stay.
func (dateRange DateRange) Contains(day time.Time) bool {
	normalized := NormalizeDate(day)
	return !normalized.Before(dateRange.CheckIn) && normalized.Before(dateRange.CheckOut)
}

// String renders the stay as "YYYY-MM-DD/YYYY-MM-DD".
func (dateRange DateRange) String() string {
	return FormatDate(dateRange.CheckIn) + "/" + FormatDate(dateRange.CheckOut)
}

// FormatDate renders a calendar date as ISO-8601 (YYYY-MM-DD).
func FormatDate(value time.Time) string {
	return NormalizeDate(value).Format(dateLayout)
}

// ParseDate accepts YYYY-MM-DD or a full RFC 3339 timestamp and returns the calendar date.
// A timestamp keeps the calendar date of its own offset, like NormalizeDate.
func ParseDate(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}
	if parsed, err := time.Parse(dateLayout, trimmed); err == nil {
		return parsed, nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return NormalizeDate(parsed), nil
}
