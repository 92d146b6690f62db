package utils

import (
	"fmt"
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a time.Time.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd: %w", dateStr, err)
	}
	return t, nil
}

// FormatDate renders a time.Time as yyyy-mm-dd.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// RentalDays returns the rental duration in whole days, clamped to a
// minimum of one. A same-day rental counts as one day, and an end date
// before the start date is also clamped to one rather than rejected.
func RentalDays(start, end time.Time) int {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// ComputeRentalTotal computes the rental total: the main item's daily rate
// times the duration, plus the flat line-item subtotal, minus the discount,
// floored at zero. Line-item prices are flat amounts and are not multiplied
// by the duration.
func ComputeRentalTotal(dailyRate float64, days int, lineItemSubtotal, discount float64) float64 {
	total := dailyRate*float64(days) + lineItemSubtotal - discount
	if total < 0 {
		return 0
	}
	return total
}
