package dashboard

import (
	"fmt"
	"time"
)

var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Feb",
	time.March:     "Mar",
	time.April:     "Apr",
	time.May:       "May",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Aug",
	time.September: "Sep",
	time.October:   "Oct",
	time.November:  "Nov",
	time.December:  "Dec",
}

// StartOfMonth returns midnight UTC of the first day of the month containing date.
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// PeriodLabel generates a label such as "Mar 2026" for the month containing date.
func PeriodLabel(date time.Time) string {
	return fmt.Sprintf("%s %d", monthAbbreviations[date.Month()], date.Year())
}
