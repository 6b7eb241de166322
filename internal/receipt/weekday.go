package receipt

import (
	"strconv"
	"strings"
	"time"
)

var weekdayNames = [...]string{
	time.Sunday:    "domingo",
	time.Monday:    "segunda-feira",
	time.Tuesday:   "terça-feira",
	time.Wednesday: "quarta-feira",
	time.Thursday:  "quinta-feira",
	time.Friday:    "sexta-feira",
	time.Saturday:  "sábado",
}

// parseDeliveryDate reads a DD/MM/YYYY date. Out of range days and months
// roll over the way calendar arithmetic does (31/02 is 3 March).
func parseDeliveryDate(s string, loc *time.Location) (time.Time, bool) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}
	return time.Date(nums[2], time.Month(nums[1]), nums[0], 0, 0, 0, 0, loc), true
}

// weekdayName returns the Portuguese weekday of a DD/MM/YYYY date.
func weekdayName(date string, loc *time.Location) (string, bool) {
	t, ok := parseDeliveryDate(date, loc)
	if !ok {
		return "", false
	}
	return weekdayNames[t.Weekday()], true
}

// FormatDeliveryDate renders t the way delivery dates are stored.
func FormatDeliveryDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// minutesOfDay reads an HH:MM time.
func minutesOfDay(s string) (int, bool) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}
