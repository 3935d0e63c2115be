package notify

import "time"

// formatDisplayTime renders a stored "HH:MM" or "HH:MM:SS" clock as
// "3:00 PM". The raw string comes back unchanged when it does not parse.
func formatDisplayTime(clock string) string {
	layout := "15:04"
	if len(clock) == len("15:04:05") {
		layout = "15:04:05"
	}
	t, err := time.Parse(layout, clock)
	if err != nil {
		return clock
	}
	return t.Format("3:04 PM")
}

// formatDisplayDate renders a stored "YYYY-MM-DD" date as "Today",
// "Tomorrow" or "Friday, January 15" relative to today. On a parse failure
// it falls back to the stored day and date strings.
func formatDisplayDate(date, day string, today time.Time) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return day + ", " + date
	}

	todayDate := today.Format("2006-01-02")
	tomorrowDate := today.AddDate(0, 0, 1).Format("2006-01-02")
	switch parsed.Format("2006-01-02") {
	case todayDate:
		return "Today"
	case tomorrowDate:
		return "Tomorrow"
	default:
		return parsed.Format("Monday, January 02")
	}
}
