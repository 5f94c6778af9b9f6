package util

import "time"

// DateOnly strips the clock from t, returning midnight UTC on the same
// calendar date
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// LastDayOfMonth returns the final calendar date of the given month
func LastDayOfMonth(year int, month time.Month) time.Time {
	// Day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
}

// DailyWindow returns the reporting window covering only today
func DailyWindow(today time.Time) (time.Time, time.Time) {
	day := DateOnly(today)
	return day, day
}

// WeeklyWindow returns the reporting window from seven days before
// today through today
func WeeklyWindow(today time.Time) (time.Time, time.Time) {
	end := DateOnly(today)
	return end.AddDate(0, 0, -7), end
}

// MonthlyWindow returns the reporting window for the given month. The
// month containing today is cut off at today; any other month runs
// through its last day.
func MonthlyWindow(year int, month time.Month, today time.Time) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	if year == today.Year() && month == today.Month() {
		return start, DateOnly(today)
	}
	return start, LastDayOfMonth(year, month)
}

// WindowDays returns the number of calendar days in an inclusive window
func WindowDays(start, end time.Time) int {
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}
