package utils

import (
	"fmt"
	"strconv"
	"time"
)

// FormatWon renders an amount with thousands separators and the won suffix,
// e.g. 1234567 -> "1,234,567 KRW".
func FormatWon(amount int64) string {
	return GroupDigits(amount) + " KRW"
}

// GroupDigits inserts comma separators into an integer, matching the
// toLocaleString rendering the app uses for money.
func GroupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// AchievementRate is funded/goal as a whole percentage, floored and capped
// at 100. A zero or missing goal yields 0.
func AchievementRate(funded, goal int64) int {
	if goal <= 0 {
		return 0
	}
	rate := int(funded * 100 / goal)
	if rate > 100 {
		return 100
	}
	if rate < 0 {
		return 0
	}
	return rate
}

// DaysLeft counts whole calendar days from now until the ISO-8601 deadline,
// never negative. Both ends are truncated to midnight so a deadline later
// today counts as zero days.
func DaysLeft(deadline string, now time.Time) (int, error) {
	t, err := ParseAPIDate(deadline)
	if err != nil {
		return 0, err
	}

	y, m, d := t.Date()
	deadlineDay := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	y, m, d = now.UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	diff := deadlineDay.Sub(today)
	if diff < 0 {
		return 0, nil
	}
	return int(diff / (24 * time.Hour)), nil
}

// ParseAPIDate parses the ISO-8601 date-time strings the API returns.
func ParseAPIDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05.000Z", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// FormatAPIDate renders a date the way the detail screen shows it.
func FormatAPIDate(s string) string {
	t, err := ParseAPIDate(s)
	if err != nil {
		return "unknown date"
	}
	return t.Format("Jan 2, 2006")
}
