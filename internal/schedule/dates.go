package schedule

import (
	"strings"
	"time"

	"gestiondeo/internal/domain"
)

// DisplayLayout is the single display encoding for dates, DD/MM/YYYY.
const DisplayLayout = "02/01/2006"

// isoLayout covers values written by date inputs and older sheet rows.
const isoLayout = "2006-01-02"

// ParseDate normalizes a sheet cell into a calendar date at local midnight.
// Accepts DD/MM/YYYY and YYYY-MM-DD. Empty cells, the Indeterminado sentinel
// and anything unparseable all come back as nil, never as an error: malformed
// historical data must degrade to "sin fecha", not crash a view.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, domain.Indeterminado) {
		return nil
	}

	for _, layout := range []string{DisplayLayout, isoLayout} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			t = Midnight(t)
			return &t
		}
	}
	return nil
}

// FormatDate is the inverse of ParseDate.
func FormatDate(t time.Time) string {
	return t.Format(DisplayLayout)
}

// Midnight truncates to 00:00 local so day-count subtraction is not skewed
// by time-of-day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddDays shifts by calendar days, staying at midnight across DST changes.
func AddDays(t time.Time, days int) time.Time {
	return Midnight(t.AddDate(0, 0, days))
}
