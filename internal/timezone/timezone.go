package timezone

import "time"

const DefaultTimezone = "UTC"

const (
	dateLayout    = "2006-01-02"
	displayLayout = "1/2/2006"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location returns the named zone, falling back to DefaultTimezone.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// parseDate accepts a plain calendar date or a full timestamp, which the
// appointment API sometimes returns for the date field.
func parseDate(raw string, loc *time.Location) (time.Time, bool) {
	if t, err := time.ParseInLocation(dateLayout, raw, loc); err == nil {
		return t, true
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}

// DateOnly returns a YYYY-MM-DD calendar date for loc, as date inputs
// expect. Unparseable input is returned unchanged.
func DateOnly(loc *time.Location) func(string) string {
	return func(raw string) string {
		t, ok := parseDate(raw, loc)
		if !ok {
			return raw
		}
		return t.Format(dateLayout)
	}
}

// FormatDate renders a date for display, e.g. 1/2/2030.
func FormatDate(loc *time.Location) func(string) string {
	return func(raw string) string {
		t, ok := parseDate(raw, loc)
		if !ok {
			return raw
		}
		return t.Format(displayLayout)
	}
}
