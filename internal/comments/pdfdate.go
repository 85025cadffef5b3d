package comments

import (
	"regexp"
	"strconv"
	"time"
)

// pdfDatePattern matches the native PDF date form D:YYYYMMDDHHMMSS.
// Anything after the seconds (timezone or offset suffix) is ignored;
// the digits are interpreted as a UTC instant.
var pdfDatePattern = regexp.MustCompile(`^D:(\d{4})(\d{2})(\d{2})(\d{2})(\d{2})(\d{2})`)

// genericDateLayouts are tried, in order, for raw timestamps that are
// not native PDF dates.
var genericDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC1123Z,
	time.RFC1123,
	time.ANSIC,
	"2006-01-02",
}

// NormalizeDate converts a raw annotation timestamp into the canonical
// "YYYY-MM-DD HH:MM:SSZ" UTC form. An empty raw value yields an empty
// result. A non-empty value that matches neither the native PDF date
// pattern nor any generic layout also normalizes to "" rather than
// failing.
func NormalizeDate(raw string) string {
	if raw == "" {
		return ""
	}

	if m := pdfDatePattern.FindStringSubmatch(raw); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		hour, _ := strconv.Atoi(m[4])
		minute, _ := strconv.Atoi(m[5])
		second, _ := strconv.Atoi(m[6])

		t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
		return formatUTC(t)
	}

	for _, layout := range genericDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return formatUTC(t.UTC())
		}
	}

	return ""
}

func formatUTC(t time.Time) string {
	return t.Format("2006-01-02 15:04:05") + "Z"
}
