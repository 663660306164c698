package typst

import (
	"strings"

	"github.com/araddon/dateparse"
)

// FormatDate normalizes a scraped date string to the display form used in
// the document header, e.g. "Nov 26, 2025". Handles ISO timestamps and the
// common prose formats articles carry. Unparsable input is returned
// unchanged rather than dropped.
func FormatDate(dateString string) string {
	dateString = strings.TrimSpace(dateString)
	if dateString == "" {
		return ""
	}

	t, err := dateparse.ParseAny(dateString)
	if err != nil {
		return dateString
	}

	return t.Format("Jan 2, 2006")
}
