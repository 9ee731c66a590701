package export

import (
	"fmt"
	"strings"
	"time"
)

const (
	// isoLayout is the ISO-8601 form carried by API timestamp fields.
	isoLayout = "2006-01-02T15:04:05Z"

	// exportDateLayout is the human-formatted date written to exports.
	exportDateLayout = "02/01/2006"
)

// DateDDMMYYYY reformats an ISO-8601 timestamp to DD/MM/YYYY. A value
// that does not parse is a hard error, not a skipped row.
func DateDDMMYYYY(value string) (string, error) {
	t, err := time.Parse(isoLayout, value)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", value, err)
	}
	return t.Format(exportDateLayout), nil
}

// StripLeadingAt removes a leading "@" from a value. GitHub company
// fields conventionally carry one ("@acme").
func StripLeadingAt(value string) (string, error) {
	return strings.TrimPrefix(value, "@"), nil
}
