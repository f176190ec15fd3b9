package format

import (
	"strings"
	"time"

	"github.com/matzehuels/loracharts/pkg/errors"
)

// DateKind selects a date presentation.
type DateKind string

const (
	Short DateKind = "short" // Jan 2
	Long  DateKind = "long"  // January 2, 2006
	Full  DateKind = "full"  // Monday, January 2, 2006
)

var dateLayouts = map[DateKind]string{
	Short: "Jan 2",
	Long:  "January 2, 2006",
	Full:  "Monday, January 2, 2006",
}

// ParseDateKind validates s as a DateKind. An empty string means Short.
func ParseDateKind(s string) (DateKind, error) {
	k := DateKind(strings.ToLower(strings.TrimSpace(s)))
	if k == "" {
		return Short, nil
	}
	if _, ok := dateLayouts[k]; !ok {
		return "", errors.New(errors.ErrCodeInvalidFormat, "unknown date format %q (must be short, long or full)", s)
	}
	return k, nil
}

// FormatDate formats t in its own location. Unknown kinds format as Full.
func FormatDate(t time.Time, kind DateKind) string {
	layout, ok := dateLayouts[kind]
	if !ok {
		layout = dateLayouts[Full]
	}
	return t.Format(layout)
}

// inputLayouts are the date spellings ParseDate accepts, most specific first.
var inputLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// ParseDate reads an RFC 3339 timestamp or a plain YYYY-MM-DD date (UTC).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New(errors.ErrCodeInvalidInput, "invalid date %q (use YYYY-MM-DD or RFC 3339)", s)
}
