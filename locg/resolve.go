package locg

import (
	"fmt"
	"regexp"
	"time"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ResolveDate canonicalizes a release week into a YYYY-MM-DD string.
// A time.Time is truncated to its UTC date; a string must already match the
// YYYY-MM-DD pattern. Anything else fails with ErrInvalidArgument.
//
// No timezone conversion happens beyond the UTC truncation, so callers in
// non-UTC locales near midnight may resolve to the neighboring day. The
// upstream service leaves that case unspecified and so does this client.
func ResolveDate(date interface{}) (string, error) {
	switch d := date.(type) {
	case time.Time:
		return d.UTC().Format("2006-01-02"), nil
	case string:
		if !datePattern.MatchString(d) {
			return "", fmt.Errorf("%w: the 'date' parameter must be a time.Time or a string in YYYY-MM-DD format", ErrInvalidArgument)
		}
		return d, nil
	default:
		return "", fmt.Errorf("%w: the 'date' parameter must be a time.Time or a string in YYYY-MM-DD format", ErrInvalidArgument)
	}
}

// ResolvePublishers maps a mixed sequence of publisher names and numeric IDs
// to numeric IDs, preserving input order. It fails with ErrInvalidArgument on
// the first element that is neither a known name nor a number.
func ResolvePublishers(publishers []interface{}) ([]int, error) {
	ids := make([]int, 0, len(publishers))
	for _, p := range publishers {
		switch v := p.(type) {
		case int:
			ids = append(ids, v)
		case string:
			id, ok := Publishers[v]
			if !ok {
				return nil, fmt.Errorf("%w: '%s' is not a valid publisher name or ID", ErrInvalidArgument, v)
			}
			ids = append(ids, id)
		default:
			return nil, fmt.Errorf("%w: '%v' is not a valid publisher name or ID", ErrInvalidArgument, p)
		}
	}
	return ids, nil
}
