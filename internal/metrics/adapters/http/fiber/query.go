package fiber

import (
	"errors"
	"time"

	"chat-analytics-service/internal/metrics/core/ports"
)

var (
	ErrInvalidWindow    = errors.New("begin and end must be valid timestamps")
	ErrInvalidMetric    = errors.New("unknown metric")
	ErrInvalidBucketing = errors.New("bucketing must be position or dense")
)

// Accepted begin/end layouts, tried in order. Layouts without a zone are
// read in the service location.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTime(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidWindow
}

func parseWindow(begin, end string, loc *time.Location) (ports.Window, error) {
	b, err := parseTime(begin, loc)
	if err != nil {
		return ports.Window{}, err
	}
	e, err := parseTime(end, loc)
	if err != nil {
		return ports.Window{}, err
	}
	return ports.Window{Begin: b, End: e}, nil
}
