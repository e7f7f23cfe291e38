package schedule

import (
	"fmt"
	"time"
)

const boundLayout = "15:04:05"

// Window is the daily interval, in a fixed timezone, during which form
// intake is open. The interval is half-open: the start instant is
// inside the window, the end instant is not. Overnight windows are not
// supported.
type Window struct {
	loc   *time.Location
	start time.Duration
	end   time.Duration
}

// NewWindow parses "HH:MM:SS" bounds in the given IANA timezone.
// Invalid input here is a configuration error and fatal upstream.
func NewWindow(timezone, start, end string) (*Window, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	startOffset, err := parseBound(start)
	if err != nil {
		return nil, fmt.Errorf("invalid window start: %w", err)
	}

	endOffset, err := parseBound(end)
	if err != nil {
		return nil, fmt.Errorf("invalid window end: %w", err)
	}

	if startOffset >= endOffset {
		return nil, fmt.Errorf("window start %s must be before end %s", start, end)
	}

	return &Window{loc: loc, start: startOffset, end: endOffset}, nil
}

// IsOpen reports whether now falls inside the window on the wall clock
// of the window's timezone.
func (w *Window) IsOpen(now time.Time) bool {
	local := now.In(w.loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, w.loc)
	offset := local.Sub(midnight)
	return offset >= w.start && offset < w.end
}

// Location returns the window's timezone
func (w *Window) Location() *time.Location {
	return w.loc
}

func parseBound(value string) (time.Duration, error) {
	t, err := time.Parse(boundLayout, value)
	if err != nil {
		return 0, fmt.Errorf("time of day %q is not HH:MM:SS: %w", value, err)
	}
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second, nil
}
