package reservation

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidStay = errors.New("stay start must be before end")

const dateLayout = time.DateOnly

// Stay is a half-open range of calendar days [start, end). The end date is
// the checkout day and is free for the next guest.
type Stay struct {
	start time.Time
	end   time.Time
}

func NewStay(start, end time.Time) (Stay, error) {
	start, end = truncateDay(start), truncateDay(end)
	if !start.Before(end) {
		return Stay{}, ErrInvalidStay
	}
	return Stay{start: start, end: end}, nil
}

func ParseStay(start, end string) (Stay, error) {
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return Stay{}, fmt.Errorf("%w: start %q", ErrInvalidStay, start)
	}
	e, err := time.Parse(dateLayout, end)
	if err != nil {
		return Stay{}, fmt.Errorf("%w: end %q", ErrInvalidStay, end)
	}
	return NewStay(s, e)
}

// MustStay is for fixtures and tests.
func MustStay(start, end string) Stay {
	s, err := ParseStay(start, end)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Stay) Start() time.Time { return s.start }
func (s Stay) End() time.Time   { return s.end }

func (s Stay) Nights() int {
	return int(s.end.Sub(s.start).Hours() / 24)
}

// Overlaps reports whether s and other share at least one night.
func (s Stay) Overlaps(other Stay) bool {
	return s.start.Before(other.end) && other.start.Before(s.end)
}

func (s Stay) String() string {
	return fmt.Sprintf("[%s,%s)", s.start.Format(dateLayout), s.end.Format(dateLayout))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
