// Package hours parses the opening-hours strings carried on services and
// derives a live open/closed status from them. The supported format is the
// one the directory dataset uses: comma-separated day blocks such as
// "Mon-Fri: 8:00 AM - 5:00 PM, Sat: 9:00 AM - 1:00 PM", a bare time range
// that applies to every day, or "24/7" for always open.
package hours

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Status is the live state derived from a schedule.
type Status string

const (
	StatusOpen        Status = "open"
	StatusClosingSoon Status = "closing_soon"
	StatusClosed      Status = "closed"
)

// closingSoonMinutes is how close to closing a location must be before its
// status flips from open to closing_soon.
const closingSoonMinutes = 60

// ErrUnparseable reports an hours string the parser does not understand.
// Callers fall back to the statically stored status in that case.
var ErrUnparseable = errors.New("unparseable hours string")

var dayIndex = map[string]time.Weekday{
	"Sun": time.Sunday,
	"Mon": time.Monday,
	"Tue": time.Tuesday,
	"Wed": time.Wednesday,
	"Thu": time.Thursday,
	"Fri": time.Friday,
	"Sat": time.Saturday,
}

// block is one day-set with an opening window, minutes from midnight.
type block struct {
	days     [7]bool
	openMin  int
	closeMin int
}

// Schedule is a parsed opening-hours string.
type Schedule struct {
	always bool
	blocks []block
}

// ParseSchedule parses an opening-hours string into a Schedule. It returns
// ErrUnparseable (wrapped with the offending segment) for anything outside
// the supported format.
func ParseSchedule(s string) (*Schedule, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrUnparseable)
	}
	if s == "24/7" {
		return &Schedule{always: true}, nil
	}
	sched := &Schedule{}
	for _, seg := range strings.Split(s, ",") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		b, err := parseBlock(seg)
		if err != nil {
			return nil, err
		}
		sched.blocks = append(sched.blocks, b)
	}
	if len(sched.blocks) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnparseable, s)
	}
	return sched, nil
}

// StatusAt derives the status at the given instant. For open and
// closing_soon it also returns the closing clock time, e.g. "5:00 PM";
// always-open schedules and closed instants return an empty closing time.
func (s *Schedule) StatusAt(t time.Time) (Status, string) {
	if s.always {
		return StatusOpen, ""
	}
	day := t.Weekday()
	minute := t.Hour()*60 + t.Minute()
	for _, b := range s.blocks {
		if !b.days[day] || minute < b.openMin || minute >= b.closeMin {
			continue
		}
		closing := formatMinutes(b.closeMin)
		if b.closeMin-minute <= closingSoonMinutes {
			return StatusClosingSoon, closing
		}
		return StatusOpen, closing
	}
	return StatusClosed, ""
}

// parseBlock parses one segment like "Mon-Fri: 8:00 AM - 5:00 PM" or a bare
// "7:00 AM - 8:00 PM" that applies to every day.
func parseBlock(seg string) (block, error) {
	var b block
	timePart := seg
	if dayPart, rest, ok := strings.Cut(seg, ": "); ok {
		days, err := parseDays(strings.TrimSpace(dayPart))
		if err != nil {
			return b, err
		}
		b.days = days
		timePart = rest
	} else {
		for i := range b.days {
			b.days[i] = true
		}
	}
	openMin, closeMin, err := parseRange(strings.TrimSpace(timePart))
	if err != nil {
		return b, err
	}
	b.openMin, b.closeMin = openMin, closeMin
	return b, nil
}

func parseDays(spec string) ([7]bool, error) {
	var days [7]bool
	from, to, isRange := strings.Cut(spec, "-")
	start, ok := dayIndex[strings.TrimSpace(from)]
	if !ok {
		return days, fmt.Errorf("%w: day %q", ErrUnparseable, spec)
	}
	end := start
	if isRange {
		end, ok = dayIndex[strings.TrimSpace(to)]
		if !ok {
			return days, fmt.Errorf("%w: day %q", ErrUnparseable, spec)
		}
	}
	for d := start; ; d = (d + 1) % 7 {
		days[d] = true
		if d == end {
			break
		}
	}
	return days, nil
}

func parseRange(spec string) (openMin, closeMin int, err error) {
	from, to, ok := strings.Cut(spec, " - ")
	if !ok {
		return 0, 0, fmt.Errorf("%w: range %q", ErrUnparseable, spec)
	}
	if openMin, err = parseClock(from); err != nil {
		return 0, 0, err
	}
	if closeMin, err = parseClock(to); err != nil {
		return 0, 0, err
	}
	if closeMin <= openMin {
		return 0, 0, fmt.Errorf("%w: closes before it opens %q", ErrUnparseable, spec)
	}
	return openMin, closeMin, nil
}

func parseClock(spec string) (int, error) {
	t, err := time.Parse("3:04 PM", strings.TrimSpace(spec))
	if err != nil {
		return 0, fmt.Errorf("%w: time %q", ErrUnparseable, spec)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatMinutes(m int) string {
	h, min := m/60, m%60
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, min, period)
}
