package report

import (
	"fmt"
	"time"

	"github.com/shopledger/backend/internal/domain/shared"
)

// Unit is the granularity of a relative window
type Unit string

const (
	Hour  Unit = "hour"
	Day   Unit = "day"
	Month Unit = "month"
	Year  Unit = "year"
)

type windowKind int

const (
	kindRelative windowKind = iota
	kindToday
	kindAll
	kindRange
)

// ErrUnknownRange is returned for a range name that is not supported
var ErrUnknownRange = shared.ErrInvalidInput.WithMessage("Unknown report range")

// Window selects records by creation time.
// Relative windows reach back from the evaluation instant and are open at the
// upper end; explicit ranges are inclusive on both ends and either bound may
// be absent.
type Window struct {
	Name  string
	kind  windowKind
	count int
	unit  Unit
	start *time.Time
	end   *time.Time
}

// Relative returns a window covering the last n units before now
func Relative(name string, n int, unit Unit) Window {
	return Window{Name: name, kind: kindRelative, count: n, unit: unit}
}

// Today returns a window starting at midnight of the evaluation day
func Today() Window {
	return Window{Name: "today", kind: kindToday}
}

// AllTime returns a window with no bounds
func AllTime() Window {
	return Window{Name: "all_time", kind: kindAll}
}

// Between returns an explicit range. Nil bounds leave that side open.
func Between(name string, start, end *time.Time) Window {
	return Window{Name: name, kind: kindRange, start: start, end: end}
}

// DateRange builds an explicit range from calendar dates: start is moved to
// the beginning of its day and end to the last instant of its day.
func DateRange(start, end *time.Time) Window {
	var from, to *time.Time
	if start != nil {
		s := StartOfDay(*start)
		from = &s
	}
	if end != nil {
		e := EndOfDay(*end)
		to = &e
	}
	return Between("date_range", from, to)
}

// Bounds resolves the window against the evaluation instant.
// A nil bound means that side is unbounded.
func (w Window) Bounds(now time.Time) (from, to *time.Time) {
	switch w.kind {
	case kindRelative:
		f := shift(now, -w.count, w.unit)
		return &f, nil
	case kindToday:
		f := StartOfDay(now)
		return &f, nil
	case kindRange:
		return w.start, w.end
	default:
		return nil, nil
	}
}

// Contains reports whether t falls inside the window for the given instant
func (w Window) Contains(t, now time.Time) bool {
	from, to := w.Bounds(now)
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}

func (w Window) String() string {
	switch w.kind {
	case kindRelative:
		return fmt.Sprintf("%s(last %d %s)", w.Name, w.count, w.unit)
	default:
		return w.Name
	}
}

func shift(t time.Time, n int, unit Unit) time.Time {
	switch unit {
	case Hour:
		return t.Add(time.Duration(n) * time.Hour)
	case Month:
		return t.AddDate(0, n, 0)
	case Year:
		return t.AddDate(n, 0, 0)
	default:
		return t.AddDate(0, 0, n)
	}
}

// StartOfDay truncates t to midnight in t's location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's day
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// Named ranges accepted by the profit overview
const (
	RangeToday       = "today"
	RangeLast3Days   = "last_3_days"
	RangeLast7Days   = "last_7_days"
	RangeLast15Days  = "last_15_days"
	RangeLast1Month  = "last_1_month"
	RangeLast3Months = "last_3_months"
	RangeLast6Months = "last_6_months"
	RangeLast1Year   = "last_1_year"
	RangeLast3Hours  = "last_3_hours"
	RangeLast5Hours  = "last_5_hours"
	RangeLast8Hours  = "last_8_hours"
	RangeAllTime     = "all_time"
	DefaultRange     = RangeToday
)

var namedRanges = map[string]Window{
	RangeToday:       Today(),
	RangeLast3Days:   Relative(RangeLast3Days, 3, Day),
	RangeLast7Days:   Relative(RangeLast7Days, 7, Day),
	RangeLast15Days:  Relative(RangeLast15Days, 15, Day),
	RangeLast1Month:  Relative(RangeLast1Month, 1, Month),
	RangeLast3Months: Relative(RangeLast3Months, 3, Month),
	RangeLast6Months: Relative(RangeLast6Months, 6, Month),
	RangeLast1Year:   Relative(RangeLast1Year, 1, Year),
	RangeLast3Hours:  Relative(RangeLast3Hours, 3, Hour),
	RangeLast5Hours:  Relative(RangeLast5Hours, 5, Hour),
	RangeLast8Hours:  Relative(RangeLast8Hours, 8, Hour),
}

// NamedRange looks up a predefined window; an empty name means today
func NamedRange(name string) (Window, error) {
	if name == "" {
		name = DefaultRange
	}
	w, ok := namedRanges[name]
	if !ok {
		return Window{}, ErrUnknownRange.WithMessage(fmt.Sprintf("Unknown report range %q", name))
	}
	return w, nil
}

// SalesWindows are the day, month and year windows of the overview report
func SalesWindows() []Window {
	return []Window{
		namedRanges[RangeToday],
		namedRanges[RangeLast3Days],
		namedRanges[RangeLast7Days],
		namedRanges[RangeLast15Days],
		namedRanges[RangeLast1Month],
		namedRanges[RangeLast3Months],
		namedRanges[RangeLast6Months],
		namedRanges[RangeLast1Year],
	}
}

// HourWindows are the short trailing windows of the overview report
func HourWindows() []Window {
	return []Window{
		namedRanges[RangeLast3Hours],
		namedRanges[RangeLast5Hours],
		namedRanges[RangeLast8Hours],
	}
}

// StandardWindows is every window of the overview report, all-time first
func StandardWindows() []Window {
	windows := []Window{AllTime()}
	windows = append(windows, SalesWindows()...)
	return append(windows, HourWindows()...)
}
