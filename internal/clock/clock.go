// ABOUTME: Clock abstraction producing sortable ISO-8601 timestamps.
// ABOUTME: String comparison on these values equals chronological order.

package clock

import "time"

// Layout is RFC3339 UTC with fixed millisecond precision. Fixed width keeps
// lexicographic comparison identical to chronological comparison, which the
// query engine relies on when sorting by timestamp strings.
const Layout = "2006-01-02T15:04:05.000Z"

type Clock interface {
	Now() string
}

// System reads the wall clock.
type System struct{}

func (System) Now() string {
	return time.Now().UTC().Format(Layout)
}

// Parse decodes a timestamp produced by a Clock. It also accepts plain
// RFC3339 values so records written by other tooling still load.
func Parse(ts string) (time.Time, error) {
	t, err := time.Parse(Layout, ts)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, ts)
}

// LocalDate reduces a timestamp to the calendar date in the local timezone,
// formatted as 2006-01-02. Returns false when ts does not parse.
func LocalDate(ts string) (string, bool) {
	t, err := Parse(ts)
	if err != nil {
		return "", false
	}
	return t.In(time.Local).Format("2006-01-02"), true
}

// Fixed is a test clock that returns a programmed sequence of instants,
// repeating the last one when the sequence runs out.
type Fixed struct {
	Times []string
	idx   int
}

func (f *Fixed) Now() string {
	if len(f.Times) == 0 {
		return "1970-01-01T00:00:00.000Z"
	}
	ts := f.Times[f.idx]
	if f.idx < len(f.Times)-1 {
		f.idx++
	}
	return ts
}
