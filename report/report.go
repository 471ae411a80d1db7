package report

import (
	"fmt"
	"io"
	"time"
)

// FormatDuration renders d the way the solution footer shows it.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%.2f ms", float64(d)/float64(time.Millisecond))
	case d > time.Minute:
		minutes := float64(d / time.Minute)
		seconds := (d % time.Minute).Seconds()

		return fmt.Sprintf("%.1f m %.2f s", minutes, seconds)
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) {
		if now != nil {
			t.now = now
		}
	}
}

// Timer measures part one (from NewTimer to Split) and part two (from
// Split to Write).
type Timer struct {
	now       func() time.Time
	startOne  time.Time
	startTwo  time.Time
	splitDone bool
}

// NewTimer starts timing part one.
func NewTimer(opts ...Option) *Timer {
	t := &Timer{now: time.Now}
	for _, fn := range opts {
		fn(t)
	}
	t.startOne = t.now()

	return t
}

// Split ends part one and starts part two. Only the first call counts.
func (t *Timer) Split() {
	if t.splitDone {
		return
	}
	t.startTwo = t.now()
	t.splitDone = true
}

// Write prints both solutions and the timing footer to w. Without a prior
// Split, all elapsed time is attributed to part one.
func (t *Timer) Write(w io.Writer, one, two any) error {
	end := t.now()
	if !t.splitDone {
		t.startTwo = end
	}
	_, err := fmt.Fprintf(w, "Solution #1: %v\nSolution #2: %v\n\nTime: %s\nTime #1: %s\nTime #2: %s\n",
		one, two,
		FormatDuration(end.Sub(t.startOne)),
		FormatDuration(t.startTwo.Sub(t.startOne)),
		FormatDuration(end.Sub(t.startTwo)))

	return err
}
