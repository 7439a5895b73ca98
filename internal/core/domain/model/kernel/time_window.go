package kernel

import (
	"fmt"
	"time"

	"errands/internal/pkg/errs"
)

// TimeWindow is a closed interval [Start, End]. Both ends are optional; when
// both are set Start must not be after End.
type TimeWindow struct {
	start *time.Time
	end   *time.Time
}

func NewTimeWindow(start, end *time.Time) (TimeWindow, error) {
	if start != nil && end != nil && start.After(*end) {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause(
			"time window",
			fmt.Errorf("start %s is after end %s", start.Format(time.RFC3339), end.Format(time.RFC3339)),
		)
	}

	w := TimeWindow{}
	if start != nil {
		s := start.UTC()
		w.start = &s
	}
	if end != nil {
		e := end.UTC()
		w.end = &e
	}
	return w, nil
}

func (w TimeWindow) Start() *time.Time {
	return w.start
}

func (w TimeWindow) End() *time.Time {
	return w.end
}

// Contains reports whether t falls inside the window; open ends always match.
func (w TimeWindow) Contains(t time.Time) bool {
	if w.start != nil && t.Before(*w.start) {
		return false
	}
	if w.end != nil && t.After(*w.end) {
		return false
	}
	return true
}
