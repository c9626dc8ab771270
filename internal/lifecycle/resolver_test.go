package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"evaluation_service/internal/domain"
)

func ptr(t time.Time) *time.Time {
	return &t
}

func evaluationAt(base time.Time, start, due, stop, view *int) *domain.Evaluation {
	at := func(h *int) *time.Time {
		if h == nil {
			return nil
		}
		return ptr(base.Add(time.Duration(*h) * time.Hour))
	}
	return &domain.Evaluation{
		ID:        "eval-1",
		StartDate: at(start),
		DueDate:   at(due),
		StopDate:  at(stop),
		ViewDate:  at(view),
	}
}

func h(v int) *int {
	return &v
}

func TestResolve(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		eval *domain.Evaluation
		now  time.Time
		want domain.State
	}{
		{"BeforeStart", evaluationAt(base, h(1), h(2), h(3), h(4)), base, domain.StateNew},
		{"AtStart", evaluationAt(base, h(0), h(2), h(3), h(4)), base, domain.StateActive},
		{"Running", evaluationAt(base, h(-2), h(1), h(5), nil), base, domain.StateActive},
		{"AtDue", evaluationAt(base, h(-2), h(0), h(5), nil), base, domain.StateDue},
		{"GracePeriod", evaluationAt(base, h(-3), h(-1), h(2), h(4)), base, domain.StateDue},
		{"Stopped", evaluationAt(base, h(-3), h(-2), h(-1), h(4)), base, domain.StateClosed},
		{"StoppedWithoutView", evaluationAt(base, h(-3), h(-2), h(-1), nil), base.Add(1000 * time.Hour), domain.StateClosed},
		{"Viewable", evaluationAt(base, h(-4), h(-3), h(-2), h(-1)), base, domain.StateViewable},
		{"AtView", evaluationAt(base, h(-4), h(-3), h(-2), h(0)), base, domain.StateViewable},
		{"NoStopFallsBackToDue", evaluationAt(base, h(-2), h(-1), nil, h(3)), base, domain.StateClosed},
		{"NoStopBeforeDue", evaluationAt(base, h(-2), h(1), nil, nil), base, domain.StateActive},
		{"MissingStart", evaluationAt(base, nil, h(1), h(2), nil), base, domain.StateUnknown},
		{"MissingDue", evaluationAt(base, h(-1), nil, h(2), nil), base, domain.StateUnknown},
		{"DueBeforeStart", evaluationAt(base, h(2), h(1), h(3), nil), base, domain.StateUnknown},
		{"StopBeforeDue", evaluationAt(base, h(-2), h(2), h(1), nil), base, domain.StateUnknown},
		{"ViewBeforeStop", evaluationAt(base, h(-2), h(1), h(3), h(2)), base, domain.StateUnknown},
		{"NilEvaluation", nil, base, domain.StateUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.eval, tt.now))
		})
	}
}

func TestResolve_IsPure(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	eval := evaluationAt(base, h(-2), h(1), h(5), nil)
	eval.State = domain.StateClosed

	first := Resolve(eval, base)
	second := Resolve(eval, base)

	assert.Equal(t, domain.StateActive, first)
	assert.Equal(t, first, second)
	assert.Equal(t, domain.StateClosed, eval.State)
}

func TestResolve_NeverSkipsBoundary(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	eval := evaluationAt(base, h(10), h(20), h(30), h(40))

	var seen []domain.State
	prev := domain.State("")
	for minute := 0; minute <= 50*60; minute += 7 {
		st := Resolve(eval, base.Add(time.Duration(minute)*time.Minute))
		if st != prev {
			if prev != "" {
				assert.True(t, prev.Before(st), "moved from %s to %s", prev, st)
			}
			seen = append(seen, st)
			prev = st
		}
	}

	assert.Equal(t, []domain.State{
		domain.StateNew,
		domain.StateActive,
		domain.StateDue,
		domain.StateClosed,
		domain.StateViewable,
	}, seen)
}

func TestFixedClock_Resolver(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, now, FixedClock(now).Now())
	assert.Equal(t, time.UTC, SystemClock().Now().Location())
}
