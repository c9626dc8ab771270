package lifecycle

import (
	"time"

	"evaluation_service/internal/domain"
)

// Resolve derives the lifecycle state of e at now from its date boundaries.
//
// Start and due are required. A missing stop date falls back to the due
// date, and a missing view date keeps the evaluation closed forever once it
// stops. A boundary counts as passed from the instant it is reached.
// Missing required dates or boundaries out of order resolve to UNKNOWN.
func Resolve(e *domain.Evaluation, now time.Time) domain.State {
	if e == nil || e.StartDate == nil || e.DueDate == nil {
		return domain.StateUnknown
	}

	start, due := *e.StartDate, *e.DueDate
	stop := due
	if e.StopDate != nil {
		stop = *e.StopDate
	}

	if due.Before(start) || stop.Before(due) {
		return domain.StateUnknown
	}
	if e.ViewDate != nil && e.ViewDate.Before(stop) {
		return domain.StateUnknown
	}

	switch {
	case now.Before(start):
		return domain.StateNew
	case now.Before(due):
		return domain.StateActive
	case now.Before(stop):
		return domain.StateDue
	case e.ViewDate == nil || now.Before(*e.ViewDate):
		return domain.StateClosed
	default:
		return domain.StateViewable
	}
}
