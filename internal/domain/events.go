package domain

import (
	"time"
)

type Permission string

const (
	PermissionTakeEvaluation   Permission = "eval.take_evaluation"
	PermissionAssignEvaluation Permission = "eval.assign_evaluation"
)

const (
	EventEvaluationStarted  = "evaluation.state.start"
	EventEvaluationDue      = "evaluation.state.due"
	EventEvaluationStopped  = "evaluation.state.stop"
	EventEvaluationViewable = "evaluation.state.viewable"
	EventGroupAvailable     = "evaluation.group.available"
)

// EventForState returns the lifecycle event announcing entry into s.
// NEW and UNKNOWN have no event.
func EventForState(s State) (string, bool) {
	switch s {
	case StateActive:
		return EventEvaluationStarted, true
	case StateDue:
		return EventEvaluationDue, true
	case StateClosed:
		return EventEvaluationStopped, true
	case StateViewable:
		return EventEvaluationViewable, true
	default:
		return "", false
	}
}

type LifecycleEvent struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	EvaluationID string    `json:"evaluation_id"`
	GroupID      string    `json:"group_id,omitempty"`
	State        State     `json:"state,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
