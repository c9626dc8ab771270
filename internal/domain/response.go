package domain

import (
	"time"
)

type Response struct {
	ID           string
	OwnerID      string
	EvaluationID string
	GroupID      string
	StartedAt    time.Time
	CompletedAt  *time.Time
}

func (r *Response) IsComplete() bool {
	return r != nil && r.CompletedAt != nil
}

// Include selects which participants of a group are returned.
type Include string

const (
	IncludeNonTakers   Include = "NONTAKERS"
	IncludeRespondents Include = "RESPONDENTS"
	IncludeAll         Include = "ALL"
)

func (i Include) IsValid() bool {
	switch i {
	case IncludeNonTakers, IncludeRespondents, IncludeAll:
		return true
	default:
		return false
	}
}
