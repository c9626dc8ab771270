package domain

import (
	"time"
)

type AuthControl string

const (
	AuthControlNone         AuthControl = "NONE"
	AuthControlKey          AuthControl = "KEY"
	AuthControlAuthRequired AuthControl = "AUTH_REQUIRED"
)

func (a AuthControl) IsValid() bool {
	switch a {
	case AuthControlNone, AuthControlKey, AuthControlAuthRequired:
		return true
	default:
		return false
	}
}

type Evaluation struct {
	ID                     string
	Title                  string
	OwnerID                string
	StartDate              *time.Time
	DueDate                *time.Time
	StopDate               *time.Time
	ViewDate               *time.Time
	AuthControl            AuthControl
	ModifyResponsesAllowed bool
	Locked                 bool
	State                  State
	AvailableTemplateID    *string
	ReminderTemplateID     *string
	CreatedAt              time.Time
	EditedAt               time.Time
}

// HasIdentity reports whether the evaluation has been stored and may be
// written back.
func (e *Evaluation) HasIdentity() bool {
	return e != nil && e.ID != ""
}

func (e *Evaluation) IsOwnedBy(userID string) bool {
	return e != nil && userID != "" && e.OwnerID == userID
}

// TemplateSlot returns the email template id configured for the given slot.
func (e *Evaluation) TemplateSlot(t EmailTemplateType) (string, bool) {
	var id *string
	switch t {
	case EmailTemplateAvailable:
		id = e.AvailableTemplateID
	case EmailTemplateReminder:
		id = e.ReminderTemplateID
	}
	if id == nil || *id == "" {
		return "", false
	}
	return *id, true
}

// UsesTemplate reports whether templateID fills the available or reminder slot.
func (e *Evaluation) UsesTemplate(templateID string) bool {
	for _, t := range []EmailTemplateType{EmailTemplateAvailable, EmailTemplateReminder} {
		if id, ok := e.TemplateSlot(t); ok && id == templateID {
			return true
		}
	}
	return false
}
