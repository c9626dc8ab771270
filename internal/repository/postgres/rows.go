package postgres

import (
	"time"

	"evaluation_service/internal/domain"
)

const (
	evaluationColumns = `id, title, owner_id, start_date, due_date, stop_date, view_date, auth_control,
		modify_responses_allowed, locked, state, available_template_id, reminder_template_id, created_at, edited_at`
	assignGroupColumns = `id, evaluation_id, group_id, group_type, instructor_approval, instructors_view_results,
		students_view_results, owner_id, created_at, edited_at`
	responseColumns      = `id, owner_id, evaluation_id, group_id, started_at, completed_at`
	emailTemplateColumns = `id, owner_id, type, default_type, subject, message`
)

type evaluationRow struct {
	ID                     string     `db:"id"`
	Title                  string     `db:"title"`
	OwnerID                string     `db:"owner_id"`
	StartDate              *time.Time `db:"start_date"`
	DueDate                *time.Time `db:"due_date"`
	StopDate               *time.Time `db:"stop_date"`
	ViewDate               *time.Time `db:"view_date"`
	AuthControl            string     `db:"auth_control"`
	ModifyResponsesAllowed bool       `db:"modify_responses_allowed"`
	Locked                 bool       `db:"locked"`
	State                  string     `db:"state"`
	AvailableTemplateID    *string    `db:"available_template_id"`
	ReminderTemplateID     *string    `db:"reminder_template_id"`
	CreatedAt              time.Time  `db:"created_at"`
	EditedAt               time.Time  `db:"edited_at"`
}

func (r *evaluationRow) toDomain() *domain.Evaluation {
	return &domain.Evaluation{
		ID:                     r.ID,
		Title:                  r.Title,
		OwnerID:                r.OwnerID,
		StartDate:              r.StartDate,
		DueDate:                r.DueDate,
		StopDate:               r.StopDate,
		ViewDate:               r.ViewDate,
		AuthControl:            domain.AuthControl(r.AuthControl),
		ModifyResponsesAllowed: r.ModifyResponsesAllowed,
		Locked:                 r.Locked,
		State:                  domain.ToState(r.State),
		AvailableTemplateID:    r.AvailableTemplateID,
		ReminderTemplateID:     r.ReminderTemplateID,
		CreatedAt:              r.CreatedAt,
		EditedAt:               r.EditedAt,
	}
}

type assignGroupRow struct {
	ID                     string    `db:"id"`
	EvaluationID           string    `db:"evaluation_id"`
	GroupID                string    `db:"group_id"`
	GroupType              string    `db:"group_type"`
	InstructorApproval     bool      `db:"instructor_approval"`
	InstructorsViewResults bool      `db:"instructors_view_results"`
	StudentsViewResults    bool      `db:"students_view_results"`
	OwnerID                string    `db:"owner_id"`
	CreatedAt              time.Time `db:"created_at"`
	EditedAt               time.Time `db:"edited_at"`
}

func (r *assignGroupRow) toDomain() *domain.AssignGroup {
	return &domain.AssignGroup{
		ID:           r.ID,
		EvaluationID: r.EvaluationID,
		GroupID:      r.GroupID,
		GroupType:    domain.GroupType(r.GroupType),
		Flags: domain.SafeFlags{
			InstructorApproval:     r.InstructorApproval,
			InstructorsViewResults: r.InstructorsViewResults,
			StudentsViewResults:    r.StudentsViewResults,
		},
		OwnerID:   r.OwnerID,
		CreatedAt: r.CreatedAt,
		EditedAt:  r.EditedAt,
	}
}

type responseRow struct {
	ID           string     `db:"id"`
	OwnerID      string     `db:"owner_id"`
	EvaluationID string     `db:"evaluation_id"`
	GroupID      string     `db:"group_id"`
	StartedAt    time.Time  `db:"started_at"`
	CompletedAt  *time.Time `db:"completed_at"`
}

func (r *responseRow) toDomain() *domain.Response {
	return &domain.Response{
		ID:           r.ID,
		OwnerID:      r.OwnerID,
		EvaluationID: r.EvaluationID,
		GroupID:      r.GroupID,
		StartedAt:    r.StartedAt,
		CompletedAt:  r.CompletedAt,
	}
}

type emailTemplateRow struct {
	ID          string  `db:"id"`
	OwnerID     string  `db:"owner_id"`
	Type        string  `db:"type"`
	DefaultType *string `db:"default_type"`
	Subject     string  `db:"subject"`
	Message     string  `db:"message"`
}

func (r *emailTemplateRow) toDomain() *domain.EmailTemplate {
	t := &domain.EmailTemplate{
		ID:      r.ID,
		OwnerID: r.OwnerID,
		Type:    domain.EmailTemplateType(r.Type),
		Subject: r.Subject,
		Message: r.Message,
	}
	if r.DefaultType != nil {
		dt := domain.EmailTemplateType(*r.DefaultType)
		t.DefaultType = &dt
	}
	return t
}

func statesToStrings(states []domain.State) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = string(s)
	}
	return out
}

func sharingToStrings(levels []domain.Sharing) []string {
	out := make([]string, len(levels))
	for i, s := range levels {
		out[i] = string(s)
	}
	return out
}
