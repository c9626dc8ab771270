package domain

import (
	"time"
)

type GroupType string

const (
	GroupTypeSite     GroupType = "SITE"
	GroupTypeSection  GroupType = "SECTION"
	GroupTypeAdhoc    GroupType = "ADHOC"
	GroupTypeProvided GroupType = "PROVIDED"
)

func (g GroupType) IsValid() bool {
	switch g {
	case GroupTypeSite, GroupTypeSection, GroupTypeAdhoc, GroupTypeProvided:
		return true
	default:
		return false
	}
}

// SafeFlags are the assignment settings that stay editable for the whole
// lifetime of an evaluation.
type SafeFlags struct {
	InstructorApproval     bool `json:"instructor_approval"`
	InstructorsViewResults bool `json:"instructors_view_results"`
	StudentsViewResults    bool `json:"students_view_results"`
}

// SafeFlagsPatch carries a partial flag update; nil fields are left alone.
type SafeFlagsPatch struct {
	InstructorApproval     *bool `json:"instructor_approval,omitempty"`
	InstructorsViewResults *bool `json:"instructors_view_results,omitempty"`
	StudentsViewResults    *bool `json:"students_view_results,omitempty"`
}

func (p SafeFlagsPatch) IsEmpty() bool {
	return p.InstructorApproval == nil && p.InstructorsViewResults == nil && p.StudentsViewResults == nil
}

func (p SafeFlagsPatch) Apply(f SafeFlags) SafeFlags {
	if p.InstructorApproval != nil {
		f.InstructorApproval = *p.InstructorApproval
	}
	if p.InstructorsViewResults != nil {
		f.InstructorsViewResults = *p.InstructorsViewResults
	}
	if p.StudentsViewResults != nil {
		f.StudentsViewResults = *p.StudentsViewResults
	}
	return f
}

type AssignGroup struct {
	ID           string
	EvaluationID string
	GroupID      string
	GroupType    GroupType
	Flags        SafeFlags
	OwnerID      string
	CreatedAt    time.Time
	EditedAt     time.Time
}

// SameIdentity reports whether other points at the same evaluation and
// group as g. Identity fields never change after creation.
func (g *AssignGroup) SameIdentity(other *AssignGroup) bool {
	return g.EvaluationID == other.EvaluationID &&
		g.GroupID == other.GroupID &&
		g.GroupType == other.GroupType
}
