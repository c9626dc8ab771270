package authz

import (
	"context"

	"evaluation_service/internal/domain"
)

// Store is the read side of persistence the engine needs.
type Store interface {
	FindEvaluation(ctx context.Context, id string) (*domain.Evaluation, error)
	FindAssignGroupByID(ctx context.Context, id string) (*domain.AssignGroup, error)
	FindAssignGroup(ctx context.Context, evaluationID, groupID string) (*domain.AssignGroup, error)
	CountApprovedAssignGroups(ctx context.Context, evaluationID string, groupIDs []string) (int, error)
	FindResponseByID(ctx context.Context, id string) (*domain.Response, error)
	FindResponses(ctx context.Context, evaluationID, ownerID, groupID string) ([]*domain.Response, error)
	FindEmailTemplate(ctx context.Context, id string) (*domain.EmailTemplate, error)
	FindDefaultEmailTemplate(ctx context.Context, t domain.EmailTemplateType) (*domain.EmailTemplate, error)
	CountTemplates(ctx context.Context) (int, error)
	CountVisibleTemplates(ctx context.Context, userID string, sharing []domain.Sharing) (int, error)
}

type Directory interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
	HasPermissionInGroup(ctx context.Context, userID string, permission domain.Permission, groupID string) (bool, error)
	GroupsForUser(ctx context.Context, userID string, permission domain.Permission) ([]string, error)
}

type Policy struct {
	// InstructorsCreateEvaluations lets non-admins with assign permission
	// begin evaluations.
	InstructorsCreateEvaluations bool
	// AdminUnassignRunning lets admins remove groups from evaluations
	// that are no longer NEW.
	AdminUnassignRunning bool
}

func DefaultPolicy() Policy {
	return Policy{InstructorsCreateEvaluations: true}
}
