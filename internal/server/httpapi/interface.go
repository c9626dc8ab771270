package httpapi

import (
	"context"

	"evaluation_service/internal/domain"
	"evaluation_service/internal/service"
)

type LifecycleService interface {
	RefreshState(ctx context.Context, evaluationID string, persist bool) (domain.State, error)
}

type AssignmentService interface {
	Assign(ctx context.Context, actorID string, in service.AssignInput) (*domain.AssignGroup, error)
	UpdateFlags(ctx context.Context, actorID, assignGroupID string, patch domain.SafeFlagsPatch) (*domain.AssignGroup, error)
	Update(ctx context.Context, actorID string, group *domain.AssignGroup) (*domain.AssignGroup, error)
	Unassign(ctx context.Context, actorID, assignGroupID string) error
	ListByEvaluation(ctx context.Context, evaluationID string) ([]*domain.AssignGroup, error)
}

type ResponseService interface {
	ResponseForUserAndGroup(ctx context.Context, evaluationID, userID, groupID string) (*domain.Response, error)
	UsersInGroup(ctx context.Context, evaluationID, groupID string, include domain.Include) ([]string, error)
}

type Authorizer interface {
	CanBeginEvaluation(ctx context.Context, actorID string) bool
	CanTakeEvaluation(ctx context.Context, actorID, evaluationID, groupID string) (bool, error)
	CanControlEvaluation(ctx context.Context, actorID, evaluationID string) (bool, error)
	CanRemoveEvaluation(ctx context.Context, actorID, evaluationID string) (bool, error)
	CanCreateAssignGroup(ctx context.Context, actorID, evaluationID string) (bool, error)
	CanModifyResponse(ctx context.Context, actorID, responseID string) (bool, error)
}
