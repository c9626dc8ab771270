package service

import (
	"context"
	"time"

	"evaluation_service/internal/authz"
	"evaluation_service/internal/domain"
)

type Store interface {
	authz.Store

	// FindAssignGroups returns the groups of the given evaluations ordered by
	// creation time.
	FindAssignGroups(ctx context.Context, evaluationIDs []string, includeUnapproved bool) ([]*domain.AssignGroup, error)
	CountAssignGroups(ctx context.Context, evaluationID string) (int, error)
	// CreateAssignGroup fails with errdefs.ErrDuplicateAssignment when the
	// evaluation already has the group.
	CreateAssignGroup(ctx context.Context, group *domain.AssignGroup) error
	SaveAssignGroupFlags(ctx context.Context, id string, flags domain.SafeFlags, editedAt time.Time) error
	DeleteAssignGroup(ctx context.Context, id string) error
	SaveEvaluationState(ctx context.Context, id string, state domain.State, editedAt time.Time) error
	// ListEvaluationsByState pages through evaluations whose cached state is
	// one of states, ordered by id and starting after afterID.
	ListEvaluationsByState(ctx context.Context, states []domain.State, afterID string, limit int) ([]*domain.Evaluation, error)
	RespondentIDs(ctx context.Context, evaluationID, groupID string) ([]string, error)
}

type Directory interface {
	authz.Directory

	UsersForGroup(ctx context.Context, groupID string, permission domain.Permission) ([]string, error)
}

// Notifier delivers lifecycle events. Delivery failures never fail the
// operation that produced the event.
type Notifier interface {
	FireLifecycleEvent(ctx context.Context, event domain.LifecycleEvent) error
}

// Locker serializes mutations of one evaluation.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

type Authorizer interface {
	CanCreateAssignGroup(ctx context.Context, actorID, evaluationID string) (bool, error)
	CanDeleteAssignGroup(ctx context.Context, actorID, assignGroupID string) (bool, error)
	CanUpdateAssignGroup(ctx context.Context, actorID string, group *domain.AssignGroup) bool
}
