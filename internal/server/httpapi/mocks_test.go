package httpapi

import (
	"context"

	"github.com/stretchr/testify/mock"

	"evaluation_service/internal/domain"
	"evaluation_service/internal/service"
)

type mockLifecycle struct {
	mock.Mock
}

func (m *mockLifecycle) RefreshState(ctx context.Context, evaluationID string, persist bool) (domain.State, error) {
	args := m.Called(ctx, evaluationID, persist)
	return args.Get(0).(domain.State), args.Error(1)
}

type mockAssignments struct {
	mock.Mock
}

func (m *mockAssignments) Assign(ctx context.Context, actorID string, in service.AssignInput) (*domain.AssignGroup, error) {
	args := m.Called(ctx, actorID, in)
	if g := args.Get(0); g != nil {
		return g.(*domain.AssignGroup), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAssignments) UpdateFlags(ctx context.Context, actorID, assignGroupID string, patch domain.SafeFlagsPatch) (*domain.AssignGroup, error) {
	args := m.Called(ctx, actorID, assignGroupID, patch)
	if g := args.Get(0); g != nil {
		return g.(*domain.AssignGroup), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAssignments) Update(ctx context.Context, actorID string, group *domain.AssignGroup) (*domain.AssignGroup, error) {
	args := m.Called(ctx, actorID, group)
	if g := args.Get(0); g != nil {
		return g.(*domain.AssignGroup), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAssignments) Unassign(ctx context.Context, actorID, assignGroupID string) error {
	return m.Called(ctx, actorID, assignGroupID).Error(0)
}

func (m *mockAssignments) ListByEvaluation(ctx context.Context, evaluationID string) ([]*domain.AssignGroup, error) {
	args := m.Called(ctx, evaluationID)
	if g := args.Get(0); g != nil {
		return g.([]*domain.AssignGroup), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockResponses struct {
	mock.Mock
}

func (m *mockResponses) ResponseForUserAndGroup(ctx context.Context, evaluationID, userID, groupID string) (*domain.Response, error) {
	args := m.Called(ctx, evaluationID, userID, groupID)
	if r := args.Get(0); r != nil {
		return r.(*domain.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockResponses) UsersInGroup(ctx context.Context, evaluationID, groupID string, include domain.Include) ([]string, error) {
	args := m.Called(ctx, evaluationID, groupID, include)
	if u := args.Get(0); u != nil {
		return u.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockAuthorizer struct {
	mock.Mock
}

func (m *mockAuthorizer) CanBeginEvaluation(ctx context.Context, actorID string) bool {
	return m.Called(ctx, actorID).Bool(0)
}

func (m *mockAuthorizer) CanTakeEvaluation(ctx context.Context, actorID, evaluationID, groupID string) (bool, error) {
	args := m.Called(ctx, actorID, evaluationID, groupID)
	return args.Bool(0), args.Error(1)
}

func (m *mockAuthorizer) CanControlEvaluation(ctx context.Context, actorID, evaluationID string) (bool, error) {
	args := m.Called(ctx, actorID, evaluationID)
	return args.Bool(0), args.Error(1)
}

func (m *mockAuthorizer) CanRemoveEvaluation(ctx context.Context, actorID, evaluationID string) (bool, error) {
	args := m.Called(ctx, actorID, evaluationID)
	return args.Bool(0), args.Error(1)
}

func (m *mockAuthorizer) CanCreateAssignGroup(ctx context.Context, actorID, evaluationID string) (bool, error) {
	args := m.Called(ctx, actorID, evaluationID)
	return args.Bool(0), args.Error(1)
}

func (m *mockAuthorizer) CanModifyResponse(ctx context.Context, actorID, responseID string) (bool, error) {
	args := m.Called(ctx, actorID, responseID)
	return args.Bool(0), args.Error(1)
}
