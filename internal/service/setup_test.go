package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"evaluation_service/internal/authz"
	"evaluation_service/internal/domain"
	"evaluation_service/internal/lifecycle"
	"evaluation_service/internal/repository/memory"
	"evaluation_service/internal/service"
	"evaluation_service/internal/service/mocks"
)

const (
	ownerID   = "0196a1b2-0000-7000-8000-000000000001"
	adminID   = "0196a1b2-0000-7000-8000-000000000002"
	studentID = "0196a1b2-0000-7000-8000-000000000003"
	otherID   = "0196a1b2-0000-7000-8000-000000000004"
)

var now = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

type fixture struct {
	ctx         context.Context
	store       *memory.Store
	directory   *mocks.MockDirectory
	notifier    *mocks.MockNotifier
	lifecycle   *service.LifecycleService
	assignments *service.AssignmentService
	responses   *service.ResponseService
}

func setup(t *testing.T) *fixture {
	return setupWithPolicy(t, authz.DefaultPolicy())
}

func setupWithPolicy(t *testing.T, policy authz.Policy) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	store := memory.NewStore()
	directory := mocks.NewMockDirectory(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	clock := lifecycle.FixedClock(now)
	locker := service.NewKeyedLocker()

	directory.EXPECT().IsAdmin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, userID string) (bool, error) {
			return userID == adminID, nil
		}).AnyTimes()

	engine := authz.NewEngine(store, directory, clock, policy)

	return &fixture{
		ctx:         context.Background(),
		store:       store,
		directory:   directory,
		notifier:    notifier,
		lifecycle:   service.NewLifecycleService(store, notifier, locker, clock),
		assignments: service.NewAssignmentService(store, engine, notifier, locker, clock),
		responses:   service.NewResponseService(store, directory),
	}
}

func at(hours float64) *time.Time {
	t := now.Add(time.Duration(hours * float64(time.Hour)))
	return &t
}

// evaluationInState stores an evaluation owned by ownerID whose dates put
// it in state at now. The cached state is stored as given.
func (f *fixture) evaluationInState(t *testing.T, id string, state domain.State) *domain.Evaluation {
	t.Helper()
	e := &domain.Evaluation{
		ID:          id,
		Title:       "Course evaluation " + id,
		OwnerID:     ownerID,
		AuthControl: domain.AuthControlAuthRequired,
		State:       state,
		CreatedAt:   now.Add(-72 * time.Hour),
	}
	switch state {
	case domain.StateNew:
		e.StartDate, e.DueDate, e.StopDate, e.ViewDate = at(2), at(24), at(48), at(72)
	case domain.StateActive:
		e.StartDate, e.DueDate, e.StopDate = at(-2), at(1), at(5)
	case domain.StateDue:
		e.StartDate, e.DueDate, e.StopDate, e.ViewDate = at(-5), at(-1), at(3), at(10)
	case domain.StateClosed:
		e.StartDate, e.DueDate, e.StopDate, e.ViewDate = at(-10), at(-5), at(-2), at(10)
	case domain.StateViewable:
		e.StartDate, e.DueDate, e.StopDate, e.ViewDate = at(-10), at(-5), at(-2), at(-1)
	}
	require.NoError(t, f.store.PutEvaluation(f.ctx, e))
	return e
}

func (f *fixture) assignDirect(t *testing.T, evaluationID, groupID string, approved bool) *domain.AssignGroup {
	t.Helper()
	g := &domain.AssignGroup{
		ID:           evaluationID + "/" + groupID,
		EvaluationID: evaluationID,
		GroupID:      groupID,
		GroupType:    domain.GroupTypeSite,
		Flags:        domain.SafeFlags{InstructorApproval: approved},
		OwnerID:      ownerID,
		CreatedAt:    now,
		EditedAt:     now,
	}
	require.NoError(t, f.store.CreateAssignGroup(f.ctx, g))
	return g
}
