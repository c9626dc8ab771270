package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"evaluation_service/internal/domain"
	"evaluation_service/internal/errdefs"
	"evaluation_service/internal/lifecycle"
	"evaluation_service/pkg/logger"
)

type AssignmentService struct {
	store      Store
	authorizer Authorizer
	notifier   Notifier
	locker     Locker
	clock      lifecycle.Clock
}

func NewAssignmentService(
	store Store,
	authorizer Authorizer,
	notifier Notifier,
	locker Locker,
	clock lifecycle.Clock,
) *AssignmentService {
	return &AssignmentService{
		store:      store,
		authorizer: authorizer,
		notifier:   notifier,
		locker:     locker,
		clock:      clock,
	}
}

type AssignInput struct {
	EvaluationID string
	GroupID      string
	GroupType    domain.GroupType
	Flags        domain.SafeFlags
}

func (in AssignInput) validate() error {
	if strings.TrimSpace(in.EvaluationID) == "" {
		return fmt.Errorf("%w: evaluation id is required", errdefs.ErrValidation)
	}
	if strings.TrimSpace(in.GroupID) == "" {
		return fmt.Errorf("%w: group id is required", errdefs.ErrValidation)
	}
	if !in.GroupType.IsValid() {
		return fmt.Errorf("%w: invalid group type %q", errdefs.ErrValidation, in.GroupType)
	}
	return nil
}

// Assign attaches a group to an evaluation on behalf of actorID, who becomes
// the owner of the assignment.
func (s *AssignmentService) Assign(ctx context.Context, actorID string, in AssignInput) (*domain.AssignGroup, error) {
	ctx, span := tracer.Start(ctx, "AssignmentService.Assign")
	defer span.End()
	span.SetAttributes(
		attribute.String("evaluation.id", in.EvaluationID),
		attribute.String("group.id", in.GroupID),
	)

	if err := in.validate(); err != nil {
		return nil, err
	}

	unlock, err := s.locker.Lock(ctx, in.EvaluationID)
	if err != nil {
		return nil, fmt.Errorf("lock evaluation %s: %w", in.EvaluationID, err)
	}
	defer unlock()

	eval, err := s.store.FindEvaluation(ctx, in.EvaluationID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.authorizer.CanCreateAssignGroup(ctx, actorID, eval.ID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, errdefs.ErrPermissionDenied
	}

	_, err = s.store.FindAssignGroup(ctx, eval.ID, in.GroupID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: group %s in evaluation %s", errdefs.ErrDuplicateAssignment, in.GroupID, eval.ID)
	case !errors.Is(err, errdefs.ErrNotFound):
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	group := &domain.AssignGroup{
		ID:           id.String(),
		EvaluationID: eval.ID,
		GroupID:      in.GroupID,
		GroupType:    in.GroupType,
		Flags:        in.Flags,
		OwnerID:      actorID,
		CreatedAt:    now,
		EditedAt:     now,
	}
	if err := s.store.CreateAssignGroup(ctx, group); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(ctx, "group assigned",
		zap.String("evaluation_id", eval.ID),
		zap.String("group_id", group.GroupID),
		zap.String("assign_group_id", group.ID),
		zap.String("actor_id", actorID),
	)

	if lifecycle.Resolve(eval, now).IsRunning() {
		fireEvent(ctx, s.notifier, domain.LifecycleEvent{
			Name:         domain.EventGroupAvailable,
			EvaluationID: eval.ID,
			GroupID:      group.GroupID,
			OccurredAt:   now,
		})
	}
	return group, nil
}

// UpdateFlags applies a partial flag update. Flags stay editable in every
// lifecycle state.
func (s *AssignmentService) UpdateFlags(ctx context.Context, actorID, assignGroupID string, patch domain.SafeFlagsPatch) (*domain.AssignGroup, error) {
	ctx, span := tracer.Start(ctx, "AssignmentService.UpdateFlags")
	defer span.End()
	span.SetAttributes(attribute.String("assign_group.id", assignGroupID))

	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: no flags to update", errdefs.ErrValidation)
	}

	stored, unlock, err := s.lockedGroup(ctx, assignGroupID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return s.saveFlags(ctx, actorID, stored, patch.Apply(stored.Flags))
}

// Update accepts a full assignment. Only the flags may differ from the
// stored copy; any change of evaluation, group id or group type is rejected
// before permissions are looked at.
func (s *AssignmentService) Update(ctx context.Context, actorID string, group *domain.AssignGroup) (*domain.AssignGroup, error) {
	ctx, span := tracer.Start(ctx, "AssignmentService.Update")
	defer span.End()

	if group == nil || group.ID == "" {
		return nil, fmt.Errorf("%w: assign group id is required", errdefs.ErrValidation)
	}
	span.SetAttributes(attribute.String("assign_group.id", group.ID))

	stored, unlock, err := s.lockedGroup(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if !stored.SameIdentity(group) {
		return nil, fmt.Errorf("%w: evaluation, group id and group type of assign group %s cannot change",
			errdefs.ErrInvalidInvariant, stored.ID)
	}
	return s.saveFlags(ctx, actorID, stored, group.Flags)
}

func (s *AssignmentService) saveFlags(ctx context.Context, actorID string, stored *domain.AssignGroup, flags domain.SafeFlags) (*domain.AssignGroup, error) {
	if !s.authorizer.CanUpdateAssignGroup(ctx, actorID, stored) {
		return nil, errdefs.ErrPermissionDenied
	}
	if flags == stored.Flags {
		return stored, nil
	}

	now := s.clock.Now()
	if err := s.store.SaveAssignGroupFlags(ctx, stored.ID, flags, now); err != nil {
		return nil, err
	}
	updated := *stored
	updated.Flags = flags
	updated.EditedAt = now
	return &updated, nil
}

// Unassign removes an assignment. A missing assignment is reported before
// permissions are checked.
func (s *AssignmentService) Unassign(ctx context.Context, actorID, assignGroupID string) error {
	ctx, span := tracer.Start(ctx, "AssignmentService.Unassign")
	defer span.End()
	span.SetAttributes(attribute.String("assign_group.id", assignGroupID))

	stored, unlock, err := s.lockedGroup(ctx, assignGroupID)
	if err != nil {
		return err
	}
	defer unlock()

	allowed, err := s.authorizer.CanDeleteAssignGroup(ctx, actorID, stored.ID)
	if err != nil {
		return err
	}
	if !allowed {
		return errdefs.ErrPermissionDenied
	}

	if err := s.store.DeleteAssignGroup(ctx, stored.ID); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(ctx, "group unassigned",
		zap.String("evaluation_id", stored.EvaluationID),
		zap.String("group_id", stored.GroupID),
		zap.String("actor_id", actorID),
	)
	return nil
}

func (s *AssignmentService) ListByEvaluation(ctx context.Context, evaluationID string) ([]*domain.AssignGroup, error) {
	if _, err := s.store.FindEvaluation(ctx, evaluationID); err != nil {
		return nil, err
	}
	return s.store.FindAssignGroups(ctx, []string{evaluationID}, true)
}

// ListByEvaluations groups assignments by evaluation. Every requested id is
// present in the result, with an empty list when it has no assignments.
func (s *AssignmentService) ListByEvaluations(ctx context.Context, evaluationIDs []string, includeUnapproved bool) (map[string][]*domain.AssignGroup, error) {
	result := make(map[string][]*domain.AssignGroup, len(evaluationIDs))
	if len(evaluationIDs) == 0 {
		return result, nil
	}
	for _, id := range evaluationIDs {
		result[id] = []*domain.AssignGroup{}
	}

	groups, err := s.store.FindAssignGroups(ctx, evaluationIDs, includeUnapproved)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		if list, ok := result[g.EvaluationID]; ok {
			result[g.EvaluationID] = append(list, g)
		}
	}
	return result, nil
}

func (s *AssignmentService) CountByEvaluation(ctx context.Context, evaluationID string) (int, error) {
	return s.store.CountAssignGroups(ctx, evaluationID)
}

// lockedGroup loads an assignment and holds the lock of its evaluation. The
// group is read again under the lock so callers see the latest flags.
func (s *AssignmentService) lockedGroup(ctx context.Context, assignGroupID string) (*domain.AssignGroup, func(), error) {
	group, err := s.store.FindAssignGroupByID(ctx, assignGroupID)
	if err != nil {
		return nil, nil, err
	}
	unlock, err := s.locker.Lock(ctx, group.EvaluationID)
	if err != nil {
		return nil, nil, fmt.Errorf("lock evaluation %s: %w", group.EvaluationID, err)
	}
	group, err = s.store.FindAssignGroupByID(ctx, assignGroupID)
	if err != nil {
		unlock()
		return nil, nil, err
	}
	return group, unlock, nil
}
