package authz

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"evaluation_service/internal/domain"
	"evaluation_service/internal/errdefs"
	"evaluation_service/internal/lifecycle"
	"evaluation_service/pkg/logger"
)

// CanTakeEvaluation decides whether actorID may respond to the evaluation
// in groupID. An empty groupID asks whether the actor may take it in any
// of its groups.
func (e *Engine) CanTakeEvaluation(ctx context.Context, actorID, evaluationID, groupID string) (bool, error) {
	eval, err := e.store.FindEvaluation(ctx, evaluationID)
	if err != nil {
		return false, err
	}

	return e.decide(ctx, OpTakeEvaluation, actorID, func(ctx context.Context) (Result, error) {
		state := lifecycle.Resolve(eval, e.clock.Now())
		if !state.IsRunning() {
			return deny(ReasonState), nil
		}

		admin, err := e.directory.IsAdmin(ctx, actorID)
		if err != nil {
			return Result{}, err
		}

		if groupID == "" {
			return e.takeAnyGroup(ctx, eval, actorID, admin)
		}
		return e.takeInGroup(ctx, eval, actorID, groupID, admin)
	}), nil
}

func (e *Engine) takeInGroup(ctx context.Context, eval *domain.Evaluation, actorID, groupID string, admin bool) (Result, error) {
	if !admin {
		group, err := e.store.FindAssignGroup(ctx, eval.ID, groupID)
		if errors.Is(err, errdefs.ErrNotFound) {
			return deny(ReasonNotAssigned), nil
		}
		if err != nil {
			return Result{}, err
		}
		if !group.Flags.InstructorApproval {
			return deny(ReasonNotApproved), nil
		}
	}

	switch eval.AuthControl {
	case domain.AuthControlNone:
		return allow(), nil
	case domain.AuthControlKey:
		return e.keyDenied(ctx, eval), nil
	case domain.AuthControlAuthRequired:
	default:
		return deny(ReasonUnknownAuthControl), nil
	}

	if admin {
		return allow(), nil
	}

	ok, err := e.directory.HasPermissionInGroup(ctx, actorID, domain.PermissionTakeEvaluation, groupID)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return deny(ReasonNoTakePermission), nil
	}

	if eval.ModifyResponsesAllowed {
		return allow(), nil
	}
	responses, err := e.store.FindResponses(ctx, eval.ID, actorID, groupID)
	if err != nil {
		return Result{}, err
	}
	switch {
	case len(responses) > 1:
		return Result{}, fmt.Errorf("%w: user %s has %d responses for evaluation %s in group %s",
			errdefs.ErrDataIntegrity, actorID, len(responses), eval.ID, groupID)
	case len(responses) == 1 && responses[0].IsComplete():
		return deny(ReasonResponseCompleted), nil
	}
	return allow(), nil
}

func (e *Engine) takeAnyGroup(ctx context.Context, eval *domain.Evaluation, actorID string, admin bool) (Result, error) {
	if admin {
		return allow(), nil
	}

	approved, err := e.store.CountApprovedAssignGroups(ctx, eval.ID, nil)
	if err != nil {
		return Result{}, err
	}
	if approved == 0 {
		return deny(ReasonNoApprovedGroups), nil
	}

	switch eval.AuthControl {
	case domain.AuthControlNone:
		return allow(), nil
	case domain.AuthControlKey:
		return e.keyDenied(ctx, eval), nil
	case domain.AuthControlAuthRequired:
	default:
		return deny(ReasonUnknownAuthControl), nil
	}

	groups, err := e.directory.GroupsForUser(ctx, actorID, domain.PermissionTakeEvaluation)
	if err != nil {
		return Result{}, err
	}
	if len(groups) == 0 {
		return deny(ReasonNoTakePermission), nil
	}
	mine, err := e.store.CountApprovedAssignGroups(ctx, eval.ID, groups)
	if err != nil {
		return Result{}, err
	}
	if mine == 0 {
		return deny(ReasonNoTakePermission), nil
	}
	return allow(), nil
}

// TODO: support access keys once evaluations can carry one.
func (e *Engine) keyDenied(ctx context.Context, eval *domain.Evaluation) Result {
	logger.FromContext(ctx).Warn(ctx, "key based access requested but not supported",
		zap.String("evaluation_id", eval.ID))
	return deny(ReasonKeyAuthUnsupported)
}
