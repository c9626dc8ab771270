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

// Engine answers whether an actor may perform a protected operation.
//
// Referenced entities are loaded first and lookup errors there are returned
// to the caller. Once the entities are in hand every failure while deciding
// turns into a denial.
type Engine struct {
	store     Store
	directory Directory
	clock     lifecycle.Clock
	policy    Policy
}

func NewEngine(store Store, directory Directory, clock lifecycle.Clock, policy Policy) *Engine {
	return &Engine{
		store:     store,
		directory: directory,
		clock:     clock,
		policy:    policy,
	}
}

func (e *Engine) CanBeginEvaluation(ctx context.Context, actorID string) bool {
	return e.decide(ctx, OpBeginEvaluation, actorID, func(ctx context.Context) (Result, error) {
		admin, err := e.directory.IsAdmin(ctx, actorID)
		if err != nil {
			return Result{}, err
		}
		if admin {
			count, err := e.store.CountTemplates(ctx)
			if err != nil {
				return Result{}, err
			}
			if count > 0 {
				return allow(), nil
			}
		}

		if !e.policy.InstructorsCreateEvaluations {
			return deny(ReasonPolicyDisabled), nil
		}
		groups, err := e.directory.GroupsForUser(ctx, actorID, domain.PermissionAssignEvaluation)
		if err != nil {
			return Result{}, err
		}
		if len(groups) == 0 {
			return deny(ReasonNoAssignPermission), nil
		}
		visible, err := e.store.CountVisibleTemplates(ctx, actorID, []domain.Sharing{domain.SharingPublic, domain.SharingShared})
		if err != nil {
			return Result{}, err
		}
		if visible == 0 {
			return deny(ReasonNoTemplates), nil
		}
		return allow(), nil
	})
}

func (e *Engine) CanCreateAssignGroup(ctx context.Context, actorID, evaluationID string) (bool, error) {
	eval, err := e.store.FindEvaluation(ctx, evaluationID)
	if err != nil {
		return false, err
	}
	return e.decideFacts(ctx, OpCreateAssignGroup, Facts{ActorID: actorID, Evaluation: eval}), nil
}

func (e *Engine) CanDeleteAssignGroup(ctx context.Context, actorID, assignGroupID string) (bool, error) {
	group, err := e.store.FindAssignGroupByID(ctx, assignGroupID)
	if err != nil {
		return false, err
	}
	eval, err := e.owningEvaluation(ctx, group.EvaluationID, "assign group", group.ID)
	if err != nil {
		return false, err
	}
	return e.decideFacts(ctx, OpDeleteAssignGroup, Facts{ActorID: actorID, Evaluation: eval, Group: group}), nil
}

// CanUpdateAssignGroup decides on a flag update of a stored group. It does
// not depend on the lifecycle state.
func (e *Engine) CanUpdateAssignGroup(ctx context.Context, actorID string, group *domain.AssignGroup) bool {
	return e.decideFacts(ctx, OpUpdateAssignGroup, Facts{ActorID: actorID, Group: group})
}

func (e *Engine) CanControlEvaluation(ctx context.Context, actorID, evaluationID string) (bool, error) {
	eval, err := e.store.FindEvaluation(ctx, evaluationID)
	if err != nil {
		return false, err
	}
	return e.decideFacts(ctx, OpControlEvaluation, Facts{ActorID: actorID, Evaluation: eval}), nil
}

func (e *Engine) CanRemoveEvaluation(ctx context.Context, actorID, evaluationID string) (bool, error) {
	eval, err := e.store.FindEvaluation(ctx, evaluationID)
	if err != nil {
		return false, err
	}
	return e.decideFacts(ctx, OpRemoveEvaluation, Facts{ActorID: actorID, Evaluation: eval}), nil
}

func (e *Engine) CanModifyResponse(ctx context.Context, actorID, responseID string) (bool, error) {
	resp, err := e.store.FindResponseByID(ctx, responseID)
	if err != nil {
		return false, err
	}
	eval, err := e.owningEvaluation(ctx, resp.EvaluationID, "response", resp.ID)
	if err != nil {
		return false, err
	}
	return e.decideFacts(ctx, OpModifyResponse, Facts{ActorID: actorID, Evaluation: eval, Response: resp}), nil
}

// CanControlEmailTemplate checks control over a template that must fill the
// available or reminder slot of the evaluation.
func (e *Engine) CanControlEmailTemplate(ctx context.Context, actorID, evaluationID, templateID string) (bool, error) {
	eval, err := e.store.FindEvaluation(ctx, evaluationID)
	if err != nil {
		return false, err
	}
	tmpl, err := e.store.FindEmailTemplate(ctx, templateID)
	if err != nil {
		return false, err
	}
	if !eval.UsesTemplate(tmpl.ID) {
		return false, fmt.Errorf("%w: email template %s is not used by evaluation %s", errdefs.ErrDataIntegrity, tmpl.ID, eval.ID)
	}
	return e.decideFacts(ctx, OpControlEmailTemplate, Facts{ActorID: actorID, Evaluation: eval, Template: tmpl}), nil
}

// CanControlEmailTemplateType checks control over whichever template the
// evaluation uses for t, falling back to the default template of that type.
func (e *Engine) CanControlEmailTemplateType(ctx context.Context, actorID, evaluationID string, t domain.EmailTemplateType) (bool, error) {
	if !t.HasSlot() {
		return false, fmt.Errorf("%w: email template type %q", errdefs.ErrValidation, t)
	}
	eval, err := e.store.FindEvaluation(ctx, evaluationID)
	if err != nil {
		return false, err
	}
	tmpl, err := e.templateForSlot(ctx, eval, t)
	if err != nil {
		return false, err
	}
	return e.decideFacts(ctx, OpControlEmailTemplate, Facts{ActorID: actorID, Evaluation: eval, Template: tmpl}), nil
}

func (e *Engine) templateForSlot(ctx context.Context, eval *domain.Evaluation, t domain.EmailTemplateType) (*domain.EmailTemplate, error) {
	if id, ok := eval.TemplateSlot(t); ok {
		tmpl, err := e.store.FindEmailTemplate(ctx, id)
		switch {
		case err == nil && tmpl.Message != "":
			return tmpl, nil
		case err != nil && !errors.Is(err, errdefs.ErrNotFound):
			return nil, err
		}
	}
	tmpl, err := e.store.FindDefaultEmailTemplate(ctx, t)
	if errors.Is(err, errdefs.ErrNotFound) {
		return nil, fmt.Errorf("%w: no default email template of type %s", errdefs.ErrDataIntegrity, t)
	}
	return tmpl, err
}

func (e *Engine) owningEvaluation(ctx context.Context, evaluationID, kind, id string) (*domain.Evaluation, error) {
	eval, err := e.store.FindEvaluation(ctx, evaluationID)
	if errors.Is(err, errdefs.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s %s references missing evaluation %s", errdefs.ErrDataIntegrity, kind, id, evaluationID)
	}
	return eval, err
}

// decideFacts completes f with the actor's admin flag and the current state
// and runs the table rule for op.
func (e *Engine) decideFacts(ctx context.Context, op Operation, f Facts) bool {
	return e.decide(ctx, op, f.ActorID, func(ctx context.Context) (Result, error) {
		admin, err := e.directory.IsAdmin(ctx, f.ActorID)
		if err != nil {
			return Result{}, err
		}
		f.Admin = admin
		f.Policy = e.policy
		if f.Evaluation != nil {
			f.State = lifecycle.Resolve(f.Evaluation, e.clock.Now())
		}
		return table[op](f), nil
	})
}

// decide runs fn and reduces it to a boolean. Errors and panics deny.
func (e *Engine) decide(ctx context.Context, op Operation, actorID string, fn func(context.Context) (Result, error)) (allowed bool) {
	log := logger.FromContext(ctx)
	defer func() {
		if r := recover(); r != nil {
			log.Error(ctx, "authorization rule panicked",
				zap.String("operation", string(op)),
				zap.String("actor_id", actorID),
				zap.Any("panic", r),
			)
			allowed = false
		}
	}()

	if actorID == "" {
		log.Info(ctx, "authorization denied", zap.String("operation", string(op)), zap.String("reason", "anonymous actor"))
		return false
	}

	res, err := fn(ctx)
	if err != nil {
		log.Error(ctx, "authorization lookup failed",
			zap.String("operation", string(op)),
			zap.String("actor_id", actorID),
			zap.Error(err),
		)
		return false
	}
	if !res.Allowed() {
		log.Info(ctx, "authorization denied",
			zap.String("operation", string(op)),
			zap.String("actor_id", actorID),
			zap.String("reason", res.Reason.String()),
		)
		return false
	}
	return true
}
