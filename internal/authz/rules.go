package authz

import (
	"evaluation_service/internal/domain"
)

type Operation string

const (
	OpBeginEvaluation      Operation = "begin_evaluation"
	OpCreateAssignGroup    Operation = "create_assign_group"
	OpDeleteAssignGroup    Operation = "delete_assign_group"
	OpUpdateAssignGroup    Operation = "update_assign_group"
	OpTakeEvaluation       Operation = "take_evaluation"
	OpControlEvaluation    Operation = "control_evaluation"
	OpRemoveEvaluation     Operation = "remove_evaluation"
	OpModifyResponse       Operation = "modify_response"
	OpControlEmailTemplate Operation = "control_email_template"
)

// Facts is everything a rule may look at. Rules never perform lookups.
type Facts struct {
	ActorID    string
	Admin      bool
	State      domain.State
	Evaluation *domain.Evaluation
	Group      *domain.AssignGroup
	Response   *domain.Response
	Template   *domain.EmailTemplate
	Policy     Policy
}

type Rule func(f Facts) Result

// table holds the operations whose outcome depends only on Facts.
// Take and begin need directory lookups and live in the engine.
var table = map[Operation]Rule{
	OpCreateAssignGroup: allOf(
		stateIn(domain.StateNew, domain.StateActive),
		adminOr(evaluationOwner),
	),
	OpDeleteAssignGroup: anyOf(
		adminUnassignRunning,
		allOf(stateIn(domain.StateNew), adminOr(evaluationOwner)),
	),
	OpUpdateAssignGroup: adminOr(groupOwner),
	OpControlEvaluation: adminOr(evaluationOwner),
	OpRemoveEvaluation: adminOr(allOf(
		stateIn(domain.StateNew, domain.StateClosed, domain.StateViewable),
		evaluationOwner,
	)),
	OpModifyResponse: allOf(
		stateIn(domain.StateActive, domain.StateDue),
		notLocked,
		adminOr(responseOwner),
		completedEditable,
	),
	OpControlEmailTemplate: allOf(
		stateNotIn(domain.StateClosed, domain.StateViewable, domain.StateUnknown),
		adminOr(templateOwner),
	),
}

func allOf(rules ...Rule) Rule {
	return func(f Facts) Result {
		for _, r := range rules {
			if res := r(f); !res.Allowed() {
				return res
			}
		}
		return allow()
	}
}

func anyOf(rules ...Rule) Rule {
	return func(f Facts) Result {
		last := deny(ReasonNone)
		for _, r := range rules {
			res := r(f)
			if res.Allowed() {
				return res
			}
			last = res
		}
		return last
	}
}

func adminOr(r Rule) Rule {
	return func(f Facts) Result {
		if f.Admin {
			return allow()
		}
		return r(f)
	}
}

func stateIn(states ...domain.State) Rule {
	return func(f Facts) Result {
		if f.State.In(states...) {
			return allow()
		}
		return deny(ReasonState)
	}
}

func stateNotIn(states ...domain.State) Rule {
	return func(f Facts) Result {
		if f.State.In(states...) {
			return deny(ReasonState)
		}
		return allow()
	}
}

func evaluationOwner(f Facts) Result {
	if f.Evaluation.IsOwnedBy(f.ActorID) {
		return allow()
	}
	return deny(ReasonNotOwner)
}

func groupOwner(f Facts) Result {
	if f.Group != nil && f.ActorID != "" && f.Group.OwnerID == f.ActorID {
		return allow()
	}
	return deny(ReasonNotOwner)
}

func responseOwner(f Facts) Result {
	if f.Response != nil && f.ActorID != "" && f.Response.OwnerID == f.ActorID {
		return allow()
	}
	return deny(ReasonNotOwner)
}

func templateOwner(f Facts) Result {
	if f.Template != nil && f.ActorID != "" && f.Template.OwnerID == f.ActorID {
		return allow()
	}
	return deny(ReasonNotOwner)
}

func notLocked(f Facts) Result {
	if f.Evaluation != nil && f.Evaluation.Locked {
		return deny(ReasonLocked)
	}
	return allow()
}

func completedEditable(f Facts) Result {
	if f.Response.IsComplete() && (f.Evaluation == nil || !f.Evaluation.ModifyResponsesAllowed) {
		return deny(ReasonResponseCompleted)
	}
	return allow()
}

func adminUnassignRunning(f Facts) Result {
	if f.Admin && f.Policy.AdminUnassignRunning {
		return allow()
	}
	return deny(ReasonPolicyDisabled)
}
