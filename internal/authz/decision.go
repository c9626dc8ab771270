package authz

// Decision is the outcome of an authorization check.
type Decision int

const (
	Deny Decision = iota
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// DenyReason describes why a check was denied.
type DenyReason int

const (
	ReasonNone DenyReason = iota
	ReasonState
	ReasonNotOwner
	ReasonLocked
	ReasonResponseCompleted
	ReasonNotAssigned
	ReasonNotApproved
	ReasonNoApprovedGroups
	ReasonNoTakePermission
	ReasonKeyAuthUnsupported
	ReasonUnknownAuthControl
	ReasonNoTemplates
	ReasonNoAssignPermission
	ReasonPolicyDisabled
	ReasonLookupFailed
)

func (r DenyReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonState:
		return "evaluation state does not allow the operation"
	case ReasonNotOwner:
		return "actor is neither owner nor admin"
	case ReasonLocked:
		return "evaluation is locked"
	case ReasonResponseCompleted:
		return "completed response cannot be modified"
	case ReasonNotAssigned:
		return "group is not assigned to the evaluation"
	case ReasonNotApproved:
		return "group assignment is not instructor approved"
	case ReasonNoApprovedGroups:
		return "evaluation has no approved groups"
	case ReasonNoTakePermission:
		return "actor may not take evaluations in the group"
	case ReasonKeyAuthUnsupported:
		return "key based access is not supported"
	case ReasonUnknownAuthControl:
		return "unknown auth control"
	case ReasonNoTemplates:
		return "no accessible templates"
	case ReasonNoAssignPermission:
		return "actor may not assign evaluations in any group"
	case ReasonPolicyDisabled:
		return "disabled by policy"
	case ReasonLookupFailed:
		return "authorization lookup failed"
	default:
		return "unknown"
	}
}

// Result is a decision plus the reason for a denial.
type Result struct {
	Decision Decision
	Reason   DenyReason
}

func (r Result) Allowed() bool {
	return r.Decision == Allow
}

func allow() Result {
	return Result{Decision: Allow}
}

func deny(reason DenyReason) Result {
	return Result{Decision: Deny, Reason: reason}
}
