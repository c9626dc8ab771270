package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"evaluation_service/internal/domain"
	"evaluation_service/internal/errdefs"
	"evaluation_service/internal/service"
	"evaluation_service/pkg/ctxdata"
	"evaluation_service/pkg/logger"
)

type Handler struct {
	lifecycle   LifecycleService
	assignments AssignmentService
	responses   ResponseService
	authz       Authorizer
	maxBody     int64
}

func NewHandler(
	lifecycle LifecycleService,
	assignments AssignmentService,
	responses ResponseService,
	authz Authorizer,
	maxBody int64,
) *Handler {
	if maxBody <= 0 {
		maxBody = 1 << 20
	}
	return &Handler{
		lifecycle:   lifecycle,
		assignments: assignments,
		responses:   responses,
		authz:       authz,
		maxBody:     maxBody,
	}
}

// NewRouter mounts the API under /api/v1 behind auth; /health stays open.
func NewRouter(h *Handler, log *logger.Logger, auth *Authenticator) http.Handler {
	r := chi.NewRouter()
	r.Use(NewLoggingMiddleware(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware)
		h.Routes(r)
	})
	return r
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/evaluations/{id}/state", h.GetState)
	r.Post("/evaluations/{id}/state:refresh", h.RefreshState)
	r.Get("/evaluations/{id}/groups", h.ListGroups)
	r.Post("/evaluations/{id}/groups", h.AssignGroup)
	r.Get("/evaluations/{id}/permissions", h.EvaluationPermissions)
	r.Get("/evaluations/{id}/groups/{groupID}/participants", h.Participants)
	r.Get("/evaluations/{id}/groups/{groupID}/response", h.OwnResponse)
	r.Patch("/groups/{id}", h.UpdateGroupFlags)
	r.Put("/groups/{id}", h.ReplaceGroup)
	r.Delete("/groups/{id}", h.UnassignGroup)
	r.Get("/permissions/begin", h.BeginPermission)
	r.Get("/responses/{id}/permissions", h.ResponsePermissions)
}

type stateResponse struct {
	EvaluationID string       `json:"evaluation_id"`
	State        domain.State `json:"state"`
}

type assignGroupResponse struct {
	ID           string           `json:"id"`
	EvaluationID string           `json:"evaluation_id"`
	GroupID      string           `json:"group_id"`
	GroupType    domain.GroupType `json:"group_type"`
	Flags        domain.SafeFlags `json:"flags"`
	OwnerID      string           `json:"owner_id"`
	CreatedAt    time.Time        `json:"created_at"`
	EditedAt     time.Time        `json:"edited_at"`
}

func toAssignGroupResponse(g *domain.AssignGroup) assignGroupResponse {
	return assignGroupResponse{
		ID:           g.ID,
		EvaluationID: g.EvaluationID,
		GroupID:      g.GroupID,
		GroupType:    g.GroupType,
		Flags:        g.Flags,
		OwnerID:      g.OwnerID,
		CreatedAt:    g.CreatedAt,
		EditedAt:     g.EditedAt,
	}
}

type participantsResponse struct {
	Include domain.Include `json:"include"`
	Users   []string       `json:"users"`
}

type responseBody struct {
	ID          string     `json:"id"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Complete    bool       `json:"complete"`
}

type ownResponse struct {
	Response *responseBody `json:"response"`
}

type assignRequest struct {
	GroupID   string           `json:"group_id"`
	GroupType domain.GroupType `json:"group_type"`
	Flags     domain.SafeFlags `json:"flags"`
}

// patchGroupRequest accepts the identity fields only to reject them with
// ErrInvalidInvariant instead of an unknown-field error.
type patchGroupRequest struct {
	domain.SafeFlagsPatch
	EvaluationID *string           `json:"evaluation_id,omitempty"`
	GroupID      *string           `json:"group_id,omitempty"`
	GroupType    *domain.GroupType `json:"group_type,omitempty"`
}

func (p patchGroupRequest) touchesIdentity() bool {
	return p.EvaluationID != nil || p.GroupID != nil || p.GroupType != nil
}

type replaceGroupRequest struct {
	EvaluationID string           `json:"evaluation_id"`
	GroupID      string           `json:"group_id"`
	GroupType    domain.GroupType `json:"group_type"`
	Flags        domain.SafeFlags `json:"flags"`
}

func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	h.state(w, r, false)
}

func (h *Handler) RefreshState(w http.ResponseWriter, r *http.Request) {
	h.state(w, r, true)
}

func (h *Handler) state(w http.ResponseWriter, r *http.Request, persist bool) {
	id, err := parsePathParam(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	state, err := h.lifecycle.RefreshState(r.Context(), id, persist)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{EvaluationID: id, State: state})
}

func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathParam(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	groups, err := h.assignments.ListByEvaluation(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := make([]assignGroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, toAssignGroupResponse(g))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) AssignGroup(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathParam(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req assignRequest
	if err := h.decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	actorID, _ := ctxdata.GetActorID(r.Context())
	group, err := h.assignments.Assign(r.Context(), actorID, service.AssignInput{
		EvaluationID: id,
		GroupID:      req.GroupID,
		GroupType:    req.GroupType,
		Flags:        req.Flags,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAssignGroupResponse(group))
}

func (h *Handler) UpdateGroupFlags(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathParam(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req patchGroupRequest
	if err := h.decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	if req.touchesIdentity() {
		h.fail(w, r, fmt.Errorf("%w: evaluation, group id and group type of assign group %s cannot change",
			errdefs.ErrInvalidInvariant, id))
		return
	}

	actorID, _ := ctxdata.GetActorID(r.Context())
	group, err := h.assignments.UpdateFlags(r.Context(), actorID, id, req.SafeFlagsPatch)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssignGroupResponse(group))
}

// ReplaceGroup takes the full assignment. The identity fields must match the
// stored group; only the flags are written.
func (h *Handler) ReplaceGroup(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathParam(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req replaceGroupRequest
	if err := h.decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	actorID, _ := ctxdata.GetActorID(r.Context())
	group, err := h.assignments.Update(r.Context(), actorID, &domain.AssignGroup{
		ID:           id,
		EvaluationID: req.EvaluationID,
		GroupID:      req.GroupID,
		GroupType:    req.GroupType,
		Flags:        req.Flags,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssignGroupResponse(group))
}

func (h *Handler) UnassignGroup(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathParam(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	actorID, _ := ctxdata.GetActorID(r.Context())
	if err := h.assignments.Unassign(r.Context(), actorID, id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) EvaluationPermissions(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathParam(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	ctx := r.Context()
	actorID, _ := ctxdata.GetActorID(ctx)
	groupID := r.URL.Query().Get("group_id")

	checks := []struct {
		name  string
		check func() (bool, error)
	}{
		{"take", func() (bool, error) { return h.authz.CanTakeEvaluation(ctx, actorID, id, groupID) }},
		{"control", func() (bool, error) { return h.authz.CanControlEvaluation(ctx, actorID, id) }},
		{"remove", func() (bool, error) { return h.authz.CanRemoveEvaluation(ctx, actorID, id) }},
		{"assign_group", func() (bool, error) { return h.authz.CanCreateAssignGroup(ctx, actorID, id) }},
	}

	out := make(map[string]bool, len(checks))
	for _, c := range checks {
		allowed, err := c.check()
		if err != nil {
			h.fail(w, r, err)
			return
		}
		out[c.name] = allowed
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) BeginPermission(w http.ResponseWriter, r *http.Request) {
	actorID, _ := ctxdata.GetActorID(r.Context())
	writeJSON(w, http.StatusOK, map[string]bool{"begin": h.authz.CanBeginEvaluation(r.Context(), actorID)})
}

func (h *Handler) ResponsePermissions(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathParam(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	actorID, _ := ctxdata.GetActorID(r.Context())
	allowed, err := h.authz.CanModifyResponse(r.Context(), actorID, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"modify": allowed})
}

// Participants lists users of a group by response status. Only actors who
// control the evaluation may see who responded.
func (h *Handler) Participants(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathParam(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	groupID, err := parsePathParam(r, "groupID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	include := domain.IncludeAll
	if q := r.URL.Query().Get("include"); q != "" {
		include = domain.Include(strings.ToUpper(q))
	}

	ctx := r.Context()
	actorID, _ := ctxdata.GetActorID(ctx)
	allowed, err := h.authz.CanControlEvaluation(ctx, actorID, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !allowed {
		h.fail(w, r, errdefs.ErrPermissionDenied)
		return
	}

	users, err := h.responses.UsersInGroup(ctx, id, groupID, include)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, participantsResponse{Include: include, Users: users})
}

// OwnResponse returns the actor's response in the group, or null.
func (h *Handler) OwnResponse(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathParam(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	groupID, err := parsePathParam(r, "groupID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	actorID, _ := ctxdata.GetActorID(r.Context())
	resp, err := h.responses.ResponseForUserAndGroup(r.Context(), id, actorID, groupID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	out := ownResponse{}
	if resp != nil {
		out.Response = &responseBody{
			ID:          resp.ID,
			StartedAt:   resp.StartedAt,
			CompletedAt: resp.CompletedAt,
			Complete:    resp.IsComplete(),
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", ErrBadRequest, err)
	}
	return nil
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	status := mapErr(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(ctx).Error(ctx, "request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	} else {
		logger.FromContext(ctx).Debug(ctx, "request rejected", zap.Int("status", status), zap.Error(err))
	}
	writeErrorJSON(w, status, errorMessage(status, err))
}

func parsePathParam(r *http.Request, key string) (string, error) {
	val := chi.URLParam(r, key)
	if val == "" {
		return "", fmt.Errorf("%w: missing path param: %s", ErrBadRequest, key)
	}
	return val, nil
}
