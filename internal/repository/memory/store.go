package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"evaluation_service/internal/domain"
	"evaluation_service/internal/errdefs"
	"evaluation_service/internal/service"
)

var _ service.Store = (*Store)(nil)

// Store keeps everything in maps behind one RWMutex. Values are copied on
// the way in and out so callers never share memory with the store.
type Store struct {
	mu             sync.RWMutex
	seq            int64
	evaluations    map[string]domain.Evaluation
	groups         map[string]storedGroup
	groupsByPair   map[pairKey]string
	responses      map[string]domain.Response
	emailTemplates map[string]domain.EmailTemplate
	templates      map[string]domain.Template
}

type storedGroup struct {
	group domain.AssignGroup
	seq   int64
}

type pairKey struct {
	evaluationID string
	groupID      string
}

func NewStore() *Store {
	return &Store{
		evaluations:    make(map[string]domain.Evaluation),
		groups:         make(map[string]storedGroup),
		groupsByPair:   make(map[pairKey]string),
		responses:      make(map[string]domain.Response),
		emailTemplates: make(map[string]domain.EmailTemplate),
		templates:      make(map[string]domain.Template),
	}
}

func (s *Store) PutEvaluation(_ context.Context, e *domain.Evaluation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evaluations[e.ID] = *e
	return nil
}

func (s *Store) PutResponse(_ context.Context, r *domain.Response) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[r.ID] = *r
	return nil
}

func (s *Store) PutEmailTemplate(_ context.Context, t *domain.EmailTemplate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emailTemplates[t.ID] = *t
	return nil
}

func (s *Store) PutTemplate(_ context.Context, t *domain.Template) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[t.ID] = *t
	return nil
}

func (s *Store) FindEvaluation(_ context.Context, id string) (*domain.Evaluation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.evaluations[id]
	if !ok {
		return nil, errdefs.ErrNotFound
	}
	return &e, nil
}

func (s *Store) SaveEvaluationState(_ context.Context, id string, state domain.State, editedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.evaluations[id]
	if !ok {
		return errdefs.ErrNotFound
	}
	e.State = state
	e.EditedAt = editedAt
	s.evaluations[id] = e
	return nil
}

func (s *Store) ListEvaluationsByState(_ context.Context, states []domain.State, afterID string, limit int) ([]*domain.Evaluation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Evaluation
	for _, e := range s.evaluations {
		if e.ID <= afterID || !e.State.In(states...) {
			continue
		}
		e := e
		out = append(out, &e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) FindAssignGroupByID(_ context.Context, id string) (*domain.AssignGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.groups[id]
	if !ok {
		return nil, errdefs.ErrNotFound
	}
	return &g.group, nil
}

func (s *Store) FindAssignGroup(_ context.Context, evaluationID, groupID string) (*domain.AssignGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.groupsByPair[pairKey{evaluationID, groupID}]
	if !ok {
		return nil, errdefs.ErrNotFound
	}
	g := s.groups[id]
	return &g.group, nil
}

func (s *Store) FindAssignGroups(_ context.Context, evaluationIDs []string, includeUnapproved bool) ([]*domain.AssignGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[string]struct{}, len(evaluationIDs))
	for _, id := range evaluationIDs {
		wanted[id] = struct{}{}
	}

	var found []storedGroup
	for _, g := range s.groups {
		if _, ok := wanted[g.group.EvaluationID]; !ok {
			continue
		}
		if !includeUnapproved && !g.group.Flags.InstructorApproval {
			continue
		}
		found = append(found, g)
	}
	sort.Slice(found, func(i, j int) bool { return found[i].seq < found[j].seq })

	out := make([]*domain.AssignGroup, 0, len(found))
	for _, g := range found {
		group := g.group
		out = append(out, &group)
	}
	return out, nil
}

func (s *Store) CountAssignGroups(_ context.Context, evaluationID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, g := range s.groups {
		if g.group.EvaluationID == evaluationID {
			n++
		}
	}
	return n, nil
}

func (s *Store) CountApprovedAssignGroups(_ context.Context, evaluationID string, groupIDs []string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var only map[string]struct{}
	if groupIDs != nil {
		only = make(map[string]struct{}, len(groupIDs))
		for _, id := range groupIDs {
			only[id] = struct{}{}
		}
	}

	n := 0
	for _, g := range s.groups {
		if g.group.EvaluationID != evaluationID || !g.group.Flags.InstructorApproval {
			continue
		}
		if only != nil {
			if _, ok := only[g.group.GroupID]; !ok {
				continue
			}
		}
		n++
	}
	return n, nil
}

func (s *Store) CreateAssignGroup(_ context.Context, group *domain.AssignGroup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey{group.EvaluationID, group.GroupID}
	if _, ok := s.groupsByPair[key]; ok {
		return errdefs.ErrDuplicateAssignment
	}
	if _, ok := s.evaluations[group.EvaluationID]; !ok {
		return errdefs.ErrNotFound
	}
	s.seq++
	s.groups[group.ID] = storedGroup{group: *group, seq: s.seq}
	s.groupsByPair[key] = group.ID
	return nil
}

func (s *Store) SaveAssignGroupFlags(_ context.Context, id string, flags domain.SafeFlags, editedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.groups[id]
	if !ok {
		return errdefs.ErrNotFound
	}
	g.group.Flags = flags
	g.group.EditedAt = editedAt
	s.groups[id] = g
	return nil
}

func (s *Store) DeleteAssignGroup(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.groups[id]
	if !ok {
		return errdefs.ErrNotFound
	}
	delete(s.groups, id)
	delete(s.groupsByPair, pairKey{g.group.EvaluationID, g.group.GroupID})
	return nil
}

func (s *Store) FindResponseByID(_ context.Context, id string) (*domain.Response, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.responses[id]
	if !ok {
		return nil, errdefs.ErrNotFound
	}
	return &r, nil
}

func (s *Store) FindResponses(_ context.Context, evaluationID, ownerID, groupID string) ([]*domain.Response, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*domain.Response
	for _, r := range s.responses {
		if r.EvaluationID == evaluationID && r.OwnerID == ownerID && r.GroupID == groupID {
			r := r
			out = append(out, &r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) RespondentIDs(_ context.Context, evaluationID, groupID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]struct{})
	var out []string
	for _, r := range s.responses {
		if r.EvaluationID != evaluationID || r.GroupID != groupID {
			continue
		}
		if _, ok := seen[r.OwnerID]; ok {
			continue
		}
		seen[r.OwnerID] = struct{}{}
		out = append(out, r.OwnerID)
	}
	sort.Strings(out)
	return out, nil
}

func (s *Store) FindEmailTemplate(_ context.Context, id string) (*domain.EmailTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.emailTemplates[id]
	if !ok {
		return nil, errdefs.ErrNotFound
	}
	return &t, nil
}

func (s *Store) FindDefaultEmailTemplate(_ context.Context, t domain.EmailTemplateType) (*domain.EmailTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []string
	for id, tmpl := range s.emailTemplates {
		if tmpl.DefaultType != nil && *tmpl.DefaultType == t {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, errdefs.ErrNotFound
	}
	sort.Strings(ids)
	tmpl := s.emailTemplates[ids[0]]
	return &tmpl, nil
}

func (s *Store) CountTemplates(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.templates), nil
}

// CountVisibleTemplates counts templates owned by userID or shared at one of
// the given levels.
func (s *Store) CountVisibleTemplates(_ context.Context, userID string, sharing []domain.Sharing) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, t := range s.templates {
		if t.OwnerID == userID {
			n++
			continue
		}
		for _, level := range sharing {
			if t.Sharing == level {
				n++
				break
			}
		}
	}
	return n, nil
}
