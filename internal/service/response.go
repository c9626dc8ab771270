package service

import (
	"context"
	"fmt"
	"sort"

	"evaluation_service/internal/domain"
	"evaluation_service/internal/errdefs"
)

type ResponseService struct {
	store     Store
	directory Directory
}

func NewResponseService(store Store, directory Directory) *ResponseService {
	return &ResponseService{
		store:     store,
		directory: directory,
	}
}

// ResponseForUserAndGroup returns the single response of userID in groupID,
// or nil when there is none. More than one stored response is a data
// integrity error.
func (s *ResponseService) ResponseForUserAndGroup(ctx context.Context, evaluationID, userID, groupID string) (*domain.Response, error) {
	if _, err := s.store.FindEvaluation(ctx, evaluationID); err != nil {
		return nil, err
	}

	responses, err := s.store.FindResponses(ctx, evaluationID, userID, groupID)
	if err != nil {
		return nil, err
	}
	switch len(responses) {
	case 0:
		return nil, nil
	case 1:
		return responses[0], nil
	default:
		return nil, fmt.Errorf("%w: user %s has %d responses for evaluation %s in group %s",
			errdefs.ErrDataIntegrity, userID, len(responses), evaluationID, groupID)
	}
}

// UsersInGroup lists participants of groupID for the evaluation, sorted.
func (s *ResponseService) UsersInGroup(ctx context.Context, evaluationID, groupID string, include domain.Include) ([]string, error) {
	if !include.IsValid() {
		return nil, fmt.Errorf("%w: invalid include %q", errdefs.ErrValidation, include)
	}
	if _, err := s.store.FindEvaluation(ctx, evaluationID); err != nil {
		return nil, err
	}

	var users []string
	switch include {
	case domain.IncludeAll:
		all, err := s.directory.UsersForGroup(ctx, groupID, domain.PermissionTakeEvaluation)
		if err != nil {
			return nil, err
		}
		users = all
	case domain.IncludeRespondents:
		respondents, err := s.store.RespondentIDs(ctx, evaluationID, groupID)
		if err != nil {
			return nil, err
		}
		users = respondents
	case domain.IncludeNonTakers:
		all, err := s.directory.UsersForGroup(ctx, groupID, domain.PermissionTakeEvaluation)
		if err != nil {
			return nil, err
		}
		respondents, err := s.store.RespondentIDs(ctx, evaluationID, groupID)
		if err != nil {
			return nil, err
		}
		responded := make(map[string]struct{}, len(respondents))
		for _, id := range respondents {
			responded[id] = struct{}{}
		}
		for _, id := range all {
			if _, ok := responded[id]; !ok {
				users = append(users, id)
			}
		}
	}
	return dedupeSorted(users), nil
}

func dedupeSorted(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
