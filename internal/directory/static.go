package directory

import (
	"context"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v2"

	"evaluation_service/internal/domain"
	"evaluation_service/internal/service"
)

var _ service.Directory = (*StaticDirectory)(nil)

// Roster is the on-disk shape of a static directory:
//
//	admins: [admin]
//	groups:
//	  site-1:
//	    eval.take_evaluation: [student-1, student-2]
//	    eval.assign_evaluation: [instructor-1]
type Roster struct {
	Admins []string                       `yaml:"admins"`
	Groups map[string]map[string][]string `yaml:"groups"`
}

// StaticDirectory answers directory questions from a roster loaded once at
// startup. It is read-only after construction.
type StaticDirectory struct {
	admins map[string]struct{}
	// group -> permission -> users
	grants map[string]map[domain.Permission]map[string]struct{}
}

func LoadRoster(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse roster %s: %w", path, err)
	}
	return &r, nil
}

func NewStaticDirectory(r *Roster) *StaticDirectory {
	d := &StaticDirectory{
		admins: make(map[string]struct{}),
		grants: make(map[string]map[domain.Permission]map[string]struct{}),
	}
	if r == nil {
		return d
	}
	for _, a := range r.Admins {
		d.admins[a] = struct{}{}
	}
	for group, perms := range r.Groups {
		byPerm := make(map[domain.Permission]map[string]struct{}, len(perms))
		for perm, users := range perms {
			set := make(map[string]struct{}, len(users))
			for _, u := range users {
				set[u] = struct{}{}
			}
			byPerm[domain.Permission(perm)] = set
		}
		d.grants[group] = byPerm
	}
	return d
}

func (d *StaticDirectory) IsAdmin(_ context.Context, userID string) (bool, error) {
	_, ok := d.admins[userID]
	return ok, nil
}

func (d *StaticDirectory) HasPermissionInGroup(_ context.Context, userID string, permission domain.Permission, groupID string) (bool, error) {
	_, ok := d.grants[groupID][permission][userID]
	return ok, nil
}

func (d *StaticDirectory) GroupsForUser(_ context.Context, userID string, permission domain.Permission) ([]string, error) {
	groups := []string{}
	for group, perms := range d.grants {
		if _, ok := perms[permission][userID]; ok {
			groups = append(groups, group)
		}
	}
	sort.Strings(groups)
	return groups, nil
}

func (d *StaticDirectory) UsersForGroup(_ context.Context, groupID string, permission domain.Permission) ([]string, error) {
	users := []string{}
	for u := range d.grants[groupID][permission] {
		users = append(users, u)
	}
	sort.Strings(users)
	return users, nil
}
