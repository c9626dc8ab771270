package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"evaluation_service/internal/domain"
	"evaluation_service/internal/service"
	"evaluation_service/pkg/logger"
)

var _ service.Directory = (*CachedDirectory)(nil)

const keyPrefix = "evaldir:"

// CachedDirectory memoizes answers of another directory for ttl. Errors
// from the underlying directory are returned as is and never cached.
type CachedDirectory struct {
	next  service.Directory
	cache Cache
	ttl   time.Duration
}

func NewCachedDirectory(next service.Directory, cache Cache, ttl time.Duration) *CachedDirectory {
	return &CachedDirectory{next: next, cache: cache, ttl: ttl}
}

func (d *CachedDirectory) IsAdmin(ctx context.Context, userID string) (bool, error) {
	return cached(ctx, d, "admin:"+userID, func() (bool, error) {
		return d.next.IsAdmin(ctx, userID)
	})
}

func (d *CachedDirectory) HasPermissionInGroup(ctx context.Context, userID string, permission domain.Permission, groupID string) (bool, error) {
	key := fmt.Sprintf("perm:%s:%s:%s", userID, permission, groupID)
	return cached(ctx, d, key, func() (bool, error) {
		return d.next.HasPermissionInGroup(ctx, userID, permission, groupID)
	})
}

func (d *CachedDirectory) GroupsForUser(ctx context.Context, userID string, permission domain.Permission) ([]string, error) {
	key := fmt.Sprintf("groups:%s:%s", userID, permission)
	return cached(ctx, d, key, func() ([]string, error) {
		return d.next.GroupsForUser(ctx, userID, permission)
	})
}

func (d *CachedDirectory) UsersForGroup(ctx context.Context, groupID string, permission domain.Permission) ([]string, error) {
	key := fmt.Sprintf("users:%s:%s", groupID, permission)
	return cached(ctx, d, key, func() ([]string, error) {
		return d.next.UsersForGroup(ctx, groupID, permission)
	})
}

func cached[T any](ctx context.Context, d *CachedDirectory, key string, load func() (T, error)) (T, error) {
	key = keyPrefix + key
	if data, ok := d.cache.Get(ctx, key); ok {
		var v T
		if err := json.Unmarshal(data, &v); err == nil {
			return v, nil
		}
		logger.FromContext(ctx).Warn(ctx, "discarding malformed directory cache entry", zap.String("key", key))
	}

	v, err := load()
	if err != nil {
		return v, err
	}
	if data, err := json.Marshal(v); err == nil {
		d.cache.Set(ctx, key, data, d.ttl)
	}
	return v, nil
}
