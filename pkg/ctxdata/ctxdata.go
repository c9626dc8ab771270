package ctxdata

import (
	"context"
)

type traceIDKey struct{}
type actorIDKey struct{}

var (
	traceIDKeyInstance = traceIDKey{}
	actorIDKeyInstance = actorIDKey{}
)

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKeyInstance, traceID)
}

func GetTraceID(ctx context.Context) (string, bool) {
	v := ctx.Value(traceIDKeyInstance)
	traceID, ok := v.(string)
	return traceID, ok
}

// WithActorID stores the authenticated user id that every authorization
// decision of the request is made for.
func WithActorID(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, actorIDKeyInstance, actorID)
}

func GetActorID(ctx context.Context) (string, bool) {
	v := ctx.Value(actorIDKeyInstance)
	actorID, ok := v.(string)
	return actorID, ok && actorID != ""
}
