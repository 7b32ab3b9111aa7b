package middlewares

import "context"

type ctxKey int

const (
	actorKey ctxKey = iota
	requestIDKey
)

// WithActor binds the authenticated username to the context.
func WithActor(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, actorKey, username)
}

// ActorFromContext returns the authenticated username, if any.
func ActorFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(actorKey).(string)
	return username, ok
}
