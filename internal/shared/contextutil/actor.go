package contextutil

import "context"

// Actor is the authenticated caller every core operation receives. It
// replaces the ambient "current user" of a session-based design: the id,
// role and company travel explicitly with the request context.
type Actor struct {
	ID      string
	Email   string
	Role    string
	Company string
}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

func GetActor(ctx context.Context) (Actor, bool) {
	if ctx == nil {
		return Actor{}, false
	}
	actor, ok := ctx.Value(actorKey).(Actor)
	return actor, ok
}
