package authctx

import "context"

// Identity is the authenticated user as seen by the write path and the
// controllers. A nil Identity means the request is unauthenticated.
type Identity struct {
	UserID uint
	Email  string
	Role   string
}

type ctxKey int

const identityKey ctxKey = 1

func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func IdentityFrom(ctx context.Context) *Identity {
	if v := ctx.Value(identityKey); v != nil {
		if id, ok := v.(*Identity); ok {
			return id
		}
	}
	return nil
}

// ActorID resolves the acting user id for audit stamping, nil when the
// request carries no identity.
func ActorID(ctx context.Context) *uint {
	if id := IdentityFrom(ctx); id != nil {
		uid := id.UserID
		return &uid
	}
	return nil
}
