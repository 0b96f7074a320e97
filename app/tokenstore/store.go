package tokenstore

import "context"

// Pair links an access token JTI to the refresh token JTI issued with it.
type Pair struct {
	AccessID  string
	RefreshID string
}

// Store tracks the live token pairs per identity and the revocation set.
// A blacklisted JTI is rejected even before its token expires.
type Store interface {
	Add(ctx context.Context, email string, p Pair) error
	Pairs(ctx context.Context, email string) ([]Pair, error)
	// RemoveByAccessID drops and returns the pair holding accessID, or
	// nil when the identity no longer tracks it.
	RemoveByAccessID(ctx context.Context, email, accessID string) (*Pair, error)
	Clear(ctx context.Context, email string) error
	Blacklist(ctx context.Context, ids ...string) error
	IsBlacklisted(ctx context.Context, id string) (bool, error)
}
