package tokenstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	pairsKeyPrefix     = "lostandfound:tokens:"
	blacklistKeyPrefix = "lostandfound:blacklist:"
)

// Redis shares token state across processes. Pairs live in a hash keyed
// by identity (access JTI -> refresh JTI); blacklist entries are keys
// with a TTL matching the longest token lifetime, so revocations expire
// together with the tokens they shadow.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, blacklistTTL time.Duration) *Redis {
	return &Redis{client: client, ttl: blacklistTTL}
}

func (r *Redis) Add(ctx context.Context, email string, p Pair) error {
	return r.client.HSet(ctx, pairsKeyPrefix+email, p.AccessID, p.RefreshID).Err()
}

func (r *Redis) Pairs(ctx context.Context, email string) ([]Pair, error) {
	entries, err := r.client.HGetAll(ctx, pairsKeyPrefix+email).Result()
	if err != nil {
		return nil, err
	}
	pairs := make([]Pair, 0, len(entries))
	for access, refresh := range entries {
		pairs = append(pairs, Pair{AccessID: access, RefreshID: refresh})
	}
	return pairs, nil
}

func (r *Redis) RemoveByAccessID(ctx context.Context, email, accessID string) (*Pair, error) {
	key := pairsKeyPrefix + email
	refresh, err := r.client.HGet(ctx, key, accessID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.client.HDel(ctx, key, accessID).Err(); err != nil {
		return nil, err
	}
	return &Pair{AccessID: accessID, RefreshID: refresh}, nil
}

func (r *Redis) Clear(ctx context.Context, email string) error {
	return r.client.Del(ctx, pairsKeyPrefix+email).Err()
}

func (r *Redis) Blacklist(ctx context.Context, ids ...string) error {
	pipe := r.client.Pipeline()
	for _, id := range ids {
		pipe.Set(ctx, blacklistKeyPrefix+id, 1, r.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (r *Redis) IsBlacklisted(ctx context.Context, id string) (bool, error) {
	n, err := r.client.Exists(ctx, blacklistKeyPrefix+id).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
