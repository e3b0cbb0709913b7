// Package redis stores responses of idempotent requests.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ordertaking/internal/core/ports"
)

// ReservationTTL bounds how long a key stays reserved by a request that never
// saves or releases it, for example after a crash.
const ReservationTTL = time.Minute

const pendingMarker = "pending"

// releaseScript deletes the key only while it still holds the reservation marker.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// IdempotencyStore implements ports.IdempotencyStore. Stored responses expire after ttl.
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdempotencyStore creates a store whose responses expire after ttl.
func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{
		client: client,
		ttl:    ttl,
	}
}

// Reserve claims key with SET NX.
func (s *IdempotencyStore) Reserve(ctx context.Context, key string) (bool, error) {
	reserved, err := s.client.SetNX(ctx, idempotencyKey(key), pendingMarker, ReservationTTL).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx failed: %w", err)
	}
	return reserved, nil
}

// Get returns the response stored for key.
func (s *IdempotencyStore) Get(ctx context.Context, key string) (ports.StoredResponse, error) {
	data, err := s.client.Get(ctx, idempotencyKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.StoredResponse{}, ports.ErrStoredResponseNotFound
	}
	if err != nil {
		return ports.StoredResponse{}, fmt.Errorf("redis get failed: %w", err)
	}
	if string(data) == pendingMarker {
		return ports.StoredResponse{}, ports.ErrRequestInProgress
	}

	var resp ports.StoredResponse
	if err = json.Unmarshal(data, &resp); err != nil {
		return ports.StoredResponse{}, fmt.Errorf("unmarshal response failed: %w", err)
	}
	return resp, nil
}

// Save replaces the reservation of key with resp.
func (s *IdempotencyStore) Save(ctx context.Context, key string, resp ports.StoredResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("marshal response failed: %w", err)
	}

	if err = s.client.Set(ctx, idempotencyKey(key), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Release deletes key if it is still only reserved.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	if err := releaseScript.Run(ctx, s.client, []string{idempotencyKey(key)}, pendingMarker).Err(); err != nil {
		return fmt.Errorf("redis release failed: %w", err)
	}
	return nil
}

func idempotencyKey(key string) string {
	return fmt.Sprintf("idempotency:%s", key)
}
