package ports

import (
	"context"
	"errors"
)

var (
	// ErrStoredResponseNotFound is returned when nothing is stored for an idempotency key.
	ErrStoredResponseNotFound = errors.New("stored response not found")
	// ErrRequestInProgress is returned while a key is reserved and its response is not stored yet.
	ErrRequestInProgress = errors.New("request with this idempotency key is in progress")
)

// StoredResponse is a response replayed for a repeated idempotency key.
type StoredResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// IdempotencyStore lets one request per idempotency key run and remembers its
// successful response.
//
// A request first reserves its key. The winner either saves its response or
// releases the key; every other request with the key gets the stored response
// or ErrRequestInProgress.
type IdempotencyStore interface {
	// Reserve claims key. Reports false when key is already reserved or has a stored response.
	Reserve(ctx context.Context, key string) (bool, error)

	// Get returns the stored response, ErrRequestInProgress while key is only
	// reserved, or ErrStoredResponseNotFound.
	Get(ctx context.Context, key string) (StoredResponse, error)

	// Save stores resp for key, replacing its reservation.
	Save(ctx context.Context, key string, resp StoredResponse) error

	// Release drops the reservation of key so the request can be retried.
	// A stored response is kept.
	Release(ctx context.Context, key string) error
}
