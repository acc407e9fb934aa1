package session

import (
	"context"
	"errors"
	"time"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
)

var ErrNotFound = errors.New("session not found")

// Store keeps one form state per session id.
type Store interface {
	Load(ctx context.Context, id string) (*domain.FormState, error)
	Save(ctx context.Context, id string, st *domain.FormState, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}
