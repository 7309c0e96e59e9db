package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kiranps/tradebooks-api/internal/domain/entity"
)

// IdempotencyRepository stores recorded responses keyed by the client-supplied
// idempotency key. Keys are scoped per user so two users may reuse the same
// key string without colliding.
type IdempotencyRepository interface {
	Find(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error)
	Create(ctx context.Context, ikey *entity.IdempotencyKey) error
	// DeleteExpired purges keys past their retention window.
	DeleteExpired(ctx context.Context) error
}
