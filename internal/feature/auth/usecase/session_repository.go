package usecase

import (
	"context"

	"vidshare_backend/internal/feature/auth/domain/entity"
)

// SessionRepository abstracts the persistence layer for session entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SessionRepository interface {
	// Create persists a new session. A prior session with the same token value
	// is overwritten; at 256 bits of token entropy a collision is treated as
	// negligible rather than an error.
	Create(ctx context.Context, session *entity.Session) error

	// FindByToken retrieves a session by its token value.
	// Returns ErrSessionNotFound when the token is unknown.
	FindByToken(ctx context.Context, token string) (*entity.Session, error)

	// Delete removes a session, revoking its token.
	// Deleting an unknown token returns ErrSessionNotFound.
	Delete(ctx context.Context, token string) error
}
