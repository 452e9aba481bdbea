package ports

import (
	"context"

	"github.com/gestiondocumental/document-system/internal/core/domain"
)

// CreateUserInput carries all data needed to register a new user. Clave is
// the plaintext credential; the service hashes it before it reaches storage.
type CreateUserInput struct {
	Cargo     string
	Nombres   string
	Apellidos string
	Clave     string
}

// UserService defines use-case operations for users.
type UserService interface {
	List(ctx context.Context, cargo string) ([]domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	// Update merges the supplied fields; a supplied Clave arrives in
	// plaintext and is re-hashed before storage.
	Update(ctx context.Context, id int, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id int) error
}
