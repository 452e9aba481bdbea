package ports

import (
	"context"

	"github.com/gestiondocumental/document-system/internal/core/domain"
)

// UserUpdate names the fields a partial user update may change. Clave, when
// set, must already be hashed by the caller.
type UserUpdate struct {
	Cargo     *string
	Nombres   *string
	Apellidos *string
	Clave     *string
}

// UserRepository defines the persistence interface for users.
type UserRepository interface {
	// List returns every user, or only those whose cargo matches exactly
	// when cargo is non-empty. A non-empty cargo with zero matches yields
	// domain.ErrNoUsersForCargo.
	List(ctx context.Context, cargo string) ([]domain.User, error)
	// FindByCargo returns the first user whose cargo matches.
	FindByCargo(ctx context.Context, cargo string) (*domain.User, error)
	Create(ctx context.Context, user domain.User) (*domain.User, error)
	Update(ctx context.Context, id int, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id int) error
}
