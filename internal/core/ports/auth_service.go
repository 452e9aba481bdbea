package ports

import (
	"context"

	"github.com/gestiondocumental/document-system/internal/core/domain"
)

// AuthResult is returned on a successful authentication.
type AuthResult struct {
	Token string
	User  domain.UserSummary
}

// AuthService verifies credentials and issues session tokens. Each call is
// independent; no session state is persisted.
type AuthService interface {
	Authenticate(ctx context.Context, cargo, clave string) (*AuthResult, error)
}
