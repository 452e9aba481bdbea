package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestiondocumental/document-system/internal/api/metrics"
	"github.com/gestiondocumental/document-system/internal/core/domain"
	"github.com/gestiondocumental/document-system/internal/core/ports"
)

// UserService implements user use cases over a UserRepository. Passwords are
// hashed here; the repository and everything below it only ever see hashes.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// List returns every user, or the exact-cargo subset when cargo is non-empty.
func (s *UserService) List(ctx context.Context, cargo string) ([]domain.User, error) {
	users, err := s.repo.List(ctx, cargo)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Create validates required fields, hashes the credential, and persists the
// user. The returned record carries the hash, never the plaintext.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Cargo == "" || input.Nombres == "" || input.Apellidos == "" || input.Clave == "" {
		return nil, domain.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Clave), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash clave: %w", err)
	}

	created, err := s.repo.Create(ctx, domain.User{
		Cargo:     input.Cargo,
		Nombres:   input.Nombres,
		Apellidos: input.Apellidos,
		Clave:     string(hash),
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	metrics.UsersCreatedTotal.Inc()
	s.log.Info().Int("id", created.ID).Str("cargo", created.Cargo).Msg("user created")

	return created, nil
}

// Update merges the supplied fields. A supplied Clave arrives in plaintext
// and is re-hashed; an empty one is rejected since a password cannot be
// cleared.
func (s *UserService) Update(ctx context.Context, id int, update ports.UserUpdate) (*domain.User, error) {
	if update.Clave != nil {
		if *update.Clave == "" {
			return nil, domain.ErrValidation
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*update.Clave), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash clave: %w", err)
		}
		hashed := string(hash)
		update.Clave = &hashed
	}

	merged, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}

	s.log.Info().Int("id", id).Msg("user updated")
	return merged, nil
}

// Delete removes the user with the given id.
func (s *UserService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}

	s.log.Info().Int("id", id).Msg("user deleted")
	return nil
}
