package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestiondocumental/document-system/internal/api/metrics"
	"github.com/gestiondocumental/document-system/internal/core/domain"
	"github.com/gestiondocumental/document-system/internal/core/ports"
)

// AuthService verifies credentials against the user collection and issues
// signed session tokens. Stateless: each call is independent.
type AuthService struct {
	users     ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Authenticate checks cargo/clave and returns a signed token plus the user
// summary. The candidate clave is always compared against the stored bcrypt
// hash; plaintext equality is never used.
func (s *AuthService) Authenticate(ctx context.Context, cargo, clave string) (*ports.AuthResult, error) {
	if cargo == "" || clave == "" {
		metrics.AuthAttemptsTotal.WithLabelValues("invalid_input").Inc()
		return nil, domain.ErrValidation
	}

	user, err := s.users.FindByCargo(ctx, cargo)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.AuthAttemptsTotal.WithLabelValues("user_not_found").Inc()
			return nil, err
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Clave), []byte(clave)) != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		s.log.Warn().Str("cargo", cargo).Msg("authentication rejected")
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	metrics.AuthAttemptsTotal.WithLabelValues("success").Inc()
	s.log.Info().Int("id", user.ID).Str("cargo", user.Cargo).Msg("user authenticated")

	return &ports.AuthResult{Token: token, User: user.Summary()}, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"cargo": user.Cargo,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
