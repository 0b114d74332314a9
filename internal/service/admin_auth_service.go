package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/akronstore/akron_api/internal/repository"
	"github.com/akronstore/akron_api/internal/utils"
)

// AdminAuthService gates the admin panel behind the shared-secret password.
// A successful login persists the session flag in the store and issues a JWT;
// logout clears the flag. The flag has no expiry.
type AdminAuthService struct {
	repo         *repository.CatalogRepository
	passwordHash []byte
	jwtSecret    string
}

// NewAdminAuthService hashes the configured password once at startup.
func NewAdminAuthService(repo *repository.CatalogRepository, password, jwtSecret string) (*AdminAuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AdminAuthService{repo: repo, passwordHash: hash, jwtSecret: jwtSecret}, nil
}

// Login checks the password, persists the session flag and returns a token.
// A wrong password changes nothing.
func (s *AdminAuthService) Login(ctx context.Context, password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		log.Warn().Msg("Admin login failed: wrong password")
		return "", utils.ErrInvalidCredentials
	}

	if err := s.repo.SetAdminAuth(ctx, true); err != nil {
		return "", err
	}

	token, err := utils.GenerateJWT(s.jwtSecret)
	if err != nil {
		return "", err
	}

	log.Info().Msg("Admin login successful")
	return token, nil
}

// Logout clears the persisted session flag. Outstanding tokens stop being
// accepted because the JWT middleware also checks the flag.
func (s *AdminAuthService) Logout(ctx context.Context) error {
	return s.repo.SetAdminAuth(ctx, false)
}

// Authenticated reports whether the persisted session flag is set.
func (s *AdminAuthService) Authenticated(ctx context.Context) (bool, error) {
	return s.repo.AdminAuth(ctx)
}
