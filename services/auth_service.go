// services/auth_service.go
package services

import (
	"github.com/fadhlanhapp/tripdash-backend/models"
	"github.com/fadhlanhapp/tripdash-backend/utils"
)

// AuthService matches submitted credentials against the normalized
// Users table. This mirrors the sheet-based trust model of the source:
// plaintext comparison, no hashing, not a security boundary.
type AuthService struct{}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	return &AuthService{}
}

// Authenticate returns the first user whose name and password both
// match exactly (case-sensitive). The failure is opaque: it never
// reveals whether the name existed.
func (s *AuthService) Authenticate(name, password string, users []models.User) (*models.User, error) {
	for i := range users {
		if users[i].Name == name && users[i].Password == password {
			return &users[i], nil
		}
	}

	return nil, utils.NewUnauthorizedError(utils.ErrInvalidCredentials)
}
