// repository/session_repository.go
package repository

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/fadhlanhapp/tripdash-backend/models"
)

// SessionStore is the persistence boundary for authenticated sessions.
// Restore returns (nil, nil) when no session exists for the token.
type SessionStore interface {
	Save(token string, user *models.User) error
	Restore(token string) (*models.User, error)
	Clear(token string) error
}

// MemorySessionStore keeps sessions in process memory. Used when no
// database is configured; sessions do not survive a restart.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.User
}

// NewMemorySessionStore creates an in-memory session store
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]models.User),
	}
}

// Save stores a session for the token
func (s *MemorySessionStore) Save(token string, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = *user
	return nil
}

// Restore returns the session user for the token, or nil if absent
func (s *MemorySessionStore) Restore(token string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// Clear removes the session for the token
func (s *MemorySessionStore) Clear(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// PostgresSessionStore persists sessions in the database so logins
// survive restarts. Only the name and role are stored, never passwords.
type PostgresSessionStore struct {
	DB *sql.DB
}

// NewPostgresSessionStore creates a database-backed session store and
// ensures its table exists
func NewPostgresSessionStore(db *sql.DB) (*PostgresSessionStore, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		token      TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		role       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`)
	if err != nil {
		return nil, fmt.Errorf("failed to create sessions table: %v", err)
	}

	return &PostgresSessionStore{DB: db}, nil
}

// Save stores a session for the token
func (s *PostgresSessionStore) Save(token string, user *models.User) error {
	_, err := s.DB.Exec(
		"INSERT INTO sessions (token, name, role, created_at) VALUES ($1, $2, $3, $4)",
		token, user.Name, user.Role, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert session: %v", err)
	}
	return nil
}

// Restore returns the session user for the token, or nil if absent
func (s *PostgresSessionStore) Restore(token string) (*models.User, error) {
	var user models.User
	err := s.DB.QueryRow(
		"SELECT name, role FROM sessions WHERE token = $1",
		token,
	).Scan(&user.Name, &user.Role)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %v", err)
	}

	return &user, nil
}

// Clear removes the session for the token
func (s *PostgresSessionStore) Clear(token string) error {
	_, err := s.DB.Exec("DELETE FROM sessions WHERE token = $1", token)
	if err != nil {
		return fmt.Errorf("failed to delete session: %v", err)
	}
	return nil
}
