package core

import (
	"golang.org/x/crypto/bcrypt"
)

// Role is the coarse authorization level attached to an identity.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Identity is an authenticated principal. PasswordHash is a bcrypt hash; the
// raw password is never retained.
type Identity struct {
	Username     string
	PasswordHash string
	Role         Role
}

// CredentialStore answers authentication queries against a fixed identity
// set. It is seeded once at startup and never mutated afterwards, so
// concurrent reads need no synchronization.
type CredentialStore struct {
	byUsername map[string]Identity
}

// SeedIdentity is one configured account: either a bcrypt hash or a plain
// password (hashed at seed time — intended for local development only).
type SeedIdentity struct {
	Username     string
	Password     string
	PasswordHash string
	Role         Role
}

// NewCredentialStore builds the store from configured accounts.
func NewCredentialStore(seeds []SeedIdentity) (*CredentialStore, error) {
	byUsername := make(map[string]Identity, len(seeds))
	for _, s := range seeds {
		hash := s.PasswordHash
		if hash == "" {
			h, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, err
			}
			hash = string(h)
		}
		byUsername[s.Username] = Identity{
			Username:     s.Username,
			PasswordHash: hash,
			Role:         s.Role,
		}
	}
	return &CredentialStore{byUsername: byUsername}, nil
}

// Authenticate verifies username and password. Returns ErrUnknownUser or
// ErrBadPassword; callers facing the outside world must collapse both into
// one generic rejection.
func (c *CredentialStore) Authenticate(username, password string) (*Identity, error) {
	id, ok := c.byUsername[username]
	if !ok {
		return nil, ErrUnknownUser
	}
	if err := bcrypt.CompareHashAndPassword([]byte(id.PasswordHash), []byte(password)); err != nil {
		return nil, ErrBadPassword
	}
	return &id, nil
}
