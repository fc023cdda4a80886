package web

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personnel-portal/internal/core"
)

func TestSessionStore(t *testing.T) {
	t.Parallel()

	identity := core.Identity{Username: "admin@portal.com", Role: core.RoleAdmin}

	t.Run("create then get returns the identity", func(t *testing.T) {
		store := newSessionStore(time.Hour)
		token := store.create(identity)
		require.NotEmpty(t, token)

		got, ok := store.get(token)
		require.True(t, ok)
		assert.Equal(t, "admin@portal.com", got.Username)
		assert.Equal(t, core.RoleAdmin, got.Role)
	})

	t.Run("tokens are unique per session", func(t *testing.T) {
		store := newSessionStore(time.Hour)
		assert.NotEqual(t, store.create(identity), store.create(identity))
	})

	t.Run("delete ends the session", func(t *testing.T) {
		store := newSessionStore(time.Hour)
		token := store.create(identity)
		store.delete(token)

		_, ok := store.get(token)
		assert.False(t, ok)
	})

	t.Run("expired sessions are evicted on access", func(t *testing.T) {
		store := newSessionStore(time.Millisecond)
		token := store.create(identity)
		time.Sleep(5 * time.Millisecond)

		_, ok := store.get(token)
		assert.False(t, ok)
	})

	t.Run("unknown token misses", func(t *testing.T) {
		store := newSessionStore(time.Hour)
		_, ok := store.get("no-such-token")
		assert.False(t, ok)
	})
}
