package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/vintage-books/internal/auth"
	"github.com/spec-kit/vintage-books/internal/domain"
	"github.com/spec-kit/vintage-books/internal/storage"
	"github.com/spec-kit/vintage-books/internal/store"
	"github.com/spec-kit/vintage-books/pkg/util"
)

// tickingClock advances one second per reading so "strictly increasing"
// timestamp properties are observable.
type tickingClock struct {
	mu sync.Mutex
	t  time.Time
}

func newTickingClock() *tickingClock {
	return &tickingClock{t: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)}
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestStore(t *testing.T) (*store.Store, *storage.Memory) {
	t.Helper()

	medium := storage.NewMemory()
	st := store.New(store.Dependencies{
		Storage: medium,
		Hasher:  auth.LegacyHasher{},
		Now:     newTickingClock().Now,
	})
	require.NoError(t, st.Init(context.Background()))
	return st, medium
}

func registerTestUser(t *testing.T, st *store.Store, email string) domain.User {
	t.Helper()

	user, err := st.Register(context.Background(), domain.RegisterInput{
		FullName:   "Budi Santoso",
		Email:      email,
		Password:   "rahasia123",
		Phone:      "0812000111",
		Address:    "Jl. Kenangan 1",
		City:       "Bandung",
		PostalCode: "40111",
	})
	require.NoError(t, err)
	return user
}

func domainCode(t *testing.T, err error) string {
	t.Helper()

	var de *util.DomainError
	require.ErrorAs(t, err, &de)
	return de.Code
}
