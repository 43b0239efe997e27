package store_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/vintage-books/internal/auth"
	"github.com/spec-kit/vintage-books/internal/domain"
	"github.com/spec-kit/vintage-books/internal/store"
)

func TestRegisterRequiresAllFields(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	_, err := st.Register(ctx, domain.RegisterInput{Email: "a@b.com", Password: "x"})
	assert.Equal(t, "VALIDATION_FAILED", domainCode(t, err))

	_, err = st.Register(ctx, domain.RegisterInput{FullName: "A", Password: "x"})
	assert.Equal(t, "VALIDATION_FAILED", domainCode(t, err))

	_, err = st.Register(ctx, domain.RegisterInput{FullName: "A", Email: "a@b.com"})
	assert.Equal(t, "VALIDATION_FAILED", domainCode(t, err))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	registerTestUser(t, st, "budi@example.com")

	_, err := st.Register(ctx, domain.RegisterInput{
		FullName: "Budi Kedua",
		Email:    "budi@example.com",
		Password: "lain",
	})
	assert.Equal(t, "DUPLICATE_EMAIL", domainCode(t, err))

	users, err := st.GetUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestRegisterSanitizesAndLogsIn(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	user := registerTestUser(t, st, "budi@example.com")
	assert.Empty(t, user.Password)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, domain.UserStatusActive, user.Status)
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)

	loggedIn, err := st.IsLoggedIn(ctx)
	require.NoError(t, err)
	assert.True(t, loggedIn)

	current, err := st.GetCurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "budi@example.com", current.Email)
	assert.Empty(t, current.Password)
}

func TestLogin(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	registerTestUser(t, st, "budi@example.com")
	require.NoError(t, st.Logout(ctx))

	// Unknown email and wrong password fail with the same error.
	_, errUnknown := st.Login(ctx, "nobody@example.com", "rahasia123")
	_, errWrongPw := st.Login(ctx, "budi@example.com", "salah")
	assert.Equal(t, "INVALID_CREDENTIALS", domainCode(t, errUnknown))
	assert.Equal(t, "INVALID_CREDENTIALS", domainCode(t, errWrongPw))
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())

	user, err := st.Login(ctx, "budi@example.com", "rahasia123")
	require.NoError(t, err)
	assert.Empty(t, user.Password)
	assert.Equal(t, "budi@example.com", user.Email)

	loggedIn, err := st.IsLoggedIn(ctx)
	require.NoError(t, err)
	assert.True(t, loggedIn)
}

func TestLoginInactiveAccount(t *testing.T) {
	st, medium := newTestStore(t)
	ctx := context.Background()

	hash, err := auth.LegacyHasher{}.Hash("rahasia123")
	require.NoError(t, err)

	raw, err := json.Marshal([]domain.User{{
		ID:       "u1",
		FullName: "Siti",
		Email:    "siti@example.com",
		Password: hash,
		Status:   domain.UserStatusSuspended,
	}})
	require.NoError(t, err)
	require.NoError(t, medium.Set(ctx, store.KeyUsers, raw))

	_, err = st.Login(ctx, "siti@example.com", "rahasia123")
	assert.Equal(t, "INACTIVE_ACCOUNT", domainCode(t, err))
}

func TestLogoutIdempotent(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	registerTestUser(t, st, "budi@example.com")
	require.NoError(t, st.Logout(ctx))
	require.NoError(t, st.Logout(ctx))

	loggedIn, err := st.IsLoggedIn(ctx)
	require.NoError(t, err)
	assert.False(t, loggedIn)
}

func TestUpdateUser(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	user := registerTestUser(t, st, "budi@example.com")

	city := "Jakarta"
	updated, err := st.UpdateUser(ctx, user.ID, domain.ProfilePatch{City: &city})
	require.NoError(t, err)
	assert.Equal(t, "Jakarta", updated.City)
	assert.Equal(t, "budi@example.com", updated.Email)
	assert.True(t, updated.UpdatedAt.After(user.UpdatedAt))
	assert.Empty(t, updated.Password)

	// Session marker follows the edit.
	current, err := st.GetCurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "Jakarta", current.City)

	// Password still verifies after the profile edit.
	require.NoError(t, st.Logout(ctx))
	_, err = st.Login(ctx, "budi@example.com", "rahasia123")
	require.NoError(t, err)
}

func TestUpdateUserNotFound(t *testing.T) {
	st, _ := newTestStore(t)

	name := "X"
	_, err := st.UpdateUser(context.Background(), "missing", domain.ProfilePatch{FullName: &name})
	assert.Equal(t, "NOT_FOUND", domainCode(t, err))
}

func TestGetUserByID(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	user := registerTestUser(t, st, "budi@example.com")

	got, err := st.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Empty(t, got.Password)

	_, err = st.GetUserByID(ctx, "missing")
	assert.Equal(t, "NOT_FOUND", domainCode(t, err))
}
