package store

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/spec-kit/vintage-books/internal/domain"
	"github.com/spec-kit/vintage-books/internal/events"
	"github.com/spec-kit/vintage-books/internal/storage"
	"github.com/spec-kit/vintage-books/pkg/util"
)

// Register creates a new customer account and logs it in. Email uniqueness is
// an exact, case-sensitive match against stored users.
func (s *Store) Register(ctx context.Context, input domain.RegisterInput) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Email == "" || input.Password == "" || input.FullName == "" {
		return domain.User{}, util.NewValidationError("fullName, email and password are required", nil)
	}

	users, err := readCollection[domain.User](ctx, s, KeyUsers)
	if err != nil {
		return domain.User{}, err
	}

	for _, u := range users {
		if u.Email == input.Email {
			return domain.User{}, util.NewDuplicateEmail(input.Email)
		}
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return domain.User{}, util.NewInternalError(err)
	}

	now := s.now()
	user := domain.User{
		ID:         s.newID(),
		FullName:   input.FullName,
		Email:      input.Email,
		Password:   hashed,
		Phone:      input.Phone,
		Address:    input.Address,
		City:       input.City,
		PostalCode: input.PostalCode,
		Status:     domain.UserStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	users = append(users, user)
	if err := writeCollection(ctx, s, KeyUsers, users); err != nil {
		return domain.User{}, err
	}

	// Auto login after register.
	if err := s.setCurrentUser(ctx, user); err != nil {
		return domain.User{}, err
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID))
	s.publish(ctx, events.Event{
		Type:    events.EventUserRegistered,
		UserID:  user.ID,
		Payload: events.UserRegisteredPayload{Email: user.Email, FullName: user.FullName},
	})

	return user.Sanitized(), nil
}

// Login authenticates by exact email match plus password verification. The
// same error covers unknown email and wrong password.
func (s *Store) Login(ctx context.Context, email, password string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := readCollection[domain.User](ctx, s, KeyUsers)
	if err != nil {
		return domain.User{}, err
	}

	var matched *domain.User
	for i := range users {
		if users[i].Email == email && s.hasher.Compare(users[i].Password, password) {
			matched = &users[i]
			break
		}
	}
	if matched == nil {
		return domain.User{}, util.NewInvalidCredentials()
	}
	if matched.Status != domain.UserStatusActive {
		return domain.User{}, util.NewInactiveAccount()
	}

	if err := s.setCurrentUser(ctx, *matched); err != nil {
		return domain.User{}, err
	}

	s.logger.Info("user logged in", zap.String("user_id", matched.ID))
	return matched.Sanitized(), nil
}

// Logout clears the session marker. Idempotent, always succeeds.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.storage.Remove(ctx, KeyCurrentUser); err != nil {
		return util.NewStorageError(err)
	}
	return nil
}

// GetCurrentUser returns the sanitized session user, or nil when logged out.
func (s *Store) GetCurrentUser(ctx context.Context) (*domain.User, error) {
	raw, err := s.storage.Get(ctx, KeyCurrentUser)
	if err != nil {
		if storage.ErrNotFound(err) {
			return nil, nil
		}
		return nil, util.NewStorageError(err)
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, util.NewStorageError(err)
	}
	return &user, nil
}

// IsLoggedIn reports whether a session marker is present.
func (s *Store) IsLoggedIn(ctx context.Context) (bool, error) {
	user, err := s.GetCurrentUser(ctx)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

// UpdateUser merges the patch over the stored record and stamps updatedAt.
// Email and password are excluded from the patch type itself, so they cannot
// change here. The session marker is refreshed when it names the same user.
func (s *Store) UpdateUser(ctx context.Context, userID string, patch domain.ProfilePatch) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := readCollection[domain.User](ctx, s, KeyUsers)
	if err != nil {
		return domain.User{}, err
	}

	idx := -1
	for i := range users {
		if users[i].ID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.User{}, util.NewNotFound("user", map[string]any{"user_id": userID})
	}

	patch.Apply(&users[idx])
	users[idx].UpdatedAt = s.now()

	if err := writeCollection(ctx, s, KeyUsers, users); err != nil {
		return domain.User{}, err
	}

	current, err := s.GetCurrentUser(ctx)
	if err != nil {
		return domain.User{}, err
	}
	if current != nil && current.ID == userID {
		if err := s.setCurrentUser(ctx, users[idx]); err != nil {
			return domain.User{}, err
		}
	}

	return users[idx].Sanitized(), nil
}

// GetUserByID returns the sanitized user or a not-found error.
func (s *Store) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	users, err := readCollection[domain.User](ctx, s, KeyUsers)
	if err != nil {
		return domain.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u.Sanitized(), nil
		}
	}
	return domain.User{}, util.NewNotFound("user", map[string]any{"user_id": id})
}

// GetUsers returns all users, sanitized.
func (s *Store) GetUsers(ctx context.Context) ([]domain.User, error) {
	users, err := readCollection[domain.User](ctx, s, KeyUsers)
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, len(users))
	for i, u := range users {
		out[i] = u.Sanitized()
	}
	return out, nil
}

// setCurrentUser persists the sanitized session marker.
func (s *Store) setCurrentUser(ctx context.Context, user domain.User) error {
	raw, err := json.Marshal(user.Sanitized())
	if err != nil {
		return util.NewStorageError(err)
	}
	if err := s.storage.Set(ctx, KeyCurrentUser, raw); err != nil {
		return util.NewStorageError(err)
	}
	return nil
}
