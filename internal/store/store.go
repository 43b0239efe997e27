// Package store implements the storefront's persistence and business-logic
// layer: users and session, orders, cart, wishlist and backup, all held as
// JSON collections in an injected key-value medium. Every mutation reads the
// whole collection, changes it in memory and writes it back; last write wins.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/vintage-books/internal/auth"
	"github.com/spec-kit/vintage-books/internal/events"
	"github.com/spec-kit/vintage-books/internal/storage"
	"github.com/spec-kit/vintage-books/pkg/util"
)

// Storage keys. These strings are the on-medium contract shared with data
// exported from the legacy storefront; do not change them.
const (
	KeyUsers       = "vintage_books_users"
	KeyCurrentUser = "vintage_books_current_user"
	KeyOrders      = "vintage_books_orders"
	KeyCart        = "vintage_books_cart"
	KeyWishlist    = "vintage_books_wishlist"
)

// Dependencies bundles what the store needs. Storage is required; the rest
// default to sensible zero-setup values.
type Dependencies struct {
	Storage    storage.Storage
	Hasher     auth.Hasher
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Store owns the five persisted collections. Mutations are serialized with a
// process-local mutex; cross-process writers on a shared backend still race
// (documented limitation of the whole-collection write model).
type Store struct {
	mu         sync.Mutex
	storage    storage.Storage
	hasher     auth.Hasher
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
	newID      func() string
}

// New builds a Store from its dependencies.
func New(deps Dependencies) *Store {
	s := &Store{
		storage:    deps.Storage,
		hasher:     deps.Hasher,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		now:        deps.Now,
		newID:      uuid.NewString,
	}
	if s.hasher == nil {
		s.hasher = auth.LegacyHasher{}
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Init seeds the collections that must always exist (users, orders) with
// empty sequences when absent. Idempotent.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initLocked(ctx)
}

func (s *Store) initLocked(ctx context.Context) error {
	for _, key := range []string{KeyUsers, KeyOrders} {
		_, err := s.storage.Get(ctx, key)
		if err == nil {
			continue
		}
		if !storage.ErrNotFound(err) {
			return util.NewStorageError(err)
		}
		if err := s.storage.Set(ctx, key, []byte("[]")); err != nil {
			return util.NewStorageError(err)
		}
	}
	s.logger.Debug("store initialized")
	return nil
}

// readCollection loads the JSON sequence under key, defaulting to empty when
// the key has never been written.
func readCollection[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	raw, err := s.storage.Get(ctx, key)
	if err != nil {
		if storage.ErrNotFound(err) {
			return []T{}, nil
		}
		return nil, util.NewStorageError(err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, util.NewStorageError(err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func writeCollection[T any](ctx context.Context, s *Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return util.NewStorageError(err)
	}
	if err := s.storage.Set(ctx, key, raw); err != nil {
		return util.NewStorageError(err)
	}
	return nil
}

// GenerateOrderNumber builds a human-readable order number: "VB", two-digit
// year, month and day, then a zero-padded random integer in [0,10000).
// Uniqueness is probabilistic only; the legacy format has no collision check
// and imported data relies on this exact shape.
func (s *Store) GenerateOrderNumber() string {
	now := s.now()
	return fmt.Sprintf("VB%02d%02d%02d%04d", now.Year()%100, int(now.Month()), now.Day(), rand.Intn(10000))
}

func (s *Store) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = s.newID()
	event.Timestamp = s.now()
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event publish failed", zap.String("type", string(event.Type)), zap.Error(err))
	}
}
