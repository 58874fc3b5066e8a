package repository

import (
	"context"
	"maps"
	"slices"
	"sync"

	"room-booking/internal/domain/user"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/pkg/password"
)

type UserStore struct {
	mu    sync.RWMutex
	users map[string]*user.User
}

func NewUserStore() *UserStore {
	return &UserStore{
		users: make(map[string]*user.User),
	}
}

// NewSeededUserStore hashes each plaintext password once at startup.
func NewSeededUserStore(ctx context.Context, hasher *password.Hasher, seed map[string]string) (*UserStore, error) {
	store := NewUserStore()

	for _, name := range slices.Sorted(maps.Keys(seed)) {
		username, err := user.NewUsername(name)
		if err != nil {
			return nil, errs.Wrapf(err, "seed user %q", name)
		}
		hash, err := hasher.Hash(seed[name])
		if err != nil {
			return nil, errs.Wrapf(err, "seed user %q", name)
		}
		if err := store.Create(ctx, user.NewUser(username, hash)); err != nil {
			return nil, err
		}
	}

	return store, nil
}

func (s *UserStore) Create(_ context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[u.ID()]; exists {
		return infra.WrapRepoErr("user already exists", nil, infra.KindDuplicateKey)
	}
	s.users[u.ID()] = u
	return nil
}

func (s *UserStore) FindByUsername(_ context.Context, username user.Username) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[username.Value()]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return u, nil
}

func (s *UserStore) FindByID(ctx context.Context, id string) (*user.User, error) {
	username, err := user.NewUsername(id)
	if err != nil {
		return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
	}
	return s.FindByUsername(ctx, username)
}
