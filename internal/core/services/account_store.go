package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_converter_app/internal/core/ports/repositories"
)

// AccountStore owns the in-memory account collection and is the only caller of
// AccountWriter.SaveAll.
//
// Writers take writeMu for the whole mutate, snapshot, save and commit sequence,
// so a snapshot always contains every previously committed change and no two
// saves overlap. Readers only need mu and always receive deep copies.
type AccountStore struct {
	BaseService
	repo portsrepo.AccountWriter

	writeMu sync.Mutex

	mu         sync.RWMutex
	accounts   map[string]domain.Account
	order      []string
	byUsername map[string]string
}

func NewAccountStore(repo portsrepo.AccountWriter) *AccountStore {
	return &AccountStore{
		repo:       repo,
		accounts:   make(map[string]domain.Account),
		byUsername: make(map[string]string),
	}
}

// Load fills the store from repo. A missing or malformed collection is logged and
// the store starts empty; the error is returned so the caller can report it.
func (s *AccountStore) Load(ctx context.Context, repo portsrepo.AccountReader) error {
	accounts, err := repo.LoadAll(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts, starting with an empty collection")
		if initErr := s.Init(nil); initErr != nil {
			return initErr
		}
		return err
	}
	if err := s.Init(accounts); err != nil {
		return err
	}
	s.LogInfo(ctx, "Accounts loaded", slog.Int("count", len(accounts)))
	return nil
}

// Init replaces the collection. IDs and usernames must be unique.
func (s *AccountStore) Init(accounts []domain.Account) error {
	byID := make(map[string]domain.Account, len(accounts))
	byUsername := make(map[string]string, len(accounts))
	order := make([]string, 0, len(accounts))
	for _, a := range accounts {
		if _, dup := byID[a.ID]; dup {
			return fmt.Errorf("%w: account id '%s'", apperrors.ErrDuplicate, a.ID)
		}
		if _, dup := byUsername[a.Username]; dup {
			return fmt.Errorf("%w: username '%s'", apperrors.ErrDuplicate, a.Username)
		}
		byID[a.ID] = a.Clone()
		byUsername[a.Username] = a.ID
		order = append(order, a.ID)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = byID
	s.byUsername = byUsername
	s.order = order
	return nil
}

// GetByID returns a copy of the account or ErrNotFound.
func (s *AccountStore) GetByID(id string) (domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	if !ok {
		return domain.Account{}, fmt.Errorf("account '%s': %w", id, apperrors.ErrNotFound)
	}
	return a.Clone(), nil
}

// GetByUsername returns a copy of the account or ErrNotFound.
func (s *AccountStore) GetByUsername(username string) (domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byUsername[username]
	if !ok {
		return domain.Account{}, fmt.Errorf("user '%s': %w", username, apperrors.ErrNotFound)
	}
	return s.accounts[id].Clone(), nil
}

// Snapshot returns a deep copy of every account in insertion order.
func (s *AccountStore) Snapshot() []domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *AccountStore) snapshotLocked() []domain.Account {
	out := make([]domain.Account, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.accounts[id].Clone())
	}
	return out
}

// Create persists a new account and then adds it to memory. A duplicate id or
// username yields ErrDuplicate; a failed save leaves the store unchanged.
func (s *AccountStore) Create(ctx context.Context, account domain.Account) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	_, idTaken := s.accounts[account.ID]
	_, nameTaken := s.byUsername[account.Username]
	next := s.snapshotLocked()
	s.mu.RUnlock()

	if idTaken {
		return fmt.Errorf("%w: account id '%s'", apperrors.ErrDuplicate, account.ID)
	}
	if nameTaken {
		return fmt.Errorf("%w: username '%s' is taken", apperrors.ErrDuplicate, account.Username)
	}

	account = account.Clone()
	next = append(next, account)
	if err := s.repo.SaveAll(ctx, next); err != nil {
		s.LogError(ctx, err, "Failed to persist new account", slog.String("user_id", account.ID))
		return err
	}

	s.mu.Lock()
	s.accounts[account.ID] = account
	s.byUsername[account.Username] = account.ID
	s.order = append(s.order, account.ID)
	s.mu.Unlock()
	return nil
}

// Mutate applies fn to a copy of the account, persists the whole collection with
// the change and only then commits it to memory. If fn or the save fails the
// stored account is left as it was and the error is returned.
func (s *AccountStore) Mutate(ctx context.Context, id string, fn func(*domain.Account) error) (domain.Account, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	current, ok := s.accounts[id]
	next := s.snapshotLocked()
	s.mu.RUnlock()
	if !ok {
		return domain.Account{}, fmt.Errorf("account '%s': %w", id, apperrors.ErrNotFound)
	}

	updated := current.Clone()
	if err := fn(&updated); err != nil {
		return domain.Account{}, err
	}
	updated.ID = current.ID
	updated.Username = current.Username

	for i := range next {
		if next[i].ID == id {
			next[i] = updated.Clone()
			break
		}
	}
	if err := s.repo.SaveAll(ctx, next); err != nil {
		s.LogError(ctx, err, "Failed to persist account change, keeping previous state", slog.String("user_id", id))
		return domain.Account{}, err
	}

	s.mu.Lock()
	s.accounts[id] = updated
	s.mu.Unlock()
	return updated.Clone(), nil
}
