package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/bizadmin/internal/client/repositories/storage"
	"github.com/dmitrijs2005/bizadmin/internal/common"
	"github.com/dmitrijs2005/bizadmin/internal/logging"
)

// ErrNoSession is returned when a write targets a key that no longer holds a
// session, e.g. because it was cleared by a concurrent logout.
var ErrNoSession = errors.New("no stored session")

// Keys lists the storage keys in lookup order.
var Keys = []string{common.SessionStorageKey, common.LegacySessionStorageKey}

// Store reads and writes credentials in a storage.Repository. Reads are
// lock-free; writes are serialised so a token refresh cannot interleave with
// a login or logout, and each write is applied atomically.
type Store struct {
	repo storage.Repository
	log  logging.Logger
	mu   sync.Mutex
}

func NewStore(repo storage.Repository, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{repo: repo, log: log}
}

// Load returns the first valid credential found in Keys order. Blobs that
// fail validation are skipped and logged. The bool is false when no key holds
// a valid credential; the error is set only on repository failure.
func (s *Store) Load(ctx context.Context) (Snapshot, bool, error) {
	for _, key := range Keys {
		raw, err := s.repo.Get(ctx, key)
		if err != nil {
			return Snapshot{}, false, fmt.Errorf("load session: %w", err)
		}
		if raw == nil {
			continue
		}
		cred, err := decodeBlob(raw)
		if err != nil {
			s.log.Warn(ctx, "ignoring invalid session blob", "key", key, "error", err)
			continue
		}
		return Snapshot{Key: key, Credential: cred}, true, nil
	}
	return Snapshot{}, false, nil
}

// AccessToken returns the current access token, or "" without a session.
func (s *Store) AccessToken(ctx context.Context) (string, error) {
	snap, ok, err := s.Load(ctx)
	if err != nil || !ok {
		return "", err
	}
	return snap.Credential.AccessToken, nil
}

// Save stores a fresh credential under the current key and drops the legacy
// key so the two cannot disagree.
func (s *Store) Save(ctx context.Context, c Credential) error {
	raw, err := encodeBlob(c)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.repo.Atomic(ctx, func(ctx context.Context, repo storage.Repository) error {
		if err := repo.Set(ctx, common.SessionStorageKey, raw); err != nil {
			return err
		}
		return repo.Delete(ctx, common.LegacySessionStorageKey)
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// SaveTokens writes refreshed tokens back into key, the key the refreshed
// credential was loaded from. An empty refreshToken keeps the stored one.
// Returns ErrNoSession when key is empty.
func (s *Store) SaveTokens(ctx context.Context, key, accessToken, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.repo.Atomic(ctx, func(ctx context.Context, repo storage.Repository) error {
		raw, err := repo.Get(ctx, key)
		if err != nil {
			return err
		}
		if raw == nil {
			return ErrNoSession
		}
		patched, err := patchBlob(raw, accessToken, refreshToken)
		if err != nil {
			return err
		}
		return repo.Set(ctx, key, patched)
	})
	if errors.Is(err, ErrNoSession) {
		return err
	}
	if err != nil {
		return fmt.Errorf("save tokens: %w", err)
	}
	return nil
}

// Clear removes both session keys.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx, Keys...); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
