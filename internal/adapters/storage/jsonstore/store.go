// Package jsonstore persists the whole application state as a single JSON
// document. Every mutation rewrites the full file through a tmp-file +
// rename so a crash mid-write never corrupts the previous snapshot. The
// in-memory snapshot is the authoritative copy; the file is a durable
// mirror of the last committed state.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/alzoz/stock_management_app/internal/core/domain"
	"github.com/google/uuid"
)

// SeedConfig describes the default snapshot synthesized when the snapshot
// file does not exist yet: one admin user and the facility's starter
// categories.
type SeedConfig struct {
	AdminUsername     string
	AdminPasswordHash string
}

var seedCategoryNames = []string{
	"Medicines",
	"Medical supplies",
	"Solutions",
	"Medical equipment",
}

// Store owns the in-memory snapshot and its file mirror. HTTP handlers run
// concurrently, so access goes through an RWMutex even though each mutation
// is a single synchronous step.
type Store struct {
	path string

	mu   sync.RWMutex
	snap Snapshot
}

// Open loads the snapshot at path, or seeds and persists a default one when
// the file does not exist.
func Open(path string, seed SeedConfig) (*Store, error) {
	s := &Store{path: path}

	f, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.snap = defaultSnapshot(seed)
		if err := s.commitLocked(); err != nil {
			return nil, fmt.Errorf("failed to write seed snapshot: %w", err)
		}
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("failed to open snapshot %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&s.snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", path, err)
	}
	return s, nil
}

func defaultSnapshot(seed SeedConfig) Snapshot {
	now := time.Now().UTC()
	admin := domain.User{
		UserID:       uuid.NewString(),
		Username:     seed.AdminUsername,
		PasswordHash: seed.AdminPasswordHash,
		Role:         domain.RoleAdmin,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "system",
			LastUpdatedAt: now,
			LastUpdatedBy: "system",
		},
	}

	categories := make([]domain.Category, len(seedCategoryNames))
	for i, name := range seedCategoryNames {
		categories[i] = domain.Category{
			CategoryID: uuid.NewString(),
			Name:       name,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     "system",
				LastUpdatedAt: now,
				LastUpdatedBy: "system",
			},
		}
	}

	return Snapshot{
		Users:          []persistUser{toPersistUser(admin)},
		Categories:     categories,
		Items:          []domain.Item{},
		Transactions:   []domain.StockTransaction{},
		PurchaseOrders: []domain.PurchaseOrder{},
		Notifications:  []domain.Notification{},
	}
}

// view runs fn with read access to the snapshot. fn must not retain or
// mutate anything it reads; repositories copy what they return.
func (s *Store) view(fn func(snap *Snapshot)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.snap)
}

// mutate runs fn with write access and, when fn succeeds, commits the whole
// snapshot to disk. An error from fn leaves both the in-memory state (as fn
// left it) unpersisted only if fn mutated before failing, so mutation
// functions must validate before touching the snapshot.
func (s *Store) mutate(fn func(snap *Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(&s.snap); err != nil {
		return err
	}
	return s.commitLocked()
}

// commitLocked writes the snapshot via tmp-file + rename. Caller holds the
// write lock (or exclusive ownership during Open).
func (s *Store) commitLocked() error {
	s.snap.Meta = Meta{
		Storage:   "json_snapshot",
		Version:   snapshotVersion,
		Timestamp: time.Now().UTC(),
	}

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tmp, err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.snap); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp, err)
	}

	return os.Rename(tmp, s.path)
}
