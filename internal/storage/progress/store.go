// Package progress persists the player's economy state across runs. It is
// the durable-persistence collaborator at the edge of the engine: the game
// core itself only ever sees in-memory state.
package progress

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/vadiminshakov/gowal"

	"github.com/zappabad/tickrush/internal/economy"
)

const (
	segmentLimit = 1000
	maxSegments  = 10
	keyPrefix    = "progress_"
)

// Store is a WAL-backed snapshot store. Each save appends a full economy
// snapshot; loads return the most recent one.
type Store struct {
	wal *gowal.Wal
	mu  sync.Mutex
}

// NewStore opens (or creates) the store under the given directory.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("progress store dir is required")
	}

	cfg := gowal.Config{
		Dir:              dir,
		Prefix:           "progress_",
		SegmentThreshold: segmentLimit,
		MaxSegments:      maxSegments,
		IsInSyncDiskMode: true,
	}

	wal, err := gowal.NewWAL(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "init progress WAL")
	}
	return &Store{wal: wal}, nil
}

// Save appends the snapshot.
func (s *Store) Save(st economy.State) error {
	if s == nil || s.wal == nil {
		return errors.New("progress store is not initialized")
	}

	payload, err := json.Marshal(st)
	if err != nil {
		return errors.Wrap(err, "marshal progress snapshot")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	nextIndex := s.wal.CurrentIndex() + 1
	return s.wal.Write(nextIndex, keyPrefix+"state", payload)
}

// Load returns the latest snapshot, or nil when nothing has been saved yet.
func (s *Store) Load() (*economy.State, error) {
	if s == nil || s.wal == nil {
		return nil, errors.New("progress store is not initialized")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for idx := s.wal.CurrentIndex(); idx >= 1; idx-- {
		key, payload, err := s.wal.Get(idx)
		if err != nil || !strings.HasPrefix(key, keyPrefix) {
			continue
		}
		var st economy.State
		if err := json.Unmarshal(payload, &st); err != nil {
			return nil, errors.Wrap(err, "decode progress snapshot")
		}
		return &st, nil
	}
	return nil, nil
}

// Close closes the underlying WAL.
func (s *Store) Close() error {
	if s == nil || s.wal == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wal.Close()
}
