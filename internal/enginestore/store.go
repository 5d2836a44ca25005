// Package enginestore provides optional, non-search-influencing
// durability for the search engine: transposition table snapshots and
// cumulative session statistics, backed by an embedded key-value
// store. A cold start with no store is fully functional; a warm one
// only shortcuts probes that would otherwise recompute.
package enginestore

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const keyStats = "stats"

// Stats tracks cumulative engine activity across process restarts.
type Stats struct {
	SearchesRun  int64         `json:"searches_run"`
	TotalNodes   uint64        `json:"total_nodes"`
	TotalTime    time.Duration `json:"total_time"`
	LastSearchAt time.Time     `json:"last_search_at"`
}

// NewStats returns zeroed statistics.
func NewStats() *Stats {
	return &Stats{}
}

// RecordSearch folds one completed search into the running totals.
func (s *Stats) RecordSearch(nodes uint64, elapsed time.Duration) {
	s.SearchesRun++
	s.TotalNodes += nodes
	s.TotalTime += elapsed
	s.LastSearchAt = time.Now()
}

// Store wraps an embedded key-value database for engine persistence.
type Store struct {
	db *badger.DB
}

// Open opens (creating if needed) the store rooted at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Set writes an arbitrary value under key.
func (s *Store) Set(key string, value []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

// Get reads the value stored under key; ok is false if the key is
// absent.
func (s *Store) Get(key string) (value []byte, ok bool, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, gerr := txn.Get([]byte(key))
		if gerr == badger.ErrKeyNotFound {
			return nil
		}
		if gerr != nil {
			return gerr
		}
		ok = true
		return item.Value(func(val []byte) error {
			value = append([]byte(nil), val...)
			return nil
		})
	})
	return value, ok, err
}

// LoadStats loads cumulative statistics, returning a zeroed Stats if
// none have been recorded yet.
func (s *Store) LoadStats() (*Stats, error) {
	data, ok, err := s.Get(keyStats)
	if err != nil {
		return nil, err
	}
	stats := NewStats()
	if !ok {
		return stats, nil
	}
	if err := json.Unmarshal(data, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// SaveStats persists stats.
func (s *Store) SaveStats(stats *Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.Set(keyStats, data)
}
