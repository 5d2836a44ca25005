package engine

import (
	"sync"

	"github.com/kbolino/draughts/internal/board"
	"github.com/kbolino/draughts/internal/eval"
)

// ttEntry is one slot of either table.
type ttEntry struct {
	board board.Board
	eval  eval.Eval
	depth uint8
	used  bool
}

// ttBucket pairs a slot with its own reader-writer lock, so that writes
// to one bucket never contend with reads or writes to another.
type ttBucket struct {
	mu    sync.RWMutex
	entry ttEntry
}

// TranspositionTable is a two-layer table: an always-replace table for
// recency and a depth-preferred table that only accepts entries at
// least as deep as what they'd overwrite. Both are sized N/2 and
// indexed by board.Hash() mod N/2.
type TranspositionTable struct {
	replace []ttBucket
	depth   []ttBucket
}

// NewTranspositionTable allocates a table with total capacity size,
// split evenly between the replace and depth-preferred arrays.
func NewTranspositionTable(size int) *TranspositionTable {
	if size < 2 {
		size = 2
	}
	return &TranspositionTable{
		replace: make([]ttBucket, size/2),
		depth:   make([]ttBucket, size/2),
	}
}

func (t *TranspositionTable) index(b board.Board) uint64 {
	return b.Hash() % uint64(len(t.replace))
}

// Get returns a usable evaluation for alpha-beta pruning: a hit
// requires both a matching board and a stored depth at least d,
// checking the replace table before the depth table.
func (t *TranspositionTable) Get(b board.Board, d uint8) (eval.Eval, bool) {
	idx := t.index(b)

	bucket := &t.replace[idx]
	bucket.mu.RLock()
	e := bucket.entry
	bucket.mu.RUnlock()
	if e.used && e.board.Equal(b) && e.depth >= d {
		return e.eval, true
	}

	bucket = &t.depth[idx]
	bucket.mu.RLock()
	e = bucket.entry
	bucket.mu.RUnlock()
	if e.used && e.board.Equal(b) && e.depth >= d {
		return e.eval, true
	}

	return 0, false
}

// GetAnyDepth returns a cached evaluation regardless of its stored
// depth, for move-ordering purposes only; the depth table is checked
// first since it holds the deepest known entries.
func (t *TranspositionTable) GetAnyDepth(b board.Board) (eval.Eval, bool) {
	idx := t.index(b)

	bucket := &t.depth[idx]
	bucket.mu.RLock()
	e := bucket.entry
	bucket.mu.RUnlock()
	if e.used && e.board.Equal(b) {
		return e.eval, true
	}

	bucket = &t.replace[idx]
	bucket.mu.RLock()
	e = bucket.entry
	bucket.mu.RUnlock()
	if e.used && e.board.Equal(b) {
		return e.eval, true
	}

	return 0, false
}

// Insert records (b, ev, depth): unconditionally in the replace table,
// and in the depth table only if the slot is empty or depth is at
// least as deep as what's already there.
func (t *TranspositionTable) Insert(b board.Board, ev eval.Eval, depth uint8) {
	idx := t.index(b)

	rb := &t.replace[idx]
	rb.mu.Lock()
	rb.entry = ttEntry{board: b, eval: ev, depth: depth, used: true}
	rb.mu.Unlock()

	db := &t.depth[idx]
	db.mu.Lock()
	if !db.entry.used || depth >= db.entry.depth {
		db.entry = ttEntry{board: b, eval: ev, depth: depth, used: true}
	}
	db.mu.Unlock()
}
