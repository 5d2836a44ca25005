package engine

import (
	"encoding/binary"

	"github.com/kbolino/draughts/internal/board"
	"github.com/kbolino/draughts/internal/eval"
)

// entryRecordSize is the encoded size of one depth-table entry: three
// uint32 bitboard fields, one byte for Turn, two bytes for Eval, one
// byte for depth.
const entryRecordSize = 4 + 4 + 4 + 1 + 2 + 1

// Snapshot serializes the depth-preferred table's used entries into a
// flat byte slice suitable for storage. The always-replace table is not
// persisted: it exists only to catch recent positions within a single
// run and is cheap to rebuild from scratch.
func (t *TranspositionTable) Snapshot() []byte {
	buf := make([]byte, 0, len(t.depth)*entryRecordSize)
	for i := range t.depth {
		bucket := &t.depth[i]
		bucket.mu.RLock()
		e := bucket.entry
		bucket.mu.RUnlock()
		if !e.used {
			continue
		}
		buf = appendEntry(buf, e)
	}
	return buf
}

func appendEntry(buf []byte, e ttEntry) []byte {
	var rec [entryRecordSize]byte
	binary.LittleEndian.PutUint32(rec[0:4], e.board.Pieces)
	binary.LittleEndian.PutUint32(rec[4:8], e.board.Colors)
	binary.LittleEndian.PutUint32(rec[8:12], e.board.Kings)
	rec[12] = byte(e.board.Turn)
	binary.LittleEndian.PutUint16(rec[13:15], uint16(e.eval))
	rec[15] = e.depth
	return append(buf, rec[:]...)
}

// LoadSnapshot restores entries previously produced by Snapshot into
// the depth table, reinserting each through Insert so the replace table
// picks up recent hits too. Malformed trailing bytes are ignored.
func (t *TranspositionTable) LoadSnapshot(data []byte) {
	for len(data) >= entryRecordSize {
		rec := data[:entryRecordSize]
		data = data[entryRecordSize:]

		b := board.Board{
			Pieces: binary.LittleEndian.Uint32(rec[0:4]),
			Colors: binary.LittleEndian.Uint32(rec[4:8]),
			Kings:  binary.LittleEndian.Uint32(rec[8:12]),
			Turn:   board.Color(rec[12]),
		}
		ev := eval.Eval(binary.LittleEndian.Uint16(rec[13:15]))
		depth := rec[15]

		t.Insert(b, ev, depth)
	}
}

// SaveTT snapshots the engine's transposition table into store under
// key.
func (e *Engine) SaveTT(store interface{ Set(string, []byte) error }, key string) error {
	snap := e.tt.Snapshot()
	if err := store.Set(key, snap); err != nil {
		return err
	}
	Logger.Printf("[Engine] TT snapshot saved: %d bytes", len(snap))
	return nil
}

// LoadTT restores the engine's transposition table from a previously
// saved snapshot under key. A missing key is not an error: the engine
// simply starts with a cold table.
func (e *Engine) LoadTT(store interface{ Get(string) ([]byte, bool, error) }, key string) error {
	data, ok, err := store.Get(key)
	if err != nil {
		return err
	}
	if !ok {
		Logger.Printf("[Engine] TT snapshot not found for key %q, starting cold", key)
		return nil
	}
	e.tt.LoadSnapshot(data)
	Logger.Printf("[Engine] TT snapshot loaded: %d bytes", len(data))
	return nil
}
