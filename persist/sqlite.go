package persist

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/opencog/atomtable/atomspace"
)

// SQLiteStore is the default Store, grounded on the mattn/go-sqlite3
// driver that appears in the retrieval pack's domain stack. It persists
// the structural fields of every atom plus its SimpleTruthValue belief
// and importance; a TruthValue of any other concrete type is saved as
// null (§6 notes the core treats truth values as opaque, so this is a
// deliberate narrowing of the default store, not a core limitation).
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (creating if necessary) a SQLite-backed Store at
// path and ensures its schema exists.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("persist: open %s: %w", path, err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS atoms (
	handle     INTEGER PRIMARY KEY,
	kind       INTEGER NOT NULL,
	type       INTEGER NOT NULL,
	name       TEXT NOT NULL DEFAULT '',
	outgoing   TEXT NOT NULL DEFAULT '',
	strength   REAL NOT NULL DEFAULT 0,
	confidence REAL NOT NULL DEFAULT 0,
	has_truth  INTEGER NOT NULL DEFAULT 0,
	importance REAL NOT NULL DEFAULT 0
)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("persist: create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func encodeOutgoingIDs(outgoing []atomspace.Handle) string {
	parts := make([]string, len(outgoing))
	for i, h := range outgoing {
		parts[i] = strconv.FormatInt(int64(h), 10)
	}
	return strings.Join(parts, ",")
}

func decodeOutgoingIDs(s string) ([]atomspace.Handle, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]atomspace.Handle, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("persist: malformed outgoing tuple %q: %w", s, err)
		}
		out[i] = atomspace.Handle(n)
	}
	return out, nil
}

// SaveAtom upserts a's row keyed by its live handle.
func (s *SQLiteStore) SaveAtom(ctx context.Context, a *atomspace.Atom) error {
	tv, hasTruth := a.TruthValue().(atomspace.SimpleTruthValue)
	var outgoing string
	if a.Kind == atomspace.LinkKind {
		outgoing = encodeOutgoingIDs(a.Outgoing)
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO atoms (handle, kind, type, name, outgoing, strength, confidence, has_truth, importance)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(handle) DO UPDATE SET
	kind=excluded.kind, type=excluded.type, name=excluded.name, outgoing=excluded.outgoing,
	strength=excluded.strength, confidence=excluded.confidence, has_truth=excluded.has_truth,
	importance=excluded.importance`,
		int64(a.Handle), int(a.Kind), int(a.Type), a.Name, outgoing,
		tv.Strength, tv.Confidence, boolToInt(hasTruth), float64(a.Importance()))
	if err != nil {
		return fmt.Errorf("persist: save atom %s: %w", a.Handle, err)
	}
	return nil
}

// DeleteAtom removes h's row, if any.
func (s *SQLiteStore) DeleteAtom(ctx context.Context, h atomspace.Handle) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM atoms WHERE handle = ?`, int64(h))
	if err != nil {
		return fmt.Errorf("persist: delete atom %s: %w", h, err)
	}
	return nil
}

// LoadAll returns every saved atom ordered by ascending handle, which is
// always a valid re-add order: a link's outgoing handles are always
// smaller than its own, since a link can only be created after every
// atom it references already exists.
func (s *SQLiteStore) LoadAll(ctx context.Context) ([]*atomspace.Atom, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT handle, kind, type, name, outgoing, strength, confidence, has_truth, importance
FROM atoms ORDER BY handle ASC`)
	if err != nil {
		return nil, fmt.Errorf("persist: load all: %w", err)
	}
	defer rows.Close()

	var out []*atomspace.Atom
	for rows.Next() {
		var handle int64
		var kind, typ int
		var name, outgoingStr string
		var strength, confidence, importance float64
		var hasTruth int
		if err := rows.Scan(&handle, &kind, &typ, &name, &outgoingStr, &strength, &confidence, &hasTruth, &importance); err != nil {
			return nil, fmt.Errorf("persist: scan atom row: %w", err)
		}

		var a *atomspace.Atom
		if atomspace.Kind(kind) == atomspace.NodeKind {
			a = atomspace.NewNode(atomspace.Type(typ), name)
		} else {
			outgoing, err := decodeOutgoingIDs(outgoingStr)
			if err != nil {
				return nil, err
			}
			a = atomspace.NewLink(atomspace.Type(typ), outgoing)
		}
		a.Handle = atomspace.Handle(handle)
		if hasTruth != 0 {
			a.SetTruthValue(atomspace.SimpleTruthValue{Strength: strength, Confidence: confidence})
		}
		a.SetImportance(atomspace.Importance(importance))
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("persist: load all: %w", err)
	}
	return out, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
