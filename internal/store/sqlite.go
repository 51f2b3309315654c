package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/amishk599/skillscan/internal/model"
)

// Ensure SQLiteStore implements model.DecisionStore.
var _ model.DecisionStore = (*SQLiteStore)(nil)

// SQLiteStore records finalized evaluator decisions in a SQLite database.
// Only the decision metadata is stored, never the resume or its text.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and ensures the
// decisions table exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Verify the connection is alive.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	createTable := `CREATE TABLE IF NOT EXISTS decisions (
		id         TEXT PRIMARY KEY,
		document   TEXT NOT NULL,
		role       TEXT NOT NULL,
		score      INTEGER NOT NULL,
		rating     INTEGER NOT NULL,
		decision   TEXT NOT NULL,
		decided_at INTEGER NOT NULL
	)`
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating decisions table: %w", err)
	}

	return &SQLiteStore{db: db, now: time.Now}, nil
}

// Record stores rec, assigning an ID and timestamp when they are unset, and
// returns the stored record.
func (s *SQLiteStore) Record(rec model.DecisionRecord) (model.DecisionRecord, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.DecidedAt.IsZero() {
		rec.DecidedAt = s.now()
	}
	rec.DecidedAt = rec.DecidedAt.UTC()

	_, err := s.db.Exec(
		`INSERT INTO decisions (id, document, role, score, rating, decision, decided_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Document, rec.Role, rec.Score, rec.Rating, string(rec.Decision), rec.DecidedAt.UnixNano(),
	)
	if err != nil {
		return model.DecisionRecord{}, fmt.Errorf("recording decision for %s: %w", rec.Document, err)
	}
	return rec, nil
}

// List returns up to limit decisions, newest first. A limit of 0 or less
// returns all of them.
func (s *SQLiteStore) List(limit int) ([]model.DecisionRecord, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.db.Query(
		`SELECT id, document, role, score, rating, decision, decided_at
		 FROM decisions ORDER BY decided_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing decisions: %w", err)
	}
	defer rows.Close()

	var recs []model.DecisionRecord
	for rows.Next() {
		var (
			rec      model.DecisionRecord
			decision string
			nanos    int64
		)
		if err := rows.Scan(&rec.ID, &rec.Document, &rec.Role, &rec.Score, &rec.Rating, &decision, &nanos); err != nil {
			return nil, fmt.Errorf("scanning decision: %w", err)
		}
		rec.Decision = model.Decision(decision)
		rec.DecidedAt = time.Unix(0, nanos).UTC()
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing decisions: %w", err)
	}
	return recs, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
