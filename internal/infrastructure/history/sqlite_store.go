// Package history persists executed commands in a SQLite database. It is the
// fire-and-forget side-channel of the flow: append failures are returned for
// logging but never interrupt a session.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/aido-sh/aido/internal/domain"
	"github.com/aido-sh/aido/internal/pkg/filesystem"
	"github.com/aido-sh/aido/internal/ports"
)

// SQLiteStore persists history in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the database at path, defaulting to
// ~/.aido/history/history.db. Open failures leave the store inert: every
// operation then reports the same unavailability error.
func NewSQLiteStore(path string) *SQLiteStore {
	if path == "" {
		path = filepath.Join(filesystem.DataDir(), "history", "history.db")
	}
	_ = os.MkdirAll(filepath.Dir(path), 0o755)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		db.Close()
		return &SQLiteStore{path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS commands (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT,
		prompt TEXT,
		script TEXT,
		model TEXT,
		action TEXT,
		executed INTEGER
	);`)
	return err
}

// Append inserts a new record.
func (s *SQLiteStore) Append(record domain.HistoryRecord) error {
	if s.db == nil {
		return s.unavailable()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO commands
		(timestamp, prompt, script, model, action, executed)
		VALUES (?, ?, ?, ?, ?, ?)`,
		record.Timestamp.Format(time.RFC3339),
		record.Prompt,
		record.Script,
		record.Model,
		string(record.Action),
		boolToInt(record.Executed),
	)
	return err
}

// Records returns history entries, newest first (limit/search optional).
func (s *SQLiteStore) Records(limit int, search string) ([]domain.HistoryRecord, error) {
	if s.db == nil {
		return nil, s.unavailable()
	}
	builder := strings.Builder{}
	builder.WriteString("SELECT timestamp, prompt, script, model, action, executed FROM commands")
	var args []interface{}
	if search != "" {
		builder.WriteString(" WHERE prompt LIKE ? OR script LIKE ?")
		args = append(args, "%"+search+"%", "%"+search+"%")
	}
	builder.WriteString(" ORDER BY datetime(timestamp) DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}

	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.HistoryRecord
	for rows.Next() {
		var rec domain.HistoryRecord
		var ts, action string
		var executed int
		if err := rows.Scan(&ts, &rec.Prompt, &rec.Script, &rec.Model, &action, &executed); err != nil {
			return nil, err
		}
		if t, perr := time.Parse(time.RFC3339, ts); perr == nil {
			rec.Timestamp = t
		}
		rec.Action = domain.HistoryAction(action)
		rec.Executed = executed == 1
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) unavailable() error {
	return fmt.Errorf("history store unavailable at %s", s.path)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.HistoryStore = (*SQLiteStore)(nil)
