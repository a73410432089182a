// Package storage provides SQLite-based persistence for game scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tetress/internal/core"
)

// ErrNoScores is returned when a query that needs a score finds none.
var ErrNoScores = errors.New("storage: no scores recorded")

// timeRankedModes are ranked by fastest completed run instead of score.
var timeRankedModes = map[string]bool{"sprint": true}

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	RunID     string
	GameID    string
	Mode      string
	Player    string
	Score     int
	Lines     int
	Level     int
	Duration  time.Duration
	Completed bool
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// scoreColumns lists the columns added after the first schema, with their
// definitions, so older databases can be upgraded in place.
var scoreColumns = []struct{ name, def string }{
	{"run_id", "TEXT NOT NULL DEFAULT ''"},
	{"mode", "TEXT NOT NULL DEFAULT ''"},
	{"player", "TEXT NOT NULL DEFAULT ''"},
	{"lines", "INTEGER NOT NULL DEFAULT 0"},
	{"level", "INTEGER NOT NULL DEFAULT 0"},
	{"duration_ms", "INTEGER NOT NULL DEFAULT 0"},
	{"completed", "INTEGER NOT NULL DEFAULT 0"},
}

// migrate creates the database schema if it doesn't exist and adds columns
// missing from older databases.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	existing, err := s.columns("scores")
	if err != nil {
		return err
	}
	for _, c := range scoreColumns {
		if existing[c.name] {
			continue
		}
		if _, err := s.db.Exec(fmt.Sprintf("ALTER TABLE scores ADD COLUMN %s %s", c.name, c.def)); err != nil {
			return fmt.Errorf("add column %s: %w", c.name, err)
		}
	}

	indexes := `
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);
		CREATE INDEX IF NOT EXISTS idx_scores_mode ON scores(game_id, mode, score DESC);
	`
	_, err = s.db.Exec(indexes)
	return err
}

func (s *Store) columns(table string) (map[string]bool, error) {
	rows, err := s.db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var (
			cid     int
			name    string
			typ     string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return nil, err
		}
		cols[name] = true
	}
	return cols, rows.Err()
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a bare score for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score, run_id) VALUES (?, ?, ?)",
		gameID, score, uuid.NewString(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveResult records a finished game with its mode and statistics.
// The returned entry carries the generated run ID.
func (s *Store) SaveResult(gameID, player string, r core.GameResult) (ScoreEntry, error) {
	e := ScoreEntry{
		RunID:     uuid.NewString(),
		GameID:    gameID,
		Mode:      r.Mode,
		Player:    player,
		Score:     r.Score,
		Lines:     r.Lines,
		Level:     r.Level,
		Duration:  r.Duration,
		Completed: r.Completed,
		CreatedAt: time.Now().UTC(),
	}

	result, err := s.db.Exec(
		`INSERT INTO scores
		 (run_id, game_id, mode, player, score, lines, level, duration_ms, completed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.RunID, e.GameID, e.Mode, e.Player, e.Score, e.Lines, e.Level,
		e.Duration.Milliseconds(), e.Completed,
	)
	if err != nil {
		return ScoreEntry{}, fmt.Errorf("storage: cannot save result: %w", err)
	}

	e.ID, err = result.LastInsertId()
	if err != nil {
		return ScoreEntry{}, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return e, nil
}

const selectEntry = `SELECT id, run_id, game_id, mode, player, score, lines, level,
		duration_ms, completed, created_at FROM scores`

// TopScores retrieves the top N scores for the given game across modes.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryEntries(
		selectEntry+` WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?`,
		gameID, limit,
	)
}

// TopScoresByMode retrieves the leaderboard of one mode. Time-ranked modes
// (Sprint) list completed runs fastest first; the others rank by score.
func (s *Store) TopScoresByMode(gameID, mode string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	query := selectEntry + ` WHERE game_id = ? AND mode = ? ORDER BY score DESC, id ASC LIMIT ?`
	if timeRankedModes[mode] {
		query = selectEntry + ` WHERE game_id = ? AND mode = ? AND completed = 1
			ORDER BY duration_ms ASC, id ASC LIMIT ?`
	}
	return s.queryEntries(query, gameID, mode, limit)
}

// PersonalBest returns the best run of a player in one mode, ranked the
// same way as TopScoresByMode. An empty player matches everyone.
// Returns ErrNoScores when there is no qualifying run.
func (s *Store) PersonalBest(gameID, mode, player string) (ScoreEntry, error) {
	order := "score DESC, id ASC"
	filter := ""
	if timeRankedModes[mode] {
		order = "duration_ms ASC, id ASC"
		filter = " AND completed = 1"
	}

	query := selectEntry + ` WHERE game_id = ? AND mode = ? AND (? = '' OR player = ?)` +
		filter + ` ORDER BY ` + order + ` LIMIT 1`
	entries, err := s.queryEntries(query, gameID, mode, player, player)
	if err != nil {
		return ScoreEntry{}, err
	}
	if len(entries) == 0 {
		return ScoreEntry{}, ErrNoScores
	}
	return entries[0], nil
}

func (s *Store) queryEntries(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var (
			e          ScoreEntry
			durationMs int64
			createdAt  any
		)
		if err := rows.Scan(&e.ID, &e.RunID, &e.GameID, &e.Mode, &e.Player, &e.Score,
			&e.Lines, &e.Level, &durationMs, &e.Completed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMs) * time.Millisecond
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// parseTimestamp converts a created_at value. The driver returns either a
// time.Time or SQLite's text form depending on how the row was written.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339Nano} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
