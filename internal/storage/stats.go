package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	TotalLines int64
	TotalTime  time.Duration
	LastPlayed time.Time
	Modes      []ModeStats
}

// ModeStats aggregates the runs of one mode.
type ModeStats struct {
	Mode       string
	GamesCount int
	BestScore  int
	// BestTime is the fastest completed run; zero when none completed.
	BestTime time.Duration
	Lines    int64
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var totalMs int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0),
		        COALESCE(SUM(lines), 0), COALESCE(SUM(duration_ms), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore,
		&stats.TotalLines, &totalMs)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.TotalTime = time.Duration(totalMs) * time.Millisecond

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE game_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	stats.Modes, err = s.modeStats(gameID)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *Store) modeStats(gameID string) ([]ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*), MAX(score),
		        COALESCE(MIN(CASE WHEN completed = 1 THEN duration_ms END), 0),
		        COALESCE(SUM(lines), 0)
		 FROM scores
		 WHERE game_id = ? AND mode != ''
		 GROUP BY mode
		 ORDER BY mode`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}
	defer rows.Close()

	var modes []ModeStats
	for rows.Next() {
		var (
			m      ModeStats
			bestMs int64
		)
		if err := rows.Scan(&m.Mode, &m.GamesCount, &m.BestScore, &bestMs, &m.Lines); err != nil {
			return nil, fmt.Errorf("storage: cannot scan mode stats row: %w", err)
		}
		m.BestTime = time.Duration(bestMs) * time.Millisecond
		modes = append(modes, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return modes, nil
}

// GetAllGamesStats retrieves statistics for all games that have been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(`SELECT DISTINCT game_id FROM scores ORDER BY game_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ids = append(ids, id)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	stats := make(map[string]*GameStats, len(ids))
	for _, id := range ids {
		gs, err := s.GetGameStats(id)
		if err != nil {
			return nil, err
		}
		stats[id] = gs
	}
	return stats, nil
}
