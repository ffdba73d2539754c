package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is one finished flight.
type Run struct {
	ID        int64
	RunID     string
	Player    string
	Distance  int64
	CreatedAt time.Time
}

// SaveRun records a finished flight for player and returns its run ID.
func (s *Store) SaveRun(player string, distance int64) (string, error) {
	runID := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO runs (run_id, player, distance) VALUES (?, ?, ?)",
		runID, player, distance,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return runID, nil
}

// TopRuns retrieves the longest N flights for player.
// An empty player returns flights of every player.
func (s *Store) TopRuns(player string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, player, distance, created_at
		 FROM runs
		 WHERE ? = '' OR player = ?
		 ORDER BY distance DESC, id ASC
		 LIMIT ?`,
		player, player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RunID, &r.Player, &r.Distance, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestRun returns the longest distance flown by player.
// Returns 0 if no runs exist.
func (s *Store) BestRun(player string) (int64, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(distance) FROM runs WHERE player = ?",
		player,
	).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best run: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}
	return best.Int64, nil
}

// ClearRuns deletes all flights for player.
func (s *Store) ClearRuns(player string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE player = ?", player)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
