package results

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Result is the recorded outcome of one finished run.
type Result struct {
	ID         int64
	Level      string
	GridRows   int
	GridCols   int
	Moves      int
	DurationMS int64
	FinishedAt time.Time
}

// SaveResult stores a finished run and returns its ID.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.Level == "" {
		return 0, errors.New("result level cannot be empty")
	}
	if r.Moves < 0 {
		return 0, errors.New("result moves cannot be negative")
	}
	if r.DurationMS < 0 {
		return 0, errors.New("result duration cannot be negative")
	}
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now()
	}

	query := `INSERT INTO results (level, grid_rows, grid_cols, moves, duration_ms, finished_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	if s.dialect.SupportsLastInsertID() {
		res, err := s.db.Exec(s.qb.Build(query),
			r.Level, r.GridRows, r.GridCols, r.Moves, r.DurationMS, r.FinishedAt)
		if err != nil {
			return 0, fmt.Errorf("failed to save result: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("failed to get result ID: %w", err)
		}
		return id, nil
	}

	var id int64
	err := s.db.QueryRow(s.qb.BuildWithReturning(query, "id"),
		r.Level, r.GridRows, r.GridCols, r.Moves, r.DurationMS, r.FinishedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save result: %w", err)
	}
	return id, nil
}

// BestResults returns up to limit results for a level, best first. Fewer
// moves win; equal moves are broken by the shorter run time.
func (s *Store) BestResults(level string, limit int) ([]Result, error) {
	query := s.qb.Build(`SELECT id, level, grid_rows, grid_cols, moves, duration_ms, finished_at
		FROM results WHERE level = ?
		ORDER BY moves ASC, duration_ms ASC, id ASC LIMIT ?`)

	rows, err := s.db.Query(query, level, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query best results: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

// RecentResults returns up to limit results across all levels, newest first.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	query := s.qb.Build(`SELECT id, level, grid_rows, grid_cols, moves, duration_ms, finished_at
		FROM results ORDER BY finished_at DESC, id DESC LIMIT ?`)

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent results: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

// CountByLevel returns how many runs have been recorded per level.
func (s *Store) CountByLevel() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT level, COUNT(*) FROM results GROUP BY level`)
	if err != nil {
		return nil, fmt.Errorf("failed to count results: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var level string
		var count int
		if err := rows.Scan(&level, &count); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[level] = count
	}
	return counts, rows.Err()
}

func scanResults(rows *sql.Rows) ([]Result, error) {
	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.ID, &r.Level, &r.GridRows, &r.GridCols, &r.Moves, &r.DurationMS, &r.FinishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
