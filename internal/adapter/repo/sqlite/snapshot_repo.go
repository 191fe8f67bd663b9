package sqliterepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stealthstack/survivesimgame/internal/app/ports"
)

type SnapshotRepo struct {
	db *sql.DB
}

func NewSnapshotRepo(db *sql.DB) SnapshotRepo {
	return SnapshotRepo{db: db}
}

func (r SnapshotRepo) Save(ctx context.Context, snap ports.Snapshot) error {
	status, err := json.Marshal(snap.Status)
	if err != nil {
		return fmt.Errorf("encode snapshot status: %w", err)
	}
	rows, err := json.Marshal(snap.Rows)
	if err != nil {
		return fmt.Errorf("encode snapshot rows: %w", err)
	}
	_, err = getQuerier(ctx, r.db).ExecContext(ctx,
		`INSERT INTO run_snapshots(run_id, status, grid_rows, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(run_id) DO UPDATE SET status = excluded.status, grid_rows = excluded.grid_rows, updated_at = excluded.updated_at`,
		snap.RunID, string(status), string(rows), formatTime(snap.UpdatedAt))
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", snap.RunID, err)
	}
	return nil
}

func (r SnapshotRepo) Latest(ctx context.Context) (ports.Snapshot, error) {
	var runID, status, rows, updatedAt string
	err := getQuerier(ctx, r.db).QueryRowContext(ctx,
		`SELECT run_id, status, grid_rows, updated_at FROM run_snapshots ORDER BY updated_at DESC LIMIT 1`).
		Scan(&runID, &status, &rows, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.Snapshot{}, ports.ErrNotFound
	}
	if err != nil {
		return ports.Snapshot{}, fmt.Errorf("latest snapshot: %w", err)
	}

	out := ports.Snapshot{RunID: runID}
	if out.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return ports.Snapshot{}, fmt.Errorf("snapshot updated_at: %w", err)
	}
	if err := json.Unmarshal([]byte(status), &out.Status); err != nil {
		return ports.Snapshot{}, fmt.Errorf("decode snapshot status: %w", err)
	}
	if err := json.Unmarshal([]byte(rows), &out.Rows); err != nil {
		return ports.Snapshot{}, fmt.Errorf("decode snapshot rows: %w", err)
	}
	return out, nil
}
