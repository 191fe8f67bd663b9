package sqliterepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stealthstack/survivesimgame/internal/app/ports"
	"github.com/stealthstack/survivesimgame/internal/domain/survival"
)

type RunRepo struct {
	db *sql.DB
}

func NewRunRepo(db *sql.DB) RunRepo {
	return RunRepo{db: db}
}

func (r RunRepo) Create(ctx context.Context, run ports.RunRecord) error {
	var endedAt any
	if run.EndedAt != nil {
		endedAt = formatTime(*run.EndedAt)
	}
	_, err := getQuerier(ctx, r.db).ExecContext(ctx,
		`INSERT INTO runs(run_id, seed, width, height, status, started_at, ended_at, days_survived, nights_survived, death_cause)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID, run.Seed, run.Width, run.Height, string(run.Status), formatTime(run.StartedAt), endedAt,
		run.DaysSurvived, run.NightsSurvived, string(run.DeathCause))
	if isUniqueViolation(err) {
		return ports.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("create run %s: %w", run.RunID, err)
	}
	return nil
}

func (r RunRepo) Get(ctx context.Context, runID string) (ports.RunRecord, error) {
	var (
		out       ports.RunRecord
		status    string
		startedAt string
		endedAt   sql.NullString
		cause     string
	)
	row := getQuerier(ctx, r.db).QueryRowContext(ctx,
		`SELECT run_id, seed, width, height, status, started_at, ended_at, days_survived, nights_survived, death_cause
		 FROM runs WHERE run_id = ?`, runID)
	err := row.Scan(&out.RunID, &out.Seed, &out.Width, &out.Height, &status, &startedAt, &endedAt,
		&out.DaysSurvived, &out.NightsSurvived, &cause)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.RunRecord{}, ports.ErrNotFound
	}
	if err != nil {
		return ports.RunRecord{}, fmt.Errorf("get run %s: %w", runID, err)
	}
	out.Status = ports.RunStatus(status)
	out.DeathCause = survival.DeathCause(cause)
	if out.StartedAt, err = parseTime(startedAt); err != nil {
		return ports.RunRecord{}, fmt.Errorf("run %s started_at: %w", runID, err)
	}
	if endedAt.Valid {
		t, err := parseTime(endedAt.String)
		if err != nil {
			return ports.RunRecord{}, fmt.Errorf("run %s ended_at: %w", runID, err)
		}
		out.EndedAt = &t
	}
	return out, nil
}

func (r RunRepo) Close(ctx context.Context, runID string, summary ports.RunSummary) error {
	res, err := getQuerier(ctx, r.db).ExecContext(ctx,
		`UPDATE runs SET status = ?, ended_at = ?, days_survived = ?, nights_survived = ?, death_cause = ?
		 WHERE run_id = ? AND status = ?`,
		string(summary.FinalStatus()), formatTime(summary.EndedAt), summary.DaysSurvived, summary.NightsSurvived,
		string(summary.DeathCause), runID, string(ports.RunStatusAlive))
	if err != nil {
		return fmt.Errorf("close run %s: %w", runID, err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	if _, err := r.Get(ctx, runID); err != nil {
		return err
	}
	return ports.ErrConflict
}
