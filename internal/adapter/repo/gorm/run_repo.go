package gormrepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/stealthstack/survivesimgame/internal/adapter/repo/gorm/model"
	"github.com/stealthstack/survivesimgame/internal/app/ports"
	"github.com/stealthstack/survivesimgame/internal/domain/survival"
)

type RunRepo struct {
	db *gorm.DB
}

func NewRunRepo(db *gorm.DB) RunRepo {
	return RunRepo{db: db}
}

func (r RunRepo) Create(ctx context.Context, run ports.RunRecord) error {
	m := model.Run{
		RunID:          run.RunID,
		Seed:           run.Seed,
		Width:          int32(run.Width),
		Height:         int32(run.Height),
		Status:         string(run.Status),
		StartedAt:      run.StartedAt,
		EndedAt:        run.EndedAt,
		DaysSurvived:   int32(run.DaysSurvived),
		NightsSurvived: int32(run.NightsSurvived),
		DeathCause:     string(run.DeathCause),
	}
	err := getDBFromCtx(ctx, r.db).Create(&m).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ports.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("create run %s: %w", run.RunID, err)
	}
	return nil
}

func (r RunRepo) Get(ctx context.Context, runID string) (ports.RunRecord, error) {
	var m model.Run
	err := getDBFromCtx(ctx, r.db).Where(&model.Run{RunID: runID}).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ports.RunRecord{}, ports.ErrNotFound
	}
	if err != nil {
		return ports.RunRecord{}, fmt.Errorf("get run %s: %w", runID, err)
	}
	return toRunRecord(m), nil
}

// Close only transitions an alive run, so a second close reports a conflict.
func (r RunRepo) Close(ctx context.Context, runID string, summary ports.RunSummary) error {
	db := getDBFromCtx(ctx, r.db)
	res := db.Model(&model.Run{}).
		Where("run_id = ? AND status = ?", runID, string(ports.RunStatusAlive)).
		Updates(map[string]any{
			"status":          string(summary.FinalStatus()),
			"ended_at":        summary.EndedAt,
			"days_survived":   summary.DaysSurvived,
			"nights_survived": summary.NightsSurvived,
			"death_cause":     string(summary.DeathCause),
		})
	if res.Error != nil {
		return fmt.Errorf("close run %s: %w", runID, res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}
	if _, err := r.Get(ctx, runID); err != nil {
		return err
	}
	return ports.ErrConflict
}

func toRunRecord(m model.Run) ports.RunRecord {
	return ports.RunRecord{
		RunID:          m.RunID,
		Seed:           m.Seed,
		Width:          int(m.Width),
		Height:         int(m.Height),
		Status:         ports.RunStatus(m.Status),
		StartedAt:      m.StartedAt,
		EndedAt:        m.EndedAt,
		DaysSurvived:   int(m.DaysSurvived),
		NightsSurvived: int(m.NightsSurvived),
		DeathCause:     survival.DeathCause(m.DeathCause),
	}
}
