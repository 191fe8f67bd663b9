package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stealthstack/survivesimgame/internal/adapter/repo/gorm/model"
	"github.com/stealthstack/survivesimgame/internal/app/ports"
)

type SnapshotRepo struct {
	db *gorm.DB
}

func NewSnapshotRepo(db *gorm.DB) SnapshotRepo {
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
	m := model.RunSnapshot{
		RunID:     snap.RunID,
		Status:    status,
		Rows:      rows,
		UpdatedAt: snap.UpdatedAt,
	}
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "run_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "grid_rows", "updated_at"}),
	}).Create(&m).Error
}

func (r SnapshotRepo) Latest(ctx context.Context) (ports.Snapshot, error) {
	var m model.RunSnapshot
	err := getDBFromCtx(ctx, r.db).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "updated_at"}, Desc: true}},
		}).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ports.Snapshot{}, ports.ErrNotFound
	}
	if err != nil {
		return ports.Snapshot{}, fmt.Errorf("latest snapshot: %w", err)
	}

	out := ports.Snapshot{RunID: m.RunID, UpdatedAt: m.UpdatedAt}
	if err := json.Unmarshal(m.Status, &out.Status); err != nil {
		return ports.Snapshot{}, fmt.Errorf("decode snapshot status: %w", err)
	}
	if err := json.Unmarshal(m.Rows, &out.Rows); err != nil {
		return ports.Snapshot{}, fmt.Errorf("decode snapshot rows: %w", err)
	}
	return out, nil
}
