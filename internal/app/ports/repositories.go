package ports

import (
	"context"
	"errors"
	"time"

	"github.com/stealthstack/survivesimgame/internal/domain/survival"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// TxManager runs fn with a context that carries the transaction; the
// repositories pick it up from there.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type RunStatus string

const (
	RunStatusAlive   RunStatus = "alive"
	RunStatusDead    RunStatus = "dead"
	RunStatusStopped RunStatus = "stopped"
)

type RunRecord struct {
	RunID          string
	Seed           int64
	Width          int
	Height         int
	Status         RunStatus
	StartedAt      time.Time
	EndedAt        *time.Time
	DaysSurvived   int
	NightsSurvived int
	DeathCause     survival.DeathCause
}

// RunSummary closes a run. Status is RunStatusDead or RunStatusStopped;
// left empty it means the survivor died.
type RunSummary struct {
	Status         RunStatus
	DaysSurvived   int
	NightsSurvived int
	DeathCause     survival.DeathCause
	EndedAt        time.Time
}

func (s RunSummary) FinalStatus() RunStatus {
	if s.Status == "" {
		return RunStatusDead
	}
	return s.Status
}

type RunRepository interface {
	Create(ctx context.Context, run RunRecord) error
	Get(ctx context.Context, runID string) (RunRecord, error)
	Close(ctx context.Context, runID string, summary RunSummary) error
}

type EventRepository interface {
	Append(ctx context.Context, runID string, events []survival.DomainEvent) error
	ListByRunID(ctx context.Context, runID string, limit int) ([]survival.DomainEvent, error)
}

type Snapshot struct {
	RunID     string
	Status    survival.Status
	Rows      []string
	UpdatedAt time.Time
}

type SnapshotRepository interface {
	Save(ctx context.Context, snap Snapshot) error
	Latest(ctx context.Context) (Snapshot, error)
}
