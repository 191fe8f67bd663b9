package sim

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stealthstack/survivesimgame/internal/app/ports"
	"github.com/stealthstack/survivesimgame/internal/domain/survival"
	"github.com/stealthstack/survivesimgame/internal/domain/world"
)

var (
	ErrRunOver      = errors.New("run is over")
	ErrNotStarted   = errors.New("run not started")
	ErrMissingRunID = errors.New("missing run id")
	ErrMissingWorld = errors.New("missing world grid or survivor")
	ErrAlreadyBegun = errors.New("run already started")
)

type Engine struct {
	RunID     string
	Seed      int64
	Grid      *world.Grid
	Survivor  *survival.Survivor
	Clock     survival.Clock
	Policy    survival.Policy
	Rand      survival.Rand
	TxManager ports.TxManager
	Runs      ports.RunRepository
	Events    ports.EventRepository
	Snapshots ports.SnapshotRepository
	Metrics   ports.TickMetrics
	Log       logrus.FieldLogger
	Now       func() time.Time

	tick    int64
	started bool
	stopped bool
}

type StepResult struct {
	Tick         int64
	Clock        survival.ClockEvents
	Decision     survival.Decision
	Interactions []survival.ActionKind
	Night        survival.NightOutcome
	Events       []survival.DomainEvent
	Status       survival.Status
}

func (e *Engine) Tick() int64 {
	return e.tick
}

func (e *Engine) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e *Engine) logger() logrus.FieldLogger {
	var base logrus.FieldLogger = logrus.StandardLogger()
	if e.Log != nil {
		base = e.Log
	}
	return base.WithField("run_id", e.RunID)
}

// Begin opens the run in the journal and stores the opening snapshot.
func (e *Engine) Begin(ctx context.Context) error {
	if e.started {
		return ErrAlreadyBegun
	}
	if e.RunID == "" {
		return ErrMissingRunID
	}
	if e.Grid == nil || e.Survivor == nil {
		return ErrMissingWorld
	}
	nowAt := e.now()
	run := ports.RunRecord{
		RunID:     e.RunID,
		Seed:      e.Seed,
		Width:     e.Grid.Width(),
		Height:    e.Grid.Height(),
		Status:    ports.RunStatusAlive,
		StartedAt: nowAt,
	}
	started := survival.DomainEvent{
		Type:       EventRunStarted,
		OccurredAt: nowAt,
		Payload: map[string]any{
			"seed":   e.Seed,
			"width":  run.Width,
			"height": run.Height,
			"x":      e.Survivor.Position.X,
			"y":      e.Survivor.Position.Y,
		},
	}
	err := e.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := e.Runs.Create(txCtx, run); err != nil {
			return fmt.Errorf("create run: %w", err)
		}
		if err := e.Events.Append(txCtx, e.RunID, []survival.DomainEvent{started}); err != nil {
			return fmt.Errorf("append events: %w", err)
		}
		return e.saveSnapshot(txCtx, nowAt)
	})
	if err != nil {
		e.logger().WithError(err).Error("failed to open run journal")
		return err
	}
	e.started = true
	e.logger().WithFields(logrus.Fields{
		"seed":   e.Seed,
		"width":  run.Width,
		"height": run.Height,
	}).Info("run started")
	return nil
}

// Stop closes a run whose survivor is still alive, marking it stopped in
// the journal. A dead or already stopped run is left as it is.
func (e *Engine) Stop(ctx context.Context) error {
	if !e.started {
		return ErrNotStarted
	}
	s := e.Survivor
	if !s.Alive || e.stopped {
		return nil
	}
	nowAt := e.now()
	evt := survival.DomainEvent{
		Type:       EventRunStopped,
		OccurredAt: nowAt,
		Payload: map[string]any{
			"tick":   e.tick,
			"day":    s.Day,
			"nights": s.NightsSurvived,
		},
	}
	summary := ports.RunSummary{
		Status:         ports.RunStatusStopped,
		DaysSurvived:   s.Day,
		NightsSurvived: s.NightsSurvived,
		EndedAt:        nowAt,
	}
	err := e.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := e.Events.Append(txCtx, e.RunID, []survival.DomainEvent{evt}); err != nil {
			return fmt.Errorf("append events: %w", err)
		}
		if err := e.Runs.Close(txCtx, e.RunID, summary); err != nil {
			return fmt.Errorf("close run: %w", err)
		}
		return nil
	})
	if err != nil {
		e.logger().WithError(err).Error("failed to close stopped run")
		return err
	}
	e.stopped = true
	e.logger().WithFields(logrus.Fields{
		"tick": e.tick,
		"days": s.Day,
	}).Info("run stopped")
	return nil
}

// Step resolves exactly one tick: clock, decision, tile interaction,
// night upkeep, spoilage. The outcome is journaled in one transaction.
func (e *Engine) Step(ctx context.Context) (StepResult, error) {
	if !e.started {
		return StepResult{}, ErrNotStarted
	}
	s := e.Survivor
	if !s.Alive || e.stopped {
		return StepResult{}, ErrRunOver
	}

	levelBefore := s.Shelter.Level
	e.tick++
	res := StepResult{Tick: e.tick}
	res.Clock = e.Clock.Advance(s, e.Rand)
	res.Decision = e.Policy.Decide(s, e.Grid, e.Rand)
	res.Interactions = e.Policy.Interact(s, e.Grid, e.Rand)
	res.Night = survival.SurviveNight(s)
	survival.SpoilFood(s)
	res.Status = s.Status(e.tick)

	nowAt := e.now()
	res.Events = tickEvents(nowAt, s, res, levelBefore)
	e.record(res, levelBefore)
	e.logStep(res, levelBefore)

	err := e.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := e.Events.Append(txCtx, e.RunID, res.Events); err != nil {
			return fmt.Errorf("append events: %w", err)
		}
		if err := e.saveSnapshot(txCtx, nowAt); err != nil {
			return err
		}
		if s.Alive {
			return nil
		}
		summary := ports.RunSummary{
			DaysSurvived:   s.Day,
			NightsSurvived: s.NightsSurvived,
			DeathCause:     s.DeathCause,
			EndedAt:        nowAt,
		}
		if err := e.Runs.Close(txCtx, e.RunID, summary); err != nil {
			return fmt.Errorf("close run: %w", err)
		}
		return nil
	})
	if err != nil {
		e.logger().WithError(err).WithField("tick", e.tick).Error("failed to journal tick")
		return res, err
	}
	return res, nil
}

func (e *Engine) saveSnapshot(ctx context.Context, at time.Time) error {
	snap := ports.Snapshot{
		RunID:     e.RunID,
		Status:    e.Survivor.Status(e.tick),
		Rows:      e.Grid.Rows(),
		UpdatedAt: at,
	}
	if err := e.Snapshots.Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (e *Engine) record(res StepResult, levelBefore survival.ShelterLevel) {
	if e.Metrics == nil {
		return
	}
	e.Metrics.RecordTick(res.Decision.Kind)
	if res.Clock.DayRolledOver {
		e.Metrics.RecordDayRollover()
	}
	if e.Survivor.Shelter.Level > levelBefore {
		e.Metrics.RecordShelterBuilt(e.Survivor.Shelter.Level)
	}
	if res.Night.Died {
		e.Metrics.RecordDeath(e.Survivor.DeathCause)
	}
}

func (e *Engine) logStep(res StepResult, levelBefore survival.ShelterLevel) {
	log := e.logger()
	s := e.Survivor
	log.WithFields(logrus.Fields{
		"tick":   res.Tick,
		"clock":  res.Status.Clock,
		"action": res.Decision.Kind,
		"label":  s.CurrentAction,
		"food":   res.Status.Food,
		"energy": res.Status.Energy,
	}).Debug("tick settled")

	if res.Clock.DayRolledOver {
		log.WithFields(logrus.Fields{
			"day":     s.Day,
			"season":  s.Season,
			"weather": s.Weather,
			"eaten":   res.Clock.Eaten,
		}).Info("new day")
	}
	if s.Shelter.Level > levelBefore {
		log.WithFields(logrus.Fields{
			"level": s.Shelter.Level,
			"type":  s.Shelter.Level.Name(),
			"x":     s.Position.X,
			"y":     s.Position.Y,
		}).Info("shelter built")
	}
	if res.Night.Died {
		log.WithFields(logrus.Fields{
			"cause":  s.DeathCause,
			"days":   s.Day,
			"nights": s.NightsSurvived,
		}).Warn("survivor died")
	}
}
