package sim

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stealthstack/survivesimgame/internal/app/ports"
	"github.com/stealthstack/survivesimgame/internal/domain/survival"
)

// Runner drives an engine until the survivor dies, MaxTicks is reached or
// ctx is cancelled. The last two close the run as stopped.
// Delay only paces the loop; a zero delay steps back to back.
type Runner struct {
	Engine   *Engine
	Delay    time.Duration
	MaxTicks int64
	Renderer ports.Renderer
	Log      logrus.FieldLogger
}

func (r Runner) Run(ctx context.Context) (survival.Status, error) {
	e := r.Engine
	if err := e.Begin(ctx); err != nil {
		return survival.Status{}, err
	}
	if err := r.render(); err != nil {
		return e.Survivor.Status(e.Tick()), err
	}

	var tick <-chan time.Time
	if r.Delay > 0 {
		ticker := time.NewTicker(r.Delay)
		defer ticker.Stop()
		tick = ticker.C
	}

	for e.Survivor.Alive {
		if r.MaxTicks > 0 && e.Tick() >= r.MaxTicks {
			break
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return r.halt(ctx, ctx.Err())
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return r.halt(ctx, err)
		}

		if _, err := e.Step(ctx); err != nil {
			return e.Survivor.Status(e.Tick()), err
		}
		if err := r.render(); err != nil {
			return e.Survivor.Status(e.Tick()), err
		}
	}

	final := e.Survivor.Status(e.Tick())
	if final.Alive {
		if err := e.Stop(ctx); err != nil {
			return final, err
		}
	}
	if !final.Alive && r.Renderer != nil {
		if err := r.Renderer.GameOver(r.frame()); err != nil {
			return final, err
		}
	}
	if r.Log != nil {
		r.Log.WithFields(logrus.Fields{
			"ticks":  final.Tick,
			"days":   final.Day,
			"nights": final.NightsSurvived,
			"alive":  final.Alive,
		}).Info("run finished")
	}
	return final, nil
}

// halt closes the run after cancellation. ctx is already done, so the
// journal write runs without its cancellation.
func (r Runner) halt(ctx context.Context, cause error) (survival.Status, error) {
	status := r.Engine.Survivor.Status(r.Engine.Tick())
	if err := r.Engine.Stop(context.WithoutCancel(ctx)); err != nil {
		return status, errors.Join(cause, err)
	}
	return status, cause
}

func (r Runner) frame() ports.Frame {
	return ports.Frame{Tick: r.Engine.Tick(), Grid: r.Engine.Grid, Survivor: r.Engine.Survivor}
}

func (r Runner) render() error {
	if r.Renderer == nil {
		return nil
	}
	return r.Renderer.Render(r.frame())
}

// Renderers fans each frame out to several renderers. Every renderer sees
// the frame even when an earlier one fails.
type Renderers []ports.Renderer

func (rs Renderers) Render(frame ports.Frame) error {
	var errs []error
	for _, r := range rs {
		errs = append(errs, r.Render(frame))
	}
	return errors.Join(errs...)
}

func (rs Renderers) GameOver(frame ports.Frame) error {
	var errs []error
	for _, r := range rs {
		errs = append(errs, r.GameOver(frame))
	}
	return errors.Join(errs...)
}
