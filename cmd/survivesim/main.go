package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/sirupsen/logrus"

	"github.com/stealthstack/survivesimgame/db/migrations"
	"github.com/stealthstack/survivesimgame/internal/adapter/archive"
	httpadapter "github.com/stealthstack/survivesimgame/internal/adapter/http"
	metricsinmem "github.com/stealthstack/survivesimgame/internal/adapter/metrics/inmemory"
	"github.com/stealthstack/survivesimgame/internal/adapter/observer"
	gormrepo "github.com/stealthstack/survivesimgame/internal/adapter/repo/gorm"
	"github.com/stealthstack/survivesimgame/internal/adapter/repo/memory"
	sqliterepo "github.com/stealthstack/survivesimgame/internal/adapter/repo/sqlite"
	"github.com/stealthstack/survivesimgame/internal/adapter/terminal"
	"github.com/stealthstack/survivesimgame/internal/adapter/world/procedural"
	"github.com/stealthstack/survivesimgame/internal/app/ports"
	"github.com/stealthstack/survivesimgame/internal/app/replay"
	"github.com/stealthstack/survivesimgame/internal/app/sim"
	"github.com/stealthstack/survivesimgame/internal/app/status"
	"github.com/stealthstack/survivesimgame/internal/config"
	"github.com/stealthstack/survivesimgame/internal/domain/survival"
	"github.com/stealthstack/survivesimgame/internal/domain/world"
	"github.com/stealthstack/survivesimgame/internal/logger"
)

func main() {
	cfg, err := config.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "survivesim: %v\n", err)
		os.Exit(2)
	}
	log, err := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		fmt.Fprintf(os.Stderr, "survivesim: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, os.Stdout); err != nil {
		log.WithError(err).Error("survivesim stopped")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *logrus.Logger, out io.Writer) error {
	journal, err := buildRepos(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer journal.close()
	kpi := metricsinmem.NewRecorder()

	engine, err := buildEngine(ctx, cfg, log, journal, kpi)
	if err != nil {
		return err
	}

	if cfg.HTTPAddr != "" {
		h := httpadapter.Handler{
			StatusUC: status.UseCase{Snapshots: journal.snapshots, Runs: journal.runs},
			ReplayUC: replay.UseCase{Events: journal.events},
			KPI:      kpi,
		}
		s := server.Default(server.WithHostPorts(cfg.HTTPAddr))
		h.RegisterRoutes(s)
		go func() {
			if err := s.Run(); err != nil {
				log.WithError(err).Error("status api stopped")
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = s.Shutdown(shutdownCtx)
		}()
		log.WithField("addr", cfg.HTTPAddr).Info("status api listening")
	}

	var renderers sim.Renderers
	if cfg.Render {
		renderers = append(renderers, terminal.NewRenderer(out))
	}
	if cfg.ObserverAddr != "" {
		hub := observer.NewHub(log)
		mux := http.NewServeMux()
		mux.Handle("/ws", hub.Handler())
		srv := &http.Server{Addr: cfg.ObserverAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.WithError(err).Error("observer feed stopped")
			}
		}()
		defer func() {
			hub.Close()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		renderers = append(renderers, hub)
		log.WithField("addr", cfg.ObserverAddr).Info("observer feed listening")
	}

	runner := sim.Runner{
		Engine:   engine,
		Delay:    cfg.TickDelay,
		MaxTicks: cfg.MaxTicks,
		Log:      log,
	}
	if len(renderers) > 0 {
		runner.Renderer = renderers
	}

	final, err := runner.Run(ctx)
	if errors.Is(err, context.Canceled) {
		log.WithFields(logrus.Fields{"tick": final.Tick, "day": final.Day}).Info("interrupted")
		return nil
	}
	return err
}

type repos struct {
	tx        ports.TxManager
	runs      ports.RunRepository
	events    ports.EventRepository
	snapshots ports.SnapshotRepository
	closers   []func() error
}

func (r repos) close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		_ = r.closers[i]()
	}
}

// buildRepos picks the journal backend: postgres for a DSN, sqlite for a
// file path, memory otherwise. An archive dir tees events to zstd files.
func buildRepos(ctx context.Context, cfg config.Config, log logrus.FieldLogger) (repos, error) {
	var r repos
	switch {
	case cfg.DBDSN != "":
		db, err := gormrepo.OpenPostgres(cfg.DBDSN)
		if err != nil {
			return repos{}, err
		}
		if cfg.MigrationsDir != "" {
			err = gormrepo.ApplyMigrationsDir(ctx, db, cfg.MigrationsDir)
		} else {
			err = gormrepo.ApplyMigrations(ctx, db, migrations.FS)
		}
		if err != nil {
			return repos{}, err
		}
		r = repos{
			tx:        gormrepo.NewTxManager(db),
			runs:      gormrepo.NewRunRepo(db),
			events:    gormrepo.NewEventRepo(db),
			snapshots: gormrepo.NewSnapshotRepo(db),
		}
		if sqlDB, err := db.DB(); err == nil {
			r.closers = append(r.closers, sqlDB.Close)
		}
		log.Info("journal: postgres")
	case cfg.SQLitePath != "":
		db, err := sqliterepo.Open(cfg.SQLitePath)
		if err != nil {
			return repos{}, err
		}
		r = repos{
			tx:        sqliterepo.NewTxManager(db),
			runs:      sqliterepo.NewRunRepo(db),
			events:    sqliterepo.NewEventRepo(db),
			snapshots: sqliterepo.NewSnapshotRepo(db),
			closers:   []func() error{db.Close},
		}
		log.WithField("path", cfg.SQLitePath).Info("journal: sqlite")
	default:
		store := memory.NewStore()
		r = repos{
			tx:        memory.NewTxManager(store),
			runs:      memory.NewRunRepo(store),
			events:    memory.NewEventRepo(store),
			snapshots: memory.NewSnapshotRepo(store),
		}
	}

	if cfg.ArchiveDir != "" {
		w := archive.NewWriter(cfg.ArchiveDir)
		r.events = archive.EventRepo{Next: r.events, Archive: w}
		r.closers = append(r.closers, w.Close)
		log.WithField("dir", cfg.ArchiveDir).Info("journal archive enabled")
	}
	return r, nil
}

func buildEngine(ctx context.Context, cfg config.Config, log logrus.FieldLogger, r repos, metrics ports.TickMetrics) (*sim.Engine, error) {
	weather, err := cfg.WeatherTable()
	if err != nil {
		return nil, err
	}
	var terrain ports.WorldProvider = procedural.NewProvider(procedural.DefaultConfig())
	grid, err := terrain.Generate(ctx, cfg.Seed, cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("generate world: %w", err)
	}
	survivor := newSurvivor(cfg, grid)

	now := time.Now()
	engine := &sim.Engine{
		RunID:     fmt.Sprintf("run-%d-%s", cfg.Seed, now.UTC().Format("20060102T150405")),
		Seed:      cfg.Seed,
		Grid:      grid,
		Survivor:  survivor,
		Clock:     survival.NewClock(cfg.TickMinutes, weather),
		Rand:      survival.NewRand(cfg.Seed),
		TxManager: r.tx,
		Runs:      r.runs,
		Events:    r.events,
		Snapshots: r.snapshots,
		Metrics:   metrics,
		Log:       log,
	}
	return engine, nil
}

// newSurvivor places the survivor at the configured start, pulled in off
// the border, and optionally pitches the starter tent there.
func newSurvivor(cfg config.Config, grid *world.Grid) *survival.Survivor {
	start := world.ClampInterior(grid, world.Point{X: cfg.StartX, Y: cfg.StartY})
	s := survival.NewSurvivor(start)
	s.TimeOfDay = cfg.StartMinute
	s.Period = world.PeriodAt(cfg.StartMinute)
	s.PrevPeriod = s.Period
	if cfg.StartWithTent {
		survival.PitchStarterTent(s, grid)
	}
	return s
}
