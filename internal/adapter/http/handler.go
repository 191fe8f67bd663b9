package httpadapter

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/stealthstack/survivesimgame/internal/app/ports"
	"github.com/stealthstack/survivesimgame/internal/app/replay"
	"github.com/stealthstack/survivesimgame/internal/app/status"
)

var ErrInvalidQuery = errors.New("invalid query parameter")

type Handler struct {
	StatusUC status.UseCase
	ReplayUC replay.UseCase
	KPI      kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	survivor := s.Group("/api/survivor")
	survivor.GET("/status", h.status)
	survivor.GET("/replay", h.replay)

	s.GET("/ops/kpi", h.kpi)
	s.GET("/healthz", h.healthz)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	includeMap, err := queryBool(ctx, "map")
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.StatusUC.Execute(c, status.Request{
		RunID:      string(ctx.Query("run_id")),
		IncludeMap: includeMap,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

// replay defaults to the run behind the latest snapshot when no run_id is
// given.
func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	limit, err := queryInt(ctx, "limit")
	if err != nil {
		writeError(ctx, err)
		return
	}
	occurredFrom, err := queryInt(ctx, "occurred_from")
	if err != nil {
		writeError(ctx, err)
		return
	}
	occurredTo, err := queryInt(ctx, "occurred_to")
	if err != nil {
		writeError(ctx, err)
		return
	}

	runID := strings.TrimSpace(string(ctx.Query("run_id")))
	if runID == "" {
		latest, err := h.StatusUC.Execute(c, status.Request{})
		if err != nil {
			writeError(ctx, err)
			return
		}
		runID = latest.RunID
	}

	resp, err := h.ReplayUC.Execute(c, replay.Request{
		RunID:        runID,
		Limit:        int(limit),
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func (h Handler) healthz(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]string{"status": "ok"})
}

func queryInt(ctx *app.RequestContext, key string) (int64, error) {
	raw := strings.TrimSpace(string(ctx.Query(key)))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ErrInvalidQuery
	}
	return v, nil
}

func queryBool(ctx *app.RequestContext, key string) (bool, error) {
	raw := strings.TrimSpace(string(ctx.Query(key)))
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, ErrInvalidQuery
	}
	return v, nil
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ErrInvalidQuery):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_query", err.Error())
	case errors.Is(err, replay.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
