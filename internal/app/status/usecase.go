package status

import (
	"context"
	"strings"

	"github.com/stealthstack/survivesimgame/internal/app/ports"
)

type UseCase struct {
	Snapshots ports.SnapshotRepository
	Runs      ports.RunRepository
}

// Execute reads the latest snapshot. A run id, when given, must match the
// run that produced it.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	snap, err := u.Snapshots.Latest(ctx)
	if err != nil {
		return Response{}, err
	}
	runID := strings.TrimSpace(req.RunID)
	if runID != "" && runID != snap.RunID {
		return Response{}, ports.ErrNotFound
	}
	run, err := u.Runs.Get(ctx, snap.RunID)
	if err != nil {
		return Response{}, err
	}

	out := Response{
		RunID:     snap.RunID,
		RunStatus: string(run.Status),
		StartedAt: run.StartedAt,
		Survivor:  snap.Status,
		UpdatedAt: snap.UpdatedAt,
	}
	if req.IncludeMap {
		out.Map = snap.Rows
	}
	return out, nil
}
