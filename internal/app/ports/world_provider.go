package ports

import (
	"context"

	"github.com/stealthstack/survivesimgame/internal/domain/world"
)

type WorldProvider interface {
	Generate(ctx context.Context, seed int64, width, height int) (*world.Grid, error)
}
