package archive

import (
	"context"

	"github.com/stealthstack/survivesimgame/internal/app/ports"
	"github.com/stealthstack/survivesimgame/internal/domain/survival"
)

// EventRepo copies every appended event to the archive once the wrapped
// repository has accepted it. Reads go to the wrapped repository.
type EventRepo struct {
	Next    ports.EventRepository
	Archive *Writer
}

func (r EventRepo) Append(ctx context.Context, runID string, events []survival.DomainEvent) error {
	if err := r.Next.Append(ctx, runID, events); err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}
	return r.Archive.Write(runID, events)
}

func (r EventRepo) ListByRunID(ctx context.Context, runID string, limit int) ([]survival.DomainEvent, error) {
	return r.Next.ListByRunID(ctx, runID, limit)
}
