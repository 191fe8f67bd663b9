package replay

import (
	"context"
	"errors"
	"strings"

	"github.com/stealthstack/survivesimgame/internal/app/ports"
	"github.com/stealthstack/survivesimgame/internal/domain/survival"
)

const MaxLimit = 500

var ErrInvalidRequest = errors.New("invalid replay request")

type UseCase struct {
	Events ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.RunID = strings.TrimSpace(req.RunID)
	if req.RunID == "" || req.Limit < 0 {
		return Response{}, ErrInvalidRequest
	}
	if req.OccurredFrom > 0 && req.OccurredTo > 0 && req.OccurredFrom > req.OccurredTo {
		return Response{}, ErrInvalidRequest
	}
	if req.Limit == 0 || req.Limit > MaxLimit {
		req.Limit = MaxLimit
	}
	events, err := u.Events.ListByRunID(ctx, req.RunID, req.Limit)
	if err != nil {
		return Response{}, err
	}
	events = filterByTimeWindow(events, req.OccurredFrom, req.OccurredTo)
	return Response{
		RunID:   req.RunID,
		Events:  events,
		Latest:  reconstruct(events),
		Counted: countByType(events),
	}, nil
}

func filterByTimeWindow(events []survival.DomainEvent, from, to int64) []survival.DomainEvent {
	if from <= 0 && to <= 0 {
		return events
	}
	out := make([]survival.DomainEvent, 0, len(events))
	for _, evt := range events {
		ts := evt.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, evt)
	}
	return out
}

// reconstruct folds tick_settled payloads in order; the last one wins.
func reconstruct(events []survival.DomainEvent) Vitals {
	v := Vitals{}
	for _, evt := range events {
		after, ok := evt.Payload["state_after"].(map[string]any)
		if !ok {
			continue
		}
		v.Tick = int64(num(evt.Payload["tick"]))
		v.Action, _ = evt.Payload["decision"].(string)
		v.Day = int(num(after["day"]))
		v.Minute = int(num(after["minute"]))
		v.Food = num(after["food"])
		v.Energy = num(after["energy"])
		v.X = int(num(after["x"]))
		v.Y = int(num(after["y"]))
	}
	return v
}

func countByType(events []survival.DomainEvent) map[string]int {
	out := map[string]int{}
	for _, evt := range events {
		out[evt.Type]++
	}
	return out
}

func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
