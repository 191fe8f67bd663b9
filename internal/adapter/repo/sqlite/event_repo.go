package sqliterepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/stealthstack/survivesimgame/internal/app/ports"
	"github.com/stealthstack/survivesimgame/internal/domain/survival"
)

type EventRepo struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, runID string, events []survival.DomainEvent) error {
	q := getQuerier(ctx, r.db)
	for _, e := range events {
		b, err := json.Marshal(e.Payload)
		if err != nil {
			return fmt.Errorf("encode %s payload: %w", e.Type, err)
		}
		if _, err := q.ExecContext(ctx,
			`INSERT INTO domain_events(run_id, type, occurred_at, payload) VALUES (?, ?, ?, ?)`,
			runID, e.Type, formatTime(e.OccurredAt), string(b)); err != nil {
			return fmt.Errorf("append %s: %w", e.Type, err)
		}
	}
	return nil
}

// ListByRunID returns the newest limit events, oldest first.
func (r EventRepo) ListByRunID(ctx context.Context, runID string, limit int) ([]survival.DomainEvent, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := getQuerier(ctx, r.db).QueryContext(ctx,
		`SELECT type, occurred_at, payload FROM domain_events WHERE run_id = ? ORDER BY id DESC LIMIT ?`,
		runID, limit)
	if err != nil {
		return nil, fmt.Errorf("list events %s: %w", runID, err)
	}
	defer rows.Close()

	var out []survival.DomainEvent
	for rows.Next() {
		var typ, occurredAt, payload string
		if err := rows.Scan(&typ, &occurredAt, &payload); err != nil {
			return nil, err
		}
		evt, err := decodeEvent(typ, occurredAt, payload)
		if err != nil {
			return nil, err
		}
		out = append(out, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ports.ErrNotFound
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func decodeEvent(typ, occurredAt, payload string) (survival.DomainEvent, error) {
	at, err := parseTime(occurredAt)
	if err != nil {
		return survival.DomainEvent{}, fmt.Errorf("event occurred_at: %w", err)
	}
	evt := survival.DomainEvent{Type: typ, OccurredAt: at}
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &evt.Payload); err != nil {
			return survival.DomainEvent{}, fmt.Errorf("decode %s payload: %w", typ, err)
		}
	}
	return evt, nil
}

