package status

import (
	"time"

	"github.com/stealthstack/survivesimgame/internal/domain/survival"
)

type Request struct {
	RunID      string
	IncludeMap bool
}

type Response struct {
	RunID     string          `json:"run_id"`
	RunStatus string          `json:"run_status"`
	StartedAt time.Time       `json:"started_at"`
	Survivor  survival.Status `json:"survivor"`
	Map       []string        `json:"map,omitempty"`
	UpdatedAt time.Time       `json:"updated_at"`
}
