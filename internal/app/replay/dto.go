package replay

import "github.com/stealthstack/survivesimgame/internal/domain/survival"

type Request struct {
	RunID        string
	Limit        int
	OccurredFrom int64
	OccurredTo   int64
}

type Vitals struct {
	Tick   int64   `json:"tick"`
	Day    int     `json:"day"`
	Minute int     `json:"minute"`
	Food   float64 `json:"food"`
	Energy float64 `json:"energy"`
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Action string  `json:"action"`
}

type Response struct {
	RunID   string                 `json:"run_id"`
	Events  []survival.DomainEvent `json:"events"`
	Latest  Vitals                 `json:"latest"`
	Counted map[string]int         `json:"counted"`
}
