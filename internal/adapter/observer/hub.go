package observer

import (
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/stealthstack/survivesimgame/internal/app/ports"
	"github.com/stealthstack/survivesimgame/internal/domain/survival"
)

const (
	MessageTick     = "TICK"
	MessageGameOver = "GAME_OVER"

	sendBuffer   = 16
	writeTimeout = 5 * time.Second
)

type Message struct {
	Type   string          `json:"type"`
	Tick   int64           `json:"tick"`
	Status survival.Status `json:"status"`
	Map    []string        `json:"map,omitempty"`
}

// Hub fans rendered frames out to websocket observers. Slow observers drop
// frames rather than stall the simulation.
type Hub struct {
	Log logrus.FieldLogger

	upgrader websocket.Upgrader
	nextID   atomic.Uint64

	mu   sync.Mutex
	subs map[uint64]chan []byte
}

func NewHub(log logrus.FieldLogger) *Hub {
	return &Hub{
		Log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		subs: map[uint64]chan []byte{},
	}
}

func (h *Hub) Render(frame ports.Frame) error {
	return h.broadcast(MessageTick, frame)
}

func (h *Hub) GameOver(frame ports.Frame) error {
	return h.broadcast(MessageGameOver, frame)
}

func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *Hub) broadcast(kind string, frame ports.Frame) error {
	msg := Message{Type: kind, Tick: frame.Tick}
	if frame.Survivor != nil {
		msg.Status = frame.Survivor.Status(frame.Tick)
	}
	if rows, ok := frame.Grid.(interface{ Rows() []string }); ok {
		msg.Map = rows.Rows()
	}
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- b:
		default:
		}
	}
	return nil
}

func (h *Hub) subscribe() (uint64, chan []byte) {
	id := h.nextID.Add(1)
	ch := make(chan []byte, sendBuffer)
	h.mu.Lock()
	h.subs[id] = ch
	h.mu.Unlock()
	return id, ch
}

func (h *Hub) unsubscribe(id uint64) {
	h.mu.Lock()
	delete(h.subs, id)
	h.mu.Unlock()
}

// Close disconnects every observer.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, ch := range h.subs {
		close(ch)
		delete(h.subs, id)
	}
}

func (h *Hub) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		id, out := h.subscribe()
		defer h.unsubscribe(id)
		if h.Log != nil {
			h.Log.WithField("observer", id).Debug("observer joined")
		}

		// Observers never send anything meaningful; reading only notices
		// the close.
		gone := make(chan struct{})
		go func() {
			defer close(gone)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case <-gone:
				return
			case b, ok := <-out:
				if !ok {
					_ = conn.WriteControl(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseGoingAway, "simulation stopped"),
						time.Now().Add(time.Second))
					return
				}
				_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
				if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
					return
				}
			}
		}
	}
}
