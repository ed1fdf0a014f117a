// path: internal/httpx/ws.go
package httpx

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"quantum_shogi/internal/game"
)

const (
	wsWriteWait  = 10 * time.Second
	wsBufferSize = 16
)

// hub fans serialized game states out to websocket subscribers. A slow
// subscriber drops frames rather than blocking the engine path.
type hub struct {
	mu   sync.Mutex
	subs map[chan game.GameState]struct{}
}

func newHub() *hub {
	return &hub{subs: make(map[chan game.GameState]struct{})}
}

func (h *hub) subscribe() chan game.GameState {
	ch := make(chan game.GameState, wsBufferSize)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *hub) unsubscribe(ch chan game.GameState) {
	h.mu.Lock()
	delete(h.subs, ch)
	h.mu.Unlock()
}

func (h *hub) broadcast(state game.GameState) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- state:
		default:
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  16 * 1024,
	WriteBufferSize: 16 * 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // local front-end
}

// handleWS streams the game state: current state on connect, then one frame
// per successful mutation.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ch := s.hub.subscribe()
	defer s.hub.unsubscribe(ch)

	if err := writeState(conn, s.state()); err != nil {
		return
	}

	// Reader goroutine: we ignore client frames but need reads to observe
	// the close handshake.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case state := <-ch:
			if err := writeState(conn, state); err != nil {
				return
			}
		}
	}
}

func writeState(conn *websocket.Conn, state game.GameState) error {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return conn.WriteJSON(map[string]any{"state": state})
}
