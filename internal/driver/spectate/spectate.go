// Package spectate is an opt-in websocket endpoint that streams finished
// battles' final grids to connected spectators while a comparative or
// competition run is in flight. It is a text-frame transport of the same
// immutable snapshot engine.GameResult already exposes — not networked
// *play* (spectators cannot control a tank) and not a GUI, so it sits
// outside the non-goal it might otherwise look like it violates. Grounded
// on the gorilla/websocket echo-server shape (upgrade, loop, WriteMessage).
package spectate

import (
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub fans out one text frame per finished battle to every connected
// spectator. Create one with NewHub: the zero value has no connection map,
// so ServeHTTP on it panics.
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]bool)}
}

// ServeHTTP upgrades the request to a websocket and registers the
// connection as a spectator until it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("spectate: upgrade error:", err)
		return
	}
	h.mu.Lock()
	h.conns[conn] = true
	h.mu.Unlock()

	go h.drain(conn)
}

// drain discards anything a spectator sends (a pure broadcast feed) and
// deregisters the connection once it closes.
func (h *Hub) drain(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.mu.Lock()
			delete(h.conns, conn)
			h.mu.Unlock()
			conn.Close()
			return
		}
	}
}

// Broadcast pushes one finished battle's final grid to every connected
// spectator. A write failure just drops that one spectator; it never
// affects the run itself.
func (h *Hub) Broadcast(label string, finalGrid []string) {
	frame := []byte(label + "\n" + strings.Join(finalGrid, "\n"))

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			log.Println("spectate: write error:", err)
			delete(h.conns, conn)
			conn.Close()
		}
	}
}
