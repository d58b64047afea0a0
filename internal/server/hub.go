package server

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/graywall/dungeonplan/internal/logger"
)

// viewer is one connected websocket client. Writes are serialized so
// concurrent broadcasts never interleave frames on the same connection.
type viewer struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func newViewer(conn *websocket.Conn) *viewer {
	return &viewer{conn: conn}
}

// Send writes one text message to the viewer.
func (v *viewer) Send(message []byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.conn.WriteMessage(websocket.TextMessage, message)
}

// Close closes the underlying websocket connection.
func (v *viewer) Close() error {
	return v.conn.Close()
}

// RemoteAddr returns the remote address as a string.
func (v *viewer) RemoteAddr() string {
	return v.conn.RemoteAddr().String()
}

// viewerHub tracks connected viewers and fans newly generated layouts
// out to them.
type viewerHub struct {
	mu      sync.RWMutex
	viewers map[*viewer]struct{}
}

func newViewerHub() *viewerHub {
	return &viewerHub{viewers: make(map[*viewer]struct{})}
}

// Add registers a viewer for broadcasts.
func (h *viewerHub) Add(v *viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.viewers[v] = struct{}{}
}

// Remove unregisters a viewer.
func (h *viewerHub) Remove(v *viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.viewers, v)
}

// Count returns the number of connected viewers.
func (h *viewerHub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.viewers)
}

// Broadcast sends one message to every connected viewer. A failed
// write is logged and otherwise ignored; the viewer's read pump sees
// the dead connection and removes it.
func (h *viewerHub) Broadcast(message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for v := range h.viewers {
		if err := v.Send(message); err != nil {
			logger.Warning("Viewer write failed",
				"remote_addr", v.RemoteAddr(),
				"error", err)
		}
	}
}

// CloseAll disconnects every viewer during shutdown.
func (h *viewerHub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for v := range h.viewers {
		v.Close()
	}
	h.viewers = make(map[*viewer]struct{})
}
