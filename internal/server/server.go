// Package server exposes the layout archive over HTTP and pushes each
// newly generated floor to connected websocket viewers.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/graywall/dungeonplan/internal/config"
	"github.com/graywall/dungeonplan/internal/dungeon"
	"github.com/graywall/dungeonplan/internal/floorfile"
	"github.com/graywall/dungeonplan/internal/logger"
	"github.com/graywall/dungeonplan/internal/seed"
	"github.com/graywall/dungeonplan/internal/store"
)

// Server is the viewer service: a JSON API over the layout archive, a
// generation endpoint, and a websocket feed of new layouts.
type Server struct {
	cfg          *config.Config
	store        *store.Store
	hub          *viewerHub
	connLimiter  *ConnLimiter
	httpServer   *http.Server
	shutdownOnce sync.Once
	StartTime    time.Time
}

// NewServer creates a viewer service around the given configuration
// and layout archive.
func NewServer(cfg *config.Config, st *store.Store) *Server {
	return &Server{
		cfg:         cfg,
		store:       st,
		hub:         newViewerHub(),
		connLimiter: NewConnLimiter(cfg.Server.Connections),
		StartTime:   time.Now(),
	}
}

// LayoutSummary is the wire form of an archived layout without its
// grid text.
type LayoutSummary struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Seed      int64     `json:"seed"`
	GridSize  int       `json:"grid_size"`
	RoomCount int       `json:"room_count"`
	CreatedAt time.Time `json:"created_at"`
}

// LayoutDetail is a LayoutSummary plus the rendered grid text.
type LayoutDetail struct {
	LayoutSummary
	Grid string `json:"grid"`
}

// GenerateRequest is the body of POST /api/generate. All fields are
// optional: an explicit seed wins over a phrase, and with neither set
// the seed comes from the clock.
type GenerateRequest struct {
	Name   string `json:"name"`
	Seed   int64  `json:"seed"`
	Phrase string `json:"phrase"`
}

func summaryFromRecord(rec *store.LayoutRecord) LayoutSummary {
	return LayoutSummary{
		ID:        rec.ID,
		Name:      rec.Name,
		Seed:      rec.Seed,
		GridSize:  rec.GridSize,
		RoomCount: rec.RoomCount,
		CreatedAt: rec.CreatedAt,
	}
}

func detailFromRecord(rec *store.LayoutRecord) LayoutDetail {
	return LayoutDetail{
		LayoutSummary: summaryFromRecord(rec),
		Grid:          rec.GridText,
	}
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /api/layouts", s.handleListLayouts)
	mux.HandleFunc("GET /api/layouts/{id}", s.handleGetLayout)
	mux.HandleFunc("POST /api/generate", s.handleGenerate)
	mux.HandleFunc("GET /ws", s.handleWebSocket)
	return mux
}

// Start runs the HTTP server until Shutdown is called.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:    s.cfg.Server.ListenAddr,
		Handler: s.Handler(),
	}

	logger.Info("Server listening", "address", s.cfg.Server.ListenAddr)

	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown disconnects all viewers and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		s.hub.CloseAll()
		if s.httpServer != nil {
			err = s.httpServer.Shutdown(ctx)
		}
		logger.Info("Server shutdown complete", "uptime", s.GetUptime().Round(time.Second))
	})
	return err
}

// ViewerCount returns the number of connected websocket viewers.
func (s *Server) ViewerCount() int {
	return s.hub.Count()
}

// GetUptime returns the server uptime as a duration.
func (s *Server) GetUptime() time.Duration {
	return time.Since(s.StartTime)
}

// layoutConfig maps service configuration onto generation parameters.
// Out-of-range values are clamped by the generator, not here.
func (s *Server) layoutConfig() dungeon.Config {
	lc := s.cfg.Layout
	return dungeon.Config{
		GridSize:    lc.GridSize,
		MinRoomSize: lc.MinRoomSize,
		MaxRoomSize: lc.MaxRoomSize,
		MaxRooms:    lc.MaxRooms,
		RetryLimit:  lc.RetryLimit,
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

func (s *Server) handleListLayouts(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	recs, err := s.store.ListLayouts(limit)
	if err != nil {
		logger.Error("Failed to list layouts", "error", err)
		http.Error(w, "archive query failed", http.StatusInternalServerError)
		return
	}

	summaries := make([]LayoutSummary, 0, len(recs))
	for _, rec := range recs {
		summaries = append(summaries, summaryFromRecord(rec))
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid layout id", http.StatusBadRequest)
		return
	}

	rec, err := s.store.GetLayout(id)
	if err != nil {
		if errors.Is(err, store.ErrLayoutNotFound) {
			http.Error(w, "layout not found", http.StatusNotFound)
			return
		}
		logger.Error("Failed to get layout", "id", id, "error", err)
		http.Error(w, "archive query failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, detailFromRecord(rec))
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	gen := dungeon.NewGenerator(s.layoutConfig(), seed.Resolve(req.Seed, req.Phrase))
	layout := gen.Generate()

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = fmt.Sprintf("%s-%d", s.cfg.Server.Name, layout.Seed)
	}

	var doc bytes.Buffer
	if err := floorfile.FromLayout(name, layout).Encode(&doc); err != nil {
		logger.Error("Failed to encode layout document", "name", name, "error", err)
		http.Error(w, "layout encoding failed", http.StatusInternalServerError)
		return
	}

	rec := &store.LayoutRecord{
		Name:      name,
		Seed:      layout.Seed,
		GridSize:  layout.Size(),
		RoomCount: layout.RoomCount(),
		GridText:  layout.Grid.String(),
		Document:  doc.String(),
	}
	if err := s.store.SaveLayout(rec); err != nil {
		if errors.Is(err, store.ErrDuplicateName) {
			http.Error(w, "layout name already exists", http.StatusConflict)
			return
		}
		logger.Error("Failed to save layout", "name", name, "error", err)
		http.Error(w, "archive write failed", http.StatusInternalServerError)
		return
	}

	detail := detailFromRecord(rec)

	payload, err := json.Marshal(detail)
	if err != nil {
		logger.Error("Failed to marshal broadcast payload", "id", rec.ID, "error", err)
	} else {
		s.hub.Broadcast(payload)
	}

	logger.Always("LAYOUT_GENERATED",
		"id", rec.ID,
		"name", rec.Name,
		"seed", rec.Seed,
		"rooms", rec.RoomCount,
		"viewers", s.hub.Count())

	writeJSON(w, http.StatusCreated, detail)
}

// handleWebSocket upgrades an HTTP connection to a websocket viewer.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	// Get the real client IP (supports X-Forwarded-For from reverse proxies)
	clientIP := getRealIP(r)

	// Check connection limits before upgrading
	if !s.connLimiter.TryAcquire(clientIP) {
		logger.Warning("Viewer connection rejected - limit exceeded",
			"remote_addr", r.RemoteAddr,
			"client_ip", clientIP)
		http.Error(w, "Too many connections. Please try again later.", http.StatusTooManyRequests)
		return
	}

	// Create upgrader with origin check based on server config
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			allowed := s.cfg.Server.WebSocket.IsOriginAllowed(origin, r.Host)
			if !allowed {
				logger.Warning("Viewer connection rejected - origin not allowed",
					"origin", origin,
					"host", r.Host,
					"remote_addr", r.RemoteAddr)
			}
			return allowed
		},
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed", "error", err)
		// Release the connection slot since upgrade failed
		s.connLimiter.Release(clientIP)
		return
	}

	go s.serveViewer(wsConn, clientIP)
}

// serveViewer registers a viewer and drains its inbound frames.
// Reading keeps close and ping handling alive; the payloads are
// discarded because viewers are receive-only.
func (s *Server) serveViewer(wsConn *websocket.Conn, clientIP string) {
	if limit := s.cfg.Server.WebSocket.MaxMessageSize; limit > 0 {
		wsConn.SetReadLimit(limit)
	}

	v := newViewer(wsConn)
	s.hub.Add(v)
	logger.Info("Viewer connected",
		"remote_addr", v.RemoteAddr(),
		"viewers", s.hub.Count())

	defer func() {
		s.hub.Remove(v)
		s.connLimiter.Release(clientIP)
		v.Close()
		logger.Info("Viewer disconnected",
			"remote_addr", v.RemoteAddr(),
			"viewers", s.hub.Count())
	}()

	for {
		if _, _, err := wsConn.ReadMessage(); err != nil {
			return
		}
	}
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// getRealIP extracts the real client IP from an HTTP request.
// It checks X-Forwarded-For header first (for reverse proxy setups),
// then falls back to the direct remote address.
func getRealIP(r *http.Request) string {
	// Check X-Forwarded-For header (set by reverse proxies like nginx)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// X-Forwarded-For can contain multiple IPs: "client, proxy1, proxy2"
		// The first one is the original client
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			clientIP := strings.TrimSpace(ips[0])
			if clientIP != "" {
				return clientIP
			}
		}
	}

	// Check X-Real-IP header (alternative header used by some proxies)
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// Fall back to direct remote address
	return extractIP(r.RemoteAddr)
}
