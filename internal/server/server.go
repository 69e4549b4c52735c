// Package server provides the HTTP companion interface for the reader:
// a status API, the bookmark list, an MJPEG webcam stream and a WebSocket
// feed of page-turn events.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/JaeMinBird/inconvenientpdfreader/internal/gesture"
	"github.com/JaeMinBird/inconvenientpdfreader/internal/store"
)

// Snapshot is the reader state reported by /api/status and the event feed.
type Snapshot struct {
	Path      string         `json:"path"`
	Page      int            `json:"page"`
	PageCount int            `json:"page_count"`
	Enabled   bool           `json:"enabled"`
	Gesture   gesture.Status `json:"gesture"`
}

// Provider is implemented by the app and queried by the HTTP handlers. The
// app owns the camera and the document, so the server never touches either
// directly.
type Provider interface {
	Snapshot() Snapshot
	// LatestFrame returns the most recent annotated webcam frame as JPEG
	// bytes, or nil before the first frame.
	LatestFrame() []byte
}

// Config holds the server configuration.
type Config struct {
	Provider Provider
	Store    *store.Store
}

// Server represents the HTTP server for the reader.
type Server struct {
	config Config
	mux    *http.ServeMux
	hub    *Hub
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		hub:    NewHub(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// Hub returns the event hub so the app can publish page-turn events.
func (s *Server) Hub() *Hub { return s.hub }

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.Provider != nil {
		s.mux.HandleFunc("/api/status", s.handleStatus)
		s.mux.Handle("/api/stream", NewStreamHandler(s.config.Provider))
	}

	if s.config.Store != nil {
		s.mux.HandleFunc("/api/bookmarks", s.handleBookmarks)
	}

	s.mux.Handle("/api/events", s.hub)
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(s.start).String(),
	}
	writeJSON(w, response)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, s.config.Provider.Snapshot())
}

func (s *Server) handleBookmarks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	bookmarks, err := s.config.Store.Bookmarks().List()
	if err != nil {
		http.Error(w, "Failed to list bookmarks", http.StatusInternalServerError)
		return
	}
	writeJSON(w, bookmarks)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
