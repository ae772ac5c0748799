// Package webmonitor implements the thin read-only live-monitor server
// spec.md's out-of-scope browser UI is explicitly not a substitute for: an
// HTTP server broadcasting each tick's Snapshot as JSON over a websocket
// plus a polling /api/status endpoint, grounded on the teacher's
// web_interface.go (WebInterface/simulationLoop/broadcastLoop shape).
package webmonitor

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"golang.org/x/net/websocket"

	"aquasim/simulation"
)

// Server owns the live simulation state, the set of connected websocket
// clients, and the tick/broadcast loops, mirroring the teacher's
// WebInterface struct.
type Server struct {
	mu       sync.RWMutex
	snapshot simulation.Snapshot
	tunables simulation.TunableConfig

	clientsMu sync.RWMutex
	clients   map[*websocket.Conn]bool

	broadcastChan  chan simulation.Snapshot
	stopChan       chan struct{}
	updateInterval time.Duration
}

// NewServer builds a Server seeded with an already-created Snapshot.
func NewServer(snap simulation.Snapshot, tunables simulation.TunableConfig) *Server {
	return &Server{
		snapshot:       snap,
		tunables:       tunables,
		clients:        make(map[*websocket.Conn]bool),
		broadcastChan:  make(chan simulation.Snapshot, 16),
		stopChan:       make(chan struct{}),
		updateInterval: 200 * time.Millisecond,
	}
}

// Run starts the tick loop, the broadcast loop, and blocks serving HTTP on
// addr until the server errors out (mirrors teacher's RunWebInterface).
func (s *Server) Run(addr string) error {
	go s.simulationLoop()
	go s.broadcastLoop()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.Handle("/ws", websocket.Handler(s.handleWebSocket))

	fmt.Printf("aquasim web monitor listening on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, mux)
}

// Stop halts the tick and broadcast loops.
func (s *Server) Stop() {
	close(s.stopChan)
}

func (s *Server) current() simulation.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *Server) simulationLoop() {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.mu.Lock()
			s.snapshot = simulation.Tick(s.snapshot, s.tunables)
			snap := s.snapshot
			s.mu.Unlock()

			select {
			case s.broadcastChan <- snap:
			default:
				// a slow consumer should never back-pressure the tick loop
			}
		case <-s.stopChan:
			return
		}
	}
}

func (s *Server) broadcastLoop() {
	for {
		select {
		case snap := <-s.broadcastChan:
			s.broadcastToClients(snap)
		case <-s.stopChan:
			return
		}
	}
}

func (s *Server) broadcastToClients(snap simulation.Snapshot) {
	s.clientsMu.RLock()
	conns := make([]*websocket.Conn, 0, len(s.clients))
	for c := range s.clients {
		conns = append(conns, c)
	}
	s.clientsMu.RUnlock()

	for _, c := range conns {
		if err := websocket.JSON.Send(c, snap); err != nil {
			s.clientsMu.Lock()
			delete(s.clients, c)
			s.clientsMu.Unlock()
		}
	}
}

func (s *Server) handleWebSocket(ws *websocket.Conn) {
	defer ws.Close()

	s.clientsMu.Lock()
	s.clients[ws] = true
	s.clientsMu.Unlock()
	log.Printf("web monitor client connected, total=%d", len(s.clients))

	if err := websocket.JSON.Send(ws, s.current()); err != nil {
		return
	}

	// Clients are read-only observers; the only reason to keep reading is
	// to detect disconnect (a closed socket errors on Receive).
	for {
		var discard map[string]interface{}
		if err := websocket.JSON.Receive(ws, &discard); err != nil {
			break
		}
	}

	s.clientsMu.Lock()
	delete(s.clients, ws)
	s.clientsMu.Unlock()
	log.Printf("web monitor client disconnected, total=%d", len(s.clients))
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.current()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
