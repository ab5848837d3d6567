// Package server exposes the planning pipeline over a small JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ar0000n/learning-planner/planner"
)

// runTimeout bounds a full two-stage pipeline run per request.
const runTimeout = 120 * time.Second

type Server struct {
	orc   *planner.Orchestrator
	store *planStore
}

type planStore struct {
	mu      sync.Mutex
	records map[string]*planner.RunRecord
}

func newStore() *planStore {
	return &planStore{records: make(map[string]*planner.RunRecord)}
}

func (s *planStore) set(id string, rec *planner.RunRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[id] = rec
}

func (s *planStore) get(id string) (*planner.RunRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id]
	return rec, ok
}

func New(orc *planner.Orchestrator) (*Server, error) {
	if orc == nil {
		return nil, errors.New("orchestrator required")
	}
	return &Server{orc: orc, store: newStore()}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/plans", s.handlePlanCreate)
	mux.HandleFunc("/api/plans/", s.handlePlanByID)
	return logMiddleware(mux)
}

// --- Handlers ---

type planCreateReq struct {
	Topic       string `json:"topic"`
	Familiarity int    `json:"familiarity"`
}

type planResp struct {
	PlanID string             `json:"plan_id"`
	Record *planner.RunRecord `json:"record"`
}

func (s *Server) handlePlanCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req planCreateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	profile, err := planner.Resolve(req.Familiarity)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), runTimeout)
	defer cancel()
	rec, err := s.orc.Run(ctx, req.Topic, profile, false)
	if err != nil {
		var verr *planner.ValidationError
		if errors.As(err, &verr) {
			http.Error(w, verr.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	id := uuid.NewString()
	s.store.set(id, rec)
	writeJSON(w, planResp{PlanID: id, Record: rec})
}

func (s *Server) handlePlanByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/plans/")
	if id == "" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	rec, ok := s.store.get(id)
	if !ok {
		http.Error(w, "plan not found", http.StatusNotFound)
		return
	}
	writeJSON(w, planResp{PlanID: id, Record: rec})
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[http] %s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
