// Package server hosts the optimization engine over HTTP for local
// tooling. It owns no scenario state beyond the terrain source, the
// registries, and the obstacle index handed to it at construction.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nine-gs/ScrambleOpt/pkg/clearance"
	"github.com/nine-gs/ScrambleOpt/pkg/cost"
	"github.com/nine-gs/ScrambleOpt/pkg/dem"
	"github.com/nine-gs/ScrambleOpt/pkg/optimize"
	"github.com/nine-gs/ScrambleOpt/pkg/route"
)

// Server is the HTTP host around the engine.
type Server struct {
	src       dem.Source
	costs     *cost.Registry
	solvers   *optimize.Registry
	obstacles *clearance.Index
	port      int
}

// New creates a server bound to a terrain source, registries, and an
// obstacle index. A nil index means no obstacles.
func New(src dem.Source, costs *cost.Registry, solvers *optimize.Registry, obstacles *clearance.Index, port int) *Server {
	if obstacles == nil {
		obstacles = clearance.NewIndex(nil)
	}
	return &Server{
		src:       src,
		costs:     costs,
		solvers:   solvers,
		obstacles: obstacles,
		port:      port,
	}
}

// Router builds the routing table. Split out from Start so tests can drive
// the handlers through httptest.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/api/health", s.handleHealth).Methods("GET")
	r.HandleFunc("/api/models", s.handleModels).Methods("GET")
	r.HandleFunc("/api/cost", s.handleCost).Methods("POST")
	r.HandleFunc("/api/resegment", s.handleResegment).Methods("POST")
	r.HandleFunc("/api/simplify", s.handleSimplify).Methods("POST")
	r.HandleFunc("/api/optimize", s.handleOptimize).Methods("POST")
	r.HandleFunc("/api/clearance", s.handleClearance).Methods("POST")

	return r
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	wd, ht := 0, 0
	if s.src != nil {
		wd, ht = s.src.Bounds()
	}
	log.Printf("ScrambleOpt server starting on http://localhost%s", addr)
	log.Printf("Terrain: %dx%d, obstacles: %d", wd, ht, s.obstacles.Size())

	return http.ListenAndServe(addr, s.Router())
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// buildRoute turns a wire route into an engine path bound to the server's
// terrain. Points without z sample the terrain; a missing or out-of-bounds
// sample fails the whole route.
func (s *Server) buildRoute(wr wireRoute) (*route.Path, error) {
	p := route.New(s.src)
	p.Locked = wr.Locked == nil || *wr.Locked
	for i, pt := range wr.Points {
		if pt.Z != nil {
			p.AddPointZ(pt.X, pt.Y, *pt.Z)
			continue
		}
		if err := p.AddPoint(pt.X, pt.Y); err != nil {
			return nil, fmt.Errorf("route point %d: %w", i, err)
		}
	}
	return p, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
