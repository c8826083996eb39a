package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nine-gs/ScrambleOpt/pkg/cost"
	"github.com/nine-gs/ScrambleOpt/pkg/optimize"
	"github.com/nine-gs/ScrambleOpt/pkg/perturb"
	"github.com/nine-gs/ScrambleOpt/pkg/route"
)

// Wire types. The engine's types never cross the wire directly; these pin
// the JSON shape of requests and responses.

type wirePoint struct {
	X float64  `json:"x"`
	Y float64  `json:"y"`
	Z *float64 `json:"z,omitempty"`
}

type wireRoute struct {
	Locked *bool       `json:"locked,omitempty"`
	Points []wirePoint `json:"points"`
}

type outPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type outRoute struct {
	Locked bool       `json:"locked"`
	Points []outPoint `json:"points"`
}

type routeSummary struct {
	PointCount int     `json:"point_count"`
	Distance   float64 `json:"distance"`
	Gain       float64 `json:"gain"`
	Loss       float64 `json:"loss"`
}

type costRequest struct {
	Route     wireRoute `json:"route"`
	Model     string    `json:"model"`
	TimeHours float64   `json:"time_hours"`
}

type costResponse struct {
	Model     string       `json:"model"`
	TimeHours float64      `json:"time_hours"`
	Cost      float64      `json:"cost"`
	Summary   routeSummary `json:"summary"`
}

type resegmentRequest struct {
	Route  wireRoute `json:"route"`
	Target int       `json:"target"`
}

type resegmentResponse struct {
	Route   outRoute     `json:"route"`
	Changed bool         `json:"changed"`
	Summary routeSummary `json:"summary"`
}

type simplifyRequest struct {
	Route     wireRoute `json:"route"`
	Tolerance float64   `json:"tolerance"`
}

type simplifyResponse struct {
	Route   outRoute     `json:"route"`
	Removed int          `json:"removed"`
	Summary routeSummary `json:"summary"`
}

type wireStrategy struct {
	Name         string `json:"name"`
	Samples      int    `json:"samples"`
	RefineRounds int    `json:"refine_rounds"`
}

type optimizeRequest struct {
	Route      wireRoute      `json:"route"`
	Model      string         `json:"model"`
	TimeHours  float64        `json:"time_hours"`
	Solver     string         `json:"solver"`
	Iterations int            `json:"iterations"`
	Seed       int64          `json:"seed"`
	Strategies []wireStrategy `json:"strategies"`
}

type optimizeResponse struct {
	Route       outRoute     `json:"route"`
	Model       string       `json:"model"`
	InitialCost float64      `json:"initial_cost"`
	BestCost    float64      `json:"best_cost"`
	Iterations  int          `json:"iterations"`
	Summary     routeSummary `json:"summary"`
}

type clearanceRequest struct {
	Route  wireRoute `json:"route"`
	Buffer float64   `json:"buffer"`
}

type wireViolation struct {
	PointIndex int    `json:"point_index"`
	Obstacle   string `json:"obstacle"`
}

type clearanceResponse struct {
	Violations []wireViolation `json:"violations"`
	Count      int             `json:"count"`
}

// applyDefaults mirrors the scenario-file defaults so sparse requests
// behave the same over HTTP as on the command line.
func (req *optimizeRequest) applyDefaults() {
	if req.Model == "" {
		req.Model = cost.WalkingName
	}
	if req.TimeHours <= 0 {
		req.TimeHours = 1
	}
	if req.Solver == "" {
		req.Solver = optimize.LocalSearchName
	}
	if req.Iterations <= 0 {
		req.Iterations = optimize.DefaultMaxIterations
	}
	if len(req.Strategies) == 0 {
		req.Strategies = []wireStrategy{{Name: perturb.RelocateName}}
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	resp := map[string]any{"status": "ok"}
	if s.src != nil {
		wd, ht := s.src.Bounds()
		resp["terrain"] = map[string]int{"width": wd, "height": ht}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleModels(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"cost_models": s.costs.Names(),
		"solvers":     s.solvers.Names(),
		"strategies":  perturb.Names(),
	})
}

func (s *Server) handleCost(w http.ResponseWriter, r *http.Request) {
	var req costRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Model == "" {
		req.Model = cost.WalkingName
	}
	if req.TimeHours <= 0 {
		req.TimeHours = 1
	}

	p, err := s.buildRoute(req.Route)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	fn, ok := s.costs.Get(req.Model)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown cost model %q", req.Model))
		return
	}

	value, err := fn(p, req.TimeHours)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("evaluating route: %v", err))
		return
	}
	writeJSON(w, http.StatusOK, costResponse{
		Model:     req.Model,
		TimeHours: req.TimeHours,
		Cost:      value,
		Summary:   summarize(p),
	})
}

func (s *Server) handleResegment(w http.ResponseWriter, r *http.Request) {
	var req resegmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Target <= 0 {
		writeError(w, http.StatusBadRequest, "target must be greater than 0")
		return
	}

	p, err := s.buildRoute(req.Route)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	out := route.Resegment(p, req.Target)
	changed := out != nil
	if out == nil {
		out = p
	}
	writeJSON(w, http.StatusOK, resegmentResponse{
		Route:   wireFromPath(out),
		Changed: changed,
		Summary: summarize(out),
	})
}

func (s *Server) handleSimplify(w http.ResponseWriter, r *http.Request) {
	var req simplifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Tolerance <= 0 {
		req.Tolerance = route.DefaultSimplifyTolerance
	}

	p, err := s.buildRoute(req.Route)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	out := route.Simplify(p, req.Tolerance)
	writeJSON(w, http.StatusOK, simplifyResponse{
		Route:   wireFromPath(out),
		Removed: p.Len() - out.Len(),
		Summary: summarize(out),
	})
}

func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var req optimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.applyDefaults()

	p, err := s.buildRoute(req.Route)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	fn, ok := s.costs.Get(req.Model)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown cost model %q", req.Model))
		return
	}
	factory, ok := s.solvers.Get(req.Solver)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown solver %q", req.Solver))
		return
	}

	strategies := make([]perturb.Strategy, 0, len(req.Strategies))
	for _, st := range req.Strategies {
		strat, err := perturb.New(st.Name, req.Seed)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if rel, ok := strat.(*perturb.Relocate); ok {
			if st.Samples > 0 {
				rel.Samples = st.Samples
			}
			if st.RefineRounds > 0 {
				rel.RefineRounds = st.RefineRounds
			}
		}
		strategies = append(strategies, strat)
	}

	solver := factory(req.Seed)
	if ls, ok := solver.(*optimize.LocalSearch); ok {
		ls.MaxIterations = req.Iterations
	}

	eval := fn.Bind(req.TimeHours)
	initial, err := eval(p)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("evaluating route: %v", err))
		return
	}

	// The request context cancels the search when the client goes away.
	best, bestCost, err := solver.Optimize(r.Context(), p, eval, strategies, nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, optimizeResponse{
		Route:       wireFromPath(best),
		Model:       req.Model,
		InitialCost: initial,
		BestCost:    bestCost,
		Iterations:  req.Iterations,
		Summary:     summarize(best),
	})
}

func (s *Server) handleClearance(w http.ResponseWriter, r *http.Request) {
	var req clearanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := s.buildRoute(req.Route)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	violations := s.obstacles.Check(p, req.Buffer)
	wire := make([]wireViolation, 0, len(violations))
	for _, v := range violations {
		wire = append(wire, wireViolation{PointIndex: v.PointIndex, Obstacle: v.Obstacle})
	}
	writeJSON(w, http.StatusOK, clearanceResponse{Violations: wire, Count: len(wire)})
}

func wireFromPath(p *route.Path) outRoute {
	pts := make([]outPoint, 0, p.Len())
	for _, pt := range p.Points {
		pts = append(pts, outPoint{X: pt.X, Y: pt.Y, Z: pt.Z})
	}
	return outRoute{Locked: p.Locked, Points: pts}
}

func summarize(p *route.Path) routeSummary {
	gain, loss := p.ElevationGainLoss()
	return routeSummary{
		PointCount: p.Len(),
		Distance:   p.TotalDistance(),
		Gain:       gain,
		Loss:       loss,
	}
}
