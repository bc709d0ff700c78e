package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/katalvlaran/igris/analysis"
	"github.com/katalvlaran/igris/core"
	"github.com/katalvlaran/igris/topology"
)

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"}, nil)
}

func (s *Server) profiles(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, r, http.StatusOK, topology.Profiles(), nil)
}

func (s *Server) profile(w http.ResponseWriter, r *http.Request) {
	p, err := topology.ProfileFor(chi.URLParam(r, "name"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, r, http.StatusOK, p, nil)
}

func (s *Server) transformer(w http.ResponseWriter, r *http.Request) {
	g, err := s.buildTransformer()
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	data := topology.Export(g)
	s.respondJSON(w, r, http.StatusOK, data, &Meta{GenerationID: uuid.NewString()})
}

func (s *Server) igris(w http.ResponseWriter, r *http.Request) {
	g, meta, err := s.buildIGRIS(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, r, http.StatusOK, topology.Export(g), meta)
}

func (s *Server) igrisSummary(w http.ResponseWriter, r *http.Request) {
	g, meta, err := s.buildIGRIS(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	sum, err := analysis.Summarize(g)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, r, http.StatusOK, sum, meta)
}

func (s *Server) compare(w http.ResponseWriter, r *http.Request) {
	ig, meta, err := s.buildIGRIS(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	tr, err := s.buildTransformer()
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	cmp, err := analysis.Compare(ig, tr)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, r, http.StatusOK, cmp, meta)
}

func (s *Server) neighborhood(w http.ResponseWriter, r *http.Request) {
	g, meta, err := s.buildIGRIS(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	nb, err := analysis.NeighborhoodOf(g, chi.URLParam(r, "nodeID"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, r, http.StatusOK, nb, meta)
}

// buildIGRIS generates the graph described by the request query and records
// generation metrics.
func (s *Server) buildIGRIS(r *http.Request) (*core.Graph, *Meta, error) {
	p, err := parseGenerateParams(r, s.store.Get().Generator, s.validate)
	if err != nil {
		s.metrics.Generations.WithLabelValues(topology.NameIGRIS, OutcomeInvalid).Inc()
		return nil, nil, err
	}

	start := time.Now()
	g, err := topology.Build(p.Rewiring, p.Hubs, p.options()...)
	s.metrics.GenerationDuration.WithLabelValues(topology.NameIGRIS).Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.Generations.WithLabelValues(topology.NameIGRIS, OutcomeError).Inc()
		return nil, nil, err
	}
	s.metrics.Generations.WithLabelValues(topology.NameIGRIS, OutcomeSuccess).Inc()
	s.metrics.observeGraph(topology.Export(g))

	seed := p.Seed
	return g, &Meta{GenerationID: uuid.NewString(), Seed: &seed}, nil
}

func (s *Server) buildTransformer() (*core.Graph, error) {
	start := time.Now()
	g, err := topology.BuildTransformer()
	s.metrics.GenerationDuration.WithLabelValues(topology.NameTransformer).Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.Generations.WithLabelValues(topology.NameTransformer, OutcomeError).Inc()
		return nil, err
	}
	s.metrics.Generations.WithLabelValues(topology.NameTransformer, OutcomeSuccess).Inc()
	s.metrics.observeGraph(topology.Export(g))
	return g, nil
}
