package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/internal/presentation/graph"
	"github.com/aretw0/automata/pkg/adapters/args"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HeaderVerdict carries the verdict of the word highlighted on a graph.
const HeaderVerdict = "X-Automata-Verdict"

// Server exposes an engine over a JSON API.
type Server struct {
	Engine   ports.Engine
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

// Option configures the handler.
type Option func(*Server)

// WithGatherer serves the gathered metrics on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Gatherer = g
	}
}

// WithLogger sets the logger used for request failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// AutomatonResponse describes a compiled automaton.
type AutomatonResponse struct {
	Name          string            `json:"name"`
	Deterministic bool              `json:"deterministic"`
	Definition    domain.Definition `json:"definition"`
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine ports.Engine, opts ...Option) http.Handler {
	server := &Server{Engine: engine, Logger: slog.Default()}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Route("/automata", func(r chi.Router) {
		r.Get("/", server.ListAutomata)
		r.Get("/{name}", server.GetAutomaton)
		r.Get("/{name}/dfa", server.GetDFA)
		r.Get("/{name}/graph", server.GetGraph)
		r.Post("/{name}/evaluate", server.Evaluate)
	})
	r.Get("/reports/{id}", server.GetReport)
	if server.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(server.Gatherer, promhttp.HandlerOpts{}))
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"name":    "automata",
		"version": strings.TrimSpace(automata.Version),
	})
}

// ListAutomata handles the GET /automata request.
func (s *Server) ListAutomata(w http.ResponseWriter, r *http.Request) {
	names, err := s.Engine.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"automata": names})
}

// GetAutomaton handles the GET /automata/{name} request.
func (s *Server) GetAutomaton(w http.ResponseWriter, r *http.Request) {
	s.writeAutomaton(w, r, false)
}

// GetDFA handles the GET /automata/{name}/dfa request.
func (s *Server) GetDFA(w http.ResponseWriter, r *http.Request) {
	s.writeAutomaton(w, r, true)
}

func (s *Server) writeAutomaton(w http.ResponseWriter, r *http.Request, deterministic bool) {
	name := chi.URLParam(r, "name")
	m, err := s.Engine.Compile(r.Context(), name, deterministic)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, AutomatonResponse{
		Name:          name,
		Deterministic: m.IsDeterministic(),
		Definition:    m.Definition(),
	})
}

// GetGraph handles the GET /automata/{name}/graph request.
// The optional dfa query parameter renders the determinized automaton.
// The optional word query parameter highlights the run of that word; its verdict
// is returned in the X-Automata-Verdict header.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	dfa, _ := strconv.ParseBool(query.Get("dfa"))
	m, err := s.Engine.Compile(r.Context(), chi.URLParam(r, "name"), dfa)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var overlay *graph.Overlay
	if query.Has("word") {
		var res domain.Result
		overlay, res = graph.Highlight(r.Context(), m, query.Get("word"))
		w.Header().Set(HeaderVerdict, string(res.Verdict))
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(graph.GenerateMermaid(m, overlay)))
}

// Evaluate handles the POST /automata/{name}/evaluate request.
func (s *Server) Evaluate(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("Evaluate: Invalid request body", "error", err)
		return
	}

	var req args.Evaluate
	if err := args.Decode(raw, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := s.Engine.Run(r.Context(), chi.URLParam(r, "name"), req.Words, req.Deterministic)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

// GetReport handles the GET /reports/{id} request.
func (s *Server) GetReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.Engine.Report(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

// StatusFor maps an engine error to an HTTP status.
func StatusFor(err error) int {
	var derr *domain.Error
	switch {
	case errors.Is(err, domain.ErrAutomatonNotFound), errors.Is(err, domain.ErrReportNotFound):
		return http.StatusNotFound
	case errors.As(err, &derr):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		s.Logger.Error("request failed", "error", err)
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}
