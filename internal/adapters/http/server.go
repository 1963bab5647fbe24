package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aretw0/inertia/internal/logging"
	"github.com/aretw0/inertia/internal/presentation/graph"
	"github.com/aretw0/inertia/pkg/domain"
	"github.com/aretw0/inertia/pkg/scenario"
	"github.com/aretw0/inertia/pkg/session"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CharacterStatus is one entry of GET /characters.
type CharacterStatus struct {
	ID       string          `json:"id"`
	Active   domain.SourceID `json:"active"`
	Blending bool            `json:"blending"`
	Elapsed  float64         `json:"elapsed,omitempty"`
	Frames   int             `json:"frames"`
}

// PoseResponse is the body of GET /characters/{id}/pose.
type PoseResponse struct {
	ID     string                `json:"id"`
	Frames int                   `json:"frames"`
	Bones  []scenario.BoneSample `json:"bones"`
}

// SelectRequest is the body of POST /characters/{id}/select.
type SelectRequest struct {
	Source    domain.SourceID `json:"source"`
	BlendTime *float64        `json:"blend_time,omitempty"`
}

// Server exposes the characters of a session manager over HTTP.
type Server struct {
	Sessions *session.Manager
	Bones    *domain.BoneMapping
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

// NewHandler creates the HTTP handler. A nil gatherer serves the default Prometheus registry.
func NewHandler(s *Server) http.Handler {
	if s.Logger == nil {
		s.Logger = logging.NewNop()
	}
	if s.Gatherer == nil {
		s.Gatherer = prometheus.DefaultGatherer
	}

	r := chi.NewRouter()
	r.Get("/health", s.Health)
	r.Get("/characters", s.ListCharacters)
	r.Route("/characters/{id}", func(r chi.Router) {
		r.Get("/pose", s.GetPose)
		r.Post("/select", s.Select)
		r.Get("/debug", s.GetDebug)
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))

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

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListCharacters handles GET /characters.
func (s *Server) ListCharacters(w http.ResponseWriter, r *http.Request) {
	out := make([]CharacterStatus, 0)
	for _, id := range s.Sessions.List() {
		err := s.Sessions.WithLock(r.Context(), id, func(_ context.Context, c *session.Character) error {
			out = append(out, status(c))
			return nil
		})
		if errors.Is(err, domain.ErrCharacterNotFound) {
			continue
		}
		if err != nil {
			s.fail(w, err)
			return
		}
	}
	s.writeJSON(w, http.StatusOK, out)
}

// GetPose handles GET /characters/{id}/pose.
func (s *Server) GetPose(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var resp PoseResponse
	err := s.Sessions.WithLock(r.Context(), id, func(_ context.Context, c *session.Character) error {
		resp = PoseResponse{ID: c.ID, Frames: c.Frames, Bones: scenario.SamplePose(c.LastPose, s.Bones)}
		return nil
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// Select handles POST /characters/{id}/select.
func (s *Server) Select(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("Select: invalid request body", "err", err)
		return
	}
	if !body.Source.Valid() {
		http.Error(w, fmt.Sprintf("source must be a or b, got %q", body.Source), http.StatusBadRequest)
		return
	}
	if body.BlendTime != nil && *body.BlendTime <= 0 {
		http.Error(w, "blend_time must be positive", http.StatusBadRequest)
		return
	}

	var out CharacterStatus
	err := s.Sessions.WithLock(r.Context(), id, func(_ context.Context, c *session.Character) error {
		c.Node.SetSourceASelected(body.Source == domain.SourceA)
		if body.BlendTime != nil {
			c.Node.SetBlendTime(*body.BlendTime)
		}
		out = status(c)
		return nil
	})
	if err != nil {
		s.fail(w, err)
		return
	}

	s.Logger.Info("selection requested", "character", id, "source", body.Source)
	s.writeJSON(w, http.StatusAccepted, out)
}

// GetDebug handles GET /characters/{id}/debug. ?format=json returns the raw items,
// anything else a Mermaid flowchart.
func (s *Server) GetDebug(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var (
		items  []domain.DebugItem
		active domain.SourceID
	)
	err := s.Sessions.WithLock(r.Context(), id, func(_ context.Context, c *session.Character) error {
		var debug domain.DebugData
		c.Node.GatherDebugData(&debug)
		items = debug.Items()
		active = c.Node.Active()
		return nil
	})
	if err != nil {
		s.fail(w, err)
		return
	}

	if r.URL.Query().Get("format") == "json" {
		s.writeJSON(w, http.StatusOK, items)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(graph.GenerateMermaid(items, graph.ActiveOverlay(items, active))))
}

func status(c *session.Character) CharacterStatus {
	st := CharacterStatus{ID: c.ID, Active: c.Node.Active(), Frames: c.Frames}
	if tr := c.Node.Transition(); tr != nil {
		st.Blending = true
		st.Elapsed = tr.Elapsed
	}
	return st
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrCharacterNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
	s.Logger.Error("request failed", "err", err)
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "err", err)
	}
}
