// Package http provides the HTTP server infrastructure.
// Clean Architecture: Framework/driver layer - outermost circle. Transport,
// session history and presentation live here, not in the core pipeline.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/rs/cors"

	"github.com/elvin-babanli/personabot-go/internal/adapters/weather"
	"github.com/elvin-babanli/personabot-go/internal/domain/entities"
	"github.com/elvin-babanli/personabot-go/internal/domain/ports"
)

// historyWindow is how many stored turns are replayed into the pipeline
// when the client relies on a server-side session.
const historyWindow = 20

// Answerer is the single operation the core exposes to transport.
type Answerer interface {
	Answer(ctx context.Context, text string, history []entities.ChatMessage) (entities.Reply, error)
}

// Server is the HTTP front for the chat pipeline and the weather glue.
type Server struct {
	answerer Answerer
	history  ports.HistoryStore
	weather  ports.WeatherService
	logger   *log.Logger
	addr     string
	origins  []string
}

// NewServer creates the HTTP server. weather may be nil when no API key is
// configured; the endpoint then reports unavailability.
func NewServer(answerer Answerer, history ports.HistoryStore, weatherSvc ports.WeatherService, logger *log.Logger, addr string, origins []string) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		answerer: answerer,
		history:  history,
		weather:  weatherSvc,
		logger:   logger,
		addr:     addr,
		origins:  origins,
	}
}

// Handler builds the routed, CORS-wrapped handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.handleRoot)
	r.Post("/chat", s.handleChat)
	r.Get("/api/health", s.handleHealth)
	r.Get("/api/weather", s.handleWeather)

	c := cors.New(cors.Options{
		AllowedOrigins:   s.origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return c.Handler(s.logRequests(r))
}

// Start runs the HTTP server until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // generative calls can be slow
	}

	s.logger.Info("server starting", "addr", s.addr)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

type chatRequest struct {
	Message   string                 `json:"message"`
	History   []entities.ChatMessage `json:"history,omitempty"`
	SessionID string                 `json:"session_id,omitempty"`
}

type chatResponse struct {
	Reply     string            `json:"reply"`
	Matched   bool              `json:"matched"`
	Lang      entities.Language `json:"lang"`
	SessionID string            `json:"session_id,omitempty"`
}

// handleChat answers one query. A terminal pipeline failure becomes a 502
// error body; it never crashes the handler loop.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Message == "" {
		s.writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	// Explicit history in the request wins; otherwise replay the stored
	// session, creating a session id when the client sent none.
	history := req.History
	sessionID := req.SessionID
	if history == nil && s.history != nil {
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		stored, err := s.history.Recent(r.Context(), sessionID, historyWindow)
		if err != nil {
			s.logger.Warn("reading session history", "error", err)
		} else {
			history = stored
		}
	}

	reply, err := s.answerer.Answer(r.Context(), req.Message, history)
	if err != nil {
		s.logger.Error("answer failed", "error", err, "lang", reply.Lang)
		s.writeError(w, http.StatusBadGateway, "the assistant is unavailable right now")
		return
	}

	if req.History == nil && s.history != nil && sessionID != "" {
		if err := s.history.Append(r.Context(), sessionID,
			entities.ChatMessage{Role: "user", Content: req.Message},
			entities.ChatMessage{Role: "assistant", Content: reply.Text},
		); err != nil {
			s.logger.Warn("storing session history", "error", err)
		}
	}

	s.writeJSON(w, http.StatusOK, chatResponse{
		Reply:     reply.Text,
		Matched:   reply.Matched,
		Lang:      reply.Lang,
		SessionID: sessionID,
	})
}

// handleWeather serves the aggregated city report.
func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		s.writeError(w, http.StatusBadRequest, "city is required")
		return
	}
	if s.weather == nil {
		s.writeError(w, http.StatusServiceUnavailable, "weather service is not configured")
		return
	}

	report, err := s.weather.Report(r.Context(), city)
	if err != nil {
		if errors.Is(err, weather.ErrCityNotFound) {
			s.writeError(w, http.StatusServiceUnavailable, "City not found.")
			return
		}
		s.logger.Warn("weather fetch failed", "city", city, "error", err)
		s.writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"name": "Elvin Babanlı — Chatbot API",
		"ok":   true,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("encoding response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
