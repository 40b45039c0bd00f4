package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"replylag/internal/processor"
)

type Server struct {
	router    *chi.Mux
	port      int
	processor *processor.Processor
	maxUpload int64
	logger    *slog.Logger
}

func NewServer(port int, maxUpload int64, proc *processor.Processor, logger *slog.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:    router,
		port:      port,
		processor: proc,
		maxUpload: maxUpload,
		logger:    logger,
	}

	router.Get("/", s.form)
	router.Post("/process", s.process)
	router.Get("/health", s.health)

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("HTTP server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
