package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type statsProvider interface {
	GetPlayerStats(ctx context.Context, playerID string) (*entity.PlayerStats, error)
}

type Server struct {
	logger *slog.Logger
	stats  statsProvider
}

func New(logger *slog.Logger, stats statsProvider) *Server {
	return &Server{
		logger: logger,
		stats:  stats,
	}
}

// Start - starts the HTTP server with the health and stats endpoints.
func (that *Server) Start(port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", that.handlePing)
	mux.HandleFunc("GET /stats/{playerID}", that.handleStats)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleStats")

	playerID := r.PathValue("playerID")

	stats, err := that.stats.GetPlayerStats(r.Context(), playerID)
	if err != nil {
		log.Error("failed to get player stats", "playerID", playerID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(stats); err != nil {
		log.Error("failed to encode stats", "error", err)
	}
}
