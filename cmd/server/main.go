package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ghosthunt/ghosthunt-server/internal/config"
	"github.com/ghosthunt/ghosthunt-server/internal/handler"
	"github.com/ghosthunt/ghosthunt-server/internal/session"
	"github.com/ghosthunt/ghosthunt-server/internal/store"
	"github.com/ghosthunt/ghosthunt-server/internal/ws"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Headsets connect from arbitrary origins
	},
}

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	tuning, err := config.LoadTuning(cfg.TuningFile)
	if err != nil {
		slog.Error("failed to load tuning", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scores, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to open highscore store", "error", err)
		os.Exit(1)
	}
	defer scores.Close()

	hub := ws.NewHub()
	sm := session.NewManager(tuning.ArenaConfig(), scores)
	router := handler.NewRouter(sm)

	hub.OnMessage = router.HandleMessage
	hub.OnDisconnect = router.HandleDisconnect

	go hub.Run(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", handleHealth)
	mux.HandleFunc("/highscores", func(w http.ResponseWriter, r *http.Request) {
		handleHighscores(scores, w, r)
	})
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		handleWebSocket(hub, w, r)
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		slog.Info("server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
	<-hub.Done()
	sm.StopAll()
}

// openStore uses PostgreSQL when DATABASE_URL is set and memory otherwise.
func openStore(ctx context.Context, cfg *config.Config) (store.HighscoreStore, error) {
	if cfg.DatabaseURL == "" {
		slog.Warn("DATABASE_URL not set, highscores are kept in memory")
		return store.NewMemoryStore(), nil
	}
	s, err := store.NewPostgresStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	slog.Info("connected to postgres")
	return s, nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

const highscoreListSize = 10

func handleHighscores(scores store.HighscoreStore, w http.ResponseWriter, r *http.Request) {
	top, err := scores.Top(r.Context(), highscoreListSize)
	if err != nil {
		slog.Error("failed to list highscores", "error", err)
		http.Error(w, `{"error":"unavailable"}`, http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(top); err != nil {
		slog.Warn("failed to write highscores", "error", err)
	}
}

func handleWebSocket(hub *ws.Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}

	client := ws.NewClient(uuid.New().String(), hub, conn)
	select {
	case hub.Register <- client:
	case <-hub.Done():
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}

func setupLogger(cfg *config.Config) {
	var h slog.Handler
	opts := &slog.HandlerOptions{}

	switch cfg.LogLevel {
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	switch cfg.LogFormat {
	case "json":
		h = slog.NewJSONHandler(os.Stdout, opts)
	default:
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(h))
}
