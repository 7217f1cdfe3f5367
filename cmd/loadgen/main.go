package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/TemirB/shop-dashboard/internal/config"
	"github.com/TemirB/shop-dashboard/internal/kafka"
)

type startRequest struct {
	Rate     int    `json:"rate"`
	Duration string `json:"duration"`
}

func main() {
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if !cfg.KafkaEnabled() {
		logger.Fatal("KAFKA_BROKERS is required")
	}

	products := splitIDs(os.Getenv("LOADGEN_PRODUCTS"))
	users := splitIDs(os.Getenv("LOADGEN_USERS"))
	if len(products) == 0 {
		logger.Fatal("LOADGEN_PRODUCTS must list at least one product id")
	}
	if len(users) == 0 {
		users = []string{"loadgen"}
	}

	writer := kafka.NewWriter(cfg.Kafka)
	gen := NewGenerator(writer, newOrderFactory(products, users), logger)
	defer gen.Close()

	r := chi.NewRouter()
	r.Post("/start", func(w http.ResponseWriter, r *http.Request) {
		var req startRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.Rate <= 0 {
			req.Rate = 10
		}
		duration, err := time.ParseDuration(req.Duration)
		if err != nil {
			http.Error(w, "Invalid duration format: "+err.Error(), http.StatusBadRequest)
			return
		}

		if !gen.Start(req.Rate, duration) {
			http.Error(w, "already running", http.StatusConflict)
			return
		}
		writeJSON(w, map[string]any{
			"status":   "started",
			"rate":     req.Rate,
			"duration": duration.String(),
		})
	})
	r.Post("/stop", func(w http.ResponseWriter, r *http.Request) {
		gen.Stop()
		writeJSON(w, map[string]any{
			"status":     "stopped",
			"total_sent": gen.Stats().TotalSent,
		})
	})
	r.Get("/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, gen.Stats())
	})

	addr := ":8082"
	if port := os.Getenv("LOADGEN_PORT"); port != "" {
		addr = ":" + port
	}
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("Load generator started",
		zap.String("addr", addr),
		zap.String("topic", cfg.Kafka.Topic),
		zap.Int("products", len(products)),
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Load generator stopped", zap.Error(err))
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func splitIDs(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
