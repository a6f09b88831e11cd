package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reboundai/backend/internal/config"
	"reboundai/backend/internal/server"
	"reboundai/backend/internal/session"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	var ai server.AIClient
	if cfg.AIUseMock {
		log.Printf("AI_USE_MOCK enabled, upstream model calls are stubbed")
		ai = server.MockAIClient{}
	} else {
		client, err := server.NewOpenAIChatClient(cfg)
		if err != nil {
			log.Fatalf("ai client setup failed: %v", err)
		}
		ai = client
	}

	store := session.NewStore(time.Duration(cfg.SessionTTLMinutes) * time.Minute)
	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	defer cancelSweep()
	store.StartSweeper(sweepCtx, time.Duration(cfg.SessionSweepMinutes)*time.Minute)

	app := server.New(cfg, store, server.NewEchoGenerator(ai, cfg))
	httpServer := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           app.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("rebound api listening on http://localhost:%s", cfg.AppPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
