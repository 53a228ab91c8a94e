package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"agmarknet-scraper/internal/agmarknet"
	"agmarknet-scraper/internal/config"
	"agmarknet-scraper/internal/prices"

	"github.com/gin-gonic/gin"
)

func main() {
	_ = godotenv.Load() // load .env if present; not fatal if missing

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// graceful shutdown coordination
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gin.SetMode(cfg.Mode)

	// build router and handlers
	h := prices.NewHandler(agmarknet.New())
	r := prices.NewRouter(h)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	// start server
	go func() {
		log.Printf("Server started on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server ListenAndServe: %v", err)
		}
	}()

	// wait for interrupt
	<-ctx.Done()
	log.Println("shutdown signal received")

	// stop accepting new requests, allow 15s to finish
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server Shutdown: %v", err)
	}

	log.Println("graceful shutdown complete")
}
