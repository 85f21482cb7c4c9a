package main

import (
	"net/http"
	"os"
	"time"

	"pet-registry/internal/platform/logger"
	"pet-registry/internal/router"
)

// @title Pet Registry API
// @version 0.1
// @description CRUD de owners y pets con updates parciales (PATCH real).
// @BasePath /
func main() {
	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	log := logger.NewFromEnv()

	r := router.NewRouter(router.Options{Logger: log})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
