// Command nanoalign-server provides a REST API for nanoalign operations.
//
// Usage:
//
//	nanoalign-server [options]
//
// Options:
//
//	-config   TOML config file
//	-port     Port to listen on (default: 8080)
//	-host     Host to bind to (default: localhost)
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/nano-align/nanoalign-go/api/handlers"
	"github.com/nano-align/nanoalign-go/api/middleware"
	"github.com/nano-align/nanoalign-go/internal/config"
	"github.com/nano-align/nanoalign-go/pkg/nanoalign"
)

func main() {
	configPath := flag.String("config", "", "TOML config file")
	port := flag.Int("port", 8080, "Port to listen on")
	host := flag.String("host", "localhost", "Host to bind to")
	flag.Parse()

	fileConf, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatalf("Could not load config: %v\n", err)
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	flagConf := config.Default()
	flagConf.Server.Host = *host
	flagConf.Server.Port = *port
	conf := flagConf.FlagMerge(fileConf, func(name string) bool { return set[name] })
	if err := conf.Validate(); err != nil {
		log.Fatalf("Invalid config: %v\n", err)
	}

	router, err := newRouter(conf)
	if err != nil {
		log.Fatalf("Could not build API: %v\n", err)
	}

	addr := conf.Server.Addr()
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Could not gracefully shutdown: %v\n", err)
		}
		close(done)
	}()

	log.Printf("nanoalign v%s API server starting on http://%s\n", nanoalign.Version(), addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", addr, err)
	}

	<-done
	log.Println("Server stopped")
}

func newRouter(conf *config.Config) (http.Handler, error) {
	api, err := handlers.New(conf)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api", api.Routes)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(nanoalign.Info()))
	})

	return r, nil
}
