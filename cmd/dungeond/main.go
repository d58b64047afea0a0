// dungeond serves the layout archive over HTTP and streams newly
// generated floors to websocket viewers.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/graywall/dungeonplan/internal/config"
	"github.com/graywall/dungeonplan/internal/logger"
	"github.com/graywall/dungeonplan/internal/server"
	"github.com/graywall/dungeonplan/internal/store"
)

func main() {
	// Parse command-line flags
	configFile := flag.String("config", "data/dungeonplan.yaml", "Path to configuration file")
	listenAddr := flag.String("listen", "", "Listen address (overrides config)")
	dbFile := flag.String("db", "", "Path to SQLite layout archive (overrides config, forces the sqlite driver)")
	flag.Parse()

	// Initialize logger first (before any logging)
	logConfig, _ := logger.LoadConfig(*configFile)
	logger.Initialize(logConfig)

	logger.Info("Starting dungeonplan server")

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		logger.Warning("Failed to load config, using defaults", "path", *configFile, "error", err)
	}
	if *listenAddr != "" {
		cfg.Server.ListenAddr = *listenAddr
	}
	if *dbFile != "" {
		cfg.Store.Driver = "sqlite"
		cfg.Store.Path = *dbFile
	}

	// Open the layout archive
	st, err := store.OpenWithConfig(storeConfig(cfg))
	if err != nil {
		log.Fatalf("Failed to open layout archive: %v", err)
	}
	defer st.Close()

	if cfg.Store.Driver == "postgres" {
		logger.Info("Layout archive initialized", "driver", "postgres", "host", cfg.Store.Host, "database", cfg.Store.Name)
	} else {
		logger.Info("Layout archive initialized", "driver", "sqlite", "path", cfg.Store.Path)
	}

	if len(cfg.Server.WebSocket.AllowedOrigins) == 0 {
		logger.Info("WebSocket CORS policy", "mode", "same-origin")
	} else if len(cfg.Server.WebSocket.AllowedOrigins) == 1 && cfg.Server.WebSocket.AllowedOrigins[0] == "*" {
		logger.Warning("WebSocket CORS allows all origins (not recommended for production)")
	} else {
		logger.Info("WebSocket CORS policy", "allowed_origins", cfg.Server.WebSocket.AllowedOrigins)
	}

	srv := server.NewServer(cfg, st)

	// Start HTTP server in a goroutine
	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	logger.Info("Server running", "addr", cfg.Server.ListenAddr)
	logger.Info("Press Ctrl+C to shutdown")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}

// storeConfig maps the file configuration onto archive settings.
func storeConfig(cfg *config.Config) store.Config {
	sc := store.DefaultConfig(cfg.Store.Path)
	sc.Driver = cfg.Store.Driver
	sc.Postgres = store.DefaultPostgresConfig()
	sc.Postgres.Host = cfg.Store.Host
	sc.Postgres.Port = cfg.Store.Port
	sc.Postgres.User = cfg.Store.User
	sc.Postgres.Password = cfg.Store.Password
	sc.Postgres.Database = cfg.Store.Name
	sc.Postgres.SSLMode = cfg.Store.SSLMode
	return sc
}
