package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fentz26/taskflow/internal/config"
	"github.com/fentz26/taskflow/internal/controlplane"
	"github.com/fentz26/taskflow/internal/remote"
	"github.com/fentz26/taskflow/internal/sorting"
	"github.com/fentz26/taskflow/internal/store"
	"github.com/spf13/cobra"
)

var (
	listenAddr string
	dbPath     string
	backend    string
	remoteURL  string
	noSeed     bool
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Start the taskflow daemon",
	Long:  `Starts the taskflow daemon which serves the task API over HTTP, backed by SQLite or a remote /tareas API.`,
	RunE:  runDaemon,
}

func init() {
	daemonCmd.Flags().StringVar(&listenAddr, "listen", "", "Listen address for the API server (overrides config)")
	daemonCmd.Flags().StringVar(&dbPath, "db", "", "Path to SQLite database (overrides config)")
	daemonCmd.Flags().StringVar(&backend, "backend", "", "Task backend: local or remote (overrides config)")
	daemonCmd.Flags().StringVar(&remoteURL, "remote-url", "", "Base URL of the remote task API (overrides config)")
	daemonCmd.Flags().BoolVar(&noSeed, "no-seed", false, "Do not load sample tasks into an empty database")
}

// applyDaemonFlags copies explicitly set flags over the loaded config.
func applyDaemonFlags(c *config.Config) {
	if listenAddr != "" {
		c.Listen = listenAddr
	}
	if dbPath != "" {
		c.DBPath = dbPath
	}
	if backend != "" {
		c.Backend = backend
	}
	if remoteURL != "" {
		c.RemoteURL = remoteURL
	}
	if noSeed {
		c.Seed = false
	}
}

// openStore builds the task backend selected by the config.
func openStore(ctx context.Context, c *config.Config) (controlplane.TaskStore, error) {
	if c.Backend == config.BackendRemote {
		log.Printf("Using remote task API at %s", c.RemoteURL)
		return remote.New(c.RemoteURL, c.RemoteTimeout), nil
	}

	s, err := store.New(c.DBPath)
	if err != nil {
		return nil, err
	}
	log.Printf("Using SQLite database at %s", c.DBPath)

	if c.Seed {
		n, err := s.Seed(ctx, store.SampleTasks())
		if err != nil {
			s.Close()
			return nil, err
		}
		if n > 0 {
			log.Printf("Seeded %d sample tasks", n)
		}
	}
	return s, nil
}

func runDaemon(cmd *cobra.Command, args []string) error {
	log.Println("Starting taskflow daemon...")

	applyDaemonFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Initialize store
	s, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	strategy, err := sorting.Lookup(cfg.DefaultStrategy)
	if err != nil {
		s.Close()
		return err
	}

	// Create service and server
	service, err := controlplane.NewService(s, strategy)
	if err != nil {
		s.Close()
		return err
	}
	server := controlplane.NewServer(service, cfg.Listen)
	log.Printf("Active sorting strategy: %s", strategy.Name())

	// Set up signal handling for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	// Start server in goroutine
	go func() {
		err := server.Start()
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Wait for shutdown signal or server error
	select {
	case sig := <-sigCh:
		log.Printf("Received signal %v, initiating graceful shutdown...", sig)
	case err := <-serverErr:
		if err != nil {
			log.Printf("Server error: %v", err)
			s.Close()
			return err
		}
	}

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Println("Shutting down HTTP server...")
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Closing task store...")
	if err := s.Close(); err != nil {
		log.Printf("Task store close error: %v", err)
	}

	log.Println("Shutdown complete")
	return nil
}
