package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/finsurf/internal/platform/tui"
	"github.com/vovakirdan/finsurf/internal/platform/web"
)

var (
	flagSSHAddr       string
	flagHostKey       string
	flagIdleTimeout   int
	flagServeSpectate string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Fin Surf SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the difficulty menu.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  finsurf serve                           # Listen on :23234 with auto-generated key
  finsurf serve --ssh :2222               # Listen on port 2222
  finsurf serve --host-key ./my_host_key  # Use specific host key
  finsurf serve --spectate :8080          # Also stream every game over WebSocket

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	def := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", def.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(def.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeSpectate, "spectate", "", "Serve a spectator WebSocket feed on this address")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(os.Stderr)
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    runtimeConfig().TickRate,
		Surf:        loadSurfConfig(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if flagServeSpectate != "" {
		hub := web.NewHub(logger)
		web.NewServer(flagServeSpectate, hub).Start(ctx)
		cfg.OnTick = hub.Publish
	}

	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		fatal("creating server: %v", err)
	}

	fmt.Printf("Starting Fin Surf SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fatal("server: %v", err)
	}
}
