package main

import (
	"fmt"
	"net"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/floor-quiz/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

// serveEnv holds environment overrides for the SSH server.
// Flags given on the command line win over the environment.
type serveEnv struct {
	Address     string        `env:"FLOORQUIZ_SSH_ADDR"`
	HostKey     string        `env:"FLOORQUIZ_HOST_KEY"`
	DBPath      string        `env:"FLOORQUIZ_DB"`
	IdleTimeout time.Duration `env:"FLOORQUIZ_IDLE_TIMEOUT"`
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the mode picker.
Scores are stored per-server (all users share the same leaderboard).
Remote sessions have no sound.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.floorquiz/host_key

Examples:
  floorquiz serve                           # Listen on :23234 with auto-generated key
  floorquiz serve --ssh :2222               # Listen on port 2222
  floorquiz serve --host-key ./my_host_key  # Use specific host key
  floorquiz serve --db ./scores.db          # Use specific database

Environment (used when the matching flag is not given):
  FLOORQUIZ_SSH_ADDR, FLOORQUIZ_HOST_KEY, FLOORQUIZ_DB,
  FLOORQUIZ_IDLE_TIMEOUT (a duration such as 45m)

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	var overrides serveEnv
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	applyServeEnv(&cfg, overrides, cmd.Flags().Changed)
	cfg.TickRate = flagFPS
	cfg.Logger = logger.WithPrefix("floorquiz-ssh")

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	logger.Info("connect with ssh", "command", fmt.Sprintf("ssh localhost -p %s", port(cfg.Address)))

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// applyServeEnv copies set environment values into cfg unless the flag was changed.
func applyServeEnv(cfg *tui.SSHServerConfig, e serveEnv, changed func(name string) bool) {
	if e.Address != "" && !changed("ssh") {
		cfg.Address = e.Address
	}
	if e.HostKey != "" && !changed("host-key") {
		cfg.HostKeyPath = e.HostKey
	}
	if e.DBPath != "" && !changed("db") {
		cfg.DBPath = e.DBPath
	}
	if e.IdleTimeout > 0 && !changed("idle-timeout") {
		cfg.IdleTimeout = e.IdleTimeout
	}
}

// port returns the port part of a host:port address.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil {
		return p
	}
	return addr
}
