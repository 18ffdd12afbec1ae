package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/letterfall/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagSSHDBPath   string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host letterfall over SSH",
	Long: `Run an SSH server so remote players can play in their own terminal.

Every connection gets an independent game seeded from its connect time.
Finished runs land in one shared database, so the scoreboard doubles as
the server leaderboard. Without --host-key a key is generated under
~/.letterfall/host_key on first start.

Examples:
  letterfall serve
  letterfall serve --ssh :2222 --idle-timeout 10m
  letterfall serve --host-key ./host_key --db ./runs.db

Players connect with: ssh <server> -p 23234`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "Listen address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Host key file (generated if empty)")
	serveCmd.Flags().StringVar(&flagSSHDBPath, "db", "~/.letterfall/runs.db", "Shared runs database")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Disconnect sessions idle this long")
}

func runServe(_ *cobra.Command, _ []string) error {
	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagSSHDBPath,
		IdleTimeout: flagIdleTimeout,
	})
	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}

	fmt.Printf("letterfall SSH server on %s (idle timeout %s), Ctrl+C to stop\n",
		server.Addr(), flagIdleTimeout)
	return server.ListenAndServe()
}
