package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/lumen/internal/httpapi"
	"github.com/vovakirdan/lumen/internal/levels"
	"github.com/vovakirdan/lumen/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH and/or HTTP servers",
	Long: `Start servers for remote play.

The SSH server gives every connection its own session with the main menu.
The HTTP server exposes puzzle sessions as a JSON API. Both share one run
log, so all players appear in the same best runs.

Without --ssh or --http both servers start on their configured addresses.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.lumen/host_key

Examples:
  lumen serve                        # Both servers on configured addresses
  lumen serve --ssh :2222            # Only SSH, on port 2222
  lumen serve --http :8080           # Only the JSON API
  lumen serve --ssh :2222 --http :8080

Users can connect with:
  ssh localhost -p 23235
  curl -X POST localhost:8087/sessions`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP API address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (overrides config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	sshAddr, httpAddr := flagSSHAddr, flagHTTPAddr
	if sshAddr == "" && httpAddr == "" {
		sshAddr, httpAddr = cfg.SSH.Address, cfg.HTTP.Address
	}
	if sshAddr == "" && httpAddr == "" {
		return errors.New("no server address configured")
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	level := levels.Escape()

	if sshAddr != "" {
		sshCfg := tui.DefaultSSHServerConfig()
		sshCfg.Address = sshAddr
		sshCfg.HostKeyPath = cfg.SSH.HostKey
		if flagHostKey != "" {
			sshCfg.HostKeyPath = flagHostKey
		}
		sshCfg.IdleTimeout = cfg.SSH.IdleTimeoutDuration()
		if flagIdleTimeout > 0 {
			cfg.SSH.IdleTimeout = flagIdleTimeout
			sshCfg.IdleTimeout = cfg.SSH.IdleTimeoutDuration()
		}
		sshCfg.Locale = cfg.Locale
		sshCfg.ShowHelp = cfg.Display.ShowHelp
		sshCfg.Theme = cfg.Display.Theme

		server, err := tui.NewSSHServer(sshCfg, level, store, logger.WithPrefix("lumen-ssh"))
		if err != nil {
			return err
		}
		g.Go(func() error { return server.ListenAndServe(ctx) })
		logger.Info("connect with ssh", "address", sshAddr)
	}

	if httpAddr != "" {
		opts := []httpapi.Option{
			httpapi.WithLogger(logger.WithPrefix("lumen-http")),
			httpapi.WithMaxSessions(cfg.HTTP.MaxSessions),
			httpapi.WithLocale(cfg.Locale),
		}
		if store != nil {
			opts = append(opts, httpapi.WithRunRecorder(store))
		}
		api := httpapi.New(opts...)
		g.Go(func() error { return api.ListenAndServe(ctx, httpAddr) })
	}

	err = g.Wait()
	logger.Info("servers stopped")
	return err
}
