package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gregm711/agent-domain-service-mcp/internal/config"
	"github.com/gregm711/agent-domain-service-mcp/internal/container"
)

var (
	serveConfigPath string
	serveHTTPAddr   string
	serveVerbose    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server on stdio",
	Long:  "Start the MCP server. Requests are read from stdin and responses written to stdout; all logging goes to stderr. Pass --http to additionally expose the same JSON-RPC surface over HTTP POST.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Config file path (default ~/.domainmcp/config.json)")
	serveCmd.Flags().StringVar(&serveHTTPAddr, "http", "", "Also listen for JSON-RPC over HTTP on this address (e.g. :8080)")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Verbose logging")
}

func runServe(_ *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if serveVerbose {
		level = slog.LevelDebug
	}
	// stdout carries the protocol stream, so logs must go to stderr.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfgPath := serveConfigPath
	if cfgPath == "" {
		cfgPath = config.ConfigPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	c, err := container.New(cfg, version)
	if err != nil {
		return err
	}
	srv := c.Server()

	// Graceful shutdown context.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	httpAddr := serveHTTPAddr
	if httpAddr == "" {
		httpAddr = cfg.Server.HTTPAddr
	}
	if httpAddr != "" {
		httpSrv := &http.Server{
			Addr:              httpAddr,
			Handler:           srv.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		g.Go(func() error {
			slog.Info("http transport listening", "addr", httpAddr)
			if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return httpSrv.Shutdown(shutdownCtx)
		})
	}

	g.Go(func() error {
		// Client closing stdin ends the session; take the HTTP listener
		// down with it.
		defer stop()
		return srv.ServeStdio(gctx, os.Stdin, os.Stdout)
	})

	slog.Info("mcp server started", "name", cfg.Server.Name, "version", version, "tools", len(c.ToolRegistry().Names()))

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	slog.Info("shutdown complete")
	return nil
}
