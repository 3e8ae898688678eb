package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/ignite/listmonk-mcp/internal/api"
	"github.com/ignite/listmonk-mcp/internal/config"
	"github.com/ignite/listmonk-mcp/internal/listmonk"
	"github.com/ignite/listmonk-mcp/internal/metrics"
	"github.com/ignite/listmonk-mcp/internal/pkg/logger"
	"github.com/ignite/listmonk-mcp/internal/tools"
)

const serverName = "listmonk-mcp"

var version = "dev"

type flags struct {
	configPath string
	transport  string
	addr       string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:           serverName,
		Short:         "Expose the listmonk API as MCP tools",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd, f)
		},
	}

	root.PersistentFlags().StringVar(&f.configPath, "config", "", "optional YAML config file")
	root.Flags().StringVar(&f.transport, "transport", "", "transport: stdio or http (default from MCP_TRANSPORT, then stdio)")
	root.Flags().StringVar(&f.addr, "addr", "", "listen address for the http transport")
	root.Flags().StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(toolsCmd())
	return root
}

func serve(cmd *cobra.Command, f flags) error {
	cfg, err := config.LoadFromEnv(f.configPath)
	if err != nil {
		logger.Error("failed to load configuration", "error", err.Error())
		return err
	}
	if cmd.Flags().Changed("transport") {
		cfg.Server.Transport = f.transport
	}
	if cmd.Flags().Changed("addr") {
		cfg.Server.Addr = f.addr
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}

	if err := configureLogging(cfg.Logging); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		var cfgErr *config.ConfigurationError
		if errors.As(err, &cfgErr) {
			printGuidance(cfgErr)
		}
		return err
	}

	client := listmonk.NewClient(cfg.Listmonk)
	defer client.Close()

	collector := metrics.NewCollector("listmonk_mcp")
	client.SetMetrics(collector)

	mcpServer := server.NewMCPServer(serverName, version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	handlers := tools.NewHandlers(client, collector)
	handlers.Register(mcpServer)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting listmonk MCP server",
		"version", version,
		"transport", cfg.Server.Transport,
		"base_url", client.BaseURL(),
		"timeout_ms", cfg.Listmonk.TimeoutMs,
		"retry_count", cfg.Listmonk.RetryCount,
		"tools", len(handlers.Definitions()),
	)

	switch cfg.Server.Transport {
	case config.TransportHTTP:
		router := api.NewRouter(mcpServer, client, collector, api.Options{AllowedOrigins: cfg.Server.AllowedOrigins})
		err = serveHTTP(ctx, cfg.Server.Addr, router)
	default:
		err = server.NewStdioServer(mcpServer).Listen(ctx, os.Stdin, os.Stdout)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server stopped with error", "error", err.Error())
		return err
	}
	logger.Info("server stopped")
	return nil
}

func serveHTTP(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http transport listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func configureLogging(cfg config.LoggingConfig) error {
	level, err := logger.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	if cfg.RedactPII != nil {
		logger.SetRedactPII(*cfg.RedactPII)
	}
	return nil
}

func printGuidance(err *config.ConfigurationError) {
	logger.Error("configuration error", "field", err.Field, "reason", err.Reason)
	fmt.Fprintln(os.Stderr, `Please ensure the following environment variables are set:
  LISTMONK_BASE_URL     your listmonk instance URL (e.g. http://localhost:9000)
  LISTMONK_API_KEY      an API user's token
Optional:
  LISTMONK_USERNAME     API user name (default: api)
  LISTMONK_TIMEOUT      request timeout in milliseconds (default: 30000)
  LISTMONK_RETRY_COUNT  retries for failed GET requests (default: 3)
  MCP_TRANSPORT         stdio or http (default: stdio)
  MCP_HTTP_ADDR         listen address for http (default: 127.0.0.1:8080)`)
}

// toolsCmd prints the tool catalog without contacting listmonk.
func toolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Print the tool catalog as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			defs := tools.NewHandlers(nil, nil).Definitions()
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(defs)
		},
	}
}
