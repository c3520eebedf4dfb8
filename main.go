// main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/addozhang/nexus-mcp-server/internal/config"
	"github.com/addozhang/nexus-mcp-server/internal/server"
	"github.com/addozhang/nexus-mcp-server/internal/utils"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		transport string
		host      string
		port      int
	)

	cmd := &cobra.Command{
		Use:          "nexus-mcp-server",
		Short:        "MCP server exposing Nexus Repository Manager search as callable tools",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			appConfig, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			// Flags override the environment when set.
			if cmd.Flags().Changed("transport") {
				appConfig.Transport = transport
			}
			if cmd.Flags().Changed("host") {
				appConfig.Host = host
			}
			if cmd.Flags().Changed("port") {
				appConfig.Port = port
			}

			if err := utils.Init(appConfig.LogLevel); err != nil {
				return fmt.Errorf("initialize logging: %w", err)
			}
			defer utils.Sync()

			return run(appConfig)
		},
	}

	cmd.Flags().StringVar(&transport, "transport", config.TransportStdio, "MCP transport (stdio or http)")
	cmd.Flags().StringVar(&host, "host", "127.0.0.1", "bind address for the http transport")
	cmd.Flags().IntVar(&port, "port", 8000, "bind port for the http transport")

	return cmd
}

func run(appConfig *config.Config) error {
	handler := server.NewHandler(nil)
	mcp := server.NewMCPServer(handler)

	switch appConfig.Transport {
	case config.TransportStdio:
		utils.Logger.Info("Starting Nexus MCP Server", zap.String("transport", appConfig.Transport))
		return mcpserver.ServeStdio(mcp)
	case config.TransportHTTP:
		router := server.NewRouter(server.NewStreamableHTTPHandler(mcp))
		return startServer(router, appConfig)
	default:
		return fmt.Errorf("unsupported transport: %s", appConfig.Transport)
	}
}

// startServer binds the HTTP server and handles graceful shutdown signals.
func startServer(router http.Handler, appConfig *config.Config) error {
	httpServer := &http.Server{
		Addr:         appConfig.Addr(),
		Handler:      router,
		ReadTimeout:  config.DefaultReadTimeout,
		WriteTimeout: config.DefaultWriteTimeout,
		IdleTimeout:  config.DefaultIdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		utils.Logger.Info("Shutdown signal received", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			utils.Logger.Error("Server shutdown error", zap.Error(err))
		}
	}()

	utils.Logger.Info("Starting Nexus MCP Server",
		zap.String("transport", config.TransportHTTP),
		zap.String("addr", appConfig.Addr()))

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}

	utils.Logger.Info("Server stopped")
	return nil
}
