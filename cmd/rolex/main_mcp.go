package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/rolex/internal/debug"
	"github.com/standardbeagle/rolex/internal/mcp"
)

// mcpCommand serves the engine over MCP on stdio until the client
// disconnects or the process is signalled
func mcpCommand(c *cli.Context) error {
	// stdout carries the protocol; nothing else may write to it
	debug.SetMCPMode(true)
	if debug.IsDebugRequested() {
		// without a log file MCP mode writes no debug output at all
		if _, err := debug.InitDebugLogFile(); err == nil {
			defer debug.CloseDebugLog()
		}
	}

	engine, err := loadEngine(c)
	if err != nil {
		return err
	}

	mcpServer, err := mcp.NewServer(engine)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)
	go func() {
		debug.LogMCP("Starting MCP server with stdio transport...")
		errChan <- mcpServer.Start(ctx)
	}()

	select {
	case err := <-errChan:
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = mcpServer.Shutdown(shutdownCtx)
		if err != nil && ctx.Err() == nil {
			return fmt.Errorf("MCP server error: %w", err)
		}
		return nil
	case sig := <-sigChan:
		debug.LogMCP("Received signal %v, shutting down", sig)
		cancel()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return mcpServer.Shutdown(shutdownCtx)
	}
}
