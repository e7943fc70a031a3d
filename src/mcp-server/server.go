// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/H0llyW00dzZ/exec-wrapper/src/config"
	"github.com/H0llyW00dzZ/exec-wrapper/src/logger"
	"github.com/mark3labs/mcp-go/server"
)

// EnvDebug names the environment variable that, when set to any non-empty
// value, enables JSON logging of tool calls to stderr.
const EnvDebug = "EXECWRAP_MCP_DEBUG"

// Run starts the [MCP] server on stdin and stdout.
//
// Configuration is loaded from the file named by EXECWRAP_CONFIG_FILE.
// SIGINT and SIGTERM stop the server; the returned error then wraps
// [context.Canceled].
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func Run(version string) error {
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewMCPLogger(os.Stderr, os.Getenv(EnvDebug) == "")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return serve(ctx, cfg, version, log, os.Stdin, os.Stdout)
}

// serve builds the server and runs the stdio transport until in is
// exhausted or ctx is cancelled.
func serve(ctx context.Context, cfg *config.Config, version string, log logger.Logger, in io.Reader, out io.Writer) error {
	s, err := NewServerBuilder().
		WithConfig(cfg).
		WithVersion(version).
		WithLogger(log).
		WithDefaultTools().
		WithDefaultResources().
		WithInstructions().
		Build()
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	stdioServer := server.NewStdioServer(s)

	errChan := make(chan error, 1)
	go func() {
		errChan <- stdioServer.Listen(ctx, in, out)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return fmt.Errorf("server shutdown: %w", ctx.Err())
	}
}
