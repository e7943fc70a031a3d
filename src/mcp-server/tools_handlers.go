// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/H0llyW00dzZ/exec-wrapper/src/config"
	"github.com/H0llyW00dzZ/exec-wrapper/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/exec-wrapper/src/wrapper"
	"github.com/mark3labs/mcp-go/mcp"
)

// requireArgs extracts the "args" parameter as a list of strings.
func requireArgs(request mcp.CallToolRequest) ([]string, error) {
	raw, ok := request.GetArguments()["args"]
	if !ok {
		return nil, fmt.Errorf("required argument %q not found", "args")
	}

	switch v := raw.(type) {
	case []string:
		return v, nil
	case []any:
		args := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("args[%d] is not a string", i)
			}
			args = append(args, s)
		}
		return args, nil
	default:
		return nil, fmt.Errorf("argument %q is not an array of strings", "args")
	}
}

// parsePlatform parses a platform name given to a tool.
func parsePlatform(name string) (wrapper.Platform, error) {
	p := wrapper.ParsePlatform(name)
	if p == wrapper.Unsupported {
		return p, fmt.Errorf("%w: %q", wrapper.ErrUnsupportedPlatform, name)
	}
	return p, nil
}

// targetRequest holds the parsed parameters shared by the launcher tools.
type targetRequest struct {
	args     []string
	platform wrapper.Platform
	opts     []wrapper.Option
}

// parseTarget reads the shared launcher parameters, layering them over the
// configuration defaults.
func parseTarget(request mcp.CallToolRequest, cfg *config.Config) (*targetRequest, error) {
	args, err := requireArgs(request)
	if err != nil {
		return nil, err
	}

	platform, err := cfg.Platform()
	if err != nil {
		return nil, err
	}
	if name := request.GetString("platform", ""); name != "" {
		if platform, err = parsePlatform(name); err != nil {
			return nil, err
		}
	}

	opts := append(cfg.Options(), wrapper.WithPlatform(platform))
	if interpreter := request.GetString("interpreter", ""); interpreter != "" {
		opts = append(opts, wrapper.WithInterpreter(interpreter))
	}
	if launcher := request.GetString("launcher", ""); launcher != "" {
		opts = append(opts, wrapper.WithLauncherFile(launcher))
	}

	return &targetRequest{args: args, platform: platform, opts: opts}, nil
}

// handleExecutableSuffix reports the suffix launchers need on a platform.
func handleExecutableSuffix(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	platform := wrapper.HostPlatform()
	if name := request.GetString("platform", ""); name != "" {
		p, err := parsePlatform(name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		platform = p
	}

	suffix := platform.ExecutableSuffix()
	if suffix == "" {
		return mcp.NewToolResultText(fmt.Sprintf("Launchers for %s need no suffix.", platform)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Launchers for %s need the %q suffix.", platform, suffix)), nil
}

// handleBuildExecWrapper builds a launcher and returns its bytes.
// Script launchers come back as text; binary launchers are base64-encoded
// after a one-line summary.
func handleBuildExecWrapper(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error) {
	target, err := parseTarget(request, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	data, err := wrapper.Build(target.args, target.opts...)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to build exec wrapper: %v", err)), nil
	}

	if target.platform == wrapper.POSIX {
		return mcp.NewToolResultText(string(data)), nil
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	fmt.Fprintf(buf, "%s launcher, %d bytes, base64-encoded (save with the %q suffix):\n",
		target.platform, len(data), target.platform.ExecutableSuffix())
	enc := base64.NewEncoder(base64.StdEncoding, buf)
	if _, err := enc.Write(data); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode exec wrapper: %v", err)), nil
	}
	if err := enc.Close(); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode exec wrapper: %v", err)), nil
	}

	return mcp.NewToolResultText(buf.String()), nil
}

// handleWriteExecWrapper writes a launcher to the requested path.
func handleWriteExecWrapper(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("path parameter required: %v", err)), nil
	}

	target, err := parseTarget(request, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	opts := append(target.opts, wrapper.WithExecBit(request.GetBool("executable", cfg.Defaults.Executable)))

	if err := wrapper.Write(path, target.args, opts...); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to write exec wrapper: %v", err)), nil
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "Wrote %s launcher to %s", target.platform, path)
	if suffix := target.platform.ExecutableSuffix(); suffix != "" && !strings.HasSuffix(strings.ToLower(path), suffix) {
		fmt.Fprintf(&msg, "\nWarning: %s launchers need the %q suffix to be runnable", target.platform, suffix)
	}

	return mcp.NewToolResultText(msg.String()), nil
}

// handleInspectExecWrapper describes the layout of a launcher.
func handleInspectExecWrapper(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error) {
	target, err := parseTarget(request, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	report, err := wrapper.Inspect(target.args, target.opts...)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to inspect exec wrapper: %v", err)), nil
	}

	switch format := request.GetString("format", "markdown"); format {
	case "json":
		data, err := report.JSON()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode report: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	case "markdown", "":
		return mcp.NewToolResultText(report.RenderTable()), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unsupported format %q: use 'markdown' or 'json'", format)), nil
	}
}
