// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/H0llyW00dzZ/exec-wrapper/src/config"
	"github.com/H0llyW00dzZ/exec-wrapper/src/mcp-server/templates"
	"github.com/H0llyW00dzZ/exec-wrapper/src/wrapper"
	"github.com/mark3labs/mcp-go/mcp"
)

// handleConfigResource serves an example configuration file.
func handleConfigResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := config.Template()
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "config://template",
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// handleVersionResource returns a handler serving server metadata: version,
// tools, and the platforms launchers can be built for.
func handleVersionResource(serverVersion string) ResourceHandler {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return versionResource(serverVersion)
	}
}

func versionResource(serverVersion string) ([]mcp.ResourceContents, error) {
	tools, toolsWithConfig := createTools()
	names := make([]string, 0, len(tools)+len(toolsWithConfig))
	for _, tool := range tools {
		names = append(names, tool.Tool.Name)
	}
	for _, tool := range toolsWithConfig {
		names = append(names, tool.Tool.Name)
	}

	host := wrapper.HostPlatform()
	versionInfo := map[string]any{
		"name":    serverName,
		"version": serverVersion,
		"type":    "MCP Server",
		"tools":   names,
		"platforms": []string{
			wrapper.POSIX.String(),
			wrapper.Windows.String(),
		},
		"host": map[string]any{
			"platform":         host.String(),
			"executableSuffix": host.ExecutableSuffix(),
		},
	}

	jsonData, err := json.MarshalIndent(versionInfo, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal version info: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "info://version",
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleWrapperFormatsResource serves the launcher format documentation
// stored in templates/wrapper-formats.md.
func handleWrapperFormatsResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	content, err := templates.MagicEmbed.ReadFile(templates.WrapperFormats)
	if err != nil {
		return nil, fmt.Errorf("failed to read wrapper formats template: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "docs://wrapper-formats",
			MIMEType: "text/markdown",
			Text:     string(content),
		},
	}, nil
}
