// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// createResources creates and returns all MCP resource definitions with their handlers:
//   - info://version: server version, tools, and platform information
//   - config://template: example configuration file
//   - docs://wrapper-formats: byte layout of each launcher format
//
// The version resource reports serverVersion, the version the server
// announces to clients.
func createResources(serverVersion string) []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource(
				"info://version",
				"Version Information",
				mcp.WithResourceDescription("Server version, available tools, and supported platforms"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleVersionResource(serverVersion),
		},
		{
			Resource: mcp.NewResource(
				"config://template",
				"Configuration Template",
				mcp.WithResourceDescription("Example configuration file with every key and its default"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleConfigResource,
		},
		{
			Resource: mcp.NewResource(
				"docs://wrapper-formats",
				"Launcher Formats",
				mcp.WithResourceDescription("Byte layout of POSIX and Windows launchers"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: handleWrapperFormatsResource,
		},
	}
}
