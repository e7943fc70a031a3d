// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool roles referenced by the instructions template.
const (
	roleBuilder   = "builder"
	roleWriter    = "writer"
	roleSuffixer  = "suffixer"
	roleInspector = "inspector"
)

// targetOptions returns the tool parameters shared by every tool that
// produces a launcher.
func targetOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithArray("args",
			mcp.Required(),
			mcp.Description("Target program followed by the arguments to put in front of the launcher's own arguments. Each element is kept verbatim."),
			mcp.WithStringItems(),
		),
		mcp.WithString("platform",
			mcp.Description("Target platform: 'posix', 'windows', or a GOOS name (default: configured platform, else the host)"),
		),
		mcp.WithString("interpreter",
			mcp.Description("Interpreter recorded in Windows launchers (default: configured interpreter, else python3 or python from PATH)"),
		),
		mcp.WithString("launcher",
			mcp.Description("Path of a native launcher stub to use instead of the embedded one (Windows only)"),
		),
	}
}

// createTools creates and returns all MCP tool definitions with their handlers.
//
// The function defines the following tools:
//   - executable_suffix: Reports the file suffix launchers need on a platform
//   - build_exec_wrapper: Returns the launcher bytes
//   - write_exec_wrapper: Writes the launcher to a file and marks it executable
//   - inspect_exec_wrapper: Describes the launcher layout and argument quoting
func createTools() ([]ToolDefinition, []ToolDefinitionWithConfig) {
	tools := []ToolDefinition{
		{
			Tool: mcp.NewTool("executable_suffix",
				mcp.WithDescription("Get the file name suffix a launcher needs to be runnable: empty on POSIX, '.exe' on Windows"),
				mcp.WithString("platform",
					mcp.Description("Target platform: 'posix', 'windows', or a GOOS name (default: host)"),
				),
			),
			Handler: handleExecutableSuffix,
			Role:    roleSuffixer,
		},
	}

	toolsWithConfig := []ToolDefinitionWithConfig{
		{
			Tool: mcp.NewTool("build_exec_wrapper",
				append([]mcp.ToolOption{
					mcp.WithDescription("Build a launcher that runs a program with fixed leading arguments. POSIX launchers are returned as script text, Windows launchers base64-encoded"),
				}, targetOptions()...)...,
			),
			Handler: handleBuildExecWrapper,
			Role:    roleBuilder,
		},
		{
			Tool: mcp.NewTool("write_exec_wrapper",
				append([]mcp.ToolOption{
					mcp.WithDescription("Write a launcher that runs a program with fixed leading arguments to a file, adding the executable bits on POSIX hosts"),
					mcp.WithString("path",
						mcp.Required(),
						mcp.Description("Destination file; created or overwritten"),
					),
					mcp.WithBoolean("executable",
						mcp.Description("Add the executable bits after writing (default: configured value, true unless disabled)"),
					),
				}, targetOptions()...)...,
			),
			Handler: handleWriteExecWrapper,
			Role:    roleWriter,
		},
		{
			Tool: mcp.NewTool("inspect_exec_wrapper",
				append([]mcp.ToolOption{
					mcp.WithDescription("Describe the byte layout of a launcher and how each fixed argument is quoted"),
					mcp.WithString("format",
						mcp.Description("Output format: 'markdown' or 'json' (default: markdown)"),
						mcp.DefaultString("markdown"),
					),
				}, targetOptions()...)...,
			),
			Handler: handleInspectExecWrapper,
			Role:    roleInspector,
		},
	}

	return tools, toolsWithConfig
}
