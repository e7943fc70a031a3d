// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"

	"github.com/H0llyW00dzZ/exec-wrapper/src/config"
	"github.com/H0llyW00dzZ/exec-wrapper/src/logger"
	"github.com/H0llyW00dzZ/exec-wrapper/src/mcp-server/templates"
	"github.com/H0llyW00dzZ/exec-wrapper/src/version"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// serverName is the implementation name reported to [MCP] clients.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
const serverName = "Exec Wrapper"

// ToolHandler defines the signature for tool handlers that matches [MCP] server expectations.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ToolHandler = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// ToolHandlerWithConfig defines tool handlers that require access to the loaded configuration.
type ToolHandlerWithConfig func(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error)

// ResourceHandler defines the signature for resource handlers.
type ResourceHandler = func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error)

// ToolDefinition holds a tool definition and its handler.
//
// Role names the part the tool plays in the workflow described by the
// server instructions, so the template does not hardcode tool names.
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler ToolHandler
	Role    string
}

// ToolDefinitionWithConfig holds a tool definition that requires configuration access.
type ToolDefinitionWithConfig struct {
	Tool    mcp.Tool
	Handler ToolHandlerWithConfig
	Role    string
}

// ServerDependencies holds all dependencies needed to create the MCP server.
// It is filled in by ServerBuilder and should not be instantiated directly.
type ServerDependencies struct {
	Config          *config.Config
	Embed           templates.EmbedFS
	Version         string
	Logger          logger.Logger
	Tools           []ToolDefinition
	ToolsWithConfig []ToolDefinitionWithConfig
	Resources       []server.ServerResource
	Instructions    bool

	defaultResources bool
}

// ServerBuilder helps construct the [MCP] server with proper dependencies using a fluent interface.
//
// Example:
//
//	s, err := NewServerBuilder().
//	    WithConfig(cfg).
//	    WithVersion(version.Version).
//	    WithDefaultTools().
//	    WithDefaultResources().
//	    WithInstructions().
//	    Build()
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ServerBuilder struct{ deps ServerDependencies }

// NewServerBuilder creates a new server builder with default empty dependencies.
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithConfig sets the configuration handed to tools that need it.
// Build falls back to [config.Default] when none is set.
func (b *ServerBuilder) WithConfig(cfg *config.Config) *ServerBuilder {
	b.deps.Config = cfg
	return b
}

// WithEmbed sets the filesystem templates and documentation are read from.
// Build falls back to [templates.MagicEmbed] when none is set.
func (b *ServerBuilder) WithEmbed(fs templates.EmbedFS) *ServerBuilder {
	b.deps.Embed = fs
	return b
}

// WithVersion sets the server version reported to clients.
// Build falls back to [version.Version] when none is set.
func (b *ServerBuilder) WithVersion(v string) *ServerBuilder {
	b.deps.Version = v
	return b
}

// WithLogger sets the logger that records tool calls.
// Build falls back to a silent [logger.MCPLogger] when none is set.
func (b *ServerBuilder) WithLogger(log logger.Logger) *ServerBuilder {
	b.deps.Logger = log
	return b
}

// WithTools adds tool definitions that don't require configuration access.
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithToolsWithConfig adds tool definitions whose handlers receive the configuration.
func (b *ServerBuilder) WithToolsWithConfig(tools ...ToolDefinitionWithConfig) *ServerBuilder {
	b.deps.ToolsWithConfig = append(b.deps.ToolsWithConfig, tools...)
	return b
}

// WithResources adds resources that clients read by URI.
func (b *ServerBuilder) WithResources(resources ...server.ServerResource) *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, resources...)
	return b
}

// WithDefaultTools adds the launcher tools returned by createTools.
func (b *ServerBuilder) WithDefaultTools() *ServerBuilder {
	tools, toolsWithConfig := createTools()
	b.deps.Tools = append(b.deps.Tools, tools...)
	b.deps.ToolsWithConfig = append(b.deps.ToolsWithConfig, toolsWithConfig...)
	return b
}

// WithDefaultResources adds the resources returned by createResources.
// They are created during Build so info://version reports the version
// given to [ServerBuilder.WithVersion].
func (b *ServerBuilder) WithDefaultResources() *ServerBuilder {
	b.deps.defaultResources = true
	return b
}

// WithInstructions renders the instructions template from the registered
// tools during Build and sends it to clients on initialization.
func (b *ServerBuilder) WithInstructions() *ServerBuilder {
	b.deps.Instructions = true
	return b
}

// Build creates the [MCP] server with all configured dependencies.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	deps := b.deps
	if deps.Config == nil {
		deps.Config = config.Default()
	}
	if deps.Embed == nil {
		deps.Embed = templates.MagicEmbed
	}
	if deps.Logger == nil {
		deps.Logger = logger.NewMCPLogger(nil, true)
	}
	if deps.Version == "" {
		deps.Version = version.Version
	}
	if deps.defaultResources {
		deps.Resources = append(createResources(deps.Version), deps.Resources...)
	}

	opts := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
	}
	if deps.Instructions {
		instructions, err := loadInstructions(deps.Embed, deps.Tools, deps.ToolsWithConfig)
		if err != nil {
			return nil, err
		}
		opts = append(opts, server.WithInstructions(instructions))
	}

	s := server.NewMCPServer(serverName, deps.Version, opts...)

	for _, tool := range deps.Tools {
		s.AddTool(tool.Tool, logCalls(deps.Logger, tool.Tool.Name, tool.Handler))
	}

	for _, tool := range deps.ToolsWithConfig {
		handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return tool.Handler(ctx, request, deps.Config)
		}
		s.AddTool(tool.Tool, logCalls(deps.Logger, tool.Tool.Name, handler))
	}

	for _, resource := range deps.Resources {
		s.AddResource(resource.Resource, resource.Handler)
	}

	deps.Logger.Printf("%s %s ready with %d tool(s) and %d resource(s)",
		serverName, deps.Version, len(deps.Tools)+len(deps.ToolsWithConfig), len(deps.Resources))

	return s, nil
}

// logCalls wraps h so every call is recorded on log.
func logCalls(log logger.Logger, name string, h ToolHandler) ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := h(ctx, request)
		switch {
		case err != nil:
			log.Errorf("tool %s failed: %v", name, err)
		case result != nil && result.IsError:
			log.Errorf("tool %s returned an error: %s", name, resultText(result))
		default:
			log.Printf("tool %s completed", name)
		}
		return result, err
	}
}

// resultText returns the text of the first text content in result.
func resultText(result *mcp.CallToolResult) string {
	for _, content := range result.Content {
		switch text := content.(type) {
		case mcp.TextContent:
			return text.Text
		case *mcp.TextContent:
			return text.Text
		}
	}
	return fmt.Sprintf("%d non-text content item(s)", len(result.Content))
}
