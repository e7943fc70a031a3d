// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// execwrap-mcp serves launcher generation over the Model Context Protocol on
// stdin and stdout.
//
// # Installation
//
//	go install github.com/H0llyW00dzZ/exec-wrapper/cmd/execwrap-mcp@latest
//
// # Environment
//
//	EXECWRAP_CONFIG_FILE  configuration file (.json, .yaml, .yml)
//	EXECWRAP_MCP_DEBUG    when non-empty, log tool calls to stderr as JSON lines
//
// # Client configuration
//
//	{
//	  "mcpServers": {
//	    "execwrap": {
//	      "command": "execwrap-mcp",
//	      "env": { "EXECWRAP_CONFIG_FILE": "/path/to/execwrap.yaml" }
//	    }
//	  }
//	}
package main
