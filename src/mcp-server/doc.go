// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver provides the [MCP] server for exec-wrapper.
// It exposes launcher generation as tools (build, write, suffix, inspect) and serves
// version information, a configuration template, and launcher format documentation
// as resources. The server is assembled with [ServerBuilder] and speaks stdio.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
