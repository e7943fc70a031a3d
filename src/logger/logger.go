// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/H0llyW00dzZ/exec-wrapper/src/internal/helper/gc"
)

// Logger defines the interface for logging operations.
// It provides methods for different log levels and formatted output.
//
// This interface supports both CLI and [MCP] server modes, allowing seamless
// switching between human-readable output and structured logging.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// Errorf formats and prints an error message.
	Errorf(format string, v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// Regular messages go to stdout and errors to stderr, both without timestamps.
type CLILogger struct {
	out *log.Logger
	err *log.Logger
}

// NewCLILogger creates a new CLI logger with timestamps disabled.
// This is suitable for user-facing CLI output.
func NewCLILogger() *CLILogger {
	return &CLILogger{
		out: log.New(os.Stdout, "", 0),
		err: log.New(os.Stderr, "", 0),
	}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.out.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.out.Println(v...) }

// Errorf prints an error message to the error output.
func (c *CLILogger) Errorf(format string, v ...any) { c.err.Printf(format, v...) }

// SetOutput sets the output destination for regular messages.
func (c *CLILogger) SetOutput(w io.Writer) { c.out.SetOutput(w) }

// SetErrorOutput sets the output destination for error messages.
func (c *CLILogger) SetErrorOutput(w io.Writer) { c.err.SetOutput(w) }

// entry is one structured log line.
type entry struct {
	Level   string `json:"level"`
	Logger  string `json:"logger,omitempty"`
	Message string `json:"message"`
}

// MCPLogger implements Logger for [MCP] server mode.
// It suppresses output by default since MCP communication happens over stdio,
// but can be configured to write structured logs to a separate destination.
//
// MCPLogger is safe for concurrent use by multiple goroutines.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type MCPLogger struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
	name   string
}

// NewMCPLogger creates a new [MCP] logger.
// By default, it's silent (output suppressed) to avoid interfering with [MCP] stdio protocol.
// Set silent=false and provide a writer to enable structured logging to a file or stderr.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func NewMCPLogger(writer io.Writer, silent bool) *MCPLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &MCPLogger{
		writer: writer,
		silent: silent,
	}
}

// Named returns a logger sharing m's destination whose lines carry name
// in the "logger" field.
func (m *MCPLogger) Named(name string) *MCPLogger {
	m.mu.Lock()
	defer m.mu.Unlock()
	return &MCPLogger{writer: m.writer, silent: m.silent, name: name}
}

// Printf formats and logs a structured message at info level.
// Output is suppressed if silent mode is enabled.
func (m *MCPLogger) Printf(format string, v ...any) {
	if m.silent {
		return
	}
	m.write("info", fmt.Sprintf(format, v...))
}

// Println logs a structured message at info level.
// Output is suppressed if silent mode is enabled.
func (m *MCPLogger) Println(v ...any) {
	if m.silent {
		return
	}
	m.write("info", fmt.Sprint(v...))
}

// Errorf formats and logs a structured message at error level.
// Output is suppressed if silent mode is enabled.
func (m *MCPLogger) Errorf(format string, v ...any) {
	if m.silent {
		return
	}
	m.write("error", fmt.Sprintf(format, v...))
}

// write encodes one JSON line and hands it to the writer in a single call.
func (m *MCPLogger) write(level, msg string) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	// Encoding a struct of strings cannot fail.
	_ = json.NewEncoder(buf).Encode(entry{Level: level, Logger: m.name, Message: msg})

	m.mu.Lock()
	defer m.mu.Unlock()
	_, _ = m.writer.Write(buf.Bytes())
}

// SetOutput sets the output destination for the MCP logger.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (m *MCPLogger) SetOutput(w io.Writer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if w == nil {
		m.writer = io.Discard
	} else {
		m.writer = w
	}
}
