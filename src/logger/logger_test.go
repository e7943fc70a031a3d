// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/H0llyW00dzZ/exec-wrapper/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is a bytes.Buffer safe for concurrent writers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestCLILogger(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Printf",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				log.Printf("wrote %s", "bin/tool")

				assert.Equal(t, "wrote bin/tool\n", buf.String())
			},
		},
		{
			name: "Println",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				log.Println("suffix", ".exe")

				assert.Equal(t, "suffix .exe\n", buf.String())
			},
		},
		{
			name: "ErrorfUsesErrorOutput",
			testFunc: func(t *testing.T) {
				var out, errOut bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&out)
				log.SetErrorOutput(&errOut)

				log.Errorf("Error: %v", "boom")

				assert.Empty(t, out.String())
				assert.Equal(t, "Error: boom\n", errOut.String())
			},
		},
		{
			name: "SetOutput",
			testFunc: func(t *testing.T) {
				var buf1, buf2 bytes.Buffer
				log := logger.NewCLILogger()

				log.SetOutput(&buf1)
				log.Println("first")

				log.SetOutput(&buf2)
				log.Println("second")

				assert.Contains(t, buf1.String(), "first")
				assert.Contains(t, buf2.String(), "second")
				assert.NotContains(t, buf1.String(), "second", "buf1 should not contain 'second'")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}

func decodeLines(t *testing.T, out string) []map[string]string {
	t.Helper()

	var entries []map[string]string
	for line := range strings.SplitSeq(strings.TrimSpace(out), "\n") {
		var e map[string]string
		require.NoError(t, json.Unmarshal([]byte(line), &e), "line %q", line)
		entries = append(entries, e)
	}
	return entries
}

func TestMCPLogger(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "SilentByDefault",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewMCPLogger(&buf, true)

				log.Printf("hidden %d", 1)
				log.Println("hidden")
				log.Errorf("hidden")

				assert.Empty(t, buf.String())
			},
		},
		{
			name: "JSONLines",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewMCPLogger(&buf, false)

				log.Printf("built %d bytes", 42)
				log.Println("ready")
				log.Errorf("tool %s failed", "write_exec_wrapper")

				entries := decodeLines(t, buf.String())
				require.Len(t, entries, 3)
				assert.Equal(t, map[string]string{"level": "info", "message": "built 42 bytes"}, entries[0])
				assert.Equal(t, map[string]string{"level": "info", "message": "ready"}, entries[1])
				assert.Equal(t, map[string]string{"level": "error", "message": "tool write_exec_wrapper failed"}, entries[2])
			},
		},
		{
			name: "EscapesSpecialCharacters",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewMCPLogger(&buf, false)

				log.Printf("arg %q\nnext \"line\"", `C:\tools`)

				entries := decodeLines(t, buf.String())
				require.Len(t, entries, 1)
				assert.Equal(t, "arg \"C:\\\\tools\"\nnext \"line\"", entries[0]["message"])
			},
		},
		{
			name: "Named",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewMCPLogger(&buf, false).Named("tools")

				log.Println("registered")

				entries := decodeLines(t, buf.String())
				require.Len(t, entries, 1)
				assert.Equal(t, "tools", entries[0]["logger"])
			},
		},
		{
			name: "NilWriter",
			testFunc: func(t *testing.T) {
				log := logger.NewMCPLogger(nil, false)
				assert.NotPanics(t, func() { log.Println("discarded") })

				log.SetOutput(nil)
				assert.NotPanics(t, func() { log.Printf("discarded") })
			},
		},
		{
			name: "ConcurrentUsage",
			testFunc: func(t *testing.T) {
				var buf syncBuffer
				log := logger.NewMCPLogger(&buf, false)

				const goroutines, perG = 16, 50
				var wg sync.WaitGroup
				for g := range goroutines {
					wg.Add(1)
					go func() {
						defer wg.Done()
						for i := range perG {
							log.Printf("goroutine %d message %d", g, i)
						}
					}()
				}
				wg.Wait()

				entries := decodeLines(t, buf.String())
				assert.Len(t, entries, goroutines*perG)

				seen := make(map[string]bool, len(entries))
				for _, e := range entries {
					seen[e["message"]] = true
				}
				assert.True(t, seen[fmt.Sprintf("goroutine %d message %d", goroutines-1, perG-1)])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}
