// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package wrapper

import (
	"archive/zip"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/H0llyW00dzZ/exec-wrapper/src/internal/helper/gc"
)

// MainEntry is the name of the single archive entry; the interpreter runs it
// when asked to execute the archive.
const MainEntry = "__main__.py"

// archiveModified is stamped on the archive entry so identical inputs yield
// identical bytes. It is the earliest time a zip header can express.
var archiveModified = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// windowsShebang returns the `#!"<interpreter>"` line read by the launcher.
func windowsShebang(interpreter string) (string, error) {
	if strings.Contains(interpreter, `"`) {
		return "", fmt.Errorf("%w: %s", ErrInvalidInterpreterPath, interpreter)
	}
	return `#!"` + interpreter + `"` + "\n", nil
}

// checkUTF8 rejects arguments quotePython cannot render faithfully.
func checkUTF8(args []string) error {
	for i, arg := range args {
		if !utf8.ValidString(arg) {
			return fmt.Errorf("%w: argument %d (%q)", ErrInvalidArgumentEncoding, i, arg)
		}
	}
	return nil
}

// quotePython renders arg as a Python string literal. Go's double-quoted
// escapes (\\, \", \n, \t, \uNNNN, \UNNNNNNNN) mean the same in Python.
// arg must be valid UTF-8: Go writes a stray byte as \xNN, which Python reads
// as the code point U+00NN instead.
func quotePython(arg string) string { return strconv.Quote(arg) }

// windowsScript returns the payload that re-runs args plus its own arguments
// and exits with the child's exit code.
func windowsScript(args []string) string {
	var list strings.Builder
	list.WriteByte('[')
	for i, arg := range args {
		if i > 0 {
			list.WriteString(", ")
		}
		list.WriteString(quotePython(arg))
	}
	list.WriteByte(']')

	return "import sys\n" +
		"import subprocess\n" +
		"sys.exit(subprocess.run(" + list.String() + " + sys.argv[1:]).returncode)\n"
}

// packScript stores script, uncompressed, as the only entry of a zip archive.
func packScript(script string) ([]byte, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	zw := zip.NewWriter(buf)
	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:     MainEntry,
		Method:   zip.Store,
		Modified: archiveModified,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create archive entry: %w", err)
	}
	if _, err := w.Write([]byte(script)); err != nil {
		return nil, fmt.Errorf("failed to write archive entry: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish archive: %w", err)
	}

	return gc.Clone(buf), nil
}

// windowsSegments returns the launcher, shebang and archive of a Windows
// wrapper. The interpreter and arguments are checked before anything else is
// touched.
func windowsSegments(args []string, o *options) ([]segment, error) {
	shebang, err := windowsShebang(o.resolveInterpreter())
	if err != nil {
		return nil, err
	}
	if err := checkUTF8(args); err != nil {
		return nil, err
	}

	launcher, err := o.resolveLauncher()
	if err != nil {
		return nil, err
	}

	archive, err := packScript(windowsScript(args))
	if err != nil {
		return nil, err
	}

	return []segment{
		{name: SegmentLauncher, data: launcher},
		{name: SegmentShebang, data: []byte(shebang)},
		{name: SegmentArchive, data: archive},
	}, nil
}
