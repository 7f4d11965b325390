package server

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
)

// OpenLogSink redirects the standard logger to a per-process file under
// dir, one file per PID so concurrent server runs never interleave.
func OpenLogSink(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("server: create log dir %s: %w", dir, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("server.%d", os.Getpid()))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("server: open log file %s: %w", path, err)
	}
	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime)
	log.SetPrefix("[server] ")
	return f, nil
}

// chips formats a chip amount for a log line.
func chips(amount int64) string {
	return humanize.Comma(amount)
}
