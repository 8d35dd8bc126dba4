// Package logging routes the standard logger to a rotating debug file.
package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	Dir      = "logs"
	FileName = "backdrop.log"
	MaxSize  = 10 * 1024 * 1024
)

// Setup discards log output unless debug is set, in which case it appends
// to dir/backdrop.log, rotating the file once it grows past MaxSize.
// The returned file is nil when logging is off.
func Setup(dir string, debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(dir, FileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > MaxSize {
		_ = os.Rename(logPath, logPath+".old")
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
