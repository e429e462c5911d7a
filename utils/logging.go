package utils

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	LogDir      = "logs"
	LogFileName = "term-life.log"
)

// SetupLogging routes the standard logger to LogDir/LogFileName when debug is set
// and discards log output otherwise, since the terminal belongs to the renderer.
// The returned file is nil when logging is disabled.
func SetupLogging(debug bool) (*os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	if err := os.MkdirAll(LogDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil, errors.Wrapf(err, "[SetupLogging] failed to create log dir: %+v", LogDir)
	}

	path := filepath.Join(LogDir, LogFileName)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil, errors.Wrapf(err, "[SetupLogging] failed to open log file: %+v", path)
	}

	log.SetOutput(file)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return file, nil
}
