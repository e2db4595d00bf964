package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

const (
	logFileName = "keyfall.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging returns the process logger
// Without debug, output is discarded because the TUI owns the terminal
// With debug, logs go to dir/keyfall.log, rotated by timestamp past maxLogSize
func setupLogging(dir string, debug bool) (*log.Logger, *os.File) {
	if !debug {
		logger := log.New(io.Discard)
		log.SetDefault(logger)
		return logger, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		return log.New(io.Discard), nil
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("keyfall_%s.log", time.Now().Format("20060102_150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to rotate log file: %v\n", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		return log.New(io.Discard), nil
	}

	logger := log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Prefix:          "keyfall",
	})
	log.SetDefault(logger)
	return logger, f
}
