package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Init routes the global logger to the given file so terminal output
// stays reserved for the report digest. The caller closes the returned
// file when the run ends.
func Init(logFilePath string) (*os.File, error) {
	if dir := filepath.Dir(logFilePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	log.SetOutput(logFile)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	return logFile, nil
}
