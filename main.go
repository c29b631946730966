package main

import (
	"log"
	"os"
	"strings"

	"kek/cmd"
	"kek/pkg/logging"
	"kek/pkg/version"

	"go.uber.org/zap"
)

func main() {
	debug := os.Getenv("KEK_DEBUG") == "1"
	if err := logging.Setup(debug, "kek", version.Version); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := logging.Logger
	defer syncLogger(logger)

	if err := cmd.Execute(logger); err != nil {
		logger.Fatal("kek execution failed", zap.Error(err))
	}
}

// syncLogger flushes the logger, ignoring the spurious EINVAL that syncing
// a terminal-backed stderr produces.
func syncLogger(logger *zap.Logger) {
	if err := logger.Sync(); err != nil {
		if !strings.Contains(strings.ToLower(err.Error()), "invalid argument") {
			log.Printf("Logger sync failed: %v", err)
		}
	}
}
