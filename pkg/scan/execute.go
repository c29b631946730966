package scan

import (
	"fmt"
	"io"
	"os"

	"kek/pkg/category"
	"kek/pkg/config"
	"kek/pkg/output"

	"go.uber.org/zap"
	"golang.org/x/term"
)

// Execute runs a full scan and streams the document to stdout. It refuses to
// run when stdout is an interactive terminal: the output is meant for pipes
// and files, and the refusal happens before any traversal work.
func Execute(taskArgs []string, logger *zap.Logger) error {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("output must be piped to another command or redirected to a file")
	}
	return run(os.Stdout, taskArgs, 0, logger)
}

// run is Execute minus the environment checks, writing to any sink.
func run(w io.Writer, taskArgs []string, workers int, logger *zap.Logger) error {
	cfg, err := config.Load(logger)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	matcher, err := category.NewMatcher(cfg.Docs, cfg.Src)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	baseDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	walker := NewWalker(matcher, baseDir, workers, logger)
	entries := walker.Walk(cfg.Scan)
	logger.Debug("Scan finished", zap.Int("files", len(entries)))

	if len(entries) == 0 && len(taskArgs) == 0 {
		logger.Info("No files discovered and no task given, nothing to output")
		return nil
	}

	files := make([]output.File, len(entries))
	for i, e := range entries {
		files[i] = output.File{
			Path:     e.RelPath,
			AbsPath:  e.AbsPath,
			Category: e.Category,
		}
	}
	if err := output.Write(w, files, taskArgs, logger); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
