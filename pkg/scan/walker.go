package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"kek/pkg/category"
	"kek/pkg/ignore"

	"go.uber.org/zap"
)

// FileEntry is one non-excluded file discovered during the walk.
type FileEntry struct {
	RelPath  string // forward-slash path relative to the working directory
	AbsPath  string
	Category category.Category
	Size     int64
}

// Walker enumerates all non-excluded files under the configured scan roots.
// Subtrees are walked by a bounded pool of goroutines; each subtree carries
// its own ignore scope chain, so workers share nothing but the matcher and
// the result slice. Discovery order is arbitrary; entries are sorted once
// all workers finish, so the final order never depends on scheduling.
type Walker struct {
	matcher *category.Matcher
	logger  *zap.Logger
	baseDir string
	sem     chan struct{}

	wg      sync.WaitGroup
	mu      sync.Mutex
	seen    map[string]struct{}
	entries []FileEntry
}

// NewWalker creates a walker that resolves relative paths against baseDir.
// A non-positive worker count falls back to the number of CPUs.
func NewWalker(matcher *category.Matcher, baseDir string, workers int, logger *zap.Logger) *Walker {
	if workers <= 0 {
		workers = runtime.NumCPU()
		logger.Debug("Adjusted worker count", zap.Int("workers", workers))
	}
	return &Walker{
		matcher: matcher,
		logger:  logger,
		baseDir: baseDir,
		sem:     make(chan struct{}, workers),
		seen:    make(map[string]struct{}),
	}
}

// Walk traverses every scan root and returns the discovered entries sorted
// lexicographically by relative path. Roots that do not exist or are not
// directories are skipped with a warning. A file reachable from more than
// one root appears once.
func (w *Walker) Walk(roots []string) []FileEntry {
	for _, root := range roots {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			w.logger.Warn("Failed to resolve scan root", zap.String("root", root), zap.Error(err))
			continue
		}
		info, err := os.Stat(absRoot)
		if err != nil {
			w.logger.Warn("Scan root does not exist, skipping", zap.String("root", absRoot), zap.Error(err))
			continue
		}
		if !info.IsDir() {
			w.logger.Warn("Scan root is not a directory, skipping", zap.String("root", absRoot))
			continue
		}
		w.spawn(absRoot, ignore.NewSet(w.logger))
	}
	w.wg.Wait()

	sort.Slice(w.entries, func(i, j int) bool {
		return w.entries[i].RelPath < w.entries[j].RelPath
	})
	return w.entries
}

// spawn schedules one directory as a unit of work. The semaphore bounds how
// many walkDir calls run at once.
func (w *Walker) spawn(dir string, set *ignore.Set) {
	w.wg.Add(1)
	go func() {
		w.sem <- struct{}{}
		defer func() {
			<-w.sem
			w.wg.Done()
		}()
		w.walkDir(dir, set)
	}()
}

func (w *Walker) walkDir(dir string, set *ignore.Set) {
	set = set.Descend(dir)

	dirents, err := os.ReadDir(dir)
	if err != nil {
		w.logger.Warn("Failed to read directory, skipping", zap.String("dir", dir), zap.Error(err))
		return
	}

	for _, d := range dirents {
		abs := filepath.Join(dir, d.Name())
		isDir := d.IsDir()
		var size int64

		if d.Type()&fs.ModeSymlink != 0 {
			// A link to a regular file is content like any other file;
			// directory links are never followed, which also rules out
			// link cycles.
			info, err := os.Stat(abs)
			if err != nil {
				w.logger.Warn("Skipping unresolvable symlink", zap.String("path", abs), zap.Error(err))
				continue
			}
			if info.IsDir() {
				w.logger.Debug("Not following directory symlink", zap.String("path", abs))
				continue
			}
			if !info.Mode().IsRegular() {
				continue
			}
			size = info.Size()
		} else if !isDir {
			info, err := d.Info()
			if err != nil {
				w.logger.Warn("Skipping unreadable directory entry", zap.String("path", abs), zap.Error(err))
				continue
			}
			if !info.Mode().IsRegular() {
				continue
			}
			size = info.Size()
		}

		if isDir && d.Name() == ".git" {
			continue
		}
		if set.Excluded(abs, isDir) {
			// Excluded directories are pruned, not filtered: nothing
			// beneath them is ever read.
			w.logger.Debug("Excluded by ignore rules", zap.String("path", abs))
			continue
		}

		if isDir {
			w.spawn(abs, set)
			continue
		}

		rel, err := filepath.Rel(w.baseDir, abs)
		if err != nil {
			w.logger.Warn("Failed to compute relative path, skipping", zap.String("path", abs), zap.Error(err))
			continue
		}
		relSlash := filepath.ToSlash(rel)
		entry := FileEntry{
			RelPath:  relSlash,
			AbsPath:  abs,
			Category: w.matcher.Classify(relSlash),
			Size:     size,
		}
		w.logger.Debug("Discovered file",
			zap.String("path", relSlash),
			zap.Stringer("category", entry.Category),
			zap.Int64("sizeBytes", entry.Size))
		w.add(entry)
	}
}

func (w *Walker) add(entry FileEntry) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, dup := w.seen[entry.AbsPath]; dup {
		return
	}
	w.seen[entry.AbsPath] = struct{}{}
	w.entries = append(w.entries, entry)
}
