// Package output emits the scanned tree as a flat pseudo-XML document.
// Nothing is escaped: paths and content pass through verbatim, which is the
// documented contract of the format, not an oversight.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"kek/pkg/category"

	"go.uber.org/zap"
)

// File is one entry to serialize. Files arrive already sorted; Write groups
// them by category without reordering within a group.
type File struct {
	Path     string // relative path emitted inside <path>
	AbsPath  string // filesystem location the content is read from
	Category category.Category
}

// Write streams the document to w. Categories appear in the fixed order
// docs, src, other, and empty categories are omitted. When taskArgs is
// non-empty a trailing <task> element carries the arguments joined by
// single spaces.
//
// Metadata goes through a buffered writer; each file's content is copied
// from its file handle straight into w after a flush, so when w is a pipe
// or a file the runtime can use the kernel's zero-copy path. The bytes
// produced are identical either way.
func Write(w io.Writer, files []File, taskArgs []string, logger *zap.Logger) error {
	bw := bufio.NewWriter(w)

	for _, cat := range category.All {
		group := filterCategory(files, cat)
		if len(group) == 0 {
			continue
		}
		writeLine(bw, "<category>")
		writeLine(bw, "<description>")
		writeLine(bw, cat.Description())
		writeLine(bw, "</description>")
		writeLine(bw, "<files>")
		for _, f := range group {
			if err := writeFile(bw, w, f, logger); err != nil {
				return err
			}
		}
		writeLine(bw, "</files>")
		writeLine(bw, "</category>")
	}

	if len(taskArgs) > 0 {
		writeLine(bw, "<task>"+strings.Join(taskArgs, " ")+"</task>")
	}

	return bw.Flush()
}

// writeFile emits one <file> block. A file that cannot be opened anymore,
// typically because it was deleted between enumeration and streaming, is
// skipped whole with a warning; emitting a block with a path but no content
// would leave a garbled document.
func writeFile(bw *bufio.Writer, raw io.Writer, f File, logger *zap.Logger) error {
	src, err := os.Open(f.AbsPath)
	if err != nil {
		logger.Warn("Skipping file that vanished before streaming",
			zap.String("path", f.Path), zap.Error(err))
		return nil
	}
	defer src.Close()

	writeLine(bw, "<file>")
	writeLine(bw, "<path>")
	writeLine(bw, f.Path)
	writeLine(bw, "</path>")
	writeLine(bw, "<content>")

	// Buffered metadata must land before the raw content does.
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	if _, err := io.Copy(raw, src); err != nil {
		return fmt.Errorf("failed to stream %s: %w", f.Path, err)
	}

	writeLine(bw, "")
	writeLine(bw, "</content>")
	writeLine(bw, "</file>")
	return nil
}

func filterCategory(files []File, cat category.Category) []File {
	var group []File
	for _, f := range files {
		if f.Category == cat {
			group = append(group, f)
		}
	}
	return group
}

// writeLine appends text plus a newline. bufio retains the first write
// error, so errors surface at the next Flush.
func writeLine(bw *bufio.Writer, text string) {
	bw.WriteString(text)
	bw.WriteByte('\n')
}
