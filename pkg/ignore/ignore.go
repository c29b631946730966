// Package ignore implements gitignore-style exclusion with directory-scoped
// rule sets. Rules found in a directory apply to that directory's subtree
// only; deeper rules override shallower ones and '!' lines re-include.
package ignore

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Ignore files recognized in every directory, in load order. Rules from the
// tool-specific file override the version-control one.
var ignoreFileNames = []string{".gitignore", ".kekignore"}

type scope struct {
	dir   string // absolute directory the rules were found in
	rules []*Rule
}

// Set is an immutable chain of directory scopes, ordered root to leaf.
// Descend returns a new Set sharing the prefix, so sibling subtrees walked
// by different workers never observe each other's scopes.
type Set struct {
	scopes []scope
	logger *zap.Logger
}

// NewSet returns an empty rule set.
func NewSet(logger *zap.Logger) *Set {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Set{logger: logger}
}

// Descend loads any ignore files present in dir and returns a Set extended
// with their rules. The receiver is not modified. A missing ignore file is
// normal; an unreadable or partially malformed one is logged and whatever
// rules parsed are kept.
func (s *Set) Descend(dir string) *Set {
	var rules []*Rule
	for _, name := range ignoreFileNames {
		path := filepath.Join(dir, name)
		content, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				s.logger.Warn("Failed to read ignore file", zap.String("path", path), zap.Error(err))
			}
			continue
		}
		rules = append(rules, CompileLines(strings.Split(string(content), "\n"), path, s.logger)...)
	}
	if len(rules) == 0 {
		return s
	}

	scopes := make([]scope, len(s.scopes), len(s.scopes)+1)
	copy(scopes, s.scopes)
	scopes = append(scopes, scope{dir: dir, rules: rules})
	return &Set{scopes: scopes, logger: s.logger}
}

// Excluded reports whether the path at absPath is excluded by the active
// rules. Scopes are evaluated root to leaf and, within a scope, in line
// order, so the last matching rule decides; a matching '!' rule re-includes.
func (s *Set) Excluded(absPath string, isDir bool) bool {
	excluded := false
	for _, sc := range s.scopes {
		rel, err := filepath.Rel(sc.dir, absPath)
		if err != nil {
			continue
		}
		rel = filepath.ToSlash(rel)
		for _, r := range sc.rules {
			if r.dirOnly && !isDir {
				continue
			}
			if r.re.MatchString(rel) {
				excluded = !r.negate
			}
		}
	}
	return excluded
}

// Empty reports whether the set carries no rules at all.
func (s *Set) Empty() bool {
	return len(s.scopes) == 0
}
