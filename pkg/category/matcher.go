package category

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Matcher holds the compiled docs and src pattern sets. Classification tests
// the docs set first, then src; the first matching pattern wins and anything
// left over is Other. A Matcher is immutable after construction and safe for
// concurrent use.
type Matcher struct {
	docs []*regexp.Regexp
	src  []*regexp.Regexp
}

// NewMatcher compiles the docs and src glob lists. Any pattern that fails to
// compile is a configuration error and aborts construction.
func NewMatcher(docsGlobs, srcGlobs []string) (*Matcher, error) {
	docs, err := compileGlobs(docsGlobs, "docs")
	if err != nil {
		return nil, err
	}
	src, err := compileGlobs(srcGlobs, "src")
	if err != nil {
		return nil, err
	}
	return &Matcher{docs: docs, src: src}, nil
}

// Classify maps a relative path to its category. The path is normalized to
// forward slashes and lowercased before matching, so classification never
// depends on platform separators or filesystem case sensitivity.
func (m *Matcher) Classify(relPath string) Category {
	norm := strings.ToLower(filepath.ToSlash(relPath))
	for _, re := range m.docs {
		if re.MatchString(norm) {
			return Docs
		}
	}
	for _, re := range m.src {
		if re.MatchString(norm) {
			return Src
		}
	}
	return Other
}

func compileGlobs(globs []string, name string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(globs))
	for _, glob := range globs {
		expr, err := translateGlob(glob)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern in %q -> %q: %w", name, glob, err)
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern in %q -> %q: %w", name, glob, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

// translateGlob converts a glob into an anchored regular expression.
//
// Semantics match the tool's contract rather than path.Match: '*' matches any
// run of characters including '/', '?' matches a single character, and a '*'
// that opens a path segment refuses to match a leading dot, so hidden files
// are matched only by patterns that spell the dot out (".*.log"). A "**/"
// opening a segment matches zero or more whole directories; any other run of
// stars collapses to a single '*'.
func translateGlob(pattern string) (string, error) {
	if strings.TrimSpace(pattern) == "" {
		return "", fmt.Errorf("pattern is empty")
	}
	p := strings.ToLower(pattern)

	var b strings.Builder
	b.WriteString("^")
	segStart := true
	for i := 0; i < len(p); {
		switch p[i] {
		case '*':
			j := i
			for j < len(p) && p[j] == '*' {
				j++
			}
			if segStart && j-i > 1 && j < len(p) && p[j] == '/' {
				b.WriteString(`(.*/)?`)
				i = j + 1
				continue
			}
			if segStart {
				b.WriteString(`([^.].*)?`)
			} else {
				b.WriteString(`.*`)
			}
			i = j
			segStart = false
		case '?':
			b.WriteString(`.`)
			i++
			segStart = false
		case '/':
			b.WriteString(`/`)
			i++
			segStart = true
		default:
			b.WriteString(regexp.QuoteMeta(string(p[i])))
			i++
			segStart = false
		}
	}
	b.WriteString("$")
	return b.String(), nil
}
