package ignore

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Rule is a single compiled ignore-file line.
type Rule struct {
	re      *regexp.Regexp
	negate  bool // '!' prefix: a match re-includes the path
	dirOnly bool // trailing '/': the rule applies to directories only
	line    string
}

// Line returns the original pattern text the rule was compiled from.
func (r *Rule) Line() string {
	return r.line
}

// CompileLines compiles the lines of one ignore file. Empty lines and
// comments are dropped; a line that fails to compile is logged and skipped,
// the remaining rules stay usable.
func CompileLines(lines []string, source string, logger *zap.Logger) []*Rule {
	var rules []*Rule
	for i, line := range lines {
		rule, ok := compileLine(line)
		if !ok {
			logger.Warn("Skipping malformed ignore pattern",
				zap.String("source", source),
				zap.Int("lineNo", i+1),
				zap.String("line", line))
			continue
		}
		if rule != nil {
			rules = append(rules, rule)
		}
	}
	return rules
}

// compileLine parses one ignore-file line. It returns (nil, true) for blank
// and comment lines, and (nil, false) for lines that cannot be compiled.
func compileLine(line string) (*Rule, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, true
	}

	negate := false
	if strings.HasPrefix(trimmed, "!") {
		negate = true
		trimmed = trimmed[1:]
	}
	// "\#" and "\!" escape literal leading characters.
	if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
		trimmed = trimmed[1:]
	}

	dirOnly := strings.HasSuffix(trimmed, "/")
	trimmed = strings.TrimSuffix(trimmed, "/")

	// A pattern containing a slash is anchored to the directory its ignore
	// file lives in; a bare name matches at any depth below it.
	anchored := strings.Contains(trimmed, "/")
	trimmed = strings.TrimPrefix(trimmed, "/")
	if trimmed == "" {
		return nil, false
	}

	expr := translatePattern(trimmed)
	if anchored {
		expr = "^" + expr + `(/.*)?$`
	} else {
		expr = `^(.*/)?` + expr + `(/.*)?$`
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, false
	}
	return &Rule{re: re, negate: negate, dirOnly: dirOnly, line: line}, true
}

// translatePattern converts an ignore glob body to a regular expression.
// '*' and '?' stop at path separators; "**" spans whole directories in its
// leading, middle, and trailing forms.
func translatePattern(p string) string {
	var b strings.Builder
	for i := 0; i < len(p); {
		switch p[i] {
		case '*':
			j := i
			for j < len(p) && p[j] == '*' {
				j++
			}
			run := j - i
			switch {
			case run > 1 && i == 0 && j < len(p) && p[j] == '/':
				b.WriteString(`(.*/)?`)
				j++
			case run > 1 && i > 0 && p[i-1] == '/' && j < len(p) && p[j] == '/':
				b.WriteString(`(.*/)?`)
				j++
			case run > 1 && i > 0 && p[i-1] == '/' && j == len(p):
				b.WriteString(`.+`)
			default:
				b.WriteString(`[^/]*`)
			}
			i = j
		case '?':
			b.WriteString(`[^/]`)
			i++
		default:
			b.WriteString(regexp.QuoteMeta(string(p[i])))
			i++
		}
	}
	return b.String()
}
