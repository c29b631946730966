package category

import (
	"testing"

	"kek/pkg/config"
)

func TestClassifyDocsBeforeSrc(t *testing.T) {
	// A path matching both sets must land in docs: docs is tested first.
	m, err := NewMatcher([]string{"*.md"}, []string{"*.md", "*.go"})
	if err != nil {
		t.Fatalf("NewMatcher() error = %v", err)
	}
	if got := m.Classify("README.md"); got != Docs {
		t.Errorf("Classify(README.md) = %v, want Docs", got)
	}
	if got := m.Classify("main.go"); got != Src {
		t.Errorf("Classify(main.go) = %v, want Src", got)
	}
	if got := m.Classify("notes.bin"); got != Other {
		t.Errorf("Classify(notes.bin) = %v, want Other", got)
	}
}

func TestClassifyWithDefaults(t *testing.T) {
	m, err := NewMatcher(config.DefaultDocsGlobs(), config.DefaultSrcGlobs())
	if err != nil {
		t.Fatalf("NewMatcher() error = %v", err)
	}

	cases := []struct {
		path string
		want Category
	}{
		{"README.md", Docs},
		{"docs/guide/intro.rst", Docs},
		{"src/main.rs", Src},
		{"deep/nested/tool.py", Src},
		{"Makefile", Src},
		{"go.mod", Src},
		{"notes.bin", Other},
		{"assets/image.png", Other},
	}
	for _, tc := range cases {
		if got := m.Classify(tc.path); got != tc.want {
			t.Errorf("Classify(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	m, err := NewMatcher([]string{"*.MD"}, []string{"SRC/*"})
	if err != nil {
		t.Fatalf("NewMatcher() error = %v", err)
	}
	if got := m.Classify("readme.md"); got != Docs {
		t.Errorf("Classify(readme.md) = %v, want Docs", got)
	}
	if got := m.Classify("src/Main.Go"); got != Src {
		t.Errorf("Classify(src/Main.Go) = %v, want Src", got)
	}
}

func TestStarCrossesSeparators(t *testing.T) {
	m, err := NewMatcher([]string{"docs*"}, nil)
	if err != nil {
		t.Fatalf("NewMatcher() error = %v", err)
	}
	if got := m.Classify("docs/sub/deep/file.xyz"); got != Docs {
		t.Errorf("Classify(docs/sub/deep/file.xyz) = %v, want Docs", got)
	}
}

func TestDoubleStarMatchesZeroDirectories(t *testing.T) {
	m, err := NewMatcher([]string{"**/*.md"}, nil)
	if err != nil {
		t.Fatalf("NewMatcher() error = %v", err)
	}
	for _, path := range []string{"README.md", "a/b/c.md"} {
		if got := m.Classify(path); got != Docs {
			t.Errorf("Classify(%q) = %v, want Docs", path, got)
		}
	}
}

func TestHiddenFilesNeedExplicitDot(t *testing.T) {
	m, err := NewMatcher([]string{"*.log"}, []string{".*.log"})
	if err != nil {
		t.Fatalf("NewMatcher() error = %v", err)
	}
	if got := m.Classify("server.log"); got != Docs {
		t.Errorf("Classify(server.log) = %v, want Docs", got)
	}
	// "*.log" must not claim the hidden file; ".*.log" does.
	if got := m.Classify(".hidden.log"); got != Src {
		t.Errorf("Classify(.hidden.log) = %v, want Src", got)
	}
}

func TestNewMatcherRejectsInvalidPattern(t *testing.T) {
	if _, err := NewMatcher([]string{"   "}, nil); err == nil {
		t.Fatal("NewMatcher() with blank docs pattern should fail")
	}
	if _, err := NewMatcher(nil, []string{""}); err == nil {
		t.Fatal("NewMatcher() with empty src pattern should fail")
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	m, err := NewMatcher([]string{"*.md"}, []string{"*.go"})
	if err != nil {
		t.Fatalf("NewMatcher() error = %v", err)
	}
	first := m.Classify("pkg/deep/file.go")
	for i := 0; i < 100; i++ {
		if got := m.Classify("pkg/deep/file.go"); got != first {
			t.Fatalf("Classify changed between calls: %v then %v", first, got)
		}
	}
}
