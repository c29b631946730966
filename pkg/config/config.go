// Package config loads the tool configuration from a TOML file and supplies
// built-in defaults when no file is present.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
)

// EnvConfigPath overrides the configuration file location when set.
const EnvConfigPath = "KEK_CONFIG"

// DefaultConfigFile is looked up in the working directory when the
// environment variable is unset.
const DefaultConfigFile = "kek.toml"

// Config is the resolved configuration: scan roots plus the glob lists for
// the docs and src categories, with defaults already applied.
type Config struct {
	Scan []string // scan roots, default ["."]
	Docs []string // docs category glob patterns
	Src  []string // src category glob patterns
}

// fileConfig mirrors the TOML document layout.
type fileConfig struct {
	Scan     []string     `toml:"scan"`
	Category categoryFile `toml:"category"`
}

type categoryFile struct {
	Docs []string `toml:"docs"`
	Src  []string `toml:"src"`
}

// Path returns the configuration file location, honoring the environment
// override.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultConfigFile
}

// Load reads the configuration file at Path. A missing file falls back to
// built-in defaults; a file that exists but does not parse, or that contains
// keys the tool does not know, is a fatal configuration error.
func Load(logger *zap.Logger) (*Config, error) {
	path := Path()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Debug("No configuration file found, using defaults", zap.String("path", path))
		return &Config{
			Scan: []string{"."},
			Docs: DefaultDocsGlobs(),
			Src:  DefaultSrcGlobs(),
		}, nil
	}

	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("configuration file %s contains unknown key %q", path, undecoded[0].String())
	}

	cfg := &Config{
		Scan: fc.Scan,
		Docs: fc.Category.Docs,
		Src:  fc.Category.Src,
	}
	// A key omitted from the file means "use the defaults"; an explicitly
	// empty list stays empty.
	if cfg.Scan == nil {
		cfg.Scan = []string{"."}
	}
	if cfg.Docs == nil {
		cfg.Docs = DefaultDocsGlobs()
	}
	if cfg.Src == nil {
		cfg.Src = DefaultSrcGlobs()
	}

	logger.Debug("Loaded configuration file",
		zap.String("path", path),
		zap.Int("scanRoots", len(cfg.Scan)),
		zap.Int("docsGlobs", len(cfg.Docs)),
		zap.Int("srcGlobs", len(cfg.Src)))
	return cfg, nil
}
