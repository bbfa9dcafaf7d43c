package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Config is the user configuration of the editor.
type Config struct {
	// Log configures the log file.
	Log LogConfig `toml:"log" yaml:"log"`

	// Scripts lists Lua files that define additional commands.
	// Relative paths are resolved against the directory of the config file.
	Scripts []string `toml:"scripts" yaml:"scripts"`

	// NoDefaultKeys disables the builtin bindings.
	NoDefaultKeys bool `toml:"no_default_keys" yaml:"no_default_keys"`

	// Bind lists bindings in the order they are applied.
	Bind []BindEntry `toml:"bind" yaml:"bind"`

	// Keys maps a mode name to key sequences and their command names.
	// These bindings are applied after Bind.
	Keys map[string]map[string][]string `toml:"keys" yaml:"keys"`

	path string
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`

	// Format is "console" or "json".
	Format string `toml:"format" yaml:"format"`

	// File is the log file path. The terminal owns stdout.
	File string `toml:"file" yaml:"file"`
}

// BindEntry is a single binding in the [[bind]] list.
type BindEntry struct {
	Mode     string   `toml:"mode" yaml:"mode"`
	Keys     string   `toml:"keys" yaml:"keys"`
	Commands []string `toml:"commands" yaml:"commands"`
}

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: FormatConsole,
			File:   DefaultLogFile(),
		},
	}
}

// Path returns the file the configuration was loaded from, if any.
func (c *Config) Path() string {
	return c.path
}

// Validate checks the values that are not checked while decoding.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil || c.Log.Level == "" {
		return &ValidationError{Path: "log.level", Message: "unknown log level", Value: c.Log.Level}
	}
	switch c.Log.Format {
	case FormatConsole, FormatJSON:
	default:
		return &ValidationError{Path: "log.format", Message: "must be console or json", Value: c.Log.Format}
	}
	for i, b := range c.Bind {
		if b.Keys == "" {
			return &ValidationError{Path: bindPath(i, "keys"), Message: "must not be empty", Value: b.Keys}
		}
		if len(b.Commands) == 0 {
			return &ValidationError{Path: bindPath(i, "commands"), Message: "must not be empty", Value: b.Commands}
		}
	}
	return nil
}

// ScriptPaths returns the script paths with relative entries resolved.
func (c *Config) ScriptPaths() []string {
	base := ""
	if c.path != "" {
		base = filepath.Dir(c.path)
	}
	paths := make([]string, len(c.Scripts))
	for i, s := range c.Scripts {
		s = expandHome(s)
		if !filepath.IsAbs(s) && base != "" {
			s = filepath.Join(base, s)
		}
		paths[i] = s
	}
	return paths
}

// DefaultPath returns the config file location: $KK_CONFIG if set,
// otherwise kk/config.toml under the user config directory.
func DefaultPath() string {
	if p := os.Getenv(EnvPrefix + "CONFIG"); p != "" {
		return expandHome(p)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(dir, "kk", "config.toml")
}

// DefaultLogFile returns kk/kk.log under the user cache directory.
func DefaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "kk", "kk.log")
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
