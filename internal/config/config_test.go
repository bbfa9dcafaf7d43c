package config

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kk-editor/kk/internal/input/keymap"
	"github.com/kk-editor/kk/internal/input/mode"
)

// memFS is an in-memory file system for testing.
type memFS map[string]string

func (m memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(data), nil
}

func env(vars map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

const sampleTOML = `
scripts = ["scripts/extra.lua", "/abs/other.lua"]

[log]
level = "debug"
format = "json"
file = "/tmp/kk.log"

[[bind]]
mode = "normal"
keys = "space a"
commands = ["escape"]

[[bind]]
mode = "normal"
keys = "<any>"
commands = ["error"]

[keys.insert]
"C-s" = ["normal_mode"]
"space b" = ["nop", "show_keys"]

[keys.normal]
"g g" = ["nop"]
`

func TestLoadTOML(t *testing.T) {
	l := NewLoaderWith(memFS{"/home/u/.config/kk/config.toml": sampleTOML}, nil)
	cfg, err := l.Load("/home/u/.config/kk/config.toml")
	require.NoError(t, err)

	assert.Equal(t, "/home/u/.config/kk/config.toml", cfg.Path())
	assert.Equal(t, LogConfig{Level: "debug", Format: FormatJSON, File: "/tmp/kk.log"}, cfg.Log)
	assert.Equal(t, []string{"/home/u/.config/kk/scripts/extra.lua", "/abs/other.lua"}, cfg.ScriptPaths())
	require.Len(t, cfg.Bind, 2)
	assert.Equal(t, BindEntry{Mode: "normal", Keys: "space a", Commands: []string{"escape"}}, cfg.Bind[0])
	assert.Equal(t, []string{"nop", "show_keys"}, cfg.Keys["insert"]["space b"])
}

func TestLoadYAML(t *testing.T) {
	const doc = `
log:
  level: warn
no_default_keys: true
bind:
  - mode: visual
    keys: "esc"
    commands: [normal_mode]
keys:
  command:
    enter: [normal_mode]
`
	l := NewLoaderWith(memFS{"/c/config.yaml": doc}, nil)
	cfg, err := l.Load("/c/config.yaml")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, FormatConsole, cfg.Log.Format)
	assert.True(t, cfg.NoDefaultKeys)
	require.Len(t, cfg.Bind, 1)
	assert.Equal(t, "visual", cfg.Bind[0].Mode)
	assert.Equal(t, []string{"normal_mode"}, cfg.Keys["command"]["enter"])
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoaderWith(memFS{}, nil).Load("/nope/config.toml")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Path())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, FormatConsole, cfg.Log.Format)
	assert.Equal(t, DefaultLogFile(), cfg.Log.File)
	assert.False(t, cfg.NoDefaultKeys)
}

func TestLoadEmptyYAML(t *testing.T) {
	cfg, err := NewLoaderWith(memFS{"/c.yml": ""}, nil).Load("/c.yml")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadParseErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		data string
		line int
	}{
		{"toml syntax", "/c.toml", "[log\nlevel = 1\n", 1},
		{"toml unknown field", "/c.toml", "\n[log]\nlevle = \"debug\"\n", 3},
		{"yaml unknown field", "/c.yaml", "log:\n  levle: debug\n", 2},
		{"yaml syntax", "/c.yaml", "log: [\n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoaderWith(memFS{tt.path: tt.data}, nil).Load(tt.path)
			require.Error(t, err)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.path, pe.Path)
			if tt.line > 0 {
				assert.Equal(t, tt.line, pe.Line)
			}
		})
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	_, err := NewLoaderWith(memFS{"/c.json": "{}"}, nil).Load("/c.json")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(c *Config)
		path string
	}{
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"empty level", func(c *Config) { c.Log.Level = "" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"empty keys", func(c *Config) { c.Bind = []BindEntry{{Mode: "normal", Commands: []string{"nop"}}} }, "bind[0].keys"},
		{"no commands", func(c *Config) { c.Bind = []BindEntry{{Mode: "normal", Keys: "a"}} }, "bind[0].commands"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mod(cfg)
			var ve *ValidationError
			require.ErrorAs(t, cfg.Validate(), &ve)
			assert.Equal(t, tt.path, ve.Path)
		})
	}
	require.NoError(t, Default().Validate())
}

func TestEnvOverrides(t *testing.T) {
	l := NewLoaderWith(memFS{"/c.toml": sampleTOML}, env(map[string]string{
		"KK_LOG_LEVEL":       "TRACE",
		"KK_LOG_FILE":        "/var/log/kk.log",
		"KK_NO_DEFAULT_KEYS": "yes",
	}))
	cfg, err := l.Load("/c.toml")
	require.NoError(t, err)

	assert.Equal(t, "trace", cfg.Log.Level)
	assert.Equal(t, FormatJSON, cfg.Log.Format)
	assert.Equal(t, "/var/log/kk.log", cfg.Log.File)
	assert.True(t, cfg.NoDefaultKeys)
}

func TestEnvInvalid(t *testing.T) {
	l := NewLoaderWith(memFS{}, env(map[string]string{"KK_NO_DEFAULT_KEYS": "maybe"}))
	_, err := l.Load("/c.toml")
	assert.ErrorIs(t, err, ErrInvalidEnv)

	l = NewLoaderWith(memFS{}, env(map[string]string{"KK_LOG_FORMAT": "xml"}))
	_, err = l.Load("/c.toml")
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestBindings(t *testing.T) {
	cfg, err := NewLoaderWith(memFS{"/c.toml": sampleTOML}, nil).Load("/c.toml")
	require.NoError(t, err)

	bindings, errs := cfg.Bindings()
	require.Empty(t, errs)

	defaults := keymap.DefaultBindings()
	require.Len(t, bindings, len(defaults)+5)
	assert.Equal(t, defaults, bindings[:len(defaults)])

	user := bindings[len(defaults):]
	assert.Equal(t, mode.Normal, user[0].Mode)
	assert.Equal(t, "space a", user[0].Keys)
	assert.Equal(t, "/c.toml: bind[0].keys", user[0].Source)
	assert.Equal(t, "<any>", user[1].Keys)

	// keys tables sorted by mode name then sequence
	assert.Equal(t, []string{"C-s", "space b", "g g"}, []string{user[2].Keys, user[3].Keys, user[4].Keys})
	assert.Equal(t, mode.Insert, user[2].Mode)
	assert.Equal(t, mode.Normal, user[4].Mode)
}

func TestBindingsUnknownMode(t *testing.T) {
	cfg := Default()
	cfg.NoDefaultKeys = true
	cfg.Bind = []BindEntry{{Mode: "replace", Keys: "a", Commands: []string{"nop"}}}
	cfg.Keys = map[string]map[string][]string{"select": {"a": {"nop"}}, "visual": {"a": {"nop"}}}

	bindings, errs := cfg.Bindings()
	require.Len(t, errs, 2)
	assert.ErrorIs(t, errs[0], mode.ErrUnknown)
	assert.Contains(t, errs[0].Error(), "bind[0].mode")
	assert.Contains(t, errs[1].Error(), "keys.select")
	require.Len(t, bindings, 1)
	assert.Equal(t, mode.Visual, bindings[0].Mode)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("KK_CONFIG", "/etc/kk.toml")
	assert.Equal(t, "/etc/kk.toml", DefaultPath())

	t.Setenv("KK_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "kk", "config.toml"), DefaultPath())
}
