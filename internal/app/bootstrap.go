package app

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/kk-editor/kk/internal/command"
	"github.com/kk-editor/kk/internal/config"
	"github.com/kk-editor/kk/internal/input/keymap"
	"github.com/kk-editor/kk/internal/input/mode"
	"github.com/kk-editor/kk/internal/plugin/lua"
)

// bootstrapper handles component initialization with proper cleanup on failure.
type bootstrapper struct {
	e         *Editor
	initOrder []string
}

// newBootstrapper creates a new bootstrapper for the editor.
func newBootstrapper(e *Editor) *bootstrapper {
	return &bootstrapper{e: e, initOrder: make([]string, 0, 4)}
}

// bootstrap initializes all components in dependency order.
// On failure, it cleans up already-initialized components.
func (b *bootstrapper) bootstrap() error {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"config", b.initConfig},
		{"logging", b.initLogging},
		{"commands", b.initCommands},
		{"keymap", b.initKeymap},
	}
	for _, s := range steps {
		if err := s.fn(); err != nil {
			b.cleanup()
			return &InitError{Component: s.name, Err: err}
		}
		b.initOrder = append(b.initOrder, s.name)
	}
	return nil
}

// cleanup releases what earlier steps acquired.
func (b *bootstrapper) cleanup() {
	_ = b.e.Close()
}

func (b *bootstrapper) initConfig() error {
	path := b.e.opts.ConfigPath
	if path == "" {
		path = config.DefaultPath()
		b.e.opts.ConfigPath = path
	}
	loader := b.e.opts.Loader
	if loader == nil {
		loader = config.NewLoader()
		b.e.opts.Loader = loader
	}

	cfg, err := loader.Load(path)
	if err != nil {
		return err
	}
	b.e.cfg = cfg
	return nil
}

func (b *bootstrapper) initLogging() error {
	cfg := b.e.cfg

	levelName := cfg.Log.Level
	if b.e.opts.LogLevel != "" {
		levelName = b.e.opts.LogLevel
	}
	level, err := ParseLogLevel(levelName)
	if err != nil {
		return err
	}

	out := b.e.opts.LogOutput
	if out == nil {
		f, err := openLogFile(cfg.Log.File)
		if err != nil {
			return err
		}
		b.e.logCloser = f
		out = f
	}

	b.e.log = NewLogger(LoggerConfig{Level: level, Format: cfg.Log.Format, Output: out})
	b.e.log.Info().
		Str("config", b.e.opts.ConfigPath).
		Bool("config_found", cfg.Path() != "").
		Stringer("level", level).
		Msg("starting")
	return nil
}

func (b *bootstrapper) initCommands() error {
	log := WithComponent(b.e.log, "commands")

	reg := command.NewRegistry()
	if err := reg.Register(command.Builtins()...); err != nil {
		return err
	}

	host := lua.NewHost(reg)
	b.e.scripts = host
	scripts := b.e.cfg.ScriptPaths()
	if err := host.Load(scripts...); err != nil {
		return err
	}
	for _, c := range host.Commands() {
		log.Debug().Str("command", c.Name).Msg("script command registered")
	}

	reg.Freeze()
	b.e.registry = reg
	log.Info().Int("commands", reg.Count()).Int("scripts", len(scripts)).Msg("registry ready")
	return nil
}

func (b *bootstrapper) initKeymap() error {
	trees, report := buildTrees(b.e.cfg, b.e.registry)
	b.e.report = report
	logReport(WithComponent(b.e.log, "keymap"), report)

	km := keymap.New()
	km.Publish(trees)
	if err := km.Validate(mode.All()...); err != nil {
		return err
	}
	b.e.keymap = km
	return nil
}

// buildTrees turns a configuration into per-mode trees. Entries naming
// unknown modes are added to the report alongside the keymap's own errors.
func buildTrees(cfg *config.Config, reg *command.Registry) (map[mode.Mode]*keymap.Tree, *keymap.Report) {
	bindings, errs := cfg.Bindings()
	trees, report := keymap.Build(bindings, reg)
	report.Errors = append(errs, report.Errors...)
	return trees, report
}

func logReport(log zerolog.Logger, report *keymap.Report) {
	for _, err := range report.Errors {
		var be *keymap.BindError
		if errors.As(err, &be) {
			log.Warn().Err(be.Err).
				Str("source", be.Binding.Source).
				Stringer("mode", be.Binding.Mode).
				Str("keys", be.Binding.Keys).
				Msg("binding skipped")
			continue
		}
		log.Warn().Err(err).Msg("binding skipped")
	}
	for _, o := range report.Overrides {
		log.Warn().
			Str("source", o.Binding.Source).
			Stringer("mode", o.Binding.Mode).
			Str("keys", o.Binding.Keys).
			Strs("previous", o.Previous).
			Strs("commands", o.Binding.Commands).
			Msg("binding replaced")
	}
}
