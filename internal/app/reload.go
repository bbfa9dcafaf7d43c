package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/kk-editor/kk/internal/config/watcher"
	"github.com/kk-editor/kk/internal/input/keymap"
	"github.com/kk-editor/kk/internal/input/mode"
)

// Reload rereads the configuration file and publishes the resulting trees.
// Commands come from the registry built at startup, so new scripts need a
// restart. If the file cannot be read or a mode would be left without
// bindings the current trees stay in place and the error is returned.
// Reload is safe to call while the event loop dispatches keys; a chord
// already in progress completes against the trees it started with.
func (e *Editor) Reload() error {
	log := WithComponent(e.log, "reload")

	cfg, err := e.opts.Loader.Load(e.opts.ConfigPath)
	if err != nil {
		log.Error().Err(err).Msg("reload failed")
		return NewComponentError("reload", "load config", err)
	}

	trees, report := buildTrees(cfg, e.registry)
	logReport(log, report)
	for _, m := range mode.All() {
		if _, ok := trees[m]; !ok {
			err := NewComponentError("reload", "build keymap", fmt.Errorf("%w: %s", keymap.ErrNoTree, m))
			log.Error().Err(err).Msg("reload failed")
			return err
		}
	}

	e.keymap.Publish(trees)
	log.Info().
		Int("errors", len(report.Errors)).
		Int("overrides", len(report.Overrides)).
		Msg("bindings reloaded")
	return nil
}

// startWatcher watches the configuration file and reloads it on change.
// It returns a function that stops the watcher.
func (e *Editor) startWatcher(ctx context.Context) func() {
	if e.opts.NoWatch {
		return func() {}
	}
	log := WithComponent(e.log, "watcher")

	w, err := watcher.New(watcher.WithErrorHandler(func(err error) {
		log.Warn().Err(err).Msg("watch error")
	}))
	if err != nil {
		log.Warn().Err(err).Msg("live reload disabled")
		return func() {}
	}
	if err := w.Watch(e.opts.ConfigPath); err != nil {
		log.Warn().Err(err).Str("path", e.opts.ConfigPath).Msg("live reload disabled")
		_ = w.Stop()
		return func() {}
	}
	screen := e.screen
	w.OnChange(func(ev watcher.Event) {
		log.Debug().Str("path", ev.Path).Stringer("op", ev.Op).Msg("config changed")
		notifyReload(screen, e.Reload())
	})

	e.watcher = w
	go func() {
		if err := w.Start(ctx); err != nil && !errors.Is(err, watcher.ErrClosed) {
			log.Warn().Err(err).Msg("watcher stopped")
		}
	}()
	log.Info().Str("path", e.opts.ConfigPath).Msg("watching config")

	return func() {
		_ = w.Stop()
		e.watcher = nil
	}
}

// notifyReload posts the reload outcome to the event loop.
func notifyReload(screen Screen, err error) {
	if screen == nil {
		return
	}
	msg := "config reloaded"
	if err != nil {
		msg = "config reload failed: " + err.Error()
	}
	_ = screen.Notify(msg)
}
