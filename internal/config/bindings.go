package config

import (
	"fmt"
	"sort"

	"github.com/kk-editor/kk/internal/input/keymap"
	"github.com/kk-editor/kk/internal/input/mode"
)

// Bindings returns the bindings to load, in order: the defaults (unless
// disabled), then the [[bind]] list, then the [keys.<mode>] tables sorted by
// mode and key sequence. Entries naming an unknown mode are returned as
// errors and left out.
func (c *Config) Bindings() ([]keymap.Binding, []error) {
	var (
		out  []keymap.Binding
		errs []error
	)
	if !c.NoDefaultKeys {
		out = append(out, keymap.DefaultBindings()...)
	}

	source := c.path
	if source == "" {
		source = "config"
	}

	for i, b := range c.Bind {
		m, err := mode.Parse(b.Mode)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %s: %w", source, bindPath(i, "mode"), err))
			continue
		}
		out = append(out, keymap.Binding{
			Mode:     m,
			Keys:     b.Keys,
			Commands: b.Commands,
			Source:   fmt.Sprintf("%s: %s", source, bindPath(i, "keys")),
		})
	}

	modeNames := make([]string, 0, len(c.Keys))
	for name := range c.Keys {
		modeNames = append(modeNames, name)
	}
	sort.Strings(modeNames)

	for _, name := range modeNames {
		m, err := mode.Parse(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: keys.%s: %w", source, name, err))
			continue
		}
		table := c.Keys[name]
		seqs := make([]string, 0, len(table))
		for seq := range table {
			seqs = append(seqs, seq)
		}
		sort.Strings(seqs)
		for _, seq := range seqs {
			out = append(out, keymap.Binding{
				Mode:     m,
				Keys:     seq,
				Commands: table[seq],
				Source:   fmt.Sprintf("%s: keys.%s", source, name),
			})
		}
	}
	return out, errs
}
