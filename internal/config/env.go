package config

import (
	"fmt"
	"strings"
)

// EnvPrefix is the prefix of environment variables read by the loader.
const EnvPrefix = "KK_"

// envSetters maps environment variables to the settings they override.
var envSetters = map[string]func(c *Config, val string) error{
	EnvPrefix + "LOG_LEVEL": func(c *Config, val string) error {
		c.Log.Level = strings.ToLower(val)
		return nil
	},
	EnvPrefix + "LOG_FORMAT": func(c *Config, val string) error {
		c.Log.Format = strings.ToLower(val)
		return nil
	},
	EnvPrefix + "LOG_FILE": func(c *Config, val string) error {
		c.Log.File = expandHome(val)
		return nil
	},
	EnvPrefix + "NO_DEFAULT_KEYS": func(c *Config, val string) error {
		b, err := parseBool(val)
		if err != nil {
			return err
		}
		c.NoDefaultKeys = b
		return nil
	},
}

// EnvVars returns the names of the environment variables the loader reads.
func EnvVars() []string {
	return []string{
		EnvPrefix + "CONFIG",
		EnvPrefix + "LOG_LEVEL",
		EnvPrefix + "LOG_FORMAT",
		EnvPrefix + "LOG_FILE",
		EnvPrefix + "NO_DEFAULT_KEYS",
	}
}

// applyEnv overrides settings from the environment.
// Empty values are treated as set.
func applyEnv(c *Config, lookup func(string) (string, bool)) error {
	for name, set := range envSetters {
		val, ok := lookup(name)
		if !ok {
			continue
		}
		if err := set(c, val); err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidEnv, name, val, err)
		}
	}
	return nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0", "":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean")
}
