package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	sim "github.com/counter-sim/counter-sim/sim"
)

// envPrefix namespaces every environment override, e.g. COUNTERSIM_COUNTERS=5.
const envPrefix = "COUNTERSIM_"

// loadConfigFile overlays the YAML file at path onto base.
// Uses strict field checking: a misspelled key is an error, not a silent default.
func loadConfigFile(path string, base sim.Config) (sim.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading config file: %w", err)
	}
	cfg := base
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return base, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// applyEnv overlays COUNTERSIM_* variables onto base. Unset variables leave
// the corresponding field untouched. environ may be nil to read the process
// environment.
func applyEnv(base sim.Config, environ map[string]string) (sim.Config, error) {
	cfg := base
	opts := env.Options{Prefix: envPrefix, Environment: environ}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return base, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// resolveConfig builds the effective configuration:
// defaults, then the config file (if any), then the environment.
// CLI flags are applied afterwards by the caller.
func resolveConfig(path string, environ map[string]string) (sim.Config, error) {
	cfg := sim.DefaultConfig()
	var err error
	if path != "" {
		if cfg, err = loadConfigFile(path, cfg); err != nil {
			return cfg, err
		}
	}
	return applyEnv(cfg, environ)
}

// marshalConfig renders cfg in the same YAML layout loadConfigFile accepts.
func marshalConfig(cfg sim.Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), nil
}
