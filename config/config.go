// Package config loads vesselplan's on-disk configuration: the scenario to
// solve plus the ambient solver/logging/metrics/reference-data settings.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the root on-disk configuration shape.
type Config struct {
	Scenario ScenarioConfig `json:"scenario"`
	Solver   SolverConfig   `json:"solver"`
	Logging  LoggingConfig  `json:"logging"`
	Metrics  MetricsConfig  `json:"metrics"`
	RefData  RefDataConfig  `json:"ref_data"`
}

// Load reads a YAML or JSON config file at path, applies VP_-prefixed
// environment overrides, and fills in defaults. It does not itself build a
// model.Scenario: call cfg.Scenario.ToScenario with a resolved hotelling
// lookup once the caller has decided whether to honor RefData overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides, e.g. VP_SOLVER__PARALLEL=true.
	if err := k.Load(env.Provider("VP_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "vp_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Logging.SetDefaults()
	cfg.Solver.SetDefaults()
	cfg.Metrics.SetDefaults()
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Solver.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
