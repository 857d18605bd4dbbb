// Package config loads persisted parameter documents and sweep scenarios.
// The model packages never touch storage; everything file-shaped lives here.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/powersat/orbitalcost/pkg/params"
	"github.com/powersat/orbitalcost/pkg/sweep"
)

// LoadParameters reads a parameter document (JSON, YAML or TOML, by
// extension) and merges it over the canonical defaults. Keys match the
// ParameterSet JSON contract; unknown keys are an error so typos surface
// instead of silently keeping a default.
func LoadParameters(path string) (params.ParameterSet, error) {
	p := params.Default()

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return p, fmt.Errorf("read parameters %s: %w", path, err)
	}

	// viper lowercases keys; map them back to the canonical camelCase names.
	canonical := make(map[string]string)
	for _, m := range params.Metadata() {
		canonical[strings.ToLower(m.Key)] = m.Key
	}

	for _, key := range v.AllKeys() {
		name, ok := canonical[key]
		if !ok {
			return p, fmt.Errorf("unknown parameter %q in %s", key, path)
		}
		var err error
		p, err = params.Apply(p, name, v.GetFloat64(key))
		if err != nil {
			return p, fmt.Errorf("apply %s: %w", path, err)
		}
	}

	return p, nil
}

// Scenario is a sweep definition file: the grid plus runner settings.
type Scenario struct {
	Workers int        `yaml:"workers"`
	Grid    sweep.Grid `yaml:"grid"`
}

// LoadScenario parses a YAML sweep scenario.
func LoadScenario(path string) (Scenario, error) {
	var s Scenario
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read scenario %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if len(s.Grid.Axes) == 0 {
		return s, fmt.Errorf("scenario %s defines no sweep axes", path)
	}
	return s, nil
}
