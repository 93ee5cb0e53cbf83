package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// Params describes one benchmark workload: how many sheets to create and the
// grid size of each sheet. Zero or negative values are allowed and simply
// produce empty output.
type Params struct {
	RowMax int `yaml:"row_max"`
	ColMax int `yaml:"col_max"`
	Sheets int `yaml:"sheets"`
}

const (
	DefaultRowMax = 4000
	DefaultColMax = 50
	DefaultSheets = 1
)

// DefaultParams returns the standard workload of 1 sheet with 4000x50 cells.
func DefaultParams() Params {
	return Params{
		RowMax: DefaultRowMax,
		ColMax: DefaultColMax,
		Sheets: DefaultSheets,
	}
}

// WithArgs overrides params from up to three positional arguments, in order
// row_max, col_max, sheets. Missing arguments keep their current value.
func (p Params) WithArgs(args []string) (Params, error) {
	if len(args) > 3 {
		return p, fmt.Errorf("too many arguments: expected at most 3, got %d", len(args))
	}

	fields := []struct {
		name string
		dst  *int
	}{
		{"row_max", &p.RowMax},
		{"col_max", &p.ColMax},
		{"sheets", &p.Sheets},
	}

	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return p, fmt.Errorf("invalid %s %q: %w", fields[i].name, arg, err)
		}
		*fields[i].dst = n
	}
	return p, nil
}

// ParamsFromArgs builds a workload from positional arguments on top of the
// built-in defaults.
func ParamsFromArgs(args []string) (Params, error) {
	return DefaultParams().WithArgs(args)
}

// LoadPresetFile reads a YAML preset overriding the built-in defaults. Fields
// absent from the file keep their default value.
func LoadPresetFile(path string) (Params, error) {
	p := DefaultParams()

	raw, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read preset file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("parse preset file %s: %w", path, err)
	}
	return p, nil
}
