package leveling

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// CurveFile is the on-disk description of a progression curve.
// Exactly one of Tiers, Costs or Flat must be set.
type CurveFile struct {
	Name     string     `yaml:"name"`
	TailCost int64      `yaml:"tail_cost"`
	Tiers    []Tier     `yaml:"tiers,omitempty"`
	Costs    []int64    `yaml:"costs,omitempty"`
	Flat     *FlatTiers `yaml:"flat,omitempty"`
}

// FlatTiers describes Levels tiers that all cost Cost
type FlatTiers struct {
	Levels int   `yaml:"levels"`
	Cost   int64 `yaml:"cost"`
}

// ParseCurve decodes a YAML curve definition and validates the resulting table
func ParseCurve(data []byte) (*Table, error) {
	var cf CurveFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse curve: %w", err)
	}
	return cf.Table()
}

// Table builds and validates the table described by the file
func (cf CurveFile) Table() (*Table, error) {
	set := 0
	if len(cf.Tiers) > 0 {
		set++
	}
	if len(cf.Costs) > 0 {
		set++
	}
	if cf.Flat != nil {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("%w: curve %q must define exactly one of tiers, costs or flat", ErrInvalidTable, cf.Name)
	}

	switch {
	case len(cf.Tiers) > 0:
		return NewTable(cf.Tiers, cf.TailCost)
	case len(cf.Costs) > 0:
		return NewTableFromCosts(cf.Costs, cf.TailCost)
	default:
		if cf.Flat.Levels <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidTable, ErrMsgEmptyTable)
		}
		costs := make([]int64, cf.Flat.Levels)
		for i := range costs {
			costs[i] = cf.Flat.Cost
		}
		return NewTableFromCosts(costs, cf.TailCost)
	}
}

// LoadCurveFile reads a YAML curve definition from disk
func LoadCurveFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read curve file %s: %w", path, err)
	}
	t, err := ParseCurve(data)
	if err != nil {
		return nil, fmt.Errorf("curve file %s: %w", path, err)
	}
	return t, nil
}

// ResolveCurve accepts a built-in curve name or a path to a .yaml/.yml file
func ResolveCurve(nameOrPath string) (*Table, error) {
	lower := strings.ToLower(nameOrPath)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return LoadCurveFile(nameOrPath)
	}
	return TableByName(lower)
}
