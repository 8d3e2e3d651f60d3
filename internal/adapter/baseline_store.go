package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "gooze.dev/pkg/preflight/internal/model"
)

// BaselineFileName is the file the baseline is written to inside the output directory.
const BaselineFileName = "baseline.yaml"

// BaselineStore persists baseline results for downstream consumers.
type BaselineStore interface {
	SaveBaseline(dir m.Path, baseline m.BaselineRunResult) (m.Path, error)
	LoadBaseline(dir m.Path) (m.BaselineRunResult, error)
}

// YAMLBaselineStore stores baselines as YAML files.
type YAMLBaselineStore struct{}

// NewYAMLBaselineStore constructs a YAMLBaselineStore.
func NewYAMLBaselineStore() *YAMLBaselineStore {
	return &YAMLBaselineStore{}
}

// SaveBaseline writes baseline to dir/baseline.yaml and returns the file path.
func (s *YAMLBaselineStore) SaveBaseline(dir m.Path, baseline m.BaselineRunResult) (m.Path, error) {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return "", fmt.Errorf("create output directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(baseline)
	if err != nil {
		return "", fmt.Errorf("encode baseline: %w", err)
	}

	path := filepath.Join(string(dir), BaselineFileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write baseline %s: %w", path, err)
	}

	return m.Path(path), nil
}

// LoadBaseline reads dir/baseline.yaml.
func (s *YAMLBaselineStore) LoadBaseline(dir m.Path) (m.BaselineRunResult, error) {
	path := filepath.Join(string(dir), BaselineFileName)

	// #nosec G304 - path is inside the configured output directory
	data, err := os.ReadFile(path)
	if err != nil {
		return m.BaselineRunResult{}, fmt.Errorf("read baseline %s: %w", path, err)
	}

	var baseline m.BaselineRunResult
	if err := yaml.Unmarshal(data, &baseline); err != nil {
		return m.BaselineRunResult{}, fmt.Errorf("decode baseline %s: %w", path, err)
	}

	return baseline, nil
}
