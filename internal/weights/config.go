package weights

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gsabatini/match-engine/internal/types"
)

// ConfigVersion is the weights override document version this build accepts.
const ConfigVersion = 1

// Config is a decoded weights override document. It names whole matrices to
// replace ("base" or a listening reason); matrices it does not name keep
// their built-in defaults. There is no per-weight delta form.
type Config struct {
	Version  int                           `json:"version"`
	Matrices map[string]map[string]float64 `json:"matrices"`
}

// LoadConfig reads and decodes a weights override file. Invariant validation
// happens in NewRegistryFromConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read weights config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse weights config %s: %w", path, err)
	}
	return &cfg, nil
}

// NewRegistryFromConfig builds a registry from the built-in defaults with the
// config's matrices applied on top. Any invalid matrix is a fatal
// configuration error; a nil config yields the default registry.
func NewRegistryFromConfig(cfg *Config) (*Registry, error) {
	if cfg == nil {
		return NewRegistry(), nil
	}
	if cfg.Version != ConfigVersion {
		return nil, fmt.Errorf("unsupported weights config version %d, want %d", cfg.Version, ConfigVersion)
	}
	base := defaultBase
	overrides := defaultOverrides()
	for name, raw := range cfg.Matrices {
		matrix, err := MatrixFromMap(raw)
		if err != nil {
			return nil, fmt.Errorf("matrix %q: %w", name, err)
		}
		if name == "base" {
			base = matrix
			continue
		}
		reason := types.ListeningReason(name)
		if types.NormalizeListeningReason(reason) != reason || reason == types.ReasonUnspecified {
			return nil, fmt.Errorf("matrix %q does not name base or a known listening reason", name)
		}
		overrides[reason] = matrix
	}
	return newRegistry(base, overrides)
}

// LoadRegistry is the one-call path used at startup: empty path returns the
// default registry, otherwise the file is loaded and applied.
func LoadRegistry(path string) (*Registry, error) {
	if path == "" {
		return NewRegistry(), nil
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return NewRegistryFromConfig(cfg)
}
