package fluent

import (
	"github.com/neuronlabs/fluent/config"
	"github.com/neuronlabs/fluent/log"
	"github.com/neuronlabs/fluent/mapping"
)

// New creates a new model map for the provided controller config 'cfg'.
// A nil config falls back to the default configuration. The config's log
// level gets applied to the library logger.
func New(cfg *config.Controller) (*mapping.ModelMap, error) {
	if cfg == nil {
		cfg = config.ReadDefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.LogLevel != "" {
		if err := log.SetLevel(log.ParseLevel(cfg.LogLevel)); err != nil {
			return nil, err
		}
	}
	return mapping.NewModelMap(cfg.NamerFunc(), cfg), nil
}

// Default creates a new model map with the default configuration.
func Default() *mapping.ModelMap {
	return mapping.NewModelMap(nil, nil)
}
