package config

import (
	validator "gopkg.in/go-playground/validator.v9"

	"github.com/neuronlabs/fluent/errors"
	"github.com/neuronlabs/fluent/errors/class"
	"github.com/neuronlabs/fluent/log"
	"github.com/neuronlabs/fluent/namer"
)

var validate = validator.New()

// Controller defines the configuration for the fluent model map.
type Controller struct {
	// NamingConvention is the naming convention used while preparing the model
	// field and collection names. Allowed values are:
	// 'snake', 'kebab', 'camel', 'lower_camel'.
	NamingConvention string `mapstructure:"naming_convention" validate:"oneof=snake kebab camel lower_camel"`

	// CollectionSingular disables the plural form of the model collection names.
	CollectionSingular bool `mapstructure:"collection_singular"`

	// LogLevel defines the library logging level.
	LogLevel string `mapstructure:"log_level" validate:"omitempty,oneof=debug3 debug2 debug info warning error critical"`

	// Models contains the per model configurations, keyed by the collection name.
	Models map[string]*ModelConfig `mapstructure:"models"`
}

// Default returns the default controller configuration.
func Default() *Controller {
	return &Controller{
		NamingConvention: "snake",
		LogLevel:         "info",
	}
}

// NamerFunc returns the namer function matched with the config naming convention.
// Unsupported conventions fall back to the snake case namer.
func (c *Controller) NamerFunc() namer.Namer {
	switch c.NamingConvention {
	case "snake":
		return namer.NamingSnake
	case "kebab":
		return namer.NamingKebab
	case "camel":
		return namer.NamingCamel
	case "lower_camel":
		return namer.NamingLowerCamel
	}
	log.Warningf("Unsupported naming convention: '%s' - using the snake case namer", c.NamingConvention)
	return namer.NamingSnake
}

// Validate checks the controller config values.
func (c *Controller) Validate() error {
	switch c.NamingConvention {
	case "snake", "kebab", "camel", "lower_camel":
	default:
		return errors.Newf(class.ConfigValueNamingConvention, "unsupported naming convention: '%s'", c.NamingConvention)
	}
	if err := validate.Struct(c); err != nil {
		return errors.Newf(class.ConfigValueInvalid, "validating the controller config failed: %v", err)
	}
	return nil
}
