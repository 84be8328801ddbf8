package config

import (
	"github.com/spf13/viper"

	"github.com/neuronlabs/fluent/errors"
	"github.com/neuronlabs/fluent/errors/class"
	"github.com/neuronlabs/fluent/log"
)

var defaultConfig *Controller

// ViperSetDefaults sets the default values for the viper config.
func ViperSetDefaults(v *viper.Viper) {
	setDefaults(v)
}

// ReadConfig reads the config from the default 'config' file name.
func ReadConfig() (*Controller, error) {
	return readNamedConfig("config")
}

// ReadNamedConfig reads the config with the provided name.
func ReadNamedConfig(name string) (*Controller, error) {
	return readNamedConfig(name)
}

// ReadDefaultConfig reads the default configuration.
func ReadDefaultConfig() *Controller {
	return readDefaultConfig()
}

func readNamedConfig(name string) (*Controller, error) {
	v := viper.New()
	v.SetConfigName(name)

	v.AddConfigPath(".")
	v.AddConfigPath("configs")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Newf(class.ConfigReadFailed, "reading config: '%s' failed: %v", name, err)
	}

	c := &Controller{}
	if err := v.Unmarshal(c); err != nil {
		log.Debugf("Unmarshaling the controller config failed: %v", err)
		return nil, errors.Newf(class.ConfigReadFailed, "unmarshaling config: '%s' failed: %v", name, err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func readDefaultConfig() *Controller {
	if defaultConfig == nil {
		v := viper.New()
		setDefaults(v)

		c := &Controller{}
		if err := v.Unmarshal(c); err != nil {
			log.Debugf("Unmarshaling the default config failed: %v", err)
			panic(err)
		}
		defaultConfig = c
	}
	return defaultConfig
}

// Default values.
func setDefaults(v *viper.Viper) {
	keys := map[string]interface{}{
		"naming_convention":   "snake",
		"collection_singular": false,
		"log_level":           "info",
	}

	for k, value := range keys {
		v.SetDefault(k, value)
	}
}
