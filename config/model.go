package config

// ModelConfig defines the single model configuration.
type ModelConfig struct {
	// Collection is the model's collection name.
	Collection string `mapstructure:"collection"`
}
