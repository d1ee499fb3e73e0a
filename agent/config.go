package agent

// DefaultModel is the model used when configuration names none.
const DefaultModel = "claude-sonnet-4-5-20250929"

// Config holds remote endpoint parameters.
type Config struct {
	Model   string `json:"model,omitempty" mapstructure:"model"`
	APIKey  string `json:"-" mapstructure:"api_key"`
	BaseURL string `json:"base_url,omitempty" mapstructure:"base_url"`
}

// DefaultConfig returns the default agent configuration. The API key is
// never defaulted; it must come from the environment.
func DefaultConfig() Config {
	return Config{
		Model: DefaultModel,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Model != "" {
		c.Model = source.Model
	}
	if source.APIKey != "" {
		c.APIKey = source.APIKey
	}
	if source.BaseURL != "" {
		c.BaseURL = source.BaseURL
	}
}

// Validate reports configuration problems detectable without a network call.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Model == "" {
		return ErrMissingModel
	}
	return nil
}
