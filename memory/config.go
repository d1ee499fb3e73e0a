package memory

// Config holds context note store parameters.
type Config struct {
	Path string `json:"path,omitempty" mapstructure:"path"` // Notes directory; empty disables notes.
}

// DefaultConfig returns the default configuration (notes disabled).
func DefaultConfig() Config {
	return Config{}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Path != "" {
		c.Path = source.Path
	}
}

// NewStore creates a Store from configuration. Returns a nil Store when Path
// is empty.
func NewStore(cfg *Config) (Store, error) {
	if cfg.Path == "" {
		return nil, nil
	}
	return NewFileStore(cfg.Path), nil
}
