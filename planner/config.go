package planner

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/tailored-agentic-units/planner/agent"
	"github.com/tailored-agentic-units/planner/memory"
	"github.com/tailored-agentic-units/planner/query"
	"github.com/tailored-agentic-units/planner/session"
)

const (
	// CredentialEnv carries the API key for the remote model.
	CredentialEnv = "ANTHROPIC_API_KEY"
	// ConfigFileEnv optionally names a JSON or YAML config file.
	ConfigFileEnv = "PLANNER_CONFIG"
	// DefaultEnvFile is loaded at startup when present.
	DefaultEnvFile = ".env"

	envPrefix        = "PLANNER"
	defaultLogLevel  = "warn"
	defaultDemoPause = 2 * time.Second
)

// Keys that may be overridden from PLANNER_* environment variables, e.g.
// agent.model -> PLANNER_AGENT_MODEL.
var envKeys = []string{
	"agent.model",
	"agent.base_url",
	"session.system_prompt",
	"session.greeting",
	"session.reset_prompt",
	"session.max_tokens",
	"query.system_prompt",
	"query.max_tokens",
	"memory.path",
	"log_level",
	"demo_pause",
}

// Config holds initialization parameters for every subsystem.
type Config struct {
	Agent     agent.Config   `json:"agent" mapstructure:"agent"`
	Session   session.Config `json:"session" mapstructure:"session"`
	Query     query.Config   `json:"query" mapstructure:"query"`
	Memory    memory.Config  `json:"memory" mapstructure:"memory"`
	LogLevel  string         `json:"log_level,omitempty" mapstructure:"log_level"`
	DemoPause time.Duration  `json:"demo_pause,omitempty" mapstructure:"demo_pause"`
}

// DefaultConfig returns a Config with defaults for all subsystems.
func DefaultConfig() Config {
	return Config{
		Agent:     agent.DefaultConfig(),
		Session:   session.DefaultConfig(),
		Query:     query.DefaultConfig(),
		Memory:    memory.DefaultConfig(),
		LogLevel:  defaultLogLevel,
		DemoPause: defaultDemoPause,
	}
}

// Merge applies non-zero values from source into c, delegating to each
// subsystem's Merge method.
func (c *Config) Merge(source *Config) {
	c.Agent.Merge(&source.Agent)
	c.Session.Merge(&source.Session)
	c.Query.Merge(&source.Query)
	c.Memory.Merge(&source.Memory)

	if source.LogLevel != "" {
		c.LogLevel = source.LogLevel
	}
	if source.DemoPause > 0 {
		c.DemoPause = source.DemoPause
	}
}

// LoadConfig builds the configuration from, in increasing precedence: the
// defaults, configFile (optional), and the environment. envFile is loaded
// into the process environment first when it exists; variables already set
// are not overridden.
func LoadConfig(envFile, configFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	if err := v.BindEnv("agent.api_key", CredentialEnv); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", CredentialEnv, err)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var loaded Config
	if err := v.Unmarshal(&loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Merge(&loaded)

	// Merge skips zero values, but a zero pause is a valid explicit setting.
	if v.IsSet("demo_pause") {
		if loaded.DemoPause < 0 {
			return nil, fmt.Errorf("invalid demo_pause %v: must not be negative", loaded.DemoPause)
		}
		cfg.DemoPause = loaded.DemoPause
	}
	return &cfg, nil
}
