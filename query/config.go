package query

const (
	defaultMaxTokens = 1024

	DefaultSystemPrompt = "You are a helpful travel planning assistant specializing in European destinations. " +
		"Provide concise, practical travel advice. You provide detailed recommendations for " +
		"sightseeing, dining, and local experiences in Paris. Provide concise and relevant information."
)

// DefaultPrompts are the independent Paris queries run by the demo. Each is
// sent on its own; none can see another's answer.
var DefaultPrompts = []string{
	"I'm planning a 5-day trip to Paris. What are the must-see attractions?",
	"What are the best museums to visit in Paris for art lovers?",
	"What's the best way to get from Charles de Gaulle Airport to central Paris?",
	"Can you recommend 3 authentic French restaurants in Paris for a romantic dinner?",
	"Plan a perfect day in Paris starting at the Eiffel Tower. What should I do?",
}

// Config holds stateless runner parameters.
type Config struct {
	SystemPrompt string   `json:"system_prompt,omitempty" mapstructure:"system_prompt"`
	MaxTokens    int      `json:"max_tokens,omitempty" mapstructure:"max_tokens"`
	Prompts      []string `json:"prompts,omitempty" mapstructure:"prompts"`
}

// DefaultConfig returns the Paris specialist persona and demo prompts.
func DefaultConfig() Config {
	prompts := make([]string, len(DefaultPrompts))
	copy(prompts, DefaultPrompts)

	return Config{
		SystemPrompt: DefaultSystemPrompt,
		MaxTokens:    defaultMaxTokens,
		Prompts:      prompts,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.SystemPrompt != "" {
		c.SystemPrompt = source.SystemPrompt
	}
	if source.MaxTokens > 0 {
		c.MaxTokens = source.MaxTokens
	}
	if len(source.Prompts) > 0 {
		c.Prompts = source.Prompts
	}
}
