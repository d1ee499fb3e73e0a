package session

const (
	defaultMaxTokens = 2048

	DefaultSystemPrompt = `You are an expert travel planning assistant who helps people plan amazing trips.

Your personality:
- Friendly, enthusiastic, and knowledgeable
- Ask clarifying questions to understand preferences
- Share insider tips and local recommendations
- Remember everything discussed in the conversation
- Build detailed plans based on accumulated information

Your approach:
1. Listen carefully to the traveler's needs and preferences
2. Ask follow-up questions to gather important details (budget, dates, interests, etc.)
3. Provide specific, actionable recommendations
4. Reference previous parts of the conversation naturally
5. Help make decisions when they're unsure
6. Be encouraging and excited about their trip!

Remember: You have conversation memory - always build on what you've learned about their preferences, constraints, and interests!`

	DefaultGreeting = "Hello! I see you're interested in planning a trip. " +
		"Tell me about what you have in mind - where are you thinking of going, " +
		"and what kind of experience are you looking for?"

	DefaultResetPrompt = "Hello! Let's start fresh. What trip would you like to plan?"
)

// Config holds the fixed parameters of a conversation. A Session copies its
// Config at construction; later changes to the caller's value have no effect.
type Config struct {
	SystemPrompt string `json:"system_prompt,omitempty" mapstructure:"system_prompt"`
	Greeting     string `json:"greeting,omitempty" mapstructure:"greeting"`
	ResetPrompt  string `json:"reset_prompt,omitempty" mapstructure:"reset_prompt"`
	MaxTokens    int    `json:"max_tokens,omitempty" mapstructure:"max_tokens"`
}

// DefaultConfig returns the trip planner persona and canned prompts.
func DefaultConfig() Config {
	return Config{
		SystemPrompt: DefaultSystemPrompt,
		Greeting:     DefaultGreeting,
		ResetPrompt:  DefaultResetPrompt,
		MaxTokens:    defaultMaxTokens,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.SystemPrompt != "" {
		c.SystemPrompt = source.SystemPrompt
	}
	if source.Greeting != "" {
		c.Greeting = source.Greeting
	}
	if source.ResetPrompt != "" {
		c.ResetPrompt = source.ResetPrompt
	}
	if source.MaxTokens > 0 {
		c.MaxTokens = source.MaxTokens
	}
}
