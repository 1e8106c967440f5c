package llm

import "os"

const (
	defaultOpenAIModel = "gpt-4o-mini"
	defaultGeminiModel = "gemini-2.0-flash"
)

// Config selects and configures a completion provider.
type Config struct {
	Provider string
	OpenAI   OpenAIConfig
	Gemini   GeminiConfig
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// ConfigFromEnv builds a Config from environment variables.
// LLM_PROVIDER defaults to "openai".
func ConfigFromEnv() Config {
	return Config{
		Provider: getEnv("LLM_PROVIDER", "openai"),
		OpenAI: OpenAIConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			Model:   getEnv("OPENAI_MODEL", defaultOpenAIModel),
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
		},
		Gemini: GeminiConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  getEnv("GEMINI_MODEL", defaultGeminiModel),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
