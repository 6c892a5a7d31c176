package config

import (
	"fmt"
	"os"
)

const (
	defaultWillyWeatherBaseURL = "https://api.willyweather.com.au/v2"
	defaultOpenAIBaseURL       = "https://api.openai.com/v1"
	defaultOpenAIModel         = "gpt-4o"
)

// Config holds the process-wide configuration. It is read once at startup
// and never mutated afterwards.
type Config struct {
	WillyWeather struct {
		APIKey  string
		BaseURL string
	}

	OpenAI struct {
		APIKey  string
		BaseURL string
		Model   string
	}
}

// Load reads configuration from environment variables.
func Load() *Config {
	c := &Config{}

	c.WillyWeather.APIKey = os.Getenv("WILLYWEATHER_API_KEY")
	c.WillyWeather.BaseURL = getEnv("WILLYWEATHER_BASE_URL", defaultWillyWeatherBaseURL)

	c.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	c.OpenAI.BaseURL = getEnv("OPENAI_BASE_URL", defaultOpenAIBaseURL)
	c.OpenAI.Model = getEnv("OPENAI_MODEL", defaultOpenAIModel)

	return c
}

// Validate checks that both required credentials are present. A missing
// credential is a terminal error for the whole session.
func (c *Config) Validate() error {
	if c.WillyWeather.APIKey == "" {
		return fmt.Errorf("WillyWeather API key not found. Please add it to your .env file as WILLYWEATHER_API_KEY")
	}
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("OpenAI API key not found. Please add it to your .env file as OPENAI_API_KEY")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
