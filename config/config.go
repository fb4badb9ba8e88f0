package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds everything the app needs at startup. API keys are taken from the
// environment (optionally via a .env file); the YAML file only carries the
// non-secret knobs and may reference env vars with ${VAR} syntax.
type Config struct {
	LLM        LLMConfig    `yaml:"llm"`
	Search     SearchConfig `yaml:"search"`
	StatePath  string       `yaml:"state_path"`
	ServerAddr string       `yaml:"server_addr"`
	LogLevel   string       `yaml:"log_level"`
}

type LLMConfig struct {
	Provider    string  `yaml:"provider"`
	Model       string  `yaml:"model"`
	APIKey      string  `yaml:"api_key"`
	BaseURL     string  `yaml:"base_url"`
	Temperature float64 `yaml:"temperature"`
}

type SearchConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
}

// Load reads the optional YAML config at path and fills in defaults and secrets.
// A missing file is fine (env-only setup); a malformed file is not.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case os.IsNotExist(err):
		// env-only configuration
	default:
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg.setDefaults()
	cfg.fillSecretsFromEnv()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.LLM.Provider == "" {
		c.LLM.Provider = "gemini"
	}
	if c.LLM.Model == "" {
		switch c.LLM.Provider {
		case "gemini":
			c.LLM.Model = "gemini-2.5-flash"
		default:
			c.LLM.Model = "gpt-4o-mini"
		}
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.7
	}
	if c.Search.BaseURL == "" {
		c.Search.BaseURL = "https://api.tavily.com"
	}
	if c.Search.Timeout == 0 {
		c.Search.Timeout = 30 * time.Second
	}
	if c.StatePath == "" {
		c.StatePath = "pillar_state.json"
	}
	if c.ServerAddr == "" {
		c.ServerAddr = ":8080"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) fillSecretsFromEnv() {
	if c.LLM.APIKey == "" {
		switch c.LLM.Provider {
		case "gemini":
			c.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
		default:
			c.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	}
	if c.Search.APIKey == "" {
		c.Search.APIKey = os.Getenv("TAVILY_API_KEY")
	}
}

// Validate reports the fatal startup conditions: missing API keys.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		switch c.LLM.Provider {
		case "gemini":
			return fmt.Errorf("missing LLM API key: set GEMINI_API_KEY or llm.api_key")
		default:
			return fmt.Errorf("missing LLM API key: set OPENAI_API_KEY or llm.api_key")
		}
	}
	if c.Search.APIKey == "" {
		return fmt.Errorf("missing search API key: set TAVILY_API_KEY or search.api_key")
	}
	return nil
}
