package planner

import (
	"encoding/json"
	"errors"
	"os"
)

const defaultModel = "gpt-4o-mini"

// Config is the on-disk configuration.
type Config struct {
	LLM        LLMSettings `json:"llm"`
	ServerAddr string      `json:"server_addr,omitempty"`
}

// LoadConfig reads JSON config from disk. A missing file yields the default
// configuration (OpenAI with the key taken from the environment), so the CLI
// works with nothing but OPENAI_API_KEY set.
func LoadConfig(path string) (Config, error) {
	cfg := Config{LLM: LLMSettings{Provider: "openai", Model: defaultModel}}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, err
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
		if cfg.LLM.Provider == "" {
			cfg.LLM.Provider = "openai"
		}
		if cfg.LLM.Model == "" {
			cfg.LLM.Model = defaultModel
		}
	}

	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	return cfg, nil
}
