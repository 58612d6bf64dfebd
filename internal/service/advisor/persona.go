package advisor

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed config/persona.yaml
var personaFile embed.FS

// Persona is the fixed style instruction and failure copy for the
// advisory endpoint, loaded from the embedded YAML at startup.
type Persona struct {
	SystemPrompt string `yaml:"system_prompt"`
	Model        string `yaml:"model"`
	MaxTokens    int64  `yaml:"max_tokens"`
	Fallback     string `yaml:"fallback"`
}

// LoadPersona reads the embedded persona configuration.
func LoadPersona() (*Persona, error) {
	data, err := personaFile.ReadFile("config/persona.yaml")
	if err != nil {
		return nil, fmt.Errorf("read persona config: %w", err)
	}

	var p Persona
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshal persona config: %w", err)
	}
	if p.SystemPrompt == "" || p.Fallback == "" {
		return nil, fmt.Errorf("persona config incomplete")
	}
	if p.MaxTokens <= 0 {
		p.MaxTokens = 1024
	}

	return &p, nil
}
