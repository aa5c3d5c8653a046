package prompts

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a templates override file. The file must define all five
// system prompts; partial overrides are rejected so a typo in a key cannot
// silently fall back to a default.
func Load(filename string) (*Templates, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading prompts file %s: %w", filename, err)
	}

	var templates Templates
	if err := yaml.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("parsing prompts file %s: %w", filename, err)
	}

	if err := validate(&templates); err != nil {
		return nil, fmt.Errorf("validating prompts file %s: %w", filename, err)
	}

	return &templates, nil
}

func validate(templates *Templates) error {
	required := []struct {
		key   string
		value string
	}{
		{"greeting", templates.Greeting},
		{"collect_info", templates.CollectInfo},
		{"generate_questions", templates.GenerateQuestions},
		{"evaluate_answer", templates.EvaluateAnswer},
		{"farewell", templates.Farewell},
	}

	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("prompt %q must not be empty", field.key)
		}
	}

	return nil
}
