package policy

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultNeutralColors never count against the color match limit
var defaultNeutralColors = []string{"black", "white", "tan", "gray", "jeanblue"}

// StyleConfig holds the tunable style rules that are not per-run constraints
type StyleConfig struct {
	NeutralColors []string `yaml:"neutralColors"`
}

// DefaultStyleConfig returns the built-in style rules
func DefaultStyleConfig() *StyleConfig {
	return &StyleConfig{NeutralColors: append([]string(nil), defaultNeutralColors...)}
}

// LoadStyleConfig reads style rules from a YAML file. A missing file is not
// an error: the built-in defaults apply. A malformed file is fatal.
func LoadStyleConfig(path string) (*StyleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultStyleConfig(), nil
		}
		return nil, fmt.Errorf("failed to read style config: %w", err)
	}

	var config StyleConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse style config: %w", err)
	}
	if len(config.NeutralColors) == 0 {
		config.NeutralColors = append([]string(nil), defaultNeutralColors...)
	}

	log.Printf("✅ StyleConfig: Successfully loaded style rules from %s", path)
	return &config, nil
}
