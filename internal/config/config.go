package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/luuuc/readmegen/internal/readme"
	"gopkg.in/yaml.v3"
)

const (
	ConfigFile    = ".readmegen.yaml"
	DefaultOutput = "README.md"
)

// Interface values select how the wizard asks questions.
const (
	InterfaceAuto  = "auto"
	InterfaceTUI   = "tui"
	InterfacePlain = "plain"
)

// Config represents the readmegen configuration
type Config struct {
	Version   int            `yaml:"version"`
	Output    string         `yaml:"output"`
	Interface string         `yaml:"interface"`
	License   LicenseConfig  `yaml:"license"`
	Defaults  DefaultsConfig `yaml:"defaults"`
}

// LicenseConfig holds the proprietary license notice settings
type LicenseConfig struct {
	Holder string `yaml:"holder"`
}

// DefaultsConfig holds the pre-selected wizard choices.
// Values are option keys such as "developers" or full labels.
type DefaultsConfig struct {
	Audience string `yaml:"audience"`
	Tone     string `yaml:"tone"`
	Detail   string `yaml:"detail"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version:   1,
		Output:    DefaultOutput,
		Interface: InterfaceAuto,
		License: LicenseConfig{
			Holder: readme.DefaultHolder,
		},
		Defaults: DefaultsConfig{
			Audience: "developers",
			Tone:     "friendly",
			Detail:   "standard",
		},
	}
}

// Path returns the config file path inside dir
func Path(dir string) string {
	return filepath.Join(dir, ConfigFile)
}

// Exists checks if dir holds a config file
func Exists(dir string) bool {
	info, err := os.Stat(Path(dir))
	return err == nil && !info.IsDir()
}

// Load loads the configuration from dir/.readmegen.yaml.
// A missing file is not an error: the defaults are returned.
func Load(dir string) (*Config, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Apply defaults for missing values
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", ConfigFile, err)
	}

	return &cfg, nil
}

// applyDefaults fills in missing configuration with sensible defaults
func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Version == 0 {
		c.Version = defaults.Version
	}
	if c.Output == "" {
		c.Output = defaults.Output
	}
	if c.Interface == "" {
		c.Interface = defaults.Interface
	}
	if c.License.Holder == "" {
		c.License.Holder = defaults.License.Holder
	}
	if c.Defaults.Audience == "" {
		c.Defaults.Audience = defaults.Defaults.Audience
	}
	if c.Defaults.Tone == "" {
		c.Defaults.Tone = defaults.Defaults.Tone
	}
	if c.Defaults.Detail == "" {
		c.Defaults.Detail = defaults.Defaults.Detail
	}
}

// Validate checks the interface mode and the default choices.
func (c *Config) Validate() error {
	switch c.Interface {
	case InterfaceAuto, InterfaceTUI, InterfacePlain:
	default:
		return fmt.Errorf("unknown interface '%s' (valid: auto, tui, plain)", c.Interface)
	}

	if _, err := readme.Resolve(readme.Audiences, c.Defaults.Audience); err != nil {
		return fmt.Errorf("defaults.audience: %w", err)
	}
	if _, err := readme.Resolve(readme.Tones, c.Defaults.Tone); err != nil {
		return fmt.Errorf("defaults.tone: %w", err)
	}
	if _, err := readme.Resolve(readme.Details, c.Defaults.Detail); err != nil {
		return fmt.Errorf("defaults.detail: %w", err)
	}

	return nil
}

// DefaultIndices returns the wizard positions of the default choices.
// Unknown values fall back to the first option.
func (c *Config) DefaultIndices() (audience, tone, detail int) {
	index := func(choices []readme.Choice, s string) int {
		if i := readme.Index(choices, s); i >= 0 {
			return i
		}
		return 0
	}
	return index(readme.Audiences, c.Defaults.Audience),
		index(readme.Tones, c.Defaults.Tone),
		index(readme.Details, c.Defaults.Detail)
}

// Save saves the configuration to dir/.readmegen.yaml
func (c *Config) Save(dir string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
