package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/benjaminjkraft/csp-wordle/internal/solver"
)

// Config holds everything the CLI needs to set up games.
type Config struct {
	// Game rules
	WordLength int  `yaml:"word_length"`
	MaxGuesses int  `yaml:"max_guesses"`
	HardMode   bool `yaml:"hard_mode"`

	// Strategy is one of solver.Names().
	Strategy string `yaml:"strategy"`

	// Word lists. AnswersPath defaults to WordsPath when empty.
	WordsPath   string `yaml:"words_path"`
	AnswersPath string `yaml:"answers_path"`
	UseSample   bool   `yaml:"use_sample"`

	Simulation SimulationConfig `yaml:"simulation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SimulationConfig controls batch evaluation.
type SimulationConfig struct {
	Limit    int   `yaml:"limit"`   // 0 means every answer
	Trials   int   `yaml:"trials"`  // games per answer
	Workers  int   `yaml:"workers"` // 0 means GOMAXPROCS
	Seed     int64 `yaml:"seed"`
	Progress bool  `yaml:"progress"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	JSON  bool   `yaml:"json"`
}

func DefaultConfig() *Config {
	return &Config{
		WordLength: 5,
		MaxGuesses: 6,
		Strategy:   "csp",
		WordsPath:  "valid_words.txt",
		Simulation: SimulationConfig{
			Trials:   1,
			Seed:     1,
			Progress: true,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML config on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

// Resolve loads path if given, otherwise the defaults, with environment
// overrides applied either way.
func Resolve(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	cfg := DefaultConfig()
	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config dir: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("WORDLE_WORDS"); v != "" {
		c.WordsPath = v
	}
	if v := os.Getenv("WORDLE_ANSWERS"); v != "" {
		c.AnswersPath = v
	}
	if v := os.Getenv("WORDLE_STRATEGY"); v != "" {
		c.Strategy = v
	}
	if v := os.Getenv("WORDLE_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.WordLength = n
		}
	}
}

// Answers is the path targets are drawn from.
func (c *Config) Answers() string {
	if c.AnswersPath != "" {
		return c.AnswersPath
	}
	return c.WordsPath
}

func (c *Config) Validate() error {
	if c.WordLength < 1 {
		return fmt.Errorf("word_length must be positive, got %d", c.WordLength)
	}
	if c.MaxGuesses < 1 {
		return fmt.Errorf("max_guesses must be positive, got %d", c.MaxGuesses)
	}
	if _, err := solver.Lookup(c.Strategy); err != nil {
		return err
	}
	if c.WordsPath == "" && !c.UseSample {
		return fmt.Errorf("words_path is required")
	}
	if c.Simulation.Limit < 0 {
		return fmt.Errorf("simulation.limit must not be negative, got %d", c.Simulation.Limit)
	}
	if c.Simulation.Trials < 1 {
		return fmt.Errorf("simulation.trials must be positive, got %d", c.Simulation.Trials)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("simulation.workers must not be negative, got %d", c.Simulation.Workers)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging.level %q", c.Logging.Level)
	}
	return nil
}
