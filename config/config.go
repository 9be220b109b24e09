package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/CIDgravity/snakelet"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// GitHub refuses `first` arguments above this value
const githubMaxPageSize = 100

// config structure
type Config struct {
	API    APIConfig    `mapstructure:"API"`
	Github GithubConfig `mapstructure:"GITHUB"`
	Skills SkillsConfig `mapstructure:"SKILLS"`
	Logs   LogsConfig   `mapstructure:"LOGS"`
}

type APIConfig struct {
	ListenPort string `mapstructure:"ListenPort"`
}

type GithubConfig struct {
	Token           string `mapstructure:"Token"`
	GraphQLEndpoint string `mapstructure:"GraphQLEndpoint"`
	RestBaseURL     string `mapstructure:"RestBaseURL"` // only used to probe the rate limit at startup
	UserAgent       string `mapstructure:"UserAgent"`
}

type SkillsConfig struct {
	DefaultTop             uint `mapstructure:"DefaultTop"`
	MaxTop                 uint `mapstructure:"MaxTop"`
	LanguagesPerRepository int  `mapstructure:"LanguagesPerRepository"`
}

type LogsConfig struct {
	Level            string `mapstructure:"Level"` // error | warn | info | debug - case insensitive
	OutputLogsAsJSON bool   `mapstructure:"OutputLogsAsJSON"`
}

// Load
func Load() (*Config, error) {
	cfg := GetDefault()

	configFilePath, err := findConfigFile()
	if err != nil {
		return nil, err
	}

	if configFilePath != "" {
		if _, err := snakelet.InitAndLoad(cfg, configFilePath); err != nil {
			return nil, err
		}
	}

	// a .env file is optional, variables already set in the environment take precedence
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.WithError(err).Warn("unable to parse .env file")
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// findConfigFile looks next to the binary first, then in the working directory.
// An empty path means no file was found and defaults apply
func findConfigFile() (string, error) {
	dir, err := filepath.Abs(filepath.Dir(os.Args[0]))

	if err != nil {
		return "", err
	}

	candidates := []string{
		filepath.Join(dir, "config", "config.toml"),
		filepath.Join("config", "config.toml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", nil
}

func applyEnvOverrides(cfg *Config) {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		cfg.Github.Token = token
	}

	if endpoint := os.Getenv("GITHUB_GRAPHQL_ENDPOINT"); endpoint != "" {
		cfg.Github.GraphQLEndpoint = endpoint
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Logs.Level = level
	}
}

// Validate
func (c *Config) Validate() error {
	if c.Github.GraphQLEndpoint == "" {
		return fmt.Errorf("github graphql endpoint cannot be empty")
	}

	if c.Github.RestBaseURL == "" {
		return fmt.Errorf("github rest base url cannot be empty")
	}

	if c.Skills.MaxTop == 0 || c.Skills.MaxTop > githubMaxPageSize {
		return fmt.Errorf("max top must be between 1 and %d, got: %d", githubMaxPageSize, c.Skills.MaxTop)
	}

	if c.Skills.DefaultTop == 0 {
		return fmt.Errorf("default top must be positive")
	}

	if c.Skills.DefaultTop > c.Skills.MaxTop {
		return fmt.Errorf("default top %d exceeds max top %d", c.Skills.DefaultTop, c.Skills.MaxTop)
	}

	if c.Skills.LanguagesPerRepository <= 0 || c.Skills.LanguagesPerRepository > githubMaxPageSize {
		return fmt.Errorf("languages per repository must be between 1 and %d, got: %d", githubMaxPageSize, c.Skills.LanguagesPerRepository)
	}

	return nil
}

// GetDefault
func GetDefault() *Config {
	return &Config{
		API: APIConfig{
			ListenPort: "5000",
		},
		Github: GithubConfig{
			GraphQLEndpoint: "https://api.github.com/graphql",
			RestBaseURL:     "https://api.github.com/",
			UserAgent:       "sclng-github-skills",
		},
		Skills: SkillsConfig{
			DefaultTop:             20,
			MaxTop:                 100,
			LanguagesPerRepository: 20,
		},
		Logs: LogsConfig{
			Level:            "info",
			OutputLogsAsJSON: false,
		},
	}
}
