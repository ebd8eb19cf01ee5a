// ABOUTME: Configuration from YAML at the XDG config path plus env overrides.
// ABOUTME: A missing config file is not an error; defaults apply.

package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// DataDir holds the badger database. Default: XDG data home /inkwell.
	DataDir string `yaml:"data_dir"`

	// SampleAPI is the JSONPlaceholder-style endpoint used to seed empty
	// collections. Empty disables remote seeding entirely.
	SampleAPI   string `yaml:"sample_api"`
	SampleLimit int    `yaml:"sample_limit"`

	// CloudHost overrides the charm server for cloud identity and sync.
	CloudHost string `yaml:"cloud_host"`

	DefaultSort string `yaml:"default_sort"`
	LogLevel    string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		DataDir:     filepath.Join(dataHome(), "inkwell"),
		SampleAPI:   "https://jsonplaceholder.typicode.com",
		SampleLimit: 5,
		DefaultSort: "updated_desc",
		LogLevel:    "warn",
	}
}

// Load reads .env (best-effort), then the YAML config file if present, then
// applies INKWELL_* environment overrides.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	data, err := os.ReadFile(Path())
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	} else if !os.IsNotExist(err) {
		return Config{}, err
	}

	applyEnv(&cfg)
	return cfg, nil
}

// Save writes the config file, creating the directory as needed.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(Path(), data, 0o600)
}

func Dir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "inkwell")
}

func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

func dataHome() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return dataHome
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("INKWELL_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("INKWELL_SAMPLE_API"); v != "" {
		cfg.SampleAPI = v
	}
	if v := os.Getenv("INKWELL_SAMPLE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SampleLimit = n
		}
	}
	if v := os.Getenv("INKWELL_CLOUD_HOST"); v != "" {
		cfg.CloudHost = v
	}
	if v := os.Getenv("INKWELL_SORT"); v != "" {
		cfg.DefaultSort = v
	}
	if v := os.Getenv("INKWELL_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
