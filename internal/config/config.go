package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		DataPath string `yaml:"data_path"`
		Debug    bool   `yaml:"debug"`
	} `yaml:"app"`

	TMDB struct {
		APIKey       string `yaml:"api_key"`
		Language     string `yaml:"language"`
		BaseURL      string `yaml:"base_url"`
		ImageBaseURL string `yaml:"image_base_url"`
	} `yaml:"tmdb"`

	QBittorrent struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"qbittorrent"`

	Templates struct {
		Dir string `yaml:"dir"`
	} `yaml:"templates"`
}

// Load reads the optional yaml file at path, then applies .env and
// environment overrides on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	// .env is optional; plain environment variables still apply without it
	_ = godotenv.Load()
	loadFromEnv(cfg)
	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.App.DataPath = "./data"
	cfg.App.Debug = false

	cfg.TMDB.Language = "fr-FR"
	cfg.TMDB.BaseURL = "https://api.themoviedb.org/3"
	cfg.TMDB.ImageBaseURL = "https://image.tmdb.org/t/p"

	cfg.QBittorrent.URL = "http://localhost:8080"
	cfg.QBittorrent.Username = "admin"
	cfg.QBittorrent.Password = "adminadmin"

	cfg.Templates.Dir = "./templates"
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TMDB_API_KEY"); v != "" {
		cfg.TMDB.APIKey = v
	}
	if v := os.Getenv("TMDB_LANGUAGE"); v != "" {
		cfg.TMDB.Language = v
	}
	if v := os.Getenv("QBITTORRENT_URL"); v != "" {
		cfg.QBittorrent.URL = v
	}
	if v := os.Getenv("QBITTORRENT_USERNAME"); v != "" {
		cfg.QBittorrent.Username = v
	}
	if v := os.Getenv("QBITTORRENT_PASSWORD"); v != "" {
		cfg.QBittorrent.Password = v
	}
	if v := os.Getenv("TEMPLATES_DIR"); v != "" {
		cfg.Templates.Dir = v
	}
}
