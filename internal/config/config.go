package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	App struct {
		// BaseURL is used to build reset links sent to applicants.
		BaseURL string `yaml:"base_url"`
		Name    string `yaml:"name"`
	} `yaml:"app"`

	Admin struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"admin"`
}

// LoadConfig reads config.yaml (CONFIG_PATH overridable). When DATABASE_URL
// is set, configuration comes entirely from environment variables instead;
// this is the path tests and container deployments use.
func LoadConfig() (*Config, error) {
	var cfg Config

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.DSN = dbURL
		cfg.Server.Env = os.Getenv("SERVER_ENV")
		cfg.Server.Host = os.Getenv("SERVER_HOST")
		cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		cfg.JWT.TTL, _ = strconv.Atoi(os.Getenv("JWT_TTL"))
		cfg.App.BaseURL = os.Getenv("APP_BASE_URL")
		cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
		cfg.Email.SMTPPort, _ = strconv.Atoi(os.Getenv("SMTP_PORT"))
		cfg.Email.SMTPUsername = os.Getenv("SMTP_USER")
		cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
		cfg.Email.FromEmail = os.Getenv("SMTP_FROM_EMAIL")
		cfg.Email.FromName = os.Getenv("SMTP_FROM_NAME")
		cfg.Admin.Email = os.Getenv("ADMIN_EMAIL")
		cfg.Admin.Password = os.Getenv("ADMIN_PASSWORD")
		cfg.Admin.Name = os.Getenv("ADMIN_NAME")
		applyDefaults(&cfg)
		return &cfg, nil
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	f, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file at %s: %w", configPath, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file at %s: %w", configPath, err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}
	if cfg.App.BaseURL == "" {
		cfg.App.BaseURL = "http://localhost:3000"
	}
	if cfg.App.Name == "" {
		cfg.App.Name = "Tech Mista"
	}
}
