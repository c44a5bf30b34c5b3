package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port           string   `yaml:"port"`
		Mode           string   `yaml:"mode"`
		BaseURL        string   `yaml:"base_url"`
		AllowedOrigins []string `yaml:"allowed_origins"`
		StoragePath    string   `yaml:"storage_path"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host"`
		Port            string `yaml:"port"`
		User            string `yaml:"user"`
		Password        string `yaml:"password"`
		DBName          string `yaml:"dbname"`
		SSLMode         string `yaml:"sslmode"`
		MaxIdleConns    int    `yaml:"max_idle_conns"`
		MaxOpenConns    int    `yaml:"max_open_conns"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime"`
	} `yaml:"database"`

	JWT struct {
		Secret            string `yaml:"secret"`
		SessionExpiration string `yaml:"session_expiration"`
		Issuer            string `yaml:"issuer"`
	} `yaml:"jwt"`

	Google struct {
		ClientID     string `yaml:"client_id"`
		ClientSecret string `yaml:"client_secret"`
		RedirectURL  string `yaml:"redirect_url"`
	} `yaml:"google"`

	Captcha struct {
		Secret   string `yaml:"secret"`
		Endpoint string `yaml:"endpoint"`
	} `yaml:"captcha"`

	Uploads struct {
		SigningSecret string `yaml:"signing_secret"`
		MaxSizeMB     int64  `yaml:"max_size_mb"`
	} `yaml:"uploads"`

	Export struct {
		Watermark string `yaml:"watermark"`
	} `yaml:"export"`

	Admin struct {
		Emails []string `yaml:"emails"`
	} `yaml:"admin"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
// A missing config file is not an error; env vars alone are enough.
func LoadConfig(configPath string) (*Config, error) {
	// .env is optional, used for local development
	_ = godotenv.Load()

	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	loadFromEnv(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.BaseURL = "http://localhost:8080"
	config.Server.AllowedOrigins = []string{"http://localhost:3000"}
	config.Server.StoragePath = "uploads"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "notesfind"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	// Sessions are valid for 7 days from issuance.
	config.JWT.SessionExpiration = "168h"
	config.JWT.Issuer = "notesfind.app"

	config.Captcha.Endpoint = "https://www.google.com/recaptcha/api/siteverify"
	config.Uploads.MaxSizeMB = 10
	config.Export.Watermark = "NotesFind"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) {
	setString := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	setString(&config.Server.Port, "SERVER_PORT")
	setString(&config.Server.Mode, "SERVER_MODE")
	setString(&config.Server.BaseURL, "SERVER_BASE_URL")
	setString(&config.Server.StoragePath, "SERVER_STORAGE_PATH")
	if v, ok := os.LookupEnv("SERVER_ALLOWED_ORIGINS"); ok && v != "" {
		config.Server.AllowedOrigins = splitAndTrim(v)
	}

	setString(&config.Database.Host, "DB_HOST")
	setString(&config.Database.Port, "DB_PORT")
	setString(&config.Database.User, "DB_USER")
	setString(&config.Database.Password, "DB_PASSWORD")
	setString(&config.Database.DBName, "DB_NAME")
	setString(&config.Database.SSLMode, "DB_SSLMODE")

	setString(&config.JWT.Secret, "JWT_SECRET")
	setString(&config.JWT.SessionExpiration, "JWT_SESSION_EXPIRATION")
	setString(&config.JWT.Issuer, "JWT_ISSUER")

	setString(&config.Google.ClientID, "GOOGLE_CLIENT_ID")
	setString(&config.Google.ClientSecret, "GOOGLE_CLIENT_SECRET")
	setString(&config.Google.RedirectURL, "GOOGLE_REDIRECT_URL")

	setString(&config.Captcha.Secret, "CAPTCHA_SECRET")
	setString(&config.Captcha.Endpoint, "CAPTCHA_ENDPOINT")

	setString(&config.Uploads.SigningSecret, "UPLOAD_SIGNING_SECRET")
	setString(&config.Export.Watermark, "EXPORT_WATERMARK")

	if v, ok := os.LookupEnv("ADMIN_EMAILS"); ok && v != "" {
		config.Admin.Emails = splitAndTrim(v)
	}

	setString(&config.Logging.Level, "LOG_LEVEL")
	setString(&config.Logging.Format, "LOG_FORMAT")
}

func splitAndTrim(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.SessionExpiration); err != nil {
		return fmt.Errorf("invalid JWT session expiration format: %w", err)
	}

	return nil
}

// GetPostgresConnectionString returns the postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
