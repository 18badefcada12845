package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	BlobMemory = "memory"
	BlobS3     = "s3"
)

type Config struct {
	Port        string `yaml:"port"`
	DBDSN       string `yaml:"db_dsn"`       // vacío => storage en memoria
	AutoMigrate bool   `yaml:"auto_migrate"` // aplica migraciones al arrancar la API

	Log  LogConfig  `yaml:"log"`
	Blob BlobConfig `yaml:"blob"`
	Auth AuthConfig `yaml:"auth"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	App    string `yaml:"app"`
}

type BlobConfig struct {
	Driver          string `yaml:"driver"` // memory | s3
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	PathStyle       bool   `yaml:"path_style"`
	PublicBaseURL   string `yaml:"public_base_url"`
}

// AuthConfig: sin BaseURL se acepta X-Debug-User-ID (modo dev).
type AuthConfig struct {
	BaseURL      string `yaml:"base_url"`
	APIKey       string `yaml:"api_key"`
	APIKeyHeader string `yaml:"api_key_header"`
}

func Default() Config {
	return Config{
		Port: "8080",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    "shelter-dogs",
		},
		Blob: BlobConfig{
			Driver: BlobMemory,
			Bucket: "dog-photos",
			Region: "us-east-1",
		},
	}
}

// Load: defaults -> archivo YAML (si path != "") -> variables de entorno.
func Load(path string) (Config, error) {
	cfg := Default()

	if path = strings.TrimSpace(path); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFromEnv usa SHELTER_CONFIG como ruta del YAML (opcional).
func LoadFromEnv() (Config, error) {
	return Load(os.Getenv("SHELTER_CONFIG"))
}

func (c Config) Validate() error {
	switch c.Blob.Driver {
	case BlobMemory:
	case BlobS3:
		if strings.TrimSpace(c.Blob.Bucket) == "" {
			return errors.New("config: blob.bucket required for s3")
		}
	default:
		return fmt.Errorf("config: unknown blob driver %q", c.Blob.Driver)
	}
	if c.Auth.BaseURL != "" && c.Auth.APIKey == "" {
		return errors.New("config: auth.api_key required when auth.base_url is set")
	}
	return nil
}

type lookupFunc func(string) (string, bool)

func applyEnv(c *Config, lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	boolean := func(key string, dst *bool) error {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			return nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %s: %w", key, err)
		}
		*dst = b
		return nil
	}

	str("PORT", &c.Port)
	str("DB_DSN", &c.DBDSN)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)
	str("APP_NAME", &c.Log.App)

	str("BLOB_DRIVER", &c.Blob.Driver)
	str("BLOB_BUCKET", &c.Blob.Bucket)
	str("BLOB_REGION", &c.Blob.Region)
	str("BLOB_ENDPOINT", &c.Blob.Endpoint)
	str("BLOB_ACCESS_KEY_ID", &c.Blob.AccessKeyID)
	str("BLOB_SECRET_ACCESS_KEY", &c.Blob.SecretAccessKey)
	str("BLOB_PUBLIC_BASE_URL", &c.Blob.PublicBaseURL)

	str("AUTH_BASE_URL", &c.Auth.BaseURL)
	str("AUTH_API_KEY", &c.Auth.APIKey)
	str("AUTH_API_KEY_HEADER", &c.Auth.APIKeyHeader)

	if err := boolean("AUTO_MIGRATE", &c.AutoMigrate); err != nil {
		return err
	}
	return boolean("BLOB_PATH_STYLE", &c.Blob.PathStyle)
}
