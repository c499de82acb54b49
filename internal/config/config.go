// config реализует конфигурацию social-service: загрузка из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig     `yaml:"http"`
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
	S3       S3Config       `yaml:"s3"`
	Media    MediaConfig    `yaml:"media"`
	Auth     AuthConfig     `yaml:"auth"`
	Limits   LimitsConfig   `yaml:"limits"`
	Timeouts TimeoutConfig  `yaml:"timeouts"`
}

// HTTPConfig — сетевые настройки HTTP-сервера (API, health, metrics).
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// PostgresConfig — подключение к PostgreSQL.
//   - SkipMigrations: не применять миграции при старте (по умолчанию применяются).
type PostgresConfig struct {
	URL            string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
	SkipMigrations bool   `yaml:"skip_migrations" env:"DB_SKIP_MIGRATIONS"`
}

// RedisConfig — кеш счётчиков профиля. Пустой URL отключает кеш.
type RedisConfig struct {
	URL      string        `yaml:"url" env:"REDIS_URL"`
	CountTTL time.Duration `yaml:"count_ttl" env:"REDIS_COUNT_TTL" env-default:"1m"`
}

// Enabled сообщает, сконфигурирован ли Redis.
func (r RedisConfig) Enabled() bool {
	return r.URL != ""
}

// S3Config — объектное хранилище медиа. Пустой Endpoint отключает загрузку медиа.
type S3Config struct {
	Endpoint      string        `yaml:"endpoint" env:"S3_ENDPOINT"`
	RootUser      string        `yaml:"root_user" env:"S3_ROOT_USER"`
	RootPassword  string        `yaml:"root_password" env:"S3_ROOT_PASSWORD"`
	Bucket        string        `yaml:"bucket" env:"S3_BUCKET"`
	PresignTTL    time.Duration `yaml:"presign_ttl" env:"S3_PRESIGN_TTL" env-default:"10m"`
	PublicBaseURL string        `yaml:"public_base_url" env:"S3_PUBLIC_BASE_URL"`
}

// Enabled сообщает, сконфигурировано ли S3-хранилище.
func (s S3Config) Enabled() bool {
	return s.Endpoint != ""
}

// MediaConfig — ограничения на загружаемые файлы.
type MediaConfig struct {
	MaxSizeBytes        int64    `yaml:"max_size_bytes" env:"MEDIA_MAX_SIZE_BYTES" env-default:"10485760"`
	AllowedContentTypes []string `yaml:"allowed_content_types" env:"MEDIA_ALLOWED_CONTENT_TYPES" env-separator:"," env-default:"image/jpeg,image/png,image/webp"`
}

// AuthConfig — проверка access-токенов (HS256).
// Issuer/Audience проверяются только если заданы.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	Issuer    string `yaml:"issuer" env:"JWT_ISSUER"`
	Audience  string `yaml:"audience" env:"JWT_AUDIENCE"`
}

// LimitsConfig — лимиты пагинации: limit=0 -> Default; верхняя граница — Max.
type LimitsConfig struct {
	Default int32 `yaml:"default" env:"DEFAULT_LIMIT" env-default:"20"`
	Max     int32 `yaml:"max" env:"MAX_LIMIT" env-default:"100"`
}

// TimeoutConfig — общий дедлайн обработки запроса и время на остановку.
type TimeoutConfig struct {
	Request  time.Duration `yaml:"request" env:"REQUEST_TIMEOUT" env-default:"5s"`
	Shutdown time.Duration `yaml:"shutdown" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// cleanenv.ReadConfig накладывает ENV-переменные поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	if path == "" {
		if _, err := os.Stat("local.yaml"); err == nil {
			path = "local.yaml"
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", path, err)
		}

		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config %q: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	switch c.Env {
	case "local", "dev", "prod":
	default:
		return fmt.Errorf("env must be one of local|dev|prod, got %q", c.Env)
	}

	if c.Postgres.URL == "" {
		return errors.New("postgres.url is required")
	}

	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required")
	}

	if c.Limits.Default <= 0 {
		return errors.New("limits.default must be > 0")
	}

	if c.Limits.Max <= 0 {
		return errors.New("limits.max must be > 0")
	}

	if c.Limits.Default > c.Limits.Max {
		return errors.New("limits.default must be <= limits.max")
	}

	if c.Timeouts.Request <= 0 {
		return errors.New("timeouts.request must be > 0")
	}

	if c.Redis.Enabled() && c.Redis.CountTTL <= 0 {
		return errors.New("redis.count_ttl must be > 0")
	}

	if c.S3.Enabled() {
		if c.S3.Bucket == "" || c.S3.RootUser == "" || c.S3.RootPassword == "" {
			return errors.New("s3.bucket, s3.root_user and s3.root_password are required when s3.endpoint is set")
		}

		if c.S3.PresignTTL <= 0 {
			return errors.New("s3.presign_ttl must be > 0")
		}

		if c.Media.MaxSizeBytes <= 0 {
			return errors.New("media.max_size_bytes must be > 0")
		}

		if len(c.Media.AllowedContentTypes) == 0 {
			return errors.New("media.allowed_content_types must not be empty")
		}
	}

	return nil
}
