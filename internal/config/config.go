package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Officer is a locally configured account that can sign in with email and password
type Officer struct {
	Email        string `mapstructure:"email"`
	Name         string `mapstructure:"name"`
	Unit         string `mapstructure:"unit"`
	PasswordHash string `mapstructure:"password_hash"`
}

type Config struct {
	Server struct {
		Port               int      `mapstructure:"port"`
		CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
		CorsAllowedMethods []string `mapstructure:"cors_allowed_methods"`
		CorsAllowedHeaders []string `mapstructure:"cors_allowed_headers"`
	} `mapstructure:"server"`

	JWT struct {
		Secret          string `mapstructure:"secret"`
		ExpirationHours int    `mapstructure:"expiration_hours"`
		Issuer          string `mapstructure:"issuer"`
	} `mapstructure:"jwt"`

	// Identity is the third-party sign-in provider whose tokens are accepted at login
	Identity struct {
		Secret string `mapstructure:"secret"`
		Issuer string `mapstructure:"issuer"`
		Unit   string `mapstructure:"unit"`
	} `mapstructure:"identity"`

	Officers []Officer `mapstructure:"officers"`

	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`

	// Archive is an S3-compatible bucket (R2, MinIO, S3) for generated reports
	Archive struct {
		Bucket    string `mapstructure:"bucket"`
		Endpoint  string `mapstructure:"endpoint"`
		Region    string `mapstructure:"region"`
		AccessKey string `mapstructure:"access_key"`
		SecretKey string `mapstructure:"secret_key"`
		Prefix    string `mapstructure:"prefix"`
	} `mapstructure:"archive"`

	Scheduler struct {
		Enabled bool   `mapstructure:"enabled"`
		Cron    string `mapstructure:"cron"`
	} `mapstructure:"scheduler"`

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
}

// DefaultPath is the config file read when no --config flag is given
const DefaultPath = "configs/config.yaml"

// LoadFile reads the YAML file at path, then applies environment overrides.
// A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	// Load .env file if exists (ignore error in production)
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Printf("[Config] No config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	applyEnv(&cfg)
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("server.cors_allowed_methods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("server.cors_allowed_headers", []string{"Authorization", "Content-Type"})
	v.SetDefault("jwt.expiration_hours", 12)
	v.SetDefault("jwt.issuer", "ukkm-backend")
	v.SetDefault("identity.issuer", "https://accounts.google.com")
	v.SetDefault("identity.unit", "UKKM Kota Setar")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("archive.region", "auto")
	v.SetDefault("archive.prefix", "reports/inspections")
	v.SetDefault("scheduler.enabled", false)
	v.SetDefault("scheduler.cron", "0 7 * * 1")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// applyEnv lets deployment secrets override whatever the file carried
func applyEnv(cfg *Config) {
	if port := os.Getenv("PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil && n > 0 {
			cfg.Server.Port = n
		}
	}

	if cfg.JWT.Secret == "" || cfg.JWT.Secret == "${JWT_SECRET}" {
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	}
	if secret := os.Getenv("IDENTITY_SECRET"); secret != "" {
		cfg.Identity.Secret = secret
	}

	// K8s sets REDIS_SERVICE_HOST and REDIS_SERVICE_PORT for services
	if host := os.Getenv("REDIS_SERVICE_HOST"); host != "" {
		port := os.Getenv("REDIS_SERVICE_PORT")
		if port == "" {
			port = "6379"
		}
		cfg.Redis.Addr = host + ":" + port
	}
	if pass := os.Getenv("REDIS_PASSWORD"); pass != "" {
		cfg.Redis.Password = pass
	}

	if bucket := os.Getenv("S3_BUCKET"); bucket != "" {
		cfg.Archive.Bucket = bucket
	}
	if endpoint := os.Getenv("S3_ENDPOINT"); endpoint != "" {
		cfg.Archive.Endpoint = endpoint
	}
	if key := os.Getenv("S3_ACCESS_KEY"); key != "" {
		cfg.Archive.AccessKey = key
	}
	if secret := os.Getenv("S3_SECRET_KEY"); secret != "" {
		cfg.Archive.SecretKey = secret
	}
}

// ArchiveEnabled reports whether a report bucket is configured
func (c *Config) ArchiveEnabled() bool {
	return c.Archive.Bucket != ""
}
