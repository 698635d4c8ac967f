package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const DefaultPath = "./configs/config.local.yaml"

type HTTP struct {
	Host            string
	Port            int      `validate:"min=1,max=65535"`
	ReadTimeoutSec  int      `validate:"min=0"`
	WriteTimeoutSec int      `validate:"min=0"`
	IdleTimeoutSec  int      `validate:"min=0"`
	MaxBodyMB       int      `validate:"min=1"`
	TimeoutSec      int      `validate:"min=0"` // per-request deadline, 0 disables
	MaxInFlight     int      `validate:"min=0"` // 0 disables the limit
	CORSOrigins     []string `mapstructure:"corsOrigins"`
}

type App struct {
	Name string
	Env  string `validate:"oneof=development production test"`
	HTTP HTTP
}

type FileLog struct {
	Enable     bool
	Filename   string `validate:"required_if=Enable true"`
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type Log struct {
	Level string `validate:"oneof=debug info warn error"`
	JSON  bool
	File  FileLog
}

type DB struct {
	Driver             string `validate:"oneof=postgres mysql sqlite"`
	DSN                string `validate:"required"`
	Username           string
	Password           string
	MaxOpenConns       int    `validate:"min=1"`
	MaxIdleConns       int    `validate:"min=0"`
	ConnMaxLifetimeMin int    `validate:"min=0"`
	AutoMigrate        bool
	LogLevel           string `validate:"omitempty,oneof=silent error warn info"`
}

type Config struct {
	App App
	Log Log
	DB  DB
}

func (c *Config) Production() bool { return c.App.Env == "production" }

func (h HTTP) ReadTimeout() time.Duration  { return time.Duration(h.ReadTimeoutSec) * time.Second }
func (h HTTP) WriteTimeout() time.Duration { return time.Duration(h.WriteTimeoutSec) * time.Second }
func (h HTTP) IdleTimeout() time.Duration  { return time.Duration(h.IdleTimeoutSec) * time.Second }
func (h HTTP) RequestTimeout() time.Duration {
	return time.Duration(h.TimeoutSec) * time.Second
}

func (h HTTP) MaxBodyBytes() int64 { return int64(h.MaxBodyMB) << 20 }

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "task-manager-api")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.http.host", "0.0.0.0")
	v.SetDefault("app.http.port", 3000)
	v.SetDefault("app.http.readTimeoutSec", 15)
	v.SetDefault("app.http.writeTimeoutSec", 30)
	v.SetDefault("app.http.idleTimeoutSec", 60)
	v.SetDefault("app.http.maxBodyMB", 10)
	v.SetDefault("app.http.timeoutSec", 15)
	v.SetDefault("app.http.maxInFlight", 256)
	v.SetDefault("app.http.corsOrigins", []string{})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.file.enable", false)
	v.SetDefault("log.file.filename", "logs/api.log")
	v.SetDefault("log.file.maxSizeMB", 100)
	v.SetDefault("log.file.maxBackups", 7)
	v.SetDefault("log.file.maxAgeDays", 28)
	v.SetDefault("log.file.compress", true)

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "file:task_manager.db?_busy_timeout=5000")
	v.SetDefault("db.username", "")
	v.SetDefault("db.password", "")
	v.SetDefault("db.maxOpenConns", 20)
	v.SetDefault("db.maxIdleConns", 10)
	v.SetDefault("db.connMaxLifetimeMin", 30)
	v.SetDefault("db.autoMigrate", true)
	v.SetDefault("db.logLevel", "warn")
}

// LoadE reads path (or CONFIG_PATH, or DefaultPath) with APP_ env
// overrides. A missing file is not an error: defaults and env apply.
func LoadE(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	explicit := path != ""
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		explicit = path != ""
	}
	if path == "" {
		path = DefaultPath
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	c.App.HTTP.CORSOrigins = splitList(c.App.HTTP.CORSOrigins)

	if err := validator.New().Struct(&c); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &c, nil
}

func Load(path string) *Config {
	c, err := LoadE(path)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	return c
}

// splitList accepts both YAML lists and a comma separated env value.
func splitList(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
