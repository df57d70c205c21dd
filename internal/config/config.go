package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	fileName   = "config.yml"
	xdgSubPath = "othello/" + fileName
)

type Config struct {
	LogLevel string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPHost string        `yaml:"http-host" env:"HTTP_HOST" env-default:"127.0.0.1"`
	HTTPPort string        `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	GameTTL  time.Duration `yaml:"game-ttl" env:"GAME_TTL" env-default:"1h"`
	Redis    Redis         `yaml:"redis"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	DB      int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// Locate returns the config file to read: baseDir/config.yml first, then
// $XDG_CONFIG_HOME/othello/config.yml and the XDG config dirs. An empty
// string means no file was found.
func Locate(baseDir string) string {
	local := filepath.Join(baseDir, fileName)
	if _, err := os.Stat(local); err == nil {
		return local
	}

	path, err := xdg.SearchConfigFile(xdgSubPath)
	if err != nil {
		return ""
	}

	return path
}

// Load reads the file at path, or only the environment when path is empty.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - load configuration or panic.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

var (
	ErrEmptyPort       = errors.New("http port is empty")
	ErrNegativeTTL     = errors.New("game ttl is negative")
	ErrUnknownLogLevel = errors.New("unknown log level")
)

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}

	if that.HTTPPort == "" {
		return ErrEmptyPort
	}

	if that.GameTTL < 0 {
		return ErrNegativeTTL
	}

	return nil
}

func (that *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%s", that.HTTPHost, that.HTTPPort)
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
