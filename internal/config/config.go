package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	NoColor  bool   `yaml:"no-color" env:"TICTACTOE_NO_COLOR"`
	Redis    Redis  `yaml:"redis" env-prefix:"TICTACTOE_REDIS_"`
}

type Redis struct {
	Enabled     bool   `yaml:"enabled" env:"ENABLED" env-default:"false"`
	Host        string `yaml:"host" env:"HOST" env-default:"localhost"`
	Port        string `yaml:"port" env:"PORT" env-default:"6379"`
	Password    string `yaml:"password" env:"PASSWORD"`
	DB          int    `yaml:"db" env:"DB" env-default:"0"`
	RecentLimit int    `yaml:"recent-limit" env:"RECENT_LIMIT" env-default:"10"`
}

// Load - reads the YAML file at path, then the environment. A missing file is not an error.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		err = cleanenv.ReadConfig(path, config)
	case errors.Is(err, fs.ErrNotExist):
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return net.JoinHostPort(that.Host, that.Port)
}
