package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Storage backends the board snapshot can live in.
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env-default:"info"`
	Storage  Storage `yaml:"storage"`
}

type Storage struct {
	Backend string `yaml:"backend" env-default:"file"`
	File    File   `yaml:"file"`
	Redis   Redis  `yaml:"redis"`
	SQLite  SQLite `yaml:"sqlite"`
}

type File struct {
	Dir  string `yaml:"dir" env-default:""`
	Name string `yaml:"name" env-default:"oxogame.dat"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

type SQLite struct {
	Path string `yaml:"path" env-default:"oxo.db"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
