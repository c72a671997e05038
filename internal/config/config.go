package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config - boolean switches are negative because cleanenv applies env-default to zero values,
// so a default of true could never be turned off from the file.
type Config struct {
	LogLevel      string     `yaml:"log-level" env:"BATTLESHIP_LOG_LEVEL" env-default:"info"`
	LogFile       string     `yaml:"log-file" env:"BATTLESHIP_LOG_FILE" env-default:""`
	BoardSize     int        `yaml:"board-size" env:"BATTLESHIP_BOARD_SIZE" env-default:"10"`
	NoClearScreen bool       `yaml:"no-clear-screen" env:"BATTLESHIP_NO_CLEAR_SCREEN"`
	NoPause       bool       `yaml:"no-pause" env:"BATTLESHIP_NO_PAUSE"`
	Markers       Markers    `yaml:"markers"`
	Fleet         []ShipSpec `yaml:"fleet"`
}

type Markers struct {
	Vertical   string `yaml:"vertical" env-default:"|"`
	Horizontal string `yaml:"horizontal" env-default:"—"`
	Empty      string `yaml:"empty" env-default:"O"`
	Miss       string `yaml:"miss" env-default:"."`
	Hit        string `yaml:"hit" env-default:"*"`
	Sunk       string `yaml:"sunk" env-default:"#"`
}

// ShipSpec - a nil fleet means "use the standard fleet", while "fleet: []" is an empty one.
type ShipSpec struct {
	Name string `yaml:"name"`
	Size int    `yaml:"size"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads path when it exists, otherwise only the environment and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("can't read %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("can't read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("can't stat %s: %w", path, err)
	}

	return config, nil
}
