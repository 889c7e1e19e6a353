package config

import (
	"os"
	"strconv"

	embedded "github.com/goserg/ratingtracker"

	"github.com/BurntSushi/toml"
)

type Tracker struct {
	Debug bool `toml:"debug_mode"`
}

type Account struct {
	Name   string `toml:"name"`
	Rating int    `toml:"rating"`
	Kind   string `toml:"kind"`
}

// Game is one result recorded for Player. Result is "win" or "lose".
type Game struct {
	Player   string `toml:"player"`
	Opponent string `toml:"opponent"`
	Result   string `toml:"result"`
	Mode     string `toml:"mode"`
}

type Scenario struct {
	Accounts []Account `toml:"accounts"`
	Games    []Game    `toml:"games"`
}

type Config struct {
	Tracker  Tracker  `toml:"tracker"`
	Scenario Scenario `toml:"scenario"`
}

// New reads the config at path. An empty path means the embedded default.
func New(path string) (Config, error) {
	var cfg Config
	var err error
	if path == "" {
		_, err = toml.Decode(string(embedded.DefaultConfig), &cfg)
	} else {
		_, err = toml.DecodeFile(path, &cfg)
	}
	if err != nil {
		return Config{}, err
	}

	debug := os.Getenv("TRACKER_DEBUG")
	if debug != "" {
		cfg.Tracker.Debug, err = strconv.ParseBool(debug)
		if err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}
