package config

import (
	"os"
	"strconv"

	"github.com/pelletier/go-toml"
)

const (
	DefaultElemType = "int64"
	DefaultPlaces   = 6

	EnvElemType = "RATIO_TYPE"
	EnvHumanize = "HUMANIZE"
)

type Custom struct {
	Display struct {
		ElemType string `toml:"type"`
		Places   int    `toml:"places"`
		Full     bool   `toml:"full"`
		Humanize bool   `toml:"humanize"`
	} `toml:"display"`
}

func Default() *Custom {
	c := &Custom{}
	c.Display.ElemType = DefaultElemType
	c.Display.Places = DefaultPlaces
	return c
}

// Initialize reads a TOML config file on top of the defaults. An empty path
// skips the file. Environment overrides are applied last.
func Initialize(file string) (*Custom, error) {
	config := Default()
	if file != "" {
		f, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		err = toml.Unmarshal(f, config)
		if err != nil {
			return nil, err
		}
	}
	config.applyEnv()
	return config, nil
}

func (c *Custom) applyEnv() {
	if t := os.Getenv(EnvElemType); t != "" {
		c.Display.ElemType = t
	}
	if h := os.Getenv(EnvHumanize); h != "" {
		if b, err := strconv.ParseBool(h); err == nil {
			c.Display.Humanize = b
		} else {
			c.Display.Humanize = true
		}
	}
}
