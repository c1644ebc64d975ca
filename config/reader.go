package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

type Custom struct {
	Log struct {
		Level   int    `toml:"level"`
		Filter  string `toml:"filter"`
		Limiter int    `toml:"limiter"`
	} `toml:"log"`
	Output struct {
		Format string `toml:"format"`
	} `toml:"output"`
}

func Default() *Custom {
	var config Custom
	config.Log.Level = DefaultLogLevel
	config.Output.Format = OutputFormatText
	return &config
}

func Initialize(file string) (*Custom, error) {
	f, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var config Custom
	err = toml.Unmarshal(f, &config)
	if err != nil {
		return nil, err
	}
	if config.Log.Level == 0 {
		config.Log.Level = DefaultLogLevel
	}
	if config.Output.Format == "" {
		config.Output.Format = OutputFormatText
	}
	return &config, config.Validate()
}

func (c *Custom) Validate() error {
	switch c.Output.Format {
	case OutputFormatText, OutputFormatJSON, OutputFormatMsgpack:
	default:
		return fmt.Errorf("invalid output format %s", c.Output.Format)
	}
	if c.Log.Limiter < 0 {
		return fmt.Errorf("invalid log limiter %d", c.Log.Limiter)
	}
	return nil
}
