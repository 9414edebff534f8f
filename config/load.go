package config

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/fernandosanchezjr/seedrand/utils"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

const (
	EnvPrefix  = "SEEDRAND_"
	ConfigFile = "config.yaml"
)

// DefaultPath is config.yaml inside the application home folder.
func DefaultPath() (string, error) {
	return utils.HomePath(ConfigFile)
}

// Load reads the config at DefaultPath. A missing file leaves the defaults
// in place; environment overrides still apply.
func Load() (*Config, error) {
	configPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	c, err := LoadConfig(configPath)
	if os.IsNotExist(err) {
		log.WithField("path", configPath).Debug("No config file, using defaults")
		c = Default()
		if err = applyEnv(c); err != nil {
			return nil, err
		}
		return c, c.Validate()
	}
	return c, err
}

// LoadConfig reads configPath over the defaults, then applies SEEDRAND_*
// environment overrides and validates the result.
func LoadConfig(configPath string) (*Config, error) {
	c := Default()
	var data []byte
	var err error
	log.WithField("path", configPath).Debug("Loading config")
	if data, err = ioutil.ReadFile(configPath); err != nil {
		return nil, err
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", configPath, err)
	}
	if err = applyEnv(c); err != nil {
		return nil, err
	}
	if err = c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func applyEnv(c *Config) error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}
