package config

import (
	toml "github.com/pelletier/go-toml/v2"
)

// ToTOML renders the effective configuration as a TOML document
func (c *Config) ToTOML() ([]byte, error) {
	return toml.Marshal(c)
}
