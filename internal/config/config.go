// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"github.com/hostprep/hostprep/internal/netconf"
	"gopkg.in/yaml.v3"
)

// Config is the declarative alternative to the interactive wizard: the same
// parameters, read from a yaml file.
type Config struct {
	Network NetworkConfig `yaml:"network"`
	Web     WebConfig     `yaml:"web"`
}

type NetworkConfig struct {
	Interface string   `yaml:"interface"`
	Address   string   `yaml:"address"`
	Gateway   string   `yaml:"gateway"`
	DNS       []string `yaml:"dns"`
}

type WebConfig struct {
	ServerName string `yaml:"server_name"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Network.Interface == "" {
		return fmt.Errorf("network.interface is required")
	}
	if c.Network.Address == "" {
		return fmt.Errorf("network.address is required")
	}
	if c.Network.Gateway == "" {
		return fmt.Errorf("network.gateway is required")
	}
	if len(c.Network.DNS) == 0 {
		return fmt.Errorf("network.dns must list at least one server")
	}
	return nil
}

func (c *Config) Params() netconf.Params {
	return netconf.Params{
		Interface:  c.Network.Interface,
		Address:    c.Network.Address,
		Gateway:    c.Network.Gateway,
		DNS:        c.Network.DNS,
		ServerName: c.Web.ServerName,
	}
}
