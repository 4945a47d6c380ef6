package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
}

// ServerConfig holds the listen addresses.
type ServerConfig struct {
	Addr      string `yaml:"addr"`
	RPCSocket string `yaml:"rpc_socket"`
}

// DatabaseConfig holds the sqlite database location.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:      ":8080",
			RPCSocket: "/tmp/mantenimiento.sock",
		},
		Database: DatabaseConfig{
			Path: "mantenimiento.db",
		},
	}
}

// Load reads the configuration from the given path, filling in defaults for
// anything left unset.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := Default()
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.RPCSocket == "" {
		cfg.Server.RPCSocket = "/tmp/mantenimiento.sock"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "mantenimiento.db"
	}

	return cfg, nil
}
