// Package config loads netroute settings from defaults, an optional config
// file, NETROUTE_* environment variables and bound command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/netroute/logging"
	"github.com/katalvlaran/netroute/topology"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. NETROUTE_TOPOLOGY_FILE.
const EnvPrefix = "NETROUTE"

// Config is the full runtime configuration.
type Config struct {
	Topology Topology       `mapstructure:"topology"`
	Log      logging.Config `mapstructure:"log"`
	Metrics  Metrics        `mapstructure:"metrics"`
	Network  Network        `mapstructure:"network"`
}

// Topology locates the topology file.
type Topology struct {
	File string `mapstructure:"file"`
	// Bootstrap writes the sample topology when File is missing.
	Bootstrap bool `mapstructure:"bootstrap"`
}

// Metrics configures the Prometheus endpoint; empty Addr disables it.
type Metrics struct {
	Addr string `mapstructure:"addr"`
}

// Network tunes the routing core.
type Network struct {
	AutoRecompute bool `mapstructure:"auto_recompute"`
}

// SetDefaults installs default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("topology.file", topology.DefaultFile)
	v.SetDefault("topology.bootstrap", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("metrics.addr", "")
	v.SetDefault("network.auto_recompute", true)
}

// FlagKeys maps command-line flag names to configuration keys.
var FlagKeys = map[string]string{
	"topology":       "topology.file",
	"log-level":      "log.level",
	"log-format":     "log.format",
	"metrics-addr":   "metrics.addr",
	"auto-recompute": "network.auto_recompute",
}

// Load reads configuration into a Config. path may be empty; a named file
// that does not exist is an error. flags may be nil.
func Load(v *viper.Viper, path string, flags *pflag.FlagSet) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range FlagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind flag %s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ErrNoTopologyFile indicates an empty topology.file setting.
var ErrNoTopologyFile = errors.New("config: topology.file is empty")

// Validate checks settings that have no usable fallback.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Topology.File) == "" {
		return ErrNoTopologyFile
	}

	return nil
}
