// Package config loads server and tool settings from defaults, an optional
// blackout.yaml and BLACKOUT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/meur/blackout/internal/unlocks"
	"github.com/spf13/viper"
)

// Config is the runtime configuration
type Config struct {
	Port           string           `mapstructure:"port"`
	DBPath         string           `mapstructure:"db_path"`
	AllowedOrigins []string         `mapstructure:"allowed_origins"`
	Debug          bool             `mapstructure:"debug"`
	Unlocks        unlocks.Defaults `mapstructure:"unlocks"`
}

// SetDefaults registers the default value of every setting on v
func SetDefaults(v *viper.Viper) {
	d := unlocks.DefaultConfig()
	v.SetDefault("port", "8080")
	v.SetDefault("db_path", "./blackout.db")
	v.SetDefault("allowed_origins", []string{"http://localhost:*", "https://*.blackout.nz"})
	v.SetDefault("debug", false)
	v.SetDefault("unlocks.track_id", d.TrackID)
	v.SetDefault("unlocks.crew", d.Crew)
}

// New returns a viper instance wired for env vars and the optional config file
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix("BLACKOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("blackout")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	return v
}

// Load reads the config file if present and decodes v into a Config
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("port must not be empty")
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("db_path must not be empty")
	}
	if _, ok := unlocks.TrackByID(c.Unlocks.TrackID); !ok {
		return fmt.Errorf("unknown default track %q", c.Unlocks.TrackID)
	}
	if !unlocks.IsCrew(c.Unlocks.Crew) {
		return fmt.Errorf("unknown default crew %q", c.Unlocks.Crew)
	}
	return nil
}
