package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultAppID identifies the desktop app to the GUI toolkit.
const DefaultAppID = "com.scicalc.gui"

// Config holds process-level settings. None of them change how the
// calculator computes; they only affect diagnostics and app identity.
type Config struct {
	AppID string `mapstructure:"app_id"`
	Log   LogConfig
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string
	File  string
}

// Load reads configuration from an optional TOML file and the environment.
// Env overrides use prefix SCICALC_, e.g. SCICALC_LOG_LEVEL.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("app_id", DefaultAppID)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	if cfgPath := os.Getenv("SCICALC_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "scicalc"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SCICALC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
