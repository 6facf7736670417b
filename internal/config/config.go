package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "BINTALLY"
	ConfigName = "bin-tally"
)

// Config represents the complete bin-tally configuration
type Config struct {
	Output  OutputConfig  `mapstructure:"output"`
	Session SessionConfig `mapstructure:"session"`
	Logging LoggingConfig `mapstructure:"logging"`
	Window  WindowConfig  `mapstructure:"window"`
}

// OutputConfig controls where bin files are written
type OutputConfig struct {
	// Dir is the directory bin files are written to; empty means the working directory
	Dir string `mapstructure:"dir"`
	// Extension is the bin file extension without the leading dot
	Extension string `mapstructure:"extension"`
}

type SessionConfig struct {
	// FlushOnExit saves the active bin when the application exits
	FlushOnExit bool `mapstructure:"flush_on_exit"`
}

type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

type WindowConfig struct {
	Width  float32 `mapstructure:"width"`
	Height float32 `mapstructure:"height"`
}

func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:       "",
			Extension: "csv",
		},
		Session: SessionConfig{
			FlushOnExit: false,
		},
		Logging: LoggingConfig{
			Level: "info",
			JSON:  false,
		},
		Window: WindowConfig{
			Width:  480,
			Height: 600,
		},
	}
}

// SetDefaults registers every key so environment overrides apply even
// without a config file.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("output.dir", d.Output.Dir)
	v.SetDefault("output.extension", d.Output.Extension)
	v.SetDefault("session.flush_on_exit", d.Session.FlushOnExit)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.json", d.Logging.JSON)
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
}

// NewViper builds a viper instance with defaults, environment overrides
// and, when present, a config file. cfgFile overrides the search path.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	// BINTALLY_OUTPUT_DIR for output.dir
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return v, nil
}

func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	if strings.ContainsAny(strings.TrimPrefix(c.Output.Extension, "."), `/\`) {
		return fmt.Errorf("output.extension: %q must not contain path separators", c.Output.Extension)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: size must be positive, got %vx%v", c.Window.Width, c.Window.Height)
	}
	return nil
}

// ConfigDir returns $XDG_CONFIG_HOME/bin-tally or ~/.config/bin-tally.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, ConfigName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", ConfigName)
}
