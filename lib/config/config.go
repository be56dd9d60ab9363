package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Server ServerConfig
	Log    LogConfig
	Router RouterConfig
	Secret SecretConfig
	Theme  ThemeConfig
	Brand  BrandConfig
	Footer FooterConfig
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Addr            string
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LogConfig holds zap logger settings.
type LogConfig struct {
	Level  string
	Format string
}

// RouterConfig holds route matching and RouteNotFound settings.
type RouterConfig struct {
	Fallback      string
	CaseSensitive bool `mapstructure:"case_sensitive"`
}

// SecretConfig holds the key used to sign error-page payloads.
type SecretConfig struct {
	Key string
}

// ThemeConfig points at an optional TOML theme file.
type ThemeConfig struct {
	File string
}

// BrandConfig holds the product name shown in the chrome.
type BrandConfig struct {
	Name string
}

// FooterConfig holds the footer link destinations.
type FooterConfig struct {
	LinkedIn string `mapstructure:"linkedin"`
	GitHub   string `mapstructure:"github"`
	Twitter  string `mapstructure:"twitter"`
}

// EnvPrefix is the prefix for environment overrides, e.g. UPLINK_SERVER_ADDR.
const EnvPrefix = "UPLINK"

// Load reads configuration from file and env. The file is UPLINK_CONFIG if
// set, otherwise uplink.toml in the working directory; a missing default
// file is not an error.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv(EnvPrefix + "_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("uplink")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Default returns the configuration used when no file or env is present.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	// Defaults always decode.
	_ = v.Unmarshal(&c)
	return c
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("router.fallback", "render")
	v.SetDefault("router.case_sensitive", false)
	v.SetDefault("secret.key", "")
	v.SetDefault("theme.file", "")
	v.SetDefault("brand.name", "Virtualica")
	v.SetDefault("footer.linkedin", "#")
	v.SetDefault("footer.github", "#")
	v.SetDefault("footer.twitter", "#")
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	switch strings.ToLower(c.Router.Fallback) {
	case "render", "redirect", "none":
	default:
		return fmt.Errorf("config: router.fallback %q must be render, redirect or none", c.Router.Fallback)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q must be json or console", c.Log.Format)
	}
	if c.Server.Addr == "" {
		return errors.New("config: server.addr is required")
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("config: server.shutdown_timeout %s is negative", c.Server.ShutdownTimeout)
	}
	if c.Brand.Name == "" {
		return errors.New("config: brand.name is required")
	}
	return nil
}
