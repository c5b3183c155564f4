package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Configuration keys. Each can be set in the config file or through the
// environment with the GUISCALE_ prefix, e.g. GUISCALE_SECTION.
const (
	envPrefix = "GUISCALE"

	keySection     = "section"
	keyImageWidth  = "image_width"
	keyImageHeight = "image_height"
)

// Config holds defaults for the analyze and browse commands.
// Command-line flags win over the config file and the environment.
type Config struct {
	Section     string `mapstructure:"section"`
	ImageWidth  int    `mapstructure:"image_width"`
	ImageHeight int    `mapstructure:"image_height"`
}

func newConfig() *viper.Viper {
	v := viper.New()
	v.SetDefault(keySection, "")
	v.SetDefault(keyImageWidth, 0)
	v.SetDefault(keyImageHeight, 0)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return v
}

// configDir returns $XDG_CONFIG_HOME/guiscale, falling back to ~/.config/guiscale.
func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + appName
	}
	return filepath.Join(home, ".config", appName)
}

// loadConfig reads path, or searches for guiscale.{yaml,yml,toml,json} in the
// working directory and configDir when path is empty. A missing file is only
// an error when path was given explicitly.
func (c *CLI) loadConfig(path string) error {
	if path != "" {
		c.config.SetConfigFile(path)
	} else {
		c.config.SetConfigName(appName)
		c.config.AddConfigPath(".")
		c.config.AddConfigPath(configDir())
	}

	if err := c.config.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && path == "" {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	c.Logger.Debug("loaded config", "file", c.config.ConfigFileUsed())
	return nil
}

// Settings returns the effective configuration.
func (c *CLI) Settings() (Config, error) {
	var cfg Config
	if err := c.config.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Section = strings.TrimSpace(cfg.Section)
	if cfg.ImageWidth < 0 || cfg.ImageHeight < 0 {
		return Config{}, fmt.Errorf("config: image dimensions must not be negative")
	}
	return cfg, nil
}

// resolveOpts fills every option whose flag was not set on cmd from the
// effective configuration.
func (c *CLI) resolveOpts(cmd *cobra.Command, opts analyzeOpts) (analyzeOpts, error) {
	cfg, err := c.Settings()
	if err != nil {
		return opts, err
	}
	flags := cmd.Flags()
	if !flags.Changed("section") {
		opts.section = cfg.Section
	}
	if !flags.Changed("image-width") {
		opts.imageWidth = cfg.ImageWidth
	}
	if !flags.Changed("image-height") {
		opts.imageHeight = cfg.ImageHeight
	}
	return opts, nil
}
