package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the process configuration. Precedence: defaults, then an
// optional yaml config file, then MINDASH_* environment variables.
type Config struct {
	// DataFile is the flat mineral table (.csv or .xlsx).
	DataFile string `mapstructure:"data_file" yaml:"data_file"`
	// Sheet names the worksheet for xlsx input; empty means first sheet.
	Sheet string `mapstructure:"sheet" yaml:"sheet"`

	Listen string `mapstructure:"listen" yaml:"listen"`

	// HomeCountry is painted with HomeCountryColor whenever it appears in a
	// map layer, regardless of its value.
	HomeCountry      string `mapstructure:"home_country" yaml:"home_country"`
	HomeCountryColor string `mapstructure:"home_country_color" yaml:"home_country_color"`

	// Unit labels quantities in hover text and colorbar titles.
	Unit string `mapstructure:"unit" yaml:"unit"`

	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
}

// Load reads configuration. cfgFile, when non-empty, must exist and parse;
// otherwise a mineraldash.yaml in the working directory is used if present.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("data_file", "mineral_production_flourish_ready.csv")
	v.SetDefault("sheet", "")
	v.SetDefault("listen", ":8080")
	v.SetDefault("home_country", "India")
	v.SetDefault("home_country_color", "#20c997")
	v.SetDefault("unit", "tonnes")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	v.SetEnvPrefix("MINDASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("mineraldash")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		// Optional when not named explicitly
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Save writes the configuration as yaml, e.g. for `mineraldash init`.
func Save(c *Config, path string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
