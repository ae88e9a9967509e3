package ft8token

// Settings for the ft8token tool.
//
// Sources, later ones winning: built in defaults, YAML file,
// FT8TOKEN_* environment variables, then command line flags that
// were actually given.

import (
	"fmt"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const ENV_PREFIX = "FT8TOKEN_"

var outputFormats = []string{"text", "yaml"}

type Config struct {
	Format          string `koanf:"format"`
	HomeGrid        string `koanf:"home_grid"`
	TimestampFormat string `koanf:"timestamp_format"`
	LogLevel        string `koanf:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Format:          "text",
		HomeGrid:        "",
		TimestampFormat: "",
		LogLevel:        "info",
	}
}

// LoadConfig reads the optional YAML file then the environment on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	var k = koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// FT8TOKEN_HOME_GRID -> home_grid
	var envTransformer = func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, ENV_PREFIX))
	}

	if err := k.Load(env.Provider(ENV_PREFIX, ".", envTransformer), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	var cfg = DefaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

// applyFlags copies in only the flags that were set on the command line, so an
// unset flag's default can't hide a value from the file or environment.
func (c *Config) applyFlags(fs *pflag.FlagSet) {
	var strFlags = map[string]*string{
		"format":           &c.Format,
		"home-grid":        &c.HomeGrid,
		"timestamp-format": &c.TimestampFormat,
	}

	for name, dst := range strFlags {
		if fs.Changed(name) {
			*dst, _ = fs.GetString(name)
		}
	}

	if v, _ := fs.GetBool("verbose"); fs.Changed("verbose") && v {
		c.LogLevel = "debug"
	}
}

func (c *Config) Validate() error {
	c.Format = strings.ToLower(c.Format)
	if !slices.Contains(outputFormats, c.Format) {
		return fmt.Errorf("output format %q is not one of %s", c.Format, strings.Join(outputFormats, ", "))
	}

	if c.HomeGrid != "" {
		if _, _, err := GridToLatLong(c.HomeGrid); err != nil {
			return fmt.Errorf("home grid: %w", err)
		}
	}

	return nil
}
