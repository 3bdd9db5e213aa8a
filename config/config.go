package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug       = "debug"
	ConfigHand        = "hand"
	ConfigSides       = "sides"
	ConfigThreads     = "threads"
	ConfigMaxOutcomes = "max-outcomes"
	ConfigFormat      = "format"
	ConfigRank        = "rank"
	ConfigHistogram   = "histogram"
	ConfigTimeout     = "timeout"
	ConfigCPUProfile  = "cpu-profile"
)

const (
	DefaultHand  = "11156"
	DefaultSides = 6
)

var formats = []string{"text", "yaml", "json"}

// Config wraps a viper instance. Settings come from flags, then
// UPPERHOLD_* environment variables, then defaults.
type Config struct {
	viper.Viper
}

// DefaultConfig returns a config holding only defaults.
func DefaultConfig() Config {
	c := Config{Viper: *viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigHand, DefaultHand)
	c.SetDefault(ConfigSides, DefaultSides)
	c.SetDefault(ConfigThreads, 0)
	c.SetDefault(ConfigMaxOutcomes, 0)
	c.SetDefault(ConfigFormat, "text")
	c.SetDefault(ConfigRank, false)
	c.SetDefault(ConfigHistogram, false)
	c.SetDefault(ConfigTimeout, 20*time.Second)
	c.SetDefault(ConfigCPUProfile, "")
}

// Load reads command-line args and the environment into the config.
func (c *Config) Load(args []string) error {
	c.Viper = *viper.New()
	c.setDefaults()
	c.SetEnvPrefix("upperhold")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	fs := pflag.NewFlagSet("upperhold", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigHand, DefaultHand, "the rolled hand, e.g. 11156 or 1,1,1,5,6")
	fs.Int(ConfigSides, DefaultSides, "number of sides on each die")
	fs.Int(ConfigThreads, 0, "threads used to evaluate holds; 0 means one per CPU")
	fs.Int(ConfigMaxOutcomes, 0, "most roll sequences a hold may enumerate; 0 sizes it from system memory")
	fs.String(ConfigFormat, "text", "output format: text, yaml or json")
	fs.Bool(ConfigRank, false, "list every hold with its expected score")
	fs.Bool(ConfigHistogram, false, "print the score histogram of the chosen hold")
	fs.Duration(ConfigTimeout, 20*time.Second, "give up after this long")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	return c.Validate()
}

// Validate checks the settings that have a closed set of values.
func (c *Config) Validate() error {
	f := c.GetString(ConfigFormat)
	for _, ok := range formats {
		if f == ok {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q, want one of %v", f, formats)
}

// SanitizedSettings is AllSettings for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
