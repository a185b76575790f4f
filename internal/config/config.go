// Package config resolves runtime options from flags, environment and an
// optional YAML file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/ensigniasec/mortality/internal/stats"
	"github.com/ensigniasec/mortality/internal/validate"
)

// Output formats.
const (
	TextOut = "text"
	JSONOut = "json"
	YAMLOut = "yaml"
)

// Viper keys. Flag names match so BindPFlags wires them directly.
const (
	KeyRegion  = "region"
	KeyQuery   = "query"
	KeyOutput  = "output"
	KeyTZ      = "tz"
	KeyVerbose = "verbose"
	KeyTUI     = "tui"
	KeyConfig  = "config"

	envPrefix      = "MORTALITY"
	configFileName = ".mortality"
)

// ErrInvalidOptions wraps validation failures of the resolved options.
var ErrInvalidOptions = errors.New("invalid options")

// Options is the validated runtime configuration.
type Options struct {
	Region   string `mapstructure:"region" validate:"required,region_filter"`
	Query    string `mapstructure:"query"`
	Output   string `mapstructure:"output" validate:"oneof=text json yaml"`
	Timezone string `mapstructure:"tz" validate:"omitempty,timezone"`
	Verbose  bool   `mapstructure:"verbose"`
	TUI      bool   `mapstructure:"tui"`
}

// New returns a viper instance with defaults, env binding and config search paths set.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyRegion, stats.RegionAll)
	v.SetDefault(KeyQuery, "")
	v.SetDefault(KeyOutput, TextOut)
	v.SetDefault(KeyTZ, "")
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyTUI, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file (if any), unmarshals and validates the options.
func Load(v *viper.Viper) (Options, error) {
	configFile := v.GetString(KeyConfig)
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicitly requested file must exist.
		if configFile != "" || !errors.As(err, &notFound) {
			return Options{}, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file; defaults, env and flags apply.
	} else {
		logrus.Debugf("Using config file: %s", v.ConfigFileUsed())
	}

	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return Options{}, fmt.Errorf("error decoding options: %w", err)
	}
	opts.normalize()

	if err := validate.Struct(opts); err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	logrus.Debugf("Resolved options: %+v", opts)
	return opts, nil
}

// normalize lowercases the output format and maps region names case-insensitively
// onto the canonical filter labels.
func (o *Options) normalize() {
	o.Output = strings.ToLower(strings.TrimSpace(o.Output))
	o.Region = strings.TrimSpace(o.Region)
	for _, r := range stats.Regions() {
		if strings.EqualFold(r, o.Region) {
			o.Region = r
			return
		}
	}
}

// Location returns the configured time zone, or time.Local when none is set.
func (o Options) Location() (*time.Location, error) {
	if o.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(o.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", o.Timezone, err)
	}
	return loc, nil
}

// Clock returns the current instant in the configured location.
type Clock func() time.Time

// NewClock wraps base so that every reading is expressed in loc.
func NewClock(base func() time.Time, loc *time.Location) Clock {
	return func() time.Time { return base().In(loc) }
}
