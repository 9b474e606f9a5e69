package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/riverfjs/calloutmath-go"
)

const envPrefix = "CALLOUTMATH"

func bind(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// config is the file layout of calloutmath.yaml.
type config struct {
	calloutmath.Settings `mapstructure:",squash"`
	Classes              calloutmath.Classes `mapstructure:"classes"`
}

// load reads configuration from defaults, the config file, CALLOUTMATH_*
// environment variables and flags, in increasing priority.
func (c *cli) load() (*config, error) {
	v := c.v
	settings := calloutmath.DefaultSettings()
	v.SetDefault("callout", settings.Callout)
	v.SetDefault("multi_line", settings.MultiLine)
	v.SetDefault("show_setup_notice", settings.ShowSetupNotice)

	classes := calloutmath.DefaultClasses()
	v.SetDefault("classes.quote_line", classes.QuoteLine)
	v.SetDefault("classes.formatting", classes.Formatting)
	v.SetDefault("classes.transparent", classes.Transparent)
	v.SetDefault("classes.border", classes.Border)
	v.SetDefault("classes.cancel_math", classes.CancelMath)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if c.configFile != "" {
		v.SetConfigFile(c.configFile)
	} else {
		v.SetConfigName("calloutmath")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
