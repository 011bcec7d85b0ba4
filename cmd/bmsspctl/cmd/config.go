package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// cliConfig holds bmsspctl's own configuration, loadable from a config file
// and from environment variables (BMSSPCTL_*), which override file values.
// No flag is bound to it; run's --trace flag is ORed with Trace.
type cliConfig struct {
	LogLevel string `mapstructure:"log_level"`
	Trace    bool   `mapstructure:"trace"`
}

// loadConfig reads bmsspctl configuration from configPath if non-empty,
// otherwise from ./bmsspctl.yaml or ./configs/bmsspctl.yaml if present, and
// always allows BMSSPCTL_* environment variables to override file values.
// A missing config file is not an error: defaults apply.
func loadConfig(configPath string) (*cliConfig, error) {
	v := viper.New()

	v.SetDefault("log_level", "info")
	v.SetDefault("trace", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("bmsspctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Fprintln(os.Stderr, "bmsspctl: no config file found, using defaults")
		} else if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "bmsspctl: config file %s not found, using defaults\n", configPath)
		} else {
			return nil, fmt.Errorf("bmsspctl: reading config: %w", err)
		}
	}

	v.SetEnvPrefix("bmsspctl")
	v.AutomaticEnv()

	var cfg cliConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("bmsspctl: unmarshaling config: %w", err)
	}

	return &cfg, nil
}
