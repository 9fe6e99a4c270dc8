package shared

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/vsyslabs/vsysctl/pkg/term"
)

// InitConfig configures viper from environment variables and configuration files.
// Explicit `path` must be readable, while the default configuration file is optional.
func InitConfig(path string) error {
	viper.SetEnvPrefix("vsysctl")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("logging.format", term.DefaultFormat)

	viper.SetDefault("cli.error_emoji", "❌")

	viper.SetDefault("network.name", "mainnet")
	viper.SetDefault("network.nodes", []string{"https://wallet.v.systems/api"})
	viper.SetDefault("network.fee", "10000000")

	viper.SetConfigType("yaml")

	if len(path) != 0 {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to read config file '%s'", path)
		}

		return nil
	}

	viper.SetConfigName(".vsysctl")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return errors.Wrap(err, "failed to read config file")
		}
	}

	return nil
}
