package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/fx"

	"github.com/marktriggs/globby/pkg/configutils"
)

const envPrefix = "GLOBBY"

func configProvider(cli *cobra.Command) fx.Option {
	return fx.Provide(func() (*viper.Viper, error) {
		v := viper.GetViper()

		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		if err := v.BindPFlag("debug", cli.Flags().Lookup("debug")); err != nil {
			panic(err)
		}

		// The config file is optional; flags, args and environment cover
		// everything the commands need.
		if configFilePath != "" {
			if err := configutils.ResolveAndMergeFile(v, configFilePath); err != nil {
				return nil, fmt.Errorf("cannot read config file: %w", err)
			}
		}

		if v.GetBool("debug") {
			v.Set("logging.debug", true)
		}

		// Fix the issue where viper.UnmarshalKey only uses read config, neglects environment variables
		for _, key := range v.AllKeys() {
			v.Set(key, v.Get(key))
		}
		return v, nil
	})
}
