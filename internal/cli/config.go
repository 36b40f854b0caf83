package cli

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/zheny5/gopatterns/pkg/patterns/config"
)

const (
	configFileName = "patterns"
	configFileType = "yaml"
)

// loadSettings reads the config file through viper and hands the
// settings to the typed config wrapper. A missing config file is not
// an error; every setting has a default.
//
// Recognized settings:
//
//	history:
//	  backend: memory | sqlite
//	  path: patterns.db
//	observability:
//	  metrics: false
//	  tracing: false
func loadSettings(path string) (config.Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		// an explicit --config file must exist; the default one may not
		if path != "" || !notFound {
			return config.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return config.New(v.AllSettings()), nil
}
