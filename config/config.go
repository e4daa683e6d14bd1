// Package config loads CLI configuration from defaults, a YAML config
// file and environment variables, in ascending precedence.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var v *viper.Viper

func init() {
	v = viper.New()

	v.SetDefault("api.address", "http://localhost:8000/api/")
	v.SetDefault("output.format", "text")
	v.SetDefault("related.limit", 3)

	v.AutomaticEnv()
	v.BindEnv("api.address", "COLLIN_API_ADDRESS")
	v.BindEnv("output.format", "COLLIN_OUTPUT")
	v.BindEnv("related.limit", "COLLIN_RELATED_LIMIT")

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	configPaths := []string{
		".",
		"$HOME/.collinalitics",
		"/etc/collinalitics",
	}
	for _, path := range configPaths {
		v.AddConfigPath(os.ExpandEnv(path))
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(fmt.Sprintf("Fatal error reading config file: %s", err))
		}
		// Config file not found; use defaults.
	}
}

// APIAddress returns the base address of the API, trailing slash
// included.
func APIAddress() string {
	return v.GetString("api.address")
}

// OutputFormat returns the default output format, "text" or "json".
func OutputFormat() string {
	return v.GetString("output.format")
}

// RelatedLimit returns the default number of related services shown.
func RelatedLimit() int {
	return v.GetInt("related.limit")
}
