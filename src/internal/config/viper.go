package config

import (
	"strings"

	"github.com/spf13/viper"
)

// NewViper reads config.json from the working directory; every key can be
// overridden from the environment (dots become underscores).
func NewViper() *viper.Viper {
	config := viper.New()

	config.SetConfigName("config")
	config.SetConfigType("json")
	config.AddConfigPath("./")
	config.AddConfigPath("./../")
	config.AddConfigPath("./../../")

	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	// a missing file is fine, env vars and defaults still apply
	_ = config.ReadInConfig()

	return config
}
