package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load initializes configuration from an optional config file and HIWAVE_*
// environment variables, and sets the harness defaults. Flags bound by the
// CLI override both.
func Load(cfgFile string) {
	// explicit .env loading; a missing file is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("HIWAVE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("iterations", 1000)
	viper.SetDefault("output", "perf-results.json")
	viper.SetDefault("renderer", "all")
	viper.SetDefault("pages_dir", "pages")
	viper.SetDefault("verbose", false)
	viper.SetDefault("baseline", "")
	viper.SetDefault("history", "")
	viper.SetDefault("metrics_addr", "")

	// A missing config file is not an error; defaults and env apply.
	_ = viper.ReadInConfig()
}
