package conf

import "github.com/spf13/viper"

// setDefaultConfig sets the default values for each configuration key.
func setDefaultConfig() {
	viper.SetDefault("debug", false)

	viper.SetDefault("log.enabled", false)
	viper.SetDefault("log.path", "mcpdict.log")

	viper.SetDefault("webserver.host", "0.0.0.0")
	viper.SetDefault("webserver.port", "8000")
	viper.SetDefault("webserver.debug", false)

	viper.SetDefault("database.path", "mcpdict.db")
	viper.SetDefault("database.busytimeout", 2000)

	viper.SetDefault("lookup.maxchars", 512)
}
