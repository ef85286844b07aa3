// Package config loads service configuration from the environment.
package config

import "github.com/spf13/viper"

// Load binds configuration to environment variables and registers
// defaults for local development.
func Load() {
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8000")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("SCREENER_BASE_URL", "https://www.screener.in")
	viper.SetDefault("CHART_API_URL", "https://api-mintgenie.livemint.com/api-gateway/fundamental/api/v2/charts")
	viper.SetDefault("LOGO_BASE_URL", "https://logo.clearbit.com")
}

func Port() string {
	return viper.GetString("PORT")
}

func RedisAddr() string {
	return viper.GetString("REDIS_ADDR")
}

func ScreenerBaseURL() string {
	return viper.GetString("SCREENER_BASE_URL")
}

func ChartAPIURL() string {
	return viper.GetString("CHART_API_URL")
}

func LogoBaseURL() string {
	return viper.GetString("LOGO_BASE_URL")
}
