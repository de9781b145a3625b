package config

// Config is the site configuration decoded from config.yaml and
// PORTFOLIO_* environment variables by viper in cmd.
type Config struct {
	SiteTitle    string `mapstructure:"siteTitle"`
	BaseURL      string `mapstructure:"baseURL"`
	ContentDir   string `mapstructure:"contentDir"`
	Port         int    `mapstructure:"port"`
	BlogPageSize int    `mapstructure:"blogPageSize"`
}
