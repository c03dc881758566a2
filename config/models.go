package config

// Config holds the application configuration.
type Config struct {
	ListenAddress string `mapstructure:"listen_address"`
	APIKey        string `mapstructure:"api_key"`
	Model         string `mapstructure:"model"`
	LogLevel      string `mapstructure:"log_level"`
	LogFile       string `mapstructure:"log_file"`
}
