package config

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const DefaultModel = "gemini-1.5-pro"

// LoadConfig reads the optional config file and the environment into a Config.
// Environment variables win over the file. The API key is only ever read from
// here, never from source.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("listen_address", "0.0.0.0:8080")
	v.SetDefault("model", DefaultModel)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")

	v.SetEnvPrefix("storybot")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("api_key", "STORYBOT_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY"); err != nil {
		return nil, fmt.Errorf("error binding api_key: %w", err)
	}
	if err := v.BindEnv("port", "PORT"); err != nil {
		return nil, fmt.Errorf("error binding port: %w", err)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var configuration Config
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Hosting platforms hand out the port separately.
	if port := v.GetString("port"); port != "" {
		host, _, err := net.SplitHostPort(configuration.ListenAddress)
		if err != nil {
			return nil, fmt.Errorf("invalid listen_address %q: %w", configuration.ListenAddress, err)
		}
		configuration.ListenAddress = net.JoinHostPort(host, port)
	}

	// Validation
	if configuration.APIKey == "" {
		return nil, errors.New("api_key is required")
	}
	if configuration.Model == "" {
		configuration.Model = DefaultModel
	}
	if _, err := logrus.ParseLevel(configuration.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid log_level: %w", err)
	}

	return &configuration, nil
}
