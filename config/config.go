package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"

	// AI Configuration
	OpenAIKey   string `mapstructure:"OPENAI_API_KEY"` // API key for OpenAI (required)
	OpenAIModel string `mapstructure:"OPENAI_MODEL"`   // e.g., "gpt-4o-mini"

	// Image Search Configuration
	UnsplashAccessKey string `mapstructure:"UNSPLASH_ACCESS_KEY"` // Optional; placeholders are used without it

	// Output Configuration
	OutputDir    string `mapstructure:"OUTPUT_DIR"`    // Directory for generated sites
	TemplatesDir string `mapstructure:"TEMPLATES_DIR"` // Optional external layout directory

	// Logging Configuration
	LogLevel  string `mapstructure:"LOG_LEVEL"`  // debug, info, warn, error
	LogFormat string `mapstructure:"LOG_FORMAT"` // json or console
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()

	// Keys without defaults must be bound explicitly or AutomaticEnv will
	// not surface them through Unmarshal.
	viper.BindEnv("OPENAI_API_KEY")
	viper.BindEnv("UNSPLASH_ACCESS_KEY")
	viper.BindEnv("TEMPLATES_DIR")

	// Defaults keep the binary runnable with just an API key set.
	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("OUTPUT_DIR", "generated_sites")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "console")

	err = viper.ReadInConfig()
	if err != nil {
		// Missing config file is fine when env vars carry the settings.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", viper.ConfigFileUsed())
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.OpenAIKey == "" {
		return Config{}, errors.New("OPENAI_API_KEY is required")
	}

	return
}
