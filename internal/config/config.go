package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Seed     SeedConfig     `mapstructure:"seed"`
}

type DatabaseConfig struct {
	// DSN for the sqlite arena. The default keeps everything in memory so
	// nothing survives the process, which is the intended behavior.
	DSN string `mapstructure:"dsn"`
}

type LogConfig struct {
	Env string `mapstructure:"env"` // "development" or "production"
}

// SeedConfig controls the fixture data loaded at startup.
type SeedConfig struct {
	Enabled  bool `mapstructure:"enabled"`
	Weeks    int  `mapstructure:"weeks"`    // future timetable horizon
	Capacity int  `mapstructure:"capacity"` // slots per seeded lesson
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variables override the file, e.g. database.dsn -> DATABASE_DSN.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("database.dsn", "file::memory:")
	viper.SetDefault("log.env", "development")
	viper.SetDefault("seed.enabled", true)
	viper.SetDefault("seed.weeks", 4)
	viper.SetDefault("seed.capacity", 4)

	err = viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// No config file is fine; defaults and env vars carry the app.
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
