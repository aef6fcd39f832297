// Package config loads the dashboard configuration from a YAML file,
// JOBDASH_ environment variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. JOBDASH_PORT
const EnvPrefix = "JOBDASH"

// Config represents the dashboard configuration
type Config struct {
	AppName string
	RunMode string
	Host    string
	Port    int
	Logger  *Logger
	Loader  *Loader
	CORS    *CORS
}

// Logger holds logging settings
type Logger struct {
	Level      string
	Format     string
	Output     string
	OutputFile string
}

// Loader holds the working set load settings
type Loader struct {
	Count       int
	Delay       time.Duration
	FailureRate float64
	Seed        uint64
}

// CORS holds the cross-origin settings of the HTTP server
type CORS struct {
	AllowedOrigins []string
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads the configuration. An empty path searches for config.yaml in
// the working directory; a missing file is not an error.
func Load(path string) (*Config, error) {
	// .env values only fill variables that are not already set
	if err := godotenv.Load(); err != nil && !isNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "jobdash")
	v.SetDefault("run_mode", "release")
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 8080)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "text")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.output_file", "jobdash.log")

	v.SetDefault("loader.count", 50)
	v.SetDefault("loader.delay", 800*time.Millisecond)
	v.SetDefault("loader.failure_rate", 0.0)
	v.SetDefault("loader.seed", 0)

	v.SetDefault("cors.allowed_origins", []string{"*"})
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppName: v.GetString("app_name"),
		RunMode: v.GetString("run_mode"),
		Host:    v.GetString("host"),
		Port:    v.GetInt("port"),
		Logger: &Logger{
			Level:      v.GetString("logger.level"),
			Format:     v.GetString("logger.format"),
			Output:     v.GetString("logger.output"),
			OutputFile: v.GetString("logger.output_file"),
		},
		Loader: &Loader{
			Count:       v.GetInt("loader.count"),
			Delay:       v.GetDuration("loader.delay"),
			FailureRate: v.GetFloat64("loader.failure_rate"),
			Seed:        v.GetUint64("loader.seed"),
		},
		CORS: &CORS{
			AllowedOrigins: v.GetStringSlice("cors.allowed_origins"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.Loader.Count < 0 {
		return fmt.Errorf("loader.count must not be negative, got %d", c.Loader.Count)
	}
	if c.Loader.Delay < 0 {
		return fmt.Errorf("loader.delay must not be negative, got %s", c.Loader.Delay)
	}
	if c.Loader.FailureRate < 0 || c.Loader.FailureRate > 1 {
		return fmt.Errorf("loader.failure_rate must be within [0, 1], got %v", c.Loader.FailureRate)
	}
	return nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
