package config

import (
	"errors"
	"strings"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/newsner/newsner/internal"
)

// We're bootstrapping so avoid any imports from other packages
var log = logrus.New()

const EnvPrefix = "NEWSNER"

// envKeys are bound explicitly so that ENV-only deployments without a config
// file still populate the struct on Unmarshal.
var envKeys = []string{
	"log.level",
	"log.format",
	"server.host",
	"server.port",
	"nlp.server_url",
	"nlp.timeout",
	"nlp.max_retries",
	"nlp.startup_attempts",
	"nlp.min_model_version",
	"nlp.small_model",
	"nlp.large_model",
	"nlp.language",
	"auth.secret",
	"auth.required",
	"tracing.enabled",
	"tracing.endpoint",
	"tracing.insecure",
	"tracing.service_name",
}

// LoadConfig loads the config file and ENV variables into a Config struct.
// A missing default config.yaml is tolerated; an explicitly named file is not.
func LoadConfig(configFile string) (*Config, error) {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
	}

	viper.SetConfigType("yaml")

	for key, value := range zeroableDefaults {
		viper.SetDefault(key, value)
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
		log.Warn("config file not found, using defaults and environment")
	}

	// Environment variables take precedence over config file
	loadDotEnv()

	for _, key := range envKeys {
		if err := viper.BindEnv(key); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := mergo.Merge(&cfg, defaultConfig()); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadDotEnv loads environment variables from .env file
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Debug(".env file not found or unable to load")
	}
}

// SetLogLevel sets the log level and format based on the config. Defaults to INFO if not set or invalid
func SetLogLevel(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	internal.SetLogFormat(cfg.Log.Format)
	internal.SetLogLevel(level)
	log.Info("Log level set to: ", level)
}

// Redacted returns a copy of the config that is safe to print.
func (c *Config) Redacted() *Config {
	redacted := *c
	if redacted.Auth.Secret != "" {
		redacted.Auth.Secret = "**redacted**"
	}
	return &redacted
}

// DumpYAML renders the redacted config as YAML.
func DumpYAML(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg.Redacted())
}
