package config

import "time"

// Config holds the configuration of the application
// Use config.LoadConfig to create a new instance
type Config struct {
	Log     LogConfig     `mapstructure:"log"     yaml:"log"     json:"log"`
	Server  ServerConfig  `mapstructure:"server"  yaml:"server"  json:"server"`
	NLP     NLPConfig     `mapstructure:"nlp"     yaml:"nlp"     json:"nlp"`
	Auth    AuthConfig    `mapstructure:"auth"    yaml:"auth"    json:"auth"`
	Tracing TracingConfig `mapstructure:"tracing" yaml:"tracing" json:"tracing"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"  json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format" jsonschema:"enum=text,enum=json"`
}

type ServerConfig struct {
	Host string `mapstructure:"host" yaml:"host" json:"host"`
	Port int    `mapstructure:"port" yaml:"port" json:"port"`
}

// NLPConfig points at the NLP server hosting the pretrained pipelines.
type NLPConfig struct {
	ServerURL  string        `mapstructure:"server_url"  yaml:"server_url"  json:"server_url"`
	Timeout    time.Duration `mapstructure:"timeout"     yaml:"timeout"     json:"timeout"`
	MaxRetries int           `mapstructure:"max_retries" yaml:"max_retries" json:"max_retries"`
	// StartupAttempts is how many extra times the model check is retried while
	// the NLP server comes up.
	StartupAttempts int    `mapstructure:"startup_attempts"  yaml:"startup_attempts"  json:"startup_attempts"`
	MinModelVersion string `mapstructure:"min_model_version" yaml:"min_model_version" json:"min_model_version,omitempty"`
	SmallModel      string `mapstructure:"small_model"       yaml:"small_model"       json:"small_model"`
	LargeModel      string `mapstructure:"large_model"       yaml:"large_model"       json:"large_model"`
	Language        string `mapstructure:"language"          yaml:"language"          json:"language"`
}

type AuthConfig struct {
	Secret   string `mapstructure:"secret"   yaml:"secret"   json:"secret,omitempty"`
	Required bool   `mapstructure:"required" yaml:"required" json:"required"`
}

type TracingConfig struct {
	Enabled     bool   `mapstructure:"enabled"      yaml:"enabled"      json:"enabled"`
	Endpoint    string `mapstructure:"endpoint"     yaml:"endpoint"     json:"endpoint,omitempty"`
	Insecure    bool   `mapstructure:"insecure"     yaml:"insecure"     json:"insecure"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name" json:"service_name"`
}
