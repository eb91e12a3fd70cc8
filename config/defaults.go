package config

import "time"

// zeroableDefaults are registered with viper rather than merged, since an
// explicit 0 in the file or environment is a valid setting for them.
var zeroableDefaults = map[string]any{
	"nlp.max_retries":      3,
	"nlp.startup_attempts": 5,
}

// defaultConfig fills in whatever the config file and environment leave unset.
// Only fields whose zero value is never a valid setting belong here.
func defaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Server: ServerConfig{
			Port: 8000,
		},
		NLP: NLPConfig{
			ServerURL:  "http://localhost:5557",
			Timeout:    30 * time.Second,
			SmallModel: "en_core_web_sm",
			LargeModel: "en_core_web_lg",
			Language:   "en",
		},
		Tracing: TracingConfig{
			Endpoint:    "localhost:4318",
			ServiceName: "newsner",
		},
	}
}
