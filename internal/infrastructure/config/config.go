package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "github.com/orris-inc/fibgate/internal/shared/config"
)

type Config struct {
	Server  sharedConfig.ServerConfig  `mapstructure:"server"`
	Logger  sharedConfig.LoggerConfig  `mapstructure:"logger"`
	FIB     sharedConfig.FIBConfig     `mapstructure:"fib"`
	Redis   sharedConfig.RedisConfig   `mapstructure:"redis"`
	Metrics sharedConfig.MetricsConfig `mapstructure:"metrics"`
}

// legacyEnvBindings maps config keys to the unprefixed variables used by existing deployments.
var legacyEnvBindings = map[string]string{
	"fib.client_id":     "CLIENT_ID",
	"fib.client_secret": "CLIENT_SECRET",
	"fib.grant_type":    "GRANT_TYPE",
	"fib.environment":   "FIB_GATEWAY_ENVIRONMENT",
}

// Load loads configuration from an optional config file, a .env file and environment variables.
// The returned Config is not modified afterwards.
func Load(env string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")

	v.SetEnvPrefix("FIBGATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, envName := range legacyEnvBindings {
		if err := v.BindEnv(key, "FIBGATE_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), envName); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", envName, err)
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// FIB defaults (credentials must be configured)
	v.SetDefault("fib.client_id", "")
	v.SetDefault("fib.client_secret", "")
	v.SetDefault("fib.grant_type", sharedConfig.DefaultGrantType)
	v.SetDefault("fib.environment", sharedConfig.FIBEnvStage)
	v.SetDefault("fib.base_url", "")
	v.SetDefault("fib.request_timeout", "30s")

	// Redis defaults
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("metrics.enabled", true)
}
