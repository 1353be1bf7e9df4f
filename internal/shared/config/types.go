package config

import (
	"fmt"
	"strings"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// FIBConfig holds the gateway credentials and the target environment.
type FIBConfig struct {
	ClientID       string        `mapstructure:"client_id"`
	ClientSecret   string        `mapstructure:"client_secret"`
	GrantType      string        `mapstructure:"grant_type"`
	Environment    string        `mapstructure:"environment"`
	BaseURL        string        `mapstructure:"base_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

const (
	FIBEnvDev   = "dev"
	FIBEnvStage = "stage"
	FIBEnvProd  = "prod"

	DefaultGrantType = "client_credentials"
)

var fibEnvironmentDomains = map[string]string{
	FIBEnvProd:  "fib.prod.fib.iq",
	FIBEnvStage: "fib.stage.fib.iq",
	FIBEnvDev:   "fib.dev.fib.iq",
}

// ResolvedEnvironment returns the effective environment name.
// Unknown or empty values fall back to stage.
func (f *FIBConfig) ResolvedEnvironment() string {
	env := strings.ToLower(strings.TrimSpace(f.Environment))
	if _, ok := fibEnvironmentDomains[env]; ok {
		return env
	}
	return FIBEnvStage
}

// GetBaseURL returns the explicit base URL override or the URL derived from the environment.
func (f *FIBConfig) GetBaseURL() string {
	if f.BaseURL != "" {
		return strings.TrimRight(f.BaseURL, "/")
	}
	return "https://" + fibEnvironmentDomains[f.ResolvedEnvironment()]
}

func (f *FIBConfig) GetTokenURL() string {
	return f.GetBaseURL() + "/auth/realms/fib-online-shop/protocol/openid-connect/token"
}

func (f *FIBConfig) GetPaymentsURL() string {
	return f.GetBaseURL() + "/protected/v1/payments"
}

func (f *FIBConfig) GetGrantType() string {
	if f.GrantType == "" {
		return DefaultGrantType
	}
	return f.GrantType
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}
