// Package config resolves client configuration from flags, environment
// variables and an optional .env file.
package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/semtui/semt/pkg/errors"
)

// Config holds everything needed to reach the backend.
type Config struct {
	// BaseURL is the backend root, for example "https://semtui.example.org".
	BaseURL string `mapstructure:"base_url"`

	// Username and Password are the sign-in credentials. They are ignored
	// when Token is set.
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`

	// Token is a pre-obtained bearer token.
	Token string `mapstructure:"token"`

	// DatasetID is the default dataset commands operate on.
	DatasetID string `mapstructure:"dataset_id"`

	// RateLimit caps backend requests per second. Zero disables limiting.
	RateLimit float64 `mapstructure:"rate_limit"`
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.NewConfigError("base_url", "backend base URL is required")
	}
	if c.Token == "" && (c.Username == "" || c.Password == "") {
		return errors.ErrCredentialsRequired
	}
	return nil
}

// Load reads configuration from the environment. Variables use the SEMT_
// prefix (SEMT_BASE_URL, SEMT_USERNAME, ...). A .env file in the working
// directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("semt")
	v.AutomaticEnv()
	for _, key := range []string{"base_url", "username", "password", "token", "dataset_id", "rate_limit"} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.NewParseError("env", "configuration", err.Error(), err)
	}
	return &cfg, nil
}
