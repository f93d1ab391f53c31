package config

import (
	"fmt"
	"strings"
	"time"
)

type Catalog struct {
	Env     Environment `env:"CATALOG_ENV" envDefault:"development"`
	BaseURL string      `env:"CATALOG_BASE_URL"`

	RequestTimeout    time.Duration `env:"CATALOG_REQUEST_TIMEOUT" envDefault:"10s"`
	ResponseTimeLimit time.Duration `env:"CATALOG_RESPONSE_TIME_LIMIT" envDefault:"3s"`
}

// ResolveBaseURL returns the explicit base URL when set, otherwise the one
// registered for the configured environment.
func (c Catalog) ResolveBaseURL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	if u, ok := baseURLs[c.Env]; ok {
		return u
	}
	return baseURLs[EnvDevelopment]
}

// Environment is the upstream deployment the suite points at.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvStaging     Environment = "staging"
	EnvProduction  Environment = "production"
)

var baseURLs = map[Environment]string{
	EnvDevelopment: "https://dummyjson.com",
	EnvStaging:     "https://dummyjson.com",
	EnvProduction:  "https://dummyjson.com",
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (e *Environment) UnmarshalText(text []byte) error {
	switch v := Environment(strings.ToLower(string(text))); v {
	case EnvDevelopment, EnvStaging, EnvProduction:
		*e = v
	default:
		return fmt.Errorf("unknown catalog environment: %s", text)
	}
	return nil
}
