package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration required by the diagnostic API process.
// All values come from env (or an env-file loaded by the process runner).
// Routing tables are compiled in and deliberately not configurable here.
type Config struct {
	App   AppConfig
	Route RouteConfig
	Auth  AuthConfig
}

type AppConfig struct {
	Env  string
	Port int
}

// RouteConfig is the subset the per-call AGI binary needs.
type RouteConfig struct {
	// RequireTrunk fails external calls whose caller has no trunk mapping
	// instead of letting them proceed without a trunk hint.
	RequireTrunk bool
}

type AuthConfig struct {
	JWTSecret      string
	JWTIssuer      string
	JWTAudience    string
	AccessTokenTTL time.Duration
}

func Load() (Config, error) {
	c := Config{}
	var errs []error

	c.App.Env = strings.TrimSpace(os.Getenv("APP_ENV"))
	{
		n, err := mustInt("APP_PORT")
		if err != nil {
			errs = append(errs, err)
		}
		c.App.Port = n
	}

	route, err := LoadRoute()
	if err != nil {
		errs = append(errs, err)
	}
	c.Route = route

	c.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	c.Auth.JWTIssuer = strings.TrimSpace(os.Getenv("JWT_ISSUER"))
	c.Auth.JWTAudience = strings.TrimSpace(os.Getenv("JWT_AUDIENCE"))
	c.Auth.AccessTokenTTL = optionalDuration("JWT_ACCESS_TTL")
	if c.Auth.AccessTokenTTL <= 0 {
		// Default: short-lived operator tokens.
		c.Auth.AccessTokenTTL = 15 * time.Minute
	}

	if err := joinErrors(errs); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadRoute reads only the routing policy. Used by the AGI binary, which has
// no HTTP or auth surface.
func LoadRoute() (RouteConfig, error) {
	v := strings.TrimSpace(os.Getenv("ROUTE_REQUIRE_TRUNK"))
	if v == "" {
		return RouteConfig{}, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return RouteConfig{}, fmt.Errorf("ROUTE_REQUIRE_TRUNK must be a boolean, got %q", v)
	}
	return RouteConfig{RequireTrunk: b}, nil
}

func (c Config) Validate() error {
	var errs []error

	if c.App.Env == "" {
		errs = append(errs, errors.New("APP_ENV is required"))
	} else if !isValidEnv(c.App.Env) {
		errs = append(errs, fmt.Errorf("APP_ENV must be one of local, dev, staging, production, got %q", c.App.Env))
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		errs = append(errs, fmt.Errorf("APP_PORT must be a valid port, got %d", c.App.Port))
	}

	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.IsProduction() {
		if c.Auth.JWTIssuer == "" {
			errs = append(errs, errors.New("JWT_ISSUER is required in production"))
		}
		if c.Auth.JWTAudience == "" {
			errs = append(errs, errors.New("JWT_AUDIENCE is required in production"))
		}
	}

	return joinErrors(errs)
}

func (c Config) IsProduction() bool {
	return c.App.Env == "production"
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.App.Port)
}

func mustInt(key string) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}

func optionalDuration(key string) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0
	}
	return d
}

func isValidEnv(v string) bool {
	switch v {
	case "local", "dev", "staging", "production":
		return true
	default:
		return false
	}
}

func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	var b strings.Builder
	b.WriteString("config errors:\n")
	for _, e := range errs {
		b.WriteString("- ")
		b.WriteString(e.Error())
		b.WriteString("\n")
	}
	return errors.New(strings.TrimSpace(b.String()))
}
