package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver string
		DSN    string
	}
	Auth struct {
		// SkipLocal relaxes the authentication gate for requests arriving
		// from a loopback host. Local development only.
		SkipLocal bool
		// JWTSecret enables Bearer token authentication on the API when set.
		JWTSecret string
	}
	OIDC struct {
		Issuer       string
		ClientID     string
		ClientSecret string
		RedirectURL  string
	}
	UploadsDir      string
	SessionLifetime time.Duration
}

// SSOEnabled reports whether the optional OIDC login is configured.
func (c *Config) SSOEnabled() bool {
	return c.OIDC.Issuer != ""
}

// Load reads config from environment (LAWN_ prefix) and optional lawncare.yaml.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LAWN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("lawncare")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("session.lifetime", "720h")
	v.SetDefault("uploads.dir", "./uploads")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.Auth.SkipLocal = v.GetBool("auth.skip_local")
	cfg.Auth.JWTSecret = v.GetString("auth.jwt_secret")
	cfg.OIDC.Issuer = v.GetString("oidc.issuer")
	cfg.OIDC.ClientID = v.GetString("oidc.client_id")
	cfg.OIDC.ClientSecret = v.GetString("oidc.client_secret")
	cfg.OIDC.RedirectURL = v.GetString("oidc.redirect_url")
	cfg.UploadsDir = v.GetString("uploads.dir")

	lifetime, err := time.ParseDuration(v.GetString("session.lifetime"))
	if err != nil {
		return nil, fmt.Errorf("invalid LAWN_SESSION_LIFETIME: %w", err)
	}
	cfg.SessionLifetime = lifetime

	if cfg.DB.Driver == "" {
		return nil, fmt.Errorf("LAWN_DB_DRIVER is required (sqlite3, mysql, postgres)")
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("LAWN_DB_DSN is required")
	}

	// SSO is all-or-nothing: a partial OIDC config is a misconfiguration,
	// not a disabled feature.
	if cfg.SSOEnabled() {
		if cfg.OIDC.ClientID == "" {
			return nil, fmt.Errorf("LAWN_OIDC_CLIENT_ID is required when LAWN_OIDC_ISSUER is set")
		}
		if cfg.OIDC.ClientSecret == "" {
			return nil, fmt.Errorf("LAWN_OIDC_CLIENT_SECRET is required when LAWN_OIDC_ISSUER is set")
		}
		if cfg.OIDC.RedirectURL == "" {
			return nil, fmt.Errorf("LAWN_OIDC_REDIRECT_URL is required when LAWN_OIDC_ISSUER is set")
		}
	}

	return cfg, nil
}
