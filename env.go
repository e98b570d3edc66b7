package linkedin

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/oauth2"
)

// Config is the environment-driven client configuration. All variables are
// read under the LINKEDIN_ prefix, e.g. LINKEDIN_ACCESS_TOKEN.
type Config struct {
	ClientID     string        `envconfig:"CLIENT_ID"`
	ClientSecret string        `envconfig:"CLIENT_SECRET"`
	RedirectURL  string        `envconfig:"REDIRECT_URL"`
	AccessToken  string        `envconfig:"ACCESS_TOKEN"`
	BaseURL      string        `envconfig:"BASE_URL" default:"https://api.linkedin.com/v1"`
	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
}

// ConfigFromEnv loads Config from LINKEDIN_* environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("linkedin", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// OAuthConfig builds the oauth2.Config for the three-legged flow from the
// credentials in cfg.
func (cfg Config) OAuthConfig(scopes ...string) *oauth2.Config {
	return NewOAuthConfig(cfg.ClientID, cfg.ClientSecret, cfg.RedirectURL, scopes...)
}

// NewFromEnv constructs a Client from LINKEDIN_* environment variables.
// LINKEDIN_ACCESS_TOKEN must hold a previously issued token; run the OAuth2
// flow via Config.OAuthConfig when it does not.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	if cfg.AccessToken == "" {
		return nil, errors.New("LINKEDIN_ACCESS_TOKEN is not set")
	}
	base := []Option{
		WithBaseURL(cfg.BaseURL),
		WithHTTPTimeout(cfg.HTTPTimeout),
	}
	return New(StaticTokenSource(cfg.AccessToken), append(base, opts...)...)
}
