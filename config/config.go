// Package config loads Dropbox client settings from dotenv files and the DROPBOX_* environment variables.
//
// Recognized variables:
//
//	DROPBOX_ACCESS_TOKEN   bearer token used by NewClient
//	DROPBOX_APP_KEY        OAuth client id
//	DROPBOX_APP_SECRET     OAuth client secret
//	DROPBOX_REDIRECT_URI   OAuth redirect URI
//	DROPBOX_TIMEOUT        overall request timeout (default 300s)
//	DROPBOX_LOG_LEVEL      hclog level name (default off)
//	DROPBOX_RPC_URL        RPC base URL override
//	DROPBOX_CONTENT_URL    content base URL override
//	DROPBOX_NOTIFY_URL     notify base URL override
package config

import (
	"context"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/mitchellh/go-homedir"

	"github.com/c2fo/dropbox"
	"github.com/c2fo/dropbox/oauth"
	"github.com/c2fo/dropbox/options"
)

// EnvPrefix is prepended, with an underscore, to every variable name.
const EnvPrefix = "DROPBOX"

const loggerName = "dropbox"

// Config holds the settings read by Load.
type Config struct {
	AccessToken string        `envconfig:"ACCESS_TOKEN"`
	AppKey      string        `envconfig:"APP_KEY"`
	AppSecret   string        `envconfig:"APP_SECRET"`
	RedirectURI string        `envconfig:"REDIRECT_URI"`
	Timeout     time.Duration `envconfig:"TIMEOUT" default:"300s"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"off"`
	RPCURL      string        `envconfig:"RPC_URL"`
	ContentURL  string        `envconfig:"CONTENT_URL"`
	NotifyURL   string        `envconfig:"NOTIFY_URL"`
}

// Load reads envFiles in order, then the process environment.  Variables already present in the environment are
// never overridden by a file, and a leading ~ in a file name is expanded to the home directory.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		path, err := homedir.Expand(f)
		if err != nil {
			return nil, fmt.Errorf("expanding env file %q: %w", f, err)
		}
		if err := godotenv.Load(path); err != nil {
			return nil, fmt.Errorf("loading env file %q: %w", path, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that an access token is present and that the remaining settings are well formed.  A missing
// token is reported as dropbox.ErrConfigurationMissing.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.AccessToken, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %w", dropbox.ErrConfigurationMissing, err)
	}
	return c.validateSettings()
}

// ValidateOAuth checks the app credentials used by the authorization code flow.
func (c *Config) ValidateOAuth() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.AppKey, validation.Required),
		validation.Field(&c.AppSecret, validation.Required),
		validation.Field(&c.RedirectURI, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %w", dropbox.ErrConfigurationMissing, err)
	}
	return c.validateSettings()
}

func (c *Config) validateSettings() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Timeout, validation.Min(time.Duration(0)).Exclusive()),
		validation.Field(&c.LogLevel, validation.By(validLevel)),
		validation.Field(&c.RedirectURI, is.URL),
		validation.Field(&c.RPCURL, is.URL),
		validation.Field(&c.ContentURL, is.URL),
		validation.Field(&c.NotifyURL, is.URL),
	)
}

func validLevel(value any) error {
	s, _ := value.(string)
	if s != "" && hclog.LevelFromString(s) == hclog.NoLevel {
		return fmt.Errorf("unknown log level %q", s)
	}
	return nil
}

// Logger returns a logger named "dropbox" at the configured level.
func (c *Config) Logger() hclog.Logger {
	level := hclog.LevelFromString(c.LogLevel)
	if level == hclog.NoLevel {
		level = hclog.Off
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:  loggerName,
		Level: level,
	})
}

// ClientOptions translates the settings into Transport options.  Empty URL overrides are left out.
func (c *Config) ClientOptions() []options.NewClientOption[dropbox.Transport] {
	opts := []options.NewClientOption[dropbox.Transport]{
		dropbox.WithLogger(c.Logger()),
	}
	if c.Timeout > 0 {
		opts = append(opts, dropbox.WithTimeout(c.Timeout))
	}
	if c.RPCURL != "" {
		opts = append(opts, dropbox.WithRPCURL(c.RPCURL))
	}
	if c.ContentURL != "" {
		opts = append(opts, dropbox.WithContentURL(c.ContentURL))
	}
	if c.NotifyURL != "" {
		opts = append(opts, dropbox.WithNotifyURL(c.NotifyURL))
	}
	return opts
}

// NewClient validates the configuration and builds a client from it.  opts are applied after the configured
// ones.
func (c *Config) NewClient(opts ...options.NewClientOption[dropbox.Transport]) (*dropbox.Client, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return dropbox.NewClient(c.AccessToken, append(c.ClientOptions(), opts...)...), nil
}

// AuthorizationURL returns the authorization page URL for the configured app.
func (c *Config) AuthorizationURL(state string, scopes []string, opts ...options.NewClientOption[oauth.Options]) (string, error) {
	if err := c.ValidateOAuth(); err != nil {
		return "", err
	}
	return oauth.AuthorizationURL(c.AppKey, c.RedirectURI, state, scopes, opts...), nil
}

// ExchangeCode trades an authorization code for a token using the configured app credentials.
func (c *Config) ExchangeCode(ctx context.Context, code string, opts ...options.NewClientOption[oauth.Options]) (*oauth.Token, error) {
	if err := c.ValidateOAuth(); err != nil {
		return nil, err
	}
	return oauth.ExchangeCode(ctx, code, c.AppKey, c.AppSecret, c.RedirectURI, opts...)
}

// RefreshToken obtains a new access token using the configured app credentials.
func (c *Config) RefreshToken(ctx context.Context, refreshToken string, opts ...options.NewClientOption[oauth.Options]) (*oauth.Token, error) {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.AppKey, validation.Required),
		validation.Field(&c.AppSecret, validation.Required),
	); err != nil {
		return nil, fmt.Errorf("%w: %w", dropbox.ErrConfigurationMissing, err)
	}
	return oauth.RefreshToken(ctx, refreshToken, c.AppKey, c.AppSecret, opts...)
}
