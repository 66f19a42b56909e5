package oauth

import (
	"net/http"

	"github.com/c2fo/dropbox/options"
)

const (
	defaultAuthorizeURL = "https://www.dropbox.com/oauth2/authorize"
	defaultTokenURL     = "https://api.dropboxapi.com/oauth2/token"
)

const (
	optionNameAuthorizeURL = "authorizeURL"
	optionNameTokenURL     = "tokenURL"
	optionNameHTTPClient   = "httpClient"
)

// Options are the endpoints and HTTP client the helpers talk to.
type Options struct {
	AuthorizeURL string
	TokenURL     string
	HTTPClient   *http.Client
}

func newOptions(opts ...options.NewClientOption[Options]) Options {
	o := Options{
		AuthorizeURL: defaultAuthorizeURL,
		TokenURL:     defaultTokenURL,
	}
	options.ApplyOptions(&o, opts...)
	return o
}

// WithAuthorizeURL returns a NewClientOption that overrides the authorization page URL.
func WithAuthorizeURL(u string) options.NewClientOption[Options] {
	return &authorizeURLOpt{url: u}
}

type authorizeURLOpt struct {
	url string
}

func (o *authorizeURLOpt) Apply(opts *Options) {
	opts.AuthorizeURL = o.url
}

func (o *authorizeURLOpt) NewClientOptionName() string {
	return optionNameAuthorizeURL
}

// WithTokenURL returns a NewClientOption that overrides the token endpoint.
func WithTokenURL(u string) options.NewClientOption[Options] {
	return &tokenURLOpt{url: u}
}

type tokenURLOpt struct {
	url string
}

func (o *tokenURLOpt) Apply(opts *Options) {
	opts.TokenURL = o.url
}

func (o *tokenURLOpt) NewClientOptionName() string {
	return optionNameTokenURL
}

// WithHTTPClient returns a NewClientOption that sends token requests through client.
func WithHTTPClient(client *http.Client) options.NewClientOption[Options] {
	return &httpClientOpt{client: client}
}

type httpClientOpt struct {
	client *http.Client
}

func (o *httpClientOpt) Apply(opts *Options) {
	opts.HTTPClient = o.client
}

func (o *httpClientOpt) NewClientOptionName() string {
	return optionNameHTTPClient
}
