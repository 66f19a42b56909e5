package dropbox

import (
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/c2fo/dropbox/options"
)

const (
	optionNameRPCURL       = "rpcURL"
	optionNameContentURL   = "contentURL"
	optionNameNotifyURL    = "notifyURL"
	optionNameTimeout      = "timeout"
	optionNameUserAgent    = "userAgent"
	optionNameLogger       = "logger"
	optionNameHTTPClient   = "httpClient"
	optionNameRoundTripper = "roundTripper"
)

// WithRPCURL sets the base URL for RPC-style calls.  A trailing slash is removed.
func WithRPCURL(u string) options.NewClientOption[Transport] {
	return &rpcURLOpt{url: u}
}

type rpcURLOpt struct {
	url string
}

func (o *rpcURLOpt) Apply(t *Transport) {
	t.options.RPCURL = strings.TrimSuffix(o.url, "/")
}

func (o *rpcURLOpt) NewClientOptionName() string {
	return optionNameRPCURL
}

// WithContentURL sets the base URL for upload and download calls.  A trailing slash is removed.
func WithContentURL(u string) options.NewClientOption[Transport] {
	return &contentURLOpt{url: u}
}

type contentURLOpt struct {
	url string
}

func (o *contentURLOpt) Apply(t *Transport) {
	t.options.ContentURL = strings.TrimSuffix(o.url, "/")
}

func (o *contentURLOpt) NewClientOptionName() string {
	return optionNameContentURL
}

// WithNotifyURL sets the base URL for longpoll calls.  A trailing slash is removed.
func WithNotifyURL(u string) options.NewClientOption[Transport] {
	return &notifyURLOpt{url: u}
}

type notifyURLOpt struct {
	url string
}

func (o *notifyURLOpt) Apply(t *Transport) {
	t.options.NotifyURL = strings.TrimSuffix(o.url, "/")
}

func (o *notifyURLOpt) NewClientOptionName() string {
	return optionNameNotifyURL
}

// WithTimeout sets the overall request timeout.
// Default is 300s.
func WithTimeout(d time.Duration) options.NewClientOption[Transport] {
	return &timeoutOpt{timeout: d}
}

type timeoutOpt struct {
	timeout time.Duration
}

func (o *timeoutOpt) Apply(t *Transport) {
	t.options.Timeout = o.timeout
}

func (o *timeoutOpt) NewClientOptionName() string {
	return optionNameTimeout
}

// WithUserAgent sets the User-Agent header sent on every request.
func WithUserAgent(agent string) options.NewClientOption[Transport] {
	return &userAgentOpt{agent: agent}
}

type userAgentOpt struct {
	agent string
}

func (o *userAgentOpt) Apply(t *Transport) {
	t.options.UserAgent = o.agent
}

func (o *userAgentOpt) NewClientOptionName() string {
	return optionNameUserAgent
}

// WithLogger sets the logger used for request tracing.  Defaults to a null logger.
func WithLogger(l hclog.Logger) options.NewClientOption[Transport] {
	return &loggerOpt{logger: l}
}

type loggerOpt struct {
	logger hclog.Logger
}

func (o *loggerOpt) Apply(t *Transport) {
	if o.logger != nil {
		t.logger = o.logger
	}
}

func (o *loggerOpt) NewClientOptionName() string {
	return optionNameLogger
}

// WithHTTPClient sets the *http.Client requests are sent through, e.g. one already set up for a proxy.  The
// transport works on a shallow copy, so WithTimeout and WithRoundTripper never change c itself.
func WithHTTPClient(c *http.Client) options.NewClientOption[Transport] {
	return &httpClientOpt{client: c}
}

type httpClientOpt struct {
	client *http.Client
}

func (o *httpClientOpt) Apply(t *Transport) {
	t.httpClient = o.client
}

func (o *httpClientOpt) NewClientOptionName() string {
	return optionNameHTTPClient
}

// WithRoundTripper sets the http.RoundTripper requests are sent through.  Mostly useful for testing.
func WithRoundTripper(rt http.RoundTripper) options.NewClientOption[Transport] {
	return &roundTripperOpt{rt: rt}
}

type roundTripperOpt struct {
	rt http.RoundTripper
}

func (o *roundTripperOpt) Apply(t *Transport) {
	t.roundTripper = o.rt
}

func (o *roundTripperOpt) NewClientOptionName() string {
	return optionNameRoundTripper
}
