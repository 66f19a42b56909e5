package dropbox

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-hclog"
	jsoniter "github.com/json-iterator/go"

	"github.com/c2fo/dropbox/options"
	"github.com/c2fo/dropbox/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	headerAPIArg      = "Dropbox-API-Arg"
	headerAPIResult   = "Dropbox-API-Result"
	headerContentType = "Content-Type"
	headerUserAgent   = "User-Agent"

	contentTypeJSON   = "application/json"
	contentTypeBinary = "application/octet-stream"

	statusKey = "status"
)

// Envelope is a decoded response body: a JSON object passed back verbatim.
type Envelope map[string]any

// Params is a request parameter mapping.  Keys are sent exactly as given.
type Params map[string]any

// DownloadResult is the outcome of a download-shaped call: the raw body and the metadata carried in the
// Dropbox-API-Result response header.
type DownloadResult struct {
	Content  []byte
	Metadata Envelope
}

// Caller is the set of call shapes endpoint groups are built on.  *Transport implements it.
type Caller interface {
	// RPC sends params as a JSON body to the RPC base URL.
	RPC(ctx context.Context, path string, params Params) (Envelope, error)

	// Upload sends content as the body to the content base URL, with params in the Dropbox-API-Arg header.
	Upload(ctx context.Context, path string, content []byte, params Params) (Envelope, error)

	// Download sends params in the Dropbox-API-Arg header to the content base URL and returns the raw body.
	Download(ctx context.Context, path string, params Params) (*DownloadResult, error)

	// Notify is an unauthenticated RPC call against the notify base URL.
	Notify(ctx context.Context, path string, params Params) (Envelope, error)
}

// Transport is the single authenticated HTTP choke point.  Every transport-level failure it sees is returned
// as an *APIError.
type Transport struct {
	accessToken  string
	options      Options
	logger       hclog.Logger
	httpClient   *http.Client
	roundTripper http.RoundTripper
	client       *resty.Client
}

// NewTransport returns a Transport authenticating with accessToken.  The token is not validated.
func NewTransport(accessToken string, opts ...options.NewClientOption[Transport]) *Transport {
	t := &Transport{
		accessToken: accessToken,
		options:     NewOptions(),
		logger:      hclog.NewNullLogger(),
	}
	options.ApplyOptions(t, opts...)

	if t.httpClient != nil {
		// resty mutates the client it wraps; the caller's client keeps its own settings.
		hc := *t.httpClient
		t.client = resty.NewWithClient(&hc)
	} else {
		t.client = resty.New()
	}
	if t.roundTripper != nil {
		t.client.SetTransport(t.roundTripper)
	}
	t.client.
		SetTimeout(t.options.Timeout).
		SetLogger(&restyLogger{logger: t.logger}).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)
	if t.options.UserAgent != "" {
		t.client.SetHeader(headerUserAgent, t.options.UserAgent)
	}

	return t
}

// AccessToken returns the bearer token currently in use.
func (t *Transport) AccessToken() string {
	return t.accessToken
}

// SetAccessToken replaces the bearer token, e.g. after a refresh.  Calls already in flight keep the old token.
func (t *Transport) SetAccessToken(token string) {
	t.accessToken = token
}

// Options returns the effective transport options.
func (t *Transport) Options() Options {
	return t.options
}

// RPC implements Caller.
func (t *Transport) RPC(ctx context.Context, path string, params Params) (Envelope, error) {
	return t.jsonCall(ctx, "rpc", t.options.RPCURL+path, params, true)
}

// Notify implements Caller.
func (t *Transport) Notify(ctx context.Context, path string, params Params) (Envelope, error) {
	return t.jsonCall(ctx, "notify", t.options.NotifyURL+path, params, false)
}

// Upload implements Caller.
func (t *Transport) Upload(ctx context.Context, path string, content []byte, params Params) (Envelope, error) {
	arg, err := encodeArg(params)
	if err != nil {
		return nil, err
	}
	if content == nil {
		content = []byte{}
	}

	req := t.request(ctx, true).
		SetHeader(headerContentType, contentTypeBinary).
		SetHeader(headerAPIArg, arg).
		SetBody(content)

	resp, err := t.send(req, "upload", t.options.ContentURL+path)
	if err != nil {
		return nil, err
	}
	return decodeEnvelope(resp)
}

// Download implements Caller.
func (t *Transport) Download(ctx context.Context, path string, params Params) (*DownloadResult, error) {
	arg, err := encodeArg(params)
	if err != nil {
		return nil, err
	}

	req := t.request(ctx, true).SetHeader(headerAPIArg, arg)

	resp, err := t.send(req, "download", t.options.ContentURL+path)
	if err != nil {
		return nil, err
	}

	result := &DownloadResult{
		Content:  resp.Body(),
		Metadata: Envelope{},
	}
	if result.Content == nil {
		result.Content = []byte{}
	}
	if header := resp.Header().Get(headerAPIResult); header != "" {
		if err := json.Unmarshal([]byte(header), &result.Metadata); err != nil {
			return nil, WrapAPIError(
				fmt.Sprintf("%s: invalid %s header", resp.Request.URL, headerAPIResult),
				resp.StatusCode(), nil, utils.WrapResultHeaderError(err))
		}
		if result.Metadata == nil {
			result.Metadata = Envelope{}
		}
	}
	return result, nil
}

func (t *Transport) jsonCall(ctx context.Context, shape, url string, params Params, auth bool) (Envelope, error) {
	body, err := json.Marshal(params)
	if err != nil {
		return nil, utils.WrapEncodeError(err)
	}

	req := t.request(ctx, auth).
		SetHeader(headerContentType, contentTypeJSON).
		SetBody(body)

	resp, err := t.send(req, shape, url)
	if err != nil {
		return nil, err
	}
	return decodeEnvelope(resp)
}

func (t *Transport) request(ctx context.Context, auth bool) *resty.Request {
	if ctx == nil {
		ctx = context.Background()
	}
	req := t.client.R().SetContext(ctx)
	if auth {
		req.SetAuthToken(t.accessToken)
	}
	return req
}

// send is the one place underlying failures are normalized into *APIError.
func (t *Transport) send(req *resty.Request, shape, url string) (*resty.Response, error) {
	start := time.Now()
	resp, err := req.Post(url)
	if err != nil {
		t.logger.Debug("request failed", "shape", shape, "url", url, "error", err)
		return nil, WrapAPIError(fmt.Sprintf("POST %s", url), 0, nil, utils.WrapSendError(err))
	}

	t.logger.Debug("request complete",
		"shape", shape, "url", url, "status", resp.StatusCode(), "duration", time.Since(start))

	if !resp.IsSuccess() {
		var response map[string]any
		if len(resp.Body()) > 0 {
			if jerr := json.Unmarshal(resp.Body(), &response); jerr != nil {
				response = nil
			}
		}
		return nil, NewAPIError(fmt.Sprintf("POST %s: %s", url, resp.Status()), resp.StatusCode(), response)
	}
	return resp, nil
}

// decodeEnvelope turns a successful JSON response into an Envelope.  An empty body yields {"status": code}
// and a literal null yields an empty Envelope.
func decodeEnvelope(resp *resty.Response) (Envelope, error) {
	body := resp.Body()
	if len(body) == 0 {
		return Envelope{statusKey: resp.StatusCode()}, nil
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, WrapAPIError(fmt.Sprintf("%s: invalid JSON response", resp.Request.URL),
			resp.StatusCode(), nil, utils.WrapDecodeError(err))
	}

	switch v := decoded.(type) {
	case nil:
		return Envelope{}, nil
	case map[string]any:
		return Envelope(v), nil
	default:
		return nil, NewAPIError(fmt.Sprintf("%s: response is not a JSON object", resp.Request.URL),
			resp.StatusCode(), nil)
	}
}

// encodeArg renders params for the Dropbox-API-Arg header.  Nil params encode as {}.
func encodeArg(params Params) (string, error) {
	if params == nil {
		params = Params{}
	}
	b, err := json.Marshal(params)
	if err != nil {
		return "", utils.WrapEncodeError(err)
	}
	return utils.HeaderSafeJSON(b), nil
}

// restyLogger routes resty's own diagnostics into the transport's hclog logger.
type restyLogger struct {
	logger hclog.Logger
}

func (l *restyLogger) Errorf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

func (l *restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn(fmt.Sprintf(format, v...))
}

func (l *restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}
