package dropbox

import (
	"github.com/c2fo/dropbox/options"
)

// Client groups the endpoint collections.  Every group shares one Caller.
type Client struct {
	transport *Transport

	Files        *Files
	Sharing      *Sharing
	Users        *Users
	FileRequests *FileRequests
	Paper        *Paper
	Check        *Check
}

// NewClient initializer for Client struct.  It builds a Transport from accessToken and opts.
func NewClient(accessToken string, opts ...options.NewClientOption[Transport]) *Client {
	return NewClientWithCaller(NewTransport(accessToken, opts...))
}

// NewClientWithCaller builds a Client on an existing Caller, e.g. a mock.
func NewClientWithCaller(caller Caller) *Client {
	c := &Client{
		Files:        &Files{caller: caller},
		Sharing:      &Sharing{caller: caller},
		Users:        &Users{caller: caller},
		FileRequests: &FileRequests{caller: caller},
		Paper:        &Paper{caller: caller},
		Check:        &Check{caller: caller},
	}
	if t, ok := caller.(*Transport); ok {
		c.transport = t
	}
	return c
}

// Transport returns the underlying *Transport, or nil when the client was built on another Caller.
func (c *Client) Transport() *Transport {
	return c.transport
}

// AccessToken returns the bearer token in use, or "" when the client was built on another Caller.
func (c *Client) AccessToken() string {
	if c.transport == nil {
		return ""
	}
	return c.transport.AccessToken()
}

// SetAccessToken replaces the bearer token.  It is a no-op when the client was built on another Caller.
func (c *Client) SetAccessToken(token string) {
	if c.transport != nil {
		c.transport.SetAccessToken(token)
	}
}
