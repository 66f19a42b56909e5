package dropbox

import "time"

const (
	defaultRPCURL     = "https://api.dropboxapi.com/2"
	defaultContentURL = "https://content.dropboxapi.com/2"
	defaultNotifyURL  = "https://notify.dropboxapi.com/2"
	defaultTimeout    = 300 * time.Second
)

// Options holds configuration options for the Transport.
type Options struct {
	// RPCURL is the base URL for RPC-style calls (default: https://api.dropboxapi.com/2).
	RPCURL string

	// ContentURL is the base URL for upload and download calls (default: https://content.dropboxapi.com/2).
	ContentURL string

	// NotifyURL is the base URL for longpoll calls (default: https://notify.dropboxapi.com/2).
	NotifyURL string

	// Timeout is the overall timeout applied to every request (default: 300s).
	Timeout time.Duration

	// UserAgent, when set, is sent on every request.
	UserAgent string
}

// NewOptions creates Options with default values.
func NewOptions() Options {
	return Options{
		RPCURL:     defaultRPCURL,
		ContentURL: defaultContentURL,
		NotifyURL:  defaultNotifyURL,
		Timeout:    defaultTimeout,
	}
}
