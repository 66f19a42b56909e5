package dropbox

import "context"

const defaultCheckQuery = "foo"

// Check is the connectivity check group.
type Check struct {
	caller Caller
}

// User checks that the access token works.  The server echoes query back; it defaults to "foo".
func (c *Check) User(ctx context.Context, query string) (Envelope, error) {
	return c.caller.RPC(ctx, "/check/user", Params{"query": orDefault(query, defaultCheckQuery)})
}

// App checks that the app credentials work.  The server echoes query back; it defaults to "foo".
func (c *Check) App(ctx context.Context, query string) (Envelope, error) {
	return c.caller.RPC(ctx, "/check/app", Params{"query": orDefault(query, defaultCheckQuery)})
}
