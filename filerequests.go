package dropbox

import (
	"context"
	"time"
)

const (
	defaultFileRequestsListLimit = 1000
	deadlineLayout               = "2006-01-02T15:04:05Z"
)

// FileRequests is the file request group.
type FileRequests struct {
	caller Caller
}

// CreateFileRequestOptions are the optional arguments of Create.  A zero Deadline is not sent and the request
// is open unless Closed is set.
type CreateFileRequestOptions struct {
	Deadline    time.Time
	Closed      bool
	Description string
}

// Create creates a file request that uploads into destination.
func (r *FileRequests) Create(ctx context.Context, title, destination string, opts CreateFileRequestOptions) (Envelope, error) {
	params := Params{
		"title":       title,
		"destination": destination,
		"open":        !opts.Closed,
	}
	if !opts.Deadline.IsZero() {
		params["deadline"] = Params{"deadline": opts.Deadline.UTC().Format(deadlineLayout)}
	}
	if opts.Description != "" {
		params["description"] = opts.Description
	}
	return r.caller.RPC(ctx, "/file_requests/create", params)
}

// Get returns a file request.
func (r *FileRequests) Get(ctx context.Context, id string) (Envelope, error) {
	return r.caller.RPC(ctx, "/file_requests/get", Params{"id": id})
}

// List lists file requests.  limit defaults to 1000.
func (r *FileRequests) List(ctx context.Context, limit int) (Envelope, error) {
	return r.caller.RPC(ctx, "/file_requests/list_v2", Params{
		"limit": orDefaultInt(limit, defaultFileRequestsListLimit),
	})
}

// ListContinue fetches the next page of List.
func (r *FileRequests) ListContinue(ctx context.Context, cursor string) (Envelope, error) {
	return r.caller.RPC(ctx, "/file_requests/list/continue", Params{"cursor": cursor})
}

// Update updates a file request.  updates are merged over the id.
func (r *FileRequests) Update(ctx context.Context, id string, updates Params) (Envelope, error) {
	params := Params{"id": id}
	for k, v := range updates {
		params[k] = v
	}
	return r.caller.RPC(ctx, "/file_requests/update", params)
}

// Delete deletes closed file requests by id.
func (r *FileRequests) Delete(ctx context.Context, ids []string) (Envelope, error) {
	return r.caller.RPC(ctx, "/file_requests/delete", Params{"ids": ids})
}

// DeleteAllClosed deletes every closed file request.
func (r *FileRequests) DeleteAllClosed(ctx context.Context) (Envelope, error) {
	return r.caller.RPC(ctx, "/file_requests/delete_all_closed", nil)
}

// Count returns the number of file requests.
func (r *FileRequests) Count(ctx context.Context) (Envelope, error) {
	return r.caller.RPC(ctx, "/file_requests/count", nil)
}
