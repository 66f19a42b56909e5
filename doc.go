// Package dropbox is a client for the Dropbox API v2.
//
// # Usage
//
// Build a client from an access token and call the endpoint groups:
//
//	import "github.com/c2fo/dropbox"
//
//	func DoSomething(ctx context.Context) error {
//	    client := dropbox.NewClient(os.Getenv("DROPBOX_ACCESS_TOKEN"))
//
//	    meta, err := client.Files.Upload(ctx, "/notes.txt", []byte("hello"), dropbox.UploadOptions{})
//	    if err != nil {
//	        return err
//	    }
//	    ...
//	}
//
// Or build it from the environment with the config package:
//
//	cfg, err := config.Load("~/.dropbox.env")
//	if err != nil {
//	    return err
//	}
//	client, err := cfg.NewClient()
//
// # Endpoint groups
//
// Client exposes Files, Sharing, Users, FileRequests, Paper and Check.  Every method returns the decoded
// response body as an Envelope, or a *DownloadResult for download-shaped calls (file content plus the metadata
// sent in the Dropbox-API-Result header).  Envelopes can be decoded into the typed models:
//
//	var m dropbox.Metadata
//	if err := meta.Decode(&m); err != nil {
//	    return err
//	}
//
// Paginated listings are exposed as pairs (ListFolder and ListFolderContinue, and so on): pass the cursor from
// one envelope into the next call.  Batch operations that the server runs as jobs return an async job id which
// is polled with the matching check method.  Files.UploadStream switches to an upload session for large
// content.  Nothing is retried and nothing is paginated for you.
//
// # Errors
//
// Every network failure, non-2xx response and undecodable body is returned as an *APIError.  Code is the HTTP
// status (0 when no response arrived) and Response is the server's error body:
//
//	_, err := client.Files.GetMetadata(ctx, "/missing", dropbox.MetadataOptions{})
//	if apiErr, ok := dropbox.AsAPIError(err); ok {
//	    if tag, ok := apiErr.Tag(); ok && tag == "path" {
//	        ...
//	    }
//	}
//
// Link conversion fails with ErrInvalidInput before any request is sent.
//
// # Direct links
//
// ConvertToDirectLink turns a shared link into a URL that serves the file itself, either by forcing raw=1 on
// the original host (LinkMethodRaw) or by moving it to dl.dropboxusercontent.com (LinkMethodUsercontent).
// Sharing.CreateDirectLink creates the shared link and converts it in one step.
//
// # Authentication
//
// The oauth package builds authorization URLs and exchanges codes and refresh tokens.  Replace the token of a
// live client with SetAccessToken.  A Transport is not safe for changing the token while calls are in flight.
//
// # Registry
//
// Applications that wire dependencies at startup can keep named clients in a registry.Registry, built lazily
// from a config.Config with FromConfig.
package dropbox
