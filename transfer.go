package dropbox

import (
	"context"
	"fmt"
	"io"
)

const (
	defaultChunkSize          = 4 * 1024 * 1024
	defaultSingleRequestLimit = 150 * 1024 * 1024

	sessionIDKey = "session_id"
)

// StreamUploadOptions configure UploadStream.  ChunkSize defaults to 4MB and SingleRequestLimit to 150MB.
type StreamUploadOptions struct {
	UploadOptions

	// ChunkSize is the size of each upload session request.
	ChunkSize int64

	// SingleRequestLimit is the largest content sent with one Upload call; anything larger uses a session.
	SingleRequestLimit int64
}

// UploadStream uploads exactly size bytes read from r to path and returns the committed file's metadata.
// Content up to SingleRequestLimit is sent with Upload, larger content through an upload session that holds at
// most one chunk in memory at a time.
func (f *Files) UploadStream(ctx context.Context, path string, r io.Reader, size int64, opts StreamUploadOptions) (Envelope, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative upload size %d", ErrInvalidInput, size)
	}
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = defaultChunkSize
	}
	if opts.SingleRequestLimit <= 0 {
		opts.SingleRequestLimit = defaultSingleRequestLimit
	}
	if opts.Mode == "" {
		opts.Mode = WriteModeAdd
	}

	if size <= opts.SingleRequestLimit {
		content, err := readChunk(r, size)
		if err != nil {
			return nil, err
		}
		return f.Upload(ctx, path, content, opts.UploadOptions)
	}

	return f.uploadSession(ctx, path, r, size, opts)
}

func (f *Files) uploadSession(ctx context.Context, path string, r io.Reader, size int64, opts StreamUploadOptions) (Envelope, error) {
	chunk, err := readChunk(r, min(opts.ChunkSize, size))
	if err != nil {
		return nil, err
	}
	started, err := f.UploadSessionStart(ctx, chunk, false)
	if err != nil {
		return nil, err
	}
	sessionID, _ := started[sessionIDKey].(string)
	if sessionID == "" {
		return nil, NewAPIError("upload session start: response has no session_id", 0, started)
	}

	offset := int64(len(chunk))
	for offset < size {
		chunk, err = readChunk(r, min(opts.ChunkSize, size-offset))
		if err != nil {
			return nil, err
		}
		if _, err := f.UploadSessionAppend(ctx, sessionID, uint64(offset), chunk, false); err != nil {
			return nil, err
		}
		offset += int64(len(chunk))
	}

	return f.UploadSessionFinish(ctx, sessionID, uint64(offset), nil, Params{
		"path":            path,
		"mode":            writeMode(opts.Mode, opts.Rev),
		"autorename":      opts.Autorename,
		"mute":            opts.Mute,
		"strict_conflict": opts.StrictConflict,
	})
}

func readChunk(r io.Reader, n int64) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("reading upload content: %w", err)
	}
	return buf, nil
}
