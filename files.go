package dropbox

import (
	"context"
	"time"
)

const (
	defaultTemporaryUploadLinkDuration = 4 * time.Hour
	defaultLongpollTimeout             = 30 * time.Second
	defaultRevisionsMode               = "path"
	defaultRevisionsLimit              = 10
	defaultSearchMaxResults            = 100
	defaultThumbnailFormat             = "jpeg"
	defaultThumbnailSize               = "w64h64"
	defaultThumbnailMode               = "strict"
)

// Files is the file and folder operations group.
type Files struct {
	caller Caller
}

// RelocationOptions are the flags shared by copy and move calls.  AllowSharedFolder is only sent by Move.
type RelocationOptions struct {
	Autorename             bool
	AllowSharedFolder      bool
	AllowOwnershipTransfer bool
}

// RelocationPath is one entry of a batch copy or move.
type RelocationPath struct {
	FromPath string
	ToPath   string
}

func relocationEntries(entries []RelocationPath) []Params {
	out := make([]Params, len(entries))
	for i, e := range entries {
		out[i] = Params{"from_path": e.FromPath, "to_path": e.ToPath}
	}
	return out
}

// Copy copies a file or folder.
func (f *Files) Copy(ctx context.Context, fromPath, toPath string, opts RelocationOptions) (Envelope, error) {
	return f.caller.RPC(ctx, "/files/copy_v2", Params{
		"from_path":                fromPath,
		"to_path":                  toPath,
		"autorename":               opts.Autorename,
		"allow_ownership_transfer": opts.AllowOwnershipTransfer,
	})
}

// CopyBatch starts copying several entries.  The envelope holds either the result or an async job id.
func (f *Files) CopyBatch(ctx context.Context, entries []RelocationPath, opts RelocationOptions) (Envelope, error) {
	return f.caller.RPC(ctx, "/files/copy_batch_v2", Params{
		"entries":                  relocationEntries(entries),
		"autorename":               opts.Autorename,
		"allow_ownership_transfer": opts.AllowOwnershipTransfer,
	})
}

// CopyBatchCheck polls a CopyBatch job.
func (f *Files) CopyBatchCheck(ctx context.Context, asyncJobID string) (Envelope, error) {
	return f.caller.RPC(ctx, "/files/copy_batch/check_v2", Params{"async_job_id": asyncJobID})
}

// CreateFolder creates a folder.
func (f *Files) CreateFolder(ctx context.Context, path string, autorename bool) (Envelope, error) {
	return f.caller.RPC(ctx, "/files/create_folder_v2", Params{
		"path":       path,
		"autorename": autorename,
	})
}

// CreateFolderBatch creates several folders.
func (f *Files) CreateFolderBatch(ctx context.Context, paths []string, autorename, forceAsync bool) (Envelope, error) {
	return f.caller.RPC(ctx, "/files/create_folder_batch", Params{
		"paths":       paths,
		"autorename":  autorename,
		"force_async": forceAsync,
	})
}

// Delete deletes a file or folder.
func (f *Files) Delete(ctx context.Context, path string) (Envelope, error) {
	return f.caller.RPC(ctx, "/files/delete_v2", Params{"path": path})
}

// DeleteBatch deletes several paths.
func (f *Files) DeleteBatch(ctx context.Context, paths []string) (Envelope, error) {
	entries := make([]Params, len(paths))
	for i, p := range paths {
		entries[i] = Params{"path": p}
	}
	return f.caller.RPC(ctx, "/files/delete_batch", Params{"entries": entries})
}

// Download fetches a file.  rev is optional.
func (f *Files) Download(ctx context.Context, path, rev string) (*DownloadResult, error) {
	params := Params{"path": path}
	if rev != "" {
		params["rev"] = rev
	}
	return f.caller.Download(ctx, "/files/download", params)
}

// DownloadZip fetches a folder as a zip archive.
func (f *Files) DownloadZip(ctx context.Context, path string) (*DownloadResult, error) {
	return f.caller.Download(ctx, "/files/download_zip", Params{"path": path})
}

// Export exports a non-downloadable file such as a Paper doc.  format is optional.
func (f *Files) Export(ctx context.Context, path string, format ExportFormat) (*DownloadResult, error) {
	params := Params{"path": path}
	if format != "" {
		params["export_format"] = string(format)
	}
	return f.caller.Download(ctx, "/files/export", params)
}

// GetCopyReference returns a reference that can be saved into another account.
func (f *Files) GetCopyReference(ctx context.Context, path string) (Envelope, error) {
	return f.caller.RPC(ctx, "/files/copy_reference/get", Params{"path": path})
}

// SaveCopyReference saves a copy reference at path.
func (f *Files) SaveCopyReference(ctx context.Context, copyReference, path string) (Envelope, error) {
	return f.caller.RPC(ctx, "/files/copy_reference/save", Params{
		"copy_reference": copyReference,
		"path":           path,
	})
}

// MetadataOptions select optional metadata fields.
type MetadataOptions struct {
	IncludeMediaInfo                bool
	IncludeDeleted                  bool
	IncludeHasExplicitSharedMembers bool
}

// GetMetadata returns the metadata of a file or folder.
func (f *Files) GetMetadata(ctx context.Context, path string, opts MetadataOptions) (Envelope, error) {
	return f.caller.RPC(ctx, "/files/get_metadata", Params{
		"path":                                path,
		"include_media_info":                  opts.IncludeMediaInfo,
		"include_deleted":                     opts.IncludeDeleted,
		"include_has_explicit_shared_members": opts.IncludeHasExplicitSharedMembers,
	})
}

// GetPreview fetches a rendered preview.  rev is optional.
func (f *Files) GetPreview(ctx context.Context, path, rev string) (*DownloadResult, error) {
	params := Params{"path": path}
	if rev != "" {
		params["rev"] = rev
	}
	return f.caller.Download(ctx, "/files/get_preview", params)
}

// GetTemporaryLink returns a short-lived link to stream a file.
func (f *Files) GetTemporaryLink(ctx context.Context, path string) (Envelope, error) {
	return f.caller.RPC(ctx, "/files/get_temporary_link", Params{"path": path})
}

// GetTemporaryUploadLink returns a link a third party can upload to.  A zero duration means four hours.
func (f *Files) GetTemporaryUploadLink(ctx context.Context, commitInfo Params, duration time.Duration) (Envelope, error) {
	if duration <= 0 {
		duration = defaultTemporaryUploadLinkDuration
	}
	return f.caller.RPC(ctx, "/files/get_temporary_upload_link", Params{
		"commit_info": commitInfo,
		"duration":    int64(duration / time.Second),
	})
}

// ThumbnailOptions control thumbnail rendering.  Empty fields fall back to jpeg, w64h64 and strict.
type ThumbnailOptions struct {
	Format string
	Size   string
	Mode   string
}

// GetThumbnail fetches a thumbnail of an image.
func (f *Files) GetThumbnail(ctx context.Context, path string, opts ThumbnailOptions) (*DownloadResult, error) {
	return f.caller.Download(ctx, "/files/get_thumbnail_v2", Params{
		"resource": Params{tagKey: "path", "path": path},
		"format":   orDefault(opts.Format, defaultThumbnailFormat),
		"size":     orDefault(opts.Size, defaultThumbnailSize),
		"mode":     orDefault(opts.Mode, defaultThumbnailMode),
	})
}

// GetThumbnailBatch fetches several thumbnails in one RPC.  Entries are sent as given.
func (f *Files) GetThumbnailBatch(ctx context.Context, entries []Params) (Envelope, error) {
	return f.caller.RPC(ctx, "/files/get_thumbnail_batch", Params{"entries": entries})
}

// ListFolderArg are the arguments of ListFolder.  Path "" is the root.  Mounted folders are included unless
// ExcludeMountedFolders is set, and Limit is only sent when positive.
type ListFolderArg struct {
	Path                            string
	Recursive                       bool
	IncludeMediaInfo                bool
	IncludeDeleted                  bool
	IncludeHasExplicitSharedMembers bool
	ExcludeMountedFolders           bool
	Limit                           uint32
}

// ListFolder lists a folder.  Use ListFolderContinue with the returned cursor for further pages.
func (f *Files) ListFolder(ctx context.Context, arg ListFolderArg) (Envelope, error) {
	params := Params{
		"path":                                arg.Path,
		"recursive":                           arg.Recursive,
		"include_media_info":                  arg.IncludeMediaInfo,
		"include_deleted":                     arg.IncludeDeleted,
		"include_has_explicit_shared_members": arg.IncludeHasExplicitSharedMembers,
		"include_mounted_folders":             !arg.ExcludeMountedFolders,
	}
	if arg.Limit > 0 {
		params["limit"] = arg.Limit
	}
	return f.caller.RPC(ctx, "/files/list_folder", params)
}

// ListFolderContinue fetches the next page of a listing.
func (f *Files) ListFolderContinue(ctx context.Context, cursor string) (Envelope, error) {
	return f.caller.RPC(ctx, "/files/list_folder/continue", Params{"cursor": cursor})
}

// ListFolderGetLatestCursor returns a cursor for the current state of a folder without listing it.
func (f *Files) ListFolderGetLatestCursor(ctx context.Context, path string, recursive bool) (Envelope, error) {
	return f.caller.RPC(ctx, "/files/list_folder/get_latest_cursor", Params{
		"path":      path,
		"recursive": recursive,
	})
}

// ListFolderLongpoll blocks until the folder behind cursor changes or timeout (default 30s) elapses.  It is
// sent to the notify host without an Authorization header.
func (f *Files) ListFolderLongpoll(ctx context.Context, cursor string, timeout time.Duration) (Envelope, error) {
	if timeout <= 0 {
		timeout = defaultLongpollTimeout
	}
	return f.caller.Notify(ctx, "/files/list_folder/longpoll", Params{
		"cursor":  cursor,
		"timeout": int64(timeout / time.Second),
	})
}

// ListRevisions lists revisions of a file.  mode defaults to "path" and limit to 10.
func (f *Files) ListRevisions(ctx context.Context, path, mode string, limit int) (Envelope, error) {
	if limit <= 0 {
		limit = defaultRevisionsLimit
	}
	return f.caller.RPC(ctx, "/files/list_revisions", Params{
		"path":  path,
		"mode":  orDefault(mode, defaultRevisionsMode),
		"limit": limit,
	})
}

// Move moves a file or folder.
func (f *Files) Move(ctx context.Context, fromPath, toPath string, opts RelocationOptions) (Envelope, error) {
	return f.caller.RPC(ctx, "/files/move_v2", Params{
		"from_path":                fromPath,
		"to_path":                  toPath,
		"autorename":               opts.Autorename,
		"allow_shared_folder":      opts.AllowSharedFolder,
		"allow_ownership_transfer": opts.AllowOwnershipTransfer,
	})
}

// MoveBatch starts moving several entries.
func (f *Files) MoveBatch(ctx context.Context, entries []RelocationPath, opts RelocationOptions) (Envelope, error) {
	return f.caller.RPC(ctx, "/files/move_batch_v2", Params{
		"entries":                  relocationEntries(entries),
		"autorename":               opts.Autorename,
		"allow_ownership_transfer": opts.AllowOwnershipTransfer,
	})
}

// PermanentlyDelete deletes a file or folder with no way to restore it.
func (f *Files) PermanentlyDelete(ctx context.Context, path string) (Envelope, error) {
	return f.caller.RPC(ctx, "/files/permanently_delete", Params{"path": path})
}

// Restore restores a file to rev.
func (f *Files) Restore(ctx context.Context, path, rev string) (Envelope, error) {
	return f.caller.RPC(ctx, "/files/restore", Params{"path": path, "rev": rev})
}

// SaveURL asks the server to fetch url into path.  The envelope holds an async job id.
func (f *Files) SaveURL(ctx context.Context, path, url string) (Envelope, error) {
	return f.caller.RPC(ctx, "/files/save_url", Params{"path": path, "url": url})
}

// SaveURLCheckJobStatus polls a SaveURL job.
func (f *Files) SaveURLCheckJobStatus(ctx context.Context, asyncJobID string) (Envelope, error) {
	return f.caller.RPC(ctx, "/files/save_url/check_job_status", Params{"async_job_id": asyncJobID})
}

// SearchOptions narrow a search.  Zero values fall back to 100 results, relevance order and active files.
type SearchOptions struct {
	Path           string
	MaxResults     int
	OrderBy        SearchOrderBy
	FileStatus     FileStatus
	FilenameOnly   bool
	FileExtensions []string
	FileCategories []FileCategory
}

// Search searches file and folder names and contents.
func (f *Files) Search(ctx context.Context, query string, opts SearchOptions) (Envelope, error) {
	if opts.MaxResults <= 0 {
		opts.MaxResults = defaultSearchMaxResults
	}
	if opts.OrderBy == "" {
		opts.OrderBy = SearchOrderByRelevance
	}
	if opts.FileStatus == "" {
		opts.FileStatus = FileStatusActive
	}

	searchOpts := Params{
		"max_results": opts.MaxResults,
		"order_by":    tagged(opts.OrderBy),
		"file_status": tagged(opts.FileStatus),
	}
	if opts.Path != "" {
		searchOpts["path"] = opts.Path
	}
	if opts.FilenameOnly {
		searchOpts["filename_only"] = true
	}
	if len(opts.FileExtensions) > 0 {
		searchOpts["file_extensions"] = opts.FileExtensions
	}
	if len(opts.FileCategories) > 0 {
		searchOpts["file_categories"] = taggedList(opts.FileCategories)
	}

	return f.caller.RPC(ctx, "/files/search_v2", Params{
		"query":   query,
		"options": searchOpts,
	})
}

// SearchContinue fetches the next page of a search.
func (f *Files) SearchContinue(ctx context.Context, cursor string) (Envelope, error) {
	return f.caller.RPC(ctx, "/files/search/continue_v2", Params{"cursor": cursor})
}

// UploadOptions control how an upload is committed.  Mode defaults to add; Rev is required with
// WriteModeUpdate.
type UploadOptions struct {
	Mode           WriteMode
	Rev            string
	Autorename     bool
	Mute           bool
	StrictConflict bool
}

// Upload uploads content to path in a single request.
func (f *Files) Upload(ctx context.Context, path string, content []byte, opts UploadOptions) (Envelope, error) {
	if opts.Mode == "" {
		opts.Mode = WriteModeAdd
	}
	return f.caller.Upload(ctx, "/files/upload", content, Params{
		"path":            path,
		"mode":            writeMode(opts.Mode, opts.Rev),
		"autorename":      opts.Autorename,
		"mute":            opts.Mute,
		"strict_conflict": opts.StrictConflict,
	})
}

// UploadSessionStart opens an upload session with the first chunk.
func (f *Files) UploadSessionStart(ctx context.Context, content []byte, closeSession bool) (Envelope, error) {
	return f.caller.Upload(ctx, "/files/upload_session/start", content, Params{"close": closeSession})
}

// UploadSessionAppend appends a chunk at offset.
func (f *Files) UploadSessionAppend(ctx context.Context, sessionID string, offset uint64, content []byte, closeSession bool) (Envelope, error) {
	return f.caller.Upload(ctx, "/files/upload_session/append_v2", content, Params{
		"cursor": sessionCursor(sessionID, offset),
		"close":  closeSession,
	})
}

// UploadSessionFinish uploads the last chunk and commits the file described by commit.
func (f *Files) UploadSessionFinish(ctx context.Context, sessionID string, offset uint64, content []byte, commit Params) (Envelope, error) {
	return f.caller.Upload(ctx, "/files/upload_session/finish", content, Params{
		"cursor": sessionCursor(sessionID, offset),
		"commit": commit,
	})
}

// UploadSessionFinishBatch commits several closed sessions.
func (f *Files) UploadSessionFinishBatch(ctx context.Context, entries []Params) (Envelope, error) {
	return f.caller.RPC(ctx, "/files/upload_session/finish_batch", Params{"entries": entries})
}

// UploadSessionFinishBatchCheck polls an UploadSessionFinishBatch job.
func (f *Files) UploadSessionFinishBatchCheck(ctx context.Context, asyncJobID string) (Envelope, error) {
	return f.caller.RPC(ctx, "/files/upload_session/finish_batch/check", Params{"async_job_id": asyncJobID})
}

func sessionCursor(sessionID string, offset uint64) Params {
	return Params{"session_id": sessionID, "offset": offset}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
