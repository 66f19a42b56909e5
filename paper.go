package dropbox

import "context"

const (
	defaultPaperListLimit = 100
	defaultPaperRevision  = 1
)

// Paper is the Paper document group.
type Paper struct {
	caller Caller
}

// DocsCreate creates a Paper doc from content.  format defaults to html and parentFolderID is optional.
func (p *Paper) DocsCreate(ctx context.Context, content []byte, format ImportFormat, parentFolderID string) (Envelope, error) {
	if format == "" {
		format = ImportFormatHTML
	}
	params := Params{"import_format": tagged(format)}
	if parentFolderID != "" {
		params["parent_folder_id"] = parentFolderID
	}
	return p.caller.Upload(ctx, "/paper/docs/create", content, params)
}

// DocsDownload exports a Paper doc.  format defaults to html.
func (p *Paper) DocsDownload(ctx context.Context, docID string, format ExportFormat) (*DownloadResult, error) {
	if format == "" {
		format = ExportFormatHTML
	}
	return p.caller.Download(ctx, "/paper/docs/download", Params{
		"doc_id":        docID,
		"export_format": tagged(format),
	})
}

// DocsGetMetadata returns the metadata of a Paper doc.
func (p *Paper) DocsGetMetadata(ctx context.Context, docID string) (Envelope, error) {
	return p.caller.RPC(ctx, "/paper/docs/get_metadata", Params{"doc_id": docID})
}

// DocsListOptions are the arguments of DocsList.  Zero values fall back to accessed docs, sorted by access time,
// descending, 100 per page.
type DocsListOptions struct {
	FilterBy  PaperDocsFilterBy
	SortBy    PaperDocsSortBy
	SortOrder SortOrder
	Limit     int
}

// DocsList lists Paper docs.
func (p *Paper) DocsList(ctx context.Context, opts DocsListOptions) (Envelope, error) {
	if opts.FilterBy == "" {
		opts.FilterBy = PaperDocsFilterByAccessed
	}
	if opts.SortBy == "" {
		opts.SortBy = PaperDocsSortByAccessed
	}
	if opts.SortOrder == "" {
		opts.SortOrder = SortOrderDescending
	}
	return p.caller.RPC(ctx, "/paper/docs/list", Params{
		"filter_by":  tagged(opts.FilterBy),
		"sort_by":    tagged(opts.SortBy),
		"sort_order": tagged(opts.SortOrder),
		"limit":      orDefaultInt(opts.Limit, defaultPaperListLimit),
	})
}

// DocsListContinue fetches the next page of DocsList.
func (p *Paper) DocsListContinue(ctx context.Context, cursor string) (Envelope, error) {
	return p.caller.RPC(ctx, "/paper/docs/list/continue", Params{"cursor": cursor})
}

// DocsPermanentlyDelete deletes a Paper doc for good.
func (p *Paper) DocsPermanentlyDelete(ctx context.Context, docID string) (Envelope, error) {
	return p.caller.RPC(ctx, "/paper/docs/permanently_delete", Params{"doc_id": docID})
}

// DocsUpdateOptions are the optional arguments of DocsUpdate.  Zero values fall back to html, append and
// revision 1.
type DocsUpdateOptions struct {
	Format   ImportFormat
	Policy   DocUpdatePolicy
	Revision int64
}

// DocsUpdate updates a Paper doc with content.
func (p *Paper) DocsUpdate(ctx context.Context, docID string, content []byte, opts DocsUpdateOptions) (Envelope, error) {
	if opts.Format == "" {
		opts.Format = ImportFormatHTML
	}
	if opts.Policy == "" {
		opts.Policy = DocUpdatePolicyAppend
	}
	if opts.Revision <= 0 {
		opts.Revision = defaultPaperRevision
	}
	return p.caller.Upload(ctx, "/paper/docs/update", content, Params{
		"doc_id":            docID,
		"import_format":     tagged(opts.Format),
		"doc_update_policy": tagged(opts.Policy),
		"revision":          opts.Revision,
	})
}

// DocsUsersAdd shares a Paper doc with members.  customMessage is optional.
func (p *Paper) DocsUsersAdd(ctx context.Context, docID string, members []Params, customMessage string, quiet bool) (Envelope, error) {
	params := Params{
		"doc_id":  docID,
		"members": members,
		"quiet":   quiet,
	}
	if customMessage != "" {
		params["custom_message"] = customMessage
	}
	return p.caller.RPC(ctx, "/paper/docs/users/add", params)
}

// DocsUsersList lists the users of a Paper doc.  limit defaults to 100.
func (p *Paper) DocsUsersList(ctx context.Context, docID string, limit int) (Envelope, error) {
	return p.caller.RPC(ctx, "/paper/docs/users/list", Params{
		"doc_id": docID,
		"limit":  orDefaultInt(limit, defaultPaperListLimit),
	})
}

// DocsUsersListContinue fetches the next page of DocsUsersList.
func (p *Paper) DocsUsersListContinue(ctx context.Context, docID, cursor string) (Envelope, error) {
	return p.caller.RPC(ctx, "/paper/docs/users/list/continue", Params{
		"doc_id": docID,
		"cursor": cursor,
	})
}

// DocsUsersRemove removes members from a Paper doc.
func (p *Paper) DocsUsersRemove(ctx context.Context, docID string, members []Params) (Envelope, error) {
	return p.caller.RPC(ctx, "/paper/docs/users/remove", Params{
		"doc_id":  docID,
		"members": members,
	})
}
