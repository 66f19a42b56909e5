package dropbox

const tagKey = ".tag"

// tagged wraps an enumerated choice the way the remote protocol encodes unions: {".tag": v}.
func tagged[T ~string](v T) Params {
	return Params{tagKey: string(v)}
}

// taggedList wraps each element with tagged.
func taggedList[T ~string](vs []T) []Params {
	out := make([]Params, len(vs))
	for i, v := range vs {
		out[i] = tagged(v)
	}
	return out
}

// AccessLevel defines the access a member has to a shared file or folder.
type AccessLevel string

// Access levels.
const (
	AccessLevelOwner           AccessLevel = "owner"
	AccessLevelEditor          AccessLevel = "editor"
	AccessLevelViewer          AccessLevel = "viewer"
	AccessLevelViewerNoComment AccessLevel = "viewer_no_comment"
)

// SearchOrderBy orders search results.
type SearchOrderBy string

// Search orderings.
const (
	SearchOrderByRelevance        SearchOrderBy = "relevance"
	SearchOrderByLastModifiedTime SearchOrderBy = "last_modified_time"
)

// FileStatus filters search results by deletion state.
type FileStatus string

// File statuses.
const (
	FileStatusActive  FileStatus = "active"
	FileStatusDeleted FileStatus = "deleted"
)

// FileCategory restricts search results to a kind of file.
type FileCategory string

// File categories.
const (
	FileCategoryImage        FileCategory = "image"
	FileCategoryDocument     FileCategory = "document"
	FileCategoryPDF          FileCategory = "pdf"
	FileCategorySpreadsheet  FileCategory = "spreadsheet"
	FileCategoryPresentation FileCategory = "presentation"
	FileCategoryAudio        FileCategory = "audio"
	FileCategoryVideo        FileCategory = "video"
	FileCategoryFolder       FileCategory = "folder"
	FileCategoryPaper        FileCategory = "paper"
	FileCategoryOthers       FileCategory = "others"
)

// ImportFormat is the format of content supplied to a Paper doc.
type ImportFormat string

// Import formats.
const (
	ImportFormatHTML      ImportFormat = "html"
	ImportFormatMarkdown  ImportFormat = "markdown"
	ImportFormatPlainText ImportFormat = "plain_text"
)

// ExportFormat is the format content is exported or downloaded in.
type ExportFormat string

// Export formats.
const (
	ExportFormatHTML     ExportFormat = "html"
	ExportFormatMarkdown ExportFormat = "markdown"
)

// DocUpdatePolicy decides how new content is combined with an existing Paper doc.
type DocUpdatePolicy string

// Doc update policies.
const (
	DocUpdatePolicyAppend       DocUpdatePolicy = "append"
	DocUpdatePolicyPrepend      DocUpdatePolicy = "prepend"
	DocUpdatePolicyOverwriteAll DocUpdatePolicy = "overwrite_all"
)

// PaperDocsFilterBy selects which Paper docs are listed.
type PaperDocsFilterBy string

// Paper doc filters.
const (
	PaperDocsFilterByAccessed PaperDocsFilterBy = "docs_accessed"
	PaperDocsFilterByCreated  PaperDocsFilterBy = "docs_created"
)

// PaperDocsSortBy orders listed Paper docs.
type PaperDocsSortBy string

// Paper doc orderings.
const (
	PaperDocsSortByAccessed PaperDocsSortBy = "accessed"
	PaperDocsSortByModified PaperDocsSortBy = "modified"
	PaperDocsSortByCreated  PaperDocsSortBy = "created"
)

// SortOrder is the direction of a listing.
type SortOrder string

// Sort orders.
const (
	SortOrderAscending  SortOrder = "ascending"
	SortOrderDescending SortOrder = "descending"
)

// AclUpdatePolicy decides who can change a shared folder's membership.
type AclUpdatePolicy string

// ACL update policies.
const (
	AclUpdatePolicyOwner   AclUpdatePolicy = "owner"
	AclUpdatePolicyEditors AclUpdatePolicy = "editors"
)

// MemberPolicy decides who can be a member of a shared folder.
type MemberPolicy string

// Member policies.
const (
	MemberPolicyTeam   MemberPolicy = "team"
	MemberPolicyAnyone MemberPolicy = "anyone"
)

// SharedLinkPolicy decides who can view shared links of a folder.
type SharedLinkPolicy string

// Shared link policies.
const (
	SharedLinkPolicyAnyone  SharedLinkPolicy = "anyone"
	SharedLinkPolicyTeam    SharedLinkPolicy = "team"
	SharedLinkPolicyMembers SharedLinkPolicy = "members"
)

// AccessInheritance decides whether a folder inherits access from its parent.
type AccessInheritance string

// Access inheritance values.
const (
	AccessInheritanceInherit   AccessInheritance = "inherit"
	AccessInheritanceNoInherit AccessInheritance = "no_inherit"
)

// ViewerInfoPolicy decides whether viewer information is shown on shared content.
type ViewerInfoPolicy string

// Viewer info policies.
const (
	ViewerInfoPolicyEnabled  ViewerInfoPolicy = "enabled"
	ViewerInfoPolicyDisabled ViewerInfoPolicy = "disabled"
)

// UserFeature names an account feature queried with Users.GetFeaturesValues.
type UserFeature string

// User features.
const (
	UserFeaturePaperAsFiles UserFeature = "paper_as_files"
	UserFeatureFileLocking  UserFeature = "file_locking"
)

// WriteMode selects what happens when an upload targets an existing file.
type WriteMode string

// Write modes.  WriteModeUpdate requires the revision being replaced.
const (
	WriteModeAdd       WriteMode = "add"
	WriteModeOverwrite WriteMode = "overwrite"
	WriteModeUpdate    WriteMode = "update"
)

// writeMode encodes an upload mode.  Plain modes are sent as bare strings; update carries its revision as a union.
func writeMode(mode WriteMode, rev string) any {
	if mode == WriteModeUpdate {
		return Params{tagKey: string(WriteModeUpdate), string(WriteModeUpdate): rev}
	}
	return string(mode)
}
