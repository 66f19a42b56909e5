package dropbox

import "context"

const (
	defaultSharingListLimit      = 100
	defaultFileMembersBatchLimit = 10
	directURLKey                 = "direct_url"
	sharedLinkURLKey             = "url"
)

// Sharing is the shared links, shared folders and shared files group.
type Sharing struct {
	caller Caller
}

// AddFolderMember invites members to a shared folder.  customMessage is optional.
func (s *Sharing) AddFolderMember(ctx context.Context, sharedFolderID string, members []Params, quiet bool, customMessage string) (Envelope, error) {
	params := Params{
		"shared_folder_id": sharedFolderID,
		"members":          members,
		"quiet":            quiet,
	}
	if customMessage != "" {
		params["custom_message"] = customMessage
	}
	return s.caller.RPC(ctx, "/sharing/add_folder_member", params)
}

// AddFileMemberOptions are the optional arguments of AddFileMember.  AccessLevel defaults to viewer.
type AddFileMemberOptions struct {
	CustomMessage       string
	Quiet               bool
	AccessLevel         AccessLevel
	AddMessageAsComment bool
}

// AddFileMember shares a file with members.
func (s *Sharing) AddFileMember(ctx context.Context, file string, members []Params, opts AddFileMemberOptions) (Envelope, error) {
	if opts.AccessLevel == "" {
		opts.AccessLevel = AccessLevelViewer
	}
	params := Params{
		"file":                   file,
		"members":                members,
		"quiet":                  opts.Quiet,
		"access_level":           tagged(opts.AccessLevel),
		"add_message_as_comment": opts.AddMessageAsComment,
	}
	if opts.CustomMessage != "" {
		params["custom_message"] = opts.CustomMessage
	}
	return s.caller.RPC(ctx, "/sharing/add_file_member", params)
}

// CheckJobStatus polls an asynchronous sharing job.
func (s *Sharing) CheckJobStatus(ctx context.Context, asyncJobID string) (Envelope, error) {
	return s.caller.RPC(ctx, "/sharing/check_job_status", Params{"async_job_id": asyncJobID})
}

// CheckShareJobStatus polls a ShareFolder job.
func (s *Sharing) CheckShareJobStatus(ctx context.Context, asyncJobID string) (Envelope, error) {
	return s.caller.RPC(ctx, "/sharing/check_share_job_status", Params{"async_job_id": asyncJobID})
}

// CreateSharedLinkWithSettings creates a shared link for path.  settings is omitted when nil.
func (s *Sharing) CreateSharedLinkWithSettings(ctx context.Context, path string, settings Params) (Envelope, error) {
	params := Params{"path": path}
	if settings != nil {
		params["settings"] = settings
	}
	return s.caller.RPC(ctx, "/sharing/create_shared_link_with_settings", params)
}

func linkParams(url, path, linkPassword string) Params {
	params := Params{"url": url}
	if path != "" {
		params["path"] = path
	}
	if linkPassword != "" {
		params["link_password"] = linkPassword
	}
	return params
}

// GetFileMetadata returns metadata of a shared file.  path and linkPassword are optional.
func (s *Sharing) GetFileMetadata(ctx context.Context, url, path, linkPassword string) (Envelope, error) {
	return s.caller.RPC(ctx, "/sharing/get_file_metadata", linkParams(url, path, linkPassword))
}

// GetFileMetadataBatch returns metadata of several shared files.
func (s *Sharing) GetFileMetadataBatch(ctx context.Context, urls []string) (Envelope, error) {
	return s.caller.RPC(ctx, "/sharing/get_file_metadata/batch", Params{"urls": urls})
}

// GetFolderMetadata returns metadata of a shared folder reached by link.  path and linkPassword are optional.
func (s *Sharing) GetFolderMetadata(ctx context.Context, url, path, linkPassword string) (Envelope, error) {
	return s.caller.RPC(ctx, "/sharing/get_folder_metadata", linkParams(url, path, linkPassword))
}

// GetSharedLinkMetadata returns metadata of a shared link.  path and linkPassword are optional.
func (s *Sharing) GetSharedLinkMetadata(ctx context.Context, url, path, linkPassword string) (Envelope, error) {
	return s.caller.RPC(ctx, "/sharing/get_shared_link_metadata", linkParams(url, path, linkPassword))
}

// GetSharedFolderMetadata returns metadata of a shared folder by id.
func (s *Sharing) GetSharedFolderMetadata(ctx context.Context, sharedFolderID string, actions []string) (Envelope, error) {
	params := Params{"shared_folder_id": sharedFolderID}
	withActions(params, actions)
	return s.caller.RPC(ctx, "/sharing/get_folder_metadata", params)
}

// ListSharedLinks lists shared links.  Every argument is optional.
func (s *Sharing) ListSharedLinks(ctx context.Context, path, cursor string, directOnly bool) (Envelope, error) {
	params := Params{}
	if path != "" {
		params["path"] = path
	}
	if cursor != "" {
		params["cursor"] = cursor
	}
	if directOnly {
		params["direct_only"] = true
	}
	return s.caller.RPC(ctx, "/sharing/list_shared_links", params)
}

// ListFolders lists the shared folders the account has access to.  limit defaults to 100.
func (s *Sharing) ListFolders(ctx context.Context, limit int, actions []string) (Envelope, error) {
	params := Params{"limit": orDefaultInt(limit, defaultSharingListLimit)}
	withActions(params, actions)
	return s.caller.RPC(ctx, "/sharing/list_folders", params)
}

// ListFoldersContinue fetches the next page of ListFolders.
func (s *Sharing) ListFoldersContinue(ctx context.Context, cursor string) (Envelope, error) {
	return s.caller.RPC(ctx, "/sharing/list_folders/continue", Params{"cursor": cursor})
}

// ListFolderMembers lists the members of a shared folder.  limit defaults to 100.
func (s *Sharing) ListFolderMembers(ctx context.Context, sharedFolderID string, actions []string, limit int) (Envelope, error) {
	params := Params{
		"shared_folder_id": sharedFolderID,
		"limit":            orDefaultInt(limit, defaultSharingListLimit),
	}
	withActions(params, actions)
	return s.caller.RPC(ctx, "/sharing/list_folder_members", params)
}

// ListFolderMembersContinue fetches the next page of ListFolderMembers.
func (s *Sharing) ListFolderMembersContinue(ctx context.Context, cursor string) (Envelope, error) {
	return s.caller.RPC(ctx, "/sharing/list_folder_members/continue", Params{"cursor": cursor})
}

// ListFileMembersBatch lists members of several files.  limit defaults to 10.
func (s *Sharing) ListFileMembersBatch(ctx context.Context, files []string, limit int) (Envelope, error) {
	return s.caller.RPC(ctx, "/sharing/list_file_members/batch", Params{
		"files": files,
		"limit": orDefaultInt(limit, defaultFileMembersBatchLimit),
	})
}

// ListFileMembersOptions are the optional arguments of ListFileMembers.  Inherited members are included unless
// ExcludeInherited is set.  Limit defaults to 100.
type ListFileMembersOptions struct {
	Actions          []string
	ExcludeInherited bool
	Limit            int
}

// ListFileMembers lists the members of a shared file.
func (s *Sharing) ListFileMembers(ctx context.Context, file string, opts ListFileMembersOptions) (Envelope, error) {
	params := Params{
		"file":              file,
		"include_inherited": !opts.ExcludeInherited,
		"limit":             orDefaultInt(opts.Limit, defaultSharingListLimit),
	}
	withActions(params, opts.Actions)
	return s.caller.RPC(ctx, "/sharing/list_file_members", params)
}

// ListFileMembersContinue fetches the next page of ListFileMembers.
func (s *Sharing) ListFileMembersContinue(ctx context.Context, cursor string) (Envelope, error) {
	return s.caller.RPC(ctx, "/sharing/list_file_members/continue", Params{"cursor": cursor})
}

// ListReceivedFiles lists files shared with the account.  limit defaults to 100.
func (s *Sharing) ListReceivedFiles(ctx context.Context, limit int, actions []string) (Envelope, error) {
	params := Params{"limit": orDefaultInt(limit, defaultSharingListLimit)}
	withActions(params, actions)
	return s.caller.RPC(ctx, "/sharing/list_received_files", params)
}

// ListReceivedFilesContinue fetches the next page of ListReceivedFiles.
func (s *Sharing) ListReceivedFilesContinue(ctx context.Context, cursor string) (Envelope, error) {
	return s.caller.RPC(ctx, "/sharing/list_received_files/continue", Params{"cursor": cursor})
}

// ModifySharedLinkSettings changes the settings of a shared link.  A nil settings sends an empty object.
func (s *Sharing) ModifySharedLinkSettings(ctx context.Context, url string, settings Params, removeExpiration bool) (Envelope, error) {
	if settings == nil {
		settings = Params{}
	}
	return s.caller.RPC(ctx, "/sharing/modify_shared_link_settings", Params{
		"url":               url,
		"settings":          settings,
		"remove_expiration": removeExpiration,
	})
}

// MountFolder mounts a shared folder into the account.
func (s *Sharing) MountFolder(ctx context.Context, sharedFolderID string) (Envelope, error) {
	return s.caller.RPC(ctx, "/sharing/mount_folder", Params{"shared_folder_id": sharedFolderID})
}

// RelinquishFolderMembership leaves a shared folder.
func (s *Sharing) RelinquishFolderMembership(ctx context.Context, sharedFolderID string, leaveACopy bool) (Envelope, error) {
	return s.caller.RPC(ctx, "/sharing/relinquish_folder_membership", Params{
		"shared_folder_id": sharedFolderID,
		"leave_a_copy":     leaveACopy,
	})
}

// RelinquishFileMembership leaves a shared file.
func (s *Sharing) RelinquishFileMembership(ctx context.Context, file string) (Envelope, error) {
	return s.caller.RPC(ctx, "/sharing/relinquish_file_membership", Params{"file": file})
}

// RemoveFolderMember removes a member from a shared folder.
func (s *Sharing) RemoveFolderMember(ctx context.Context, sharedFolderID string, member Params, leaveACopy bool) (Envelope, error) {
	return s.caller.RPC(ctx, "/sharing/remove_folder_member", Params{
		"shared_folder_id": sharedFolderID,
		"member":           member,
		"leave_a_copy":     leaveACopy,
	})
}

// RemoveFileMember removes a member from a shared file.
func (s *Sharing) RemoveFileMember(ctx context.Context, file string, member Params) (Envelope, error) {
	return s.caller.RPC(ctx, "/sharing/remove_file_member_2", Params{
		"file":   file,
		"member": member,
	})
}

// RevokeSharedLink revokes a shared link.
func (s *Sharing) RevokeSharedLink(ctx context.Context, url string) (Envelope, error) {
	return s.caller.RPC(ctx, "/sharing/revoke_shared_link", Params{"url": url})
}

// ShareFolderOptions are the optional arguments of ShareFolder.  Empty policies are not sent.
type ShareFolderOptions struct {
	AclUpdatePolicy   AclUpdatePolicy
	ForceAsync        bool
	MemberPolicy      MemberPolicy
	SharedLinkPolicy  SharedLinkPolicy
	ViewerInfoPolicy  ViewerInfoPolicy
	AccessInheritance AccessInheritance
	Actions           []string
	LinkSettings      Params
}

// ShareFolder shares a folder.  The envelope holds either the shared folder metadata or an async job id.
func (s *Sharing) ShareFolder(ctx context.Context, path string, opts ShareFolderOptions) (Envelope, error) {
	params := Params{
		"path":        path,
		"force_async": opts.ForceAsync,
	}
	if opts.AclUpdatePolicy != "" {
		params["acl_update_policy"] = tagged(opts.AclUpdatePolicy)
	}
	if opts.MemberPolicy != "" {
		params["member_policy"] = tagged(opts.MemberPolicy)
	}
	if opts.SharedLinkPolicy != "" {
		params["shared_link_policy"] = tagged(opts.SharedLinkPolicy)
	}
	if opts.ViewerInfoPolicy != "" {
		params["viewer_info_policy"] = tagged(opts.ViewerInfoPolicy)
	}
	if opts.AccessInheritance != "" {
		params["access_inheritance"] = tagged(opts.AccessInheritance)
	}
	withActions(params, opts.Actions)
	if opts.LinkSettings != nil {
		params["link_settings"] = opts.LinkSettings
	}
	return s.caller.RPC(ctx, "/sharing/share_folder", params)
}

// TransferFolder transfers ownership of a shared folder.
func (s *Sharing) TransferFolder(ctx context.Context, sharedFolderID, toDropboxID string) (Envelope, error) {
	return s.caller.RPC(ctx, "/sharing/transfer_folder", Params{
		"shared_folder_id": sharedFolderID,
		"to_dropbox_id":    toDropboxID,
	})
}

// UnmountFolder unmounts a shared folder.
func (s *Sharing) UnmountFolder(ctx context.Context, sharedFolderID string) (Envelope, error) {
	return s.caller.RPC(ctx, "/sharing/unmount_folder", Params{"shared_folder_id": sharedFolderID})
}

// UnshareFolder stops sharing a folder.
func (s *Sharing) UnshareFolder(ctx context.Context, sharedFolderID string, leaveACopy bool) (Envelope, error) {
	return s.caller.RPC(ctx, "/sharing/unshare_folder", Params{
		"shared_folder_id": sharedFolderID,
		"leave_a_copy":     leaveACopy,
	})
}

// UnshareFile stops sharing a file.
func (s *Sharing) UnshareFile(ctx context.Context, file string) (Envelope, error) {
	return s.caller.RPC(ctx, "/sharing/unshare_file", Params{"file": file})
}

// UpdateFolderMember changes a folder member's access level.
func (s *Sharing) UpdateFolderMember(ctx context.Context, sharedFolderID string, member Params, level AccessLevel) (Envelope, error) {
	return s.caller.RPC(ctx, "/sharing/update_folder_member", Params{
		"shared_folder_id": sharedFolderID,
		"member":           member,
		"access_level":     tagged(level),
	})
}

// UpdateFileMember changes a file member's access level.
func (s *Sharing) UpdateFileMember(ctx context.Context, file string, member Params, level AccessLevel) (Envelope, error) {
	return s.caller.RPC(ctx, "/sharing/update_file_member", Params{
		"file":         file,
		"member":       member,
		"access_level": tagged(level),
	})
}

// UpdateFolderPolicy updates the policies of a shared folder.  policies are merged over the folder id.
func (s *Sharing) UpdateFolderPolicy(ctx context.Context, sharedFolderID string, policies Params) (Envelope, error) {
	params := Params{"shared_folder_id": sharedFolderID}
	for k, v := range policies {
		params[k] = v
	}
	return s.caller.RPC(ctx, "/sharing/update_folder_policy", params)
}

// CreateDirectLink creates a shared link for path and returns its envelope with an added direct_url key.  An
// empty method means LinkMethodUsercontent.  An unknown method fails with ErrInvalidInput before any request
// is sent.
func (s *Sharing) CreateDirectLink(ctx context.Context, path string, settings Params, method LinkMethod) (Envelope, error) {
	if method == "" {
		method = LinkMethodUsercontent
	}
	if !method.valid() {
		return nil, invalidMethod(method)
	}

	link, err := s.CreateSharedLinkWithSettings(ctx, path, settings)
	if err != nil {
		return nil, err
	}

	shared, _ := link[sharedLinkURLKey].(string)
	direct, err := ConvertToDirectLink(shared, method)
	if err != nil {
		return nil, err
	}

	out := make(Envelope, len(link)+1)
	for k, v := range link {
		out[k] = v
	}
	out[directURLKey] = direct
	return out, nil
}

func withActions(params Params, actions []string) {
	if len(actions) > 0 {
		params["actions"] = actions
	}
}

func orDefaultInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
