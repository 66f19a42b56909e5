package dropbox_test

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"github.com/c2fo/dropbox"
	"github.com/c2fo/dropbox/mocks"
)

func (s *endpointsSuite) TestSharing() {
	member := dropbox.Params{".tag": "email", "email": "a@example.com"}
	members := []dropbox.Params{{"member": member}}

	s.runEndpointCases([]endpointCase{
		{
			name: "AddFolderMember", path: "/sharing/add_folder_member",
			params: dropbox.Params{"shared_folder_id": "84528192421", "members": members, "quiet": false, "custom_message": "hi"},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.AddFolderMember(ctx, "84528192421", members, false, "hi")
			}),
		},
		{
			name: "AddFileMember defaults to viewer", path: "/sharing/add_file_member",
			params: dropbox.Params{
				"file": "id:3kmLmQFnf1AAAAAAAAAAAw", "members": []dropbox.Params{member}, "quiet": false,
				"access_level": dropbox.Params{".tag": "viewer"}, "add_message_as_comment": false,
			},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.AddFileMember(ctx, "id:3kmLmQFnf1AAAAAAAAAAAw", []dropbox.Params{member}, dropbox.AddFileMemberOptions{})
			}),
		},
		{
			name: "CheckJobStatus", path: "/sharing/check_job_status",
			params: dropbox.Params{"async_job_id": "job"},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.CheckJobStatus(ctx, "job")
			}),
		},
		{
			name: "CheckShareJobStatus", path: "/sharing/check_share_job_status",
			params: dropbox.Params{"async_job_id": "job"},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.CheckShareJobStatus(ctx, "job")
			}),
		},
		{
			name: "CreateSharedLinkWithSettings without settings", path: "/sharing/create_shared_link_with_settings",
			params: dropbox.Params{"path": "/a.png"},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.CreateSharedLinkWithSettings(ctx, "/a.png", nil)
			}),
		},
		{
			name: "GetFileMetadata", path: "/sharing/get_file_metadata",
			params: dropbox.Params{"url": "https://www.dropbox.com/s/x/a.png", "link_password": "pw"},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.GetFileMetadata(ctx, "https://www.dropbox.com/s/x/a.png", "", "pw")
			}),
		},
		{
			name: "GetFileMetadataBatch", path: "/sharing/get_file_metadata/batch",
			params: dropbox.Params{"urls": []string{"u1", "u2"}},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.GetFileMetadataBatch(ctx, []string{"u1", "u2"})
			}),
		},
		{
			name: "GetFolderMetadata", path: "/sharing/get_folder_metadata",
			params: dropbox.Params{"url": "u", "path": "/sub"},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.GetFolderMetadata(ctx, "u", "/sub", "")
			}),
		},
		{
			name: "GetSharedLinkMetadata", path: "/sharing/get_shared_link_metadata",
			params: dropbox.Params{"url": "u"},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.GetSharedLinkMetadata(ctx, "u", "", "")
			}),
		},
		{
			name: "GetSharedFolderMetadata", path: "/sharing/get_folder_metadata",
			params: dropbox.Params{"shared_folder_id": "sf", "actions": []string{"invite_editor"}},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.GetSharedFolderMetadata(ctx, "sf", []string{"invite_editor"})
			}),
		},
		{
			name: "ListSharedLinks empty", path: "/sharing/list_shared_links",
			params: dropbox.Params{},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.ListSharedLinks(ctx, "", "", false)
			}),
		},
		{
			name: "ListSharedLinks full", path: "/sharing/list_shared_links",
			params: dropbox.Params{"path": "/a", "cursor": "c", "direct_only": true},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.ListSharedLinks(ctx, "/a", "c", true)
			}),
		},
		{
			name: "ListFolders", path: "/sharing/list_folders",
			params: dropbox.Params{"limit": 100},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.ListFolders(ctx, 0, nil)
			}),
		},
		{
			name: "ListFoldersContinue", path: "/sharing/list_folders/continue",
			params: dropbox.Params{"cursor": "c"},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.ListFoldersContinue(ctx, "c")
			}),
		},
		{
			name: "ListFolderMembers", path: "/sharing/list_folder_members",
			params: dropbox.Params{"shared_folder_id": "sf", "limit": 25},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.ListFolderMembers(ctx, "sf", nil, 25)
			}),
		},
		{
			name: "ListFolderMembersContinue", path: "/sharing/list_folder_members/continue",
			params: dropbox.Params{"cursor": "c"},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.ListFolderMembersContinue(ctx, "c")
			}),
		},
		{
			name: "ListFileMembersBatch", path: "/sharing/list_file_members/batch",
			params: dropbox.Params{"files": []string{"id:1"}, "limit": 10},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.ListFileMembersBatch(ctx, []string{"id:1"}, 0)
			}),
		},
		{
			name: "ListFileMembers includes inherited", path: "/sharing/list_file_members",
			params: dropbox.Params{"file": "id:1", "include_inherited": true, "limit": 100},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.ListFileMembers(ctx, "id:1", dropbox.ListFileMembersOptions{})
			}),
		},
		{
			name: "ListFileMembers excludes inherited", path: "/sharing/list_file_members",
			params: dropbox.Params{"file": "id:1", "include_inherited": false, "limit": 5, "actions": []string{"make_owner"}},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.ListFileMembers(ctx, "id:1", dropbox.ListFileMembersOptions{
					Actions: []string{"make_owner"}, ExcludeInherited: true, Limit: 5,
				})
			}),
		},
		{
			name: "ListFileMembersContinue", path: "/sharing/list_file_members/continue",
			params: dropbox.Params{"cursor": "c"},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.ListFileMembersContinue(ctx, "c")
			}),
		},
		{
			name: "ListReceivedFiles", path: "/sharing/list_received_files",
			params: dropbox.Params{"limit": 100},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.ListReceivedFiles(ctx, 0, nil)
			}),
		},
		{
			name: "ListReceivedFilesContinue", path: "/sharing/list_received_files/continue",
			params: dropbox.Params{"cursor": "c"},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.ListReceivedFilesContinue(ctx, "c")
			}),
		},
		{
			name: "ModifySharedLinkSettings", path: "/sharing/modify_shared_link_settings",
			params: dropbox.Params{"url": "u", "settings": dropbox.Params{}, "remove_expiration": true},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.ModifySharedLinkSettings(ctx, "u", nil, true)
			}),
		},
		{
			name: "MountFolder", path: "/sharing/mount_folder",
			params: dropbox.Params{"shared_folder_id": "sf"},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.MountFolder(ctx, "sf")
			}),
		},
		{
			name: "RelinquishFolderMembership", path: "/sharing/relinquish_folder_membership",
			params: dropbox.Params{"shared_folder_id": "sf", "leave_a_copy": true},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.RelinquishFolderMembership(ctx, "sf", true)
			}),
		},
		{
			name: "RelinquishFileMembership", path: "/sharing/relinquish_file_membership",
			params: dropbox.Params{"file": "id:1"},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.RelinquishFileMembership(ctx, "id:1")
			}),
		},
		{
			name: "RemoveFolderMember", path: "/sharing/remove_folder_member",
			params: dropbox.Params{"shared_folder_id": "sf", "member": member, "leave_a_copy": false},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.RemoveFolderMember(ctx, "sf", member, false)
			}),
		},
		{
			name: "RemoveFileMember", path: "/sharing/remove_file_member_2",
			params: dropbox.Params{"file": "id:1", "member": member},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.RemoveFileMember(ctx, "id:1", member)
			}),
		},
		{
			name: "RevokeSharedLink", path: "/sharing/revoke_shared_link",
			params: dropbox.Params{"url": "u"},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.RevokeSharedLink(ctx, "u")
			}),
		},
		{
			name: "ShareFolder minimal", path: "/sharing/share_folder",
			params: dropbox.Params{"path": "/team", "force_async": false},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.ShareFolder(ctx, "/team", dropbox.ShareFolderOptions{})
			}),
		},
		{
			name: "ShareFolder policies", path: "/sharing/share_folder",
			params: dropbox.Params{
				"path":               "/team",
				"force_async":        true,
				"acl_update_policy":  dropbox.Params{".tag": "editors"},
				"member_policy":      dropbox.Params{".tag": "team"},
				"shared_link_policy": dropbox.Params{".tag": "members"},
				"viewer_info_policy": dropbox.Params{".tag": "enabled"},
				"access_inheritance": dropbox.Params{".tag": "inherit"},
				"actions":            []string{"invite_viewer"},
				"link_settings":      dropbox.Params{"audience": dropbox.Params{".tag": "team"}},
			},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.ShareFolder(ctx, "/team", dropbox.ShareFolderOptions{
					AclUpdatePolicy:   dropbox.AclUpdatePolicyEditors,
					ForceAsync:        true,
					MemberPolicy:      dropbox.MemberPolicyTeam,
					SharedLinkPolicy:  dropbox.SharedLinkPolicyMembers,
					ViewerInfoPolicy:  dropbox.ViewerInfoPolicyEnabled,
					AccessInheritance: dropbox.AccessInheritanceInherit,
					Actions:           []string{"invite_viewer"},
					LinkSettings:      dropbox.Params{"audience": dropbox.Params{".tag": "team"}},
				})
			}),
		},
		{
			name: "TransferFolder", path: "/sharing/transfer_folder",
			params: dropbox.Params{"shared_folder_id": "sf", "to_dropbox_id": "dbid:x"},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.TransferFolder(ctx, "sf", "dbid:x")
			}),
		},
		{
			name: "UnmountFolder", path: "/sharing/unmount_folder",
			params: dropbox.Params{"shared_folder_id": "sf"},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.UnmountFolder(ctx, "sf")
			}),
		},
		{
			name: "UnshareFolder", path: "/sharing/unshare_folder",
			params: dropbox.Params{"shared_folder_id": "sf", "leave_a_copy": false},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.UnshareFolder(ctx, "sf", false)
			}),
		},
		{
			name: "UnshareFile", path: "/sharing/unshare_file",
			params: dropbox.Params{"file": "id:1"},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.UnshareFile(ctx, "id:1")
			}),
		},
		{
			name: "UpdateFolderMember", path: "/sharing/update_folder_member",
			params: dropbox.Params{"shared_folder_id": "sf", "member": member, "access_level": dropbox.Params{".tag": "editor"}},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.UpdateFolderMember(ctx, "sf", member, dropbox.AccessLevelEditor)
			}),
		},
		{
			name: "UpdateFileMember", path: "/sharing/update_file_member",
			params: dropbox.Params{"file": "id:1", "member": member, "access_level": dropbox.Params{".tag": "viewer_no_comment"}},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.UpdateFileMember(ctx, "id:1", member, dropbox.AccessLevelViewerNoComment)
			}),
		},
		{
			name: "UpdateFolderPolicy merges policies", path: "/sharing/update_folder_policy",
			params: dropbox.Params{"shared_folder_id": "sf", "member_policy": dropbox.Params{".tag": "anyone"}},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Sharing.UpdateFolderPolicy(ctx, "sf", dropbox.Params{"member_policy": dropbox.Params{".tag": "anyone"}})
			}),
		},
	})
}

func (s *endpointsSuite) TestCreateDirectLink() {
	link := dropbox.Envelope{
		".tag": "file",
		"url":  "https://www.dropbox.com/s/abcd1234/vacation.jpg?dl=0",
		"name": "vacation.jpg",
	}
	settings := dropbox.Params{"requested_visibility": "public"}

	s.Run("usercontent by default", func() {
		caller := mocks.NewCaller(s.T())
		caller.EXPECT().
			RPC(mock.Anything, "/sharing/create_shared_link_with_settings",
				dropbox.Params{"path": "/vacation.jpg", "settings": settings}).
			Return(link, nil).
			Once()

		out, err := dropbox.NewClientWithCaller(caller).Sharing.CreateDirectLink(context.Background(), "/vacation.jpg", settings, "")
		s.Require().NoError(err)
		s.Equal("https://dl.dropboxusercontent.com/s/abcd1234/vacation.jpg", out["direct_url"])
		s.Equal(link["url"], out["url"])
		s.Equal("vacation.jpg", out["name"])
		s.NotContains(link, "direct_url", "returned envelope is not mutated")
	})

	s.Run("raw", func() {
		caller := mocks.NewCaller(s.T())
		caller.EXPECT().RPC(mock.Anything, mock.Anything, mock.Anything).Return(link, nil).Once()

		out, err := dropbox.NewClientWithCaller(caller).Sharing.CreateDirectLink(context.Background(), "/vacation.jpg", nil, dropbox.LinkMethodRaw)
		s.Require().NoError(err)
		s.Equal("https://www.dropbox.com/s/abcd1234/vacation.jpg?raw=1", out["direct_url"])
	})

	s.Run("unknown method fails before any request", func() {
		caller := mocks.NewCaller(s.T())

		out, err := dropbox.NewClientWithCaller(caller).Sharing.CreateDirectLink(context.Background(), "/vacation.jpg", nil, "bogus")
		s.Nil(out)
		s.ErrorIs(err, dropbox.ErrInvalidInput)
		caller.AssertNotCalled(s.T(), "RPC", mock.Anything, mock.Anything, mock.Anything)
	})

	s.Run("transport error propagates unchanged", func() {
		apiErr := dropbox.NewAPIError("POST x: 409 Conflict", 409, map[string]any{
			"error_summary": "shared_link_already_exists/",
			"error":         map[string]any{".tag": "shared_link_already_exists"},
		})
		caller := mocks.NewCaller(s.T())
		caller.EXPECT().RPC(mock.Anything, mock.Anything, mock.Anything).Return(nil, apiErr).Once()

		_, err := dropbox.NewClientWithCaller(caller).Sharing.CreateDirectLink(context.Background(), "/vacation.jpg", nil, "")
		s.Same(apiErr, err)
	})

	s.Run("link that is not a dropbox URL", func() {
		caller := mocks.NewCaller(s.T())
		caller.EXPECT().RPC(mock.Anything, mock.Anything, mock.Anything).
			Return(dropbox.Envelope{"url": "https://example.com/x"}, nil).Once()

		_, err := dropbox.NewClientWithCaller(caller).Sharing.CreateDirectLink(context.Background(), "/x", nil, "")
		s.True(errors.Is(err, dropbox.ErrInvalidInput))
	})
}
