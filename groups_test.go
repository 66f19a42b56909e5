package dropbox_test

import (
	"context"
	"time"

	"github.com/c2fo/dropbox"
)

func (s *endpointsSuite) TestUsers() {
	s.runEndpointCases([]endpointCase{
		{
			name: "GetCurrentAccount sends no params", path: "/users/get_current_account", params: nil,
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Users.GetCurrentAccount(ctx)
			}),
		},
		{
			name: "GetAccount", path: "/users/get_account",
			params: dropbox.Params{"account_id": "dbid:1"},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Users.GetAccount(ctx, "dbid:1")
			}),
		},
		{
			name: "GetAccountBatch", path: "/users/get_account_batch",
			params: dropbox.Params{"account_ids": []string{"dbid:1", "dbid:2"}},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Users.GetAccountBatch(ctx, []string{"dbid:1", "dbid:2"})
			}),
		},
		{
			name: "GetSpaceUsage", path: "/users/get_space_usage", params: nil,
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Users.GetSpaceUsage(ctx)
			}),
		},
		{
			name: "GetFeaturesValues tags each feature", path: "/users/features/get_values",
			params: dropbox.Params{"features": []dropbox.Params{{".tag": "paper_as_files"}, {".tag": "file_locking"}}},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Users.GetFeaturesValues(ctx, []dropbox.UserFeature{dropbox.UserFeaturePaperAsFiles, dropbox.UserFeatureFileLocking})
			}),
		},
	})
}

func (s *endpointsSuite) TestFileRequests() {
	deadline := time.Date(2030, 1, 2, 3, 4, 5, 0, time.FixedZone("EST", -5*3600))

	s.runEndpointCases([]endpointCase{
		{
			name: "Create open by default", path: "/file_requests/create",
			params: dropbox.Params{"title": "Photos", "destination": "/Uploads", "open": true},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.FileRequests.Create(ctx, "Photos", "/Uploads", dropbox.CreateFileRequestOptions{})
			}),
		},
		{
			name: "Create with deadline", path: "/file_requests/create",
			params: dropbox.Params{
				"title": "Photos", "destination": "/Uploads", "open": false,
				"deadline":    dropbox.Params{"deadline": "2030-01-02T08:04:05Z"},
				"description": "wedding",
			},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.FileRequests.Create(ctx, "Photos", "/Uploads", dropbox.CreateFileRequestOptions{
					Deadline: deadline, Closed: true, Description: "wedding",
				})
			}),
		},
		{
			name: "Get", path: "/file_requests/get",
			params: dropbox.Params{"id": "oaCAVmEyrqYnkZX9955Y"},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.FileRequests.Get(ctx, "oaCAVmEyrqYnkZX9955Y")
			}),
		},
		{
			name: "List", path: "/file_requests/list_v2",
			params: dropbox.Params{"limit": 1000},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.FileRequests.List(ctx, 0)
			}),
		},
		{
			name: "ListContinue", path: "/file_requests/list/continue",
			params: dropbox.Params{"cursor": "c"},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.FileRequests.ListContinue(ctx, "c")
			}),
		},
		{
			name: "Update merges updates", path: "/file_requests/update",
			params: dropbox.Params{"id": "fr", "title": "New title", "open": false},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.FileRequests.Update(ctx, "fr", dropbox.Params{"title": "New title", "open": false})
			}),
		},
		{
			name: "Delete", path: "/file_requests/delete",
			params: dropbox.Params{"ids": []string{"a", "b"}},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.FileRequests.Delete(ctx, []string{"a", "b"})
			}),
		},
		{
			name: "DeleteAllClosed", path: "/file_requests/delete_all_closed", params: nil,
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.FileRequests.DeleteAllClosed(ctx)
			}),
		},
		{
			name: "Count", path: "/file_requests/count", params: nil,
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.FileRequests.Count(ctx)
			}),
		},
	})
}

func (s *endpointsSuite) TestPaper() {
	members := []dropbox.Params{{"member": dropbox.Params{".tag": "email", "email": "a@example.com"}}}

	s.runEndpointCases([]endpointCase{
		{
			name: "DocsCreate", shape: shapeUpload, path: "/paper/docs/create", content: []byte("<h1>hi</h1>"),
			params: dropbox.Params{"import_format": dropbox.Params{".tag": "html"}},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Paper.DocsCreate(ctx, []byte("<h1>hi</h1>"), "", "")
			}),
		},
		{
			name: "DocsCreate in folder", shape: shapeUpload, path: "/paper/docs/create", content: []byte("# hi"),
			params: dropbox.Params{"import_format": dropbox.Params{".tag": "markdown"}, "parent_folder_id": "e.gGYT"},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Paper.DocsCreate(ctx, []byte("# hi"), dropbox.ImportFormatMarkdown, "e.gGYT")
			}),
		},
		{
			name: "DocsDownload", shape: shapeDownload, path: "/paper/docs/download",
			params: dropbox.Params{"doc_id": "d1", "export_format": dropbox.Params{".tag": "html"}},
			call: downloadCall(func(ctx context.Context, c *dropbox.Client) (*dropbox.DownloadResult, error) {
				return c.Paper.DocsDownload(ctx, "d1", "")
			}),
		},
		{
			name: "DocsGetMetadata", path: "/paper/docs/get_metadata",
			params: dropbox.Params{"doc_id": "d1"},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Paper.DocsGetMetadata(ctx, "d1")
			}),
		},
		{
			name: "DocsList defaults", path: "/paper/docs/list",
			params: dropbox.Params{
				"filter_by":  dropbox.Params{".tag": "docs_accessed"},
				"sort_by":    dropbox.Params{".tag": "accessed"},
				"sort_order": dropbox.Params{".tag": "descending"},
				"limit":      100,
			},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Paper.DocsList(ctx, dropbox.DocsListOptions{})
			}),
		},
		{
			name: "DocsListContinue", path: "/paper/docs/list/continue",
			params: dropbox.Params{"cursor": "c"},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Paper.DocsListContinue(ctx, "c")
			}),
		},
		{
			name: "DocsPermanentlyDelete", path: "/paper/docs/permanently_delete",
			params: dropbox.Params{"doc_id": "d1"},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Paper.DocsPermanentlyDelete(ctx, "d1")
			}),
		},
		{
			name: "DocsUpdate defaults", shape: shapeUpload, path: "/paper/docs/update", content: []byte("more"),
			params: dropbox.Params{
				"doc_id":            "d1",
				"import_format":     dropbox.Params{".tag": "html"},
				"doc_update_policy": dropbox.Params{".tag": "append"},
				"revision":          int64(1),
			},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Paper.DocsUpdate(ctx, "d1", []byte("more"), dropbox.DocsUpdateOptions{})
			}),
		},
		{
			name: "DocsUsersAdd", path: "/paper/docs/users/add",
			params: dropbox.Params{"doc_id": "d1", "members": members, "quiet": true},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Paper.DocsUsersAdd(ctx, "d1", members, "", true)
			}),
		},
		{
			name: "DocsUsersList", path: "/paper/docs/users/list",
			params: dropbox.Params{"doc_id": "d1", "limit": 100},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Paper.DocsUsersList(ctx, "d1", 0)
			}),
		},
		{
			name: "DocsUsersListContinue", path: "/paper/docs/users/list/continue",
			params: dropbox.Params{"doc_id": "d1", "cursor": "c"},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Paper.DocsUsersListContinue(ctx, "d1", "c")
			}),
		},
		{
			name: "DocsUsersRemove", path: "/paper/docs/users/remove",
			params: dropbox.Params{"doc_id": "d1", "members": members},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Paper.DocsUsersRemove(ctx, "d1", members)
			}),
		},
	})
}

func (s *endpointsSuite) TestCheck() {
	s.runEndpointCases([]endpointCase{
		{
			name: "User default query", path: "/check/user",
			params: dropbox.Params{"query": "foo"},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Check.User(ctx, "")
			}),
		},
		{
			name: "App custom query", path: "/check/app",
			params: dropbox.Params{"query": "ping"},
			call: rpcCall(func(ctx context.Context, c *dropbox.Client) (dropbox.Envelope, error) {
				return c.Check.App(ctx, "ping")
			}),
		},
	})
}

func (s *endpointsSuite) TestClientToken() {
	c := dropbox.NewClient("tok")
	s.NotNil(c.Transport())
	s.Equal("tok", c.AccessToken())
	c.SetAccessToken("new")
	s.Equal("new", c.Transport().AccessToken())

	mocked := dropbox.NewClientWithCaller(nil)
	s.Nil(mocked.Transport())
	s.Empty(mocked.AccessToken())
	mocked.SetAccessToken("ignored")
}
