package dropbox

import (
	"time"

	"github.com/mitchellh/mapstructure"
)

// Decode copies the envelope into out, which must be a pointer to a struct (or map).  Fields are matched by
// their json tags, RFC3339 strings are decoded into time.Time and keys without a matching field are ignored.
func (e Envelope) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "json",
		Result:     out,
		DecodeHook: mapstructure.StringToTimeHookFunc(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return dec.Decode(map[string]any(e))
}

// Metadata describes a file, folder or deleted entry.  Tag is "file", "folder" or "deleted".
type Metadata struct {
	Tag            string    `json:".tag"`
	Name           string    `json:"name"`
	ID             string    `json:"id"`
	PathLower      string    `json:"path_lower"`
	PathDisplay    string    `json:"path_display"`
	Rev            string    `json:"rev"`
	Size           uint64    `json:"size"`
	ContentHash    string    `json:"content_hash"`
	ClientModified time.Time `json:"client_modified"`
	ServerModified time.Time `json:"server_modified"`
	IsDownloadable bool      `json:"is_downloadable"`
}

// IsFolder reports whether the entry is a folder.
func (m *Metadata) IsFolder() bool {
	return m.Tag == "folder"
}

// SharedLinkMetadata describes a shared link.  DirectURL is only set on envelopes returned by
// Sharing.CreateDirectLink.
type SharedLinkMetadata struct {
	Tag            string    `json:".tag"`
	URL            string    `json:"url"`
	DirectURL      string    `json:"direct_url"`
	Name           string    `json:"name"`
	ID             string    `json:"id"`
	PathLower      string    `json:"path_lower"`
	Rev            string    `json:"rev"`
	Size           uint64    `json:"size"`
	ClientModified time.Time `json:"client_modified"`
	ServerModified time.Time `json:"server_modified"`
}

// Name is the set of name forms on an account.
type Name struct {
	GivenName       string `json:"given_name"`
	Surname         string `json:"surname"`
	FamiliarName    string `json:"familiar_name"`
	DisplayName     string `json:"display_name"`
	AbbreviatedName string `json:"abbreviated_name"`
}

// Account is the account returned by Users.GetCurrentAccount and Users.GetAccount.
type Account struct {
	AccountID     string `json:"account_id"`
	Name          Name   `json:"name"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Disabled      bool   `json:"disabled"`
	Country       string `json:"country"`
	Locale        string `json:"locale"`
	ReferralLink  string `json:"referral_link"`
	IsPaired      bool   `json:"is_paired"`
	AccountType   struct {
		Tag string `json:".tag"`
	} `json:"account_type"`
}

// SpaceUsage is the storage quota of an account.
type SpaceUsage struct {
	Used       uint64 `json:"used"`
	Allocation struct {
		Tag       string `json:".tag"`
		Allocated uint64 `json:"allocated"`
	} `json:"allocation"`
}

// TemporaryLink is the result of Files.GetTemporaryLink.
type TemporaryLink struct {
	Metadata Metadata `json:"metadata"`
	Link     string   `json:"link"`
}
