package dropbox

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// LinkMethod selects how a shared link is turned into a direct link.
type LinkMethod string

const (
	// LinkMethodRaw keeps the original host and forces raw=1.
	LinkMethodRaw LinkMethod = "raw"

	// LinkMethodUsercontent moves the link to the content-delivery host and drops the dl flag.
	LinkMethodUsercontent LinkMethod = "userusercontent"
)

const (
	providerDomain  = "dropbox.com"
	webHost         = "www.dropbox.com"
	usercontentHost = "dl.dropboxusercontent.com"
	rawMarker       = "raw=1"
)

var dlFlag = regexp.MustCompile(`^dl=\d+$`)

func (m LinkMethod) valid() bool {
	return m == LinkMethodRaw || m == LinkMethodUsercontent
}

func invalidMethod(m LinkMethod) error {
	return fmt.Errorf("%w: unknown link conversion method %q, use %q or %q",
		ErrInvalidInput, m, LinkMethodRaw, LinkMethodUsercontent)
}

// ConvertToDirectLink converts a shared link into a URL that serves the file content directly.  It fails with
// ErrInvalidInput when link is not an absolute URL, is not a Dropbox link or method is unknown.
func ConvertToDirectLink(link string, method LinkMethod) (string, error) {
	u, err := url.Parse(link)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %q is not an absolute URL", ErrInvalidInput, link)
	}
	if !strings.Contains(link, providerDomain) {
		return "", fmt.Errorf("%w: %q is not a Dropbox link", ErrInvalidInput, link)
	}

	switch method {
	case LinkMethodRaw:
		return ConvertToRawLink(link), nil
	case LinkMethodUsercontent:
		return ConvertToUsercontentLink(link), nil
	default:
		return "", invalidMethod(method)
	}
}

// ConvertToRawLink rewrites dl=0 to raw=1, or appends raw=1, so that exactly one raw=1 parameter remains.  The
// host, the other parameters and any fragment are kept in place.
func ConvertToRawLink(link string) string {
	base, fragment := splitFragment(link)
	path, query, _ := strings.Cut(base, "?")

	parts := splitQuery(query)
	hasRaw := false
	for _, p := range parts {
		if isParam(p, "raw", "1") {
			hasRaw = true
			break
		}
	}

	out := make([]string, 0, len(parts)+1)
	emitted := false
	for _, p := range parts {
		switch {
		case isParam(p, "dl", "0"):
			if !hasRaw && !emitted {
				out = append(out, rawMarker)
				emitted = true
			}
		case isParam(p, "raw", "1"):
			if emitted {
				continue
			}
			out = append(out, p)
			emitted = true
		default:
			out = append(out, p)
		}
	}
	if !emitted {
		out = append(out, rawMarker)
	}

	return path + "?" + strings.Join(out, "&") + fragment
}

// ConvertToUsercontentLink moves a shared link to the content-delivery host and strips any dl=<n> parameter.
// Other parameters, such as rlkey, are kept, and the path is returned exactly as written.
func ConvertToUsercontentLink(link string) string {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return convertUsercontentString(link)
	}

	base, fragment := splitFragment(link)
	prefix, query, _ := strings.Cut(base, "?")

	host := strings.ToLower(u.Hostname())
	if host == providerDomain || strings.HasSuffix(host, "."+providerDomain) {
		prefix = replaceHost(prefix, u.Hostname())
	}

	kept := make([]string, 0)
	for _, p := range splitQuery(query) {
		if !dlFlag.MatchString(p) {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return prefix + fragment
	}
	return prefix + "?" + strings.Join(kept, "&") + fragment
}

// replaceHost swaps hostname for the content-delivery host inside the authority of prefix.  Userinfo and port
// are kept.
func replaceHost(prefix, hostname string) string {
	start := strings.Index(prefix, "://")
	if start < 0 {
		return prefix
	}
	start += len("://")
	end := len(prefix)
	if i := strings.IndexByte(prefix[start:], '/'); i >= 0 {
		end = start + i
	}

	authority := prefix[start:end]
	at := strings.LastIndexByte(authority, '@') + 1
	i := strings.Index(authority[at:], hostname)
	if i < 0 {
		return prefix
	}
	i += at
	return prefix[:start] + authority[:i] + usercontentHost + authority[i+len(hostname):] + prefix[end:]
}

var (
	dlQueryFlag = regexp.MustCompile(`\?dl=\d+`)
	dlParamFlag = regexp.MustCompile(`&dl=\d+`)
)

// convertUsercontentString is the substring rewrite used when link does not parse as a URL.
func convertUsercontentString(link string) string {
	if strings.Contains(link, webHost) {
		link = strings.ReplaceAll(link, webHost, usercontentHost)
	} else {
		link = strings.ReplaceAll(link, providerDomain, usercontentHost)
	}
	link = dlQueryFlag.ReplaceAllString(link, "")
	link = dlParamFlag.ReplaceAllString(link, "")
	return strings.TrimRight(link, "?&")
}

func splitFragment(link string) (base, fragment string) {
	if i := strings.IndexByte(link, '#'); i >= 0 {
		return link[:i], link[i:]
	}
	return link, ""
}

func splitQuery(query string) []string {
	parts := make([]string, 0)
	for _, p := range strings.Split(query, "&") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// isParam reports whether a raw query part decodes to key=value.
func isParam(part, key, value string) bool {
	k, v, ok := strings.Cut(part, "=")
	if !ok {
		return false
	}
	dk, err := url.QueryUnescape(k)
	if err != nil {
		dk = k
	}
	dv, err := url.QueryUnescape(v)
	if err != nil {
		dv = v
	}
	return dk == key && dv == value
}
