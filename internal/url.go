// Package internal provides the parsed-URL value the comparison predicates
// operate on, bridging net/url to browser-parser conventions.
package internal

import (
	"errors"
	"net/url"
	"strings"
)

// ErrNotAbsolute is returned when a string parses but has no scheme.
// Relative references are not URLs under the browser parser's grammar.
var ErrNotAbsolute = errors.New("url must be absolute")

// networkSchemes are the schemes whose origin is scheme://host. Every other
// scheme serializes its origin as the literal "null", matching how browser
// parsers report origins for data:, file:, chrome:, and similar URLs.
var networkSchemes = map[string]struct{}{
	"http":  {},
	"https": {},
	"ws":    {},
	"wss":   {},
	"ftp":   {},
}

// NullOrigin is the placeholder origin of non-network schemes.
const NullOrigin = "null"

// URL is a parsed absolute URL with canonicalized (lowercase) scheme and
// host. Each Parse call returns a fresh value, so mutating the fragment for
// comparison never touches a URL visible to another caller.
type URL struct {
	u *url.URL
}

// Parse parses raw as an absolute URL. It fails when net/url rejects the
// string or when the result has no scheme.
func Parse(raw string) (*URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" {
		return nil, ErrNotAbsolute
	}
	// net/url already lowercases the scheme; the host keeps its case.
	u.Host = strings.ToLower(u.Host)
	return &URL{u: u}, nil
}

// Scheme returns the lowercased scheme without a trailing colon.
func (u *URL) Scheme() string { return u.u.Scheme }

// Hostname returns the lowercased host without any port.
func (u *URL) Hostname() string { return u.u.Hostname() }

// Host returns the lowercased hostname plus the port, when one is present.
func (u *URL) Host() string { return u.u.Host }

// Path returns the decoded path component.
func (u *URL) Path() string { return u.u.Path }

// RawQuery returns the query string without the leading "?".
func (u *URL) RawQuery() string { return u.u.RawQuery }

// Fragment returns the decoded fragment without the leading "#".
func (u *URL) Fragment() string { return u.u.Fragment }

// SetFragment replaces the fragment ahead of serialization.
func (u *URL) SetFragment(fragment string) {
	u.u.Fragment = fragment
	u.u.RawFragment = ""
}

// Origin returns scheme://host for network schemes with a host, and the
// literal "null" for everything else.
func (u *URL) Origin() string {
	if _, ok := networkSchemes[u.u.Scheme]; ok && u.u.Host != "" {
		return u.u.Scheme + "://" + u.u.Host
	}
	return NullOrigin
}

// Href returns the serialized URL, reflecting any fragment mutation.
func (u *URL) Href() string { return u.u.String() }
