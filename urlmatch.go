// Package urlmatch provides URL comparison and domain classification
// predicates for deciding whether two observed URLs refer to the same place
// under several notions of sameness: exact host, origin, registrable root
// domain, and fragment-insensitive equality.
//
// Every predicate is a pure function over its string inputs and fails closed
// on malformed URLs: boolean predicates return false, lookups report an
// absent value, and rewriting helpers return their input unchanged. No
// predicate ever returns an error, so untrusted URL strings need no
// pre-validation by callers.
package urlmatch

import (
	"net/url"
	"strings"

	"github.com/cybergodev/urlmatch/internal"
)

// Re-export the query-string parser from net/url so callers can pick apart a
// URL's query alongside these predicates without a second import.
type Values = url.Values

// ParseQuery is net/url's query-string parser, re-exported unchanged.
var ParseQuery = url.ParseQuery

// UnknownScriptURLMessage is the fixed diagnostic used when the URL of a
// script execution cannot be determined at all. Exposed so callers reuse the
// exact wording.
const UnknownScriptURLMessage = "Unable to determine the URL of some script executions. " +
	"It's possible a browser extension or eval'd code is the source."

// Internal-page scheme prefixes recognized by RewriteInternalURL.
const (
	internalURLPrefix    = "chrome://"
	internalNestedPrefix = "chrome://chrome/"
)

// IsValid reports whether raw parses as an absolute URL.
func IsValid(raw string) bool {
	_, err := internal.Parse(raw)
	return err == nil
}

// HostsMatch reports whether both URLs parse and share the same host
// (hostname plus optional port). Either side failing to parse yields false.
func HostsMatch(a, b string) bool {
	ua, err := internal.Parse(a)
	if err != nil {
		return false
	}
	ub, err := internal.Parse(b)
	if err != nil {
		return false
	}
	return ua.Host() == ub.Host()
}

// OriginsMatch reports whether both URLs parse and share the same origin.
// Non-network schemes all carry the placeholder "null" origin, so two data:
// URLs compare as matching; use GetOrigin first when a real origin is
// required. Either side failing to parse yields false.
func OriginsMatch(a, b string) bool {
	ua, err := internal.Parse(a)
	if err != nil {
		return false
	}
	ub, err := internal.Parse(b)
	if err != nil {
		return false
	}
	return ua.Origin() == ub.Origin()
}

// GetOrigin returns the URL's origin. The second return is false on parse
// failure and for URLs without a host, which guards the schemes whose origin
// is a meaningless placeholder (data:, file:, and friends carry no host).
func GetOrigin(raw string) (string, bool) {
	u, err := internal.Parse(raw)
	if err != nil || u.Host() == "" {
		return "", false
	}
	origin := u.Origin()
	if origin == "" {
		return "", false
	}
	return origin, true
}

// RootDomainsMatch reports whether both URLs share the same effective
// registrable domain, e.g. foo.example.com and bar.example.com both reduce
// to example.com, while a.example.co.uk reduces to example.co.uk. False when
// either side fails to parse or has no hostname.
func RootDomainsMatch(a, b string) bool {
	rootA, ok := RootDomain(a)
	if !ok {
		return false
	}
	rootB, ok := RootDomain(b)
	if !ok {
		return false
	}
	return rootA == rootB
}

// EqualWithExcludedFragments reports whether two URLs name the same resource
// once fragments are ignored. Internal URLs are normalized first, so
// chrome://chrome/settings/ and chrome://settings compare equal. False when
// either side fails to parse.
func EqualWithExcludedFragments(a, b string) bool {
	ua, err := internal.Parse(RewriteInternalURL(a))
	if err != nil {
		return false
	}
	ub, err := internal.Parse(RewriteInternalURL(b))
	if err != nil {
		return false
	}
	ua.SetFragment("")
	ub.SetFragment("")
	return ua.Href() == ub.Href()
}

// RewriteInternalURL collapses the two spellings of the browser's internal
// settings pages into one canonical form. The browser rewrites
// chrome://chrome/<page> to chrome://<page> through a history transition, so
// both spellings name the same page while their strings differ. URLs in any
// other scheme, and empty input, pass through unchanged. Idempotent.
func RewriteInternalURL(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, internalURLPrefix) {
		return raw
	}
	raw = strings.TrimSuffix(raw, "/")
	if strings.HasPrefix(raw, internalNestedPrefix) {
		raw = internalURLPrefix + raw[len(internalNestedPrefix):]
	}
	return raw
}
