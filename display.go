package urlmatch

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cybergodev/urlmatch/internal"
	"golang.org/x/text/unicode/norm"
)

// Display formatting limits.
const (
	maxDisplayNameLength = 64  // rendered display names are clamped to this
	dataURIDisplayLength = 100 // data: URLs are cut to this many characters
	ellipsis             = "…"
)

var (
	hexHashPattern       = regexp.MustCompile(`([a-f0-9]{7})[a-f0-9]{13}[a-f0-9]*`)
	identifierRunPattern = regexp.MustCompile(`[a-zA-Z0-9-_]{19,}`)
	longDigitsPattern    = regexp.MustCompile(`(\d{3})\d{6,}`)
	ellipsisRunPattern   = regexp.MustCompile(`\x{2026}+`)
	queryHeadPattern     = regexp.MustCompile(`\?([^=]*)(=?).*`)
	queryAllPattern      = regexp.MustCompile(`\?.*`)
)

// DisplayNameOptions controls GetURLDisplayName output.
type DisplayNameOptions struct {
	// NumPathParts caps how many trailing path segments survive in the
	// rendered name; zero keeps the full path.
	NumPathParts int
	// PreserveQuery keeps the query string in the rendered name.
	PreserveQuery bool
	// PreserveHost prefixes the host to the rendered path.
	PreserveHost bool
}

// DefaultDisplayNameOptions returns the defaults: two trailing path parts,
// query preserved, host omitted.
func DefaultDisplayNameOptions() DisplayNameOptions {
	return DisplayNameOptions{NumPathParts: 2, PreserveQuery: true}
}

// GetURLDisplayName renders a shortened, human-readable name for a URL:
// about: and data: URLs are shown whole, everything else shows the trailing
// path segments with hash-like and long numeric runs elided and the result
// clamped to 64 characters. A nil opts uses DefaultDisplayNameOptions.
// Unparseable input comes back unchanged.
func GetURLDisplayName(raw string, opts *DisplayNameOptions) string {
	u, err := internal.Parse(raw)
	if err != nil {
		return raw
	}
	o := DefaultDisplayNameOptions()
	if opts != nil {
		o = *opts
	}

	var name string
	switch u.Scheme() {
	case "about", "data":
		name = u.Href()
	default:
		name = u.Path()
		if name == "" {
			name = "/"
		}
		parts := internal.PathParts(name)
		if o.NumPathParts > 0 && len(parts) > o.NumPathParts {
			name = ellipsis + strings.Join(parts[len(parts)-o.NumPathParts:], "/")
		}
		if o.PreserveHost {
			name = u.Host() + "/" + strings.TrimPrefix(name, "/")
		}
		if o.PreserveQuery && u.RawQuery() != "" {
			name += "?" + u.RawQuery()
		}
	}
	return elideDisplayName(name)
}

// ElideDataURI truncates data: URLs to their first 100 characters for
// display. Non-data URLs and unparseable strings come back unchanged.
func ElideDataURI(raw string) string {
	u, err := internal.Parse(raw)
	if err != nil || u.Scheme() != "data" {
		return raw
	}
	if utf8.RuneCountInString(raw) <= dataURIDisplayLength {
		return raw
	}
	return cutRunes(raw, dataURIDisplayLength)
}

func elideDisplayName(name string) string {
	// Hexadecimal hashes keep their first seven digits.
	name = hexHashPattern.ReplaceAllString(name, "${1}"+ellipsis)
	// Hash-like mixed-case identifier runs keep their first nine characters.
	name = identifierRunPattern.ReplaceAllStringFunc(name, elideIdentifierRun)
	// Long digit sequences keep their first three digits.
	name = longDigitsPattern.ReplaceAllString(name, "${1}"+ellipsis)
	name = ellipsisRunPattern.ReplaceAllString(name, ellipsis)

	// Elide query parameters first, keeping the leading parameter name when
	// that alone fits.
	if utf8.RuneCountInString(name) > maxDisplayNameLength && strings.Contains(name, "?") {
		name = queryHeadPattern.ReplaceAllString(name, "?${1}${2}"+ellipsis)
		if utf8.RuneCountInString(name) > maxDisplayNameLength {
			name = queryAllPattern.ReplaceAllString(name, "?"+ellipsis)
		}
	}
	if utf8.RuneCountInString(name) > maxDisplayNameLength {
		name = clampDisplayName(name)
	}
	return name
}

func elideIdentifierRun(run string) string {
	var hasLower, hasUpper, hasDigit bool
	for _, c := range run {
		switch {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= '0' && c <= '9':
			hasDigit = true
		}
	}
	if hasLower && hasUpper && hasDigit {
		return run[:9] + ellipsis
	}
	return run
}

// clampDisplayName cuts name down to maxDisplayNameLength characters,
// keeping the file extension visible when there is one.
func clampDisplayName(name string) string {
	if dot := strings.LastIndexByte(name, '.'); dot >= 0 {
		ext := name[dot:]
		keep := maxDisplayNameLength - 1 - utf8.RuneCountInString(ext)
		if keep > 0 {
			return cutRunes(name, keep) + ellipsis + ext
		}
	}
	return cutRunes(name, maxDisplayNameLength-1) + ellipsis
}

// cutRunes returns s truncated to at most n runes. When the cut would land
// in the middle of a combining sequence it backs off to the preceding
// normalization boundary instead of splitting the sequence.
func cutRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for count := 0; i < len(s) && count < n; count++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	if i >= len(s) {
		return s
	}
	if r, _ := utf8.DecodeRuneInString(s[i:]); unicode.In(r, unicode.Mn, unicode.Mc, unicode.Me) {
		if j := norm.NFC.LastBoundary([]byte(s[:i])); j >= 0 && j < i {
			i = j
		}
	}
	return s[:i]
}
