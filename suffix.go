package urlmatch

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cybergodev/urlmatch/internal"
	"golang.org/x/net/publicsuffix"
)

// SuffixSource reports, for a top-level domain, the second-level labels that
// act as public suffixes beneath it, so that registrable domains under them
// span three labels instead of the usual two. Implementations must be
// read-only; lookups happen on every classification.
type SuffixSource interface {
	// Exceptions returns the second-level suffix labels for tld, or false
	// when tld registers names directly.
	Exceptions(tld string) ([]string, bool)
}

// secondLevelSuffixes is a hand-curated approximation of the public suffix
// list, covering country-code TLDs that register names under second-level
// suffixes (co.uk, ac.nz, ...). TLDs absent here are treated as standard
// two-label registrations. This is a deliberate simplification rather than a
// full public-suffix algorithm; EffectiveRootDomain offers the list-backed
// precise answer.
var secondLevelSuffixes = map[string][]string{
	"ar": {"com", "edu", "gob", "gov", "int", "mil", "net", "org", "tur"},
	"at": {"ac", "co", "gv", "or"},
	"es": {"com", "nom", "org", "gob", "edu"},
	"fr": {"asso", "com", "gouv", "nom", "prd", "tm"},
	"il": {"ac", "co", "gov", "idf", "k12", "muni", "net", "org"},
	"kr": {"ac", "co", "es", "go", "hs", "kg", "mil", "ms", "ne", "or", "pe", "re", "sc"},
	"nz": {"ac", "co", "cri", "geek", "gen", "govt", "health", "iwi", "maori", "mil", "net", "org", "parliament", "school"},
	"ru": {"ac", "com", "edu", "gov", "int", "mil", "net", "org", "pp"},
	"tr": {"av", "bbs", "bel", "biz", "com", "dr", "edu", "gen", "gov", "info", "k12", "name", "net", "org", "pol", "tel", "tv", "web"},
	"ua": {"com", "edu", "gov", "in", "net", "org"},
	"uk": {"ac", "co", "gov", "ltd", "me", "mod", "net", "nhs", "nic", "org", "plc", "police", "sch"},
	"za": {"ac", "co", "edu", "gov", "law", "mil", "net", "ngo", "nom", "org", "school", "web"},
}

// tableSource is the default SuffixSource, backed by secondLevelSuffixes.
type tableSource struct{}

func (tableSource) Exceptions(tld string) ([]string, bool) {
	labels, ok := secondLevelSuffixes[tld]
	return labels, ok
}

// DefaultSuffixSource returns the built-in table-backed source.
func DefaultSuffixSource() SuffixSource { return tableSource{} }

// suffixPatterns holds one precompiled alternation per listed TLD, e.g.
// `\.(ac|co|...)\.uk` for "uk". The table never changes at runtime, so the
// patterns are built once.
var suffixPatterns = buildSuffixPatterns(DefaultSuffixSource())

func buildSuffixPatterns(source SuffixSource) map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(secondLevelSuffixes))
	for tld := range secondLevelSuffixes {
		labels, ok := source.Exceptions(tld)
		if !ok || len(labels) == 0 {
			continue
		}
		patterns[tld] = regexp.MustCompile(`\.(` + strings.Join(labels, "|") + `)\.` + tld)
	}
	return patterns
}

// isTLDPlusOne reports whether the URL's hostname falls under a listed
// second-level public suffix, meaning its registrable domain spans three
// labels. The suffix pattern is matched against the whole URL string, not
// the hostname alone.
func isTLDPlusOne(rawURL string) bool {
	u, err := internal.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return false
	}
	pattern, ok := suffixPatterns[internal.LastLabel(u.Hostname())]
	if !ok {
		return false
	}
	return pattern.MatchString(rawURL)
}

// RootDomain returns the effective registrable domain of the URL's hostname:
// the trailing three labels when the hostname sits under a listed
// second-level suffix, the trailing two otherwise. The second return is
// false on parse failure or when the URL has no hostname.
func RootDomain(rawURL string) (string, bool) {
	u, err := internal.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return "", false
	}
	labels := 2
	if isTLDPlusOne(rawURL) {
		labels = 3
	}
	return internal.LastLabels(u.Hostname(), labels), true
}

// EffectiveRootDomain returns the registrable domain of the URL's hostname
// according to the full public suffix list. It is the precise counterpart to
// RootDomain for callers that need coverage beyond the built-in table.
// Hostnames under a TLD the list does not know fall back to the default
// two-label root.
func EffectiveRootDomain(rawURL string) (string, error) {
	u, err := internal.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	host := u.Hostname()
	if host == "" {
		return "", ErrEmptyHost
	}
	etld, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return internal.LastLabels(host, 2), nil
	}
	return etld, nil
}
