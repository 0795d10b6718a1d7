package urlmatch

import "errors"

// Error definitions for the `cybergodev/urlmatch` package.
//
// The comparison predicates never return these: parse failures degrade to
// each predicate's documented safe default. Only the list-backed root-domain
// lookup, which has no meaningful default to degrade to, reports them.
var (
	// ErrInvalidURL is returned when a string cannot be parsed as an absolute URL.
	ErrInvalidURL = errors.New("urlmatch: invalid URL")

	// ErrEmptyHost is returned when a URL parses but carries no hostname to classify.
	ErrEmptyHost = errors.New("urlmatch: URL has no host")
)
