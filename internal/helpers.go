package internal

import "strings"

// LastLabel returns the final dot-separated label of a hostname, which is
// its top-level domain for ordinary hostnames.
func LastLabel(hostname string) string {
	if i := strings.LastIndexByte(hostname, '.'); i >= 0 {
		return hostname[i+1:]
	}
	return hostname
}

// LastLabels returns the trailing n dot-separated labels of a hostname
// joined back together, or the whole hostname when it has fewer labels.
func LastLabels(hostname string, n int) string {
	labels := strings.Split(hostname, ".")
	if len(labels) <= n {
		return hostname
	}
	return strings.Join(labels[len(labels)-n:], ".")
}

// PathParts splits a URL path on "/" and drops empty segments.
func PathParts(path string) []string {
	raw := strings.Split(path, "/")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
