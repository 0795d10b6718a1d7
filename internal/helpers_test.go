package internal

import (
	"reflect"
	"testing"
)

func TestLastLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hostname string
		want     string
	}{
		{"example.com", "com"},
		{"a.example.co.uk", "uk"},
		{"localhost", "localhost"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := LastLabel(tt.hostname); got != tt.want {
			t.Errorf("LastLabel(%q) = %q, want %q", tt.hostname, got, tt.want)
		}
	}
}

func TestLastLabels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hostname string
		n        int
		want     string
	}{
		{"foo.bar.example.com", 2, "example.com"},
		{"a.example.co.uk", 3, "example.co.uk"},
		{"example.com", 2, "example.com"},
		{"localhost", 2, "localhost"},
		{"a.b.c.d", 3, "b.c.d"},
	}

	for _, tt := range tests {
		if got := LastLabels(tt.hostname, tt.n); got != tt.want {
			t.Errorf("LastLabels(%q, %d) = %q, want %q", tt.hostname, tt.n, got, tt.want)
		}
	}
}

func TestPathParts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want []string
	}{
		{"/a/b/c", []string{"a", "b", "c"}},
		{"/", []string{}},
		{"", []string{}},
		{"//double//slash/", []string{"double", "slash"}},
	}

	for _, tt := range tests {
		if got := PathParts(tt.path); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("PathParts(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
