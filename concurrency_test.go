package urlmatch_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cybergodev/urlmatch"
)

// The predicates keep no state, so any number of goroutines may call them
// without coordination. Run a mixed workload under the race detector.
func TestConcurrentCallers(t *testing.T) {
	t.Parallel()

	const goroutines = 16
	const iterations = 200

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				urlmatch.IsValid("https://example.com")
				urlmatch.HostsMatch("https://a.com:80/x", "https://a.com:80/y")
				urlmatch.OriginsMatch("https://a.com/x", "https://a.com/y")
				urlmatch.RootDomainsMatch("https://a.example.co.uk", "https://b.example.co.uk")
				urlmatch.EqualWithExcludedFragments("https://a.com/x#foo", "https://a.com/x#bar")
				urlmatch.GetOrigin("https://example.com/x")
				urlmatch.RewriteInternalURL("chrome://chrome/settings/")
				urlmatch.GetURLDisplayName("https://example.com/a/b/c/d.js", nil)
				urlmatch.ElideDataURI("data:text/plain,hello")
			}
		}()
	}
	wg.Wait()

	// Results stay deterministic afterwards.
	require.True(t, urlmatch.RootDomainsMatch("https://foo.example.com", "https://bar.example.com"))
}
