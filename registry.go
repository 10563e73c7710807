package urlstrip

import (
	"sort"
	"sync"

	"github.com/okpulse/url-strip/result"
)

// StripResult is the outcome of a strip rule.
type StripResult = result.Result[URL, Error]

// StripFunc transforms a parsed URL into a cleaned one. Implementations
// are pure: they read only their input and static configuration.
type StripFunc func(URL) StripResult

// registry maps exact hostnames to strip rules. Mutation and lookup are
// guarded by the lock so callers may register rules while other
// goroutines dispatch.
var registry = struct {
	mu    sync.RWMutex
	rules map[string]StripFunc
}{rules: make(map[string]StripFunc)}

// Register binds a rule to a domain. It returns a wrapper that inserts
// the function and hands it back unchanged, so one function can serve
// several hostnames:
//
//	var _ = urlstrip.Register("news.example.com")(exampleStrip)
//
// Registering an already-bound domain silently replaces the previous
// rule; the last writer wins.
func Register(domain string) func(StripFunc) StripFunc {
	return func(fn StripFunc) StripFunc {
		registry.mu.Lock()
		registry.rules[domain] = fn
		registry.mu.Unlock()
		return fn
	}
}

// Lookup returns the rule bound to host. The match is exact and
// case-sensitive: a rule for "www.amazon.com" covers neither
// "amazon.com" nor "shop.amazon.com".
func Lookup(host string) (StripFunc, bool) {
	registry.mu.RLock()
	fn, ok := registry.rules[host]
	registry.mu.RUnlock()
	return fn, ok
}

// Domains lists every hostname with a registered rule, sorted.
func Domains() []string {
	registry.mu.RLock()
	domains := make([]string, 0, len(registry.rules))
	for d := range registry.rules {
		domains = append(domains, d)
	}
	registry.mu.RUnlock()
	sort.Strings(domains)
	return domains
}
