package urlstrip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	urlstrip "github.com/okpulse/url-strip"
)

func TestLookupExactMatchOnly(t *testing.T) {
	_, ok := urlstrip.Lookup("www.amazon.com")
	assert.True(t, ok)

	_, ok = urlstrip.Lookup("amazon.com")
	assert.False(t, ok, "no suffix matching: bare domain is not covered by the www rule")

	_, ok = urlstrip.Lookup("shop.amazon.com")
	assert.False(t, ok, "no wildcard matching for subdomains")

	_, ok = urlstrip.Lookup("WWW.AMAZON.COM")
	assert.False(t, ok, "lookup is case sensitive")
}

func TestBuiltinDomainTable(t *testing.T) {
	builtins := []string{
		"youtube.com", "www.youtube.com",
		"www.amazon.com", "www.amazon.co.uk",
		"ebay.com", "www.ebay.com", "www.ebay.co.uk", "www.ebay.de", "www.ebay.com.au",
		"www.reddit.com",
		"www.tiktok.com", "vm.tiktok.com",
		"twitter.com",
	}

	domains := urlstrip.Domains()
	for _, d := range builtins {
		assert.Contains(t, domains, d)
	}
}

func TestDomainsSorted(t *testing.T) {
	domains := urlstrip.Domains()
	require.NotEmpty(t, domains)
	assert.IsIncreasing(t, domains)
}
