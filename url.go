// Package urlstrip removes tracking and bloat parameters from URLs. A
// per-domain rule registry selects a site-specific transformation for the
// URL's host, falling back to a generic query stripper when no rule is
// registered. Every outcome is reported as a result.Result; the package
// never panics on input data.
package urlstrip

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

// Param is a single query key/value pair. Keys and values are kept in
// their encoded wire form so serialization reproduces the original bytes.
type Param struct {
	Key   string
	Value string
}

// URL is a parsed http(s) URL broken into the parts strip rules operate
// on. Query order is preserved across parse, transform and serialize.
// Rules treat URL as an immutable value and build new ones rather than
// mutate in place.
type URL struct {
	Scheme   string // "http" or "https"
	Host     string // lowercased, port kept when non-default syntax was used
	Path     string // leading slash, possibly empty
	Query    []Param
	Fragment string // without the leading '#', empty when absent
}

// Parse converts a raw string into a URL value. Only absolute http(s)
// URLs with a host are accepted.
func Parse(raw string) (URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return URL{}, errors.New("empty input")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return URL{}, fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme == "" {
		return URL{}, errors.New("url has no scheme, want http or https")
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return URL{}, fmt.Errorf("unsupported scheme %q, want http or https", u.Scheme)
	}
	if u.Host == "" {
		return URL{}, errors.New("url has no host")
	}

	host, err := normalizeHost(u.Host)
	if err != nil {
		return URL{}, err
	}

	return URL{
		Scheme:   scheme,
		Host:     host,
		Path:     u.EscapedPath(),
		Query:    parseQuery(u.RawQuery),
		Fragment: u.EscapedFragment(),
	}, nil
}

// normalizeHost lowercases the hostname and converts non-ASCII hosts to
// their IDNA ASCII form. An explicit port is kept as written.
func normalizeHost(hostport string) (string, error) {
	host, port := hostport, ""
	if h, p, err := net.SplitHostPort(hostport); err == nil {
		host, port = h, p
	}
	if host == "" {
		return "", errors.New("url has no host")
	}

	if !isASCII(host) {
		a, err := idna.Lookup.ToASCII(host)
		if err != nil {
			return "", fmt.Errorf("idna: %w", err)
		}
		host = a
	}
	host = strings.ToLower(host)

	if port != "" {
		// JoinHostPort restores brackets around IPv6 literals.
		return net.JoinHostPort(host, port), nil
	}
	return host, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// parseQuery splits a raw query string into ordered key/value pairs.
// A bare key without '=' becomes a pair with an empty value.
func parseQuery(rawQuery string) []Param {
	if rawQuery == "" {
		return nil
	}
	var params []Param
	for _, part := range strings.Split(rawQuery, "&") {
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		params = append(params, Param{Key: key, Value: value})
	}
	return params
}

// QueryValue returns the value of the first query pair with the given
// key.
func (u URL) QueryValue(key string) (string, bool) {
	for _, p := range u.Query {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// String serializes the URL back into canonical text. The output is a
// valid equivalent of the parsed input, not necessarily byte-identical
// to it.
func (u URL) String() string {
	var b strings.Builder
	b.WriteString(u.Scheme)
	b.WriteString("://")
	b.WriteString(u.Host)
	b.WriteString(u.Path)
	for i, p := range u.Query {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(p.Value)
	}
	if u.Fragment != "" {
		b.WriteByte('#')
		b.WriteString(u.Fragment)
	}
	return b.String()
}
