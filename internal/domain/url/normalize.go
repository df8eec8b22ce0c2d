// Package url derives site keys from page URLs.
package url

import (
	"net"
	"net/url"
	"strings"
)

// DefaultInternalSchemes lists the schemes of browser-internal pages.
var DefaultInternalSchemes = []string{
	"about",
	"chrome",
	"chrome-extension",
	"moz-extension",
	"dumb",
	"view-source",
	"file",
}

// ExtractHost returns the site key for rawURL: the lowercased host without
// port and without one leading "www." label. Returns "" when rawURL has no host.
func ExtractHost(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}
	if isBareHostPort(rawURL) {
		// "localhost:3000" would otherwise parse with "localhost" as scheme.
		rawURL = "//" + rawURL
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := parsed.Host
	if host == "" {
		// Bare "example.com/path" inputs parse as a path.
		if parsed.Scheme != "" || strings.HasPrefix(rawURL, "/") {
			return ""
		}
		host, _, _ = strings.Cut(parsed.Path, "/")
	}
	return NormalizeHost(host)
}

// isBareHostPort reports whether rawURL starts with host:port and has no scheme.
func isBareHostPort(rawURL string) bool {
	if strings.Contains(rawURL, "//") {
		return false
	}
	hostPort, _, _ := strings.Cut(rawURL, "/")
	hostPort, _, _ = strings.Cut(hostPort, "?")
	host, port, err := net.SplitHostPort(hostPort)
	if err != nil || host == "" || port == "" {
		return false
	}
	for _, r := range port {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// NormalizeHost canonicalizes a host that may carry a port, a "www." prefix
// or uppercase letters.
func NormalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.TrimSuffix(host, ".")
	return strings.TrimPrefix(host, "www.")
}

// IsInternal reports whether rawURL belongs to a browser-internal page,
// which must never be targeted by the override.
func IsInternal(rawURL string, schemes []string) bool {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return true
	}
	scheme, _, found := strings.Cut(rawURL, ":")
	if !found {
		return false
	}
	scheme = strings.ToLower(scheme)
	for _, s := range schemes {
		if scheme == strings.ToLower(s) {
			return true
		}
	}
	return false
}
