package seo

import (
	"path"
	"strings"
)

const (
	// DefaultOrigin is the scheme and host the Wrkr docs are published on.
	DefaultOrigin = "https://clyra-ai.github.io"
	// DefaultBasePath is the sub-path the Wrkr docs are deployed under.
	DefaultBasePath = "/wrkr"
)

// SiteConfig describes where the exported site lives. Origin has no trailing
// slash; BasePath has no trailing slash and is empty for root deployments.
//
// SiteConfig is a value type and is passed by value into every consumer, so a
// consumer can never observe another one changing it.
type SiteConfig struct {
	Origin   string
	BasePath string
}

// Default returns the Wrkr production deployment.
func Default() SiteConfig {
	return SiteConfig{Origin: DefaultOrigin, BasePath: DefaultBasePath}
}

// NewSiteConfig normalizes origin and basePath into a SiteConfig.
// Trailing slashes are dropped from both, and a non-empty basePath gets a
// leading slash. "/" and "" both mean "no base path".
func NewSiteConfig(origin, basePath string) SiteConfig {
	origin = strings.TrimRight(strings.TrimSpace(origin), "/")
	return SiteConfig{Origin: origin, BasePath: NormalizeBasePath(basePath)}
}

// NormalizeBasePath returns basePath with exactly one leading slash and no
// trailing slash, or "" when basePath is empty or "/".
func NormalizeBasePath(basePath string) string {
	value := strings.Trim(strings.TrimSpace(basePath), "/")
	if value == "" {
		return ""
	}
	return "/" + value
}

// CanonicalURL returns the absolute URL for a site-root-relative route.
// A missing leading slash is added; nothing else about p is interpreted.
// BasePath comes only from the config and is written exactly once, even if
// p happens to start with the same segment.
func (c SiteConfig) CanonicalURL(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return c.Origin + c.BasePath + p
}

// Href returns the link that rendered markup should use for route.
// Page routes get the trailing slash of the static export layout
// (route/index.html); file routes such as /llms.txt are left as-is.
// Absolute URLs and fragment-only links pass through untouched.
func (c SiteConfig) Href(route string) string {
	if IsExternal(route) || strings.HasPrefix(route, "#") {
		return route
	}
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	fragment := ""
	if i := strings.IndexAny(route, "#?"); i >= 0 {
		route, fragment = route[:i], route[i:]
	}
	if !strings.HasSuffix(route, "/") && !IsFileRoute(route) {
		route += "/"
	}
	return c.BasePath + route + fragment
}

// PageURL is the absolute form of Href. It is what discovery resources and
// <link rel="canonical"> point at.
func (c SiteConfig) PageURL(route string) string {
	if IsExternal(route) {
		return route
	}
	return c.Origin + c.Href(route)
}

// IsFileRoute reports whether route names a file (its last segment has an
// extension) rather than a page directory.
func IsFileRoute(route string) bool {
	route = strings.TrimSuffix(route, "/")
	if route == "" {
		return false
	}
	return path.Ext(path.Base(route)) != ""
}

// IsExternal reports whether href points off-site.
func IsExternal(href string) bool {
	return strings.HasPrefix(href, "http://") ||
		strings.HasPrefix(href, "https://") ||
		strings.HasPrefix(href, "//") ||
		strings.HasPrefix(href, "mailto:")
}
