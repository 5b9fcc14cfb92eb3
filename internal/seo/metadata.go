package seo

import "strings"

// Image is a social preview image.
type Image struct {
	URL    string
	Width  int
	Height int
	Alt    string
}

// Icon is a favicon link.
type Icon struct {
	Rel  string
	Href string
	Type string
}

// Metadata is everything a page declares in its <head>.
type Metadata struct {
	Title       string
	Description string
	Keywords    []string
	Canonical   string // empty for pages with no URL of their own
	NoIndex     bool
	SiteName    string
	Type        string
	Image       Image
	Icons       []Icon
}

// KeywordList joins Keywords for the keywords meta tag.
func (m Metadata) KeywordList() string {
	return strings.Join(m.Keywords, ", ")
}

// PageMetadata builds the head metadata for the page served at route.
// Asset links carry the base path because the browser resolves them
// against the origin, not the deployment sub-path.
func (c SiteConfig) PageMetadata(siteName, route, title, description string) Metadata {
	return Metadata{
		Title:       title,
		Description: description,
		Keywords:    WrkrKeywords,
		Canonical:   c.PageURL(route),
		SiteName:    siteName,
		Type:        "website",
		Image: Image{
			URL:    c.CanonicalURL("/og.svg"),
			Width:  1200,
			Height: 630,
			Alt:    siteName,
		},
		Icons: []Icon{
			{Rel: "icon", Href: c.BasePath + "/favicon.svg", Type: "image/svg+xml"},
			{Rel: "icon", Href: c.BasePath + "/favicon.ico", Type: "image/x-icon"},
			{Rel: "shortcut icon", Href: c.BasePath + "/favicon.ico"},
			{Rel: "apple-touch-icon", Href: c.BasePath + "/favicon.svg"},
		},
	}
}
