package site

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/clyra-ai/wrkr-docs/internal/nav"
	"github.com/clyra-ai/wrkr-docs/internal/seo"
)

// Discovery holds what the machine-readable resources are built from.
type Discovery struct {
	SiteName    string
	Description string
	Site        seo.SiteConfig
	Tree        nav.Tree
	Pages       []Page
}

// WriteDiscovery writes llms.txt, llms-full.txt, robots.txt, sitemap.xml
// and ai-sitemap.xml into outputDir and returns their names.
func WriteDiscovery(outputDir string, d Discovery) ([]string, error) {
	files := []struct {
		name   string
		render func() ([]byte, error)
	}{
		{"llms.txt", func() ([]byte, error) { return []byte(d.LLMsText()), nil }},
		{"llms-full.txt", func() ([]byte, error) { return []byte(d.LLMsFullText()), nil }},
		{"robots.txt", func() ([]byte, error) { return []byte(d.Robots()), nil }},
		{"sitemap.xml", d.Sitemap},
		{"ai-sitemap.xml", d.AISitemap},
	}

	var written []string
	for _, f := range files {
		data, err := f.render()
		if err != nil {
			return written, fmt.Errorf("building %s: %w", f.name, err)
		}
		if err := writeFile(outputDir, f.name, data); err != nil {
			return written, fmt.Errorf("writing %s: %w", f.name, err)
		}
		written = append(written, f.name)
	}
	return written, nil
}

func (d Discovery) header(b *strings.Builder) {
	fmt.Fprintf(b, "# %s\n\n", d.SiteName)
	if d.Description != "" {
		fmt.Fprintf(b, "> %s\n\n", d.Description)
	}
	fmt.Fprintf(b, "Home: %s\n", d.Site.PageURL(HomeRoute))
	fmt.Fprintf(b, "Documentation: %s\n", d.Site.PageURL(DocsHubRoute))
}

// LLMsText is the short assistant index: every navigation link by section,
// then the context resources.
func (d Discovery) LLMsText() string {
	var b strings.Builder
	d.header(&b)

	section := ""
	for _, l := range d.Tree.Links() {
		if l.Section != section {
			section = l.Section
			fmt.Fprintf(&b, "\n## %s\n\n", section)
		}
		fmt.Fprintf(&b, "- [%s](%s)\n", l.Title, d.Site.PageURL(l.Href))
	}

	b.WriteString("\n## Resources\n\n")
	for _, r := range Resources {
		fmt.Fprintf(&b, "- [%s](%s)\n", r.Label, d.Site.PageURL(r.Href))
	}
	return b.String()
}

// LLMsFullText extends LLMsText with the text of every page.
func (d Discovery) LLMsFullText() string {
	var b strings.Builder
	b.WriteString(d.LLMsText())
	b.WriteString("\n## Pages\n")
	for _, p := range d.Pages {
		fmt.Fprintf(&b, "\n### %s\n\nURL: %s\n", p.Title, d.Site.PageURL(p.Route))
		if p.Description != "" {
			fmt.Fprintf(&b, "Summary: %s\n", p.Description)
		}
		if p.Text != "" {
			fmt.Fprintf(&b, "\n%s\n", p.Text)
		}
	}
	return b.String()
}

// Robots allows every crawler and points at both sitemaps.
func (d Discovery) Robots() string {
	var b strings.Builder
	b.WriteString("User-agent: *\nAllow: /\n\n")
	fmt.Fprintf(&b, "Sitemap: %s\n", d.Site.CanonicalURL("/sitemap.xml"))
	fmt.Fprintf(&b, "Sitemap: %s\n", d.Site.CanonicalURL("/ai-sitemap.xml"))
	return b.String()
}

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc      string `xml:"loc"`
	Priority string `xml:"priority,omitempty"`
}

func marshalURLSet(urls []sitemapURL) ([]byte, error) {
	out, err := xml.MarshalIndent(urlSet{Xmlns: sitemapNS, URLs: urls}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(out, '\n')...), nil
}

// Sitemap lists the canonical URL of every page.
func (d Discovery) Sitemap() ([]byte, error) {
	urls := make([]sitemapURL, 0, len(d.Pages))
	for _, p := range d.Pages {
		priority := "0.7"
		switch p.Route {
		case HomeRoute:
			priority = "1.0"
		case DocsHubRoute, LLMsRoute:
			priority = "0.9"
		}
		urls = append(urls, sitemapURL{Loc: d.Site.PageURL(p.Route), Priority: priority})
	}
	return marshalURLSet(urls)
}

// AISitemap lists what an assistant should read: the navigation routes in
// menu order followed by the context resources, each once.
func (d Discovery) AISitemap() ([]byte, error) {
	seen := make(map[string]bool)
	var urls []sitemapURL
	add := func(route string) {
		if seen[route] || seo.IsExternal(route) {
			return
		}
		seen[route] = true
		urls = append(urls, sitemapURL{Loc: d.Site.PageURL(route)})
	}
	add(HomeRoute)
	for _, r := range d.Tree.Routes() {
		add(r)
	}
	for _, r := range Resources {
		add(r.Href)
	}
	return marshalURLSet(urls)
}
