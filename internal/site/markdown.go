package site

import (
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/clyra-ai/wrkr-docs/internal/seo"
)

// newMarkdown returns the converter used for content pages. Root-relative
// links are rewritten for the deployment; routes lists the content pages
// so that "/docs/faq.md" can be recognised as the page /docs/faq.
func newMarkdown(site seo.SiteConfig, routes map[string]bool) goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(
				util.Prioritized(&linkRewriter{site: site, routes: routes}, 100),
			),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
}

type linkRewriter struct {
	site   seo.SiteConfig
	routes map[string]bool
}

func (r *linkRewriter) Transform(doc *ast.Document, _ text.Reader, _ parser.Context) {
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch l := n.(type) {
		case *ast.Link:
			l.Destination = []byte(r.rewrite(string(l.Destination)))
		case *ast.Image:
			l.Destination = []byte(r.rewrite(string(l.Destination)))
		}
		return ast.WalkContinue, nil
	})
}

// rewrite maps a root-relative destination to its deployed href. Relative,
// external and fragment-only destinations are returned unchanged.
func (r *linkRewriter) rewrite(dest string) string {
	if !strings.HasPrefix(dest, "/") || strings.HasPrefix(dest, "//") {
		return dest
	}
	route, fragment := dest, ""
	if i := strings.IndexAny(dest, "#?"); i >= 0 {
		route, fragment = dest[:i], dest[i:]
	}
	if trimmed := strings.TrimSuffix(route, ".md"); trimmed != route && r.routes[trimmed] {
		route = trimmed
	}
	return r.site.Href(route) + fragment
}
