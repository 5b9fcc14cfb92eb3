package site

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/clyra-ai/wrkr-docs/internal/walker"
)

// Page is one route of the export.
type Page struct {
	Route       string // site-root-relative, no trailing slash except "/"
	Title       string
	Description string
	Source      string // content-relative markdown path; empty for built-in pages
	Body        template.HTML
	Text        string // plain text for search and llms-full.txt
	Scripts     []template.HTML
	// ShowTitle asks the layout for an <h1>; set when the body has none.
	ShowTitle bool
}

// Builtin reports whether the page is generated rather than read from content.
func (p Page) Builtin() bool { return p.Source == "" }

type frontMatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// RouteFor maps a content-relative markdown path to its route.
// "docs/faq.md" is /docs/faq and "docs/_index.md" is /docs. A plain
// index.md keeps its name.
func RouteFor(relPath string) string {
	p := strings.TrimPrefix(path.Clean("/"+strings.ReplaceAll(relPath, "\\", "/")), "/")
	p = strings.TrimSuffix(p, path.Ext(p))
	if path.Base(p) == "_index" {
		p = path.Dir(p)
		if p == "." {
			p = ""
		}
	}
	return "/" + p
}

// loadPage reads and converts one content file.
func loadPage(md goldmark.Markdown, file walker.FileInfo) (Page, error) {
	data, err := os.ReadFile(file.Path)
	if err != nil {
		return Page{}, err
	}

	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &fm)
	if err != nil {
		return Page{}, fmt.Errorf("parsing front matter: %w", err)
	}

	doc := md.Parser().Parse(text.NewReader(body))

	var html bytes.Buffer
	if err := md.Renderer().Render(&html, body, doc); err != nil {
		return Page{}, fmt.Errorf("converting markdown: %w", err)
	}

	plain, summary := extractText(doc, body)
	route := RouteFor(file.RelPath)

	heading := extractTitle(doc, body)
	title := strings.TrimSpace(fm.Title)
	if title == "" {
		title = heading
	}
	if title == "" {
		title = titleFromSlug(path.Base(route))
	}

	description := strings.TrimSpace(fm.Description)
	if description == "" {
		description = summary
	}

	return Page{
		Route:       route,
		Title:       title,
		Description: description,
		Source:      file.RelPath,
		Body:        template.HTML(html.String()),
		Text:        plain,
		ShowTitle:   heading == "",
	}, nil
}

// extractTitle returns the text of the first level-1 heading.
func extractTitle(doc ast.Node, source []byte) string {
	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering && h.Level == 1 {
			title = strings.TrimSpace(nodeText(h, source))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return title
}

// extractText flattens doc into plain text, one block per line, and returns
// it with the text of the first top-level paragraph.
func extractText(doc ast.Node, source []byte) (plain, summary string) {
	var b strings.Builder
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		var block string
		switch n.Kind() {
		case ast.KindFencedCodeBlock, ast.KindCodeBlock:
			block = strings.TrimSpace(string(linesText(n, source)))
		default:
			block = strings.TrimSpace(nodeText(n, source))
		}
		if block == "" {
			continue
		}
		if summary == "" && n.Kind() == ast.KindParagraph {
			summary = block
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(block)
	}
	return b.String(), summary
}

func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if c.Type() == ast.TypeBlock && c != n && b.Len() > 0 {
				b.WriteByte(' ')
			}
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			b.Write(linesText(c, source))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.Join(strings.Fields(b.String()), " ")
}

func linesText(n ast.Node, source []byte) []byte {
	var b bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return b.Bytes()
}

// titleFromSlug turns a file slug into a display title.
func titleFromSlug(slug string) string {
	if slug == "" || slug == "/" {
		return "Home"
	}
	words := strings.NewReplacer("-", " ", "_", " ").Replace(slug)
	return cases.Title(language.English).String(strings.TrimSpace(words))
}
