package nav

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// LinkFunc maps a tree href to the URL written into markup, typically
// adding the deployment base path. A nil LinkFunc leaves hrefs unchanged.
type LinkFunc func(href string) string

func (f LinkFunc) apply(href string) string {
	if f == nil {
		return href
	}
	return f(href)
}

// view is a Node prepared for a template.
type view struct {
	Title          string
	URL            string
	Active         bool
	HasActiveChild bool
	Children       []view
}

func views(nodes []Node, link LinkFunc) []view {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]view, len(nodes))
	for i, n := range nodes {
		out[i] = view{
			Title:          n.Title,
			URL:            link.apply(n.Href),
			Active:         n.Active,
			HasActiveChild: n.HasActiveChild,
			Children:       views(n.Children, link),
		}
	}
	return out
}

// Sidebar is the persistent wide-viewport menu. Every section is always
// expanded.
type Sidebar struct {
	Tree   Tree
	Link   LinkFunc
	Brand  string
	Home   string
	Footer []Link
}

type footerView struct {
	Title    string
	URL      string
	External bool
}

type sidebarView struct {
	Brand    string
	HomeURL  string
	Sections []view
	Footer   []footerView
}

// Nodes resolves the active flags the sidebar renders for current.
func (s Sidebar) Nodes(current string) []Node {
	return Mark(s.Tree, current)
}

// Render draws the sidebar for the page at current.
func (s Sidebar) Render(current string) (template.HTML, error) {
	home := s.Home
	if home == "" {
		home = "/"
	}
	data := sidebarView{
		Brand:    s.Brand,
		HomeURL:  s.Link.apply(home),
		Sections: views(s.Nodes(current), s.Link),
	}
	for _, l := range s.Footer {
		data.Footer = append(data.Footer, footerView{
			Title:    l.Title,
			URL:      s.Link.apply(l.Href),
			External: strings.Contains(l.Href, "://"),
		})
	}
	return execute("sidebar", data)
}

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := menuTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
