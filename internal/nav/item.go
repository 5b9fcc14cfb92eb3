// Package nav holds the documentation navigation tree, the active-route
// rule used to highlight it, and the two menus that render it.
package nav

// Item is one node of the navigation hierarchy, either a section or a leaf
// link. Href is site-root-relative and never carries the deployment base path.
type Item struct {
	Title    string `json:"title" yaml:"title"`
	Href     string `json:"href" yaml:"href"`
	Children []Item `json:"children,omitempty" yaml:"children,omitempty"`
}

// Tree is the ordered list of top-level sections.
type Tree []Item

// Link is a title/href pair with the top-level section it was found in.
type Link struct {
	Section string `json:"section" yaml:"section"`
	Title   string `json:"title" yaml:"title"`
	Href    string `json:"href" yaml:"href"`
}

// Clone returns a deep copy of the tree.
func (t Tree) Clone() Tree {
	if t == nil {
		return nil
	}
	out := make(Tree, len(t))
	for i, item := range t {
		out[i] = item.clone()
	}
	return out
}

func (it Item) clone() Item {
	c := Item{Title: it.Title, Href: it.Href}
	if it.Children != nil {
		c.Children = make([]Item, len(it.Children))
		for i, child := range it.Children {
			c.Children[i] = child.clone()
		}
	}
	return c
}

// Walk visits every node depth-first in document order. depth is 0 for
// sections. Returning false from fn skips the node's children.
func (t Tree) Walk(fn func(depth int, item Item) bool) {
	for _, item := range t {
		walk(item, 0, fn)
	}
}

func walk(item Item, depth int, fn func(int, Item) bool) {
	if !fn(depth, item) {
		return
	}
	for _, child := range item.Children {
		walk(child, depth+1, fn)
	}
}

// Links returns every leaf of the tree in document order. Aliased hrefs
// appear once per occurrence.
func (t Tree) Links() []Link {
	var links []Link
	for _, section := range t {
		if len(section.Children) == 0 {
			links = append(links, Link{Section: section.Title, Title: section.Title, Href: section.Href})
			continue
		}
		Tree(section.Children).Walk(func(_ int, item Item) bool {
			if len(item.Children) == 0 {
				links = append(links, Link{Section: section.Title, Title: item.Title, Href: item.Href})
			}
			return true
		})
	}
	return links
}

// Routes returns each distinct href in the tree, sections included, in the
// order it is first seen.
func (t Tree) Routes() []string {
	seen := make(map[string]bool)
	var routes []string
	t.Walk(func(_ int, item Item) bool {
		if item.Href != "" && !seen[item.Href] {
			seen[item.Href] = true
			routes = append(routes, item.Href)
		}
		return true
	})
	return routes
}

// Section returns the top-level section with the given title.
func (t Tree) Section(title string) (Item, bool) {
	for _, section := range t {
		if section.Title == title {
			return section, true
		}
	}
	return Item{}, false
}
