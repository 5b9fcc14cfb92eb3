package nav

// IsActive reports whether current names the same route as href. The two
// are equal up to exactly one trailing slash on either side; there is no
// prefix matching and no case folding.
func IsActive(current, href string) bool {
	return current == href || current == href+"/" || current+"/" == href
}

// ActiveAt returns IsActive bound to current, for use with ChildMatches.
func ActiveAt(current string) func(Item) bool {
	return func(item Item) bool {
		return IsActive(current, item.Href)
	}
}

// ChildMatches reports whether any node below item satisfies pred, looking
// at most depth levels down. A negative depth means no limit; item itself
// is never tested.
func ChildMatches(item Item, depth int, pred func(Item) bool) bool {
	if depth == 0 {
		return false
	}
	for _, child := range item.Children {
		if pred(child) || ChildMatches(child, depth-1, pred) {
			return true
		}
	}
	return false
}

// SectionHasActiveChild reports whether a direct child of section is active.
func SectionHasActiveChild(current string, section Item) bool {
	return ChildMatches(section, 1, ActiveAt(current))
}

// HasActiveDescendant reports whether any node below item is active.
func HasActiveDescendant(current string, item Item) bool {
	return ChildMatches(item, -1, ActiveAt(current))
}

// Node is an Item with its active-state flags resolved for one route.
type Node struct {
	Title               string `json:"title"`
	Href                string `json:"href"`
	Depth               int    `json:"depth"`
	Active              bool   `json:"active"`
	HasActiveChild      bool   `json:"has_active_child"`
	HasActiveDescendant bool   `json:"has_active_descendant"`
	Children            []Node `json:"children,omitempty"`
}

// Mark resolves the flags of every node in tree against current. Every
// node whose href matches is marked, so aliased entries light up together.
func Mark(tree Tree, current string) []Node {
	return markAll(tree, current, 0)
}

func markAll(items []Item, current string, depth int) []Node {
	if len(items) == 0 {
		return nil
	}
	nodes := make([]Node, len(items))
	for i, item := range items {
		nodes[i] = Node{
			Title:               item.Title,
			Href:                item.Href,
			Depth:               depth,
			Active:              IsActive(current, item.Href),
			HasActiveChild:      SectionHasActiveChild(current, item),
			HasActiveDescendant: HasActiveDescendant(current, item),
			Children:            markAll(item.Children, current, depth+1),
		}
	}
	return nodes
}

// ActiveNodes returns the flattened list of nodes matching current, in
// document order.
func ActiveNodes(tree Tree, current string) []Node {
	var active []Node
	var visit func([]Node)
	visit = func(nodes []Node) {
		for _, n := range nodes {
			if n.Active {
				leaf := n
				leaf.Children = nil
				active = append(active, leaf)
			}
			visit(n.Children)
		}
	}
	visit(Mark(tree, current))
	return active
}
