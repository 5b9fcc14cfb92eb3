package nav

import "html/template"

// OpenState is whether the narrow-viewport drawer is showing its menu.
type OpenState uint8

const (
	Closed OpenState = iota
	Open
)

// IsOpen reports whether the menu is visible.
func (s OpenState) IsOpen() bool { return s == Open }

func (s OpenState) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Toggle flips the state.
func (s OpenState) Toggle() OpenState {
	if s == Open {
		return Closed
	}
	return Open
}

// Navigate is the state after a link in the menu is chosen: always Closed.
func (s OpenState) Navigate() OpenState { return Closed }

// Drawer is the collapsible menu shown on narrow viewports. It owns its
// OpenState; the zero value starts Closed. A Drawer is not safe for
// concurrent use, and each mounted menu has its own.
type Drawer struct {
	Tree  Tree
	Link  LinkFunc
	Brand string
	Home  string

	state OpenState
}

// NewDrawer returns a closed drawer over tree.
func NewDrawer(tree Tree, link LinkFunc, brand string) *Drawer {
	return &Drawer{Tree: tree, Link: link, Brand: brand, Home: "/"}
}

// State returns the current open state.
func (d *Drawer) State() OpenState { return d.state }

// Toggle flips the drawer open or closed and returns the new state.
func (d *Drawer) Toggle() OpenState {
	d.state = d.state.Toggle()
	return d.state
}

// Select handles a click on the menu link href: the drawer closes and href
// becomes the route to navigate to. Both happen in this one call, so there
// is no point at which the route has changed and the menu is still open.
func (d *Drawer) Select(href string) string {
	d.state = d.state.Navigate()
	return href
}

// Nodes resolves active flags exactly as the sidebar does.
func (d *Drawer) Nodes(current string) []Node {
	return Mark(d.Tree, current)
}

// Render draws the drawer in its current state for the page at current.
func (d *Drawer) Render(current string) (template.HTML, error) {
	return RenderDrawer(d.Tree, d.Link, d.Brand, d.Home, current, d.state)
}

type drawerView struct {
	Brand    string
	HomeURL  string
	Open     bool
	Sections []view
}

// RenderDrawer draws a drawer for (tree, current, state) without owning any
// state. The menu markup is always emitted so a browser script can toggle
// it; when closed it carries the hidden attribute.
func RenderDrawer(tree Tree, link LinkFunc, brand, home, current string, state OpenState) (template.HTML, error) {
	if home == "" {
		home = "/"
	}
	return execute("drawer", drawerView{
		Brand:    brand,
		HomeURL:  link.apply(home),
		Open:     state.IsOpen(),
		Sections: views(Mark(tree, current), link),
	})
}
