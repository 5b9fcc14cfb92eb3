package nav

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestIsActive(t *testing.T) {
	tests := []struct {
		current, href string
		want          bool
	}{
		{"/docs", "/docs", true},
		{"/docs/", "/docs", true},
		{"/docs", "/docs/", true},
		{"/docs/", "/docs/", true},
		{"/docs//", "/docs", false},
		{"/docs", "/docs//", false},
		{"/docs/faq", "/docs", false},
		{"/docs", "/docs/faq", false},
		{"/Docs", "/docs", false},
		{"/docsx", "/docs", false},
		{"/", "/", true},
		{"", "/", true},
	}
	for _, tt := range tests {
		if got := IsActive(tt.current, tt.href); got != tt.want {
			t.Errorf("IsActive(%q, %q) = %v, want %v", tt.current, tt.href, got, tt.want)
		}
	}
}

var routeGen = rapid.Custom(func(t *rapid.T) string {
	parts := rapid.SliceOfN(rapid.StringMatching(`[a-zA-Z0-9_.-]{1,8}`), 1, 4).Draw(t, "parts")
	return "/" + strings.Join(parts, "/")
})

func TestIsActiveSlashTolerance(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := routeGen.Draw(t, "route")
		for _, h := range []string{p, p + "/"} {
			if !IsActive(p, h) || !IsActive(h, p) {
				t.Fatalf("IsActive must hold between %q and %q", p, h)
			}
		}
		if IsActive(p, p+"//") || IsActive(p+"//", p) {
			t.Fatalf("two trailing slashes must not match %q", p)
		}
	})
}

func TestIsActiveRejectsOtherRoutes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := routeGen.Draw(t, "route")
		h := routeGen.Draw(t, "href")
		if strings.TrimSuffix(p, "/") == strings.TrimSuffix(h, "/") {
			t.Skip("same route")
		}
		if IsActive(p, h) || IsActive(p, h+"/") || IsActive(p+"/", h) {
			t.Fatalf("IsActive(%q, %q) matched different routes", p, h)
		}
		child := p + "/" + rapid.StringMatching(`[a-z]{1,4}`).Draw(t, "child")
		if IsActive(child, p) || IsActive(p, child) {
			t.Fatalf("prefix %q must not match %q", p, child)
		}
	})
}

func TestSectionHasActiveChild(t *testing.T) {
	tree := Default()
	start, _ := tree.Section("Start Here")

	if !SectionHasActiveChild("/docs/faq/", start) {
		t.Error("Start Here should have an active child on /docs/faq/")
	}
	// The section's own href is not one of its children.
	if SectionHasActiveChild("/docs", start) {
		t.Error("Start Here has no child at /docs")
	}
	if SectionHasActiveChild("/docs/architecture", start) {
		t.Error("Start Here should not be active on /docs/architecture")
	}
}

func TestHasActiveDescendantDeep(t *testing.T) {
	section := Item{
		Title: "Reference",
		Href:  "/ref",
		Children: []Item{
			{Title: "CLI", Href: "/ref/cli", Children: []Item{
				{Title: "scan", Href: "/ref/cli/scan"},
			}},
		},
	}

	if SectionHasActiveChild("/ref/cli/scan", section) {
		t.Error("direct-child check must not reach grandchildren")
	}
	if !HasActiveDescendant("/ref/cli/scan/", section) {
		t.Error("descendant check should find the grandchild")
	}
	if !ChildMatches(section, 2, ActiveAt("/ref/cli/scan")) {
		t.Error("depth 2 should reach the grandchild")
	}
	if ChildMatches(section, 0, ActiveAt("/ref/cli")) {
		t.Error("depth 0 must not test anything")
	}
}

func TestMarkAliasedHrefs(t *testing.T) {
	tree := Default()
	nodes := Mark(tree, "/docs/")

	var activeSections []string
	for _, section := range nodes {
		for _, child := range section.Children {
			if child.Active {
				activeSections = append(activeSections, section.Title+"/"+child.Title)
			}
		}
	}
	want := []string{"Technical Foundations/Docs Map", "Docs Hub/Docs Home"}
	if strings.Join(activeSections, ",") != strings.Join(want, ",") {
		t.Errorf("active leaves = %v, want %v", activeSections, want)
	}

	for _, section := range nodes {
		wantSection := section.Title == "Technical Foundations" || section.Title == "Docs Hub"
		if section.HasActiveChild != wantSection {
			t.Errorf("%s HasActiveChild = %v, want %v", section.Title, section.HasActiveChild, wantSection)
		}
	}
}

func TestMarkDepth(t *testing.T) {
	nodes := Mark(Default(), "/docs/faq")
	if nodes[0].Depth != 0 || nodes[0].Children[0].Depth != 1 {
		t.Errorf("depths = %d/%d, want 0/1", nodes[0].Depth, nodes[0].Children[0].Depth)
	}
	if !nodes[0].HasActiveDescendant {
		t.Error("Start Here should have an active descendant on /docs/faq")
	}
}

func TestActiveNodes(t *testing.T) {
	active := ActiveNodes(Default(), "/docs/architecture")
	// The section itself and its Architecture leaf share the href.
	if len(active) != 2 {
		t.Fatalf("active nodes = %d, want 2: %+v", len(active), active)
	}
	if active[0].Depth != 0 || active[1].Title != "Architecture" {
		t.Errorf("unexpected active nodes: %+v", active)
	}
}
