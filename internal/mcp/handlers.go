package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/clyra-ai/wrkr-docs/internal/nav"
	"github.com/clyra-ai/wrkr-docs/internal/seo"
)

// handleListRoutes lists navigation links, optionally for one section.
func (s *Server) handleListRoutes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tree := s.tree
	if name := strings.TrimSpace(request.GetString("section", "")); name != "" {
		section, ok := tree.Section(name)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf(
				"unknown section %q. Available sections: %s", name, strings.Join(s.sectionTitles(), ", "),
			)), nil
		}
		tree = nav.Tree{section}
	}

	links := tree.Links()
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d link(s):\n", len(links))

	section := ""
	for _, l := range links {
		if l.Section != section {
			section = l.Section
			fmt.Fprintf(&sb, "\n## %s\n", section)
		}
		fmt.Fprintf(&sb, "- %s: %s (%s)\n", l.Title, l.Href, s.site.PageURL(l.Href))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleCanonicalURL returns the canonical URL for a path.
func (s *Server) handleCanonicalURL(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: path"), nil
	}
	if seo.IsExternal(p) {
		return mcp.NewToolResultError(fmt.Sprintf("%q is not a site path", p)), nil
	}
	return mcp.NewToolResultText(s.site.CanonicalURL(p)), nil
}

// handleActiveRoutes reports which menu entries are highlighted on a path.
func (s *Server) handleActiveRoutes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: path"), nil
	}

	active := nav.ActiveNodes(s.tree, p)
	if len(active) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No navigation entry is active on %s.", p)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d active entr%s on %s:\n", len(active), plural(len(active), "y", "ies"), p)
	for _, n := range active {
		kind := "link"
		if n.Depth == 0 {
			kind = "section"
		}
		fmt.Fprintf(&sb, "- %s (%s, depth %d): %s\n", n.Title, kind, n.Depth, n.Href)
	}

	var sections []string
	for _, section := range s.tree {
		if nav.SectionHasActiveChild(p, section) {
			sections = append(sections, section.Title)
		}
	}
	if len(sections) > 0 {
		fmt.Fprintf(&sb, "\nHighlighted sections: %s\n", strings.Join(sections, ", "))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetFAQ returns the FAQ as markdown or as its JSON-LD descriptor.
func (s *Server) handleGetFAQ(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	switch format := request.GetString("format", "markdown"); format {
	case "jsonld":
		data, err := json.MarshalIndent(seo.NewFAQPage(s.faq), "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode FAQ: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	case "markdown", "":
		var sb strings.Builder
		for i, e := range s.faq {
			if i > 0 {
				sb.WriteString("\n")
			}
			fmt.Fprintf(&sb, "### %s\n\n%s\n", e.Question, e.Answer)
		}
		return mcp.NewToolResultText(sb.String()), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown format %q", format)), nil
	}
}

func (s *Server) sectionTitles() []string {
	titles := make([]string, len(s.tree))
	for i, section := range s.tree {
		titles[i] = section.Title
	}
	return titles
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
