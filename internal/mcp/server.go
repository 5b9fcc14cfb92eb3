package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/clyra-ai/wrkr-docs/internal/nav"
	"github.com/clyra-ai/wrkr-docs/internal/seo"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that answers questions about the docs site:
// its routes, canonical URLs, menu state and FAQ.
type Server struct {
	site seo.SiteConfig
	tree nav.Tree
	faq  []seo.FAQEntry
	mcp  *server.MCPServer
}

// NewServer creates a new MCP server for the given deployment.
func NewServer(site seo.SiteConfig, tree nav.Tree, faq []seo.FAQEntry) *Server {
	s := &Server{
		site: site,
		tree: tree.Clone(),
		faq:  append([]seo.FAQEntry(nil), faq...),
	}

	s.mcp = server.NewMCPServer(
		"wrkr-docs",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listRoutesTool, s.handleListRoutes)
	s.mcp.AddTool(canonicalURLTool, s.handleCanonicalURL)
	s.mcp.AddTool(activeRoutesTool, s.handleActiveRoutes)
	s.mcp.AddTool(getFAQTool, s.handleGetFAQ)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
