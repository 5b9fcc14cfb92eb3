package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listRoutesTool defines the list_routes MCP tool.
var listRoutesTool = mcp.NewTool("list_routes",
	mcp.WithDescription("List every page linked from the docs navigation with its section and canonical URL."),
	mcp.WithString("section",
		mcp.Description("Only list links under this navigation section, e.g. \"Start Here\""),
	),
)

// canonicalURLTool defines the canonical_url MCP tool.
var canonicalURLTool = mcp.NewTool("canonical_url",
	mcp.WithDescription("Get the absolute canonical URL for a site-root-relative path."),
	mcp.WithString("path",
		mcp.Required(),
		mcp.Description("Path relative to the site root, e.g. /docs/faq"),
	),
)

// activeRoutesTool defines the active_routes MCP tool.
var activeRoutesTool = mcp.NewTool("active_routes",
	mcp.WithDescription("List the navigation entries highlighted when the given path is open."),
	mcp.WithString("path",
		mcp.Required(),
		mcp.Description("Current path relative to the site root"),
	),
)

// getFAQTool defines the get_faq MCP tool.
var getFAQTool = mcp.NewTool("get_faq",
	mcp.WithDescription("Get the frequently asked questions published on the home page."),
	mcp.WithString("format",
		mcp.Description("Output format (default markdown)"),
		mcp.Enum("markdown", "jsonld"),
	),
)
