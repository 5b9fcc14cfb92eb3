package site

import (
	"html/template"

	"github.com/clyra-ai/wrkr-docs/internal/seo"
)

// siteTemplates holds the page layout and the built-in page bodies. The
// href and pageURL funcs are placeholders replaced per build by forSite.
var siteTemplates = template.Must(template.New("site").Funcs(template.FuncMap{
	"href":    func(route string) string { return route },
	"pageURL": func(route string) string { return route },
}).Parse(layoutTemplate + homeTemplate + docsHubTemplate + llmsTemplate))

// forSite returns a copy of the templates resolving links against site.
func forSite(site seo.SiteConfig) (*template.Template, error) {
	t, err := siteTemplates.Clone()
	if err != nil {
		return nil, err
	}
	return t.Funcs(template.FuncMap{
		"href":    site.Href,
		"pageURL": site.PageURL,
	}), nil
}

// layoutData is what the layout needs to wrap one page.
type layoutData struct {
	Page      Page
	Meta      seo.Metadata
	HeadTitle string
	AssetBase string
	Sidebar   template.HTML
	Drawer    template.HTML
}

const layoutTemplate = `
{{- define "layout" -}}
<!DOCTYPE html>
<html lang="en" class="dark">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.HeadTitle}}</title>
<meta name="description" content="{{.Meta.Description}}">
{{- with .Meta.KeywordList}}
<meta name="keywords" content="{{.}}">
{{- end}}
{{- if .Meta.NoIndex}}
<meta name="robots" content="noindex">
{{- end}}
{{- with .Meta.Canonical}}
<link rel="canonical" href="{{.}}">
{{- end}}
<meta property="og:title" content="{{.HeadTitle}}">
<meta property="og:description" content="{{.Meta.Description}}">
{{- with .Meta.Canonical}}
<meta property="og:url" content="{{.}}">
{{- end}}
<meta property="og:site_name" content="{{.Meta.SiteName}}">
<meta property="og:type" content="{{.Meta.Type}}">
<meta property="og:image" content="{{.Meta.Image.URL}}">
<meta property="og:image:width" content="{{.Meta.Image.Width}}">
<meta property="og:image:height" content="{{.Meta.Image.Height}}">
<meta property="og:image:alt" content="{{.Meta.Image.Alt}}">
<meta name="twitter:card" content="summary_large_image">
<meta name="twitter:title" content="{{.HeadTitle}}">
<meta name="twitter:description" content="{{.Meta.Description}}">
<meta name="twitter:image" content="{{.Meta.Image.URL}}">
{{- range .Meta.Icons}}
<link rel="{{.Rel}}" href="{{.Href}}"{{with .Type}} type="{{.}}"{{end}}>
{{- end}}
<link rel="stylesheet" href="{{.AssetBase}}/style.css">
{{- range .Page.Scripts}}
{{.}}
{{- end}}
</head>
<body data-base="{{.AssetBase}}">
{{.Drawer}}
<div class="layout">
{{.Sidebar}}
<main class="content">
<article class="prose">
{{- if .Page.ShowTitle}}
<h1>{{.Page.Title}}</h1>
{{- end}}
{{.Page.Body}}
</article>
</main>
</div>
<script src="{{.AssetBase}}/script.js"></script>
</body>
</html>
{{end -}}
`

const homeTemplate = `
{{- define "home" -}}
<section class="hero">
<h1>Evaluate AI Tooling Posture. <span class="accent">Prove It Deterministically.</span></h1>
<p class="lead">Wrkr evaluates your AI dev tool configurations across your GitHub repo/org against policy. Posture-scored, compliance-ready.</p>
<p class="sub">Scan, rank, regress, verify, and export evidence with stable <code>--json</code> outputs and fail-closed safety defaults.</p>
<div class="actions">
<a href="{{href "/docs/examples/quickstart"}}" class="button primary">Start Here</a>
<a href="{{href "/docs/intent/scan-org-repos-for-ai-agents-configs"}}" class="button">Org Scan Flow</a>
</div>
</section>
<pre class="quickstart"><code>{{.Quickstart}}</code></pre>
<div class="cards">
{{- range .Features}}
<a href="{{href .Href}}" class="card"><h3>{{.Title}}</h3><p>{{.Description}}</p></a>
{{- end}}
</div>
<h2>Why Teams Use Wrkr</h2>
<table class="comparison">
<thead><tr><th></th><th>Without Wrkr</th><th>With Wrkr</th></tr></thead>
<tbody>
{{- range .Comparisons}}
<tr><td>{{.Topic}}</td><td>{{.Without}}</td><td>{{.With}}</td></tr>
{{- end}}
</tbody>
</table>
<h2>Frequently Asked Questions</h2>
<div class="faq">
{{- range .FAQ}}
<div class="faq-entry"><h3>{{.Question}}</h3><p>{{.Answer}}</p></div>
{{- end}}
</div>
<section class="closing">
<h2>Use command-first docs that agents can quote and operators can verify.</h2>
<p>Start with intent guides, then validate with deterministic CLI outputs.</p>
<a href="{{href "/docs"}}" class="button primary">Open Documentation</a>
<p class="note">For assistant and crawler discovery resources, use <a href="{{href "/llms"}}">LLM Context</a>.</p>
</section>
{{- end -}}
`

const docsHubTemplate = `
{{- define "docs-hub" -}}
<h1>Documentation</h1>
<p class="lead">Command-first references and intent guides for deterministic AI tooling posture workflows.</p>
{{- range .Tracks}}
<section class="track">
<h2>{{.Title}}</h2>
<div class="steps">
{{- range .Steps}}
<a href="{{href .Href}}" class="step">{{.Title}}</a>
{{- end}}
</div>
</section>
{{- end}}
{{- end -}}
`

const llmsTemplate = `
{{- define "llms" -}}
<h1>LLM Context</h1>
<p class="lead">These resources are optimized for AI assistants, search agents, and evaluators to discover Wrkr capabilities, contracts, and safe usage boundaries.</p>
<div class="resources">
{{- range .Resources}}
<a href="{{href .Href}}" class="resource">{{.Label}}</a>
{{- end}}
</div>
<p><a href="{{href "/docs"}}">Back to docs</a></p>
{{- end -}}
`

const notFoundBody = `<h1>Page not found</h1>
<p class="lead">The page you asked for does not exist. Try the documentation index.</p>`

// cssContent styles every page. Below 1024px the sidebar hides and the
// drawer header takes over.
const cssContent = `:root {
  --bg: #0b1120;
  --bg-panel: #111827;
  --border: #1f2937;
  --text: #e5e7eb;
  --muted: #9ca3af;
  --accent: #22d3ee;
  --accent-strong: #06b6d4;
  --sidebar-width: 16rem;
}
* { box-sizing: border-box; }
body { margin: 0; background: var(--bg); color: var(--text); font: 16px/1.6 system-ui, -apple-system, "Segoe UI", sans-serif; }
a { color: var(--accent); text-decoration: none; }
a:hover { text-decoration: underline; }
code, pre { font-family: ui-monospace, SFMono-Regular, Menlo, monospace; font-size: 0.9em; }
pre { background: var(--bg-panel); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; overflow-x: auto; }
table { border-collapse: collapse; width: 100%; }
th, td { text-align: left; padding: 0.6rem 1rem; border-bottom: 1px solid var(--border); }

.layout { display: flex; max-width: 80rem; margin: 0 auto; padding: 0 1rem; }
.content { flex: 1; min-width: 0; padding: 2rem 0 4rem 2rem; }
.prose { max-width: 56rem; }

.brand { display: flex; align-items: center; gap: 0.5rem; color: #fff; font-weight: 700; font-size: 1.25rem; }
.brand:hover { text-decoration: none; }
.brand-mark { width: 2rem; height: 2rem; border-radius: 0.5rem; display: inline-flex; align-items: center; justify-content: center; background: linear-gradient(135deg, var(--accent-strong), #2563eb); font-size: 0.875rem; }

.sidebar { width: var(--sidebar-width); flex-shrink: 0; position: sticky; top: 0; height: 100vh; overflow-y: auto; padding: 2rem 1rem 2rem 0; }
.sidebar .brand { margin: 0 0.75rem 1.5rem; }
.nav-section { margin-bottom: 1.5rem; }
.nav-heading { margin: 0 0.75rem 0.5rem; font-size: 0.75rem; font-weight: 600; text-transform: uppercase; letter-spacing: 0.05em; color: #6b7280; }
.nav-heading.active { color: var(--accent); }
.nav-list { list-style: none; margin: 0; padding: 0; }
.nav-list .nav-list { margin-left: 0.75rem; }
.nav-link { display: block; margin-left: 1rem; padding: 0.375rem 0.75rem; border-left: 2px solid transparent; border-radius: 0.375rem; font-size: 0.875rem; color: var(--muted); }
.nav-link:hover { color: var(--text); background: rgba(31, 41, 55, 0.5); text-decoration: none; }
.nav-link.active { color: var(--accent); background: rgba(6, 182, 212, 0.1); border-left-color: var(--accent); }
.sidebar-footer { margin-top: 2rem; padding: 2rem 0.75rem 0; border-top: 1px solid var(--border); display: grid; gap: 0.75rem; font-size: 0.875rem; }
.sidebar-footer a { color: var(--muted); }

.drawer { display: none; position: sticky; top: 0; z-index: 50; background: rgba(17, 24, 39, 0.95); border-bottom: 1px solid var(--border); }
.drawer-bar { display: flex; align-items: center; justify-content: space-between; padding: 0.75rem 1rem; }
.drawer-toggle { background: none; border: 0; color: var(--muted); font: inherit; padding: 0.5rem; cursor: pointer; }
.drawer-toggle:hover { color: #fff; }
.drawer-menu { max-height: 70vh; overflow-y: auto; padding: 0 1rem 1rem; }
.drawer-menu[hidden] { display: none; }
.drawer-menu .nav-link { margin-left: 0; padding: 0.5rem 0.75rem; }

@media (max-width: 1023px) {
  .sidebar { display: none; }
  .drawer { display: block; }
  .content { padding-left: 0; }
}

.hero { text-align: center; padding: 3rem 0; }
.hero h1 { font-size: 2.5rem; line-height: 1.2; color: #fff; }
.accent { background: linear-gradient(90deg, #22d3ee, #3b82f6); -webkit-background-clip: text; background-clip: text; color: transparent; }
.lead { font-size: 1.15rem; color: var(--muted); }
.sub { color: #6b7280; }
.actions { display: flex; gap: 1rem; justify-content: center; flex-wrap: wrap; margin-top: 2rem; }
.button { display: inline-block; padding: 0.75rem 1.5rem; border-radius: 0.5rem; border: 1px solid var(--border); background: var(--bg-panel); color: var(--text); font-weight: 600; }
.button.primary { background: var(--accent-strong); border-color: var(--accent-strong); color: #111827; }
.button:hover { text-decoration: none; filter: brightness(1.1); }
.quickstart { max-width: 48rem; margin: 0 auto 4rem; color: #67e8f9; }
.cards, .faq { display: grid; gap: 1.5rem; grid-template-columns: repeat(auto-fill, minmax(16rem, 1fr)); margin-bottom: 4rem; }
.card, .faq-entry { display: block; padding: 1.5rem; border: 1px solid var(--border); border-radius: 0.5rem; background: rgba(17, 24, 39, 0.4); color: var(--text); }
.card:hover { text-decoration: none; border-color: #4b5563; }
.card h3, .faq-entry h3 { margin-top: 0; color: #fff; font-size: 1.05rem; }
.card p, .faq-entry p { margin-bottom: 0; color: var(--muted); font-size: 0.9rem; }
.comparison { margin-bottom: 4rem; font-size: 0.9rem; }
.closing { text-align: center; padding: 3rem 0; border-top: 1px solid var(--border); }
.note { font-size: 0.875rem; color: #6b7280; margin-top: 1.25rem; }
.track { border: 1px solid var(--border); border-radius: 0.75rem; padding: 1.5rem; margin-bottom: 1.5rem; background: rgba(17, 24, 39, 0.3); }
.track h2 { margin-top: 0; font-size: 1.25rem; }
.steps { display: flex; flex-wrap: wrap; gap: 0.75rem; }
.step { border: 1px solid var(--border); border-radius: 0.5rem; padding: 0.5rem 1rem; font-size: 0.875rem; color: var(--text); }
.resources { display: grid; gap: 0.75rem; margin-bottom: 2.5rem; }
.resource { display: block; border: 1px solid var(--border); border-radius: 0.5rem; padding: 0.75rem 1rem; background: rgba(17, 24, 39, 0.4); color: var(--text); }
`

// jsContent mirrors the drawer transitions in the browser: the toggle
// button flips the menu, and following a menu link closes it.
const jsContent = `(function() {
  var drawer = document.querySelector('.drawer');
  if (!drawer) return;
  var toggle = drawer.querySelector('.drawer-toggle');
  var menu = drawer.querySelector('.drawer-menu');

  function setOpen(open) {
    drawer.setAttribute('data-state', open ? 'open' : 'closed');
    toggle.setAttribute('aria-expanded', open ? 'true' : 'false');
    toggle.textContent = open ? 'Close' : 'Menu';
    menu.hidden = !open;
  }

  toggle.addEventListener('click', function() {
    setOpen(drawer.getAttribute('data-state') !== 'open');
  });

  menu.addEventListener('click', function(e) {
    if (e.target.closest('a')) setOpen(false);
  });

  setOpen(false);
})();
`
