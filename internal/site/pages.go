package site

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/clyra-ai/wrkr-docs/internal/nav"
	"github.com/clyra-ai/wrkr-docs/internal/seo"
)

// Built-in routes. Content may not claim them.
const (
	HomeRoute    = "/"
	DocsHubRoute = "/docs"
	LLMsRoute    = "/llms"
)

// Feature is a card on the home page.
type Feature struct {
	Title       string
	Description string
	Href        string
}

// Track is a titled run of docs links on the docs hub.
type Track struct {
	Title string
	Steps []nav.Link
}

// Resource is a machine-readable context file listed on the LLM page.
type Resource struct {
	Label string
	Href  string
}

// Comparison is one row of the home page before/after table.
type Comparison struct {
	Topic   string
	Without string
	With    string
}

const homeTitle = "Wrkr | AI-DSPM Discovery with Deterministic Proof"

const quickstart = `# Initialize with deterministic defaults
wrkr init --non-interactive --path ./scenarios/wrkr/scan-mixed-org/repos --json

# Run scan and posture outputs
wrkr scan --path ./scenarios/wrkr/scan-mixed-org/repos --profile standard --json
wrkr report --top 5 --json
wrkr score --json

# Generate and verify compliance evidence
wrkr evidence --frameworks eu-ai-act,soc2 --output ./.tmp/evidence --json
wrkr verify --chain --json

# Gate on drift
wrkr regress init --baseline ./.wrkr/last-scan.json --output ./.tmp/wrkr-regress-baseline.json --json
wrkr regress run --baseline ./.tmp/wrkr-regress-baseline.json --json`

var features = []Feature{
	{"Org and Repo Discovery", "Discover AI tooling declarations across repo/org/path sources with deterministic output contracts.", "/docs/intent/scan-org-repos-for-ai-agents-configs"},
	{"Headless Risk Ranking", "Surface high-impact CI/autonomous execution risks with ranked, explainable findings.", "/docs/intent/detect-headless-agent-risk"},
	{"Compliance Evidence", "Generate framework-mapped evidence bundles and verify proof chain integrity.", "/docs/intent/generate-compliance-evidence-from-scans"},
	{"Deterministic Regressions", "Create baseline posture gates and fail CI with stable drift reasons.", "/docs/intent/gate-on-drift-and-regressions"},
	{"Open Manifest Contract", "Use `wrkr-manifest.yaml` as a portable policy and lifecycle posture contract.", "/docs/specs/wrkr-manifest"},
	{"Agent-Readable Context", "LLM-oriented docs resources, AI sitemap, and crawler policy for reliable assistant grounding.", LLMsRoute},
}

var comparisons = []Comparison{
	{"AI tool inventory", "manual surveys, stale answers", "deterministic repo/org inventory"},
	{"Headless risk visibility", "ad-hoc grep and assumptions", "ranked findings with posture context"},
	{"Compliance evidence", "manual artifact assembly", "command-generated evidence bundle"},
	{"Regression gating", "no baseline contract", "stable drift reasons and exit code 5"},
}

func step(label, href string) nav.Link { return nav.Link{Title: label, Href: href} }

var tracks = []Track{
	{"Track 1: First Deterministic Scan", []nav.Link{
		step("Adopt In One PR", "/docs/adopt_in_one_pr"),
		step("Quickstart", "/docs/examples/quickstart"),
		step("Integration Checklist", "/docs/integration_checklist"),
		step("Command Index", "/docs/commands/index"),
		step("Scan Command", "/docs/commands/scan"),
	}},
	{"Track 2: High-Intent Workflows", []nav.Link{
		step("Scan Org Repos", "/docs/intent/scan-org-repos-for-ai-agents-configs"),
		step("Detect Headless Risk", "/docs/intent/detect-headless-agent-risk"),
		step("Generate Evidence", "/docs/intent/generate-compliance-evidence-from-scans"),
		step("Gate Regressions", "/docs/intent/gate-on-drift-and-regressions"),
	}},
	{"Track 3: Technical Foundations", []nav.Link{
		step("Architecture", "/docs/architecture"),
		step("Mental Model", "/docs/concepts/mental_model"),
		step("Policy Authoring", "/docs/policy_authoring"),
		step("Failure Taxonomy", "/docs/failure_taxonomy_exit_codes"),
		step("Threat Model", "/docs/threat_model"),
	}},
	{"Track 4: Proof and Contracts", []nav.Link{
		step("Verify Command", "/docs/commands/verify"),
		step("Evidence Command", "/docs/commands/evidence"),
		step("Manifest Spec", "/docs/specs/wrkr-manifest"),
		step("Compatibility Matrix", "/docs/contracts/compatibility_matrix"),
		step("Proof Verification", "/docs/trust/proof-chain-verification"),
		step("Contracts and Schemas", "/docs/trust/contracts-and-schemas"),
	}},
	{"Track 5: Positioning and Packaging", []nav.Link{
		step("Positioning", "/docs/positioning"),
		step("Evidence Templates", "/docs/evidence_templates"),
		step("FAQ", "/docs/faq"),
		step("Deterministic Guarantees", "/docs/trust/deterministic-guarantees"),
		step("Coverage Matrix", "/docs/trust/detection-coverage-matrix"),
		step("Security and Privacy", "/docs/trust/security-and-privacy"),
		step("Release Integrity", "/docs/trust/release-integrity"),
	}},
	{"Track 6: Hub and Discovery", []nav.Link{
		step("LLM Context", LLMsRoute),
		step("llms.txt", "/llms.txt"),
		step("llms-full.txt", "/llms-full.txt"),
		step("AI Sitemap", "/ai-sitemap.xml"),
		step("Crawler Policy", "/robots.txt"),
	}},
}

// Resources are listed on the LLM context page in this order.
var Resources = []Resource{
	{"llms.txt", "/llms.txt"},
	{"llms-full.txt (Extended)", "/llms-full.txt"},
	{"LLM Product Overview", "/llm/product.md"},
	{"LLM Quickstart", "/llm/quickstart.md"},
	{"LLM Security and Privacy", "/llm/security.md"},
	{"LLM Contracts", "/llm/contracts.md"},
	{"LLM FAQ", "/llm/faq.md"},
	{"Crawler Policy (robots.txt)", "/robots.txt"},
	{"AI Sitemap", "/ai-sitemap.xml"},
}

// Footer holds the links under the sidebar menu.
var Footer = []nav.Link{
	{Title: "LLM Context", Href: LLMsRoute},
	{Title: "GitHub", Href: seo.WrkrRepository},
}

// Features returns the home page cards.
func Features() []Feature { return append([]Feature(nil), features...) }

// Tracks returns the docs hub tracks.
func Tracks() []Track { return append([]Track(nil), tracks...) }

// BuiltinLinks lists every internal link the built-in pages emit, tagged
// with the page they appear on.
func BuiltinLinks() []nav.Link {
	var links []nav.Link
	for _, f := range features {
		links = append(links, nav.Link{Section: "Home", Title: f.Title, Href: f.Href})
	}
	for _, t := range tracks {
		for _, s := range t.Steps {
			links = append(links, nav.Link{Section: t.Title, Title: s.Title, Href: s.Href})
		}
	}
	for _, r := range Resources {
		links = append(links, nav.Link{Section: "LLM Context", Title: r.Label, Href: r.Href})
	}
	for _, f := range Footer {
		if !seo.IsExternal(f.Href) {
			links = append(links, nav.Link{Section: "Footer", Title: f.Title, Href: f.Href})
		}
	}
	return links
}

type homeView struct {
	Quickstart  string
	Features    []Feature
	Comparisons []Comparison
	FAQ         []seo.FAQEntry
}

type docsHubView struct {
	Tracks []Track
}

type llmsView struct {
	Resources []Resource
}

// builtinPages renders the home, docs hub and LLM context pages.
func builtinPages(t *template.Template, app seo.Application, faq []seo.FAQEntry) ([]Page, error) {
	home, err := executeBody(t, "home", homeView{
		Quickstart:  quickstart,
		Features:    features,
		Comparisons: comparisons,
		FAQ:         faq,
	})
	if err != nil {
		return nil, err
	}
	appScript, err := seo.Script(seo.NewSoftwareApplication(app))
	if err != nil {
		return nil, fmt.Errorf("software application descriptor: %w", err)
	}
	faqScript, err := seo.Script(seo.NewFAQPage(faq))
	if err != nil {
		return nil, fmt.Errorf("faq descriptor: %w", err)
	}

	hub, err := executeBody(t, "docs-hub", docsHubView{Tracks: tracks})
	if err != nil {
		return nil, err
	}
	llms, err := executeBody(t, "llms", llmsView{Resources: Resources})
	if err != nil {
		return nil, err
	}

	return []Page{
		{
			Route:       HomeRoute,
			Title:       homeTitle,
			Description: "Wrkr evaluates your AI dev tool configurations across your GitHub repo/org against policy. Posture-scored, compliance-ready.",
			Body:        home,
			Text:        homeText(faq),
			Scripts:     []template.HTML{appScript, faqScript},
		},
		{
			Route:       DocsHubRoute,
			Title:       "Wrkr Documentation",
			Description: "Command-first, deterministic documentation for Wrkr AI-DSPM workflows.",
			Body:        hub,
			Text:        "Command-first references and intent guides for deterministic AI tooling posture workflows.",
		},
		{
			Route:       LLMsRoute,
			Title:       "LLM Context",
			Description: "Machine-readable and human-readable context for assistants and evaluators about Wrkr OSS.",
			Body:        llms,
			Text:        "These resources are optimized for AI assistants, search agents, and evaluators to discover Wrkr capabilities, contracts, and safe usage boundaries.",
		},
	}, nil
}

func homeText(faq []seo.FAQEntry) string {
	var b bytes.Buffer
	b.WriteString("Wrkr evaluates your AI dev tool configurations across your GitHub repo/org against policy. Posture-scored, compliance-ready.")
	for _, e := range faq {
		b.WriteString(" ")
		b.WriteString(e.Question)
		b.WriteString(" ")
		b.WriteString(e.Answer)
	}
	return b.String()
}

func executeBody(t *template.Template, name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
