package seo

// WrkrRepository is the public source repository of Wrkr.
const WrkrRepository = "https://github.com/Clyra-AI/wrkr"

// WrkrApplication returns the descriptor facts for Wrkr, with URLs resolved
// against site.
func WrkrApplication(site SiteConfig) Application {
	return Application{
		Name:            "Wrkr",
		Category:        "DeveloperApplication",
		OperatingSystem: "Linux, macOS, Windows",
		Description: "Wrkr evaluates AI dev tool configurations across GitHub repo/org against policy " +
			"with deterministic posture scoring and compliance-ready evidence.",
		URL:        site.CanonicalURL("/"),
		HelpURL:    site.CanonicalURL("/docs/"),
		Repository: WrkrRepository,
		Price:      "0",
		Currency:   "USD",
	}
}

// WrkrFAQ returns the questions shown on the home page, in display order.
func WrkrFAQ() []FAQEntry {
	return []FAQEntry{
		{
			Question: "What is Wrkr in one sentence?",
			Answer:   "Wrkr evaluates your AI dev tool configurations across your GitHub repo/org against policy. Posture-scored, compliance-ready.",
		},
		{
			Question: "Does Wrkr require a hosted control plane?",
			Answer:   "No. Wrkr is deterministic and file-based by default, with local scan state and local evidence generation.",
		},
		{
			Question: "What makes Wrkr outputs audit-friendly?",
			Answer:   "Wrkr emits deterministic JSON contracts, stable exit codes, and proof-chain verifiable evidence paths.",
		},
		{
			Question: "Can Wrkr enforce runtime side effects?",
			Answer:   "Wrkr is a discovery and posture layer. Runtime side-effect enforcement belongs to control-plane runtimes like Gait.",
		},
		{
			Question: "How do I fail CI on posture drift?",
			Answer:   "Use `wrkr regress init` to create a baseline and `wrkr regress run` in CI. Exit code `5` indicates drift.",
		},
		{
			Question: "How do I generate compliance evidence?",
			Answer:   "Run `wrkr evidence --frameworks ... --json` and validate integrity with `wrkr verify --chain --json`.",
		},
	}
}

// WrkrKeywords are the site-wide meta keywords.
var WrkrKeywords = []string{
	"AI-DSPM",
	"ai governance",
	"ai tooling inventory",
	"mcp risk",
	"headless agent risk",
	"deterministic evidence",
	"compliance evidence",
	"ai posture scoring",
}
