package nav

// defaultTree is the published Wrkr navigation. Some hrefs, /docs in
// particular, appear in more than one section on purpose.
var defaultTree = Tree{
	{
		Title: "Start Here",
		Href:  "/docs",
		Children: []Item{
			{Title: "Adopt In One PR", Href: "/docs/adopt_in_one_pr"},
			{Title: "Quickstart", Href: "/docs/examples/quickstart"},
			{Title: "Integration Checklist", Href: "/docs/integration_checklist"},
			{Title: "FAQ", Href: "/docs/faq"},
		},
	},
	{
		Title: "Intent Guides",
		Href:  "/docs/intent/scan-org-repos-for-ai-agents-configs",
		Children: []Item{
			{Title: "Scan Org Repos", Href: "/docs/intent/scan-org-repos-for-ai-agents-configs"},
			{Title: "Detect Headless Risk", Href: "/docs/intent/detect-headless-agent-risk"},
			{Title: "Generate Evidence", Href: "/docs/intent/generate-compliance-evidence-from-scans"},
			{Title: "Gate Regressions", Href: "/docs/intent/gate-on-drift-and-regressions"},
		},
	},
	{
		Title: "Technical Foundations",
		Href:  "/docs/architecture",
		Children: []Item{
			{Title: "Docs Map", Href: "/docs"},
			{Title: "Architecture", Href: "/docs/architecture"},
			{Title: "Mental Model", Href: "/docs/concepts/mental_model"},
			{Title: "Policy Authoring", Href: "/docs/policy_authoring"},
			{Title: "Failure Taxonomy", Href: "/docs/failure_taxonomy_exit_codes"},
			{Title: "Threat Model", Href: "/docs/threat_model"},
		},
	},
	{
		Title: "Trust and Contracts",
		Href:  "/docs/trust/deterministic-guarantees",
		Children: []Item{
			{Title: "Deterministic Guarantees", Href: "/docs/trust/deterministic-guarantees"},
			{Title: "Coverage Matrix", Href: "/docs/trust/detection-coverage-matrix"},
			{Title: "Proof Verification", Href: "/docs/trust/proof-chain-verification"},
			{Title: "Contracts and Schemas", Href: "/docs/trust/contracts-and-schemas"},
			{Title: "Compatibility Matrix", Href: "/docs/contracts/compatibility_matrix"},
			{Title: "Security and Privacy", Href: "/docs/trust/security-and-privacy"},
			{Title: "Release Integrity", Href: "/docs/trust/release-integrity"},
			{Title: "Manifest Spec", Href: "/docs/specs/wrkr-manifest"},
		},
	},
	{
		Title: "Command Reference",
		Href:  "/docs/commands/index",
		Children: []Item{
			{Title: "index", Href: "/docs/commands/index"},
			{Title: "root", Href: "/docs/commands/root"},
			{Title: "scan", Href: "/docs/commands/scan"},
			{Title: "report", Href: "/docs/commands/report"},
			{Title: "score", Href: "/docs/commands/score"},
			{Title: "verify", Href: "/docs/commands/verify"},
			{Title: "evidence", Href: "/docs/commands/evidence"},
			{Title: "regress", Href: "/docs/commands/regress"},
			{Title: "fix", Href: "/docs/commands/fix"},
		},
	},
	{
		Title: "Positioning",
		Href:  "/docs/positioning",
		Children: []Item{
			{Title: "Positioning", Href: "/docs/positioning"},
			{Title: "Evidence Templates", Href: "/docs/evidence_templates"},
			{Title: "Operator Playbooks", Href: "/docs/examples/operator-playbooks"},
		},
	},
	{
		Title: "Docs Hub",
		Href:  "/docs",
		Children: []Item{
			{Title: "Docs Home", Href: "/docs"},
			{Title: "LLM Context", Href: "/llms"},
			{Title: "llms.txt", Href: "/llms.txt"},
			{Title: "llms-full.txt", Href: "/llms-full.txt"},
			{Title: "AI Sitemap", Href: "/ai-sitemap.xml"},
		},
	},
}

// Default returns a private copy of the Wrkr navigation tree.
func Default() Tree {
	return defaultTree.Clone()
}
