package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/clyra-ai/wrkr-docs/internal/metric"
	"github.com/clyra-ai/wrkr-docs/internal/nav"
	"github.com/clyra-ai/wrkr-docs/internal/progress"
	"github.com/clyra-ai/wrkr-docs/internal/seo"
	"github.com/clyra-ai/wrkr-docs/internal/walker"
)

// Options describes one build.
type Options struct {
	ContentDir     string
	StaticDir      string
	OutputDir      string
	Include        []string
	Exclude        []string
	MaxConcurrency int
	// Clean removes OutputDir before writing.
	Clean bool

	SiteName string
	Site     seo.SiteConfig
	Tree     nav.Tree
	App      seo.Application
	FAQ      []seo.FAQEntry
}

// Generator converts markdown content into the static export.
type Generator struct {
	Options

	Logger   *slog.Logger
	Reporter progress.Reporter
	// Pages counts rendered pages by kind ("content" or "builtin").
	Pages metric.IncrementalCounter
}

// NewGenerator returns a Generator that logs nowhere and reports nothing
// until its collaborators are set.
func NewGenerator(opts Options) *Generator {
	return &Generator{
		Options:  opts,
		Logger:   slog.New(slog.DiscardHandler),
		Reporter: progress.Nop{},
		Pages:    metric.Nop{},
	}
}

// Result summarizes a finished build.
type Result struct {
	Pages     []Page
	Assets    int      // static files copied
	Skipped   int      // static files already up to date
	Resources []string // generated discovery and asset files, output-relative
}

// Routes returns the routes of every written page in order.
func (r *Result) Routes() []string {
	routes := make([]string, len(r.Pages))
	for i, p := range r.Pages {
		routes[i] = p.Route
	}
	return routes
}

// Generate builds the full static site.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	if g.OutputDir == "" {
		return nil, errors.New("output dir is required")
	}
	if err := g.checkOutputDir(); err != nil {
		return nil, err
	}

	files, err := g.contentFiles()
	if err != nil {
		return nil, err
	}

	routes, err := contentRoutes(files)
	if err != nil {
		return nil, err
	}
	g.Logger.Debug("discovered content", "files", len(files), "dir", g.ContentDir)

	tmpl, err := forSite(g.Site)
	if err != nil {
		return nil, fmt.Errorf("preparing templates: %w", err)
	}

	// Markdown conversion runs in order; rendering the layout and writing
	// files is what fans out.
	md := newMarkdown(g.Site, routes)
	var pages []Page
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p, err := loadPage(md, f)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", f.RelPath, err)
		}
		pages = append(pages, p)
	}

	builtins, err := builtinPages(tmpl, g.App, g.FAQ)
	if err != nil {
		return nil, err
	}
	pages = append(pages, builtins...)
	sort.Slice(pages, func(i, j int) bool { return pages[i].Route < pages[j].Route })

	if g.Clean {
		if err := os.RemoveAll(g.OutputDir); err != nil {
			return nil, fmt.Errorf("cleaning %s: %w", g.OutputDir, err)
		}
	}
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, err
	}

	if err := g.renderAll(ctx, tmpl, pages); err != nil {
		return nil, err
	}

	result := &Result{Pages: pages}

	if err := g.renderNotFound(tmpl); err != nil {
		return nil, err
	}
	result.Resources = append(result.Resources, "404.html")

	copied, skipped, err := copyStatic(ctx, g.StaticDir, g.OutputDir)
	if err != nil {
		return nil, err
	}
	result.Assets, result.Skipped = copied, skipped

	if err := writeFile(g.OutputDir, "style.css", []byte(cssContent)); err != nil {
		return nil, err
	}
	if err := writeFile(g.OutputDir, "script.js", []byte(jsContent)); err != nil {
		return nil, err
	}
	result.Resources = append(result.Resources, "style.css", "script.js")

	written, err := WriteDiscovery(g.OutputDir, Discovery{
		SiteName:    g.SiteName,
		Description: g.App.Description,
		Site:        g.Site,
		Tree:        g.Tree,
		Pages:       pages,
	})
	if err != nil {
		return nil, err
	}
	result.Resources = append(result.Resources, written...)

	if err := WriteSearchIndex(BuildSearchIndex(pages, g.Site), filepath.Join(g.OutputDir, "search-index.json")); err != nil {
		return nil, fmt.Errorf("writing search index: %w", err)
	}
	result.Resources = append(result.Resources, "search-index.json")

	g.Logger.Info("site generated",
		"pages", len(pages),
		"assets", result.Assets,
		"output", g.OutputDir,
	)
	return result, nil
}

// checkOutputDir refuses an output dir that shares a tree with the content
// or static dir: writing there mixes the export into the sources, and Clean
// would delete them.
func (g *Generator) checkOutputDir() error {
	for _, src := range []string{g.ContentDir, g.StaticDir} {
		if src == "" {
			continue
		}
		overlap, err := walker.Overlaps(g.OutputDir, src)
		if err != nil {
			return err
		}
		if overlap {
			return fmt.Errorf("output dir %s overlaps source dir %s", g.OutputDir, src)
		}
	}
	return nil
}

func (g *Generator) contentFiles() ([]walker.FileInfo, error) {
	if g.ContentDir == "" {
		return nil, nil
	}
	files, err := walker.Walk(walker.WalkerConfig{
		RootDir:  g.ContentDir,
		Include:  g.Include,
		Exclude:  g.Exclude,
		TextOnly: true,
	})
	if errors.Is(err, fs.ErrNotExist) {
		g.Logger.Warn("content dir not found, building built-in pages only", "dir", g.ContentDir)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	md := files[:0]
	for _, f := range files {
		if f.Kind == walker.KindMarkdown {
			md = append(md, f)
		}
	}
	return md, nil
}

// contentRoutes maps every content file to its route, rejecting two files
// on one route and files that would replace a built-in page.
func contentRoutes(files []walker.FileInfo) (map[string]bool, error) {
	owner := make(map[string]string, len(files))
	for _, f := range files {
		route := RouteFor(f.RelPath)
		switch route {
		case HomeRoute, DocsHubRoute, LLMsRoute:
			return nil, fmt.Errorf("%s: route %s is a built-in page", f.RelPath, route)
		}
		if prev, ok := owner[route]; ok {
			return nil, fmt.Errorf("%s and %s both map to route %s", prev, f.RelPath, route)
		}
		owner[route] = f.RelPath
	}
	routes := make(map[string]bool, len(owner))
	for r := range owner {
		routes[r] = true
	}
	return routes, nil
}

func (g *Generator) concurrency() int {
	if g.MaxConcurrency > 0 {
		return g.MaxConcurrency
	}
	return runtime.GOMAXPROCS(0)
}

// renderAll writes every page concurrently. Each render only reads shared
// state, so the order pages finish in does not matter.
func (g *Generator) renderAll(ctx context.Context, tmpl *template.Template, pages []Page) error {
	g.Reporter.Start(len(pages), "Rendering pages")
	defer g.Reporter.Finish()

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.concurrency())

	for _, p := range pages {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := g.renderPage(tmpl, p); err != nil {
				return fmt.Errorf("rendering %s: %w", p.Route, err)
			}
			kind := "content"
			if p.Builtin() {
				kind = "builtin"
			}
			g.Pages.Increment(kind)
			g.Reporter.Advance(p.Route)
			g.Logger.Debug("page written", "route", p.Route, "source", p.Source)
			return nil
		})
	}
	return eg.Wait()
}

// renderPage wraps p in the layout and writes route/index.html.
func (g *Generator) renderPage(tmpl *template.Template, p Page) error {
	data, err := g.layout(p)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return err
	}
	return writeFile(g.OutputDir, OutputPath(p.Route), buf.Bytes())
}

func (g *Generator) layout(p Page) (layoutData, error) {
	link := nav.LinkFunc(g.Site.Href)
	sidebar, err := nav.Sidebar{
		Tree:   g.Tree,
		Link:   link,
		Brand:  g.SiteName,
		Footer: Footer,
	}.Render(p.Route)
	if err != nil {
		return layoutData{}, err
	}
	drawer, err := nav.RenderDrawer(g.Tree, link, g.SiteName, "/", p.Route, nav.Closed)
	if err != nil {
		return layoutData{}, err
	}

	headTitle := p.Title
	if p.Route != HomeRoute && g.SiteName != "" {
		headTitle = p.Title + " | " + g.SiteName
	}
	return layoutData{
		Page:      p,
		Meta:      g.Site.PageMetadata(g.SiteName, p.Route, p.Title, p.Description),
		HeadTitle: headTitle,
		AssetBase: g.Site.BasePath,
		Sidebar:   sidebar,
		Drawer:    drawer,
	}, nil
}

func (g *Generator) renderNotFound(tmpl *template.Template) error {
	p := Page{Route: "/404", Title: "Page not found", Body: template.HTML(notFoundBody)}
	data, err := g.layout(p)
	if err != nil {
		return err
	}
	// Served for any missing path, so it has no canonical URL.
	data.Meta.Canonical = ""
	data.Meta.NoIndex = true
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("rendering 404 page: %w", err)
	}
	return writeFile(g.OutputDir, "404.html", buf.Bytes())
}

// OutputPath is the export-relative file a route is written to.
func OutputPath(route string) string {
	return path.Join(route, "index.html")[1:]
}

func writeFile(outputDir, rel string, data []byte) error {
	outPath := filepath.Join(outputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outPath, data, 0o644)
}
