package handlers

import (
	"bytes"
	"html/template"
	"io/fs"
	"log/slog"
	"path"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
)

// TemplateCache holds parsed templates
type TemplateCache struct {
	cache map[string]*template.Template
	mu    sync.RWMutex
	funcs template.FuncMap
}

func NewTemplateCache() *TemplateCache {
	return &TemplateCache{
		cache: make(map[string]*template.Template),
		funcs: make(template.FuncMap),
	}
}

func (tc *TemplateCache) AddFunc(name string, fn interface{}) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.funcs[name] = fn
}

// Load parses every pages/*.html in fsys together with partials/*.html.
// Each page is cached under its base name.
func (tc *TemplateCache) Load(fsys fs.FS) error {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	// Add global template functions
	tc.funcs["prevPage"] = func(currentPage int) int {
		return currentPage - 1
	}
	tc.funcs["nextPage"] = func(currentPage int) int {
		return currentPage + 1
	}
	tc.funcs["money"] = formatMoney
	tc.funcs["date"] = formatDate
	tc.funcs["markdown"] = renderMarkdown

	pages, err := fs.Glob(fsys, "pages/*.html")
	if err != nil {
		return err
	}
	for _, file := range pages {
		name := path.Base(file)
		tmpl, err := template.New(name).Funcs(tc.funcs).ParseFS(fsys, "partials/*.html", file)
		if err != nil {
			slog.Error("Failed to parse template", "file", file, "error", err)
			return err
		}
		tc.cache[name] = tmpl
		slog.Debug("Cached template", "name", name)
	}
	return nil
}

func (tc *TemplateCache) Get(name string) *template.Template {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return tc.cache[name]
}

// formatMoney renders rupee amounts with two decimals. A nil pointer is ₹0.00.
func formatMoney(v any) string {
	var d decimal.Decimal
	switch x := v.(type) {
	case decimal.Decimal:
		d = x
	case *decimal.Decimal:
		if x != nil {
			d = *x
		}
	}
	return "₹" + d.StringFixed(2)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Local().Format("02 Jan 2006, 15:04")
}

// Raw HTML in descriptions is dropped; goldmark only renders it when
// built with html.WithUnsafe.
var markdown = goldmark.New()

func renderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		slog.Warn("Failed to render markdown", "error", err)
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}
