package handlers

import (
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	d := decimal.RequireFromString("1234.5")
	tests := []struct {
		in   any
		want string
	}{
		{d, "₹1234.50"},
		{&d, "₹1234.50"},
		{(*decimal.Decimal)(nil), "₹0.00"},
		{decimal.Zero, "₹0.00"},
		{"garbage", "₹0.00"},
	}
	for _, tt := range tests {
		if got := formatMoney(tt.in); got != tt.want {
			t.Errorf("formatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := formatDate(time.Time{}); got != "N/A" {
		t.Errorf("zero time = %q", got)
	}
	ts := time.Date(2024, 5, 1, 10, 30, 0, 0, time.Local)
	if got := formatDate(ts); got != "01 May 2024, 10:30" {
		t.Errorf("formatDate = %q", got)
	}
}

func TestRenderMarkdownDropsRawHTML(t *testing.T) {
	got := string(renderMarkdown("Hot *chili*\n\n<img src=x onerror=alert(1)>"))
	if !strings.Contains(got, "<em>chili</em>") {
		t.Errorf("markdown not rendered: %s", got)
	}
	if strings.Contains(got, "onerror") {
		t.Errorf("raw HTML passed through: %s", got)
	}
}

func TestTemplateCacheLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"partials/layout.html": {Data: []byte(`{{define "layout"}}<main>{{template "content" .}}</main>{{end}}`)},
		"pages/a.html":         {Data: []byte(`{{template "layout" .}}{{define "content"}}A {{money .}}{{end}}`)},
		"pages/b.html":         {Data: []byte(`{{template "layout" .}}{{define "content"}}B page {{nextPage 1}}{{end}}`)},
	}
	tc := NewTemplateCache()
	if err := tc.Load(fsys); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tc.Get("missing.html") != nil {
		t.Error("unknown template found")
	}

	var sb strings.Builder
	if err := tc.Get("a.html").Execute(&sb, decimal.NewFromInt(5)); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "<main>A ₹5.00</main>" {
		t.Errorf("a.html = %q", sb.String())
	}
	sb.Reset()
	if err := tc.Get("b.html").Execute(&sb, nil); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "<main>B page 2</main>" {
		t.Errorf("b.html = %q", sb.String())
	}
}
