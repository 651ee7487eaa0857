// Package nav holds the sidebar link tree.
//
// The tree is grouped: each group has a title and a list of links. Above
// MobileBreakpoint the layout renders it as a fixed panel; below it, as an
// overlay that is dismissed by the page load that follows a selection.
package nav

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// MobileBreakpoint is the viewport width (px) at and below which the
// sidebar becomes an overlay.
const MobileBreakpoint = 768

type Link struct {
	Name  string `yaml:"name"`
	Title string `yaml:"title,omitempty"`
	Path  string `yaml:"path,omitempty"`
	Icon  string `yaml:"icon,omitempty"`
}

type Group struct {
	Title string `yaml:"title"`
	Links []Link `yaml:"links"`
}

type Tree struct {
	Brand  string  `yaml:"brand"`
	Groups []Group `yaml:"groups"`
}

// Default is the built-in tree used when no NAV_CONFIG file is given.
func Default() *Tree {
	t := &Tree{
		Brand: "Spices Website",
		Groups: []Group{
			{Title: "Dashboard", Links: []Link{{Name: "dashboard", Path: "/admin", Icon: "home"}}},
			{Title: "Pages", Links: []Link{
				{Name: "products", Icon: "box"},
				{Name: "orders", Icon: "cart"},
				{Name: "social", Title: "Social Links", Icon: "share"},
			}},
		},
	}
	t.normalize()
	return t
}

// Load reads a YAML link tree from path.
func Load(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading nav config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Tree, error) {
	var t Tree
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing nav config: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	t.normalize()
	return &t, nil
}

func (t *Tree) validate() error {
	if len(t.Groups) == 0 {
		return errors.New("nav config: no groups")
	}
	for i, g := range t.Groups {
		if g.Title == "" {
			return fmt.Errorf("nav config: group %d has no title", i)
		}
		for j, l := range g.Links {
			if l.Name == "" {
				return fmt.Errorf("nav config: group %q link %d has no name", g.Title, j)
			}
		}
	}
	return nil
}

// normalize fills the defaults: /admin/<name> paths and capitalized titles.
func (t *Tree) normalize() {
	if t.Brand == "" {
		t.Brand = "Admin"
	}
	for gi := range t.Groups {
		links := t.Groups[gi].Links
		for li := range links {
			if links[li].Path == "" {
				links[li].Path = "/admin/" + links[li].Name
			}
			if links[li].Title == "" {
				links[li].Title = capitalize(links[li].Name)
			}
		}
	}
}

// ActiveLink is a Link annotated for rendering.
type ActiveLink struct {
	Link
	Active bool
}

type ActiveGroup struct {
	Title string
	Links []ActiveLink
}

// Active returns the tree with the link matching requestPath marked. The
// longest matching path wins, so /admin does not shadow /admin/orders.
func (t *Tree) Active(requestPath string) []ActiveGroup {
	best := ""
	for _, g := range t.Groups {
		for _, l := range g.Links {
			if matches(l.Path, requestPath) && len(l.Path) > len(best) {
				best = l.Path
			}
		}
	}
	out := make([]ActiveGroup, 0, len(t.Groups))
	for _, g := range t.Groups {
		ag := ActiveGroup{Title: g.Title, Links: make([]ActiveLink, 0, len(g.Links))}
		for _, l := range g.Links {
			ag.Links = append(ag.Links, ActiveLink{Link: l, Active: best != "" && l.Path == best})
		}
		out = append(out, ag)
	}
	return out
}

func matches(linkPath, requestPath string) bool {
	if requestPath == linkPath {
		return true
	}
	return strings.HasPrefix(requestPath, strings.TrimRight(linkPath, "/")+"/")
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
