package sidebar

import (
	"fmt"
	"slices"
	"strings"

	dberrors "git.home.luguber.info/inful/docpress/internal/errors"
)

// Group is one titled block of links in a sidebar.
type Group struct {
	Text     string   `yaml:"text" json:"text"`
	Children []string `yaml:"children" json:"children"`
}

// Entry binds a locale path prefix to its groups.
type Entry struct {
	Prefix string
	Groups []Group
}

// Config is an ordered prefix -> groups mapping.
type Config []Entry

// Lookup returns the groups registered for prefix.
func (c Config) Lookup(prefix string) ([]Group, bool) {
	for _, e := range c {
		if e.Prefix == prefix {
			return e.Groups, true
		}
	}
	return nil, false
}

// Prefixes lists the prefixes in declaration order.
func (c Config) Prefixes() []string {
	out := make([]string, 0, len(c))
	for _, e := range c {
		out = append(out, e.Prefix)
	}
	return out
}

// Clone returns a deep copy.
func (c Config) Clone() Config {
	if c == nil {
		return nil
	}
	out := make(Config, len(c))
	for i, e := range c {
		groups := make([]Group, len(e.Groups))
		for j, g := range e.Groups {
			groups[j] = Group{Text: g.Text, Children: slices.Clone(g.Children)}
		}
		out[i] = Entry{Prefix: e.Prefix, Groups: groups}
	}
	return out
}

// Merge returns c with override applied: entries sharing a prefix are
// replaced in place, new prefixes are appended in override order.
func (c Config) Merge(override Config) Config {
	out := c.Clone()
	for _, e := range override.Clone() {
		idx := slices.IndexFunc(out, func(x Entry) bool { return x.Prefix == e.Prefix })
		if idx >= 0 {
			out[idx] = e
			continue
		}
		out = append(out, e)
	}
	return out
}

// Validate checks prefix uniqueness and the shape of every group.
func (c Config) Validate() error {
	seen := make(map[string]struct{}, len(c))
	for _, e := range c {
		if e.Prefix == "" || !strings.HasPrefix(e.Prefix, "/") || !strings.HasSuffix(e.Prefix, "/") {
			return dberrors.ValidationFailed("sidebar", fmt.Sprintf("prefix %q must start and end with '/'", e.Prefix))
		}
		if _, dup := seen[e.Prefix]; dup {
			return dberrors.ValidationFailed("sidebar", fmt.Sprintf("duplicate prefix %q", e.Prefix))
		}
		seen[e.Prefix] = struct{}{}

		for i, g := range e.Groups {
			if strings.TrimSpace(g.Text) == "" {
				return dberrors.ValidationFailed("sidebar", fmt.Sprintf("%s group %d has no text", e.Prefix, i))
			}
			for _, child := range g.Children {
				if !strings.HasPrefix(child, "/") {
					return dberrors.ValidationFailed("sidebar", fmt.Sprintf("%s child %q is not an absolute page reference", e.Prefix, child))
				}
			}
		}
	}
	return nil
}

// Pages returns every child reference in render order.
func (c Config) Pages() []string {
	var out []string
	for _, e := range c {
		for _, g := range e.Groups {
			out = append(out, g.Children...)
		}
	}
	return out
}
