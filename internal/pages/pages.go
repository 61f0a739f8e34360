// Package pages maps sidebar page references to source files and checks that
// the sidebar of a site points at real pages.
package pages

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	dberrors "git.home.luguber.info/inful/docpress/internal/errors"
	"git.home.luguber.info/inful/docpress/internal/markdown"
)

// Page is a sidebar reference resolved against the source directory.
type Page struct {
	Ref   string
	Path  string
	Title string
}

// SourcePath maps a page reference to its Markdown file under sourceDir.
// Directory references ("/guide/") map to README.md, extensionless ones
// ("/guide/arduino") get a .md suffix.
func SourcePath(sourceDir, ref string) string {
	clean := path.Clean("/" + strings.TrimPrefix(ref, "/"))
	switch {
	case strings.HasSuffix(ref, "/"):
		clean = path.Join(clean, "README.md")
	case path.Ext(clean) == ".html":
		clean = strings.TrimSuffix(clean, ".html") + ".md"
	case path.Ext(clean) == "":
		clean += ".md"
	}
	return filepath.Join(sourceDir, filepath.FromSlash(strings.TrimPrefix(clean, "/")))
}

// Load resolves ref and reads the page title. A missing file yields a
// content error carrying ref.
func Load(sourceDir, ref string) (Page, error) {
	p := Page{Ref: ref, Path: SourcePath(sourceDir, ref)}

	data, err := os.ReadFile(p.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, dberrors.PageNotFound(ref, p.Path)
		}
		return p, dberrors.Wrap(err, dberrors.CategoryFileSystem, dberrors.SeverityError, "read page").
			WithContext("path", p.Path)
	}

	title, err := markdown.Title(data)
	if err != nil {
		return p, dberrors.Wrap(err, dberrors.CategoryContent, dberrors.SeverityError, "parse page").
			WithContext("ref", ref)
	}
	p.Title = title
	return p, nil
}
