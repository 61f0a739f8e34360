package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/docpress/internal/pages"
	"git.home.luguber.info/inful/docpress/internal/sidebar"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Source string `short:"s" help:"Docs source directory (overrides the configured source)" type:"path"`
}

func (c *CheckCmd) Run(_ *Global, root *CLI) error {
	site, err := root.LoadSite(false)
	if err != nil {
		return err
	}
	sourceDir := site.SourceDir()
	if c.Source != "" {
		sourceDir = c.Source
	}

	locales, err := site.SiteLocales()
	if err != nil {
		return err
	}

	report, err := pages.Check(site.EffectiveSidebar(), sourceDir, slog.Default())
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(report.Rows))
	for _, row := range report.Rows {
		lang := ""
		if l, ok := sidebar.LocaleFor(locales, row.Prefix); ok {
			lang = l.Name()
		}
		status := row.Page.Title
		if row.Err != nil {
			status = "MISSING"
		}
		rows = append(rows, []string{row.Prefix, lang, row.Group, row.Page.Ref, status})
	}

	out := root.stdout()
	fmt.Fprintln(out, renderTable([]string{"Prefix", "Language", "Group", "Page", "Title"}, rows))
	fmt.Fprintf(out, "%d pages, %d missing\n", len(report.Rows), len(report.Failed()))
	return report.Err()
}
