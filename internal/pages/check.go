package pages

import (
	"errors"
	"log/slog"

	"git.home.luguber.info/inful/docpress/internal/logfields"
	"git.home.luguber.info/inful/docpress/internal/sidebar"
)

// Row is one checked sidebar link.
type Row struct {
	Prefix string
	Group  string
	Page   Page
	Err    error
}

// Report is the outcome of Check.
type Report struct {
	Rows []Row
}

// Failed returns the rows whose page could not be loaded.
func (r Report) Failed() []Row {
	var out []Row
	for _, row := range r.Rows {
		if row.Err != nil {
			out = append(out, row)
		}
	}
	return out
}

// Err joins all row errors, nil when every page loaded.
func (r Report) Err() error {
	var errs []error
	for _, row := range r.Failed() {
		errs = append(errs, row.Err)
	}
	return errors.Join(errs...)
}

// Check validates cfg and loads every page it links, in sidebar order.
// A validation failure is returned as error; missing pages are reported per row.
func Check(cfg sidebar.Config, sourceDir string, logger *slog.Logger) (Report, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	var report Report
	for _, entry := range cfg {
		for _, group := range entry.Groups {
			for _, ref := range group.Children {
				page, err := Load(sourceDir, ref)
				if err != nil {
					logger.Warn("Sidebar page unavailable",
						logfields.Prefix(entry.Prefix),
						logfields.Page(ref),
						logfields.Error(err))
				} else {
					logger.Debug("Sidebar page resolved",
						logfields.Prefix(entry.Prefix),
						logfields.Page(ref),
						logfields.Path(page.Path))
				}
				report.Rows = append(report.Rows, Row{
					Prefix: entry.Prefix,
					Group:  group.Text,
					Page:   page,
					Err:    err,
				})
			}
		}
	}
	return report, nil
}
