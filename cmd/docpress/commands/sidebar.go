package commands

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docpress/internal/config"
	dberrors "git.home.luguber.info/inful/docpress/internal/errors"
	"git.home.luguber.info/inful/docpress/internal/sidebar"
)

// SidebarCmd implements the 'sidebar' command.
type SidebarCmd struct {
	Locale string `short:"l" help:"Only print sidebars under this locale root (e.g. /en/)"`
	Format string `short:"f" help:"Output format" enum:"yaml,json" default:"yaml"`
}

func (s *SidebarCmd) Run(_ *Global, root *CLI) error {
	site, err := root.LoadSite(false)
	if err != nil {
		return err
	}

	cfg, err := s.selectLocale(site)
	if err != nil {
		return err
	}

	var data []byte
	switch s.Format {
	case "json":
		data, err = json.MarshalIndent(cfg, "", "  ")
		data = append(data, '\n')
	default:
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return dberrors.InternalError("encode sidebar", err)
	}
	_, err = root.stdout().Write(data)
	return err
}

func (s *SidebarCmd) selectLocale(site *config.Site) (sidebar.Config, error) {
	cfg := site.EffectiveSidebar()
	if s.Locale == "" {
		return cfg, nil
	}

	locales, err := site.SiteLocales()
	if err != nil {
		return nil, err
	}
	known := false
	for _, l := range locales {
		if l.Root == s.Locale {
			known = true
			break
		}
	}
	if !known {
		return nil, dberrors.ValidationFailed("locale", fmt.Sprintf("unknown locale root %q", s.Locale))
	}

	out := sidebar.Config{}
	for _, e := range cfg {
		if l, ok := sidebar.LocaleFor(locales, e.Prefix); ok && l.Root == s.Locale {
			out = append(out, e)
		}
	}
	return out, nil
}
