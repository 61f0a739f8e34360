// Package config loads the docpress site configuration and resolves the path
// of the user's config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	dberrors "git.home.luguber.info/inful/docpress/internal/errors"
	"git.home.luguber.info/inful/docpress/internal/sidebar"
)

// Site represents the docpress site configuration
type Site struct {
	Title   string         `yaml:"title"`
	Source  string         `yaml:"source"`
	Locales []LocaleConfig `yaml:"locales,omitempty"`
	Sidebar sidebar.Config `yaml:"sidebar,omitempty"`
	Logging LoggingConfig  `yaml:"logging,omitempty"`

	// dir is the directory holding the config file; relative paths resolve against it.
	dir string
}

// LocaleConfig declares one locale root of the site
type LocaleConfig struct {
	Root  string `yaml:"root"`
	Lang  string `yaml:"lang"`
	Title string `yaml:"title,omitempty"`
}

// LoadSite loads the site configuration from configPath. .env files next to
// the config are loaded first and ${VAR} references are expanded.
func LoadSite(configPath string) (*Site, error) {
	dir := filepath.Dir(configPath)
	if _, err := loadEnvFiles(dir); err != nil {
		return nil, dberrors.ConfigInvalid(configPath, fmt.Errorf("load env file: %w", err))
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, dberrors.ConfigNotFound(configPath)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var site Site
	if err := yaml.Unmarshal([]byte(expanded), &site); err != nil {
		return nil, dberrors.ConfigInvalid(configPath, err)
	}
	site.dir = dir
	site.applyDefaults()

	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

// DefaultSite returns the built-in site rooted at dir, used when no config file exists.
func DefaultSite(dir string) *Site {
	s := &Site{dir: dir}
	s.applyDefaults()
	return s
}

func (s *Site) applyDefaults() {
	if s.Title == "" {
		s.Title = "Documentation Site"
	}
	if s.Source == "" {
		s.Source = "docs"
	}
}

// Validate checks locales and the effective sidebar.
func (s *Site) Validate() error {
	if _, err := s.SiteLocales(); err != nil {
		return err
	}
	return s.EffectiveSidebar().Validate()
}

// SourceDir returns the docs source directory, absolute when the site was loaded from disk.
func (s *Site) SourceDir() string {
	if filepath.IsAbs(s.Source) || s.dir == "" {
		return s.Source
	}
	return filepath.Join(s.dir, s.Source)
}

// EffectiveSidebar returns the built-in sidebars with the configured entries applied.
func (s *Site) EffectiveSidebar() sidebar.Config {
	return sidebar.Default().Merge(s.Sidebar)
}

// SiteLocales returns the configured locales, or the built-in ones when none are set.
func (s *Site) SiteLocales() ([]sidebar.Locale, error) {
	if len(s.Locales) == 0 {
		return sidebar.DefaultLocales(), nil
	}

	out := make([]sidebar.Locale, 0, len(s.Locales))
	seen := make(map[string]struct{}, len(s.Locales))
	for _, l := range s.Locales {
		if !strings.HasPrefix(l.Root, "/") || !strings.HasSuffix(l.Root, "/") {
			return nil, dberrors.ValidationFailed("locales", fmt.Sprintf("root %q must start and end with '/'", l.Root))
		}
		if _, dup := seen[l.Root]; dup {
			return nil, dberrors.ValidationFailed("locales", fmt.Sprintf("duplicate root %q", l.Root))
		}
		seen[l.Root] = struct{}{}

		tag, err := language.Parse(l.Lang)
		if err != nil {
			return nil, dberrors.ValidationFailed("locales", fmt.Sprintf("root %q: invalid lang %q", l.Root, l.Lang))
		}
		out = append(out, sidebar.Locale{Root: l.Root, Tag: tag})
	}
	return out, nil
}

// Init writes an example configuration file to configPath.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	example := Site{
		Title:  "NeuroMaster",
		Source: "docs",
		Locales: []LocaleConfig{
			{Root: "/", Lang: "zh-CN", Title: "NeuroMaster"},
			{Root: "/en/", Lang: "en-US", Title: "NeuroMaster"},
		},
		Sidebar: sidebar.Default(),
		Logging: LoggingConfig{Level: string(LogLevelInfo), Format: string(LogFormatText)},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if dir := filepath.Dir(configPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
