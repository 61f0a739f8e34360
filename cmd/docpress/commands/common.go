package commands

import (
	"io"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/docpress/internal/config"
	dberrors "git.home.luguber.info/inful/docpress/internal/errors"
	"git.home.luguber.info/inful/docpress/internal/logfields"
	"github.com/alecthomas/kong"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docpress.yaml"`
	Cwd     string           `help:"Directory the configuration path is resolved against (default: working directory)" type:"existingdir"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Info    InfoCmd    `cmd:"" help:"Show app version and resolved configuration"`
	Path    PathCmd    `cmd:"" name:"config" help:"Print the resolved configuration file path"`
	Sidebar SidebarCmd `cmd:"" help:"Print the effective sidebar"`
	Check   CheckCmd   `cmd:"" help:"Check that every sidebar link points at an existing page"`
	Init    InitCmd    `cmd:"" help:"Initialize a new configuration file"`

	Out    io.Writer `kong:"-"`
	ErrOut io.Writer `kong:"-"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	slog.SetDefault(config.LoggingConfig{}.NewLogger(c.stderr(), c.Verbose))
	return nil
}

func (c *CLI) stdout() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

func (c *CLI) stderr() io.Writer {
	if c.ErrOut != nil {
		return c.ErrOut
	}
	return os.Stderr
}

func (c *CLI) workDir() (string, error) {
	if c.Cwd != "" {
		return c.Cwd, nil
	}
	return os.Getwd()
}

// LoadSite resolves and loads the site config. When the default config file
// is absent and required is false, the built-in site rooted at the working
// directory is returned instead.
func (c *CLI) LoadSite(required bool) (*config.Site, error) {
	wd, err := c.workDir()
	if err != nil {
		return nil, err
	}

	path, err := config.ResolveUserConfigPath(c.Config, wd)
	if err != nil {
		if !required && c.Config == config.DefaultConfigFile && dberrors.IsCategory(err, dberrors.CategoryConfig) {
			slog.Debug("No configuration file, using built-in site", logfields.Path(wd))
			return config.DefaultSite(wd), nil
		}
		return nil, err
	}

	site, err := config.LoadSite(path)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(site.Logging.NewLogger(c.stderr(), c.Verbose))
	slog.Debug("Loaded configuration", logfields.Config(path))
	return site, nil
}
