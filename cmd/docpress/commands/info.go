package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docpress/internal/config"
	dberrors "git.home.luguber.info/inful/docpress/internal/errors"
	"git.home.luguber.info/inful/docpress/internal/logfields"
	"git.home.luguber.info/inful/docpress/internal/version"
)

// InfoCmd implements the 'info' command.
type InfoCmd struct{}

func (i *InfoCmd) Run(g *Global, root *CLI) error {
	wd, err := root.workDir()
	if err != nil {
		return err
	}

	appVersion, err := version.ResolveAppVersionFrom(wd)
	if err != nil {
		return err
	}
	g.Logger.Debug("Resolved core version", logfields.Version(appVersion))

	out := root.stdout()
	fmt.Fprintf(out, "core:    %s %s\n", version.CorePackage, appVersion)
	fmt.Fprintf(out, "build:   %s (commit %s, built %s)\n", version.Version, version.GitCommit, version.BuildTime)

	path, err := config.ResolveUserConfigPath(root.Config, wd)
	switch {
	case err == nil:
		fmt.Fprintf(out, "config:  %s\n", path)
	case dberrors.IsCategory(err, dberrors.CategoryConfig):
		fmt.Fprintf(out, "config:  %s (not found)\n", root.Config)
	default:
		return err
	}
	return nil
}

// PathCmd implements the 'config' command.
type PathCmd struct{}

func (p *PathCmd) Run(_ *Global, root *CLI) error {
	wd, err := root.workDir()
	if err != nil {
		return err
	}
	path, err := config.ResolveUserConfigPath(root.Config, wd)
	if err != nil {
		return err
	}
	fmt.Fprintln(root.stdout(), path)
	return nil
}
