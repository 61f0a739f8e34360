package commands

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/docpress/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	path := root.Config
	if !filepath.IsAbs(path) {
		wd, err := root.workDir()
		if err != nil {
			return err
		}
		path = filepath.Join(wd, path)
	}

	out := root.stdout()
	fmt.Fprintf(out, "Writing configuration to %s\n", path)
	if err := config.Init(path, i.Force); err != nil {
		fmt.Fprintln(out, "Initialization failed")
		return err
	}
	fmt.Fprintln(out, "initialized successfully")
	return nil
}
