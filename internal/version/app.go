package version

import (
	"os"

	"git.home.luguber.info/inful/docpress/internal/manifest"
)

// CorePackage is the package whose manifest carries the app version.
const CorePackage = "@docpress/core"

// ResolveAppVersion returns the version of the core package installed for the
// current working directory. The manifest is located and parsed on every call.
func ResolveAppVersion() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return ResolveAppVersionFrom(wd)
}

// ResolveAppVersionFrom is ResolveAppVersion with an explicit starting directory.
func ResolveAppVersionFrom(dir string) (string, error) {
	path, err := manifest.Resolve(CorePackage, dir)
	if err != nil {
		return "", err
	}
	m, err := manifest.Read(path)
	if err != nil {
		return "", err
	}
	return m.Version, nil
}
