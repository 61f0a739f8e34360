// Package manifest reads package.json manifests and locates them with Node's
// module resolution rules.
package manifest

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileName is the manifest file name inside a package directory.
const FileName = "package.json"

// PackageManifest is the subset of package.json docpress reads.
type PackageManifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// FromJSON deserializes a manifest from JSON.
func FromJSON(data []byte) (*PackageManifest, error) {
	var m PackageManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Read reads and decodes the manifest at path. Errors from the read and the
// decode are returned as is.
func Read(path string) (*PackageManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromJSON(data)
}

// Resolve finds <pkg>/package.json the way Node resolves modules:
// node_modules/<pkg> in dir, then in each parent up to the root.
func Resolve(pkg, dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		if filepath.Base(dir) != "node_modules" {
			candidate := filepath.Join(dir, "node_modules", filepath.FromSlash(pkg), FileName)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("cannot find module '%s/%s': %w", pkg, FileName, fs.ErrNotExist)
		}
		dir = parent
	}
}
