package metadata

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/matzehuels/guiscale/pkg/errors"
)

// Discover walks dir and returns the paths of all files a default decoder
// supports, sorted lexically. Hidden directories are skipped.
func Discover(dir string) ([]string, error) {
	if err := errors.ValidateMetadataPath(dir); err != nil {
		return nil, err
	}

	var found []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if Supported(d.Name()) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "scan %s", dir)
	}

	sort.Strings(found)
	return found, nil
}
