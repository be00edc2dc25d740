package dataset

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
)

// Scan checks that dir exists and holds exactly FileCount files with the Ext
// extension. It returns their names, sorted.
//
// Nothing inside dir is opened when dir itself is missing.
func Scan(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		return nil, errors.Wrap(ErrNoDirectory, dir)
	case err != nil:
		return nil, errors.Wrapf(err, "failed to stat %s", dir)
	case !info.IsDir():
		return nil, errors.Wrapf(ErrNoDirectory, "%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", dir)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if filepath.Ext(entry.Name()) == Ext {
			names = append(names, entry.Name())
		}
	}

	sort.Strings(names)

	if len(names) != FileCount {
		return names, errors.Wrapf(ErrFileCount, "expecting %d files, found %d",
			FileCount, len(names))
	}

	return names, nil
}
