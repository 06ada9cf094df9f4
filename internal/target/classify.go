package target

import (
	"fmt"
	"os"

	"github.com/mmr-tortoise/sprout/internal/model"
)

// vcsMetadataDir is the version-control metadata entry that never counts
// as a conflict: a directory holding only ".git" is treated the same as
// an empty one, so re-scaffolding a freshly cloned repository works.
const vcsMetadataDir = ".git"

// Classify inspects path and classifies its on-disk state.
//
// Algorithm: a missing path reports StateAbsent. Otherwise the immediate
// entries are listed — zero entries report StateEmpty, exactly one entry
// named ".git" reports StateIgnorable, and anything else reports
// StateConflicting. There is no recursion into subdirectories and no
// caching: the classification reflects the directory at this instant.
//
// Classify is a read-only probe; it never mutates the filesystem.
func Classify(path string) (model.DirectoryState, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.StateAbsent, nil
		}
		// Permission errors, a file where a directory was expected, and
		// similar filesystem failures surface to the top level untouched.
		return "", fmt.Errorf("failed to inspect target directory %s: %w", path, err)
	}

	switch {
	case len(entries) == 0:
		return model.StateEmpty, nil
	case len(entries) == 1 && entries[0].Name() == vcsMetadataDir:
		return model.StateIgnorable, nil
	default:
		return model.StateConflicting, nil
	}
}
