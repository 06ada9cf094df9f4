package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// metadataName is the registry metadata file at the template root. It
// describes the template to the selection prompt and is never copied
// into a generated project.
const metadataName = "template.yml"

// renameOnCopy maps placeholder file names in the template tree to the
// names they receive in the generated project. npm strips ".gitignore"
// from published packages, so templates ship it as "_gitignore".
var renameOnCopy = map[string]string{
	"_gitignore": ".gitignore",
}

// Options configures a materialization run.
type Options struct {
	// TargetDir is the directory the template is mirrored into. It is
	// created (with missing ancestors) if it does not exist.
	TargetDir string

	// PackageName is written into the name field of the package
	// descriptor at the template root. Must already satisfy the package
	// identifier grammar; Materialize does not re-validate it.
	PackageName string
}

// Materialize mirrors every entry of the template tree into the target
// directory. Directories are created and recursed into; ordinary files
// are copied byte-for-byte — except the package descriptor at the
// template root, which is rewritten with the resolved package name.
//
// Pre-existing same-named files in the target are overwritten in place
// (the IgnoreAndProceed reconciliation path relies on this). A failure
// partway through leaves the target in whatever partial state existed
// at that point; there is no cleanup pass.
func Materialize(tree fs.FS, opts Options) error {
	if err := os.MkdirAll(opts.TargetDir, 0o755); err != nil {
		return fmt.Errorf("failed to create target directory %s: %w", opts.TargetDir, err)
	}

	// fs.WalkDir visits a directory before its contents, so destination
	// directories always exist by the time files are written into them.
	return fs.WalkDir(tree, ".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("error walking template tree at %s: %w", path, walkErr)
		}

		// The tree root maps onto the already-created target directory.
		if path == "." {
			return nil
		}

		dstPath := filepath.Join(opts.TargetDir, destinationRelPath(path, d.Name()))

		if d.IsDir() {
			if err := os.MkdirAll(dstPath, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dstPath, err)
			}
			return nil
		}

		atRoot := filepath.Dir(path) == "."

		// The registry metadata file describes the template itself and
		// never becomes part of a generated project.
		if atRoot && d.Name() == metadataName {
			return nil
		}

		data, err := fs.ReadFile(tree, path)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", path, err)
		}

		// The root descriptor is the one transformed file of the copy.
		if atRoot && d.Name() == DescriptorName {
			data, err = RewriteDescriptor(data, opts.PackageName)
			if err != nil {
				return err
			}
		}

		if err := os.WriteFile(dstPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", dstPath, err)
		}

		return nil
	})
}

// destinationRelPath returns the path an entry takes inside the target,
// applying the placeholder renames to the final path element.
func destinationRelPath(path, name string) string {
	renamed, ok := renameOnCopy[name]
	if !ok {
		return filepath.FromSlash(path)
	}
	dir := filepath.Dir(filepath.FromSlash(path))
	if dir == "." {
		return renamed
	}
	return filepath.Join(dir, renamed)
}
