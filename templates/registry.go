// Package templates bundles the starter project trees shipped with the
// sprout binary and exposes them through a small registry.
//
// Each top-level directory is one template. The trees are embedded at
// build time with go:embed, so the distribution owns them and they are
// read-only by construction — materialization only ever reads from the
// registry, never writes into it. An external template root can be
// substituted via LoadDir (the --template-dir flag), which serves the
// same trees through os.DirFS.
//
// A template may carry a template.yml at its root with display metadata
// for the selection prompt. The metadata file is registry-only: the
// materializer never copies it into a generated project.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed all:vanilla all:vanilla-ts
var embedded embed.FS

// MetadataFile is the per-template metadata file name.
const MetadataFile = "template.yml"

// descriptorFile is the package descriptor every template must ship at
// its root, since materialization rewrites its name field.
const descriptorFile = "package.json"

// Metadata describes a template to the selection prompt.
type Metadata struct {
	// Display is the human-readable name shown in the template picker.
	Display string `yaml:"display"`

	// Description is an optional one-line summary.
	Description string `yaml:"description"`
}

// Template is one bundled (or external) starter tree.
type Template struct {
	// Name is the template's directory name and the value accepted by
	// the --template flag.
	Name string

	// Metadata holds the optional display information from template.yml.
	Metadata Metadata

	tree fs.FS
}

// Tree returns the read-only filesystem rooted at the template.
func (t Template) Tree() fs.FS {
	return t.tree
}

// Label returns the display name for prompts, falling back to the
// template's directory name when no metadata was provided.
func (t Template) Label() string {
	if t.Metadata.Display != "" {
		return t.Metadata.Display
	}
	return t.Name
}

// Registry holds the loaded templates in listing order.
type Registry struct {
	templates []Template
}

// Load builds the registry from the embedded template trees.
func Load() (*Registry, error) {
	return loadFrom(embedded)
}

// LoadDir builds the registry from an external template root instead of
// the embedded trees. The directory must exist and contain at least one
// template directory.
func LoadDir(root string) (*Registry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open template directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template directory %s is not a directory", root)
	}
	return loadFrom(os.DirFS(root))
}

// loadFrom scans the immediate entries of root: every directory holding
// a package descriptor becomes a template. fs.ReadDir returns entries
// sorted by name, which fixes the listing (and default) order.
func loadFrom(root fs.FS) (*Registry, error) {
	entries, err := fs.ReadDir(root, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	registry := &Registry{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		tree, err := fs.Sub(root, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to open template %s: %w", entry.Name(), err)
		}

		// Without a root descriptor there is nothing to rewrite the
		// package name into, so the directory is not a usable template.
		if _, err := fs.Stat(tree, descriptorFile); err != nil {
			return nil, fmt.Errorf("template %s has no %s: %w", entry.Name(), descriptorFile, err)
		}

		meta, err := loadMetadata(tree)
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", entry.Name(), err)
		}

		registry.templates = append(registry.templates, Template{
			Name:     entry.Name(),
			Metadata: meta,
			tree:     tree,
		})
	}

	if len(registry.templates) == 0 {
		return nil, fmt.Errorf("no templates found")
	}
	return registry, nil
}

// loadMetadata parses the optional template.yml at the template root.
// A missing file yields zero-value metadata, not an error.
func loadMetadata(tree fs.FS) (Metadata, error) {
	data, err := fs.ReadFile(tree, MetadataFile)
	if err != nil {
		if os.IsNotExist(err) {
			return Metadata{}, nil
		}
		return Metadata{}, fmt.Errorf("failed to read %s: %w", MetadataFile, err)
	}

	var meta Metadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return Metadata{}, fmt.Errorf("failed to parse %s: %w", MetadataFile, err)
	}
	return meta, nil
}

// All returns the templates in listing order.
func (r *Registry) All() []Template {
	return r.templates
}

// Names returns the template names in listing order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.templates))
	for _, t := range r.templates {
		names = append(names, t.Name)
	}
	return names
}

// Get returns the template with the given name.
func (r *Registry) Get(name string) (Template, bool) {
	for _, t := range r.templates {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}

// Default returns the first template in listing order. It is used when
// no template was named and no prompt can be shown.
func (r *Registry) Default() Template {
	return r.templates[0]
}
