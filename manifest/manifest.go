// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package manifest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jongio/outputfile"
)

// Entry describes one target file in a manifest.
type Entry struct {
	// Path is the target file path, relative to the manifest root.
	Path string `yaml:"path"`
	// Content is the literal file content. Exactly one of Content and
	// Source must be set; an empty string is valid content.
	Content *string `yaml:"content"`
	// Source names a file whose content is staged to Path.
	Source string `yaml:"source"`
	// Existing overrides the manifest-level policy for this entry.
	Existing string `yaml:"existing"`
	// Mkdir overrides the manifest-level mkdir setting for this entry.
	Mkdir *bool `yaml:"mkdir"`
}

// Manifest is a batch of staged file writes, typically one generator run.
type Manifest struct {
	// Root is the base directory for relative entry paths. Defaults to the
	// manifest file's directory for LoadFile, the working directory for Load.
	Root string `yaml:"root"`
	// Existing is the default existing-file policy for all entries.
	Existing string `yaml:"existing"`
	// Mkdir is the default for creating missing parent directories.
	Mkdir bool `yaml:"mkdir"`
	// Files lists the target files.
	Files []Entry `yaml:"files"`
}

// Result records the outcome for a single entry.
type Result struct {
	Path  string
	State outputfile.State
	Err   error
}

// Load parses a manifest from r and validates it.
func Load(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadFile parses the manifest at path. Relative entry paths resolve against
// the manifest's directory unless the manifest sets an explicit root.
func LoadFile(path string) (*Manifest, error) {
	// #nosec G304 -- caller controls the path
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer func() { _ = f.Close() }()

	m, err := Load(f)
	if err != nil {
		return nil, err
	}
	if m.Root == "" {
		m.Root = filepath.Dir(path)
	}
	return m, nil
}

// validate checks manifest-level and per-entry constraints.
func (m *Manifest) validate() error {
	if m.Existing != "" {
		if _, err := outputfile.ParseExisting(m.Existing); err != nil {
			return err
		}
	}
	if len(m.Files) == 0 {
		return fmt.Errorf("manifest lists no files")
	}
	for i, e := range m.Files {
		if e.Path == "" {
			return fmt.Errorf("file %d: path is required", i)
		}
		if (e.Content == nil) == (e.Source == "") {
			return fmt.Errorf("file %q: exactly one of content and source is required", e.Path)
		}
		if e.Existing != "" {
			if _, err := outputfile.ParseExisting(e.Existing); err != nil {
				return fmt.Errorf("file %q: %w", e.Path, err)
			}
		}
	}
	return nil
}

// Apply stages every entry and returns one Result per entry, in manifest
// order. A failing entry does not stop the run; its error is recorded and
// the remaining entries are still applied. diffout may be nil.
func (m *Manifest) Apply(diffout outputfile.Diffout) []Result {
	results := make([]Result, 0, len(m.Files))
	for _, e := range m.Files {
		path := e.Path
		if !filepath.IsAbs(path) && m.Root != "" {
			path = filepath.Join(m.Root, path)
		}
		state, err := m.applyEntry(path, e, diffout)
		results = append(results, Result{Path: path, State: state, Err: err})
	}
	return results
}

func (m *Manifest) applyEntry(path string, e Entry, diffout outputfile.Diffout) (outputfile.State, error) {
	var data []byte
	if e.Content != nil {
		data = []byte(*e.Content)
	} else {
		src := e.Source
		if !filepath.IsAbs(src) && m.Root != "" {
			src = filepath.Join(m.Root, src)
		}
		// #nosec G304 -- manifest author controls the path
		read, err := os.ReadFile(src)
		if err != nil {
			return outputfile.StateFailed, fmt.Errorf("failed to read source: %w", err)
		}
		data = read
	}

	var opts []outputfile.Option
	if existing := firstNonEmpty(e.Existing, m.Existing); existing != "" {
		opts = append(opts, outputfile.WithExistingName(existing))
	}
	mkdir := m.Mkdir
	if e.Mkdir != nil {
		mkdir = *e.Mkdir
	}
	if mkdir {
		opts = append(opts, outputfile.WithMkdir())
	}
	if diffout != nil {
		opts = append(opts, outputfile.WithDiffout(diffout))
	}

	return outputfile.WriteFile(path, data, opts...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
