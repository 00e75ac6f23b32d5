// Package manifest loads named template patterns from YAML or JSON documents
// so callers can keep naming schemes in configuration instead of code.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-keyfmt/pkg/registry"
	"github.com/goliatone/go-keyfmt/pkg/template"
)

// Set holds named template patterns parsed from one or more manifest files.
type Set struct {
	patterns map[string]string
}

type documentFile struct {
	Patterns map[string]string `json:"patterns" yaml:"patterns"`
}

// Load parses a single manifest document. YAML is assumed; use LoadFS or
// LoadFile when extension-based dispatch to JSON is needed. Unknown document
// fields are rejected.
func Load(data []byte) (*Set, error) {
	set := &Set{patterns: make(map[string]string)}
	if err := set.merge(data, "manifest", false); err != nil {
		return nil, err
	}
	return set, nil
}

// LoadFile reads and parses one manifest file, dispatching on its extension.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	set := &Set{patterns: make(map[string]string)}
	if err := set.merge(data, path, isJSONFile(path)); err != nil {
		return nil, err
	}
	return set, nil
}

// LoadFS walks the provided filesystem and parses every .yaml, .yml, and
// .json file found. Duplicate pattern names across files are an error. When
// fsys is nil or holds no manifest files, the returned set is empty.
func LoadFS(fsys fs.FS) (*Set, error) {
	set := &Set{patterns: make(map[string]string)}
	if fsys == nil {
		return set, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isManifestFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("manifest: read %s: %w", path, err)
		}
		return set.merge(data, path, isJSONFile(path))
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

func (s *Set) merge(data []byte, origin string, asJSON bool) error {
	var doc documentFile
	if asJSON {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return fmt.Errorf("manifest: parse %s: %w", origin, err)
		}
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("manifest: parse %s: %w", origin, err)
		}
	}

	for name, pattern := range doc.Patterns {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return fmt.Errorf("manifest: file %s defines an empty pattern name", origin)
		}
		if _, exists := s.patterns[trimmed]; exists {
			return fmt.Errorf("manifest: duplicate pattern %q (file %s)", trimmed, origin)
		}
		s.patterns[trimmed] = pattern
	}
	return nil
}

// Pattern returns the raw template registered under name.
func (s *Set) Pattern(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	pattern, ok := s.patterns[name]
	return pattern, ok
}

// Names returns the pattern names in sorted order.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.patterns))
	for name := range s.patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of patterns held by the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.patterns)
}

// CompileAll compiles every pattern in the set against reg, returning the
// compiled sequences keyed by pattern name. The first pattern that fails to
// compile aborts the call with its name wrapped around the compile error.
func CompileAll[T any](set *Set, reg *registry.Registry[T]) (map[string]*template.Sequence[T], error) {
	if set == nil {
		return map[string]*template.Sequence[T]{}, nil
	}
	out := make(map[string]*template.Sequence[T], len(set.patterns))
	for _, name := range set.Names() {
		seq, err := template.Compile(reg, set.patterns[name])
		if err != nil {
			return nil, fmt.Errorf("manifest: compile pattern %q: %w", name, err)
		}
		out[name] = seq
	}
	return out, nil
}

func isManifestFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

func isJSONFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
