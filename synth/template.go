package synth

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lithocycle/profile"
)

//go:embed templates
var templatesFS embed.FS

// Template is one parasequence: M layers with distinct facies, repeated by the
// generator.
type Template struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Boundaries  []float64      `yaml:"boundaries"`
	Facies      []string       `yaml:"facies"`
	Layout      profile.Layout `yaml:"layout"`
}

// Validate checks the profile shape and facies uniqueness.
func (t *Template) Validate() error {
	if _, err := profile.New(t.Boundaries, t.Facies); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidTemplate, t.Name, err)
	}
	seen := make(map[string]struct{}, len(t.Facies))
	for _, f := range t.Facies {
		if _, dup := seen[f]; dup {
			return fmt.Errorf("%w %q: facies %q repeats", ErrInvalidTemplate, t.Name, f)
		}
		seen[f] = struct{}{}
	}

	return nil
}

// rebased returns the boundaries shifted so the first one is 0.
func (t *Template) rebased() []float64 {
	out := make([]float64, len(t.Boundaries))
	for i, d := range t.Boundaries {
		out[i] = d - t.Boundaries[0]
	}

	return out
}

// Thickness returns the total template thickness.
func (t *Template) Thickness() float64 {
	return t.Boundaries[len(t.Boundaries)-1] - t.Boundaries[0]
}

// ParseTemplate decodes and validates a YAML template.
func ParseTemplate(data []byte) (*Template, error) {
	var t Template
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTemplate, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	return &t, nil
}

// LoadTemplate reads a template file.
func LoadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("synth: read %s: %w", path, err)
	}
	t, err := ParseTemplate(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if t.Name == "" {
		t.Name = filepath.Base(path)
	}

	return t, nil
}

// Templates returns the embedded templates sorted by name.
func Templates() ([]*Template, error) {
	var out []*Template
	err := fs.WalkDir(templatesFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || (filepath.Ext(path) != ".yaml" && filepath.Ext(path) != ".yml") {
			return nil
		}
		data, err := templatesFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		t, err := ParseTemplate(data)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		out = append(out, t)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("synth: load templates: %w", err)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

// LookupTemplate returns the embedded template with the given name.
func LookupTemplate(name string) (*Template, error) {
	all, err := Templates()
	if err != nil {
		return nil, err
	}
	for _, t := range all {
		if t.Name == name {
			return t, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
}
