// Package manifest reads requirement lists from TOML or YAML files.
//
// A manifest lists requirements in registration order:
//
//	[[requirement]]
//	name = "jquery-ui.js"
//	group = "js"
//	depends_on = ["jquery.js", "jquery-ui.css"]
//
//	[[requirement]]
//	name = "sidebar"
//	group = "css"
//	inline = "#sidebar { float: left; }"
//
// The YAML form uses the same keys under a top-level "requirement" list.
// Entries with an inline body become inline requirements; all others are
// external. An external entry without a group gets one inferred from its
// name, as the require directive does.
package manifest

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/requiremedia/pkg/alias"
	"github.com/matzehuels/requiremedia/pkg/errors"
	"github.com/matzehuels/requiremedia/pkg/registry"
	"github.com/matzehuels/requiremedia/pkg/requirement"
)

// Supported formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// Entry is one requirement of a manifest.
type Entry struct {
	Name      string   `toml:"name" yaml:"name"`
	Group     string   `toml:"group" yaml:"group"`
	DependsOn []string `toml:"depends_on" yaml:"depends_on"`
	Inline    *string  `toml:"inline" yaml:"inline"`
}

// IsInline reports whether the entry carries an inline body.
func (e Entry) IsInline() bool { return e.Inline != nil }

// Manifest is a parsed manifest file.
type Manifest struct {
	Requirements []Entry `toml:"requirement" yaml:"requirement"`
}

// Load reads and validates the manifest at path. The format follows the
// file extension: .toml, .yaml or .yml.
func Load(path string) (*Manifest, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read manifest %s", path)
	}
	m, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "%s", path)
	}
	return m, nil
}

// FormatOf returns the manifest format for a file name.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.New(errors.ErrCodeUnsupported, "unsupported manifest type %q (use .toml, .yaml or .yml)", filepath.Base(path))
	}
}

// Parse decodes and validates manifest data in the given format.
func Parse(data []byte, format string) (*Manifest, error) {
	var m Manifest
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &m)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidManifest, "unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported manifest format %q", format)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks every entry's name, group and dependency names.
func (m *Manifest) Validate() error {
	for i, e := range m.Requirements {
		if err := errors.ValidateName(e.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidManifest, err, "requirement %d", i+1)
		}
		if err := errors.ValidateGroup(e.Group); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidManifest, err, "requirement %q", e.Name)
		}
		for _, d := range e.DependsOn {
			if err := errors.ValidateName(d); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidManifest, err, "dependency of %q", e.Name)
			}
		}
	}
	return nil
}

// Apply registers every entry on reg in file order. Names, groups and
// dependencies pass through aliases (nil for none); external entries
// without a group get one inferred from groups.
func (m *Manifest) Apply(reg *registry.Registry, aliases *alias.Resolver, groups []string) {
	if reg == nil {
		return
	}
	for _, e := range m.Requirements {
		name := aliases.Requirement(e.Name)
		group := aliases.Group(e.Group)
		deps := aliases.Requirements(e.DependsOn)

		if e.IsInline() {
			reg.AddInline(name, requirement.Text(*e.Inline), group, deps...)
			continue
		}
		if group == "" {
			group = alias.InferGroup(name, groups)
		}
		reg.AddExternal(name, group, deps...)
	}
}
