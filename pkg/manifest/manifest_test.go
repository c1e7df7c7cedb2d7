package manifest

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/requiremedia/pkg/alias"
	"github.com/matzehuels/requiremedia/pkg/errors"
	"github.com/matzehuels/requiremedia/pkg/registry"
)

const tomlManifest = `
[[requirement]]
name = "jquery-ui.js"
group = "js"
depends_on = ["jquery.min.js", "jquery-ui.css"]

[[requirement]]
name = "jquery.min.js"

[[requirement]]
name = "jquery-ui.css"

[[requirement]]
name = "sidebar"
group = "css"
inline = "#sidebar { float: left; }"
`

const yamlManifest = `
requirement:
  - name: jquery-ui.js
    group: js
    depends_on: [jquery.min.js, jquery-ui.css]
  - name: jquery.min.js
  - name: jquery-ui.css
  - name: sidebar
    group: css
    inline: "#sidebar { float: left; }"
`

func writeManifest(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	for _, tc := range []struct{ file, content string }{
		{"requirements.toml", tomlManifest},
		{"requirements.yaml", yamlManifest},
		{"requirements.yml", yamlManifest},
	} {
		t.Run(tc.file, func(t *testing.T) {
			m, err := Load(writeManifest(t, tc.file, tc.content))
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if len(m.Requirements) != 4 {
				t.Fatalf("len(Requirements) = %d, want 4", len(m.Requirements))
			}
			first := m.Requirements[0]
			if first.Name != "jquery-ui.js" || first.Group != "js" || !slices.Equal(first.DependsOn, []string{"jquery.min.js", "jquery-ui.css"}) {
				t.Errorf("first entry = %+v", first)
			}
			if first.IsInline() {
				t.Error("external entry reported as inline")
			}
			last := m.Requirements[3]
			if !last.IsInline() || *last.Inline != "#sidebar { float: left; }" {
				t.Errorf("inline entry = %+v", last)
			}
		})
	}
}

func TestApply(t *testing.T) {
	m, err := Parse([]byte(tomlManifest), FormatTOML)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	reg := registry.New()
	m.Apply(reg, alias.New(map[string]string{"jquery.min.js": "jquery.js"}, nil), []string{"css", "js"})

	var got []string
	for _, r := range reg.Sorted() {
		got = append(got, r.Group+":"+r.Name)
	}
	want := []string{"js:jquery.js", "css:jquery-ui.css", "js:jquery-ui.js", "css:sidebar"}
	if !slices.Equal(got, want) {
		t.Errorf("Sorted() = %v, want %v", got, want)
	}

	sidebar, _ := reg.Lookup("sidebar")
	if !sidebar.IsInline() {
		t.Error("sidebar should be inline")
	}
}

func TestApply_NilRegistry(t *testing.T) {
	m := &Manifest{Requirements: []Entry{{Name: "a.js"}}}
	m.Apply(nil, nil, nil)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		code    errors.Code
	}{
		{"unsupported extension", "requirements.json", "{}", errors.ErrCodeUnsupported},
		{"malformed toml", "bad.toml", "[[requirement]\nname =", errors.ErrCodeInvalidManifest},
		{"malformed yaml", "bad.yaml", "requirement: [name: {", errors.ErrCodeInvalidManifest},
		{"unknown toml key", "extra.toml", "[[requirement]]\nname = \"a.js\"\nversion = 2\n", errors.ErrCodeInvalidManifest},
		{"unknown yaml key", "extra.yaml", "requirement:\n  - name: a.js\n    version: 2\n", errors.ErrCodeInvalidManifest},
		{"missing name", "noname.toml", "[[requirement]]\ngroup = \"js\"\n", errors.ErrCodeInvalidManifest},
		{"bad group", "badgroup.yaml", "requirement:\n  - name: a.js\n    group: \"java script\"\n", errors.ErrCodeInvalidManifest},
		{"empty dependency", "dep.toml", "[[requirement]]\nname = \"a.js\"\ndepends_on = [\"\"]\n", errors.ErrCodeInvalidManifest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeManifest(t, tt.file, tt.content))
			if !errors.Is(err, tt.code) {
				t.Errorf("Load() = %v, want %s", err, tt.code)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			t.Errorf("Load() = %v, want FILE_NOT_FOUND", err)
		}
	})
}

func TestParse_Empty(t *testing.T) {
	for _, format := range []string{FormatTOML, FormatYAML} {
		m, err := Parse(nil, format)
		if err != nil {
			t.Errorf("Parse(empty, %s) error: %v", format, err)
			continue
		}
		if len(m.Requirements) != 0 {
			t.Errorf("Parse(empty, %s) = %d entries", format, len(m.Requirements))
		}
	}
}
