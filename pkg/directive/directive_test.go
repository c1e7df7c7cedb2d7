package directive

import (
	"slices"
	"testing"

	"github.com/matzehuels/requiremedia/pkg/alias"
	"github.com/matzehuels/requiremedia/pkg/errors"
	"github.com/matzehuels/requiremedia/pkg/registry"
	"github.com/matzehuels/requiremedia/pkg/requirement"
)

func newParser() *Parser {
	return NewParser(alias.New(
		map[string]string{"jquery.min.js": "jquery.js"},
		map[string]string{"javascript": "js"},
	), []string{"css", "js"})
}

func TestParseRequire(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Require
	}{
		{
			name: "group and name",
			args: []string{"js", "jquery.js"},
			want: Require{Name: "jquery.js", Group: "js", DependsOn: []string{}},
		},
		{
			name: "group, name and dependencies",
			args: []string{"js", "jquery-ui.js", "jquery.js", "jquery-ui.css"},
			want: Require{Name: "jquery-ui.js", Group: "js", DependsOn: []string{"jquery.js", "jquery-ui.css"}},
		},
		{
			name: "inferred group",
			args: []string{"reset.css"},
			want: Require{Name: "reset.css", Group: "css", DependsOn: []string{}},
		},
		{
			name: "inferred group of a qualified URL",
			args: []string{"http://example.com/url/example.js?query=string", "jquery.js"},
			want: Require{Name: "http://example.com/url/example.js?query=string", Group: "js", DependsOn: []string{"jquery.js"}},
		},
		{
			name: "no group can be inferred",
			args: []string{"logo.png"},
			want: Require{Name: "logo.png", Group: "", DependsOn: []string{}},
		},
		{
			name: "group alias",
			args: []string{"javascript", "app.js"},
			want: Require{Name: "app.js", Group: "js", DependsOn: []string{}},
		},
		{
			name: "requirement aliases apply to name and dependencies",
			args: []string{"js", "jquery.min.js", "jquery.min.js"},
			want: Require{Name: "jquery.js", Group: "js", DependsOn: []string{"jquery.js"}},
		},
		{
			name: "first argument that is not a group is the name",
			args: []string{"images", "logo.png"},
			want: Require{Name: "images", Group: "", DependsOn: []string{"logo.png"}},
		},
	}

	p := newParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ParseRequire(tt.args)
			if err != nil {
				t.Fatalf("ParseRequire(%v) error: %v", tt.args, err)
			}
			if got.Name != tt.want.Name || got.Group != tt.want.Group || !slices.Equal(got.DependsOn, tt.want.DependsOn) {
				t.Errorf("ParseRequire(%v) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseRequire_Errors(t *testing.T) {
	p := newParser()
	for _, args := range [][]string{nil, {"js"}, {"javascript"}} {
		_, err := p.ParseRequire(args)
		if !errors.Is(err, errors.ErrCodeInvalidDirective) {
			t.Errorf("ParseRequire(%v) = %v, want INVALID_DIRECTIVE", args, err)
		}
	}
}

func TestParseRequireInline(t *testing.T) {
	p := newParser()

	got, err := p.ParseRequireInline([]string{"sidebar", "css"})
	if err != nil {
		t.Fatalf("ParseRequireInline() error: %v", err)
	}
	if got.Name != "sidebar" || got.Group != "css" || len(got.DependsOn) != 0 {
		t.Errorf("ParseRequireInline() = %+v", got)
	}

	got, err = p.ParseRequireInline([]string{"init", "javascript", "jquery.min.js"})
	if err != nil {
		t.Fatalf("ParseRequireInline() error: %v", err)
	}
	if got.Group != "js" || !slices.Equal(got.DependsOn, []string{"jquery.js"}) {
		t.Errorf("ParseRequireInline() = %+v, want aliased group and dependency", got)
	}

	// The group of an inline requirement is not checked against the
	// recognized groups.
	got, err = p.ParseRequireInline([]string{"note", "text"})
	if err != nil || got.Group != "text" {
		t.Errorf("ParseRequireInline(note text) = %+v, %v", got, err)
	}

	for _, args := range [][]string{nil, {"sidebar"}, {"sidebar", "bad group"}} {
		if _, err := p.ParseRequireInline(args); !errors.Is(err, errors.ErrCodeInvalidDirective) {
			t.Errorf("ParseRequireInline(%v) = %v, want INVALID_DIRECTIVE", args, err)
		}
	}
}

func TestParseRenderRequirements(t *testing.T) {
	p := newParser()

	if got := p.ParseRenderRequirements(nil); !slices.Equal(got.Groups, []string{"css", "js"}) {
		t.Errorf("default groups = %v", got.Groups)
	}
	if got := p.ParseRenderRequirements([]string{"js"}); !slices.Equal(got.Groups, []string{"js"}) {
		t.Errorf("explicit groups = %v", got.Groups)
	}
}

func TestParseLine(t *testing.T) {
	p := newParser()

	d, err := p.ParseLine("  require js jquery-ui.js   jquery.js ")
	if err != nil {
		t.Fatalf("ParseLine() error: %v", err)
	}
	req, ok := d.(Require)
	if !ok {
		t.Fatalf("ParseLine() = %T, want Require", d)
	}
	if req.Tag() != TagRequire || req.Name != "jquery-ui.js" || !slices.Equal(req.DependsOn, []string{"jquery.js"}) {
		t.Errorf("ParseLine() = %+v", req)
	}

	d, err = p.ParseLine("render_requirements css")
	if err != nil {
		t.Fatalf("ParseLine() error: %v", err)
	}
	if d.Tag() != TagRenderRequirements {
		t.Errorf("Tag() = %q", d.Tag())
	}

	for _, line := range []string{"", "   ", "include header.html"} {
		if _, err := p.ParseLine(line); !errors.Is(err, errors.ErrCodeInvalidDirective) {
			t.Errorf("ParseLine(%q) = %v, want INVALID_DIRECTIVE", line, err)
		}
	}
}

func TestApply(t *testing.T) {
	p := newParser()
	reg := registry.New()

	req, _ := p.ParseRequire([]string{"js", "jquery-ui.js", "jquery.js"})
	req.Apply(reg)
	base, _ := p.ParseRequire([]string{"jquery.js"})
	base.Apply(reg)
	inline, _ := p.ParseRequireInline([]string{"init", "js", "jquery-ui.js"})
	inline.Apply(reg, requirement.Text("$(init);"))

	var got []string
	for _, r := range reg.Sorted() {
		got = append(got, r.Name)
	}
	if want := []string{"jquery.js", "jquery-ui.js", "init"}; !slices.Equal(got, want) {
		t.Errorf("Sorted() = %v, want %v", got, want)
	}

	// Apply on a nil registry does nothing.
	req.Apply(nil)
	inline.Apply(nil, requirement.Text(""))
}
