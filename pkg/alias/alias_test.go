package alias

import (
	"slices"
	"testing"

	"github.com/matzehuels/requiremedia/pkg/config"
)

func TestInferGroup(t *testing.T) {
	groups := []string{"css", "js"}
	tests := []struct {
		name string
		want string
	}{
		{"jquery.js", "js"},
		{"http://example.com/url/example.js", "js"},
		{"http://example.com/url/example.js?query=string&example", "js"},
		{"var a = null;", ""},
		{"reset.css", "css"},
		{"http://example.com/css/reset.css", "css"},
		{"http://example.com/css/reset.css?query=string&example", "css"},
		{"h1 { background: #fff; }", ""},
		{"logo.png", ""},
		{"js", ""},
		{"archive.tar.js", "js"},
		{"/static/app.js#main", "js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferGroup(tt.name, groups); got != tt.want {
				t.Errorf("InferGroup(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestResolver(t *testing.T) {
	r := New(
		map[string]string{"jquery.min.js": "jquery.js", "empty": ""},
		map[string]string{"javascript": "js"},
	)

	if got := r.Requirement("jquery.min.js"); got != "jquery.js" {
		t.Errorf("Requirement(jquery.min.js) = %q", got)
	}
	if got := r.Requirement("app.js"); got != "app.js" {
		t.Errorf("Requirement(app.js) = %q, want passthrough", got)
	}
	if got := r.Requirement("empty"); got != "empty" {
		t.Errorf("Requirement(empty) = %q, empty targets are ignored", got)
	}
	if got := r.Group("javascript"); got != "js" {
		t.Errorf("Group(javascript) = %q", got)
	}
	if got := r.Group("css"); got != "css" {
		t.Errorf("Group(css) = %q", got)
	}
	if got := r.Requirements([]string{"jquery.min.js", "x.js"}); !slices.Equal(got, []string{"jquery.js", "x.js"}) {
		t.Errorf("Requirements() = %v", got)
	}
}

func TestResolver_NoChaining(t *testing.T) {
	r := New(map[string]string{"a": "b", "b": "c"}, nil)
	if got := r.Requirement("a"); got != "b" {
		t.Errorf("Requirement(a) = %q, want b", got)
	}
}

func TestResolver_Nil(t *testing.T) {
	var r *Resolver
	if r.Requirement("x") != "x" || r.Group("js") != "js" {
		t.Error("nil resolver should pass names through")
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.RequirementAliases = []config.Alias{{From: "jquery.min.js", To: "jquery.js"}}
	cfg.GroupAliases = []config.Alias{{From: "stylesheet", To: "css"}}

	r := FromConfig(cfg)
	if got := r.Requirement("jquery.min.js"); got != "jquery.js" {
		t.Errorf("Requirement() = %q", got)
	}
	if got := r.Group("stylesheet"); got != "css" {
		t.Errorf("Group() = %q", got)
	}
}
