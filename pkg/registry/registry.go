package registry

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/requiremedia/pkg/dag"
	"github.com/matzehuels/requiremedia/pkg/dag/transform"
	"github.com/matzehuels/requiremedia/pkg/observability"
	"github.com/matzehuels/requiremedia/pkg/requirement"
)

// Registry is the per-request collection of requirements.
type Registry struct {
	requirements []*requirement.Requirement
	lookup       map[string]*requirement.Requirement
	graph        *dag.Graph

	// sorted caches the last successful topological order. nil means stale.
	sorted []*requirement.Requirement

	logger *log.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for cycle warnings.
func WithLogger(l *log.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		lookup: make(map[string]*requirement.Requirement),
		graph:  dag.New(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddExternal registers a reference to an out-of-band resource.
func (r *Registry) AddExternal(name, group string, dependsOn ...string) {
	r.Add(requirement.NewExternal(name, group, dependsOn...))
}

// AddInline registers a block of content embedded in the document.
func (r *Registry) AddInline(name string, content requirement.Content, group string, dependsOn ...string) {
	r.Add(requirement.NewInline(name, content, group, dependsOn...))
}

// Add registers req. Registering a name again replaces the lookup entry and
// accumulates the new dependency edges; the earlier record stays in the
// registration list. A nil req is ignored.
func (r *Registry) Add(req *requirement.Requirement) {
	if req == nil {
		return
	}
	r.requirements = append(r.requirements, req)
	r.lookup[req.Name] = req
	r.graph.RecordEdges(req.Name, req.DependsOn)
	r.sorted = nil

	observability.Registry().OnRegister(req.Kind().String(), req.Name, req.Group)
}

// Requirements returns every registration in order, re-registrations
// included.
func (r *Registry) Requirements() []*requirement.Requirement {
	return slices.Clone(r.requirements)
}

// Lookup returns the latest requirement registered under name.
func (r *Registry) Lookup(name string) (*requirement.Requirement, bool) {
	req, ok := r.lookup[name]
	return req, ok
}

// Len returns the number of distinct registered names.
func (r *Registry) Len() int { return len(r.lookup) }

// Graph returns the dependency graph. Callers must not modify it.
func (r *Registry) Graph() *dag.Graph { return r.graph }

// Sorted returns every registered requirement with dependencies before
// dependants, each name exactly once.
//
// The order is computed on first use and cached until the next registration.
// On a dependency cycle the registration list is returned instead, and
// nothing is cached.
func (r *Registry) Sorted() []*requirement.Requirement {
	if r.sorted != nil {
		return slices.Clone(r.sorted)
	}

	start := time.Now()
	order, err := r.graph.TopologicalSort()
	if err != nil {
		observability.Registry().OnSort(r.graph.Len(), true, time.Since(start))
		r.logger.Warn("dependency cycle, using registration order",
			"requirements", len(r.requirements),
			"cycle_edges", formatEdges(transform.CycleEdges(r.graph)))
		return slices.Clone(r.requirements)
	}

	sorted := make([]*requirement.Requirement, 0, len(order))
	for _, name := range order {
		if req, ok := r.lookup[name]; ok {
			sorted = append(sorted, req)
		}
	}
	r.sorted = sorted
	observability.Registry().OnSort(r.graph.Len(), false, time.Since(start))
	return slices.Clone(sorted)
}

// SortedForGroups returns the requirements of [Registry.Sorted] whose group
// is one of groups, keeping their relative order. Untagged requirements
// never match, and no groups means no requirements.
func (r *Registry) SortedForGroups(groups ...string) []*requirement.Requirement {
	if len(groups) == 0 {
		return []*requirement.Requirement{}
	}
	out := make([]*requirement.Requirement, 0, len(r.lookup))
	for _, req := range r.Sorted() {
		if req.HasGroup() && slices.Contains(groups, req.Group) {
			out = append(out, req)
		}
	}
	return out
}

func formatEdges(edges []dag.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.From + " -> " + e.To
	}
	return out
}
