package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/requiremedia/pkg/errors"
	"github.com/matzehuels/requiremedia/pkg/registry"
	"github.com/matzehuels/requiremedia/pkg/requirement"
)

// ReadJSON decodes a JSON graph from r and registers it on a new registry
// built with opts.
//
// ReadJSON returns an INVALID_MANIFEST error if:
//   - The JSON is malformed
//   - A node has an empty or duplicate ID
//   - A node has an unknown kind
//   - An edge references an unknown node ID
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader, opts ...registry.Option) (*registry.Registry, error) {
	var data graph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode graph")
	}

	known := make(map[string]bool, len(data.Nodes))
	for _, n := range data.Nodes {
		if n.ID == "" {
			return nil, errors.New(errors.ErrCodeInvalidManifest, "node without id")
		}
		if known[n.ID] {
			return nil, errors.New(errors.ErrCodeInvalidManifest, "duplicate node %q", n.ID)
		}
		known[n.ID] = true
	}

	deps := make(map[string][]string, len(data.Nodes))
	for _, e := range data.Edges {
		if !known[e.From] || !known[e.To] {
			return nil, errors.New(errors.ErrCodeInvalidManifest, "edge %s->%s references an unknown node", e.From, e.To)
		}
		deps[e.To] = append(deps[e.To], e.From)
	}

	reg := registry.New(opts...)

	// Create every node up front so the graph keeps the exported order.
	g := reg.Graph()
	for _, n := range data.Nodes {
		g.AddNode(n.ID)
	}

	for _, n := range data.Nodes {
		if n.Dangling {
			continue
		}
		switch n.Kind {
		case "", requirement.KindExternal.String():
			reg.AddExternal(n.ID, n.Group, deps[n.ID]...)
		case requirement.KindInline.String():
			content := ""
			if n.Content != nil {
				content = *n.Content
			}
			reg.AddInline(n.ID, requirement.Text(content), n.Group, deps[n.ID]...)
		default:
			return nil, errors.New(errors.ErrCodeInvalidManifest, "node %q: unknown kind %q", n.ID, n.Kind)
		}
	}
	return reg, nil
}

// ImportJSON reads the JSON graph file at path. See [ReadJSON].
func ImportJSON(path string, opts ...registry.Option) (*registry.Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "graph %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f, opts...)
}
