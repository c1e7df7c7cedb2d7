package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/requiremedia/pkg/errors"
	"github.com/matzehuels/requiremedia/pkg/registry"
	"github.com/matzehuels/requiremedia/pkg/requirement"
)

type graph struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	ID       string  `json:"id"`
	Group    string  `json:"group,omitempty"`
	Kind     string  `json:"kind,omitempty"`
	Content  *string `json:"content,omitempty"`
	Dangling bool    `json:"dangling,omitempty"`
}

type edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// WriteJSON encodes the dependency graph of reg as JSON and writes it to w.
// A nil registry is written as an empty graph.
func WriteJSON(reg *registry.Registry, w io.Writer) error {
	out := graph{Nodes: []node{}, Edges: []edge{}}

	if reg != nil {
		g := reg.Graph()
		for _, n := range g.Nodes() {
			req, ok := reg.Lookup(n.ID)
			if !ok {
				out.Nodes = append(out.Nodes, node{ID: n.ID, Dangling: true})
				continue
			}
			nd := node{ID: n.ID, Group: req.Group, Kind: req.Kind().String()}
			if req.IsInline() {
				text := ""
				if t, ok := req.Content.(requirement.Text); ok {
					text = string(t)
				}
				nd.Content = &text
			}
			out.Nodes = append(out.Nodes, nd)
		}
		for _, e := range g.Edges() {
			out.Edges = append(out.Edges, edge{From: e.From, To: e.To})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode graph")
	}
	return nil
}

// ExportJSON writes the dependency graph of reg to a JSON file at path.
func ExportJSON(reg *registry.Registry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	return WriteJSON(reg, f)
}
