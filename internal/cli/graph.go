package cli

import (
	"bytes"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/requiremedia/pkg/buildinfo"
	"github.com/matzehuels/requiremedia/pkg/cache"
	"github.com/matzehuels/requiremedia/pkg/errors"
	graphio "github.com/matzehuels/requiremedia/pkg/io"
	"github.com/matzehuels/requiremedia/pkg/render/nodelink"
)

const (
	formatDOT  = "dot"
	formatSVG  = "svg"
	formatJSON = "json"

	// graphTTL is how long rendered SVGs stay in the file cache.
	graphTTL = 7 * 24 * time.Hour
)

var graphFormats = []string{formatDOT, formatSVG, formatJSON}

// graphOpts holds options for the graph command.
type graphOpts struct {
	output     string
	format     string
	detailed   bool
	noCache    bool
	directives []string
	includes   []string
	data       map[string]string
}

// graphCommand creates the graph command for exporting the dependency graph.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph <manifest|page>",
		Short: "Export the requirement dependency graph",
		Long: `Export the dependency graph of a manifest or page template as Graphviz DOT,
as SVG or as JSON. JSON graphs can be read back by every command. Edges point from a dependency to the requirement that needs it;
names that are referenced but never registered are drawn dashed.

Rendered SVGs are cached by graph content.`,
		Example: `  requiremedia graph assets.toml
  requiremedia graph assets.toml -f svg --detailed -o assets.svg
  requiremedia graph index.html -f json -o index.json && requiremedia render index.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatDOT, "output format: dot, svg or json")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label nodes with group and kind")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "render the SVG even if it is cached")
	cmd.Flags().StringArrayVarP(&opts.directives, "require", "r", nil, `extra directive, e.g. "require js app.js jquery.js"`)
	cmd.Flags().StringSliceVar(&opts.includes, "include", nil, "partial templates parsed with a page")
	cmd.Flags().StringToStringVar(&opts.data, "data", nil, "page data as key=value pairs")

	return cmd
}

func (c *CLI) runGraph(cmd *cobra.Command, path string, opts graphOpts) error {
	if err := errors.ValidateFormat(opts.format, graphFormats); err != nil {
		return err
	}
	tk, err := c.toolkit()
	if err != nil {
		return err
	}
	reg, err := c.load(tk, path, opts.directives, opts.includes, opts.data)
	if err != nil {
		return err
	}

	g := reg.Graph()
	if opts.format == formatJSON {
		var buf bytes.Buffer
		if err := graphio.WriteJSON(reg, &buf); err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), opts.output, buf.Bytes())
	}

	dot := nodelink.ToDOT(reg, nodelink.Options{Detailed: opts.detailed})
	if opts.format == formatDOT {
		return writeOutput(cmd.OutOrStdout(), opts.output, []byte(dot))
	}

	files, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	// SVGs from another build may differ for the same DOT source.
	store := cache.Scoped(files, buildinfo.Version+":")
	defer store.Close()

	ctx := cmd.Context()
	computed := false
	svg, err := cache.Fetch(ctx, store, cache.GraphKey(dot, formatSVG), graphTTL, func() ([]byte, error) {
		computed = true
		spinner := newSpinner(ctx, fmt.Sprintf("Rendering %d nodes...", g.Len()))
		spinner.Start()
		svg, err := nodelink.RenderSVG(ctx, dot)
		if err != nil {
			spinner.StopWithError("Graph rendering failed")
			return nil, err
		}
		spinner.Stop()
		return svg, nil
	})
	if err != nil {
		return err
	}

	if err := writeOutput(cmd.OutOrStdout(), opts.output, svg); err != nil {
		return err
	}
	if opts.output != "" {
		printStats(g.Len(), len(g.Edges()), !computed)
	}
	return nil
}
