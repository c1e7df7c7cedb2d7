package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/requiremedia/pkg/errors"
	"github.com/matzehuels/requiremedia/pkg/render"
)

// renderOpts holds options for the render command.
type renderOpts struct {
	output     string
	groups     []string
	directives []string
	includes   []string
	data       map[string]string
}

// renderCommand creates the render command for producing HTML.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <manifest|page>",
		Short: "Render requirements as HTML tags",
		Long: `Render the requirements of a manifest as HTML tags, or execute a page template
and replace its renderRequirements placeholders.

Manifests render all recognized groups unless --group is given. Pages decide
for themselves which groups to render where.`,
		Example: `  # Script and stylesheet tags for a manifest
  requiremedia render assets.toml

  # Only the stylesheets
  requiremedia render assets.toml --group css

  # A page template with a partial and some data
  requiremedia render index.html --include blocks.html --data title=Home -o index.out.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringSliceVarP(&opts.groups, "group", "g", nil, "groups to render (manifests only)")
	cmd.Flags().StringArrayVarP(&opts.directives, "require", "r", nil, `extra directive, e.g. "require js app.js jquery.js"`)
	cmd.Flags().StringSliceVar(&opts.includes, "include", nil, "partial templates parsed with a page")
	cmd.Flags().StringToStringVar(&opts.data, "data", nil, "page data as key=value pairs")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, path string, opts renderOpts) error {
	tk, err := c.toolkit()
	if err != nil {
		return err
	}
	prog := newProgress(c.Logger)

	var buf bytes.Buffer
	if isPage(path) {
		if len(opts.groups) > 0 {
			return errors.New(errors.ErrCodeInvalidInput, "--group only applies to manifests")
		}
		reg := c.newRegistry()
		if err := applyDirectives(reg, tk.parser, opts.directives); err != nil {
			return err
		}
		if err := c.executePage(&buf, tk, reg, path, opts.includes, opts.data); err != nil {
			return err
		}
		prog.done(fmt.Sprintf("Rendered page with %d requirements", reg.Len()))
	} else {
		reg, err := c.load(tk, path, opts.directives, nil, nil)
		if err != nil {
			return err
		}
		html, err := render.Requirements(reg, tk.table, nil, opts.groups...)
		if err != nil {
			c.Logger.Warn("some requirements could not be rendered", "err", err)
		}
		buf.WriteString(html)
		if html != "" && !strings.HasSuffix(html, "\n") {
			buf.WriteByte('\n')
		}
		prog.done(fmt.Sprintf("Rendered %d requirements", reg.Len()))
	}

	return writeOutput(cmd.OutOrStdout(), opts.output, buf.Bytes())
}

// writeOutput writes data to the file at path, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	printSuccess("Output written")
	printFile(path)
	return nil
}
