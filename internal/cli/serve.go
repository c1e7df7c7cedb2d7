package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/requiremedia/internal/server"
	"github.com/matzehuels/requiremedia/pkg/page"
)

// serveOpts holds options for the serve command.
type serveOpts struct {
	dir     string
	addr    string
	pattern string
}

// serveCommand creates the serve command for rendering pages over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve page templates over HTTP",
		Long: `Serve the page templates of a directory. GET /name renders name.html with a
fresh requirement registry per request; GET /_graph/name.svg shows the
dependency graph of that page.`,
		Example: `  requiremedia serve --dir templates --addr localhost:8080`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.dir, "dir", ".", "template directory")
	cmd.Flags().StringVar(&opts.addr, "addr", "localhost:8080", "listen address")
	cmd.Flags().StringVar(&opts.pattern, "pattern", "*.html", "template file pattern")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts serveOpts) error {
	tk, err := c.toolkit()
	if err != nil {
		return err
	}
	tmpl, err := page.ParseFS(os.DirFS(opts.dir), opts.pattern)
	if err != nil {
		return err
	}

	srv := server.New(
		page.New(tmpl, tk.parser, tk.table, page.WithLogger(c.Logger)),
		server.WithLogger(c.Logger),
	)
	defer srv.Close()

	printInfo("Serving %s on %s", StyleValue.Render(opts.dir), StyleLink.Render("http://"+opts.addr))
	return srv.ListenAndServe(cmd.Context(), opts.addr)
}
