package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/requiremedia/pkg/dag/transform"
	"github.com/matzehuels/requiremedia/pkg/requirement"
)

// orderOpts holds options for the order command.
type orderOpts struct {
	groups     []string
	directives []string
	includes   []string
	data       map[string]string
	plain      bool
}

// orderCommand creates the order command for listing sorted requirements.
func (c *CLI) orderCommand() *cobra.Command {
	var opts orderOpts

	cmd := &cobra.Command{
		Use:   "order <manifest|page>",
		Short: "List requirements in dependency order",
		Long: `List the requirements of a manifest or page template with every dependency
before the requirements that need it.

With --group only requirements of those groups are listed.`,
		Example: `  requiremedia order assets.toml
  requiremedia order assets.yaml --group js --plain
  requiremedia order index.html -r "require js app.js jquery.js"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOrder(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.groups, "group", "g", nil, "only list these groups")
	cmd.Flags().StringArrayVarP(&opts.directives, "require", "r", nil, `extra directive, e.g. "require js app.js jquery.js"`)
	cmd.Flags().StringSliceVar(&opts.includes, "include", nil, "partial templates parsed with a page")
	cmd.Flags().StringToStringVar(&opts.data, "data", nil, "page data as key=value pairs")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print one name per line")

	return cmd
}

func (c *CLI) runOrder(cmd *cobra.Command, path string, opts orderOpts) error {
	tk, err := c.toolkit()
	if err != nil {
		return err
	}
	reg, err := c.load(tk, path, opts.directives, opts.includes, opts.data)
	if err != nil {
		return err
	}

	reqs := reg.Sorted()
	if len(opts.groups) > 0 {
		reqs = reg.SortedForGroups(opts.groups...)
	}

	out := cmd.OutOrStdout()
	if opts.plain {
		for _, req := range reqs {
			fmt.Fprintln(out, req.Name)
		}
		return nil
	}

	if edges := transform.CycleEdges(reg.Graph()); len(edges) > 0 {
		printWarning("Dependency cycle, showing registration order")
		for _, e := range edges {
			printDetail("%s %s %s", e.From, iconArrow, e.To)
		}
	}

	if len(reqs) == 0 {
		printInfo("No requirements")
		return nil
	}
	fmt.Fprintln(out, requirementTable(reqs))
	return nil
}

// requirementTable renders reqs as a bordered table.
func requirementTable(reqs []*requirement.Requirement) string {
	rows := make([][]string, len(reqs))
	for i, req := range reqs {
		group := req.Group
		if !req.HasGroup() {
			group = "-"
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			req.Name,
			group,
			req.Kind().String(),
			strings.Join(req.DependsOn, ", "),
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("#", "NAME", "GROUP", "KIND", "DEPENDS ON").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return style.Inherit(StyleTitle)
			case col == 0:
				return style.Inherit(StyleNumber)
			case col == 1:
				return style.Inherit(StyleValue)
			}
			return style.Inherit(StyleDim)
		}).
		String()
}
