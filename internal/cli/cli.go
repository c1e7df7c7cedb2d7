package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/requiremedia/pkg/alias"
	"github.com/matzehuels/requiremedia/pkg/buildinfo"
	"github.com/matzehuels/requiremedia/pkg/cache"
	"github.com/matzehuels/requiremedia/pkg/config"
	"github.com/matzehuels/requiremedia/pkg/directive"
	"github.com/matzehuels/requiremedia/pkg/render"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "requiremedia"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "requiremedia orders and renders static asset requirements",
		Long: `requiremedia collects script and stylesheet requirements, orders them so
that every dependency comes first, and renders them as HTML tags.

Requirements come from manifests (TOML or YAML) or from page templates that
declare them with require directives.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			installHooks(c.Logger)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (toml, yaml or json)")

	root.AddCommand(c.orderCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Toolkit
// =============================================================================

// toolkit bundles the collaborators built from the loaded configuration.
type toolkit struct {
	table   *render.Table
	aliases *alias.Resolver
	parser  *directive.Parser
}

func (c *CLI) toolkit() (*toolkit, error) {
	table, err := render.NewTable(c.cfg)
	if err != nil {
		return nil, err
	}
	aliases := alias.FromConfig(c.cfg)
	return &toolkit{
		table:   table,
		aliases: aliases,
		parser:  directive.NewParser(aliases, table.Groups()),
	}, nil
}

// =============================================================================
// Cache
// =============================================================================

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/requiremedia/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
