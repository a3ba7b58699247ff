// Package cli implements the apiref command line: search, list and show
// the reference catalog from a terminal, and validate catalog documents.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/phrazzld/apiref/internal/cli/output"
	"github.com/phrazzld/apiref/internal/config"
	"github.com/phrazzld/apiref/internal/domain"
	"github.com/phrazzld/apiref/internal/platform/embedded"
	"github.com/phrazzld/apiref/internal/platform/memory"
	"github.com/phrazzld/apiref/internal/service"
)

// options holds the persistent flags shared by every command.
type options struct {
	v      *viper.Viper
	logger *slog.Logger
}

// NewRootCommand builds the apiref command tree. The catalog path comes
// from --catalog or APIREF_CATALOG_PATH; output format from --output.
func NewRootCommand() *cobra.Command {
	opts := &options{v: viper.New()}

	root := &cobra.Command{
		Use:   "apiref",
		Short: "Browse the API reference catalog",
		Long: `apiref searches and prints the API reference catalog served by the
apiref server. Without --catalog it reads the catalog compiled into the
binary.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			format := opts.v.GetString("output")
			if _, err := output.ParseFormat(format); err != nil {
				return err
			}
			level := slog.LevelWarn
			if opts.v.GetBool("verbose") {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String("catalog", "", "catalog YAML file (default: embedded catalog)")
	flags.StringP("output", "o", "", "output format: table, json or yaml (default: table on a terminal, json otherwise)")
	flags.BoolP("verbose", "v", false, "log debug output to stderr")

	opts.v.SetEnvPrefix(config.EnvPrefix)
	opts.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	opts.v.AutomaticEnv()
	for key, name := range map[string]string{
		"catalog.path": "catalog",
		"output":       "output",
		"verbose":      "verbose",
	} {
		if err := opts.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("Failed to bind %s flag: %v", name, err))
		}
	}

	root.AddCommand(
		newSearchCommand(opts),
		newListCommand(opts),
		newShowCommand(opts),
		newValidateCommand(opts),
	)

	return root
}

// catalogPath is the catalog document to read, "" for the embedded one.
func (o *options) catalogPath() string {
	return o.v.GetString("catalog.path")
}

// loadService builds a catalog service over the selected catalog.
func (o *options) loadService() (service.CatalogService, error) {
	catalog, err := embedded.LoadFrom(o.catalogPath())
	if err != nil {
		return nil, err
	}

	store, err := memory.NewCategoryStore(catalog, o.logger)
	if err != nil {
		return nil, err
	}

	return service.NewCatalogService(store, o.logger)
}

// write renders data in the selected format.
func (o *options) write(w io.Writer, data any) error {
	format, err := output.ParseFormat(o.v.GetString("output"))
	if err != nil {
		return err
	}
	format = output.DetectFormat(format, w)
	return output.NewFormatter(format).Format(w, data)
}

// endpointRows flattens categories into one row per endpoint.
func endpointRows(categories []domain.Category) [][]string {
	rows := make([][]string, 0, domain.CountEndpoints(categories))
	for _, c := range categories {
		for _, e := range c.Endpoints {
			rows = append(rows, []string{c.ID, e.ID, e.Method, e.Endpoint, e.Title})
		}
	}
	return rows
}

var endpointHeaders = []string{"CATEGORY", "ID", "METHOD", "ENDPOINT", "TITLE"}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
