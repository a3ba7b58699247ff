package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phrazzld/apiref/internal/domain"
	"github.com/phrazzld/apiref/internal/platform/embedded"
)

func newValidateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a catalog document",
		Long: `Validate decodes a catalog document and checks required fields,
colors, URLs and id uniqueness. Without a file argument it validates the
catalog selected by --catalog, or the embedded catalog.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.catalogPath()
			if len(args) == 1 {
				path = args[0]
			}

			catalog, err := embedded.LoadFrom(path)
			if err != nil {
				return err
			}

			source := path
			if source == "" {
				source = "embedded catalog"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: OK (%s, %s)\n",
				source,
				pluralize(len(catalog.Categories), "category", "categories"),
				pluralize(domain.CountEndpoints(catalog.Categories), "endpoint", "endpoints"))
			return err
		},
	}
}
