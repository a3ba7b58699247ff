package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phrazzld/apiref/internal/cli/output"
	"github.com/phrazzld/apiref/internal/service"
)

// searchView is a search result as a table.
type searchView service.SearchResult

// Table implements output.Tabular.
func (v *searchView) Table() output.Data {
	return output.Data{Headers: endpointHeaders, Rows: endpointRows(v.Categories)}
}

func newSearchCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search endpoints by title, path, method or description",
		Long: `Search matches the query as a case-insensitive substring of each
endpoint's title, path, method and description. Categories without a
match are left out.`,
		Example: `  apiref search a40
  apiref search "patient links" -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.loadService()
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			result, err := svc.Search(cmd.Context(), query)
			if err != nil {
				return err
			}

			if result.Total == 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "No endpoints found matching %q\n", query)
			} else {
				fmt.Fprintf(cmd.ErrOrStderr(), "Found %s matching %q\n",
					pluralize(result.Total, "endpoint", "endpoints"), query)
			}

			return opts.write(cmd.OutOrStdout(), (*searchView)(result))
		},
	}
}
