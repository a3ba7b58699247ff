package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phrazzld/apiref/internal/cli/output"
	"github.com/phrazzld/apiref/internal/domain"
	"github.com/phrazzld/apiref/internal/service"
)

// ErrNotFound is returned by show when the id names neither a category
// nor an endpoint.
var ErrNotFound = errors.New("no category or endpoint with that id")

// categoryView is one category as a table of its endpoints.
type categoryView domain.Category

// Table implements output.Tabular.
func (v *categoryView) Table() output.Data {
	return output.Data{
		Headers: endpointHeaders,
		Rows:    endpointRows([]domain.Category{domain.Category(*v)}),
	}
}

// endpointView is one endpoint with its category id.
type endpointView struct {
	CategoryID string           `json:"categoryId" yaml:"categoryId"`
	Endpoint   *domain.Endpoint `json:"endpoint" yaml:"endpoint"`
}

// Table implements output.Tabular.
func (v endpointView) Table() output.Data {
	e := v.Endpoint
	rows := [][]string{
		{"ID", e.ID},
		{"TITLE", e.Title},
		{"METHOD", e.Method},
		{"ENDPOINT", e.Endpoint},
		{"CATEGORY", fmt.Sprintf("%s (%s)", e.Category, v.CategoryID)},
		{"DESCRIPTION", e.Description},
	}
	if len(e.SearchParams) > 0 {
		rows = append(rows, []string{"SEARCH PARAMS", strings.Join(e.SearchParams, "\n")})
	}
	rows = append(rows,
		[]string{"REQUEST", e.Request},
		[]string{"RESPONSE", e.Response},
	)
	return output.Data{Headers: []string{"FIELD", "VALUE"}, Rows: rows}
}

func newShowCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a category or an endpoint by id",
		Long: `Show prints the category with the given id. If no category matches,
the id is looked up as an endpoint id instead.`,
		Example: `  apiref show pix
  apiref show pix-a40 -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.loadService()
			if err != nil {
				return err
			}

			id := args[0]
			category, err := svc.GetCategory(cmd.Context(), id)
			switch {
			case err == nil:
				return opts.write(cmd.OutOrStdout(), (*categoryView)(category))
			case !errors.Is(err, service.ErrCategoryNotFound):
				return err
			}

			endpoint, categoryID, err := svc.GetEndpoint(cmd.Context(), id)
			if errors.Is(err, service.ErrEndpointNotFound) {
				return fmt.Errorf("%w: %q", ErrNotFound, id)
			}
			if err != nil {
				return err
			}

			return opts.write(cmd.OutOrStdout(), endpointView{CategoryID: categoryID, Endpoint: endpoint})
		},
	}
}
