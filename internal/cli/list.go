package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/phrazzld/apiref/internal/cli/output"
	"github.com/phrazzld/apiref/internal/domain"
)

// categoryList is the category list as a table.
type categoryList []domain.Category

// Table implements output.Tabular.
func (l categoryList) Table() output.Data {
	data := output.Data{Headers: []string{"ID", "NAME", "ENDPOINTS", "DESCRIPTION"}}
	for _, c := range l {
		data.Rows = append(data.Rows, []string{c.ID, c.Name, strconv.Itoa(len(c.Endpoints)), c.Description})
	}
	return data
}

func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List categories in catalog order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.loadService()
			if err != nil {
				return err
			}

			categories, err := svc.ListCategories(cmd.Context())
			if err != nil {
				return err
			}

			return opts.write(cmd.OutOrStdout(), categoryList(categories))
		},
	}
}
