package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plantview/plantview-cli/internal/catalog"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the plant families offered by the browse filter",
	Long: `Sample the first pages of the unfiltered catalog and print the
families found, the same approximate list the browse filter shows.
The sample stops after preview-limit records or preview-max-pages pages.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		loader := catalog.NewPreviewLoader(newClient(), cfg.PreviewLimit, cfg.PreviewMaxPages)

		categories, err := loader.Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load categories: %w", err)
		}

		out := cmd.OutOrStdout()
		for _, c := range categories {
			fmt.Fprintln(out, c)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
