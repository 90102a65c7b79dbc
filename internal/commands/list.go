package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/plantview/plantview-cli/internal/catalog"
	"github.com/plantview/plantview-cli/internal/errors"
	"github.com/plantview/plantview-cli/internal/models"
)

var (
	listPage   int
	listFamily string
	listJSON   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print one page of the plant catalog",
	Long: `Fetch a single page of the catalog and print it as a table.
Use --family to filter by taxonomic family and --json for the raw page.`,
	Args: cobra.NoArgs,
	RunE: listCommand,
}

func init() {
	listCmd.Flags().IntVar(&listPage, "page", 1, "page number to fetch")
	listCmd.Flags().StringVar(&listFamily, "family", "", "only show plants of this family")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output in JSON format")

	rootCmd.AddCommand(listCmd)
}

func listCommand(cmd *cobra.Command, _ []string) error {
	if listPage < 1 {
		return &errors.ValidationError{Field: "page", Value: listPage, Message: "must be 1 or greater"}
	}

	family := listFamily
	if family == catalog.AllCategory {
		family = ""
	}

	resp, err := newClient().ListPlants(cmd.Context(), listPage, family)
	if err != nil {
		return fmt.Errorf("failed to list plants: %w", err)
	}

	out := cmd.OutOrStdout()
	if listJSON {
		b, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(b))
		return nil
	}

	printPlantTable(cmd, resp)
	return nil
}

func printPlantTable(cmd *cobra.Command, resp *models.PageResponse) {
	out := cmd.OutOrStdout()
	records := resp.Records()
	if len(records) == 0 {
		fmt.Fprintln(out, "No plants found.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCOMMON NAME\tSCIENTIFIC NAME\tFAMILY\tGENUS")
	for _, p := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			orDash(p.ID.String()), orDash(p.CommonName), orDash(p.ScientificName), orDash(p.Family), orDash(p.Genus))
	}
	_ = w.Flush()

	total := resp.TotalPages()
	if total < 1 {
		total = 1
	}
	fmt.Fprintf(out, "\nPage %d of %d (%d plants)\n", listPage, total, len(records))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
