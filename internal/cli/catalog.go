package cli

import (
	"fmt"
	"os"

	"github.com/ppiankov/floatchat/internal/catalog"
	"github.com/ppiankov/floatchat/internal/fleet"
	"github.com/ppiankov/floatchat/internal/validate"
	"github.com/spf13/cobra"
)

var exportPath string

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and check response catalogs",
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the active catalog as YAML",
	Long: `Export writes the active catalog (built-in, or --catalog) in the YAML
format that --catalog and chat.catalog_file accept.

Example:
  floatchat catalog export > catalog.yaml
  floatchat catalog export --out catalog.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := commandConfig(cmd)
		if err != nil {
			return err
		}
		c, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		if exportPath == "" {
			return c.Encode(cmd.OutOrStdout())
		}

		f, err := os.Create(exportPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", exportPath, err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close %s: %w", exportPath, closeErr)
			}
		}()

		if err := c.Encode(f); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "✓ Exported %d entries to %s\n", c.Len(), exportPath)
		return nil
	},
}

var catalogCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the active catalog against the float fleet",
	Long: `Check reports catalog entries that cite unknown floats, link outside
the dashboard, fail their physics check, or can never be reached because
an earlier key shadows them. Errors make the command fail; warnings do not.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := commandConfig(cmd)
		if err != nil {
			return err
		}
		c, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		findings := validate.NewValidator(fleet.Default()).Validate(c)
		out := cmd.OutOrStdout()
		for _, f := range findings {
			fmt.Fprintln(out, f.String())
		}

		if validate.HasErrors(findings) {
			return fmt.Errorf("catalog check failed: %d finding(s)", len(findings))
		}
		fmt.Fprintf(out, "✓ %d entries checked, %d warning(s)\n", c.Len(), len(findings))
		return nil
	},
}

var catalogSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "List the suggested questions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, q := range catalog.SuggestedQueries() {
			fmt.Fprintln(cmd.OutOrStdout(), q)
		}
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	catalogCmd.AddCommand(catalogCheckCmd)
	catalogCmd.AddCommand(catalogSuggestCmd)

	catalogExportCmd.Flags().StringVar(&exportPath, "out", "", "output file (default: stdout)")
	for _, c := range []*cobra.Command{catalogExportCmd, catalogCheckCmd} {
		c.Flags().StringVar(&catalogPath, "catalog", "", "YAML response catalog (default: built-in demo catalog)")
	}
}
