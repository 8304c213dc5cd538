package cmd

import (
	"fmt"

	"faa-load/internal/catalog"
	"faa-load/internal/fake"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var mockRows int

var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Build a sample archive with generated data",
	Long: `Builds a structurally valid ReleasableAircraft.zip filled with
generated rows, so load can be exercised without downloading the real
feed. The archive is written to the configured source.zip path.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dest := viper.GetString("source.zip")
		if err := fake.BuildArchive(dest, catalog.Default(), mockRows); err != nil {
			return err
		}
		fmt.Printf("✅ Wrote %s (%d rows per table)\n", dest, mockRows)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(mockCmd)

	mockCmd.Flags().IntVar(&mockRows, "rows", 100, "generated rows per table")
}
