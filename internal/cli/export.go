package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/phishtrack/internal/report"
	"github.com/example/phishtrack/internal/wire"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	var (
		format string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "export [campaign-id]",
		Short: "Export a campaign report to csv or json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			stats, err := wire.StatsService().GetCampaignStats(ctx, args[0])
			if err != nil {
				return err
			}

			if outDir == "" {
				outDir = wire.Config().ExportDir
			}

			path, err := report.Export(stats, format, outDir)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Report saved: %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "F", report.FormatCSV, "export format: csv or json")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default from config)")

	return cmd
}
