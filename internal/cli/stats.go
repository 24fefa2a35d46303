package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/phishtrack/internal/wire"
)

// StatsCmd returns the stats command
func StatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [campaign-id]",
		Short: "Show campaign statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			stats, err := wire.StatsService().GetCampaignStats(ctx, args[0])
			if err != nil {
				return err
			}

			header := color.New(color.Bold, color.FgCyan)
			header.Printf("\nCampaign %s\n", shortID(stats.CampaignID))

			fmt.Printf("  Total employees:    %d\n", stats.TotalEmployees)
			fmt.Printf("  Emails sent:        %d\n", stats.EmailsSent)
			fmt.Printf("  Links clicked:      %d\n", stats.LinksClicked)
			fmt.Printf("  Phishing reported:  %d\n", stats.PhishingReported)
			fmt.Printf("  Click rate:         %s\n", rateString(stats.ClickRate))
			fmt.Printf("  Report rate:        %s\n", color.GreenString("%.2f%%", stats.ReportRate))

			if len(stats.DepartmentStats) > 0 {
				fmt.Println("\nBy department:")
				for _, d := range stats.DepartmentStats {
					fmt.Printf("  %s: %d/%d clicked, %d reported\n",
						d.Department, d.Clicked, d.Total, d.Reported)
				}
			}
			fmt.Println()

			return nil
		},
	}
}

// rateString highlights worrying click rates.
func rateString(rate float64) string {
	if rate >= 50 {
		return color.RedString("%.2f%%", rate)
	}
	if rate >= 20 {
		return color.YellowString("%.2f%%", rate)
	}
	return color.GreenString("%.2f%%", rate)
}
