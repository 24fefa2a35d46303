// Package cli contains the cobra command definitions. Commands parse
// arguments and format output; business logic lives in the services.
package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/phishtrack/internal/ports/primary"
	"github.com/example/phishtrack/internal/wire"
)

// CampaignCmd returns the campaign command
func CampaignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "campaign",
		Short: "Manage phishing test campaigns",
		Long:  `Create and inspect phishing-awareness test campaigns.`,
	}

	cmd.AddCommand(campaignCreateCmd())
	cmd.AddCommand(campaignListCmd())
	cmd.AddCommand(campaignShowCmd())

	return cmd
}

func campaignCreateCmd() *cobra.Command {
	var template string

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new campaign",
		Long: `Create a new campaign bound to one of the built-in email templates.

Examples:
  phishtrack campaign create "Q1 Awareness" --template password_reset
  phishtrack campaign create "Exec test" --template ceo_request`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			resp, err := wire.CampaignService().CreateCampaign(ctx, primary.CreateCampaignRequest{
				Name:     args[0],
				Template: template,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Created campaign %s: %s (template: %s)\n",
				shortID(resp.CampaignID), resp.Campaign.Name, resp.Campaign.Template)
			fmt.Printf("Campaign ID: %s\n", resp.CampaignID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", "", "template name (see 'phishtrack templates')")
	cmd.MarkFlagRequired("template")

	return cmd
}

func campaignListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all campaigns",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			campaigns, err := wire.CampaignService().ListCampaigns(ctx)
			if err != nil {
				return err
			}

			if len(campaigns) == 0 {
				fmt.Println("No campaigns found.")
				fmt.Println()
				fmt.Println("Create your first campaign:")
				fmt.Println("  phishtrack campaign create \"Q1 Awareness\" --template password_reset")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTEMPLATE\tSTATUS\tCREATED")
			fmt.Fprintln(w, "--\t----\t--------\t------\t-------")

			for _, c := range campaigns {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					shortID(c.ID),
					c.Name,
					c.Template,
					statusColor(c.Status),
					c.CreatedAt,
				)
			}

			w.Flush()
			return nil
		},
	}
}

func campaignShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [campaign-id]",
		Short: "Show campaign details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			campaign, err := wire.CampaignService().GetCampaign(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\nCampaign: %s\n", campaign.ID)
			fmt.Printf("Name:     %s\n", campaign.Name)
			fmt.Printf("Template: %s\n", campaign.Template)
			fmt.Printf("Status:   %s\n", campaign.Status)
			fmt.Printf("Created:  %s\n", campaign.CreatedAt)
			fmt.Println()

			return nil
		},
	}
}

// shortID truncates a campaign identifier for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func statusColor(status string) string {
	if status == "active" {
		return color.GreenString(status)
	}
	return color.YellowString(status)
}
