package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/phishtrack/internal/ports/primary"
	"github.com/example/phishtrack/internal/wire"
)

// GenerateCmd returns the generate command
func GenerateCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "generate [campaign-id]",
		Short: "Render the campaign's test emails to disk",
		Long: `Render one plain-text email document per enrolled recipient.
Nothing is sent anywhere; the documents land in the output directory
with the tracking token exposed in the footer.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if outDir == "" {
				outDir = wire.Config().MailDir
			}

			resp, err := wire.MailoutService().GenerateEmails(ctx, primary.GenerateEmailsRequest{
				CampaignID: args[0],
				OutputDir:  outDir,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Generated %d email(s) in %s/\n", resp.EmailsWritten, resp.OutputDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default from config)")

	return cmd
}
