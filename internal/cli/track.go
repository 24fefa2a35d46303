package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/phishtrack/internal/apperr"
	"github.com/example/phishtrack/internal/wire"
)

// ClickCmd returns the click command
func ClickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "click [token]",
		Short: "Simulate a click on a tracking link",
		Long: `Register a click for the tracking token embedded in a rendered email.
Repeated clicks refresh the timestamp. An unknown token is reported but
is not an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			err := wire.TrackingService().RecordClick(ctx, args[0])
			if apperr.IsNotFound(err) {
				fmt.Printf("Token not found: %s\n", args[0])
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Println("✓ Click registered")
			return nil
		},
	}
}

// ReportCmd returns the report command
func ReportCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "report [campaign-id]",
		Short: "Register a phishing report from an employee",
		Long: `Record that an employee reported the test email as phishing.
An employee not enrolled under the campaign is reported but is not an
error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			err := wire.TrackingService().RecordReport(ctx, email, args[0])
			if apperr.IsNotFound(err) {
				fmt.Printf("No recipient with email %s in campaign %s\n", email, shortID(args[0]))
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Println("✓ Report registered")
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "employee email address")
	cmd.MarkFlagRequired("email")

	return cmd
}
