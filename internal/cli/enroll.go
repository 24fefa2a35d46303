package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/phishtrack/internal/core/roster"
	"github.com/example/phishtrack/internal/ports/primary"
	"github.com/example/phishtrack/internal/wire"
)

// EnrollCmd returns the enroll command
func EnrollCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "enroll [campaign-id]",
		Short: "Enroll employees into a campaign from a CSV roster",
		Long: `Enroll employees from a CSV file with columns email, name, department.
Extra columns are ignored. Every roster record gets its own tracking
result, including records whose email is already enrolled.

Example:
  phishtrack enroll 3f8a9c21-... --file employees.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open roster: %w", err)
			}
			defer f.Close()

			records, err := roster.Parse(f)
			if err != nil {
				return err
			}

			req := primary.EnrollEmployeesRequest{CampaignID: args[0]}
			for _, r := range records {
				req.Records = append(req.Records, primary.EnrollmentRecord{
					Email:      r.Email,
					Name:       r.Name,
					Department: r.Department,
				})
			}

			resp, err := wire.EnrollmentService().EnrollEmployees(ctx, req)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Enrolled %d record(s) into campaign %s\n", resp.Processed, shortID(args[0]))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the CSV roster")
	cmd.MarkFlagRequired("file")

	return cmd
}
