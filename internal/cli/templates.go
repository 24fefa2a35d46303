package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/phishtrack/internal/wire"
)

// TemplatesCmd returns the templates command
func TemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the built-in email templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "NAME\tDIFFICULTY\tSENDER\tSUBJECT")
			fmt.Fprintln(w, "----\t----------\t------\t-------")

			for _, tmpl := range wire.Catalog().All() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					tmpl.Name, tmpl.Difficulty, tmpl.Sender, tmpl.Subject)
			}

			w.Flush()
			return nil
		},
	}
}
