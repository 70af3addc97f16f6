package cli

import (
	"context"
	"fmt"

	"github.com/akarpin/tracklog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAuditCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show recent CLI invocations from the local audit log",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Audit == nil {
				fmt.Println("Auditing is disabled (TRACKLOG_AUDIT=0).")
				return nil
			}

			entries, err := app.Audit.Recent(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No audit entries yet.")
				return nil
			}

			headers := []string{"WHEN", "COMMAND", "STATUS", "TOOK", "MESSAGE"}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				status := formatter.StyleGreen.Render(e.Status)
				if e.Status != "success" {
					status = formatter.StyleRed.Render(e.Status)
				}
				rows = append(rows, []string{
					formatter.HumanTimestamp(e.CreatedAt),
					e.Command,
					status,
					fmt.Sprintf("%dms", e.DurationMs),
					formatter.Dim(formatter.Truncate(e.Message, 48)),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries to show")
	return cmd
}
