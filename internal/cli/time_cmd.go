package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/akarpin/tracklog/internal/cli/formatter"
	"github.com/akarpin/tracklog/internal/domain"
	"github.com/akarpin/tracklog/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newTimeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Log and inspect tracked work time",
	}

	cmd.AddCommand(
		newTimeLogCmd(app),
		newTimeListCmd(app),
		newTimeSummaryCmd(app),
	)

	return cmd
}

func newTimeLogCmd(app *App) *cobra.Command {
	var duration, date, workType, message string

	cmd := &cobra.Command{
		Use:   "log ISSUE",
		Short: "Log work time against an issue",
		Long: `Log work time against an issue.

Durations are free-form: '2h', '30m', '1h 30m', '1.5h', or a bare number
of minutes. Dates accept YYYY-MM-DD, MM/DD/YYYY, DD.MM.YYYY, 'today', or
'yesterday'; omitted means now.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()

			var res service.LogWorkResult
			err := app.withSpinner("Logging time...", func() error {
				res = app.Time.LogWork(context.Background(), service.LogWorkInput{
					IssueID:  args[0],
					Duration: duration,
					Date:     date,
					Text:     message,
					Type:     workType,
				})
				return nil
			})
			if err != nil {
				return err
			}

			app.record("time log "+args[0], start, string(res.Status), res.Message)
			if !res.OK() {
				return outcomeErr(res.Outcome)
			}

			fmt.Printf("Logged %s for %s (%s)\n",
				formatter.Bold(formatter.FormatMinutes(res.Entry.Minutes)),
				args[0],
				formatter.HumanDate(res.Entry.Date),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&duration, "duration", "d", "", "Duration to log, e.g. '1h 30m'")
	cmd.Flags().StringVar(&date, "date", "", "Date the work happened (default: now)")
	cmd.Flags().StringVarP(&workType, "type", "t", "", "Work type, e.g. 'Development'")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Work description")
	_ = cmd.MarkFlagRequired("duration")

	return cmd
}

func timeFilterFlags(fs *pflag.FlagSet, f *service.WorkFilters) {
	fs.StringVar(&f.IssueID, "issue", "", "Restrict to one issue")
	fs.StringVar(&f.Author, "author", "", "Restrict to one author login")
	fs.StringVar(&f.Start, "start", "", "Start of the date range")
	fs.StringVar(&f.End, "end", "", "End of the date range")
}

func newTimeListCmd(app *App) *cobra.Command {
	var filters service.WorkFilters

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged work entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()

			var res service.ListWorkResult
			_ = app.withSpinner("Fetching work items...", func() error {
				res = app.Time.ListWork(context.Background(), filters)
				return nil
			})

			app.record("time list", start, string(res.Status), res.Message)
			if !res.OK() {
				return outcomeErr(res.Outcome)
			}

			if res.Count == 0 {
				fmt.Println("No work entries found.")
				return nil
			}

			headers := []string{"DATE", "AUTHOR", "ISSUE", "TYPE", "DURATION", "NOTE"}
			rows := make([][]string, 0, res.Count)
			for _, e := range res.Entries {
				rows = append(rows, []string{
					formatter.HumanDate(e.Date),
					e.Author,
					e.Issue.ID,
					formatter.Dim(e.Type),
					formatter.FormatMinutes(e.Minutes),
					formatter.Dim(formatter.Truncate(e.Text, 40)),
				})
			}

			fmt.Print(formatter.RenderBox(
				fmt.Sprintf("Work Entries (%d)", res.Count),
				formatter.RenderTable(headers, rows),
			))
			fmt.Println()
			return nil
		},
	}

	timeFilterFlags(cmd.Flags(), &filters)
	return cmd
}

func newTimeSummaryCmd(app *App) *cobra.Command {
	var filters service.WorkFilters
	var groupBy string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize logged time by user, issue, or type",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			dim := domain.ParseGroupBy(groupBy)

			var res service.SummaryResult
			_ = app.withSpinner("Summarizing...", func() error {
				res = app.Time.Summarize(context.Background(), filters, dim)
				return nil
			})

			app.record("time summary", start, string(res.Status), res.Message)
			if !res.OK() {
				return outcomeErr(res.Outcome)
			}

			if res.Count == 0 {
				fmt.Println("No work entries found.")
				return nil
			}

			headers := []string{groupHeader(dim), "MINUTES", "HOURS", "ENTRIES"}
			rows := make([][]string, 0, len(res.Totals.Groups))
			for _, key := range res.Totals.Keys() {
				g := res.Totals.Groups[key]
				rows = append(rows, []string{
					key,
					fmt.Sprintf("%d", g.Minutes),
					formatter.FormatHours(g.Hours),
					fmt.Sprintf("%d", g.Entries),
				})
			}
			rows = append(rows, []string{
				formatter.Bold("TOTAL"),
				formatter.Bold(fmt.Sprintf("%d", res.Totals.TotalMinutes)),
				formatter.Bold(formatter.FormatHours(res.Totals.TotalHours)),
				formatter.Bold(fmt.Sprintf("%d", res.Count)),
			})

			table := formatter.Table{
				Headers:    headers,
				Rows:       rows,
				RightAlign: map[int]bool{1: true, 2: true, 3: true},
			}
			fmt.Print(formatter.RenderBox("Time Summary", table.Render()))
			fmt.Println()
			return nil
		},
	}

	timeFilterFlags(cmd.Flags(), &filters)
	cmd.Flags().StringVar(&groupBy, "group-by", "user", "Grouping dimension: user, issue, or type")
	return cmd
}

func groupHeader(g domain.GroupBy) string {
	switch g {
	case domain.GroupByIssue:
		return "ISSUE"
	case domain.GroupByType:
		return "TYPE"
	case domain.GroupByUser:
		return "USER"
	default:
		return "GROUP"
	}
}
