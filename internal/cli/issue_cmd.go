package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/akarpin/tracklog/internal/cli/formatter"
	"github.com/akarpin/tracklog/internal/domain"
	"github.com/akarpin/tracklog/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newIssueCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "issues",
		Aliases: []string{"issue"},
		Short:   "Work with tracker issues",
	}

	cmd.AddCommand(
		newIssueListCmd(app),
		newIssueShowCmd(app),
		newIssueCreateCmd(app),
		newIssueUpdateCmd(app),
		newIssueDeleteCmd(app),
		newIssueBrowseCmd(app),
	)

	return cmd
}

func newIssueListCmd(app *App) *cobra.Command {
	var query string
	var top int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List or search issues",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()

			var issues []domain.Issue
			err := app.withSpinner("Fetching issues...", func() error {
				var err error
				issues, err = app.Issues.ListIssues(context.Background(), query, top)
				return err
			})
			if err != nil {
				app.record("issues list", start, "failed", err.Error())
				return err
			}
			app.record("issues list", start, "success", "")

			if len(issues) == 0 {
				fmt.Println("No issues found.")
				return nil
			}

			headers := []string{"ID", "SUMMARY", "STATE", "ASSIGNEE", "PROJECT", "UPDATED"}
			rows := make([][]string, 0, len(issues))
			for _, i := range issues {
				rows = append(rows, []string{
					formatter.Bold(i.ID),
					formatter.Truncate(i.Summary, 50),
					formatter.StatePill(i.State),
					i.Assignee,
					formatter.Dim(i.Project.ShortName),
					formatter.HumanTimestamp(i.Updated),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Tracker query, e.g. 'project: PRJ #Unresolved'")
	cmd.Flags().IntVar(&top, "top", 50, "Maximum number of issues")
	return cmd
}

func newIssueShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ISSUE",
		Short: "Show one issue with its recent work entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var issue *domain.Issue
			err := app.withSpinner("Fetching issue...", func() error {
				var err error
				issue, err = app.Issues.GetIssue(ctx, args[0])
				return err
			})
			if err != nil {
				return err
			}

			work := app.Time.ListWork(ctx, service.WorkFilters{IssueID: issue.ID})

			items := []formatter.TreeItem{
				{Label: formatter.Bold(issue.Project.ShortName + " - " + issue.Project.Name)},
				{Label: formatter.Bold(issue.ID) + " " + issue.Summary, Level: 1, IsLast: true, Badge: issue.State},
			}
			if work.OK() {
				for i, e := range work.Entries {
					items = append(items, formatter.TreeItem{
						Label:  fmt.Sprintf("%s by %s, %s", formatter.FormatMinutes(e.Minutes), e.Author, formatter.HumanDate(e.Date)),
						Level:  2,
						IsLast: i == len(work.Entries)-1,
						Badge:  e.Type,
					})
				}
			}

			detail := formatter.RenderTree(items)
			if issue.Description != "" {
				detail += "\n" + issue.Description + "\n"
			}
			if issue.Assignee != "" {
				detail += "\n" + formatter.Dim("Assignee: ") + issue.Assignee
			}

			fmt.Print(formatter.RenderBox(issue.ID, detail))
			fmt.Println()
			return nil
		},
	}
}

func newIssueCreateCmd(app *App) *cobra.Command {
	var project, summary, description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an issue",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()

			issue, err := app.Issues.CreateIssue(context.Background(), project, summary, description)
			if err != nil {
				app.record("issues create", start, "failed", err.Error())
				return err
			}
			app.record("issues create", start, "success", issue.ID)

			fmt.Printf("Created %s: %s\n", formatter.Bold(issue.ID), issue.Summary)
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "Project ID")
	cmd.Flags().StringVarP(&summary, "summary", "s", "", "Issue summary")
	cmd.Flags().StringVar(&description, "description", "", "Issue description")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("summary")
	return cmd
}

func newIssueUpdateCmd(app *App) *cobra.Command {
	var summary, description string

	cmd := &cobra.Command{
		Use:   "update ISSUE",
		Short: "Update an issue's summary or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if summary == "" && description == "" {
				return fmt.Errorf("nothing to update: pass --summary and/or --description")
			}

			issue, err := app.Issues.UpdateIssue(context.Background(), args[0], summary, description)
			if err != nil {
				return err
			}
			fmt.Printf("Updated %s\n", formatter.Bold(issue.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&summary, "summary", "s", "", "New summary")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	return cmd
}

func newIssueDeleteCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete ISSUE",
		Short: "Delete an issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if !app.interactive() {
					return fmt.Errorf("refusing to delete without --force in non-interactive mode")
				}
				confirmed := false
				form := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Delete issue %s?", args[0])).
						Value(&confirmed),
				)).WithShowHelp(false)
				if err := form.Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Aborted.")
					return nil
				}
			}

			start := time.Now()
			if err := app.Issues.DeleteIssue(context.Background(), args[0]); err != nil {
				app.record("issues delete "+args[0], start, "failed", err.Error())
				return err
			}
			app.record("issues delete "+args[0], start, "success", "")
			fmt.Printf("Deleted %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")
	return cmd
}
