package cli

import (
	"context"
	"fmt"

	"github.com/akarpin/tracklog/internal/cli/formatter"
	"github.com/akarpin/tracklog/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "Inspect tracker projects",
	}

	cmd.AddCommand(newProjectListCmd(app), newProjectShowCmd(app))
	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var includeArchived bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			var projects []domain.Project
			err := app.withSpinner("Fetching projects...", func() error {
				var err error
				projects, err = app.Projects.ListProjects(context.Background())
				return err
			})
			if err != nil {
				return err
			}

			headers := []string{"SHORT NAME", "NAME", "LEADER", "STATUS"}
			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				if p.Archived && !includeArchived {
					continue
				}
				status := formatter.StyleGreen.Render("● Active")
				if p.Archived {
					status = formatter.Dim("✖ Archived")
				}
				rows = append(rows, []string{
					formatter.Bold(p.ShortName),
					p.Name,
					p.Leader,
					status,
				})
			}
			if len(rows) == 0 {
				fmt.Println("No projects found.")
				return nil
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeArchived, "archived", false, "Include archived projects")
	return cmd
}

func newProjectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show PROJECT",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.GetProject(context.Background(), args[0])
			if err != nil {
				return err
			}

			detail := formatter.Bold(p.Name) + " " + formatter.Dim("("+p.ShortName+")") + "\n"
			if p.Description != "" {
				detail += "\n" + p.Description + "\n"
			}
			if p.Leader != "" {
				detail += "\n" + formatter.Dim("Leader: ") + p.Leader
			}
			fmt.Print(formatter.RenderBox("Project", detail))
			fmt.Println()
			return nil
		},
	}
}
