package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/akarpin/tracklog/internal/cli/formatter"
	"github.com/akarpin/tracklog/internal/domain"
	"github.com/spf13/cobra"
)

func newArticleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "articles",
		Aliases: []string{"article"},
		Short:   "Work with knowledge-base articles",
	}

	cmd.AddCommand(
		newArticleListCmd(app),
		newArticleShowCmd(app),
		newArticleCreateCmd(app),
	)
	return cmd
}

func newArticleListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List articles",
		RunE: func(cmd *cobra.Command, args []string) error {
			var articles []domain.Article
			err := app.withSpinner("Fetching articles...", func() error {
				var err error
				articles, err = app.Articles.ListArticles(context.Background(), project)
				return err
			})
			if err != nil {
				return err
			}

			if len(articles) == 0 {
				fmt.Println("No articles found.")
				return nil
			}

			headers := []string{"ID", "TITLE", "PROJECT", "AUTHOR", "UPDATED"}
			rows := make([][]string, 0, len(articles))
			for _, a := range articles {
				rows = append(rows, []string{
					formatter.Bold(a.ID),
					formatter.Truncate(a.Title, 50),
					formatter.Dim(a.Project.ShortName),
					a.Author,
					formatter.HumanTimestamp(a.Updated),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "Restrict to one project short name")
	return cmd
}

func newArticleShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ARTICLE",
		Short: "Show one article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Articles.GetArticle(context.Background(), args[0])
			if err != nil {
				return err
			}

			detail := formatter.Bold(a.Title) + "\n"
			detail += formatter.Dim(fmt.Sprintf("%s · %s · %s", a.ID, a.Author, formatter.HumanDate(a.Updated))) + "\n"
			if a.Content != "" {
				detail += "\n" + a.Content
			}
			fmt.Print(formatter.RenderBox("Article", detail))
			fmt.Println()
			return nil
		},
	}
}

func newArticleCreateCmd(app *App) *cobra.Command {
	var project, title, content, file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an article",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()

			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("reading content file: %w", err)
				}
				content = string(data)
			}

			a, err := app.Articles.CreateArticle(context.Background(), project, title, content)
			if err != nil {
				app.record("articles create", start, "failed", err.Error())
				return err
			}
			app.record("articles create", start, "success", a.ID)

			fmt.Printf("Created %s: %s\n", formatter.Bold(a.ID), a.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "Project ID")
	cmd.Flags().StringVarP(&title, "title", "t", "", "Article title")
	cmd.Flags().StringVar(&content, "content", "", "Article body (markdown)")
	cmd.Flags().StringVar(&file, "file", "", "Read the article body from a file")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}
