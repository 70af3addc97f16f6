package cli

import (
	"context"
	"fmt"

	"github.com/akarpin/tracklog/internal/cli/formatter"
	"github.com/akarpin/tracklog/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// pickerKeyMap defines the key bindings for the issue browser.
type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultPickerKeys() pickerKeyMap {
	return pickerKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Select: key.NewBinding(key.WithKeys("enter")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

type issuesLoadedMsg struct {
	issues []domain.Issue
}

type issuesLoadErrMsg struct {
	err error
}

// pickerModel is a single-view bubbletea model: a spinner while issues
// load, then a cursored list. Enter selects, q/esc cancels.
type pickerModel struct {
	keys    pickerKeyMap
	spin    spinner.Model
	fetch   tea.Cmd
	loading bool
	err     error

	issues []domain.Issue
	cursor int
	height int

	choice *domain.Issue
}

func newPickerModel(fetch tea.Cmd) pickerModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple

	return pickerModel{
		keys:    defaultPickerKeys(),
		spin:    sp,
		fetch:   fetch,
		loading: true,
		height:  20,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.fetch)
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil

	case issuesLoadedMsg:
		m.loading = false
		m.issues = msg.issues
		return m, nil

	case issuesLoadErrMsg:
		m.loading = false
		m.err = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.issues)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			if !m.loading && len(m.issues) > 0 {
				chosen := m.issues[m.cursor]
				m.choice = &chosen
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

func (m pickerModel) View() string {
	if m.loading {
		return fmt.Sprintf("\n  %s %s\n", m.spin.View(), formatter.Dim("Fetching issues..."))
	}
	if m.err != nil {
		return ""
	}
	if len(m.issues) == 0 {
		return "\n  " + formatter.Dim("No issues found.") + "\n"
	}

	// Keep the cursor inside the visible window.
	visible := m.height - 4
	if visible < 3 {
		visible = 3
	}
	top := 0
	if m.cursor >= visible {
		top = m.cursor - visible + 1
	}

	s := "\n"
	for i := top; i < len(m.issues) && i < top+visible; i++ {
		issue := m.issues[i]
		line := fmt.Sprintf("%s  %s  %s",
			formatter.Bold(issue.ID),
			formatter.Truncate(issue.Summary, 60),
			formatter.StatePill(issue.State),
		)
		if i == m.cursor {
			s += formatter.StyleHeader.Render("❯ ") + line + "\n"
		} else {
			s += "  " + line + "\n"
		}
	}
	s += "\n" + formatter.Dim("  ↑/↓ move · enter select · q quit") + "\n"
	return s
}

func newIssueBrowseCmd(app *App) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse issues interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("browse requires an interactive terminal")
			}

			fetch := func() tea.Msg {
				issues, err := app.Issues.ListIssues(context.Background(), query, 100)
				if err != nil {
					return issuesLoadErrMsg{err: err}
				}
				return issuesLoadedMsg{issues: issues}
			}

			final, err := tea.NewProgram(newPickerModel(fetch)).Run()
			if err != nil {
				return err
			}

			m, ok := final.(pickerModel)
			if !ok {
				return nil
			}
			if m.err != nil {
				return m.err
			}
			if m.choice == nil {
				return nil
			}

			// Reuse the show command's rendering for the chosen issue.
			show := newIssueShowCmd(app)
			return show.RunE(show, []string{m.choice.ID})
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Tracker query to pre-filter issues")
	return cmd
}
