// Package board holds the commands that read and change program membership
package board

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	plantelboard "github.com/thenoetrevino/plantel/internal/board"
	"github.com/thenoetrevino/plantel/internal/cli"
	"github.com/thenoetrevino/plantel/internal/cli/styles"
	"github.com/thenoetrevino/plantel/internal/config"
	"github.com/thenoetrevino/plantel/internal/types"
)

// BoardCmd returns the board snapshot command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print the assignment board",
		Long: `Print every program column with its athletes, unassigned athletes first.
Hidden and pinned columns follow your preferences unless --all is given.

Examples:
  plantel board
  plantel board --search=ana
  plantel board --all --json
`,
		RunE: runBoard,
	}

	cmd.Flags().String("search", "", "Only show athletes whose name matches")
	cmd.Flags().Bool("all", false, "Ignore hidden and pinned column preferences")
	cli.AddOutputFlags(cmd)

	return cmd
}

// columnJSON is the agent-facing shape of one column
type columnJSON struct {
	ID       int    `json:"id"`
	Label    string `json:"label"`
	Total    int    `json:"total"`
	Athletes []int  `json:"athlete_ids"`
}

func runBoard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)
	search, _ := cmd.Flags().GetString("search")
	all, _ := cmd.Flags().GetBool("all")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	b := plantelboard.New(cliInstance.Client)
	if err := b.Load(ctx); err != nil {
		return formatter.FailWithSuggestion(err, "Check backend.base_url in your config or PLANTEL_BACKEND_URL")
	}
	b.SetQuery(search)

	view := b.View()
	if !all {
		view = arrange(view, cliInstance.Config.Preferences)
	}

	if formatter.JSON {
		cols := make([]columnJSON, len(view.Columns))
		for i, c := range view.Columns {
			ids := make([]int, len(c.Athletes))
			for j, a := range c.Athletes {
				ids[j] = a.ID.ToInt()
			}
			cols[i] = columnJSON{ID: c.ID.ToInt(), Label: c.Label, Total: c.Total, Athletes: ids}
		}
		return formatter.JSONResult("columns", cols)
	}

	if formatter.Quiet {
		for _, c := range view.Columns {
			for _, a := range c.Athletes {
				formatter.Printf("%d %d\n", c.ID, a.ID)
			}
		}
		return nil
	}

	for _, c := range view.Columns {
		formatter.Printf("%s\n", styles.RenderColumnHeader(c.Label, len(c.Athletes), c.Total))
		if len(c.Athletes) == 0 {
			formatter.Printf("  %s\n", styles.SubtitleStyle.Render("(empty)"))
			continue
		}
		lines := make([]string, len(c.Athletes))
		for i, a := range c.Athletes {
			lines[i] = fmt.Sprintf("  %3d  %s", a.ID, a.FullName())
		}
		formatter.Printf("%s\n", strings.Join(lines, "\n"))
	}
	return nil
}

func arrange(view plantelboard.View, prefs config.Preferences) plantelboard.View {
	return view.Arrange(
		func(id types.ProgramID) bool { return prefs.IsHidden(id.ToInt()) },
		func(id types.ProgramID) bool { return prefs.IsPinned(id.ToInt()) },
	)
}
