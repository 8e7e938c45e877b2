package board

import (
	"fmt"

	"github.com/spf13/cobra"
	plantelboard "github.com/thenoetrevino/plantel/internal/board"
	"github.com/thenoetrevino/plantel/internal/cli"
	"github.com/thenoetrevino/plantel/internal/types"
)

// AssignCmd returns the assign command
func AssignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Move an athlete to a program",
		Long: `Move an athlete into a program, or out of every program with --program=0.

Examples:
  # Append athlete 3 to program 2
  plantel assign --athlete=3 --program=2

  # Put athlete 3 first in program 2
  plantel assign --athlete=3 --program=2 --position=0

  # Unassign athlete 3
  plantel assign --athlete=3 --program=0
`,
		RunE: runAssign,
	}

	cmd.Flags().Int("athlete", 0, "Athlete ID (required)")
	cmd.Flags().Int("program", 0, "Destination program ID, 0 to unassign (required)")
	cmd.Flags().Int("position", plantelboard.EndOfColumn, "Position in the destination program (default: end)")
	_ = cmd.MarkFlagRequired("athlete")
	_ = cmd.MarkFlagRequired("program")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAssign(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)

	athleteID, _ := cmd.Flags().GetInt("athlete")
	programID, _ := cmd.Flags().GetInt("program")
	position, _ := cmd.Flags().GetInt("position")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	b := plantelboard.New(cliInstance.Client)
	if err := b.Load(ctx); err != nil {
		return formatter.Fail(err)
	}

	commit, err := b.Stage(plantelboard.Move{
		Athlete: types.AthleteIDFromInt(athleteID),
		To:      types.ProgramIDFromInt(programID),
		Index:   position,
	})
	if err != nil {
		return formatter.Fail(err)
	}
	if err := commit.Confirm(ctx); err != nil {
		return formatter.Fail(err)
	}

	mv := commit.Move()
	if formatter.Quiet {
		formatter.Printf("%d\n", mv.Athlete)
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("assignment", map[string]any{
			"athlete_id": mv.Athlete.ToInt(),
			"from":       mv.From.ToInt(),
			"to":         mv.To.ToInt(),
			"position":   mv.Index,
			"changed":    !commit.Noop(),
		})
	}

	athlete, _ := b.Registry().Get(mv.Athlete)
	if commit.Noop() {
		formatter.Printf("%s is already there\n", athlete.FullName())
		return nil
	}
	formatter.Printf("%s moved to %s\n", athlete.FullName(), destination(b, mv))
	return nil
}

func destination(b *plantelboard.Board, mv plantelboard.Move) string {
	if mv.To == plantelboard.Unassigned {
		return plantelboard.UnassignedLabel
	}
	for _, c := range b.Columns() {
		if c.ID == mv.To {
			return fmt.Sprintf("%s (position %d)", c.Label, mv.Index+1)
		}
	}
	return fmt.Sprintf("program %d", mv.To)
}
