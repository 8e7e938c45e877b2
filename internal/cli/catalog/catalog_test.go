package catalog

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"charm.land/huh/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/plantel/internal/cli"
	"github.com/thenoetrevino/plantel/internal/cli/forms"
	clitest "github.com/thenoetrevino/plantel/internal/testutil/cli"
)

// Seeded catalog ids: categories 1-2, sports 3-4, consulting rooms 5-6,
// responsibles 7-8.

func TestListRecords(t *testing.T) {
	_, c := clitest.SetupCLITest(t)

	t.Run("human-readable", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, c, ListCmd(), []string{"sports"})
		require.NoError(t, err)
		assert.Contains(t, output, "Natación")
		assert.Contains(t, output, "Atletismo")
	})

	t.Run("quiet", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, c, ListCmd(), []string{"consulting-rooms", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, []string{"5", "6"}, strings.Fields(output))
	})

	t.Run("appointments go through the same command", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, c, ListCmd(), []string{"appointments", "--quiet"})
		require.NoError(t, err)
		assert.Len(t, strings.Fields(output), 12)
	})

	t.Run("unknown resource", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, c, ListCmd(), []string{"pets"})
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})
}

func TestGetRecord(t *testing.T) {
	_, c := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, c, GetCmd(), []string{"responsibles", "7"})
	require.NoError(t, err)
	assert.Contains(t, output, "laura@clinica.mx")
	assert.Contains(t, output, "specialty")

	_, err = clitest.ExecuteCLICommand(t, c, GetCmd(), []string{"responsibles", "99"})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

	_, err = clitest.ExecuteCLICommand(t, c, GetCmd(), []string{"responsibles", "abc"})
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestCreateRecord(t *testing.T) {
	_, c := clitest.SetupCLITest(t)

	t.Run("creates with typed fields", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, c, CreateCmd(), []string{
			"consulting-rooms", "--field", "name=Sala 3", "--field", "floor:=2", "--field", "capacity:=4", "--json",
		})
		require.NoError(t, err)

		var result struct {
			Data struct {
				ID       int    `json:"id"`
				Name     string `json:"name"`
				Capacity int    `json:"capacity"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal([]byte(output), &result))
		assert.Positive(t, result.Data.ID)
		assert.Equal(t, "Sala 3", result.Data.Name)
		assert.Equal(t, 4, result.Data.Capacity)
	})

	t.Run("missing name fails validation before the request", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, c, CreateCmd(), []string{"sports"})
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
		assert.Contains(t, output, "name")
	})

	t.Run("field of the wrong type", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, c, CreateCmd(), []string{
			"consulting-rooms", "--field", "name=Sala", "--field", "capacity=four",
		})
		assert.Equal(t, cli.ExitDataErr, cli.ExitCode(err))
	})
}

func TestCreateRecord_Interactive(t *testing.T) {
	_, c := clitest.SetupCLITest(t)

	tests := []struct {
		name      string
		args      []string
		runResult error
		wantCode  int
		wantOut   string
	}{
		{
			name:     "prefilled sports group with picked references",
			args:     []string{"sports-groups", "-i", "--field", "name=Natación juvenil", "--field", "sport_id:=3", "--field", "category_id:=1"},
			wantCode: cli.ExitSuccess,
			wantOut:  "Created sports-groups 'Natación juvenil'",
		},
		{
			name:     "unanswered reference fails validation",
			args:     []string{"sports-groups", "--interactive", "--field", "name=Boxeo libre"},
			wantCode: cli.ExitValidation,
		},
		{
			name:      "aborted form creates nothing",
			args:      []string{"sports", "-i", "--field", "name=Esgrima"},
			runResult: huh.ErrUserAborted,
			wantCode:  cli.ExitFailure,
		},
		{
			name:     "unknown field",
			args:     []string{"sports", "-i", "--field", "color=red"},
			wantCode: cli.ExitUsage,
		},
		{
			name:     "appointments are booked elsewhere",
			args:     []string{"appointments", "-i"},
			wantCode: cli.ExitUsage,
		},
		{
			name:     "quiet output is refused",
			args:     []string{"sports", "-i", "--quiet"},
			wantCode: cli.ExitUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := forms.Run
			forms.Run = func(ctx context.Context, form *huh.Form) error {
				require.NotNil(t, form)
				return tt.runResult
			}
			t.Cleanup(func() { forms.Run = original })

			output, err := clitest.ExecuteCLICommand(t, c, CreateCmd(), tt.args)
			assert.Equal(t, tt.wantCode, cli.ExitCode(err))
			if tt.wantOut != "" {
				assert.Contains(t, output, tt.wantOut)
			}
		})
	}
}

func TestDeleteRecords(t *testing.T) {
	_, c := clitest.SetupCLITest(t)

	// sport 3 becomes referenced by a sports group
	_, err := clitest.ExecuteCLICommand(t, c, CreateCmd(), []string{
		"sports-groups", "--field", "name=Sub-17", "--field", "sport_id:=3", "--field", "category_id:=2",
	})
	require.NoError(t, err)

	output, err := clitest.ExecuteCLICommand(t, c, DeleteCmd(), []string{"sports", "4", "3", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitDataErr, cli.ExitCode(err), "in-use record maps to a conflict")

	var result struct {
		Result struct {
			Deleted []int             `json:"deleted"`
			Failed  map[string]string `json:"failed"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.Equal(t, []int{4}, result.Result.Deleted)
	assert.Contains(t, result.Result.Failed, "3")

	output, err = clitest.ExecuteCLICommand(t, c, ListCmd(), []string{"sports", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, strings.Fields(output))
}
