package program

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clitest "github.com/thenoetrevino/plantel/internal/testutil/cli"
)

func TestListPrograms(t *testing.T) {
	_, c := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, c, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "1. Fuerza (ID: 1, athletes: 2)")
	assert.Contains(t, output, "3. Nutrición (ID: 3, athletes: 0)")

	output, err = clitest.ExecuteCLICommand(t, c, ListCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, strings.Fields(output))
}
