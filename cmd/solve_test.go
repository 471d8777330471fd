package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveCmd_ReportsLowestLocation(t *testing.T) {
	cmd, buf := newTestCmd(t, newSolveCmd())
	cmd.SetArgs([]string{"solve", writeInput(t, exampleAlmanac)})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "LOWEST")
	assert.Contains(t, output, "35")
}

func TestSolveCmd_ParallelWorkersMatchSequential(t *testing.T) {
	sequentialCmd, sequentialBuf := newTestCmd(t, newSolveCmd())
	sequentialCmd.SetArgs([]string{"solve", writeInput(t, exampleAlmanac)})
	require.NoError(t, sequentialCmd.Execute())

	parallelCmd, parallelBuf := newTestCmd(t, newSolveCmd())
	parallelCmd.SetArgs([]string{"solve", "--parallel", "4", writeInput(t, exampleAlmanac)})
	require.NoError(t, parallelCmd.Execute())

	// Per-seed completion lines interleave nondeterministically; the
	// final table is ordered and must match.
	assert.Contains(t, sequentialBuf.String(), "LOWEST")
	assert.Contains(t, parallelBuf.String(), "LOWEST")
	assert.Contains(t, parallelBuf.String(), "35")

	t.Cleanup(func() { solveParallelFlag = 1 })
}

func TestSolveCmd_SingleSeed(t *testing.T) {
	cmd, buf := newTestCmd(t, newSolveCmd())
	cmd.SetArgs([]string{"solve", writeInput(t, "seeds: 14\n\nseed-to-soil map:\n50 98 2\n52 50 48\n")})

	require.NoError(t, cmd.Execute())

	// 14 is unmapped by [98,100) and outside [50,98), so it passes
	// through and is its own minimum.
	assert.Contains(t, buf.String(), "14")
}
