package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalibrationCmd(t *testing.T) {
	input := writeInput(t, "1abc2\npqr3stu8vwx\na1b2c3d4e5f\ntreb7uchet")

	cmd, buf := newTestCmd(t, newCalibrationCmd())
	cmd.SetArgs([]string{"calibration", input})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Calibration sum: 142")
}

func TestCalibrationCmd_WithWords(t *testing.T) {
	input := writeInput(t, "two1nine\nzoneight234")

	cmd, buf := newTestCmd(t, newCalibrationCmd())
	cmd.SetArgs([]string{"calibration", "--words", input})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Calibration sum: 43")

	t.Cleanup(func() { calibrationWordsFlag = false })
}

func TestCubesCmd_DefaultBag(t *testing.T) {
	input := writeInput(t, `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green`)

	cmd, buf := newTestCmd(t, newCubesCmd())
	cmd.SetArgs([]string{"cubes", input})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Sum of viable game IDs: 8")
}

func TestCubesCmd_MalformedLine(t *testing.T) {
	cmd, _ := newTestCmd(t, newCubesCmd())
	cmd.SetArgs([]string{"cubes", writeInput(t, "Game 1: 3 orange")})

	require.Error(t, cmd.Execute())
}

func TestSchematicCmd(t *testing.T) {
	input := writeInput(t, "467..114..\n...*......\n..35..633.\n......#...\n617*......\n.....+.58.\n..592.....\n......755.\n...$.*....\n.664.598..")

	cmd, buf := newTestCmd(t, newSchematicCmd())
	cmd.SetArgs([]string{"schematic", input})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Sum of part numbers: 4361")
}

func TestScratchcardsCmd(t *testing.T) {
	input := writeInput(t, `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11`)

	cmd, buf := newTestCmd(t, newScratchcardsCmd())
	cmd.SetArgs([]string{"scratchcards", input})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Total points: 13")

	cascade, cascadeBuf := newTestCmd(t, newScratchcardsCmd())
	cascade.SetArgs([]string{"scratchcards", "--cascade", input})

	require.NoError(t, cascade.Execute())
	assert.Contains(t, cascadeBuf.String(), "Total scratchcards: 30")

	t.Cleanup(func() { cascadeFlag = false })
}
