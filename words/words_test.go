package words

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/powellquiring/bottle/wordle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "words.json", `{
  "solutions": ["cigar", "rebut", "sissy"],
  "guesses": ["aahed", "REBUT", "zonal"]
}`)
	lists, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"cigar", "rebut", "sissy"}, lists.Solutions)
	assert.Equal(t, []string{"aahed", "cigar", "rebut", "sissy", "zonal"}, lists.Dictionary)

	d, err := lists.NewDictionary()
	require.NoError(t, err)
	assert.Equal(t, 5, d.Len())
	assert.Equal(t, lists.Solutions, d.Solutions())
}

func TestLoadText(t *testing.T) {
	path := writeFile(t, "words.txt", "# answers\nrebut\ncigar\n\n  sissy \ncigar\n")
	lists, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"rebut", "cigar", "sissy", "cigar"}, lists.Solutions)
	assert.Equal(t, []string{"cigar", "rebut", "sissy"}, lists.Dictionary)
}

func TestLoadInvalid(t *testing.T) {
	for name, contents := range map[string]string{
		"broken.json":      `{"solutions": ["cigar"`,
		"nosolutions.json": `{"guesses": ["cigar"]}`,
		"notarray.json":    `{"solutions": "cigar"}`,
		"number.json":      `{"solutions": ["cigar", 5]}`,
		"short.txt":        "cigar\nreb\n",
		"empty.txt":        "\n# nothing\n",
	} {
		_, err := Load(writeFile(t, name, contents))
		assert.ErrorIs(t, err, wordle.ErrInvalidDictionary, name)
	}
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNumber(t *testing.T) {
	assert.Equal(t, 0, Number(DayZero))
	assert.Equal(t, 1, Number(time.Date(2021, time.June, 20, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, 282, Number(time.Date(2022, time.March, 28, 8, 0, 0, 0, time.Local)))
	assert.Equal(t, 282, Number(Date(282)))
	assert.Equal(t, time.Date(2022, time.March, 28, 0, 0, 0, 0, time.UTC), Date(282))
}

func TestSolutionFor(t *testing.T) {
	solutions := []string{"cigar", "rebut", "sissy"}
	word, err := SolutionFor(solutions, 1)
	require.NoError(t, err)
	assert.Equal(t, "rebut", word)
	_, err = SolutionFor(solutions, 3)
	assert.ErrorIs(t, err, ErrNoPuzzle)
	_, err = SolutionFor(solutions, -1)
	assert.ErrorIs(t, err, ErrNoPuzzle)
}
