package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/powellquiring/bottle/wordle"
	"github.com/powellquiring/bottle/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuessAnswers(t *testing.T) {
	rows, err := guessAnswers([]string{"crane", "rrrrr", "pilot", "🟩🟩🟩🟩🟩"})
	require.NoError(t, err)
	assert.Equal(t, []wordle.GuessAnswer{{Guess: "crane", Answer: "rrrrr"}, {Guess: "pilot", Answer: "🟩🟩🟩🟩🟩"}}, rows)

	for _, args := range [][]string{
		{"crane"},
		{"Crane", "rrrrr"},
		{"crane", "rrrr"},
	} {
		_, err := guessAnswers(args)
		assert.Error(t, err, args)
	}
}

func TestWriteGame(t *testing.T) {
	result := wordle.Result{
		Rounds:    2,
		Success:   true,
		Guesses:   []string{"house", "pilot"},
		Feedbacks: []wordle.Feedback{{wordle.Absent, wordle.Present, wordle.Absent, wordle.Absent, wordle.Absent}, wordle.Solved},
	}
	var out bytes.Buffer
	writeGame(&out, 12, result, false)
	assert.Equal(t, "Wordle #12 2/6*\nHOUSE\n⬜🟨⬜⬜⬜\nPILOT\n🟩🟩🟩🟩🟩\n", out.String())

	out.Reset()
	result.Success = false
	writeGame(&out, 12, result, true)
	assert.Equal(t, "Wordle #12 X/6*\n⬜🟨⬜⬜⬜\n🟩🟩🟩🟩🟩\n", out.String())
}

func TestGlobalConfiguration(t *testing.T) {
	dir := t.TempDir()
	wordsPath := filepath.Join(dir, "words.json")
	require.NoError(t, os.WriteFile(wordsPath, []byte(`{"solutions": ["crane", "house", "pilot"]}`), 0o644))
	cachePath := filepath.Join(dir, "cache.json")

	_, err := globalConfiguration(globalFlags{strategy: "simple"})
	assert.Error(t, err)
	_, err = globalConfiguration(globalFlags{wordsPath: wordsPath, strategy: "best"})
	assert.Error(t, err)

	config, err := globalConfiguration(globalFlags{wordsPath: wordsPath, cachePath: cachePath, strategy: "simple"})
	require.NoError(t, err)
	require.NoError(t, play(config, 2, false, false))
	config.saveCache()

	again, err := globalConfiguration(globalFlags{wordsPath: wordsPath, cachePath: cachePath, strategy: "simple"})
	require.NoError(t, err)
	assert.Equal(t, 1, again.cache.Len())
	assert.ErrorIs(t, play(again, 3, false, false), words.ErrNoPuzzle)
}
