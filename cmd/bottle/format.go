package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/TwiN/go-color"
	"github.com/powellquiring/bottle/transcript"
	"github.com/powellquiring/bottle/wordle"
)

// writeGame prints a game the way it is shared, share leaves out the guesses
func writeGame(w io.Writer, number int, result wordle.Result, share bool) {
	rounds := "X"
	if result.Success {
		rounds = strconv.Itoa(result.Rounds)
	}
	fmt.Fprintf(w, "Wordle #%d %s/6*\n", number, rounds)
	for _, record := range result.Records() {
		if !share {
			fmt.Fprintln(w, strings.ToUpper(record.Guess))
		}
		fmt.Fprintln(w, record.Feedback)
	}
}

func writeScores(w io.Writer, scores []wordle.WordScore) {
	for _, ws := range scores {
		fmt.Fprintf(w, "            %s -> %16.6f\n", ws.Word, ws.Score)
	}
}

func writeSummary(w io.Writer, summary wordle.BulkSummary) {
	fmt.Fprintln(w, color.InBold(summary.String()))
	for _, r := range summary.Results {
		if r.Err != nil {
			fmt.Fprintln(w, color.Ize(color.Red, fmt.Sprintf("#%d %s: %v", r.Number, r.Solution, r.Err)))
		}
	}
}

func writeTranscriptGame(w io.Writer, g transcript.Game) {
	mode := color.Ize(color.Green, g.Mode())
	if g.HardMode {
		mode = color.Ize(color.Red, g.Mode())
	}
	fmt.Fprintf(w, "%s played %s in %s\n",
		color.Ize(color.Green, g.Username),
		color.Ize(color.Yellow, fmt.Sprintf("Wordle #%d (%s)", g.Number, g.Date().Format("2006-01-02"))),
		mode)
	for _, row := range g.Rows {
		fmt.Fprintln(w, row)
	}
	fmt.Fprintln(w)
}
