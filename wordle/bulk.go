package wordle

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// PuzzleResult is one game of a bulk run, Number is the puzzle number
type PuzzleResult struct {
	Number   int
	Solution string
	Result   Result
	Err      error
}

type BulkSummary struct {
	Puzzles      int
	TotalGuesses int
	Successes    int
	Exhausted    int
	// Failed counts games that ended with an error other than ErrExhausted
	Failed  int
	Results []PuzzleResult
}

func (b BulkSummary) Average() float64 {
	if b.Puzzles == 0 {
		return 0
	}
	return float64(b.TotalGuesses) / float64(b.Puzzles)
}

func (b BulkSummary) SuccessRate() float64 {
	if b.Puzzles == 0 {
		return 0
	}
	return 100 * float64(b.Successes) / float64(b.Puzzles)
}

func (b BulkSummary) String() string {
	return fmt.Sprintf("Did %d puzzles in %d total guesses (%.1f avg) (successes=%d (%.2f%%))",
		b.Puzzles, b.TotalGuesses, b.Average(), b.Successes, b.SuccessRate())
}

// Bulk solves puzzles first through first+len(solutions)-1, workers at a time.
// Games are independent, a failed game is counted and the run continues.  done
// is called after each game when not nil, possibly from several goroutines.
func (e *Engine) Bulk(ctx context.Context, first int, solutions []string, workers int, done func(PuzzleResult)) (BulkSummary, error) {
	// compute the shared starting word before the games start
	if _, err := e.StartingWord(); err != nil {
		return BulkSummary{}, err
	}
	results := make([]PuzzleResult, len(solutions))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, solution := range solutions {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := e.Solve(solution)
			results[i] = PuzzleResult{Number: first + i, Solution: solution, Result: result, Err: err}
			if done != nil {
				done(results[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BulkSummary{}, err
	}

	summary := BulkSummary{Puzzles: len(results), Results: results}
	for _, r := range results {
		summary.TotalGuesses += r.Result.Rounds
		switch {
		case r.Err == nil:
			summary.Successes++
		case errors.Is(r.Err, ErrExhausted):
			summary.Exhausted++
		default:
			summary.Failed++
		}
	}
	return summary, nil
}
