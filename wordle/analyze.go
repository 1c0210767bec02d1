package wordle

import "fmt"

// GuessAnswer is a row of a game played elsewhere, Answer in any form ParseFeedback reads
type GuessAnswer struct {
	Guess  string
	Answer string
}

// Replay applies rows played elsewhere to a new solver.  The solver is returned
// ready for its next guess unless the rows finished the game.
func (e *Engine) Replay(guessAnswers []GuessAnswer) (*Solver, Outcome, error) {
	s := e.NewSolver()
	outcome := Outcome{Status: StatusContinue}
	for i, ga := range guessAnswers {
		fb, err := ParseFeedback(ga.Answer)
		if err != nil {
			return s, outcome, fmt.Errorf("row %d: %w", i+1, err)
		}
		outcome, err = s.AdvanceWith(ga.Guess, fb)
		if err != nil {
			return s, outcome, fmt.Errorf("row %d %s %s: %w", i+1, ga.Guess, ga.Answer, err)
		}
		if outcome.Status != StatusContinue && i != len(guessAnswers)-1 {
			return s, outcome, fmt.Errorf("row %d: %w", i+2, ErrGameOver)
		}
	}
	return s, outcome, nil
}

// PlayReturnPossible is the best next guess after the rows and the words still possible
func (e *Engine) PlayReturnPossible(guessAnswers []GuessAnswer) (string, []string, error) {
	s, outcome, err := e.Replay(guessAnswers)
	if err != nil {
		return "", nil, err
	}
	if outcome.Status != StatusContinue {
		return "", s.Possible(), fmt.Errorf("game is %s: %w", outcome.Status, ErrGameOver)
	}
	next, err := s.NextGuess()
	if err != nil {
		return "", s.Possible(), err
	}
	return next, s.Possible(), nil
}
