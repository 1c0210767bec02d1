package wordle

import "errors"

var (
	// ErrExhausted is returned when six guesses were made without an all Exact answer
	ErrExhausted = errors.New("not solved in 6 guesses")
	// ErrEmptyCandidateSet is returned when no dictionary word is consistent with the answers so far
	ErrEmptyCandidateSet = errors.New("no possible words remain")
	// ErrMalformedFeedback is returned for an answer that is not 5 Absent/Present/Exact marks
	ErrMalformedFeedback = errors.New("malformed feedback")
	ErrInvalidWord       = errors.New("invalid word")
	ErrInvalidDictionary = errors.New("invalid dictionary")
	// ErrGameOver is returned when a solver that already finished is advanced
	ErrGameOver = errors.New("game is over")
)
