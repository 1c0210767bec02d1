package wordle

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// MaxGuesses is the number of guesses allowed in a game
const MaxGuesses = 6

// StartingWordCache remembers the first guess for a strategy and word list so the
// full scoring pass over the dictionary is not repeated.  A miss is not an error.
type StartingWordCache interface {
	Get(key string) (string, bool)
	Put(key string, word string)
}

type Options struct {
	Strategy Strategy
	// UseSolutionsList plays with only the puzzle answers as possible words
	UseSolutionsList bool
	Cache            StartingWordCache
	// Debug receives the score table of every round when not nil
	Debug io.Writer
}

// Engine holds everything shared by the games played with one dictionary and
// strategy.  It is safe to start solvers from many goroutines.
type Engine struct {
	dict    *Dictionary
	opts    Options
	initial *WordList
	weights *LetterWeights
	key     string

	group        singleflight.Group
	mu           sync.Mutex
	startingWord string
	fullPasses   atomic.Int32
}

func NewEngine(d *Dictionary, opts Options) (*Engine, error) {
	if opts.Strategy < Simple || opts.Strategy > Worst {
		return nil, fmt.Errorf("unknown strategy %d", opts.Strategy)
	}
	initial := d.WordlistAll()
	if opts.UseSolutionsList {
		initial = d.SolutionList()
		if initial.Len() == 0 {
			return nil, fmt.Errorf("%w: solutions list is empty", ErrInvalidDictionary)
		}
	}
	return &Engine{
		dict:    d,
		opts:    opts,
		initial: initial,
		weights: NewLetterWeights(d, initial),
		key:     d.Fingerprint(opts.Strategy, initial),
	}, nil
}

func (e *Engine) Dictionary() *Dictionary {
	return e.dict
}

func (e *Engine) Strategy() Strategy {
	return e.opts.Strategy
}

// Key is the starting word cache key, the strategy and a hash of the starting word list
func (e *Engine) Key() string {
	return e.key
}

func (e *Engine) debugf(format string, args ...any) {
	if e.opts.Debug != nil {
		fmt.Fprintf(e.opts.Debug, format, args...)
	}
}

// StartingWord is the first guess of every game.  It comes from the cache when
// possible, otherwise it is computed once and stored in the cache.
func (e *Engine) StartingWord() (string, error) {
	e.mu.Lock()
	word := e.startingWord
	e.mu.Unlock()
	if word != "" {
		return word, nil
	}
	v, err, _ := e.group.Do(e.key, func() (any, error) {
		e.mu.Lock()
		word := e.startingWord
		e.mu.Unlock()
		if word != "" {
			return word, nil
		}
		if e.opts.Cache != nil {
			if cached, ok := e.opts.Cache.Get(e.key); ok {
				if w, ok := e.dict.Word(cached); ok && e.initial.Contains(w) {
					e.remember(cached)
					return cached, nil
				}
			}
		}
		e.debugf("starting word not found in cache; scoring %d words\n", e.initial.Len())
		e.fullPasses.Add(1)
		best, err := e.bestWord(e.initial, NewConstraints())
		if err != nil {
			return "", err
		}
		word = e.dict.String(best)
		e.remember(word)
		if e.opts.Cache != nil {
			e.opts.Cache.Put(e.key, word)
		}
		return word, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (e *Engine) remember(word string) {
	e.mu.Lock()
	e.startingWord = word
	e.mu.Unlock()
}

func (e *Engine) bestWord(possible *WordList, c Constraints) (WordleWord, error) {
	scorer := NewScorer(e.dict, e.opts.Strategy, e.weights, possible, c)
	if e.opts.Debug == nil {
		return scorer.Best()
	}
	if scorer.positional != nil {
		scorer.positional.Print(e.opts.Debug)
	}
	ranked := scorer.Rank()
	for _, ws := range ranked {
		e.debugf("            %s -> %16.6f\n", ws.Word, ws.Score)
	}
	if len(ranked) == 0 {
		return 0, ErrEmptyCandidateSet
	}
	return ranked[0].Value, nil
}

// ScoreWords scores the possible words for the constraints, best first
func (e *Engine) ScoreWords(possible *WordList, c Constraints) []WordScore {
	return NewScorer(e.dict, e.opts.Strategy, e.weights, possible, c).Rank()
}

// GuessRecord is one row of a game
type GuessRecord struct {
	Guess    string
	Feedback Feedback
}

type Result struct {
	Rounds    int
	Success   bool
	Guesses   []string
	Feedbacks []Feedback
}

func (r Result) Records() []GuessRecord {
	ret := make([]GuessRecord, len(r.Guesses))
	for i := range r.Guesses {
		ret[i] = GuessRecord{Guess: r.Guesses[i], Feedback: r.Feedbacks[i]}
	}
	return ret
}

type Status int

const (
	StatusContinue Status = iota
	StatusSolved
	StatusExhausted
)

func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "continue"
	case StatusSolved:
		return "solved"
	case StatusExhausted:
		return "exhausted"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Outcome of one guess, Result is the game so far
type Outcome struct {
	Status Status
	Result Result
}

// Solver plays one game.  Call NextGuess, find the feedback for it and pass it
// to Advance until the outcome is not Continue.
type Solver struct {
	engine      *Engine
	constraints Constraints
	possible    *WordList
	guesses     []string
	feedbacks   []Feedback
	next        string
	done        bool
}

func (e *Engine) NewSolver() *Solver {
	return &Solver{
		engine:      e,
		constraints: NewConstraints(),
		possible:    e.initial.Clone(),
	}
}

// Round is the number of guesses made so far
func (s *Solver) Round() int {
	return len(s.guesses)
}

func (s *Solver) Constraints() Constraints {
	return s.constraints
}

func (s *Solver) PossibleWords() *WordList {
	return s.possible.Clone()
}

func (s *Solver) Possible() []string {
	return s.engine.dict.WordlistStrings(s.possible)
}

func (s *Solver) Done() bool {
	return s.done
}

func (s *Solver) Result() Result {
	solved := len(s.feedbacks) > 0 && s.feedbacks[len(s.feedbacks)-1].Solved()
	return Result{
		Rounds:    len(s.guesses),
		Success:   solved,
		Guesses:   append([]string(nil), s.guesses...),
		Feedbacks: append([]Feedback(nil), s.feedbacks...),
	}
}

// NextGuess is the starting word on the first round and the best scoring possible
// word after that
func (s *Solver) NextGuess() (string, error) {
	if s.done {
		return "", ErrGameOver
	}
	if s.next != "" {
		return s.next, nil
	}
	if len(s.guesses) == 0 {
		word, err := s.engine.StartingWord()
		if err != nil {
			return "", err
		}
		s.next = word
		return word, nil
	}
	if s.possible.Len() == 0 {
		return "", ErrEmptyCandidateSet
	}
	s.engine.debugf("round %d, %d possible words\n", len(s.guesses)+1, s.possible.Len())
	best, err := s.engine.bestWord(s.possible, s.constraints)
	if err != nil {
		return "", err
	}
	s.next = s.engine.dict.String(best)
	return s.next, nil
}

// Advance applies the feedback for the guess returned by NextGuess
func (s *Solver) Advance(fb Feedback) (Outcome, error) {
	guess, err := s.NextGuess()
	if err != nil {
		return Outcome{Status: StatusContinue, Result: s.Result()}, err
	}
	return s.AdvanceWith(guess, fb)
}

// AdvanceWith applies the feedback for a guess chosen by someone else
func (s *Solver) AdvanceWith(guess string, fb Feedback) (Outcome, error) {
	if s.done {
		return Outcome{Status: StatusContinue, Result: s.Result()}, ErrGameOver
	}
	c, err := s.constraints.Apply(guess, fb)
	if err != nil {
		return Outcome{Status: StatusContinue, Result: s.Result()}, err
	}
	s.guesses = append(s.guesses, guess)
	s.feedbacks = append(s.feedbacks, fb)
	s.next = ""
	if fb.Solved() {
		s.done = true
		return Outcome{Status: StatusSolved, Result: s.Result()}, nil
	}
	s.constraints = c
	s.possible = s.engine.dict.Filter(s.possible, c)
	if len(s.guesses) >= MaxGuesses {
		s.done = true
		return Outcome{Status: StatusExhausted, Result: s.Result()}, nil
	}
	if s.possible.Len() == 0 {
		s.done = true
		return Outcome{Status: StatusContinue, Result: s.Result()},
			fmt.Errorf("%w: after %s %s", ErrEmptyCandidateSet, guess, fb.Letters())
	}
	return Outcome{Status: StatusContinue, Result: s.Result()}, nil
}

// Solve plays a game against solution.  A game that is not solved in 6 guesses
// returns its result and ErrExhausted.
func (e *Engine) Solve(solution string) (Result, error) {
	if err := checkWord(solution); err != nil {
		return Result{}, err
	}
	s := e.NewSolver()
	for {
		guess, err := s.NextGuess()
		if err != nil {
			return s.Result(), err
		}
		outcome, err := s.AdvanceWith(guess, Evaluate(guess, solution))
		if err != nil {
			return outcome.Result, fmt.Errorf("solving %s: %w", solution, err)
		}
		switch outcome.Status {
		case StatusSolved:
			return outcome.Result, nil
		case StatusExhausted:
			return outcome.Result, fmt.Errorf("solving %s: %w", solution, ErrExhausted)
		}
	}
}
