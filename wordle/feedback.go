package wordle

import (
	"fmt"
	"strings"
)

// WordLength is the number of letters in every wordle word
const WordLength = 5

// Mark is the color given to one letter of a guess
type Mark uint8

const (
	Absent Mark = iota
	Present
	Exact
)

// Feedback is the answer to a guess, one Mark for each letter
type Feedback [WordLength]Mark

// Solved is the answer to a correct guess
var Solved = Feedback{Exact, Exact, Exact, Exact, Exact}

func (m Mark) Valid() bool {
	return m <= Exact
}

// String renders the mark as the square shown in a shared wordle result
func (m Mark) String() string {
	switch m {
	case Absent:
		return "⬜"
	case Present:
		return "🟨"
	case Exact:
		return "🟩"
	}
	return fmt.Sprintf("Mark(%d)", uint8(m))
}

// Letter renders the mark as r, y or g
func (m Mark) Letter() byte {
	switch m {
	case Absent:
		return 'r'
	case Present:
		return 'y'
	case Exact:
		return 'g'
	}
	return '?'
}

func (f Feedback) Validate() error {
	for i, m := range f {
		if !m.Valid() {
			return fmt.Errorf("%w: position %d has mark %d", ErrMalformedFeedback, i, m)
		}
	}
	return nil
}

func (f Feedback) Solved() bool {
	return f == Solved
}

func (f Feedback) String() string {
	var b strings.Builder
	for _, m := range f {
		b.WriteString(m.String())
	}
	return b.String()
}

// Letters renders the feedback in the r,y,g form like rrygg
func (f Feedback) Letters() string {
	ret := make([]byte, WordLength)
	for i, m := range f {
		ret[i] = m.Letter()
	}
	return string(ret)
}

// Evaluate returns the feedback wordle gives for guess when the answer is solution.
// Duplicate letters are marked Present left to right only while the solution has
// letters left over after the Exact matches, the rest are Absent.
func Evaluate(guess, solution string) Feedback {
	if len(guess) != WordLength || len(solution) != WordLength {
		panic("not 5 letter word: " + guess + " " + solution)
	}
	var ret Feedback
	var unclaimed [256]int
	for i := range WordLength {
		if guess[i] == solution[i] {
			ret[i] = Exact
		} else {
			unclaimed[solution[i]]++
		}
	}
	for i := range WordLength {
		if ret[i] == Exact {
			continue
		}
		if unclaimed[guess[i]] > 0 {
			ret[i] = Present
			unclaimed[guess[i]]--
		} else {
			ret[i] = Absent
		}
	}
	return ret
}

// square spellings found in pasted results, longest first so the emoji variation
// selector and slack names are consumed whole
var markSpellings = []struct {
	text string
	mark Mark
}{
	{":white_large_square:", Absent},
	{":black_large_square:", Absent},
	{":large_yellow_square:", Present},
	{":large_green_square:", Exact},
	{"⬜️", Absent},
	{"⬛️", Absent},
	{"⬜", Absent},
	{"⬛", Absent},
	{"🟨", Present},
	{"🟩", Exact},
	{"r", Absent},
	{"b", Absent},
	{"y", Present},
	{"g", Exact},
}

// ParseFeedback reads a row of five marks.  The squares of a shared result, their
// slack names and the letters r (or b), y, g are accepted and may be mixed.
func ParseFeedback(s string) (Feedback, error) {
	var ret Feedback
	rest := strings.TrimSpace(s)
	count := 0
	for rest != "" {
		matched := false
		for _, spelling := range markSpellings {
			if strings.HasPrefix(rest, spelling.text) {
				if count == WordLength {
					return Feedback{}, fmt.Errorf("%w: more than %d marks in %q", ErrMalformedFeedback, WordLength, s)
				}
				ret[count] = spelling.mark
				count++
				rest = rest[len(spelling.text):]
				matched = true
				break
			}
		}
		if !matched {
			return Feedback{}, fmt.Errorf("%w: can not parse %q", ErrMalformedFeedback, s)
		}
	}
	if count != WordLength {
		return Feedback{}, fmt.Errorf("%w: %d marks in %q", ErrMalformedFeedback, count, s)
	}
	return ret, nil
}
