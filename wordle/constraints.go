package wordle

import (
	"fmt"
	"strings"

	"github.com/powellquiring/bottle/letters"
)

// Constraints is what is known about the solution: the letters still possible in
// each position and the letters that must appear somewhere but have not been placed.
type Constraints struct {
	Allowed  [WordLength]letters.Set
	Required letters.Set
}

func NewConstraints() Constraints {
	var ret Constraints
	for i := range ret.Allowed {
		ret.Allowed[i] = letters.All()
	}
	return ret
}

// Pinned is true when position i can only be one letter
func (c Constraints) Pinned(i int) bool {
	return c.Allowed[i].Count() == 1
}

// Apply returns the constraints after guess received feedback.  A malformed guess or
// feedback is rejected and c is returned unchanged.
//
// Exact pins the position and satisfies a required letter.  Present removes the
// letter from the position and requires it elsewhere.  Absent removes the letter
// from every position that is not pinned, or only from its own position when the
// same guess found the letter Present or Exact elsewhere (a duplicate letter).
func (c Constraints) Apply(guess string, fb Feedback) (Constraints, error) {
	if err := checkWord(guess); err != nil {
		return c, err
	}
	if err := fb.Validate(); err != nil {
		return c, err
	}
	var found letters.Set
	for i, m := range fb {
		if m != Absent {
			found = found.Add(guess[i])
		}
	}
	ret := c
	for i, m := range fb {
		if m == Exact {
			ret.Allowed[i] = letters.Of(guess[i : i+1])
			ret.Required = ret.Required.Remove(guess[i])
		}
	}
	for i, m := range fb {
		if m == Present {
			ret.Allowed[i] = ret.Allowed[i].Remove(guess[i])
			ret.Required = ret.Required.Add(guess[i])
		}
	}
	for i, m := range fb {
		if m != Absent {
			continue
		}
		letter := guess[i]
		if found.Has(letter) {
			if !ret.Pinned(i) {
				ret.Allowed[i] = ret.Allowed[i].Remove(letter)
			}
			continue
		}
		for j := range ret.Allowed {
			if !ret.Pinned(j) {
				ret.Allowed[j] = ret.Allowed[j].Remove(letter)
			}
		}
	}
	return ret, nil
}

// IsPossible is true when word contains every required letter and each of its
// letters is allowed in its position
func (c Constraints) IsPossible(word string) bool {
	if len(word) != WordLength {
		return false
	}
	return c.possible(word, letters.Of(word))
}

func (c *Constraints) possible(word string, wordLetters letters.Set) bool {
	if !c.Required.IsSubsetOf(wordLetters) {
		return false
	}
	for i := range WordLength {
		if !c.Allowed[i].Has(word[i]) {
			return false
		}
	}
	return true
}

func (c Constraints) String() string {
	var b strings.Builder
	for i, allowed := range c.Allowed {
		if i > 0 {
			b.WriteByte(' ')
		}
		if allowed == letters.All() {
			b.WriteByte('*')
		} else {
			b.WriteString(allowed.String())
		}
	}
	fmt.Fprintf(&b, " required:%s", c.Required)
	return b.String()
}
