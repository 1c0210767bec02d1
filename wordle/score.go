package wordle

import (
	"fmt"
	"io"
	"sort"

	"github.com/powellquiring/bottle/letters"
)

// Strategy selects how candidate words are scored
type Strategy int

const (
	// Simple scores by how much a word is expected to shrink the possible words
	Simple Strategy = iota
	// Weighted is Simple times the positional letter frequency of the possible words
	Weighted
	// Worst is Simple negated, it plays as badly as it can
	Worst
)

var strategyNames = []string{"simple", "weighted", "worst"}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

func ParseStrategy(name string) (Strategy, error) {
	for i, strategyName := range strategyNames {
		if name == strategyName {
			return Strategy(i), nil
		}
	}
	return Simple, fmt.Errorf("unknown strategy %q, expected one of %v", name, strategyNames)
}

// Tuned on wordle #282 by raising it until the puzzle passed.  At this size a
// consonant is nearly always preferred to a vowel.
const ConsonantBoost = 1.0

// score for a word that leaves nothing else possible.  Not infinity so the
// weights that follow still order such words.
const noRemainingScore = 30.0

var consonants = letters.Of("bcdfghjklmnprstvwxyz")

// LetterWeights is the share of all letter occurrences in a word list taken by each letter
type LetterWeights [letters.Alphabet]float64

func NewLetterWeights(d *Dictionary, wordlist *WordList) *LetterWeights {
	var counts [letters.Alphabet]int
	total := 0
	for _, word := range wordlist.Range {
		for _, letter := range []byte(d.String(word)) {
			counts[letter-'a']++
			total++
		}
	}
	ret := &LetterWeights{}
	if total == 0 {
		return ret
	}
	for i, count := range counts {
		ret[i] = float64(count) / float64(total)
	}
	return ret
}

// PositionalFrequencies[i][l] is the share of the words in a word list with letter l at position i
type PositionalFrequencies [WordLength][letters.Alphabet]float64

func NewPositionalFrequencies(d *Dictionary, wordlist *WordList) *PositionalFrequencies {
	ret := &PositionalFrequencies{}
	total := wordlist.Len()
	if total == 0 {
		return ret
	}
	for _, word := range wordlist.Range {
		s := d.String(word)
		for i := range WordLength {
			ret[i][s[i]-'a']++
		}
	}
	for i := range ret {
		for l := range ret[i] {
			ret[i][l] /= float64(total)
		}
	}
	return ret
}

// Print the frequencies, most frequent letter first for each position
func (p *PositionalFrequencies) Print(w io.Writer) {
	fmt.Fprintln(w, "letter frequencies:")
	for i := range p {
		order := make([]int, 0, letters.Alphabet)
		for l, freq := range p[i] {
			if freq > 0 {
				order = append(order, l)
			}
		}
		sort.SliceStable(order, func(a, b int) bool {
			return p[i][order[a]] > p[i][order[b]]
		})
		for _, l := range order {
			fmt.Fprintf(w, "\t%c\t%1.3f\n", 'a'+l, p[i][l])
		}
		fmt.Fprintln(w)
	}
}

type WordScore struct {
	Value WordleWord
	Word  string
	Score float64
}

// Scorer scores the possible words for one round
type Scorer struct {
	dict        *Dictionary
	strategy    Strategy
	weights     *LetterWeights
	positional  *PositionalFrequencies // only for Weighted
	constraints Constraints
	possible    []WordleWord
}

func NewScorer(d *Dictionary, strategy Strategy, weights *LetterWeights, possible *WordList, c Constraints) *Scorer {
	ret := &Scorer{
		dict:        d,
		strategy:    strategy,
		weights:     weights,
		constraints: c,
		possible:    possible.Words(),
	}
	if strategy == Weighted {
		ret.positional = NewPositionalFrequencies(d, possible)
	}
	return ret
}

// Score is higher for a better guess
func (s *Scorer) Score(word WordleWord) float64 {
	switch s.strategy {
	case Weighted:
		text := s.dict.String(word)
		frequency := 0.0
		for i := range WordLength {
			frequency += s.positional[i][text[i]-'a']
		}
		return s.simple(word) * frequency
	case Worst:
		return -s.simple(word)
	default:
		return s.simple(word)
	}
}

// simple assumes every letter of the word not already required will be Absent and
// scores the factor by which that shrinks the possible words, weighted toward
// common letters and consonants.
func (s *Scorer) simple(word WordleWord) float64 {
	remove := s.dict.letterSets[word].Difference(s.constraints.Required)
	hypothetical := Constraints{Required: s.constraints.Required}
	for i, allowed := range s.constraints.Allowed {
		switch {
		case allowed.Count() == 1:
			hypothetical.Allowed[i] = allowed
		case allowed.IsSubsetOf(remove):
			// every letter left here would be ruled out, assume an Exact instead
			assumed, _ := allowed.Min()
			hypothetical.Allowed[i] = letters.Set(0).Add(assumed)
		default:
			hypothetical.Allowed[i] = allowed.Difference(remove)
		}
	}
	remaining := s.dict.countPossible(s.possible, &hypothetical)
	score := noRemainingScore
	if remaining > 0 {
		score = float64(len(s.possible)) / float64(remaining)
	}

	text := s.dict.String(word)
	weight := 0.0
	consonantCount := 0.0
	for i := range WordLength {
		weight += s.weights[text[i]-'a']
		if consonants.Has(text[i]) {
			consonantCount += ConsonantBoost
		}
	}
	score *= weight
	score *= 1.0 + consonantCount*consonantCount
	return score
}

// Best returns the highest scoring possible word, the first in dictionary order on a tie
func (s *Scorer) Best() (WordleWord, error) {
	if len(s.possible) == 0 {
		return 0, ErrEmptyCandidateSet
	}
	best := s.possible[0]
	bestScore := s.Score(best)
	for _, word := range s.possible[1:] {
		if score := s.Score(word); score > bestScore {
			best, bestScore = word, score
		}
	}
	return best, nil
}

// Rank scores every possible word, best first.  Ties keep dictionary order.
func (s *Scorer) Rank() []WordScore {
	ret := make([]WordScore, len(s.possible))
	for i, word := range s.possible {
		ret[i] = WordScore{Value: word, Word: s.dict.String(word), Score: s.Score(word)}
	}
	sort.SliceStable(ret, func(i, j int) bool {
		return ret[i].Score > ret[j].Score
	})
	return ret
}
