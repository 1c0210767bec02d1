package wordle

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/bits-and-blooms/bitset"
	mapset "github.com/deckarep/golang-set"
	"github.com/powellquiring/bottle/letters"
)

// WordleWord is an index into the dictionary
type WordleWord uint16

// WordList is a set of dictionary words, iteration is in dictionary order
type WordList bitset.BitSet

// Dictionary is the sorted set of all words that may be guessed.  It is built once
// and then only read, so one dictionary can be shared by many solvers.
type Dictionary struct {
	words        []string
	stringToWord map[string]WordleWord
	letterSets   []letters.Set // letterSets[w] letters that appear in words[w]
	solutions    []string
	solutionList *WordList
}

// ValidWord is true for a five letter lowercase word
func ValidWord(word string) bool {
	if len(word) != WordLength {
		return false
	}
	for i := range WordLength {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return true
}

func checkWord(word string) error {
	if !ValidWord(word) {
		return fmt.Errorf("%w: %q is not 5 lowercase letters", ErrInvalidWord, word)
	}
	return nil
}

// NewDictionary merges the solutions into the other accepted guesses, removes
// duplicates and sorts.  The solutions keep their order, it is the puzzle order.
func NewDictionary(solutions, guesses []string) (*Dictionary, error) {
	all := mapset.NewSet()
	for _, word := range solutions {
		if err := checkWord(word); err != nil {
			return nil, fmt.Errorf("%w: solution: %w", ErrInvalidDictionary, err)
		}
		all.Add(word)
	}
	for _, word := range guesses {
		if err := checkWord(word); err != nil {
			return nil, fmt.Errorf("%w: guess: %w", ErrInvalidDictionary, err)
		}
		all.Add(word)
	}
	if all.Cardinality() == 0 {
		return nil, fmt.Errorf("%w: no words", ErrInvalidDictionary)
	}
	if all.Cardinality() > math.MaxUint16+1 {
		return nil, fmt.Errorf("%w: %d words is more than supported", ErrInvalidDictionary, all.Cardinality())
	}
	words := make([]string, 0, all.Cardinality())
	for word := range all.Iter() {
		words = append(words, word.(string))
	}
	sort.Strings(words)

	d := &Dictionary{
		words:        words,
		stringToWord: make(map[string]WordleWord, len(words)),
		letterSets:   make([]letters.Set, len(words)),
		solutions:    append([]string(nil), solutions...),
	}
	for i, word := range words {
		d.stringToWord[word] = WordleWord(i)
		d.letterSets[i] = letters.Of(word)
	}
	d.solutionList = d.WordlistEmpty()
	for _, word := range solutions {
		d.solutionList.Insert(d.stringToWord[word])
	}
	return d, nil
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

func (d *Dictionary) Word(wordleWordString string) (WordleWord, bool) {
	ret, ok := d.stringToWord[wordleWordString]
	return ret, ok
}

func (d *Dictionary) String(word WordleWord) string {
	return d.words[word]
}

// Solutions returns the puzzle answers in puzzle order
func (d *Dictionary) Solutions() []string {
	return d.solutions
}

// SolutionList returns the puzzle answers as a WordList
func (d *Dictionary) SolutionList() *WordList {
	return d.solutionList.Clone()
}

func (d *Dictionary) WordlistAll() *WordList {
	wordsLen := uint(len(d.words))
	ret := bitset.New(wordsLen)
	for i := range wordsLen {
		ret.Set(i)
	}
	return (*WordList)(ret)
}

func (d *Dictionary) WordlistEmpty() *WordList {
	ret := bitset.New(uint(len(d.words)))
	return (*WordList)(ret)
}

func (d *Dictionary) WordlistFromStrings(words []string) (*WordList, error) {
	ret := d.WordlistEmpty()
	for _, word := range words {
		wordleWord, ok := d.Word(word)
		if !ok {
			return nil, fmt.Errorf("%w: %q not in dictionary", ErrInvalidWord, word)
		}
		ret.Insert(wordleWord)
	}
	return ret, nil
}

func (d *Dictionary) WordlistStrings(wordlist *WordList) []string {
	ret := make([]string, 0, wordlist.Len())
	for _, word := range wordlist.Range {
		ret = append(ret, d.String(word))
	}
	return ret
}

// Filter returns the words of the list that are possible given the constraints
func (d *Dictionary) Filter(wordlist *WordList, c Constraints) *WordList {
	ret := d.WordlistEmpty()
	for _, word := range wordlist.Range {
		if c.possible(d.words[word], d.letterSets[word]) {
			ret.Insert(word)
		}
	}
	return ret
}

// count of words in the list that are possible given the constraints
func (d *Dictionary) countPossible(words []WordleWord, c *Constraints) int {
	count := 0
	for _, word := range words {
		if c.possible(d.words[word], d.letterSets[word]) {
			count++
		}
	}
	return count
}

// Fingerprint identifies a strategy playing over a word list.  A change to any
// word changes the fingerprint.
func (d *Dictionary) Fingerprint(strategy Strategy, wordlist *WordList) string {
	hash := sha256.Sum256([]byte(strings.Join(d.WordlistStrings(wordlist), "\n")))
	return strategy.String() + hex.EncodeToString(hash[:])
}

func (wl *WordList) Range(yield func(i int, wordleWord WordleWord) bool) {
	bs := (*bitset.BitSet)(wl)
	i := 0
	for wordleWord, ok := bs.NextSet(0); ok; wordleWord, ok = bs.NextSet(wordleWord + 1) {
		if !yield(i, WordleWord(wordleWord)) {
			return
		}
		i++
	}
}

func (wl *WordList) Words() []WordleWord {
	ret := make([]WordleWord, 0, wl.Len())
	for _, wordleWord := range wl.Range {
		ret = append(ret, wordleWord)
	}
	return ret
}

func (wl *WordList) Len() int {
	bs := (*bitset.BitSet)(wl)
	return int(bs.Count())
}

func (wl *WordList) Insert(word WordleWord) {
	bs := (*bitset.BitSet)(wl)
	bs.Set(uint(word))
}

func (wl *WordList) Contains(word WordleWord) bool {
	bs := (*bitset.BitSet)(wl)
	return bs.Test(uint(word))
}

func (wl *WordList) Clone() *WordList {
	bs := (*bitset.BitSet)(wl)
	return (*WordList)(bs.Clone())
}

func (wl *WordList) Equal(other *WordList) bool {
	return (*bitset.BitSet)(wl).Equal((*bitset.BitSet)(other))
}
