// Package words loads the puzzle answers and accepted guesses and numbers the
// daily puzzles.
package words

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set"
	"github.com/powellquiring/bottle/wordle"
	"github.com/tidwall/gjson"
)

// DayZero is the date of puzzle 0
var DayZero = time.Date(2021, time.June, 19, 0, 0, 0, 0, time.UTC)

var ErrNoPuzzle = errors.New("no puzzle with that number")

// Lists are the puzzle answers in puzzle order and every accepted word, sorted
type Lists struct {
	Solutions  []string
	Dictionary []string
}

// Load reads a word list file.  A JSON file is an object with "solutions" and
// "guesses" arrays.  Anything else is read as one word per line and every word
// is also a solution.  Blank lines and lines starting with # are skipped.
func Load(path string) (Lists, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Lists{}, err
	}
	var solutions, guesses []string
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		solutions, guesses, err = parseJSON(trimmed)
	} else {
		solutions, err = parseText(data)
	}
	if err != nil {
		return Lists{}, fmt.Errorf("%s: %w", path, err)
	}
	return Merge(solutions, guesses)
}

func parseJSON(data []byte) ([]string, []string, error) {
	if !gjson.ValidBytes(data) {
		return nil, nil, fmt.Errorf("%w: not valid json", wordle.ErrInvalidDictionary)
	}
	result := gjson.ParseBytes(data)
	solutions, err := readWords(result.Get("solutions"))
	if err != nil {
		return nil, nil, fmt.Errorf("solutions: %w", err)
	}
	guesses, err := readWords(result.Get("guesses"))
	if err != nil {
		return nil, nil, fmt.Errorf("guesses: %w", err)
	}
	if len(solutions) == 0 {
		return nil, nil, fmt.Errorf("%w: no solutions", wordle.ErrInvalidDictionary)
	}
	return solutions, guesses, nil
}

func readWords(v gjson.Result) ([]string, error) {
	if !v.Exists() {
		return nil, nil
	}
	if !v.IsArray() {
		return nil, fmt.Errorf("%w: expected an array", wordle.ErrInvalidDictionary)
	}
	var ret []string
	var err error
	v.ForEach(func(_, item gjson.Result) bool {
		if item.Type != gjson.String {
			err = fmt.Errorf("%w: %s is not a string", wordle.ErrInvalidDictionary, item.Raw)
			return false
		}
		ret = append(ret, strings.ToLower(item.String()))
		return true
	})
	return ret, err
}

func parseText(data []byte) ([]string, error) {
	var ret []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ret = append(ret, strings.ToLower(line))
	}
	return ret, scanner.Err()
}

// Merge checks the words and returns the solutions with the union of both lists
// sorted as the dictionary
func Merge(solutions, guesses []string) (Lists, error) {
	all := mapset.NewSet()
	for _, list := range [][]string{solutions, guesses} {
		for _, word := range list {
			if !wordle.ValidWord(word) {
				return Lists{}, fmt.Errorf("%w: %w: %q", wordle.ErrInvalidDictionary, wordle.ErrInvalidWord, word)
			}
			all.Add(word)
		}
	}
	if all.Cardinality() == 0 {
		return Lists{}, fmt.Errorf("%w: no words", wordle.ErrInvalidDictionary)
	}
	dictionary := make([]string, 0, all.Cardinality())
	for word := range all.Iter() {
		dictionary = append(dictionary, word.(string))
	}
	sort.Strings(dictionary)
	return Lists{Solutions: solutions, Dictionary: dictionary}, nil
}

// NewDictionary builds the solver dictionary from the lists
func (l Lists) NewDictionary() (*wordle.Dictionary, error) {
	return wordle.NewDictionary(l.Solutions, l.Dictionary)
}

// Number is the puzzle number for the calendar day of t
func Number(t time.Time) int {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(day.Sub(DayZero).Hours() / 24)
}

// Today is the puzzle number for the local date
func Today() int {
	return Number(time.Now())
}

// Date is the calendar day of puzzle number
func Date(number int) time.Time {
	return DayZero.AddDate(0, 0, number)
}

// SolutionFor returns the answer to puzzle number.  The solutions list is
// indexed from puzzle 0.
func SolutionFor(solutions []string, number int) (string, error) {
	if number < 0 || number >= len(solutions) {
		return "", fmt.Errorf("%w: #%d, have %d puzzles", ErrNoPuzzle, number, len(solutions))
	}
	return solutions[number], nil
}
