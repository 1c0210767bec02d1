// Package transcript finds shared Wordle results in a pasted chat export.
//
// A post starts with a line holding the user name, two spaces and the time.
// A shared game is a "Wordle N X/6*" line followed by one feedback row per
// guess, written with emoji or chat aliases.
package transcript

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/powellquiring/bottle/wordle"
	"github.com/powellquiring/bottle/words"
)

var (
	ErrNoUsername    = errors.New("game shared outside a post")
	ErrMalformedGame = errors.New("malformed game")
)

var (
	postStart = regexp.MustCompile(`^([ a-zA-Z.]+)  \d?\d:\d\d [AP]M\s*$`)
	gameStart = regexp.MustCompile(`^Wordle (\d+) (\d|X)/6(\*?)\s*$`)
)

type Game struct {
	Username string
	Number   int
	Rows     []wordle.Feedback
	Solved   bool
	HardMode bool
}

// Date is the day the puzzle was published
func (g Game) Date() time.Time {
	return words.Date(g.Number)
}

// Score is the number of guesses, a game that was not solved scores 6
func (g Game) Score() int {
	return len(g.Rows)
}

func (g Game) Mode() string {
	if g.HardMode {
		return "hard mode"
	}
	return "easy mode"
}

func (g Game) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s played Wordle #%d (%s) in %s\n", g.Username, g.Number, g.Date().Format(time.DateOnly), g.Mode())
	for _, row := range g.Rows {
		sb.WriteString(row.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Parse returns the games in the order they appear
func Parse(r io.Reader) ([]Game, error) {
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		lineNumber++
		return scanner.Text(), true
	}

	var games []Game
	username := ""
	for {
		line, ok := next()
		if !ok {
			break
		}
		if m := postStart.FindStringSubmatch(line); m != nil {
			username = m[1]
			continue
		}
		m := gameStart.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if username == "" {
			return games, fmt.Errorf("line %d: %w", lineNumber, ErrNoUsername)
		}
		game := Game{Username: username, HardMode: m[3] == "*"}
		game.Number, _ = strconv.Atoi(m[1])
		rows := wordle.MaxGuesses
		if m[2] != "X" {
			rows, _ = strconv.Atoi(m[2])
			game.Solved = true
		}
		if rows < 1 {
			return games, fmt.Errorf("line %d: %w: %d rows", lineNumber, ErrMalformedGame, rows)
		}
		for len(game.Rows) < rows {
			line, ok := next()
			if !ok {
				return games, fmt.Errorf("line %d: %w: wordle %d ended after %d rows", lineNumber, ErrMalformedGame, game.Number, len(game.Rows))
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			fb, err := wordle.ParseFeedback(line)
			if err != nil {
				return games, fmt.Errorf("line %d: %w", lineNumber, err)
			}
			if len(game.Rows) > 0 && game.Rows[len(game.Rows)-1].Solved() {
				return games, fmt.Errorf("line %d: %w: wordle %d continues after it was solved", lineNumber, ErrMalformedGame, game.Number)
			}
			game.Rows = append(game.Rows, fb)
		}
		if game.Rows[len(game.Rows)-1].Solved() != game.Solved {
			return games, fmt.Errorf("line %d: %w: wordle %d last row %s", lineNumber, ErrMalformedGame, game.Number, game.Rows[len(game.Rows)-1])
		}
		games = append(games, game)
	}
	return games, scanner.Err()
}

// Sort orders games by number, easy mode first, then by user name
func Sort(games []Game) {
	sort.SliceStable(games, func(i, j int) bool {
		a, b := games[i], games[j]
		if a.Number != b.Number {
			return a.Number < b.Number
		}
		if a.HardMode != b.HardMode {
			return !a.HardMode
		}
		return a.Username < b.Username
	})
}
