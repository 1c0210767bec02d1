package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/powellquiring/bottle/transcript"
	"github.com/powellquiring/bottle/wordle"
	"github.com/powellquiring/bottle/words"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3" // imports as package "cli"
)

// guessAnswers pairs up [guess answer]... arguments
func guessAnswers(args []string) ([]wordle.GuessAnswer, error) {
	if len(args)%2 != 0 {
		return nil, cli.Exit("must have pairs of guess answer", 1)
	}
	ret := []wordle.GuessAnswer{}
	for i := 0; i < len(args); i += 2 {
		if !wordle.ValidWord(args[i]) {
			return nil, cli.Exit("guess is not 5 lowercase letters: "+args[i], 1)
		}
		if _, err := wordle.ParseFeedback(args[i+1]); err != nil {
			return nil, cli.Exit("answer not in right format r,y,g like rrggy: "+args[i+1], 1)
		}
		ret = append(ret, wordle.GuessAnswer{Guess: args[i], Answer: args[i+1]})
	}
	return ret, nil
}

// play solves one puzzle and prints the rows
func play(globalConfig GlobalConfiguration, number int, share bool, badly bool) error {
	solution, err := words.SolutionFor(globalConfig.lists.Solutions, number)
	if err != nil {
		return err
	}
	fmt.Printf("Playing Wordle #%d\n", number)
	e, err := globalConfig.engine(badly, os.Stdout)
	if err != nil {
		return err
	}
	result, err := e.Solve(solution)
	writeGame(os.Stdout, number, result, share)
	return err
}

// bulk replays puzzles 1 through n
func bulk(ctx context.Context, globalConfig GlobalConfiguration, n int) error {
	solutions := globalConfig.lists.Solutions
	if n < 1 || n >= len(solutions) {
		return fmt.Errorf("%w: can not play puzzles 1 to %d with %d solutions", words.ErrNoPuzzle, n, len(solutions))
	}
	e, err := globalConfig.engine(false, os.Stdout)
	if err != nil {
		return err
	}
	var bar *progressbar.ProgressBar
	if globalConfig.flags.progress {
		bar = progressbar.Default(int64(n))
	} else {
		bar = progressbar.DefaultSilent(int64(n))
	}
	summary, err := e.Bulk(ctx, 1, solutions[1:n+1], globalConfig.flags.workers, func(wordle.PuzzleResult) {
		bar.Add(1)
	})
	if err != nil {
		return err
	}
	bar.Finish()
	writeSummary(os.Stdout, summary)
	return nil
}

// debugScores prints the score of every possible word after the rows
func debugScores(globalConfig GlobalConfiguration, args []string) error {
	rows, err := guessAnswers(args)
	if err != nil {
		return err
	}
	e, err := globalConfig.engine(false, nil)
	if err != nil {
		return err
	}
	s, _, err := e.Replay(rows)
	if err != nil {
		return err
	}
	fmt.Printf("%d possible words\n", s.PossibleWords().Len())
	writeScores(os.Stdout, e.ScoreWords(s.PossibleWords(), s.Constraints()))
	return nil
}

// analyze prints the next guess and the possible words for a game played elsewhere
func analyze(globalConfig GlobalConfiguration, args []string) error {
	rows, err := guessAnswers(args)
	if err != nil {
		return err
	}
	e, err := globalConfig.engine(false, nil)
	if err != nil {
		return err
	}
	nextGuess, possibleWords, err := e.PlayReturnPossible(rows)
	if err != nil {
		return err
	}
	fmt.Print(nextGuess, ":")
	for _, word := range possibleWords {
		fmt.Print(" ", word)
	}
	fmt.Println()
	return nil
}

func parse(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	games, err := transcript.Parse(f)
	if err != nil {
		return err
	}
	transcript.Sort(games)
	fmt.Printf("loaded %d games\n", len(games))
	for _, game := range games {
		writeTranscriptGame(os.Stdout, game)
	}
	return nil
}

func cpuProfile() func() {
	f, err := os.Create("cpu.prof")
	if err != nil {
		panic(err)
	}
	pprof.StartCPUProfile(f)
	return pprof.StopCPUProfile
}

func main() {
	_ = godotenv.Load()

	flags := globalFlags{}
	// command specific flags
	share := false
	badly := false
	bulkCount := 0

	// run loads the configuration, then runs the command and saves any new starting word
	run := func(command func(GlobalConfiguration) error) error {
		if flags.profile {
			def := cpuProfile()
			defer def()
		}
		globalConfig, err := globalConfiguration(flags)
		if err != nil {
			return cli.Exit(err, 1)
		}
		defer globalConfig.saveCache()
		if err := command(globalConfig); err != nil {
			return cli.Exit(err, 1)
		}
		return nil
	}

	cmd := &cli.Command{
		Name:  "bottle",
		Usage: "plays wordle",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "words",
				Aliases:     []string{"w"},
				Usage:       `word list, a json object with "solutions" and "guesses" arrays or one word per line`,
				Sources:     cli.EnvVars("BOTTLE_WORDS"),
				Destination: &flags.wordsPath,
			},
			&cli.StringFlag{
				Name:        "cache",
				Value:       "starting-words.json",
				Usage:       "starting word cache file, empty to keep it in memory",
				Sources:     cli.EnvVars("BOTTLE_CACHE"),
				Destination: &flags.cachePath,
			},
			&cli.StringFlag{
				Name:        "strategy",
				Value:       wordle.Simple.String(),
				Aliases:     []string{"s"},
				Usage:       "simple, weighted or worst",
				Sources:     cli.EnvVars("BOTTLE_STRATEGY"),
				Destination: &flags.strategy,
			},
			&cli.BoolFlag{
				Name:        "use-solutions-list",
				Usage:       "only guess words from the solutions list",
				Sources:     cli.EnvVars("BOTTLE_USE_SOLUTIONS_LIST"),
				Destination: &flags.useSolutionsList,
			},
			&cli.BoolFlag{
				Name:        "progress",
				Value:       false,
				Aliases:     []string{"p"},
				Usage:       "show progress bar",
				Sources:     cli.EnvVars("BOTTLE_PROGRESS"),
				Destination: &flags.progress,
			},
			&cli.IntFlag{
				Name:        "workers",
				Value:       4,
				Usage:       "games played at once by bulk, 0 is no limit",
				Sources:     cli.EnvVars("BOTTLE_WORKERS"),
				Destination: &flags.workers,
			},
			&cli.BoolFlag{
				Name:        "debug-scores",
				Value:       false,
				Usage:       "print the score of every word each round",
				Destination: &flags.debug,
			},
			&cli.BoolFlag{
				Name:        "profile",
				Value:       false,
				Usage:       "store profile data to analyze",
				Destination: &flags.profile,
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "play",
				Usage:     "solve a puzzle, today's by default",
				ArgsUsage: "[number]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "share",
						Usage:       "leave out the guesses",
						Destination: &share,
					},
					&cli.BoolFlag{
						Name:        "badly",
						Usage:       "play the worst word every round",
						Destination: &badly,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					number := words.Today()
					if cmd.NArg() > 1 {
						return cli.Exit("at most one puzzle number", 1)
					} else if cmd.NArg() == 1 {
						n, err := strconv.Atoi(cmd.Args().First())
						if err != nil {
							return cli.Exit("puzzle number: "+err.Error(), 1)
						}
						number = n
					}
					return run(func(globalConfig GlobalConfiguration) error {
						return play(globalConfig, number, share, badly)
					})
				},
			},
			{
				Name: "bulk",
				Usage: `bulk [-n count]
				Solve puzzles 1 through count and print the total and average guesses.
				The default is every puzzle to date.
				`,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "n",
						Usage:       "how many puzzles to do (default: all to date)",
						Destination: &bulkCount,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					n := bulkCount
					if n == 0 {
						n = words.Today()
					}
					return run(func(globalConfig GlobalConfiguration) error {
						return bulk(ctx, globalConfig, n)
					})
				},
			},
			{
				Name:      "debug-scores",
				Usage:     "print the score of every possible word after the [guess answer] pairs",
				ArgsUsage: "[guess answer]...",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return run(func(globalConfig GlobalConfiguration) error {
						return debugScores(globalConfig, cmd.Args().Slice())
					})
				},
			},
			{
				Name: "analyze",
				Usage: `analyze a game of wordle played elsewhere by entering pairs of [guess answer]...
				https://www.nytimes.com/games/wordle/index.html
				Prints the next guess followed by the words still possible.
				`,
				ArgsUsage: "guess answer [guess answer]...",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg() < 2 {
						return cli.Exit("must have at least one guess answer", 2)
					}
					return run(func(globalConfig GlobalConfiguration) error {
						return analyze(globalConfig, cmd.Args().Slice())
					})
				},
			},
			{
				Name:      "parse",
				Usage:     "list the wordle games shared in a chat export",
				ArgsUsage: "file",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg() != 1 {
						return cli.Exit("must have one file", 1)
					}
					if err := parse(cmd.Args().First()); err != nil {
						return cli.Exit(err, 1)
					}
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
