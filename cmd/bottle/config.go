package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/powellquiring/bottle/startcache"
	"github.com/powellquiring/bottle/wordle"
	"github.com/powellquiring/bottle/words"
)

// flag values shared by every command
type globalFlags struct {
	wordsPath        string
	cachePath        string
	strategy         string
	useSolutionsList bool
	progress         bool
	workers          int
	debug            bool
	profile          bool
}

type GlobalConfiguration struct {
	lists      words.Lists
	dictionary *wordle.Dictionary
	cache      *startcache.Cache
	strategy   wordle.Strategy
	flags      globalFlags
}

func globalConfiguration(flags globalFlags) (GlobalConfiguration, error) {
	if flags.wordsPath == "" {
		return GlobalConfiguration{}, errors.New("no word list, use --words or BOTTLE_WORDS")
	}
	strategy, err := wordle.ParseStrategy(flags.strategy)
	if err != nil {
		return GlobalConfiguration{}, err
	}
	lists, err := words.Load(flags.wordsPath)
	if err != nil {
		return GlobalConfiguration{}, err
	}
	dictionary, err := lists.NewDictionary()
	if err != nil {
		return GlobalConfiguration{}, err
	}
	cache := startcache.New(flags.cachePath)
	if err := cache.Load(); err != nil {
		// the starting word is recomputed and the file rewritten
		fmt.Fprintln(os.Stderr, "ignoring starting word cache:", err)
	}
	return GlobalConfiguration{
		lists:      lists,
		dictionary: dictionary,
		cache:      cache,
		strategy:   strategy,
		flags:      flags,
	}, nil
}

// engine for the configured strategy, badly plays the worst word every round
func (g GlobalConfiguration) engine(badly bool, out io.Writer) (*wordle.Engine, error) {
	opts := wordle.Options{
		Strategy:         g.strategy,
		UseSolutionsList: g.flags.useSolutionsList,
		Cache:            g.cache,
	}
	if badly {
		opts.Strategy = wordle.Worst
	}
	if g.flags.debug {
		// compute the starting word so its score table is printed
		opts.Debug = out
		opts.Cache = nil
	}
	return wordle.NewEngine(g.dictionary, opts)
}

func (g GlobalConfiguration) saveCache() {
	if err := g.cache.Save(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
