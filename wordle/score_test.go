package wordle

import (
	"testing"

	"github.com/powellquiring/bottle/letters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategyNames(t *testing.T) {
	for _, strategy := range []Strategy{Simple, Weighted, Worst} {
		parsed, err := ParseStrategy(strategy.String())
		require.NoError(t, err)
		assert.Equal(t, strategy, parsed)
	}
	_, err := ParseStrategy("better")
	assert.Error(t, err)
	assert.Equal(t, "Strategy(9)", Strategy(9).String())
}

func TestLetterWeights(t *testing.T) {
	d := newTestDictionary(t, "crane", "house", "pilot")
	weights := NewLetterWeights(d, d.WordlistAll())
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.InDelta(t, 2.0/15, weights['e'-'a'], 1e-9)
	assert.InDelta(t, 1.0/15, weights['c'-'a'], 1e-9)
	assert.Zero(t, weights['z'-'a'])
}

func TestPositionalFrequencies(t *testing.T) {
	d := newTestDictionary(t, "crane", "house", "pilot")
	p := NewPositionalFrequencies(d, d.WordlistAll())
	assert.InDelta(t, 2.0/3, p[4]['e'-'a'], 1e-9)
	assert.InDelta(t, 1.0/3, p[0]['c'-'a'], 1e-9)
	assert.Zero(t, p[0]['e'-'a'])
}

func scorerFor(t *testing.T, d *Dictionary, strategy Strategy, c Constraints) *Scorer {
	t.Helper()
	all := d.WordlistAll()
	return NewScorer(d, strategy, NewLetterWeights(d, all), d.Filter(all, c), c)
}

// crane:  leaves pilot, 3/1 * 6/15 * (1+3*3) = 12
// house:  leaves nothing, 30 * 7/15 * (1+2*2) = 70
// pilot:  leaves crane, 3/1 * 6/15 * (1+3*3) = 12
func TestScoreSimple(t *testing.T) {
	d := newTestDictionary(t, "crane", "house", "pilot")
	scorer := scorerFor(t, d, Simple, NewConstraints())
	assert.InDelta(t, 12.0, scorer.Score(mustWord(t, d, "crane")), 1e-9)
	assert.InDelta(t, 70.0, scorer.Score(mustWord(t, d, "house")), 1e-9)
	assert.InDelta(t, 12.0, scorer.Score(mustWord(t, d, "pilot")), 1e-9)

	best, err := scorer.Best()
	require.NoError(t, err)
	assert.Equal(t, "house", d.String(best))

	ranked := scorer.Rank()
	require.Len(t, ranked, 3)
	assert.Equal(t, []string{"house", "crane", "pilot"}, []string{ranked[0].Word, ranked[1].Word, ranked[2].Word})
}

func TestScoreWeighted(t *testing.T) {
	d := newTestDictionary(t, "crane", "house", "pilot")
	scorer := scorerFor(t, d, Weighted, NewConstraints())
	// positional sums: crane 4/3+2/3, house 4/3+2/3, pilot 5/3
	assert.InDelta(t, 24.0, scorer.Score(mustWord(t, d, "crane")), 1e-9)
	assert.InDelta(t, 140.0, scorer.Score(mustWord(t, d, "house")), 1e-9)
	assert.InDelta(t, 20.0, scorer.Score(mustWord(t, d, "pilot")), 1e-9)
}

func TestScoreWorst(t *testing.T) {
	d := newTestDictionary(t, "crane", "house", "pilot")
	simple := scorerFor(t, d, Simple, NewConstraints())
	worst := scorerFor(t, d, Worst, NewConstraints())
	for _, word := range d.WordlistAll().Words() {
		assert.Equal(t, -simple.Score(word), worst.Score(word))
	}
	best, err := worst.Best()
	require.NoError(t, err)
	assert.Equal(t, "crane", d.String(best))
}

func TestScoreTieKeepsDictionaryOrder(t *testing.T) {
	d := newTestDictionary(t, "edcba", "abcde")
	scorer := scorerFor(t, d, Simple, NewConstraints())
	ranked := scorer.Rank()
	assert.Equal(t, ranked[0].Score, ranked[1].Score)
	assert.Equal(t, "abcde", ranked[0].Word)
	best, err := scorer.Best()
	require.NoError(t, err)
	assert.Equal(t, "abcde", d.String(best))
}

// position 0 can only be c or r, both letters of crane.  Rather than leaving the
// position empty it is assumed to be the c, so chump is left.
// 2/1 * 6/10 * (1+3*3) = 12
func TestScoreAssumesExactWhenPositionEmptied(t *testing.T) {
	d := newTestDictionary(t, "chump", "crane")
	c := NewConstraints()
	c.Allowed[0] = letters.Of("cr")
	scorer := scorerFor(t, d, Simple, c)
	assert.InDelta(t, 12.0, scorer.Score(mustWord(t, d, "crane")), 1e-9)
}

func TestScoreEmpty(t *testing.T) {
	d := newTestDictionary(t, "crane", "house", "pilot")
	c := NewConstraints()
	c.Required = letters.Of("z")
	scorer := scorerFor(t, d, Simple, c)
	_, err := scorer.Best()
	assert.ErrorIs(t, err, ErrEmptyCandidateSet)
	assert.Empty(t, scorer.Rank())
}
