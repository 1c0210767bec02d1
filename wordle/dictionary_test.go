package wordle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDictionary(t *testing.T) {
	d, err := NewDictionary([]string{"pilot", "crane"}, []string{"house", "crane", "abbey"})
	require.NoError(t, err)
	assert.Equal(t, 4, d.Len())
	assert.Equal(t, []string{"abbey", "crane", "house", "pilot"}, d.WordlistStrings(d.WordlistAll()))
	// puzzle order is kept
	assert.Equal(t, []string{"pilot", "crane"}, d.Solutions())
	assert.Equal(t, []string{"crane", "pilot"}, d.WordlistStrings(d.SolutionList()))

	word, ok := d.Word("house")
	require.True(t, ok)
	assert.Equal(t, WordleWord(2), word)
	assert.Equal(t, "house", d.String(word))
	_, ok = d.Word("zebra")
	assert.False(t, ok)
}

func TestNewDictionaryInvalid(t *testing.T) {
	for _, test := range []struct {
		solutions []string
		guesses   []string
	}{
		{nil, nil},
		{[]string{"cran"}, nil},
		{nil, []string{"crane", "CRANE"}},
		{nil, []string{"cranes"}},
		{[]string{"cr4ne"}, []string{"house"}},
	} {
		_, err := NewDictionary(test.solutions, test.guesses)
		assert.ErrorIs(t, err, ErrInvalidDictionary, test)
	}
	_, err := NewDictionary([]string{"cran"}, nil)
	assert.ErrorIs(t, err, ErrInvalidWord)
}

func TestWordList(t *testing.T) {
	d := newTestDictionary(t, "crane", "house", "pilot", "those")
	wl, err := d.WordlistFromStrings([]string{"those", "crane"})
	require.NoError(t, err)
	assert.Equal(t, 2, wl.Len())
	assert.Equal(t, []string{"crane", "those"}, d.WordlistStrings(wl))
	assert.Equal(t, []WordleWord{0, 3}, wl.Words())
	assert.True(t, wl.Contains(mustWord(t, d, "those")))
	assert.False(t, wl.Contains(mustWord(t, d, "house")))

	clone := wl.Clone()
	clone.Insert(mustWord(t, d, "house"))
	assert.Equal(t, 2, wl.Len())
	assert.False(t, wl.Equal(clone))

	_, err = d.WordlistFromStrings([]string{"zebra"})
	assert.ErrorIs(t, err, ErrInvalidWord)
	assert.Zero(t, d.WordlistEmpty().Len())
}

func TestFingerprint(t *testing.T) {
	d := newTestDictionary(t, "crane", "house", "pilot")
	other := newTestDictionary(t, "crane", "house", "piano")
	key := d.Fingerprint(Simple, d.WordlistAll())
	assert.Equal(t, key, newTestDictionary(t, "pilot", "house", "crane").Fingerprint(Simple, d.WordlistAll()))
	assert.NotEqual(t, key, other.Fingerprint(Simple, other.WordlistAll()))
	assert.NotEqual(t, key, d.Fingerprint(Weighted, d.WordlistAll()))
	assert.Regexp(t, "^simple[0-9a-f]{64}$", key)
}
