// Package startcache remembers the starting word of each strategy and word list
// so the full scoring pass is done once, optionally kept in a JSON file.
package startcache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/tidwall/gjson"
)

// ErrCorrupt is returned by Load when the file is not a JSON object of strings
var ErrCorrupt = errors.New("corrupt starting word cache")

// Cache maps a fingerprint to a starting word.  It implements
// wordle.StartingWordCache and is safe for concurrent use.
type Cache struct {
	path  string
	mu    sync.Mutex
	words map[string]string
	dirty bool
}

// New returns an empty cache kept in path, or only in memory when path is ""
func New(path string) *Cache {
	return &Cache{path: path, words: map[string]string{}}
}

func (c *Cache) Path() string {
	return c.path
}

// Load reads the file.  A missing file leaves the cache empty and is not an
// error, a corrupt one leaves it empty and returns ErrCorrupt.
func (c *Cache) Load() error {
	if c.path == "" {
		return nil
	}
	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: %s is not json", ErrCorrupt, c.path)
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsObject() {
		return fmt.Errorf("%w: %s is not an object", ErrCorrupt, c.path)
	}
	words := map[string]string{}
	parsed.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.String {
			err = fmt.Errorf("%w: %s value for %s is not a string", ErrCorrupt, c.path, key.String())
			return false
		}
		words[key.String()] = value.String()
		return true
	})
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, word := range words {
		c.words[key] = word
	}
	return nil
}

// Save writes the file when something was Put since the last Save
func (c *Cache) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.path == "" || !c.dirty {
		return nil
	}
	data, err := json.MarshalIndent(c.words, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("saving starting word cache: %w", err)
	}
	c.dirty = false
	return nil
}

func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	word, ok := c.words[key]
	return word, ok
}

func (c *Cache) Put(key string, word string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.words[key] == word {
		return
	}
	c.words[key] = word
	c.dirty = true
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.words)
}

// Keys returns the fingerprints in the cache, sorted
func (c *Cache) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make([]string, 0, len(c.words))
	for key := range c.words {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
