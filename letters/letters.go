package letters

import (
	"math/bits"
	"strings"
)

// Alphabet is the number of letters a Set can hold, 'a' through 'z'
const Alphabet = 26

// There is a bit for each letter, bit 0 is 'a'
type Set uint32

// allBits has every letter set
const allBits Set = 1<<Alphabet - 1

// All returns the set of every lowercase letter
func All() Set {
	return allBits
}

// Of returns the set of letters in s.  Characters outside 'a'..'z' are ignored.
func Of(s string) Set {
	var ret Set
	for i := 0; i < len(s); i++ {
		ret = ret.Add(s[i])
	}
	return ret
}

func index(letter byte) (uint, bool) {
	if letter < 'a' || letter > 'z' {
		return 0, false
	}
	return uint(letter - 'a'), true
}

func (s Set) Add(letter byte) Set {
	if i, ok := index(letter); ok {
		return s | 1<<i
	}
	return s
}

func (s Set) Remove(letter byte) Set {
	if i, ok := index(letter); ok {
		return s &^ (1 << i)
	}
	return s
}

func (s Set) Has(letter byte) bool {
	i, ok := index(letter)
	return ok && s&(1<<i) != 0
}

// Count (number of letters in the set)
func (s Set) Count() int {
	return bits.OnesCount32(uint32(s))
}

func (s Set) Empty() bool {
	return s == 0
}

// Intersection of base set and other set
func (s Set) Intersection(other Set) Set {
	return s & other
}

// Union of base set and other set
func (s Set) Union(other Set) Set {
	return s | other
}

// Difference of base set and other set, the letters of s not in other
func (s Set) Difference(other Set) Set {
	return s &^ other
}

// IsSubsetOf is true when every letter of s is in other
func (s Set) IsSubsetOf(other Set) bool {
	return s&other == s
}

// Min returns the lowest letter in the set, false if the set is empty
func (s Set) Min() (byte, bool) {
	if s == 0 {
		return 0, false
	}
	return 'a' + byte(bits.TrailingZeros32(uint32(s))), true
}

// Range calls yield for each letter in alphabetical order
func (s Set) Range(yield func(letter byte) bool) {
	for rest := s; rest != 0; rest &= rest - 1 {
		if !yield('a' + byte(bits.TrailingZeros32(uint32(rest)))) {
			return
		}
	}
}

func (s Set) String() string {
	var b strings.Builder
	b.Grow(s.Count())
	for letter := range s.Range {
		b.WriteByte(letter)
	}
	return b.String()
}
