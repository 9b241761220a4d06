package Words

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/g-m-twostay/wordtrees/Trees"
)

// Word is a token together with the number of times it was seen.
type Word struct {
	Text  string
	Count int
}

func (u *Word) String() string {
	return u.Text + " : " + strconv.Itoa(u.Count)
}

// Compare is the natural ordering of words, alphabetical by Text.
func (u *Word) Compare(o *Word) int {
	return strings.Compare(u.Text, o.Text)
}

// Increment the count in place. The count must not change while the word is in
// a tree ordered by count.
func (u *Word) Increment() {
	u.Count++
}

// Orderings of words for Trees.NewWith. FreqDesc and LengthDesc break ties alphabetically.
var (
	Alphabetical Trees.Comparator[*Word] = func(a, b *Word) int {
		return strings.Compare(a.Text, b.Text)
	}
	FreqDesc Trees.Comparator[*Word] = func(a, b *Word) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.Text, b.Text)
	}
	LengthDesc Trees.Comparator[*Word] = func(a, b *Word) int {
		if c := cmp.Compare(len(b.Text), len(a.Text)); c != 0 {
			return c
		}
		return strings.Compare(a.Text, b.Text)
	}
)

// Normalize lowercases token and drops everything that isn't a letter from a to z.
func Normalize(token string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return -1
	}, strings.ToLower(token))
}
