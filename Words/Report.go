package Words

import (
	"fmt"
	"io"

	"github.com/g-m-twostay/wordtrees/Trees"
)

type TreeStats struct {
	Size, Height, OptimalHeight int
}

func statsOf(t Trees.Tree[*Word]) TreeStats {
	return TreeStats{t.Size(), t.Height(), Trees.OptimalHeight(t.Size())}
}

type Stats struct {
	Words, Keywords, Longwords TreeStats
	// AvgFreq is the mean count of keywords and AvgLength the mean length of
	// longwords, both truncated. They're 0 when there are no such words.
	AvgFreq, AvgLength int
}

func average(t Trees.Tree[*Word], f func(*Word) int) int {
	if t.Size() == 0 {
		return 0
	}
	sum := 0
	t.Traverse(Trees.InOrder, func(w *Word) {
		sum += f(w)
	})
	return sum / t.Size()
}

func (u *Index) Stats() Stats {
	return Stats{
		Words:     statsOf(u.Words),
		Keywords:  statsOf(u.Keywords),
		Longwords: statsOf(u.Longwords),
		AvgFreq:   average(u.Keywords, func(w *Word) int { return w.Count }),
		AvgLength: average(u.Longwords, func(w *Word) int { return len(w.Text) }),
	}
}

// reporter keeps the first write error so the report reads top to bottom.
type reporter struct {
	w   io.Writer
	err error
}

func (r *reporter) printf(format string, a ...any) {
	if r.err == nil {
		_, r.err = fmt.Fprintf(r.w, format, a...)
	}
}

// list prints the words of t in order through its iterator.
func (r *reporter) list(t Trees.Tree[*Word]) {
	for s := t.Iterator(); s.HasNext() && r.err == nil; {
		w, _ := s.Next()
		r.printf("%v\n", w)
	}
}

func (r *reporter) height(name string, s TreeStats) {
	r.printf("Height of the %s tree is : %d (Optimal height for this tree is : %d)\n", name, s.Height, s.OptimalHeight)
}

// Report writes the summary of ix to w: the tree sizes, the keyword and longword
// listings, the averages and the heights. ix should be built.
func Report(w io.Writer, ix *Index) error {
	st := ix.Stats()
	r := &reporter{w: w}
	r.printf("Number of Unique Words: %d\n", st.Words.Size)
	r.printf("Number of Keywords: %d\n", st.Keywords.Size)
	r.list(ix.Keywords)
	r.printf("Number of Longwords: %d\n", st.Longwords.Size)
	r.list(ix.Longwords)
	r.printf("The average keyword frequency is %d\n", st.AvgFreq)
	r.printf("The average longword length is %d\n", st.AvgLength)
	r.height("unique words", st.Words)
	r.height("keywords", st.Keywords)
	r.height("longwords", st.Longwords)
	return r.err
}
