package Words

import (
	"bufio"
	"io"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/g-m-twostay/wordtrees/Trees"
	"go.uber.org/zap"
)

// ErrAlreadyBuilt is returned when the keyword and longword trees were already built.
var ErrAlreadyBuilt = errors.New("keyword and longword trees are already built")

// Index counts words into three trees. Words is ordered alphabetically and is
// filled by Read. Keywords (by frequency descending) and Longwords (by length
// descending) are filled from Words by Build, after which counts no longer change.
type Index struct {
	Words     *Trees.BST[*Word]
	Keywords  *Trees.BST[*Word]
	Longwords *Trees.BST[*Word]

	cfg             Config
	logger          *zap.Logger
	built           bool
	tokens, skipped int
}

type Option func(*Index)

func WithLogger(l *zap.Logger) Option {
	return func(u *Index) {
		u.logger = l
	}
}

func NewIndex(cfg Config, opts ...Option) (*Index, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	kw, err := Trees.NewWith(FreqDesc)
	if err != nil {
		return nil, err
	}
	lw, err := Trees.NewWith(LengthDesc)
	if err != nil {
		return nil, err
	}
	u := &Index{Words: Trees.NewComparable[*Word](), Keywords: kw, Longwords: lw, cfg: cfg, logger: zap.NewNop()}
	for _, o := range opts {
		o(u)
	}
	return u, nil
}

// Read whitespace separated tokens from r and count the normalized ones. Tokens
// that normalize to nothing are skipped. Tokens have no length limit. Read can be
// called several times, but not after Build.
func (u *Index) Read(r io.Reader) error {
	if u.built {
		return errors.Wrap(ErrAlreadyBuilt, "cannot read more words")
	}
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), math.MaxInt)
	tokens, skipped := 0, 0
	for sc.Scan() {
		tokens++
		if t := Normalize(sc.Text()); len(t) > 0 {
			u.add(t)
		} else {
			skipped++
		}
	}
	u.tokens += tokens
	u.skipped += skipped
	if err := sc.Err(); err != nil {
		return errors.Wrapf(err, "reading token %d", tokens+1)
	}
	u.logger.Debug("read words",
		zap.Int("tokens", tokens),
		zap.Int("skipped", skipped),
		zap.Int("unique", u.Words.Size()))
	return nil
}

func (u *Index) add(t string) {
	if w, ok := u.Words.Find(&Word{Text: t}); ok {
		w.Increment()
	} else {
		u.Words.Insert(&Word{Text: t, Count: 1})
	}
}

func (u *Index) IsKeyword(w *Word) bool {
	return w.Count >= u.cfg.KeywordMinCount && len(w.Text) >= u.cfg.KeywordMinLength
}

func (u *Index) IsLongword(w *Word) bool {
	return len(w.Text) >= u.cfg.LongwordMinLength
}

// Build the keyword and longword trees from the words read so far. It can only be done once.
func (u *Index) Build() error {
	if u.built {
		return ErrAlreadyBuilt
	}
	u.built = true
	for s := u.Words.Iterator(); s.HasNext(); {
		w, err := s.Next()
		if err != nil {
			return err
		}
		if u.IsKeyword(w) {
			u.Keywords.Insert(w)
		}
		if u.IsLongword(w) {
			u.Longwords.Insert(w)
		}
	}
	u.logger.Debug("built trees",
		zap.Int("keywords", u.Keywords.Size()),
		zap.Int("longwords", u.Longwords.Size()))
	return nil
}

// Tokens is the number of tokens read and Skipped how many of them had no letters.
func (u *Index) Tokens() (tokens, skipped int) {
	return u.tokens, u.skipped
}
