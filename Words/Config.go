package Words

import (
	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

// Config holds the thresholds that decide which words are keywords and longwords.
// In a config file they live under the [thresholds] table.
type Config struct {
	// a keyword is seen at least KeywordMinCount times and has at least KeywordMinLength letters.
	KeywordMinCount  int `toml:"keyword_min_count"`
	KeywordMinLength int `toml:"keyword_min_length"`
	// a longword has at least LongwordMinLength letters.
	LongwordMinLength int `toml:"longword_min_length"`
}

type configFile struct {
	Thresholds Config `toml:"thresholds"`
}

func DefaultConfig() Config {
	return Config{KeywordMinCount: 2, KeywordMinLength: 4, LongwordMinLength: 8}
}

func (c Config) Validate() error {
	if c.KeywordMinCount < 1 || c.KeywordMinLength < 1 || c.LongwordMinLength < 1 {
		return errors.Newf("thresholds must be positive: %+v", c)
	}
	return nil
}

// LoadConfig reads a toml file. Missing keys keep their DefaultConfig values; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	f := configFile{DefaultConfig()}
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "loading config %s", path)
	}
	if err = checkDecoded(md, f.Thresholds); err != nil {
		return Config{}, err
	}
	return f.Thresholds, nil
}

// ParseConfig is LoadConfig for toml held in memory.
func ParseConfig(data string) (Config, error) {
	f := configFile{DefaultConfig()}
	md, err := toml.Decode(data, &f)
	if err != nil {
		return Config{}, errors.Wrap(err, "parsing config")
	}
	if err = checkDecoded(md, f.Thresholds); err != nil {
		return Config{}, err
	}
	return f.Thresholds, nil
}

func checkDecoded(md toml.MetaData, c Config) error {
	if u := md.Undecoded(); len(u) > 0 {
		return errors.Newf("unknown config keys %v", u)
	}
	return c.Validate()
}
