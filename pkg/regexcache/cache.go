// Package regexcache implements the compile-once pattern cache behind
// match_pat, split_int, split_str, and FS-driven field splitting (spec
// §4.5, §4.6). Compilation failure is fatal (spec §7 item 2); callers
// are expected to route that through pkg/rtfatal.
package regexcache

import (
	"fmt"
	"regexp"

	"awkrt/pkg/sharedmap"
	"awkrt/pkg/value"
)

// Cache compiles an AWK pattern string at most once and reuses the
// compiled matcher on every subsequent lookup for the same pattern,
// satisfying spec §8 scenario 6 (two calls with the same pattern compile
// exactly once).
type Cache struct {
	compiled map[string]*regexp.Regexp
	compiles int // instrumented compile counter, exposed for tests
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{compiled: make(map[string]*regexp.Regexp)}
}

// CompileCount reports how many times Compile has actually invoked the
// underlying regex engine (as opposed to hitting the cache) — the
// "instrumented compile counter" spec §8 scenario 6 asks for.
func (c *Cache) CompileCount() int { return c.compiles }

// Compile returns the compiled matcher for pattern, compiling on miss.
func (c *Cache) Compile(pattern string) (*regexp.Regexp, error) {
	if re, ok := c.compiled[pattern]; ok {
		return re, nil
	}
	re, err := regexp.Compile(translateERE(pattern))
	if err != nil {
		return nil, fmt.Errorf("regexcache: bad pattern %q: %w", pattern, err)
	}
	c.compiled[pattern] = re
	c.compiles++
	return re, nil
}

// translateERE adapts an AWK extended-regular-expression pattern to the
// syntax Go's regexp (RE2) engine accepts. RE2 is already ERE-compatible
// for the subset AWK programs exercise in this corpus; this is a single
// seam to extend later if a gap surfaces, rather than a no-op function
// that pretends no gap could ever exist.
func translateERE(pattern string) string {
	return pattern
}

// MatchPat reports whether pat matches anywhere in text — `match_pat`.
// AWK's ~ operator is a substring match, not a whole-string anchor.
func (c *Cache) MatchPat(text, pat value.Str) (bool, error) {
	re, err := c.Compile(pat.String())
	if err != nil {
		return false, err
	}
	return re.MatchString(text.String()), nil
}

// SplitToIntMap finds all non-overlapping matches of pat in text and
// inserts the tokens between them into dest under integer keys
// 1, 2, ..., k, returning k (the number of new tokens) — `split_int`.
func (c *Cache) SplitToIntMap(text, pat value.Str, dest sharedmap.Map[int64, value.Str]) (int64, error) {
	tokens, err := c.tokenize(text, pat)
	if err != nil {
		return 0, err
	}
	for i, tok := range tokens {
		sharedmap.Insert(dest, int64(i)+1, tok)
		// Insert takes its own ref-incremented clone; this loop's local
		// tok was the sole owner of the box tokenize handed back, so it
		// must drop its own reference once the map has its copy.
		value.Drop(tok)
	}
	return int64(len(tokens)), nil
}

// SplitToStrMap is SplitToIntMap's string-keyed twin — `split_str`.
// Reading back keys "1".."k" in order reconstructs the same token list
// SplitToIntMap would produce (spec §8).
func (c *Cache) SplitToStrMap(text, pat value.Str, dest sharedmap.Map[value.Str, value.Str]) (int64, error) {
	tokens, err := c.tokenize(text, pat)
	if err != nil {
		return 0, err
	}
	for i, tok := range tokens {
		key := value.IntToStr(int64(i) + 1)
		sharedmap.Insert(dest, key, tok)
		value.Drop(key)
		value.Drop(tok)
	}
	return int64(len(tokens)), nil
}

// tokenize splits text on non-overlapping matches of pat, AWK-style: the
// matched separators are discarded and the text between them (including
// empty runs between adjacent matches) becomes the tokens.
func (c *Cache) tokenize(text, pat value.Str) ([]value.Str, error) {
	re, err := c.Compile(pat.String())
	if err != nil {
		return nil, err
	}
	s := text.String()
	if s == "" {
		return nil, nil
	}
	locs := re.FindAllStringIndex(s, -1)
	tokens := make([]value.Str, 0, len(locs)+1)
	prev := 0
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		if start == end {
			// Zero-width match: don't loop forever and don't swallow
			// the character under it.
			continue
		}
		tokens = append(tokens, value.FromString(s[prev:start]))
		prev = end
	}
	tokens = append(tokens, value.FromString(s[prev:]))
	return tokens, nil
}

// SplitField implements AWK's FS-driven field splitting used by
// pkg/record (spec §4.5's "field splitting" specialization):
//
//   - FS == " " (the AWK default): split on runs of whitespace, with
//     leading and trailing whitespace trimmed entirely (no leading/
//     trailing empty fields).
//   - len(FS) == 1 and FS != " ": split on that literal byte.
//   - otherwise: FS is a regex, split like tokenize.
func (c *Cache) SplitField(line, fs value.Str) ([]value.Str, error) {
	fsStr := fs.String()
	text := line.String()
	switch {
	case fsStr == " ":
		return splitWhitespace(text), nil
	case len(fsStr) == 1:
		return splitLiteralByte(text, fsStr[0]), nil
	default:
		return c.tokenize(line, fs)
	}
}

func splitWhitespace(s string) []value.Str {
	var fields []value.Str
	i, n := 0, len(s)
	for i < n {
		for i < n && isAWKSpace(s[i]) {
			i++
		}
		if i >= n {
			break
		}
		start := i
		for i < n && !isAWKSpace(s[i]) {
			i++
		}
		fields = append(fields, value.FromString(s[start:i]))
	}
	return fields
}

func isAWKSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n'
}

func splitLiteralByte(s string, sep byte) []value.Str {
	if s == "" {
		return nil
	}
	var fields []value.Str
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			fields = append(fields, value.FromString(s[start:i]))
			start = i + 1
		}
	}
	fields = append(fields, value.FromString(s[start:]))
	return fields
}
