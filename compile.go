package rex

import (
	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// Regexp is a compiled Pattern. It delegates to coregex (RE2-compatible,
// linear-time) when the pattern stays inside RE2's feature set, and to
// regexp2 (full PCRE, backtracking) when the pattern uses lookaround
// assertions or other PCRE-only constructs.
//
// A Regexp is safe for concurrent use by multiple goroutines.
type Regexp struct {
	pattern string
	core    *coregex.Regex
	pcre    *regexp2.Regexp
}

// Config controls compilation.
type Config struct {
	// ForcePCRE compiles with regexp2 even when the pattern is
	// RE2-compatible. Useful when matching semantics must stay identical
	// across a pattern set that mixes both feature levels.
	ForcePCRE bool

	// Options is passed to regexp2 when the PCRE engine is selected.
	Options regexp2.RegexOptions
}

// DefaultConfig returns the default compilation configuration.
func DefaultConfig() Config {
	return Config{Options: regexp2.None}
}

// Compile compiles p with the fastest engine able to execute it.
//
// Example:
//
//	digits, _ := rex.OneOrMore(rex.Digit)
//	re, err := rex.Compile(digits)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("route 66") // true
func Compile(p Pattern) (*Regexp, error) {
	return CompileWithConfig(p, DefaultConfig())
}

// MustCompile is like Compile but panics if compilation fails. Useful for
// patterns assembled from constants at program start.
func MustCompile(p Pattern) *Regexp {
	re, err := Compile(p)
	if err != nil {
		panic("rex: Compile(`" + p.String() + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles p with explicit configuration.
func CompileWithConfig(p Pattern, cfg Config) (*Regexp, error) {
	if p.pcre || cfg.ForcePCRE {
		re, err := regexp2.Compile(p.text, cfg.Options)
		if err != nil {
			return nil, err
		}
		return &Regexp{pattern: p.text, pcre: re}, nil
	}

	re, err := coregex.Compile(p.text)
	if err != nil {
		return nil, err
	}
	return &Regexp{pattern: p.text, core: re}, nil
}

// String returns the source pattern the Regexp was compiled from.
func (r *Regexp) String() string {
	return r.pattern
}

// Match reports whether b contains any match of the pattern.
func (r *Regexp) Match(b []byte) bool {
	if r.core != nil {
		return r.core.Match(b)
	}
	matched, err := r.pcre.MatchString(string(b))
	return err == nil && matched
}

// MatchString reports whether s contains any match of the pattern.
func (r *Regexp) MatchString(s string) bool {
	if r.core != nil {
		return r.core.MatchString(s)
	}
	matched, err := r.pcre.MatchString(s)
	return err == nil && matched
}

// FindString returns the text of the leftmost match in s, or the empty
// string if there is no match.
func (r *Regexp) FindString(s string) string {
	if r.core != nil {
		return r.core.FindString(s)
	}
	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return ""
	}
	return m.String()
}

// FindStringIndex returns a two-element slice holding the byte offsets of
// the leftmost match in s, or nil if there is no match.
func (r *Regexp) FindStringIndex(s string) []int {
	if r.core != nil {
		return r.core.FindStringIndex(s)
	}
	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}
	start, end := runeRangeToByte(s, m.Index, m.Length)
	return []int{start, end}
}

// runeRangeToByte converts regexp2's rune-based match position and length
// into byte offsets within s.
func runeRangeToByte(s string, startRune, length int) (int, int) {
	if startRune < 0 || length < 0 {
		return -1, -1
	}
	return runeToByteOffset(s, startRune), runeToByteOffset(s, startRune+length)
}

func runeToByteOffset(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	count := 0
	for i := range s {
		if count == runeIndex {
			return i
		}
		count++
	}
	return len(s)
}
