package rex

import "unicode/utf8"

// kind classifies a Pattern's rendered text. The quantifier and composition
// rules switch exhaustively on it instead of juggling boolean flags.
type kind uint8

const (
	// kindSeq is a multi-token sequence. It must be wrapped in a
	// non-capturing group before a quantifier so that repetition binds to
	// the whole sequence, not its last token.
	kindSeq kind = iota

	// kindAtom is a single matchable unit: one character, one escape, or
	// one bracket class. A quantifier suffix binds to it directly.
	kindAtom

	// kindNegated is a negated character class [^...]. Atomic for
	// quantification, but kept distinct because negated classes combine
	// differently inside further class construction.
	kindNegated

	// kindAssert is a zero-width assertion or other self-contained
	// composite. It never takes a quantifier; callers that want to repeat
	// an expression containing one must group it explicitly.
	kindAssert
)

// Pattern is an immutable regular-expression fragment: the regex source text
// it renders to, plus the classification that composition rules need.
//
// A Pattern is a small value, created once and never mutated. Every
// transformation (Repeat, Join, Ahead, ...) returns a new Pattern, so values
// may be shared, reused in several compositions, and read concurrently
// without synchronization.
//
// Example:
//
//	word := rex.Lit("px")
//	a, _ := rex.Ahead(word)    // (?=px)
//	n, _ := rex.NotAhead(word) // (?!px), word is unchanged
type Pattern struct {
	text string
	k    kind

	// pcre is set when the rendered text uses constructs outside RE2's
	// feature set and must compile with the regexp2 engine.
	pcre bool
}

// Raw wraps pre-built regex text into a Pattern without escaping or
// validation. The text is treated as a multi-token sequence: quantifying the
// result will group it first.
//
// Raw is the one constructor whose text the builder did not produce itself,
// so it is scanned for PCRE-only constructs to steer engine selection.
//
// Example:
//
//	hex := rex.Raw(`[0-9a-f]{2}`)
//	pair, _ := rex.Join(hex, rex.Lit(":"), hex)
func Raw(text string) Pattern {
	return Pattern{text: text, k: kindSeq, pcre: needsPCRE(text)}
}

// Lit builds a Pattern matching s verbatim. Metacharacters in s are escaped
// with QuoteMeta; the escaping happens exactly once, here. A single-rune
// literal is atomic (a quantifier binds to it directly), anything longer is a
// sequence.
//
// Example:
//
//	p := rex.Lit("1.5")
//	p.String() // `1\.5`
func Lit(s string) Pattern {
	k := kindSeq
	if utf8.RuneCountInString(s) == 1 {
		k = kindAtom
	}
	return Pattern{text: QuoteMeta(s), k: k}
}

// Class builds the character class [set]. The set is raw class-body syntax
// and is not escaped; use Lit for literal text.
//
// Example:
//
//	vowel := rex.Class("aeiou")
//	vowel.String() // "[aeiou]"
func Class(set string) Pattern {
	return Pattern{text: "[" + set + "]", k: kindAtom}
}

// NotClass builds the negated character class [^set]. Like Class, the set is
// raw class-body syntax.
func NotClass(set string) Pattern {
	return Pattern{text: "[^" + set + "]", k: kindNegated}
}

// Group wraps p in an explicit non-capturing group (?:p). The result is a
// single quantifiable unit, which is the caller-side escape hatch for
// repeating an expression that contains a zero-width assertion.
//
// Example:
//
//	tail, _ := rex.NotAhead(rex.Digit)
//	unit, _ := rex.Join(rex.Letter, tail)
//	twice, _ := rex.Exactly(rex.Group(unit), 2)
func Group(p Pattern) Pattern {
	return Pattern{text: "(?:" + p.text + ")", k: kindAtom, pcre: p.pcre}
}

// String returns the regex source this Pattern renders to. The result is a
// self-contained fragment: concatenating it with any other Pattern's text
// yields valid regex.
func (p Pattern) String() string {
	return p.text
}

// Atomic reports whether a quantifier suffix binds to the whole Pattern
// without an enclosing group.
func (p Pattern) Atomic() bool {
	return p.k == kindAtom || p.k == kindNegated
}

// Negated reports whether the Pattern is a negated character class.
func (p Pattern) Negated() bool {
	return p.k == kindNegated
}

// Composite reports whether the Pattern is a zero-width assertion or other
// self-contained construct that cannot take a quantifier.
func (p Pattern) Composite() bool {
	return p.k == kindAssert
}
