// Package rex builds regular-expression patterns from composable fragments.
//
// Instead of hand-writing regex syntax, callers assemble patterns from named
// primitives — character classes, literals, anchors, lookaround assertions —
// and let the library decide where non-capturing groups and escapes are
// needed so that quantifiers and concatenation never change the meaning of a
// sub-pattern.
//
// Basic usage:
//
//	// One letter followed by 2-4 digits, not followed by a letter.
//	digits, _ := rex.Repeat(rex.Digit, 2, 4)
//	tail, _ := rex.NotAhead(rex.Letter)
//	p, _ := rex.Join(rex.Letter, digits, tail)
//
//	re := rex.MustCompile(p)
//	re.MatchString("a123") // true
//
// Every combining operation returns a new Pattern; Pattern values are never
// mutated and are safe to share and reuse across goroutines.
//
// Engine selection:
//
// Compile picks the fastest engine that can execute the pattern. Patterns
// built without lookarounds compile with coregex (RE2-compatible, no
// backtracking). Lookaround assertions are outside RE2's feature set, so any
// pattern containing one compiles with regexp2 instead. The builder knows at
// construction time which constructs a pattern uses, so selection needs no
// pattern re-parsing; only Raw text is scanned.
//
// Limitations (v1.0):
//   - No capture groups (composition is anonymous; use Group for structure)
//   - No case-insensitive or multiline construction helpers
package rex
