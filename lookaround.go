package rex

// Source is the input accepted by the lookaround constructors: either an
// already-built Pattern or a Text literal. The interface is closed — only
// those two types implement it — so passing anything else is a compile
// error rather than a runtime type check.
type Source interface {
	// pattern resolves the source to a built Pattern.
	pattern() Pattern
}

// Text is a literal string Source. Its characters are matched verbatim:
// they are escaped on use, never interpreted as regex syntax.
//
// Example:
//
//	p, _ := rex.Ahead(rex.Text("1.5"))
//	p.String() // `(?=1\.5)`
type Text string

func (t Text) pattern() Pattern { return Lit(string(t)) }

func (p Pattern) pattern() Pattern { return p }

// Ahead builds the positive lookahead (?=P): zero-width, true when s
// matches starting at the current position. Consumes no input.
//
// Example:
//
//	p, _ := rex.Ahead(rex.Text("abc"))
//	p.String() // "(?=abc)"
func Ahead(s Source) (Pattern, error) {
	return lookaround("Ahead", "(?=", s)
}

// NotAhead builds the negative lookahead (?!P): zero-width, true when s
// does not match at the current position.
func NotAhead(s Source) (Pattern, error) {
	return lookaround("NotAhead", "(?!", s)
}

// Behind builds the positive lookbehind (?<=P): zero-width, true when s
// matches ending at the current position.
func Behind(s Source) (Pattern, error) {
	return lookaround("Behind", "(?<=", s)
}

// NotBehind builds the negative lookbehind (?<!P): zero-width, true when s
// does not match ending at the current position.
func NotBehind(s Source) (Pattern, error) {
	return lookaround("NotBehind", "(?<!", s)
}

// Has builds the containment assertion (?=.*P): zero-width, true when s
// occurs anywhere at or after the current position.
//
// Example:
//
//	p, _ := rex.Has(rex.Text("x"))
//	p.String() // "(?=.*x)"
func Has(s Source) (Pattern, error) {
	return lookaround("Has", "(?=.*", s)
}

// HasNot builds the absence assertion (?!.*P): zero-width, true when s
// occurs nowhere at or after the current position.
func HasNot(s Source) (Pattern, error) {
	return lookaround("HasNot", "(?!.*", s)
}

// lookaround wraps the resolved source between open and ")". Every result
// is a zero-width composite and, since RE2 has no lookaround support,
// requires the PCRE engine.
func lookaround(op, open string, s Source) (Pattern, error) {
	if s == nil {
		return Pattern{}, &ArgumentError{Op: op,
			Reason: "pattern must be a rex.Pattern or rex.Text, got nil"}
	}
	p := s.pattern()
	return Pattern{text: open + p.text + ")", k: kindAssert, pcre: true}, nil
}
