package rex

import "strings"

// Join concatenates the given patterns in argument order. Regex
// concatenation is adjacency, so no separator or grouping is added; each
// input's text is used as-is. At least one pattern is required.
//
// The result is never atomic, so quantifying it later groups it correctly.
// It is composite only when more than one pattern was joined and at least
// one of them is a zero-width assertion; joining a single assertion
// therefore yields a plain sequence, which is the sanctioned way to make an
// assertion-bearing expression quantifiable again.
//
// Example:
//
//	p, _ := rex.Join(rex.Lit("v"), rex.Digit)
//	p.String() // `v\d`
func Join(ps ...Pattern) (Pattern, error) {
	if len(ps) == 0 {
		return Pattern{}, &ArgumentError{Op: "Join",
			Reason: "requires at least one Pattern"}
	}

	var b strings.Builder
	pcre := false
	hasAssert := false
	for _, p := range ps {
		b.WriteString(p.text)
		pcre = pcre || p.pcre
		hasAssert = hasAssert || p.k == kindAssert
	}

	k := kindSeq
	if len(ps) > 1 && hasAssert {
		k = kindAssert
	}
	return Pattern{text: b.String(), k: k, pcre: pcre}, nil
}

// Or builds an alternation matching any one of the given patterns, rendered
// as (?:a|b|...). At least one pattern is required. The enclosing group
// makes the result a single quantifiable unit.
//
// Example:
//
//	p, _ := rex.Or(rex.Lit("px"), rex.Lit("em"), rex.Lit("rem"))
//	p.String() // "(?:px|em|rem)"
func Or(ps ...Pattern) (Pattern, error) {
	if len(ps) == 0 {
		return Pattern{}, &ArgumentError{Op: "Or",
			Reason: "requires at least one Pattern"}
	}

	var b strings.Builder
	b.WriteString("(?:")
	pcre := false
	for i, p := range ps {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(p.text)
		pcre = pcre || p.pcre
	}
	b.WriteByte(')')

	return Pattern{text: b.String(), k: kindAtom, pcre: pcre}, nil
}
