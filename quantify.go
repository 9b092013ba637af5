package rex

import "strconv"

// Repeat returns a Pattern matching between min and max occurrences of p,
// rendered with the bounded suffix {min,max}. Non-atomic patterns are
// wrapped in a non-capturing group first so the repetition binds to all of
// p, not its last token.
//
// Bounds must satisfy 0 <= min <= max, and min and max must not both be
// zero. Zero-width assertions cannot be repeated; group them first.
//
// Example:
//
//	p, _ := rex.Repeat(rex.Digit, 2, 4)
//	p.String() // `\d{2,4}`
func Repeat(p Pattern, min, max int) (Pattern, error) {
	const op = "Repeat"
	switch {
	case min < 0 || max < 0:
		return Pattern{}, &QuantifierError{Op: op, Min: min, Max: max,
			Reason: "repetition bounds must be non-negative"}
	case min > max:
		return Pattern{}, &QuantifierError{Op: op, Min: min, Max: max,
			Reason: "min must not exceed max"}
	case min == 0 && max == 0:
		return Pattern{}, &QuantifierError{Op: op, Min: min, Max: max,
			Reason: "exactly zero repetitions is not expressible as a suffix"}
	}
	if err := quantifiable(p, op); err != nil {
		return Pattern{}, err
	}
	return suffix(p, "{"+strconv.Itoa(min)+","+strconv.Itoa(max)+"}"), nil
}

// Exactly returns a Pattern matching exactly n occurrences of p, rendered
// with the suffix {n}. n must be positive: a request for exactly zero
// occurrences has no suffix form and signals a caller bug.
//
// Example:
//
//	p, _ := rex.Exactly(rex.Lit("ab"), 3)
//	p.String() // "(?:ab){3}"
func Exactly(p Pattern, n int) (Pattern, error) {
	const op = "Exactly"
	if n <= 0 {
		return Pattern{}, &QuantifierError{Op: op, Min: n, Max: n,
			Reason: "count must be a positive integer"}
	}
	if err := quantifiable(p, op); err != nil {
		return Pattern{}, err
	}
	return suffix(p, "{"+strconv.Itoa(n)+"}"), nil
}

// AtLeast returns a Pattern matching n or more occurrences of p, rendered
// with the open-ended suffix {n,}.
func AtLeast(p Pattern, n int) (Pattern, error) {
	const op = "AtLeast"
	if n < 0 {
		return Pattern{}, &QuantifierError{Op: op, Min: n, Max: -1,
			Reason: "count must be non-negative"}
	}
	if err := quantifiable(p, op); err != nil {
		return Pattern{}, err
	}
	return suffix(p, "{"+strconv.Itoa(n)+",}"), nil
}

// Optional returns a Pattern matching zero or one occurrence of p.
func Optional(p Pattern) (Pattern, error) {
	if err := quantifiable(p, "Optional"); err != nil {
		return Pattern{}, err
	}
	return suffix(p, "?"), nil
}

// ZeroOrMore returns a Pattern matching any number of occurrences of p,
// including none.
func ZeroOrMore(p Pattern) (Pattern, error) {
	if err := quantifiable(p, "ZeroOrMore"); err != nil {
		return Pattern{}, err
	}
	return suffix(p, "*"), nil
}

// OneOrMore returns a Pattern matching one or more occurrences of p.
func OneOrMore(p Pattern) (Pattern, error) {
	if err := quantifiable(p, "OneOrMore"); err != nil {
		return Pattern{}, err
	}
	return suffix(p, "+"), nil
}

// quantifiable rejects patterns that must not take a repetition suffix.
func quantifiable(p Pattern, op string) error {
	if p.k == kindAssert {
		return &QuantifierError{Op: op,
			Reason: "cannot quantify a zero-width assertion; wrap it with Group first"}
	}
	return nil
}

// suffix appends a repetition suffix to p, grouping first where the kind
// requires it. The result is always a sequence: stacking a second quantifier
// re-groups, so two suffixes never collide.
func suffix(p Pattern, sfx string) Pattern {
	var text string
	switch p.k {
	case kindAtom, kindNegated:
		text = p.text + sfx
	case kindSeq:
		text = "(?:" + p.text + ")" + sfx
	case kindAssert:
		// rejected by quantifiable before reaching here
	}
	return Pattern{text: text, k: kindSeq, pcre: p.pcre}
}
