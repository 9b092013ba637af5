package rex

// Named single-unit classes. Each is an atomic Pattern: a quantifier binds
// to it directly.
//
// The Not* variants are true negated classes. In particular NotNewline,
// NotCarriageReturn and NotTab match any character except the named one —
// they are not aliases for AnyChar, which would also match the character
// they claim to exclude.
var (
	Digit         = Pattern{text: `\d`, k: kindAtom}
	NotDigit      = Pattern{text: `\D`, k: kindAtom}
	Word          = Pattern{text: `\w`, k: kindAtom}
	NotWord       = Pattern{text: `\W`, k: kindAtom}
	Whitespace    = Pattern{text: `\s`, k: kindAtom}
	NotWhitespace = Pattern{text: `\S`, k: kindAtom}

	Letter    = Pattern{text: `[a-zA-Z]`, k: kindAtom}
	NotLetter = Pattern{text: `[^a-zA-Z]`, k: kindNegated}
	Lower     = Pattern{text: `[a-z]`, k: kindAtom}
	Upper     = Pattern{text: `[A-Z]`, k: kindAtom}
	AlphaNum  = Pattern{text: `[a-zA-Z0-9]`, k: kindAtom}

	Tab               = Pattern{text: `\t`, k: kindAtom}
	NotTab            = Pattern{text: `[^\t]`, k: kindNegated}
	Newline           = Pattern{text: `\n`, k: kindAtom}
	NotNewline        = Pattern{text: `[^\n]`, k: kindNegated}
	CarriageReturn    = Pattern{text: `\r`, k: kindAtom}
	NotCarriageReturn = Pattern{text: `[^\r]`, k: kindNegated}

	// AnyChar matches any character except newline.
	AnyChar = Pattern{text: `.`, k: kindAtom}
)

// Zero-width anchors and boundaries. These are composite: they take no
// quantifier, and a Join containing one alongside other patterns is itself
// composite.
var (
	Start           = Pattern{text: `^`, k: kindAssert}
	End             = Pattern{text: `$`, k: kindAssert}
	WordBoundary    = Pattern{text: `\b`, k: kindAssert}
	NotWordBoundary = Pattern{text: `\B`, k: kindAssert}
)
