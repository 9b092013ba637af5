package rex

import "strings"

// pcreTokens are constructs RE2 rejects but regexp2 accepts. The list covers
// what a Raw caller could plausibly hand in; exotic PCRE2 verbs are caught
// at compile time by coregex's own parser rejecting them.
var pcreTokens = []string{
	// Lookaround assertions
	"(?=", "(?!", "(?<=", "(?<!",
	// Atomic groups, conditionals, comments
	"(?>", "(?(", "(?#",
	// Recursion and subroutine calls
	"(?R)", "(?&",
	// Escapes RE2 does not know
	`\K`, `\G`, `\Z`,
	`\h`, `\H`, `\V`, `\R`, `\X`, `\N`,
}

// needsPCRE reports whether raw pattern text requires the regexp2 engine.
// Patterns produced by the builder itself carry this as a flag; only Raw
// input is scanned.
func needsPCRE(text string) bool {
	for _, tok := range pcreTokens {
		if strings.Contains(text, tok) {
			return true
		}
	}

	// Backreferences \1..\9, which RE2 rejects. Track escape state so a
	// literal backslash followed by a digit is not misread.
	escaped := false
	for i := 0; i < len(text); i++ {
		if text[i] == '\\' {
			if !escaped && i+1 < len(text) {
				next := text[i+1]
				if next >= '1' && next <= '9' {
					return true
				}
			}
			escaped = !escaped
			continue
		}
		escaped = false
	}

	return false
}
