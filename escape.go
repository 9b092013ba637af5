package rex

// QuoteMeta returns a string that escapes all regular expression
// metacharacters inside the argument text; the returned string is a regular
// expression matching the literal text and nothing else.
//
// Escaping is total: it succeeds for any input, including the empty string
// and strings consisting entirely of metacharacters or backslashes. It must
// be applied exactly once per literal; Lit and Text already call it, so text
// that went through either must not be quoted again.
//
// Example:
//
//	rex.QuoteMeta("hello.world") // `hello\.world`
func QuoteMeta(s string) string {
	const special = `\.+*?()|[]{}^$`

	n := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+n)
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			buf = append(buf, '\\')
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}

// isSpecial returns true if c occurs in special.
func isSpecial(c byte, special string) bool {
	for i := 0; i < len(special); i++ {
		if c == special[i] {
			return true
		}
	}
	return false
}
