package rex

import "testing"

// TestRaw tests raw text pass-through and classification
func TestRaw(t *testing.T) {
	p := Raw(`[0-9a-f]{2}`)
	if got := p.String(); got != `[0-9a-f]{2}` {
		t.Errorf("Raw().String() = %q, want %q", got, `[0-9a-f]{2}`)
	}
	if p.Atomic() {
		t.Error("Raw() should not be atomic")
	}
	if p.Composite() {
		t.Error("Raw() should not be composite")
	}
}

// TestLit tests literal escaping and single-rune atomicity
func TestLit(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantText   string
		wantAtomic bool
	}{
		{"single letter", "a", "a", true},
		{"single metachar", "$", `\$`, true},
		{"single multibyte rune", "é", "é", true},
		{"two characters", "ab", "ab", false},
		{"literal with metachars", "a.c", `a\.c`, false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Lit(tt.in)
			if p.String() != tt.wantText {
				t.Errorf("Lit(%q).String() = %q, want %q", tt.in, p.String(), tt.wantText)
			}
			if p.Atomic() != tt.wantAtomic {
				t.Errorf("Lit(%q).Atomic() = %v, want %v", tt.in, p.Atomic(), tt.wantAtomic)
			}
		})
	}
}

// TestClass tests bracket class construction
func TestClass(t *testing.T) {
	p := Class("aeiou")
	if p.String() != "[aeiou]" {
		t.Errorf("Class().String() = %q, want %q", p.String(), "[aeiou]")
	}
	if !p.Atomic() {
		t.Error("Class() should be atomic")
	}
	if p.Negated() {
		t.Error("Class() should not be negated")
	}
}

// TestNotClass tests negated class construction
func TestNotClass(t *testing.T) {
	p := NotClass("0-9")
	if p.String() != "[^0-9]" {
		t.Errorf("NotClass().String() = %q, want %q", p.String(), "[^0-9]")
	}
	if !p.Atomic() {
		t.Error("NotClass() should be atomic")
	}
	if !p.Negated() {
		t.Error("NotClass() should be negated")
	}
}

// TestGroup tests explicit grouping
func TestGroup(t *testing.T) {
	p := Group(Lit("ab"))
	if p.String() != "(?:ab)" {
		t.Errorf("Group().String() = %q, want %q", p.String(), "(?:ab)")
	}
	if !p.Atomic() {
		t.Error("Group() should be atomic")
	}

	// Grouping an assertion makes it quantifiable.
	a, err := Ahead(Text("x"))
	if err != nil {
		t.Fatalf("Ahead() error = %v", err)
	}
	g := Group(a)
	if g.Composite() {
		t.Error("Group(assertion) should not be composite")
	}
	q, err := Exactly(g, 2)
	if err != nil {
		t.Fatalf("Exactly(Group(assertion), 2) error = %v", err)
	}
	if q.String() != "(?:(?=x)){2}" {
		t.Errorf("quantified group = %q, want %q", q.String(), "(?:(?=x)){2}")
	}
}

// TestPatternReuse verifies that composition never mutates its inputs
func TestPatternReuse(t *testing.T) {
	base := Lit("ab")
	before := base.String()

	if _, err := Exactly(base, 3); err != nil {
		t.Fatalf("Exactly() error = %v", err)
	}
	if _, err := Join(base, Digit); err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	if _, err := Ahead(base); err != nil {
		t.Fatalf("Ahead() error = %v", err)
	}

	if base.String() != before {
		t.Errorf("input Pattern changed from %q to %q", before, base.String())
	}
}
