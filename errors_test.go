package rex

import (
	"errors"
	"strings"
	"testing"
)

// TestErrorClassification tests sentinel matching via errors.Is
func TestErrorClassification(t *testing.T) {
	_, qErr := Repeat(Digit, 3, 2)
	if !errors.Is(qErr, ErrInvalidQuantifier) {
		t.Errorf("Repeat error not classified as ErrInvalidQuantifier: %v", qErr)
	}
	if errors.Is(qErr, ErrInvalidArgument) {
		t.Error("quantifier error must not classify as ErrInvalidArgument")
	}

	_, aErr := Join()
	if !errors.Is(aErr, ErrInvalidArgument) {
		t.Errorf("Join error not classified as ErrInvalidArgument: %v", aErr)
	}
	if errors.Is(aErr, ErrInvalidQuantifier) {
		t.Error("argument error must not classify as ErrInvalidQuantifier")
	}
}

// TestErrorMessagesNameOperation tests that messages identify the offending
// call site
func TestErrorMessagesNameOperation(t *testing.T) {
	_, err := Exactly(Digit, -2)
	if !strings.Contains(err.Error(), "Exactly") {
		t.Errorf("Exactly error %q does not name the operation", err.Error())
	}

	_, err = NotBehind(nil)
	if !strings.Contains(err.Error(), "NotBehind") {
		t.Errorf("NotBehind error %q does not name the operation", err.Error())
	}
}

// TestQuantifierErrorFields tests programmatic access to the rejected bounds
func TestQuantifierErrorFields(t *testing.T) {
	_, err := Repeat(Digit, 5, 2)
	var qe *QuantifierError
	if !errors.As(err, &qe) {
		t.Fatalf("error is not *QuantifierError: %v", err)
	}
	if qe.Min != 5 || qe.Max != 2 {
		t.Errorf("QuantifierError bounds = {%d,%d}, want {5,2}", qe.Min, qe.Max)
	}
}

// TestFailedCallReturnsZeroPattern tests that errors carry no partial result
func TestFailedCallReturnsZeroPattern(t *testing.T) {
	p, err := Repeat(Digit, -1, 2)
	if err == nil {
		t.Fatal("Repeat() expected error")
	}
	if p.String() != "" {
		t.Errorf("failed Repeat() returned non-zero Pattern %q", p.String())
	}
}
