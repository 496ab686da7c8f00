package monolex

import (
	"strings"
	"testing"

	"github.com/mpspoly/polyparse/diag"
	"github.com/mpspoly/polyparse/polyrat"
)

func noMoreTokens() (string, bool) { return "", false }

func TestReadCoefficientRealLeavesExponentMarker(t *testing.T) {
	c, rest, err := ReadCoefficient("2x^3", noMoreTokens, diag.StdAllocator{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Equal(polyrat.RealComplex(polyrat.FromInt64(2))) {
		t.Fatalf("got %v, want 2", c)
	}
	if rest != "x^3" {
		t.Fatalf("got rest %q, want %q", rest, "x^3")
	}
}

func TestReadCoefficientComplexWithinOneToken(t *testing.T) {
	c, rest, err := ReadCoefficient("(1,2)x^3", noMoreTokens, diag.StdAllocator{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := polyrat.Complex{Re: polyrat.FromInt64(1), Im: polyrat.FromInt64(2)}
	if !c.Equal(want) {
		t.Fatalf("got %v, want %v", c, want)
	}
	if rest != "x^3" {
		t.Fatalf("got rest %q, want %q", rest, "x^3")
	}
}

func TestReadCoefficientComplexStitchesAcrossTokens(t *testing.T) {
	// Simulates "(1, 2)x^3" tokenizing as ["(1,", "2)x^3"].
	tokens := []string{"2)x^3"}
	pull := func() (string, bool) {
		if len(tokens) == 0 {
			return "", false
		}
		tok := tokens[0]
		tokens = tokens[1:]
		return tok, true
	}

	c, rest, err := ReadCoefficient("(1,", pull, diag.StdAllocator{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := polyrat.Complex{Re: polyrat.FromInt64(1), Im: polyrat.FromInt64(2)}
	if !c.Equal(want) {
		t.Fatalf("got %v, want %v", c, want)
	}
	if rest != "x^3" {
		t.Fatalf("got rest %q, want %q", rest, "x^3")
	}
}

func TestReadCoefficientUnterminatedComplex(t *testing.T) {
	_, _, err := ReadCoefficient("(1,2", noMoreTokens, diag.StdAllocator{})
	if err == nil {
		t.Fatal("expected an error for an unterminated complex coefficient")
	}
	merr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if merr.Kind != ErrUnterminatedComplexCoefficient {
		t.Fatalf("got kind %v, want ErrUnterminatedComplexCoefficient", merr.Kind)
	}
}

func TestReadCoefficientMissingComma(t *testing.T) {
	_, _, err := ReadCoefficient("(12)x", noMoreTokens, diag.StdAllocator{})
	if err == nil {
		t.Fatal("expected an error for a missing comma")
	}
	merr := err.(*Error)
	if merr.Kind != ErrMissingComma {
		t.Fatalf("got kind %v, want ErrMissingComma", merr.Kind)
	}
}

func TestReadCoefficientNestedOpenIsClosingBracketError(t *testing.T) {
	_, _, err := ReadCoefficient("(1,(2)", noMoreTokens, diag.StdAllocator{})
	if err == nil {
		t.Fatal("expected an error for a nested '('")
	}
	merr := err.(*Error)
	if merr.Kind != ErrMissingClosingBracket {
		t.Fatalf("got kind %v, want ErrMissingClosingBracket", merr.Kind)
	}
}

func TestReadExponentBareX(t *testing.T) {
	degree, rest, err := ReadExponent("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if degree != 1 || rest != "" {
		t.Fatalf("got degree=%d rest=%q, want 1 and \"\"", degree, rest)
	}
}

func TestReadExponentCaret(t *testing.T) {
	degree, rest, err := ReadExponent("x^12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if degree != 12 || rest != "" {
		t.Fatalf("got degree=%d rest=%q, want 12 and \"\"", degree, rest)
	}
}

func TestReadExponentNoXMeansDegreeZero(t *testing.T) {
	degree, rest, err := ReadExponent("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if degree != 0 || rest != "" {
		t.Fatalf("got degree=%d rest=%q, want 0 and \"\"", degree, rest)
	}
}

func TestReadExponentLeavesTrailingSignForCaller(t *testing.T) {
	degree, rest, err := ReadExponent("x^2-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if degree != 2 || rest != "-1" {
		t.Fatalf("got degree=%d rest=%q, want 2 and \"-1\"", degree, rest)
	}
}

func TestReadExponentNegativeIsAnError(t *testing.T) {
	_, _, err := ReadExponent("x^-2")
	if err == nil {
		t.Fatal("expected an error for a negative exponent")
	}
	merr := err.(*Error)
	if merr.Kind != ErrNegativeExponent {
		t.Fatalf("got kind %v, want ErrNegativeExponent", merr.Kind)
	}
}

func TestReadExponentGarbageAfterCaret(t *testing.T) {
	_, _, err := ReadExponent("x^")
	if err == nil {
		t.Fatal("expected an error for a caret with no digits")
	}
}

func TestReadExponentTooManyDigitsOverflows(t *testing.T) {
	_, _, err := ReadExponent("x^" + strings.Repeat("9", 30))
	if err == nil {
		t.Fatal("expected an error for an oversized exponent")
	}
	merr := err.(*Error)
	if merr.Kind != ErrExponentTooLarge {
		t.Fatalf("got kind %v, want ErrExponentTooLarge", merr.Kind)
	}
}

func TestReadExponentGarbageAfterX(t *testing.T) {
	_, _, err := ReadExponent("xy")
	if err == nil {
		t.Fatal("expected an error for an unrecognized token after x")
	}
	merr := err.(*Error)
	if merr.Kind != ErrUnexpectedTokenAfterX {
		t.Fatalf("got kind %v, want ErrUnexpectedTokenAfterX", merr.Kind)
	}
}
