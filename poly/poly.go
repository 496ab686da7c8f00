// Package poly is spec component 7, the polynomial assembler: it turns a
// finished coefficient array into the dense monomial polynomial the
// external rootfinder consumes, and (as a supplement the original never
// needed, since it only ever fed its own rootfinder) renders a
// polynomial back into the canonical textual form polyparse accepts, so
// a round-trip through Render/Parse is lossless (spec §8 property 5).
package poly

import (
	"strconv"
	"strings"

	"github.com/mpspoly/polyparse/polyrat"
)

// Polynomial is the dense representation of spec §3: every coefficient
// from degree 0 up to Degree(), including zeros in the middle, with the
// top coefficient guaranteed non-zero.
type Polynomial struct {
	coeffs []polyrat.Complex
}

// Assemble builds a Polynomial from a dense coefficient slice indexed by
// degree. It returns nil if coeffs is empty, matching spec §4.7's "no
// polynomial" outcome for a fully-cancelled expression — callers must not
// construct a Polynomial any other way, so the top-slot-non-zero
// invariant always holds by construction.
func Assemble(coeffs []polyrat.Complex) *Polynomial {
	if len(coeffs) == 0 {
		return nil
	}
	owned := make([]polyrat.Complex, len(coeffs))
	copy(owned, coeffs)
	return &Polynomial{coeffs: owned}
}

// Degree returns the polynomial's degree (the index of its non-zero top
// coefficient).
func (p *Polynomial) Degree() int { return len(p.coeffs) - 1 }

// Coefficient returns the coefficient at degree k, or the zero complex
// rational if k is out of range (convenient for callers that don't want
// to special-case gaps below the top).
func (p *Polynomial) Coefficient(k int) polyrat.Complex {
	if k < 0 || k >= len(p.coeffs) {
		return polyrat.ZeroComplex()
	}
	return p.coeffs[k]
}

// Equal reports whether p and other have the same coefficients at every
// degree (spec §8 property 2's term-by-term equality).
func (p *Polynomial) Equal(other *Polynomial) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.Degree() != other.Degree() {
		return false
	}
	for k := 0; k <= p.Degree(); k++ {
		if !p.coeffs[k].Equal(other.coeffs[k]) {
			return false
		}
	}
	return true
}

// RenderStyle selects how Render spaces out monomials.
type RenderStyle int

const (
	RenderDefault RenderStyle = iota
	RenderCompact
)

// String renders p in the default style.
func (p *Polynomial) String() string { return p.Render(RenderDefault) }

// Render serializes p back into the sum-of-monomials textual form
// polyparse.Parse accepts, high-degree-first, one explicit leading sign
// per monomial (never omitted past the first term), and a bare
// coefficient of 1 dropped before x/x^k.
func (p *Polynomial) Render(style RenderStyle) string {
	if p == nil {
		return "0"
	}

	sep := " "
	if style == RenderCompact {
		sep = ""
	}

	var sb strings.Builder
	first := true
	for k := p.Degree(); k >= 0; k-- {
		c := p.coeffs[k]
		if c.IsZero() {
			continue
		}
		writeMonomial(&sb, c, k, first, sep)
		first = false
	}
	if first {
		return "0"
	}
	return sb.String()
}

func writeMonomial(sb *strings.Builder, c polyrat.Complex, degree int, first bool, sep string) {
	neg, mag := splitSign(c)

	if !first {
		if neg {
			sb.WriteString(sep + "-" + sep)
		} else {
			sb.WriteString(sep + "+" + sep)
		}
	} else if neg {
		sb.WriteString("-")
	}

	omitCoeff := degree > 0 && isOne(mag)
	if !omitCoeff {
		sb.WriteString(mag.String())
	}
	if degree == 1 {
		sb.WriteString("x")
	} else if degree > 1 {
		sb.WriteString("x^")
		sb.WriteString(strconv.Itoa(degree))
	}
}

// splitSign pulls a leading minus sign out of a real coefficient so it
// can be rendered as the monomial's sign token; complex coefficients have
// no single sign to extract and are always rendered positively inside
// their own parentheses (matching how the grammar requires the
// parenthesized form's sign to live outside, e.g. "-(1,2)x^3").
func splitSign(c polyrat.Complex) (neg bool, mag polyrat.Complex) {
	if !c.Im.IsZero() || c.Re.Sign() >= 0 {
		return false, c
	}
	return true, polyrat.RealComplex(c.Re.Abs())
}

func isOne(c polyrat.Complex) bool {
	return c.Im.IsZero() && c.Re.Equal(polyrat.FromInt64(1))
}
