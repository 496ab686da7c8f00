package polyrat

import "fmt"

// Complex is a complex rational, (re, im) with value semantics. The zero
// value has both parts equal to 0/1, matching spec §3.
type Complex struct {
	Re, Im Rational
}

// ZeroComplex returns the additive identity.
func ZeroComplex() Complex { return Complex{Re: Zero(), Im: Zero()} }

// RealComplex lifts a real value into the complex plane with Im == 0.
func RealComplex(re Rational) Complex { return Complex{Re: re, Im: Zero()} }

// IsZero reports whether both components are exactly zero, the test the
// coefficient accumulator uses to decide whether to trim a slot (spec
// §4.6 step 3).
func (c Complex) IsZero() bool { return c.Re.IsZero() && c.Im.IsZero() }

// Add returns c + other, component-wise.
func (c Complex) Add(other Complex) Complex {
	return Complex{Re: c.Re.Add(other.Re), Im: c.Im.Add(other.Im)}
}

// Neg returns -c.
func (c Complex) Neg() Complex {
	return Complex{Re: c.Re.Neg(), Im: c.Im.Neg()}
}

// Scale returns c multiplied by a real sign/magnitude factor — used by the
// parser to fold a monomial's leading sign into its coefficient.
func (c Complex) Scale(factor Rational) Complex {
	return Complex{Re: c.Re.Mul(factor), Im: c.Im.Mul(factor)}
}

// Equal reports exact equality of both components.
func (c Complex) Equal(other Complex) bool {
	return c.Re.Equal(other.Re) && c.Im.Equal(other.Im)
}

// String renders c the way the formatter needs to: a bare real literal
// when Im is zero, otherwise "(re,im)" — the exact form polyparse.Parse
// accepts back in, so Render/Parse round-trip (testable property 5).
func (c Complex) String() string {
	if c.Im.IsZero() {
		return c.Re.String()
	}
	return fmt.Sprintf("(%s,%s)", c.Re.String(), c.Im.String())
}
