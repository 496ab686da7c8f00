// Package polyrat holds the exact-arithmetic data model (spec §3:
// BigRational, ComplexRational) and the rational normalizer (spec §4.2)
// that turns a textual coefficient fragment into one of them. It leans on
// math/big the way every exact-arithmetic example in the retrieved pack
// does (rat-expr-parser, akalin-aks-go/bigintpoly.go) — there is no
// ecosystem bignum package among the examples worth reaching for instead.
package polyrat

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/mpspoly/polyparse/diag"
)

// maxDecimalExponentMagnitude bounds the scientific/decimal exponent
// powerOfTen will materialize into a literal digit string. Without a cap
// a fragment like "1e999999999999" would ask strings.Repeat for an
// absurd or negative digit count and panic or exhaust memory instead of
// reporting a normal parse failure.
const maxDecimalExponentMagnitude = 100_000

// Rational is an exact arbitrary-precision quotient, always kept in lowest
// terms by the underlying big.Rat.
type Rational struct {
	v *big.Rat
}

// Zero returns the additive identity.
func Zero() Rational { return Rational{v: new(big.Rat)} }

// FromRat wraps an existing big.Rat. The caller must not mutate r after
// handing it over; Rational has value semantics from this point on.
func FromRat(r *big.Rat) Rational { return Rational{v: r} }

// FromInt64 is a convenience constructor used heavily in tests.
func FromInt64(n int64) Rational { return Rational{v: big.NewRat(n, 1)} }

func (r Rational) rat() *big.Rat {
	if r.v == nil {
		return new(big.Rat)
	}
	return r.v
}

// IsZero reports whether r is exactly zero.
func (r Rational) IsZero() bool { return r.rat().Sign() == 0 }

// Sign returns -1, 0, or 1 according to the sign of r.
func (r Rational) Sign() int { return r.rat().Sign() }

// Abs returns the absolute value of r.
func (r Rational) Abs() Rational {
	if r.Sign() < 0 {
		return r.Neg()
	}
	return r
}

// Add returns r + other.
func (r Rational) Add(other Rational) Rational {
	return Rational{v: new(big.Rat).Add(r.rat(), other.rat())}
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{v: new(big.Rat).Neg(r.rat())}
}

// Mul returns r * other.
func (r Rational) Mul(other Rational) Rational {
	return Rational{v: new(big.Rat).Mul(r.rat(), other.rat())}
}

// Equal reports whether r and other denote the same exact value.
func (r Rational) Equal(other Rational) bool {
	return r.rat().Cmp(other.rat()) == 0
}

// String renders r as "N" when it is an integer, otherwise "N/D" in
// lowest terms.
func (r Rational) String() string {
	rat := r.rat()
	if rat.IsInt() {
		return rat.Num().String()
	}
	return rat.RatString()
}

// powerOfTen returns 10^n as an exact *big.Int, built as the literal "1"
// followed by n "0"s per spec §4.2 step 4, never via float math.
func powerOfTen(n int) *big.Int {
	s := "1" + strings.Repeat("0", n)
	v := new(big.Int)
	v.SetString(s, 10)
	return v
}

// Normalized is the result of normalizing one real coefficient fragment:
// the canonical value with sign and decimal exponent already folded in,
// plus how many bytes of the fragment were consumed.
type Normalized struct {
	Value    Rational
	Consumed int
}

// NormalizeReal implements spec §4.2: it parses a leading sign, classifies
// the fragment as rational/floating/integer, rejects mixed rational-and-
// floating forms, splits off an e/E exponent, strips the decimal point
// while tracking the fractional digit count, and hands the canonical
// "NUM" or "NUM/DENOM" string to big.Rat's exact parser. It stops at the
// first byte that cannot continue a real-number literal (notably 'x'),
// and reports how much of fragment it consumed so callers can continue
// lexing from there.
func NormalizeReal(fragment string, alloc diag.Allocator) (Normalized, error) {
	i := 0
	n := len(fragment)
	sign := 1

	// Step 1: leading sign/whitespace run.
	for i < n {
		switch fragment[i] {
		case '+':
			i++
		case '-':
			sign *= -1
			i++
		case ' ', '\t':
			i++
		default:
			goto signDone
		}
	}
signDone:

	start := i
	for i < n && fragment[i] != 'x' && fragment[i] != 'X' {
		// A '+'/'-' past the start ends the literal unless it is the sign
		// of an e/E exponent; otherwise it begins the next monomial.
		if (fragment[i] == '+' || fragment[i] == '-') && i > start &&
			fragment[i-1] != 'e' && fragment[i-1] != 'E' {
			break
		}
		i++
	}
	body := fragment[start:i]
	if body == "" {
		// Edge policy (§4.2): a fragment beginning with x has an implicit
		// coefficient of 1; the sign has already been consumed above.
		return Normalized{Value: applySign(FromInt64(1), sign), Consumed: i}, nil
	}

	hasSlash := strings.ContainsRune(body, '/')
	hasFloatMarker := strings.ContainsAny(body, ".eE")
	if hasSlash && hasFloatMarker {
		return Normalized{}, &NormalizeError{Kind: ErrMixedRationalAndFloating, Fragment: body}
	}

	var canonical string
	decimalExp := 0

	if hasSlash {
		canonical = body
	} else {
		mantissa := body
		if idx := strings.IndexAny(body, "eE"); idx >= 0 {
			mantissa = body[:idx]
			expPart := body[idx+1:]
			e, err := parseSignedInt(expPart)
			if err != nil {
				return Normalized{}, &NormalizeError{Kind: ErrCannotParseCoefficient, Fragment: body}
			}
			if absInt(e) > maxDecimalExponentMagnitude {
				return Normalized{}, &NormalizeError{Kind: ErrExponentTooLarge, Fragment: body}
			}
			decimalExp = e
		}

		numerator := mantissa
		fractionalDigits := 0
		if dot := strings.IndexByte(mantissa, '.'); dot >= 0 {
			intPart := mantissa[:dot]
			fracPart := mantissa[dot+1:]
			fractionalDigits = len(fracPart)
			// Leading zeros are dropped: big.Rat reads a "0"-prefixed
			// numerator of a fraction as octal.
			numerator = strings.TrimLeft(intPart+fracPart, "0")
			if numerator == "" {
				numerator = "0"
			}
		}
		if fractionalDigits > 0 {
			canonical = numerator + "/" + powerOfTen(fractionalDigits).String()
		} else {
			canonical = numerator
		}
	}

	rat := alloc.NewRat()
	if _, ok := rat.SetString(canonical); !ok {
		return Normalized{}, &NormalizeError{Kind: ErrCannotParseCoefficient, Fragment: body}
	}

	value := Rational{v: rat}
	if sign == -1 {
		value = value.Neg()
	}
	if decimalExp != 0 {
		value = applyDecimalExponent(value, decimalExp)
	}

	return Normalized{Value: value, Consumed: i}, nil
}

func applySign(r Rational, sign int) Rational {
	if sign == -1 {
		return r.Neg()
	}
	return r
}

// applyDecimalExponent scales value by 10^exp using exact integer
// multiplication/division (spec §4.2 step 7), never floating point.
func applyDecimalExponent(value Rational, exp int) Rational {
	if exp == 0 {
		return value
	}
	scale := new(big.Rat).SetInt(powerOfTen(absInt(exp)))
	if exp > 0 {
		return Rational{v: new(big.Rat).Mul(value.rat(), scale)}
	}
	return Rational{v: new(big.Rat).Quo(value.rat(), scale)}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func parseSignedInt(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty exponent")
	}
	sign := 1
	i := 0
	if s[0] == '+' || s[0] == '-' {
		if s[0] == '-' {
			sign = -1
		}
		i++
	}
	if i >= len(s) {
		return 0, fmt.Errorf("malformed exponent %q", s)
	}
	n := 0
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("malformed exponent %q", s)
		}
		digit := int(s[i] - '0')
		if n > (math.MaxInt-digit)/10 {
			return 0, fmt.Errorf("exponent %q overflows", s)
		}
		n = n*10 + digit
	}
	return sign * n, nil
}

// NormalizeErrorKind discriminates the normalizer's own slice of the
// spec §7 error taxonomy.
type NormalizeErrorKind int

const (
	ErrCannotParseCoefficient NormalizeErrorKind = iota
	ErrMixedRationalAndFloating
	ErrExponentTooLarge
)

// NormalizeError reports a malformed coefficient fragment.
type NormalizeError struct {
	Kind     NormalizeErrorKind
	Fragment string
}

func (e *NormalizeError) Error() string {
	switch e.Kind {
	case ErrMixedRationalAndFloating:
		return fmt.Sprintf("mixed rational and floating forms in %q", e.Fragment)
	case ErrExponentTooLarge:
		return fmt.Sprintf("scientific exponent too large in %q", e.Fragment)
	default:
		return fmt.Sprintf("cannot parse coefficient %q", e.Fragment)
	}
}
