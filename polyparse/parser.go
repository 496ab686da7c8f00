// Package polyparse drives spec §4.5's parser state machine over a
// tokenbuf.Buffer, using monolex to extract each monomial's coefficient
// and exponent and polyparse's own coeffTable (spec §4.6) to accumulate
// them into a poly.Polynomial (spec §4.7). Error handling follows
// parser.Error/ErrorList's shape from the teacher's ARM assembler, and
// control flow uses ordinary early returns rather than the original's
// goto-cleanup, per spec §9 design note 4 — Go's garbage collector
// retires the need for the scoped-release dance that note describes.
package polyparse

import (
	"github.com/mpspoly/polyparse/bytesource"
	"github.com/mpspoly/polyparse/config"
	"github.com/mpspoly/polyparse/diag"
	"github.com/mpspoly/polyparse/monolex"
	"github.com/mpspoly/polyparse/poly"
	"github.com/mpspoly/polyparse/polyrat"
	"github.com/mpspoly/polyparse/tokenbuf"
)

type state int

const (
	stateSign state = iota
	stateCoefficient
	stateExponent
	stateReset
)

// parser is spec's ParseAccumulator: the lifetime-scoped state of one
// Parse call.
type parser struct {
	ctx   *diag.Context
	tb    *tokenbuf.Buffer
	cur   string
	tokIx int

	sign         int
	signFound    bool
	firstMonomial bool
	pending      polyrat.Complex

	table coeffTable

	// Resource limits (spec §9 design note 1's host-side analogue of the
	// teacher's cycle/stack-size bounds on an otherwise-unbounded
	// execution). Zero means unlimited; only ParseWithConfig sets these.
	maxTokens        int
	maxExponent      int
	maxComplexStitch int
	limitErr         *Error
}

// pull satisfies monolex.Puller: it requests the next token from the
// buffer, tracking the token index for diagnostics and refusing any token
// beyond the first maxTokens when maxTokens is set.
func (p *parser) pull() (string, bool) {
	tok, ok := p.tb.NextToken()
	if !ok {
		return "", false
	}
	if p.maxTokens > 0 && p.tokIx >= p.maxTokens {
		p.limitErr = newError(p.pos(), ErrResourceLimitExceeded, "token count exceeded configured max_tokens")
		return "", false
	}
	p.tokIx++
	return string(tok), true
}

func (p *parser) pos() Position { return Position{TokenIndex: p.tokIx} }

// stitchLimitedPull wraps p.pull with a per-coefficient counter so
// maxComplexStitch bounds how many further tokens a single parenthesized
// complex coefficient may pull in, independent of the overall maxTokens
// budget for the whole expression.
func (p *parser) stitchLimitedPull() monolex.Puller {
	stitches := 0
	return func() (string, bool) {
		if p.maxComplexStitch > 0 && stitches >= p.maxComplexStitch {
			p.limitErr = newError(p.pos(), ErrResourceLimitExceeded, "complex coefficient exceeded configured max_complex_stitch_tokens")
			return "", false
		}
		stitches++
		return p.pull()
	}
}

// loadToken pulls the next token into p.cur. It returns false once the
// token stream is exhausted.
func (p *parser) loadToken() bool {
	tok, ok := p.pull()
	if !ok {
		return false
	}
	p.cur = tok
	return true
}

func signRational(sign int) polyrat.Rational {
	if sign < 0 {
		return polyrat.FromInt64(-1)
	}
	return polyrat.FromInt64(1)
}

// Parse implements spec §6's contract: it consumes src token by token and
// returns either a dense polynomial or a failure signal with exactly one
// diagnostic written to ctx.Sink. Empty input is accepted with neither a
// polynomial nor a diagnostic (spec §9 open question 2); an expression
// that cancels to zero is accepted with a nil polynomial and no error
// (spec §4.7).
func Parse(ctx *diag.Context, src bytesource.Source) (*poly.Polynomial, error) {
	return ParseWithConfig(ctx, src, nil)
}

// ParseWithConfig is Parse with a config.Config's resource limits enforced
// in addition to the grammar itself. A nil cfg behaves exactly like Parse
// (no limit is checked). A limit violation surfaces as ErrResourceLimitExceeded
// through the same single-diagnostic contract as every other failure.
func ParseWithConfig(ctx *diag.Context, src bytesource.Source, cfg *config.Config) (*poly.Polynomial, error) {
	p := &parser{
		ctx:           ctx,
		tb:            tokenbuf.New(src),
		sign:          1,
		firstMonomial: true,
	}
	if cfg != nil {
		p.maxTokens = cfg.Limits.MaxTokens
		p.maxExponent = cfg.Limits.MaxExponent
		p.maxComplexStitch = cfg.Limits.MaxComplexStitchJoin
	}
	return p.run()
}

func (p *parser) run() (*poly.Polynomial, error) {
	st := stateSign
	for {
		if p.cur == "" {
			if !p.loadToken() {
				if p.limitErr != nil {
					return p.fail(p.limitErr)
				}
				if st == stateSign || st == stateReset {
					return poly.Assemble(p.table.slots), nil
				}
				return p.fail(newError(p.pos(), ErrUnexpectedEof, "unexpected end of input"))
			}
		}

		var err *Error
		switch st {
		case stateSign:
			st, err = p.stepSign()
		case stateCoefficient:
			st, err = p.stepCoefficient()
		case stateExponent:
			st, err = p.stepExponent()
		case stateReset:
			st = p.stepReset()
		}
		if err != nil {
			return p.fail(err)
		}
	}
}

func (p *parser) fail(err *Error) (*poly.Polynomial, error) {
	p.ctx.Sink.Diagnostic(err.Error())
	return nil, err
}

// stepSign implements the Sign row of spec §4.5's table: fold every
// leading +/- into p.sign (treating "+-"/"--" as plain multiplication,
// spec §9 open question 1), then decide whether the first non-sign
// monomial is allowed to omit an explicit sign.
func (p *parser) stepSign() (state, *Error) {
	for len(p.cur) > 0 {
		switch p.cur[0] {
		case '+':
			p.signFound = true
			p.cur = p.cur[1:]
			continue
		case '-':
			p.sign *= -1
			p.signFound = true
			p.cur = p.cur[1:]
			continue
		}
		break
	}
	if p.cur == "" {
		return stateSign, nil
	}
	if !p.signFound && !p.firstMonomial {
		return stateSign, newError(p.pos(), ErrMissingSign, "monomial is missing a leading sign")
	}
	return stateCoefficient, nil
}

// stepCoefficient implements the Coefficient row: it reads either a
// complex or real coefficient, stitching further tokens for the former
// via p.pull (spec §4.3). Per spec §4.4, a coefficient that consumes its
// token right to the end carries no exponent marker at all — the
// monomial's degree is 0, and the term is recorded here directly rather
// than deferred to the Exponent row, so the main loop never reloads a
// fresh token to supply an exponent that belongs to a different,
// whitespace-separated monomial.
func (p *parser) stepCoefficient() (state, *Error) {
	coeff, rest, err := monolex.ReadCoefficient(p.cur, p.stitchLimitedPull(), p.ctx.Alloc)
	if err != nil {
		if p.limitErr != nil {
			return stateCoefficient, p.limitErr
		}
		if merr, ok := err.(*monolex.Error); ok {
			return stateCoefficient, fromMonolex(p.pos(), merr)
		}
		return stateCoefficient, newError(p.pos(), ErrCannotParseCoefficient, err.Error())
	}
	p.cur = rest
	if rest == "" {
		p.table.add(0, coeff.Scale(signRational(p.sign)))
		return stateReset, nil
	}
	p.pending = coeff
	return stateExponent, nil
}

// stepExponent implements the Exponent row: it reads the trailing x[^k]
// marker from the remainder of the coefficient's own token, records the
// signed coefficient at that degree, and moves to Reset. stepCoefficient
// only reaches this state with a non-empty cursor, so this never runs
// against a token reloaded from later in the stream.
func (p *parser) stepExponent() (state, *Error) {
	degree, rest, err := monolex.ReadExponent(p.cur)
	if err != nil {
		if merr, ok := err.(*monolex.Error); ok {
			return stateExponent, fromMonolex(p.pos(), merr)
		}
		return stateExponent, newError(p.pos(), ErrUnexpectedTokenAfterCoefficient, err.Error())
	}
	if p.maxExponent > 0 && degree > p.maxExponent {
		return stateExponent, newError(p.pos(), ErrResourceLimitExceeded, "monomial degree exceeded configured max_exponent")
	}
	p.cur = rest
	p.table.add(degree, p.pending.Scale(signRational(p.sign)))
	return stateReset, nil
}

// stepReset implements the Reset row: it re-arms the sign/sign_found
// bookkeeping for the next monomial.
func (p *parser) stepReset() state {
	p.sign = 1
	p.signFound = false
	p.firstMonomial = false
	return stateSign
}
