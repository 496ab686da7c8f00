// Package diag carries the two things a parse call needs from its caller
// but must never reach for through a global: somewhere to write diagnostics,
// and something to mint BigRational values from.
package diag

import (
	"log"
	"math/big"
	"os"
)

// Sink receives one line of diagnostic text per parse failure.
type Sink interface {
	Diagnostic(line string)
}

// LogSink writes diagnostics through a stdlib *log.Logger.
type LogSink struct {
	Logger *log.Logger
}

// NewLogSink returns a Sink writing to stderr with no extra prefix.
func NewLogSink() *LogSink {
	return &LogSink{Logger: log.New(os.Stderr, "", 0)}
}

func (s *LogSink) Diagnostic(line string) {
	s.Logger.Println(line)
}

// CollectingSink stores diagnostics instead of printing them, for tests
// that need to assert "exactly one diagnostic line" (spec §7 policy).
type CollectingSink struct {
	Lines []string
}

func (s *CollectingSink) Diagnostic(line string) {
	s.Lines = append(s.Lines, line)
}

// DiscardSink drops every diagnostic. Useful for callers that only care
// about the returned error.
type DiscardSink struct{}

func (DiscardSink) Diagnostic(string) {}

// Allocator mints BigRational backing values. It exists so tests can swap
// in a counting implementation and assert that nothing escapes the
// failure path of a parse call, the Go analogue of the spec's "allocator
// for BigRational instances" (§9 design note 1).
type Allocator interface {
	NewRat() *big.Rat
}

// StdAllocator allocates directly from the runtime heap.
type StdAllocator struct{}

func (StdAllocator) NewRat() *big.Rat { return new(big.Rat) }

// CountingAllocator wraps another Allocator and counts every NewRat call;
// the count only ever grows; released values are not subtracted.
type CountingAllocator struct {
	Inner     Allocator
	Allocated int
}

func NewCountingAllocator() *CountingAllocator {
	return &CountingAllocator{Inner: StdAllocator{}}
}

func (c *CountingAllocator) NewRat() *big.Rat {
	c.Allocated++
	return c.Inner.NewRat()
}

// Context bundles the diagnostic sink and allocator a single parse call
// uses. Every parser function takes one by reference; there is no
// process-wide singleton to swap out in tests.
type Context struct {
	Sink  Sink
	Alloc Allocator
}

// NewContext returns a Context with the default stdlib-backed sink and
// allocator.
func NewContext() *Context {
	return &Context{Sink: NewLogSink(), Alloc: StdAllocator{}}
}

// NewCollectingContext returns a Context whose sink records diagnostics
// for inspection, the shape most unit tests want.
func NewCollectingContext() (*Context, *CollectingSink) {
	sink := &CollectingSink{}
	return &Context{Sink: sink, Alloc: StdAllocator{}}, sink
}
