// Package tokenbuf buffers a bytesource.Source and splits it into maximal
// runs of non-whitespace bytes — spec component 2, "Token buffer". The
// grammar is ASCII only, so bytes are read and compared directly rather
// than decoded as runes, the same choice parser.Lexer makes for ARM
// assembly source.
package tokenbuf

import (
	"io"
	"strings"
)

// Token is an owned, whitespace-trimmed, non-empty token string.
type Token string

// Buffer reads successive tokens from an underlying byte source, one
// lookahead byte at a time, mirroring parser.Lexer's ch/readByte/peekByte
// shape.
type Buffer struct {
	src io.ByteReader
	ch  byte
	eof bool
}

// New wraps src in a Buffer positioned before the first byte.
func New(src io.ByteReader) *Buffer {
	b := &Buffer{src: src}
	b.advance()
	return b
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// advance loads the next byte into b.ch, setting b.eof once the source is
// exhausted.
func (b *Buffer) advance() {
	ch, err := b.src.ReadByte()
	if err != nil {
		// The grammar offers no recovery path for a transport error;
		// treat it the same as end-of-input, same as a short read from
		// an os.File the caller already validated.
		b.eof = true
		return
	}
	b.ch = ch
}

// NextToken returns the next maximal non-whitespace run, or ("", false)
// once the source is exhausted with nothing left to deliver.
func (b *Buffer) NextToken() (Token, bool) {
	for !b.eof && isSpace(b.ch) {
		b.advance()
	}
	if b.eof {
		return "", false
	}

	var sb strings.Builder
	for !b.eof && !isSpace(b.ch) {
		sb.WriteByte(b.ch)
		b.advance()
	}
	return Token(sb.String()), true
}
