// Package bytesource supplies the abstract byte stream the tokenizer reads
// from. It is the Go stand-in for spec §6's "abstract byte-stream handle
// with a single operation read_byte() -> byte | eof".
package bytesource

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Source yields successive bytes. ReadByte returns io.EOF once exhausted,
// matching the io.ByteReader contract so any bufio.Reader satisfies it
// directly.
type Source interface {
	ReadByte() (byte, error)
}

// FromString returns a Source over an in-memory expression.
func FromString(s string) Source {
	return bufio.NewReader(strings.NewReader(s))
}

// FromReader wraps an arbitrary io.Reader.
func FromReader(r io.Reader) Source {
	return bufio.NewReader(r)
}

// FromFile opens path and returns a Source over its contents, plus a
// closer the caller must invoke on every exit path (success or failure)
// per the resource discipline in spec §5/§9.
func FromFile(path string) (Source, func() error, error) {
	// #nosec G304 -- path is caller-supplied by design, same as loader.LoadELF in the teacher repo
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("bytesource: open %s: %w", path, err)
	}
	return bufio.NewReader(f), f.Close, nil
}
