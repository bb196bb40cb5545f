// Package transport owns the byte-stream boundary under the BGAPI client.
//
// Reads and writes are all-or-nothing: Read blocks until exactly n bytes
// arrived and Write until every byte was sent, or either fails with a
// transport error. Nothing above this package sees partial results.
package transport

import "errors"

var ErrReadTimeout = errors.New("transport: serial read timed out")

// Transport is the stream an engine instance exclusively owns.
type Transport interface {
	// Read blocks until exactly n bytes are available and returns them.
	Read(n int) ([]byte, error)
	// Write blocks until all of p is sent.
	Write(p []byte) error
	Close() error
}
