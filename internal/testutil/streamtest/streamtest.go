// Package streamtest provides a scripted, recording in-memory transport for
// exercising client conversations without hardware.
package streamtest

import (
	"bytes"
	"errors"
	"io"

	"github.com/bluegill/bledctl/internal/protocol"
)

var ErrClosed = errors.New("streamtest: conn is closed")

// Conn serves scripted incoming bytes and records everything written.
type Conn struct {
	incoming bytes.Buffer
	outgoing bytes.Buffer
	closed   bool
}

// New builds a Conn whose reads serve the script chunks in order.
func New(script ...[]byte) *Conn {
	c := &Conn{}
	for _, chunk := range script {
		c.incoming.Write(chunk)
	}
	return c
}

// Feed appends more incoming bytes to the script.
func (c *Conn) Feed(p []byte) {
	c.incoming.Write(p)
}

func (c *Conn) Read(n int) ([]byte, error) {
	if c.closed {
		return nil, ErrClosed
	}
	if c.incoming.Len() < n {
		return nil, io.ErrUnexpectedEOF
	}
	buf := make([]byte, n)
	c.incoming.Read(buf)
	return buf, nil
}

func (c *Conn) Write(p []byte) error {
	if c.closed {
		return ErrClosed
	}
	c.outgoing.Write(p)
	return nil
}

func (c *Conn) Close() error {
	c.closed = true
	return nil
}

// Written returns every byte written so far.
func (c *Conn) Written() []byte {
	return c.outgoing.Bytes()
}

// Pending returns the number of scripted bytes not yet consumed, which lets
// tests assert that the stream stayed aligned.
func (c *Conn) Pending() int {
	return c.incoming.Len()
}

// Frame builds one scripted wire message from m plus optional trailing
// bytes. It panics on malformed input because it only serves tests.
func Frame(m protocol.Message, event bool, trailing []byte) []byte {
	h := m.Descriptor().WireHeader(len(trailing))
	h.Event = event
	hb, err := protocol.EncodeHeader(h)
	if err != nil {
		panic(err)
	}
	out := append(hb, m.MarshalWire()...)
	return append(out, trailing...)
}
