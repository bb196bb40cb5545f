package client

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/bluegill/bledctl/internal/protocol"
	"github.com/bluegill/bledctl/internal/protocol/bgapi"
	"github.com/bluegill/bledctl/internal/testutil/streamtest"
	"github.com/bluegill/bledctl/internal/testutil/testlog"
)

// fixedProbe and partialProbe share a wire identity so the overlap between
// fixed and partial matching can be exercised.
type fixedProbe struct {
	A uint16
	B uint16
}

func (m *fixedProbe) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: 2, Command: 3, Size: 4}
}

func (m *fixedProbe) MarshalWire() []byte {
	return []byte{byte(m.A), byte(m.A >> 8), byte(m.B), byte(m.B >> 8)}
}

func (m *fixedProbe) UnmarshalWire(b []byte) error {
	if len(b) < 4 {
		return protocol.ErrShortPayload
	}
	m.A = uint16(b[0]) | uint16(b[1])<<8
	m.B = uint16(b[2]) | uint16(b[3])<<8
	return nil
}

type partialProbe struct {
	A uint16
}

func (m *partialProbe) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: 2, Command: 3, Size: 2, Partial: true}
}

func (m *partialProbe) MarshalWire() []byte {
	return []byte{byte(m.A), byte(m.A >> 8)}
}

func (m *partialProbe) UnmarshalWire(b []byte) error {
	if len(b) < 2 {
		return protocol.ErrShortPayload
	}
	m.A = uint16(b[0]) | uint16(b[1])<<8
	return nil
}

func TestSendWritesHeaderThenPayload(t *testing.T) {
	conn := streamtest.New()
	c := New(conn)

	if err := c.Send(&bgapi.ReadByHandle{Connection: 0, Handle: 0x002A}); err != nil {
		t.Fatalf("send: %v", err)
	}
	want := []byte{
		0x00, 0x03, 0x04, 0x04, // header: length=3, class=4, command=4
		0x00, 0x2A, 0x00, // connection, handle LE
	}
	if !bytes.Equal(conn.Written(), want) {
		t.Fatalf("wire mismatch:\n got=% x\nwant=% x", conn.Written(), want)
	}
}

func TestSendWithTrailingExtendsLength(t *testing.T) {
	conn := streamtest.New()
	c := New(conn)

	value := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	cmd := bgapi.AttributeWrite{Connection: 1, Handle: 0x0011, ValueLength: uint8(len(value))}
	if err := c.SendWithTrailing(&cmd, value); err != nil {
		t.Fatalf("send with trailing: %v", err)
	}
	want := []byte{
		0x00, 0x08, 0x04, 0x05, // header: length=4+4, class=4, command=5
		0x01, 0x11, 0x00, 0x04, // fixed region
		0xDE, 0xAD, 0xBE, 0xEF, // trailing value
	}
	if !bytes.Equal(conn.Written(), want) {
		t.Fatalf("wire mismatch:\n got=% x\nwant=% x", conn.Written(), want)
	}
}

func TestReceiveExpected(t *testing.T) {
	info := bgapi.GetInfoResponse{Major: 1, Minor: 3, Patch: 2, Build: 1046, LinkLayer: 10, ProtocolVersion: 1, Hardware: 1}
	conn := streamtest.New(streamtest.Frame(&info, false, nil))
	c := New(conn)

	got, err := Receive[bgapi.GetInfoResponse](c)
	if err != nil {
		t.Fatalf("receive: %v", err)
	}
	if *got != info {
		t.Fatalf("message mismatch: got=%+v want=%+v", *got, info)
	}
	if conn.Pending() != 0 {
		t.Fatalf("stream not fully consumed: %d bytes left", conn.Pending())
	}
}

func TestReceiveExpectedMismatchFailsCall(t *testing.T) {
	// a connection-class message arrives while a GAP response is expected
	conn := streamtest.New(streamtest.Frame(&bgapi.DisconnectedEvent{Connection: 0, Reason: 0x0213}, true, nil))
	c := New(conn)

	_, err := Receive[bgapi.EndProcedureResponse](c)
	if !errors.Is(err, protocol.ErrClassMismatch) {
		t.Fatalf("expected ErrClassMismatch, got %v", err)
	}
}

func TestReceiveExpectedLengthMismatch(t *testing.T) {
	hb, err := protocol.EncodeHeader(protocol.Header{Class: bgapi.ClassGAP, Command: 4, Length: 1})
	if err != nil {
		t.Fatalf("encode header: %v", err)
	}
	conn := streamtest.New(hb, []byte{0x00})
	c := New(conn)

	_, rerr := Receive[bgapi.EndProcedureResponse](c)
	if !errors.Is(rerr, protocol.ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", rerr)
	}
}

func TestReceivePartialSplit(t *testing.T) {
	ev := bgapi.AttributeValueEvent{Connection: 0, Handle: 0x002A, Type: 1, ValueLength: 4}
	value := []byte{1, 2, 3, 4}
	conn := streamtest.New(streamtest.Frame(&ev, true, value))
	c := New(conn)

	got, trailing, err := ReceivePartial[bgapi.AttributeValueEvent](c)
	if err != nil {
		t.Fatalf("receive partial: %v", err)
	}
	if *got != ev {
		t.Fatalf("prefix mismatch: got=%+v want=%+v", *got, ev)
	}
	if !bytes.Equal(trailing, value) {
		t.Fatalf("trailing mismatch: got=% x want=% x", trailing, value)
	}
}

func TestDispatchFirstMatchWins(t *testing.T) {
	testlog.Start(t)
	// header {class=2, command=3, length=4} structurally matches both
	// probes; the first registered handler must win
	in := fixedProbe{A: 0x0102, B: 0x0304}
	conn := streamtest.New(streamtest.Frame(&in, false, nil))
	c := New(conn)

	var gotFixed *fixedProbe
	partialCalled := false
	err := c.ReceiveAny(
		On(func(m *fixedProbe) { gotFixed = m }),
		OnPartial(func(m *partialProbe, trailing []byte) { partialCalled = true }),
	)
	if err != nil {
		t.Fatalf("receive any: %v", err)
	}
	if gotFixed == nil || *gotFixed != in {
		t.Fatalf("fixed handler not invoked correctly: %+v", gotFixed)
	}
	if partialCalled {
		t.Fatalf("partial handler must not be evaluated after a match")
	}
}

func TestDispatchRegistrationOrderDecidesOverlap(t *testing.T) {
	in := fixedProbe{A: 0x0102, B: 0x0304}
	conn := streamtest.New(streamtest.Frame(&in, false, nil))
	c := New(conn)

	var gotPartial *partialProbe
	var gotTrailing []byte
	fixedCalled := false
	err := c.ReceiveAny(
		OnPartial(func(m *partialProbe, trailing []byte) {
			gotPartial = m
			gotTrailing = trailing
		}),
		On(func(m *fixedProbe) { fixedCalled = true }),
	)
	if err != nil {
		t.Fatalf("receive any: %v", err)
	}
	if fixedCalled {
		t.Fatalf("fixed handler must not run when the partial one matched first")
	}
	if gotPartial == nil || gotPartial.A != 0x0102 {
		t.Fatalf("partial prefix mismatch: %+v", gotPartial)
	}
	// B = 0x0304 marshals little-endian, so the bytes past the partial
	// prefix are 04 03
	if !bytes.Equal(gotTrailing, []byte{0x04, 0x03}) {
		t.Fatalf("trailing mismatch: % x", gotTrailing)
	}
}

func TestDispatchNoMatchDropsMessage(t *testing.T) {
	testlog.Start(t)
	hb, err := protocol.EncodeHeader(protocol.Header{Class: 9, Command: 9, Length: 3})
	if err != nil {
		t.Fatalf("encode header: %v", err)
	}
	follow := bgapi.EndProcedureResponse{Result: 0}
	conn := streamtest.New(hb, []byte{1, 2, 3}, streamtest.Frame(&follow, false, nil))
	c := New(conn)

	invoked := false
	err = c.ReceiveAny(
		On(func(m *bgapi.DisconnectResponse) { invoked = true }),
		On(func(m *bgapi.EndProcedureResponse) { invoked = true }),
	)
	if err != nil {
		t.Fatalf("unmatched dispatch must not fail: %v", err)
	}
	if invoked {
		t.Fatalf("no handler should run for an unknown message")
	}

	// the dropped payload must have been consumed so the stream stays
	// aligned for the next read
	if _, err := Receive[bgapi.EndProcedureResponse](c); err != nil {
		t.Fatalf("stream misaligned after drop: %v", err)
	}
	if conn.Pending() != 0 {
		t.Fatalf("stream not fully consumed: %d bytes left", conn.Pending())
	}
}

func TestReceivePropagatesTransportError(t *testing.T) {
	conn := streamtest.New([]byte{0x00}) // short of a full header
	c := New(conn)
	if _, err := Receive[bgapi.EndProcedureResponse](c); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestReceiveRejectsPartialType(t *testing.T) {
	conn := streamtest.New(streamtest.Frame(&partialProbe{A: 1}, false, nil))
	c := New(conn)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for partial type passed to Receive")
		}
		// the panic must fire before any transport read
		if conn.Pending() != protocol.HeaderSize+2 {
			t.Fatalf("transport consumed despite misuse: %d bytes left", conn.Pending())
		}
	}()
	Receive[partialProbe](c)
}

func TestReceivePartialRejectsFixedType(t *testing.T) {
	c := New(streamtest.New())
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for fixed type passed to ReceivePartial")
		}
	}()
	ReceivePartial[fixedProbe](c)
}

func TestOnRejectsPartialType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for partial type bound with On")
		}
	}()
	On(func(m *partialProbe) {})
}
