package protocol

import "fmt"

// Descriptor is the wire identity of one message type. Every value is a
// definition-time constant; nothing here is computed from received data.
type Descriptor struct {
	Class   uint8
	Command uint8
	Size    int  // bytes occupied by the fixed-size region of the payload
	Partial bool // a variable-length buffer trails the fixed region
}

// Matches reports whether h identifies a message of this type. Fixed types
// require the exact payload length, partial types at least the fixed size.
func (d Descriptor) Matches(h Header) bool {
	if h.Class != d.Class || h.Command != d.Command {
		return false
	}
	if d.Partial {
		return int(h.Length) >= d.Size
	}
	return int(h.Length) == d.Size
}

// WireHeader returns the header for an outgoing message of this type
// carrying n trailing bytes after the fixed region.
func (d Descriptor) WireHeader(n int) Header {
	return Header{Class: d.Class, Command: d.Command, Length: uint16(d.Size + n)}
}

// CheckHeader validates h against the expected message descriptor and
// reports the first mismatch. Class is checked before command, command
// before length, so the returned error names the outermost disagreement.
func CheckHeader(d Descriptor, h Header) error {
	if h.Class != d.Class {
		return fmt.Errorf("%w: got=%d want=%d", ErrClassMismatch, h.Class, d.Class)
	}
	if h.Command != d.Command {
		return fmt.Errorf("%w: got=%d want=%d", ErrCommandMismatch, h.Command, d.Command)
	}
	if !d.Partial && int(h.Length) != d.Size {
		return fmt.Errorf("%w: got=%d want=%d", ErrLengthMismatch, h.Length, d.Size)
	}
	if d.Partial && int(h.Length) < d.Size {
		return fmt.Errorf("%w: got=%d want at least %d", ErrLengthMismatch, h.Length, d.Size)
	}
	return nil
}

// Message is implemented by every BGAPI message type. MarshalWire produces
// exactly Descriptor().Size bytes; UnmarshalWire decodes the fixed-size
// region and leaves any trailing buffer to the caller.
type Message interface {
	Descriptor() Descriptor
	MarshalWire() []byte
	UnmarshalWire(b []byte) error
}
