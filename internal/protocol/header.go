package protocol

import "fmt"

const (
	// HeaderSize is the fixed wire size of the BGAPI preamble.
	HeaderSize = 4
	// MaxPayloadLen is the largest payload the 11-bit length field can carry.
	MaxPayloadLen = 0x07FF
)

// Header is the fixed 4-byte preamble in front of every BGAPI message.
//
// Wire layout, per the BLED112 API reference:
//
//	byte 0: [type:1][technology:4][length high:3]
//	byte 1: length low 8 bits
//	byte 2: class id
//	byte 3: command id
//
// The technology bits are always zero for BLE and are not modelled.
type Header struct {
	Event   bool // type bit: false for commands/responses, true for events
	Class   uint8
	Command uint8
	Length  uint16 // payload byte count, 11 bits on the wire
}

// EncodeHeader packs h into its 4-byte wire form.
func EncodeHeader(h Header) ([]byte, error) {
	if h.Length > MaxPayloadLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, h.Length)
	}
	buf := make([]byte, HeaderSize)
	buf[0] = byte(h.Length >> 8 & 0x07)
	if h.Event {
		buf[0] |= 0x80
	}
	buf[1] = byte(h.Length)
	buf[2] = h.Class
	buf[3] = h.Command
	return buf, nil
}

// DecodeHeader unpacks exactly 4 raw bytes into a Header. Shorter input is
// a transport-layer short read and is rejected here only as a length error.
func DecodeHeader(b []byte) (Header, error) {
	if len(b) != HeaderSize {
		return Header{}, fmt.Errorf("protocol: invalid header length: %d", len(b))
	}
	return Header{
		Event:   b[0]&0x80 != 0,
		Class:   b[2],
		Command: b[3],
		Length:  uint16(b[0]&0x07)<<8 | uint16(b[1]),
	}, nil
}
