package bgapi

import (
	"encoding/binary"

	"github.com/bluegill/bledctl/internal/protocol"
)

// StatusEvent flag bits.
const (
	ConnectionConnected         uint8 = 0x01
	ConnectionEncrypted         uint8 = 0x02
	ConnectionCompleted         uint8 = 0x04
	ConnectionParametersChanged uint8 = 0x08
)

// Disconnect asks the dongle to close an active connection.
type Disconnect struct {
	Connection uint8
}

func (m *Disconnect) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassConnection, Command: 0, Size: 1}
}

func (m *Disconnect) MarshalWire() []byte {
	return []byte{m.Connection}
}

func (m *Disconnect) UnmarshalWire(b []byte) error {
	if len(b) < 1 {
		return protocol.ErrShortPayload
	}
	m.Connection = b[0]
	return nil
}

type DisconnectResponse struct {
	Connection uint8
	Result     uint16
}

func (m *DisconnectResponse) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassConnection, Command: 0, Size: 3}
}

func (m *DisconnectResponse) MarshalWire() []byte {
	buf := make([]byte, 3)
	buf[0] = m.Connection
	binary.LittleEndian.PutUint16(buf[1:3], m.Result)
	return buf
}

func (m *DisconnectResponse) UnmarshalWire(b []byte) error {
	if len(b) < 3 {
		return protocol.ErrShortPayload
	}
	m.Connection = b[0]
	m.Result = binary.LittleEndian.Uint16(b[1:3])
	return nil
}

// StatusEvent reports the state of a connection; the Completed flag marks a
// freshly established link.
type StatusEvent struct {
	Connection   uint8
	Flags        uint8
	Address      Address
	AddressType  uint8
	ConnInterval uint16
	Timeout      uint16
	Latency      uint16
	Bonding      uint8
}

func (m *StatusEvent) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassConnection, Command: 0, Size: 16}
}

func (m *StatusEvent) MarshalWire() []byte {
	buf := make([]byte, 16)
	buf[0] = m.Connection
	buf[1] = m.Flags
	copy(buf[2:8], m.Address[:])
	buf[8] = m.AddressType
	binary.LittleEndian.PutUint16(buf[9:11], m.ConnInterval)
	binary.LittleEndian.PutUint16(buf[11:13], m.Timeout)
	binary.LittleEndian.PutUint16(buf[13:15], m.Latency)
	buf[15] = m.Bonding
	return buf
}

func (m *StatusEvent) UnmarshalWire(b []byte) error {
	if len(b) < 16 {
		return protocol.ErrShortPayload
	}
	m.Connection = b[0]
	m.Flags = b[1]
	copy(m.Address[:], b[2:8])
	m.AddressType = b[8]
	m.ConnInterval = binary.LittleEndian.Uint16(b[9:11])
	m.Timeout = binary.LittleEndian.Uint16(b[11:13])
	m.Latency = binary.LittleEndian.Uint16(b[13:15])
	m.Bonding = b[15]
	return nil
}

// DisconnectedEvent reports a closed connection and the disconnect reason.
type DisconnectedEvent struct {
	Connection uint8
	Reason     uint16
}

func (m *DisconnectedEvent) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassConnection, Command: 4, Size: 3}
}

func (m *DisconnectedEvent) MarshalWire() []byte {
	buf := make([]byte, 3)
	buf[0] = m.Connection
	binary.LittleEndian.PutUint16(buf[1:3], m.Reason)
	return buf
}

func (m *DisconnectedEvent) UnmarshalWire(b []byte) error {
	if len(b) < 3 {
		return protocol.ErrShortPayload
	}
	m.Connection = b[0]
	m.Reason = binary.LittleEndian.Uint16(b[1:3])
	return nil
}
