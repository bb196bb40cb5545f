package bgapi

import (
	"encoding/binary"

	"github.com/bluegill/bledctl/internal/protocol"
)

// Reset reboots the dongle. The device restarts without sending a response;
// it announces itself with a BootEvent once it is back up.
type Reset struct {
	BootInDFU uint8
}

func (m *Reset) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassSystem, Command: 0, Size: 1}
}

func (m *Reset) MarshalWire() []byte {
	return []byte{m.BootInDFU}
}

func (m *Reset) UnmarshalWire(b []byte) error {
	if len(b) < 1 {
		return protocol.ErrShortPayload
	}
	m.BootInDFU = b[0]
	return nil
}

// GetInfo requests version and build information.
type GetInfo struct{}

func (m *GetInfo) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassSystem, Command: 8, Size: 0}
}

func (m *GetInfo) MarshalWire() []byte { return nil }

func (m *GetInfo) UnmarshalWire(b []byte) error { return nil }

// GetInfoResponse carries the firmware and link layer versions.
type GetInfoResponse struct {
	Major           uint16
	Minor           uint16
	Patch           uint16
	Build           uint16
	LinkLayer       uint16
	ProtocolVersion uint8
	Hardware        uint8
}

func (m *GetInfoResponse) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassSystem, Command: 8, Size: 12}
}

func (m *GetInfoResponse) MarshalWire() []byte {
	buf := make([]byte, 12)
	binary.LittleEndian.PutUint16(buf[0:2], m.Major)
	binary.LittleEndian.PutUint16(buf[2:4], m.Minor)
	binary.LittleEndian.PutUint16(buf[4:6], m.Patch)
	binary.LittleEndian.PutUint16(buf[6:8], m.Build)
	binary.LittleEndian.PutUint16(buf[8:10], m.LinkLayer)
	buf[10] = m.ProtocolVersion
	buf[11] = m.Hardware
	return buf
}

func (m *GetInfoResponse) UnmarshalWire(b []byte) error {
	if len(b) < 12 {
		return protocol.ErrShortPayload
	}
	m.Major = binary.LittleEndian.Uint16(b[0:2])
	m.Minor = binary.LittleEndian.Uint16(b[2:4])
	m.Patch = binary.LittleEndian.Uint16(b[4:6])
	m.Build = binary.LittleEndian.Uint16(b[6:8])
	m.LinkLayer = binary.LittleEndian.Uint16(b[8:10])
	m.ProtocolVersion = b[10]
	m.Hardware = b[11]
	return nil
}

// BootEvent is emitted by the dongle after power-up or Reset.
type BootEvent struct {
	Major           uint16
	Minor           uint16
	Patch           uint16
	Build           uint16
	LinkLayer       uint16
	ProtocolVersion uint8
	Hardware        uint8
}

func (m *BootEvent) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassSystem, Command: 0, Size: 12}
}

func (m *BootEvent) MarshalWire() []byte {
	buf := make([]byte, 12)
	binary.LittleEndian.PutUint16(buf[0:2], m.Major)
	binary.LittleEndian.PutUint16(buf[2:4], m.Minor)
	binary.LittleEndian.PutUint16(buf[4:6], m.Patch)
	binary.LittleEndian.PutUint16(buf[6:8], m.Build)
	binary.LittleEndian.PutUint16(buf[8:10], m.LinkLayer)
	buf[10] = m.ProtocolVersion
	buf[11] = m.Hardware
	return buf
}

func (m *BootEvent) UnmarshalWire(b []byte) error {
	if len(b) < 12 {
		return protocol.ErrShortPayload
	}
	m.Major = binary.LittleEndian.Uint16(b[0:2])
	m.Minor = binary.LittleEndian.Uint16(b[2:4])
	m.Patch = binary.LittleEndian.Uint16(b[4:6])
	m.Build = binary.LittleEndian.Uint16(b[6:8])
	m.LinkLayer = binary.LittleEndian.Uint16(b[8:10])
	m.ProtocolVersion = b[10]
	m.Hardware = b[11]
	return nil
}
