package bgapi

import (
	"encoding/binary"

	"github.com/bluegill/bledctl/internal/protocol"
)

// GAP discover modes.
const (
	DiscoverLimited     uint8 = 0
	DiscoverGeneric     uint8 = 1
	DiscoverObservation uint8 = 2
)

// GAP discoverable / connectable modes for SetMode.
const (
	NonDiscoverable     uint8 = 0
	GeneralDiscoverable uint8 = 2
	NonConnectable      uint8 = 0
	DirectedConnectable uint8 = 1
)

// SetMode configures the dongle's discoverability and connectability.
type SetMode struct {
	Discover uint8
	Connect  uint8
}

func (m *SetMode) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassGAP, Command: 1, Size: 2}
}

func (m *SetMode) MarshalWire() []byte {
	return []byte{m.Discover, m.Connect}
}

func (m *SetMode) UnmarshalWire(b []byte) error {
	if len(b) < 2 {
		return protocol.ErrShortPayload
	}
	m.Discover = b[0]
	m.Connect = b[1]
	return nil
}

type SetModeResponse struct {
	Result uint16
}

func (m *SetModeResponse) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassGAP, Command: 1, Size: 2}
}

func (m *SetModeResponse) MarshalWire() []byte {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, m.Result)
	return buf
}

func (m *SetModeResponse) UnmarshalWire(b []byte) error {
	if len(b) < 2 {
		return protocol.ErrShortPayload
	}
	m.Result = binary.LittleEndian.Uint16(b[0:2])
	return nil
}

// Discover starts a scan; advertising packets arrive as ScanResponseEvents
// until EndProcedure stops the scan.
type Discover struct {
	Mode uint8
}

func (m *Discover) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassGAP, Command: 2, Size: 1}
}

func (m *Discover) MarshalWire() []byte {
	return []byte{m.Mode}
}

func (m *Discover) UnmarshalWire(b []byte) error {
	if len(b) < 1 {
		return protocol.ErrShortPayload
	}
	m.Mode = b[0]
	return nil
}

type DiscoverResponse struct {
	Result uint16
}

func (m *DiscoverResponse) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassGAP, Command: 2, Size: 2}
}

func (m *DiscoverResponse) MarshalWire() []byte {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, m.Result)
	return buf
}

func (m *DiscoverResponse) UnmarshalWire(b []byte) error {
	if len(b) < 2 {
		return protocol.ErrShortPayload
	}
	m.Result = binary.LittleEndian.Uint16(b[0:2])
	return nil
}

// ConnectDirect opens a connection to one peer.
type ConnectDirect struct {
	Address         Address
	AddressType     uint8
	ConnIntervalMin uint16
	ConnIntervalMax uint16
	Timeout         uint16
	Latency         uint16
}

func (m *ConnectDirect) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassGAP, Command: 3, Size: 15}
}

func (m *ConnectDirect) MarshalWire() []byte {
	buf := make([]byte, 15)
	copy(buf[0:6], m.Address[:])
	buf[6] = m.AddressType
	binary.LittleEndian.PutUint16(buf[7:9], m.ConnIntervalMin)
	binary.LittleEndian.PutUint16(buf[9:11], m.ConnIntervalMax)
	binary.LittleEndian.PutUint16(buf[11:13], m.Timeout)
	binary.LittleEndian.PutUint16(buf[13:15], m.Latency)
	return buf
}

func (m *ConnectDirect) UnmarshalWire(b []byte) error {
	if len(b) < 15 {
		return protocol.ErrShortPayload
	}
	copy(m.Address[:], b[0:6])
	m.AddressType = b[6]
	m.ConnIntervalMin = binary.LittleEndian.Uint16(b[7:9])
	m.ConnIntervalMax = binary.LittleEndian.Uint16(b[9:11])
	m.Timeout = binary.LittleEndian.Uint16(b[11:13])
	m.Latency = binary.LittleEndian.Uint16(b[13:15])
	return nil
}

type ConnectDirectResponse struct {
	Result     uint16
	Connection uint8
}

func (m *ConnectDirectResponse) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassGAP, Command: 3, Size: 3}
}

func (m *ConnectDirectResponse) MarshalWire() []byte {
	buf := make([]byte, 3)
	binary.LittleEndian.PutUint16(buf[0:2], m.Result)
	buf[2] = m.Connection
	return buf
}

func (m *ConnectDirectResponse) UnmarshalWire(b []byte) error {
	if len(b) < 3 {
		return protocol.ErrShortPayload
	}
	m.Result = binary.LittleEndian.Uint16(b[0:2])
	m.Connection = b[2]
	return nil
}

// EndProcedure aborts the running GAP procedure.
type EndProcedure struct{}

func (m *EndProcedure) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassGAP, Command: 4, Size: 0}
}

func (m *EndProcedure) MarshalWire() []byte { return nil }

func (m *EndProcedure) UnmarshalWire(b []byte) error { return nil }

type EndProcedureResponse struct {
	Result uint16
}

func (m *EndProcedureResponse) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassGAP, Command: 4, Size: 2}
}

func (m *EndProcedureResponse) MarshalWire() []byte {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, m.Result)
	return buf
}

func (m *EndProcedureResponse) UnmarshalWire(b []byte) error {
	if len(b) < 2 {
		return protocol.ErrShortPayload
	}
	m.Result = binary.LittleEndian.Uint16(b[0:2])
	return nil
}

// ScanResponseEvent carries one advertising packet; the advertising data is
// the trailing buffer.
type ScanResponseEvent struct {
	RSSI        int8
	PacketType  uint8
	Sender      Address
	AddressType uint8
	Bond        uint8
	DataLength  uint8
}

func (m *ScanResponseEvent) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassGAP, Command: 0, Size: 11, Partial: true}
}

func (m *ScanResponseEvent) MarshalWire() []byte {
	buf := make([]byte, 11)
	buf[0] = byte(m.RSSI)
	buf[1] = m.PacketType
	copy(buf[2:8], m.Sender[:])
	buf[8] = m.AddressType
	buf[9] = m.Bond
	buf[10] = m.DataLength
	return buf
}

func (m *ScanResponseEvent) UnmarshalWire(b []byte) error {
	if len(b) < 11 {
		return protocol.ErrShortPayload
	}
	m.RSSI = int8(b[0])
	m.PacketType = b[1]
	copy(m.Sender[:], b[2:8])
	m.AddressType = b[8]
	m.Bond = b[9]
	m.DataLength = b[10]
	return nil
}
