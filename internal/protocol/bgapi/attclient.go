package bgapi

import (
	"encoding/binary"

	"github.com/bluegill/bledctl/internal/protocol"
)

// ReadByGroupType starts a read-by-group-type procedure; the group UUID
// rides as the trailing buffer.
type ReadByGroupType struct {
	Connection uint8
	Start      uint16
	End        uint16
	UUIDLength uint8
}

func (m *ReadByGroupType) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassAttClient, Command: 1, Size: 6, Partial: true}
}

func (m *ReadByGroupType) MarshalWire() []byte {
	buf := make([]byte, 6)
	buf[0] = m.Connection
	binary.LittleEndian.PutUint16(buf[1:3], m.Start)
	binary.LittleEndian.PutUint16(buf[3:5], m.End)
	buf[5] = m.UUIDLength
	return buf
}

func (m *ReadByGroupType) UnmarshalWire(b []byte) error {
	if len(b) < 6 {
		return protocol.ErrShortPayload
	}
	m.Connection = b[0]
	m.Start = binary.LittleEndian.Uint16(b[1:3])
	m.End = binary.LittleEndian.Uint16(b[3:5])
	m.UUIDLength = b[5]
	return nil
}

type ReadByGroupTypeResponse struct {
	Connection uint8
	Result     uint16
}

func (m *ReadByGroupTypeResponse) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassAttClient, Command: 1, Size: 3}
}

func (m *ReadByGroupTypeResponse) MarshalWire() []byte {
	buf := make([]byte, 3)
	buf[0] = m.Connection
	binary.LittleEndian.PutUint16(buf[1:3], m.Result)
	return buf
}

func (m *ReadByGroupTypeResponse) UnmarshalWire(b []byte) error {
	if len(b) < 3 {
		return protocol.ErrShortPayload
	}
	m.Connection = b[0]
	m.Result = binary.LittleEndian.Uint16(b[1:3])
	return nil
}

// FindInformation walks attribute information over a handle range.
type FindInformation struct {
	Connection uint8
	Start      uint16
	End        uint16
}

func (m *FindInformation) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassAttClient, Command: 3, Size: 5}
}

func (m *FindInformation) MarshalWire() []byte {
	buf := make([]byte, 5)
	buf[0] = m.Connection
	binary.LittleEndian.PutUint16(buf[1:3], m.Start)
	binary.LittleEndian.PutUint16(buf[3:5], m.End)
	return buf
}

func (m *FindInformation) UnmarshalWire(b []byte) error {
	if len(b) < 5 {
		return protocol.ErrShortPayload
	}
	m.Connection = b[0]
	m.Start = binary.LittleEndian.Uint16(b[1:3])
	m.End = binary.LittleEndian.Uint16(b[3:5])
	return nil
}

type FindInformationResponse struct {
	Connection uint8
	Result     uint16
}

func (m *FindInformationResponse) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassAttClient, Command: 3, Size: 3}
}

func (m *FindInformationResponse) MarshalWire() []byte {
	buf := make([]byte, 3)
	buf[0] = m.Connection
	binary.LittleEndian.PutUint16(buf[1:3], m.Result)
	return buf
}

func (m *FindInformationResponse) UnmarshalWire(b []byte) error {
	if len(b) < 3 {
		return protocol.ErrShortPayload
	}
	m.Connection = b[0]
	m.Result = binary.LittleEndian.Uint16(b[1:3])
	return nil
}

// ReadByHandle reads one attribute value; the data arrives in an
// AttributeValueEvent rather than in the command response.
type ReadByHandle struct {
	Connection uint8
	Handle     uint16
}

func (m *ReadByHandle) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassAttClient, Command: 4, Size: 3}
}

func (m *ReadByHandle) MarshalWire() []byte {
	buf := make([]byte, 3)
	buf[0] = m.Connection
	binary.LittleEndian.PutUint16(buf[1:3], m.Handle)
	return buf
}

func (m *ReadByHandle) UnmarshalWire(b []byte) error {
	if len(b) < 3 {
		return protocol.ErrShortPayload
	}
	m.Connection = b[0]
	m.Handle = binary.LittleEndian.Uint16(b[1:3])
	return nil
}

type ReadByHandleResponse struct {
	Connection uint8
	Result     uint16
}

func (m *ReadByHandleResponse) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassAttClient, Command: 4, Size: 3}
}

func (m *ReadByHandleResponse) MarshalWire() []byte {
	buf := make([]byte, 3)
	buf[0] = m.Connection
	binary.LittleEndian.PutUint16(buf[1:3], m.Result)
	return buf
}

func (m *ReadByHandleResponse) UnmarshalWire(b []byte) error {
	if len(b) < 3 {
		return protocol.ErrShortPayload
	}
	m.Connection = b[0]
	m.Result = binary.LittleEndian.Uint16(b[1:3])
	return nil
}

// AttributeWrite performs an acknowledged write; the value bytes ride as
// the trailing buffer and completion is reported by a
// ProcedureCompletedEvent.
type AttributeWrite struct {
	Connection  uint8
	Handle      uint16
	ValueLength uint8
}

func (m *AttributeWrite) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassAttClient, Command: 5, Size: 4, Partial: true}
}

func (m *AttributeWrite) MarshalWire() []byte {
	buf := make([]byte, 4)
	buf[0] = m.Connection
	binary.LittleEndian.PutUint16(buf[1:3], m.Handle)
	buf[3] = m.ValueLength
	return buf
}

func (m *AttributeWrite) UnmarshalWire(b []byte) error {
	if len(b) < 4 {
		return protocol.ErrShortPayload
	}
	m.Connection = b[0]
	m.Handle = binary.LittleEndian.Uint16(b[1:3])
	m.ValueLength = b[3]
	return nil
}

type AttributeWriteResponse struct {
	Connection uint8
	Result     uint16
}

func (m *AttributeWriteResponse) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassAttClient, Command: 5, Size: 3}
}

func (m *AttributeWriteResponse) MarshalWire() []byte {
	buf := make([]byte, 3)
	buf[0] = m.Connection
	binary.LittleEndian.PutUint16(buf[1:3], m.Result)
	return buf
}

func (m *AttributeWriteResponse) UnmarshalWire(b []byte) error {
	if len(b) < 3 {
		return protocol.ErrShortPayload
	}
	m.Connection = b[0]
	m.Result = binary.LittleEndian.Uint16(b[1:3])
	return nil
}

// WriteCommand performs an unacknowledged write.
type WriteCommand struct {
	Connection  uint8
	Handle      uint16
	ValueLength uint8
}

func (m *WriteCommand) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassAttClient, Command: 6, Size: 4, Partial: true}
}

func (m *WriteCommand) MarshalWire() []byte {
	buf := make([]byte, 4)
	buf[0] = m.Connection
	binary.LittleEndian.PutUint16(buf[1:3], m.Handle)
	buf[3] = m.ValueLength
	return buf
}

func (m *WriteCommand) UnmarshalWire(b []byte) error {
	if len(b) < 4 {
		return protocol.ErrShortPayload
	}
	m.Connection = b[0]
	m.Handle = binary.LittleEndian.Uint16(b[1:3])
	m.ValueLength = b[3]
	return nil
}

type WriteCommandResponse struct {
	Connection uint8
	Result     uint16
}

func (m *WriteCommandResponse) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassAttClient, Command: 6, Size: 3}
}

func (m *WriteCommandResponse) MarshalWire() []byte {
	buf := make([]byte, 3)
	buf[0] = m.Connection
	binary.LittleEndian.PutUint16(buf[1:3], m.Result)
	return buf
}

func (m *WriteCommandResponse) UnmarshalWire(b []byte) error {
	if len(b) < 3 {
		return protocol.ErrShortPayload
	}
	m.Connection = b[0]
	m.Result = binary.LittleEndian.Uint16(b[1:3])
	return nil
}

// ProcedureCompletedEvent terminates every attribute client procedure; a
// zero result is success.
type ProcedureCompletedEvent struct {
	Connection uint8
	Result     uint16
	Handle     uint16
}

func (m *ProcedureCompletedEvent) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassAttClient, Command: 1, Size: 5}
}

func (m *ProcedureCompletedEvent) MarshalWire() []byte {
	buf := make([]byte, 5)
	buf[0] = m.Connection
	binary.LittleEndian.PutUint16(buf[1:3], m.Result)
	binary.LittleEndian.PutUint16(buf[3:5], m.Handle)
	return buf
}

func (m *ProcedureCompletedEvent) UnmarshalWire(b []byte) error {
	if len(b) < 5 {
		return protocol.ErrShortPayload
	}
	m.Connection = b[0]
	m.Result = binary.LittleEndian.Uint16(b[1:3])
	m.Handle = binary.LittleEndian.Uint16(b[3:5])
	return nil
}

// GroupFoundEvent reports one attribute group; the group UUID is the
// trailing buffer.
type GroupFoundEvent struct {
	Connection uint8
	Start      uint16
	End        uint16
	UUIDLength uint8
}

func (m *GroupFoundEvent) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassAttClient, Command: 2, Size: 6, Partial: true}
}

func (m *GroupFoundEvent) MarshalWire() []byte {
	buf := make([]byte, 6)
	buf[0] = m.Connection
	binary.LittleEndian.PutUint16(buf[1:3], m.Start)
	binary.LittleEndian.PutUint16(buf[3:5], m.End)
	buf[5] = m.UUIDLength
	return buf
}

func (m *GroupFoundEvent) UnmarshalWire(b []byte) error {
	if len(b) < 6 {
		return protocol.ErrShortPayload
	}
	m.Connection = b[0]
	m.Start = binary.LittleEndian.Uint16(b[1:3])
	m.End = binary.LittleEndian.Uint16(b[3:5])
	m.UUIDLength = b[5]
	return nil
}

// FindInformationFoundEvent reports one attribute handle; the attribute
// UUID is the trailing buffer.
type FindInformationFoundEvent struct {
	Connection uint8
	Handle     uint16
	UUIDLength uint8
}

func (m *FindInformationFoundEvent) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassAttClient, Command: 4, Size: 4, Partial: true}
}

func (m *FindInformationFoundEvent) MarshalWire() []byte {
	buf := make([]byte, 4)
	buf[0] = m.Connection
	binary.LittleEndian.PutUint16(buf[1:3], m.Handle)
	buf[3] = m.UUIDLength
	return buf
}

func (m *FindInformationFoundEvent) UnmarshalWire(b []byte) error {
	if len(b) < 4 {
		return protocol.ErrShortPayload
	}
	m.Connection = b[0]
	m.Handle = binary.LittleEndian.Uint16(b[1:3])
	m.UUIDLength = b[3]
	return nil
}

// AttributeValueEvent delivers an attribute value from a read procedure or
// a notification; the value bytes are the trailing buffer.
type AttributeValueEvent struct {
	Connection  uint8
	Handle      uint16
	Type        uint8
	ValueLength uint8
}

func (m *AttributeValueEvent) Descriptor() protocol.Descriptor {
	return protocol.Descriptor{Class: ClassAttClient, Command: 5, Size: 5, Partial: true}
}

func (m *AttributeValueEvent) MarshalWire() []byte {
	buf := make([]byte, 5)
	buf[0] = m.Connection
	binary.LittleEndian.PutUint16(buf[1:3], m.Handle)
	buf[3] = m.Type
	buf[4] = m.ValueLength
	return buf
}

func (m *AttributeValueEvent) UnmarshalWire(b []byte) error {
	if len(b) < 5 {
		return protocol.ErrShortPayload
	}
	m.Connection = b[0]
	m.Handle = binary.LittleEndian.Uint16(b[1:3])
	m.Type = b[3]
	m.ValueLength = b[4]
	return nil
}
