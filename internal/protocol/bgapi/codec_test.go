package bgapi

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bluegill/bledctl/internal/protocol"
)

func _getObjectValue(ptr any) any {
	return reflect.ValueOf(ptr).Elem().Interface()
}

func TestCodecRoundTrip(t *testing.T) {
	should := require.New(t)
	messages := []protocol.Message{
		&Reset{BootInDFU: 1},
		&GetInfoResponse{Major: 1, Minor: 3, Patch: 2, Build: 1046, LinkLayer: 10, ProtocolVersion: 1, Hardware: 1},
		&BootEvent{Major: 1, Minor: 3, Patch: 2, Build: 1046, LinkLayer: 10, ProtocolVersion: 1, Hardware: 1},
		&Disconnect{Connection: 3},
		&DisconnectResponse{Connection: 3, Result: 0x0186},
		&StatusEvent{
			Connection:   0,
			Flags:        ConnectionConnected | ConnectionCompleted,
			Address:      Address{0xef, 0xcd, 0xab, 0x80, 0x07, 0x00},
			AddressType:  AddressTypePublic,
			ConnInterval: 0x3C,
			Timeout:      0x64,
			Latency:      0,
			Bonding:      0xFF,
		},
		&DisconnectedEvent{Connection: 0, Reason: 0x0213},
		&FindInformation{Connection: 0, Start: 0x0001, End: 0xFFFF},
		&FindInformationResponse{Connection: 0, Result: 0},
		&ReadByGroupType{Connection: 0, Start: 0x0001, End: 0xFFFF, UUIDLength: 2},
		&ReadByHandle{Connection: 0, Handle: 0x002A},
		&AttributeWrite{Connection: 0, Handle: 0x002A, ValueLength: 4},
		&WriteCommand{Connection: 0, Handle: 0x002A, ValueLength: 4},
		&ProcedureCompletedEvent{Connection: 0, Result: 0x0401, Handle: 0x002A},
		&GroupFoundEvent{Connection: 0, Start: 0x0001, End: 0x0007, UUIDLength: 2},
		&FindInformationFoundEvent{Connection: 0, Handle: 0x002A, UUIDLength: 16},
		&AttributeValueEvent{Connection: 0, Handle: 0x002A, Type: 1, ValueLength: 5},
		&SetMode{Discover: GeneralDiscoverable, Connect: DirectedConnectable},
		&SetModeResponse{Result: 0},
		&Discover{Mode: DiscoverGeneric},
		&DiscoverResponse{Result: 0},
		&ConnectDirect{
			Address:         Address{0xef, 0xcd, 0xab, 0x80, 0x07, 0x00},
			AddressType:     AddressTypePublic,
			ConnIntervalMin: 0x3C,
			ConnIntervalMax: 0x4C,
			Timeout:         0x64,
			Latency:         0,
		},
		&ConnectDirectResponse{Result: 0, Connection: 1},
		&EndProcedure{},
		&EndProcedureResponse{Result: 0},
		&ScanResponseEvent{
			RSSI:        -42,
			PacketType:  0,
			Sender:      Address{0xef, 0xcd, 0xab, 0x80, 0x07, 0x00},
			AddressType: AddressTypeRandom,
			Bond:        0xFF,
			DataLength:  3,
		},
	}
	for _, msg := range messages {
		d := msg.Descriptor()
		data := msg.MarshalWire()
		should.Len(data, d.Size, "%T fixed size", msg)

		out := reflect.New(reflect.TypeOf(msg).Elem()).Interface().(protocol.Message)
		should.NoError(out.UnmarshalWire(data), "%T", msg)
		should.Equal(_getObjectValue(msg), _getObjectValue(out), "%T", msg)
	}
}

func TestUnmarshalShortPayload(t *testing.T) {
	should := require.New(t)
	var ev StatusEvent
	should.ErrorIs(ev.UnmarshalWire(make([]byte, 15)), protocol.ErrShortPayload)
	var resp ConnectDirectResponse
	should.ErrorIs(resp.UnmarshalWire([]byte{0, 0}), protocol.ErrShortPayload)
}

func TestUnmarshalPartialPrefixIgnoresTrailing(t *testing.T) {
	should := require.New(t)
	in := AttributeValueEvent{Connection: 1, Handle: 0x002A, Type: 1, ValueLength: 4}
	data := append(in.MarshalWire(), 0xDE, 0xAD, 0xBE, 0xEF)
	var out AttributeValueEvent
	should.NoError(out.UnmarshalWire(data))
	should.Equal(in, out)
}
