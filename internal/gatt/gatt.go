// Package gatt sequences GATT-style procedures over the BGAPI client:
// connect, discover, characteristic enumeration, attribute reads and
// writes. One Client drives at most one connection at a time.
package gatt

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/bluegill/bledctl/internal/client"
	"github.com/bluegill/bledctl/internal/protocol/bgapi"
)

var ErrNotConnected = errors.New("gatt: not connected")

// Attribute handle range walked during characteristic discovery.
const (
	handleRangeStart uint16 = 0x0001
	handleRangeEnd   uint16 = 0xFFFF
)

// Default connection parameters, in BGAPI units of 1.25 ms (interval) and
// 10 ms (supervision timeout).
const (
	connIntervalMin uint16 = 0x003C
	connIntervalMax uint16 = 0x004C
	connTimeout     uint16 = 0x0064
	connLatency     uint16 = 0x0000
)

// ResultError is a non-zero BGAPI result code returned by the dongle.
type ResultError struct {
	Op   string
	Code uint16
}

func (e *ResultError) Error() string {
	return fmt.Sprintf("gatt: %s failed: result=0x%04x", e.Op, e.Code)
}

// Advertisement is one scan response seen during discovery.
type Advertisement struct {
	Address     bgapi.Address
	AddressType uint8
	RSSI        int8
	Data        []byte
}

// Client drives GATT procedures over one BGAPI client.
type Client struct {
	c         *client.Client
	conn      uint8
	connected bool
}

func NewClient(c *client.Client) *Client {
	return &Client{c: c}
}

// Discover scans for advertising devices, forwarding each scan response to
// fn until fn returns false, then ends the GAP procedure.
func (g *Client) Discover(fn func(Advertisement) bool) error {
	if err := g.c.Send(&bgapi.Discover{Mode: bgapi.DiscoverGeneric}); err != nil {
		return err
	}
	resp, err := client.Receive[bgapi.DiscoverResponse](g.c)
	if err != nil {
		return err
	}
	if resp.Result != 0 {
		return &ResultError{Op: "discover", Code: resp.Result}
	}

	stop := false
	for !stop {
		err := g.c.ReceiveAny(client.OnPartial(func(ev *bgapi.ScanResponseEvent, data []byte) {
			adv := Advertisement{
				Address:     ev.Sender,
				AddressType: ev.AddressType,
				RSSI:        ev.RSSI,
				Data:        append([]byte(nil), data...),
			}
			stop = !fn(adv)
		}))
		if err != nil {
			return err
		}
	}

	if err := g.c.Send(&bgapi.EndProcedure{}); err != nil {
		return err
	}
	end, err := client.Receive[bgapi.EndProcedureResponse](g.c)
	if err != nil {
		return err
	}
	if end.Result != 0 {
		return &ResultError{Op: "end procedure", Code: end.Result}
	}
	return nil
}

// Connect opens a direct connection and waits for the link to complete.
func (g *Client) Connect(addr bgapi.Address) error {
	cmd := bgapi.ConnectDirect{
		Address:         addr,
		AddressType:     bgapi.AddressTypePublic,
		ConnIntervalMin: connIntervalMin,
		ConnIntervalMax: connIntervalMax,
		Timeout:         connTimeout,
		Latency:         connLatency,
	}
	if err := g.c.Send(&cmd); err != nil {
		return err
	}
	resp, err := client.Receive[bgapi.ConnectDirectResponse](g.c)
	if err != nil {
		return err
	}
	if resp.Result != 0 {
		return &ResultError{Op: "connect", Code: resp.Result}
	}
	g.conn = resp.Connection

	for !g.connected {
		err := g.c.ReceiveAny(client.On(func(ev *bgapi.StatusEvent) {
			if ev.Connection == g.conn && ev.Flags&bgapi.ConnectionCompleted != 0 {
				g.connected = true
			}
		}))
		if err != nil {
			return err
		}
	}
	log.Debug().Str("address", addr.String()).Uint8("connection", g.conn).Msg("gatt: connected")
	return nil
}

// Disconnect closes the active connection and waits for the dongle to
// confirm it.
func (g *Client) Disconnect() error {
	if !g.connected {
		return ErrNotConnected
	}
	if err := g.c.Send(&bgapi.Disconnect{Connection: g.conn}); err != nil {
		return err
	}
	resp, err := client.Receive[bgapi.DisconnectResponse](g.c)
	if err != nil {
		return err
	}
	if resp.Result != 0 {
		return &ResultError{Op: "disconnect", Code: resp.Result}
	}

	done := false
	for !done {
		err := g.c.ReceiveAny(client.On(func(ev *bgapi.DisconnectedEvent) {
			if ev.Connection == g.conn {
				done = true
			}
		}))
		if err != nil {
			return err
		}
	}
	g.connected = false
	return nil
}

// Characteristics walks the attribute information of the connected device
// and returns a map from characteristic UUID (hex, conventional order) to
// attribute handle.
func (g *Client) Characteristics() (map[string]uint16, error) {
	if !g.connected {
		return nil, ErrNotConnected
	}
	cmd := bgapi.FindInformation{Connection: g.conn, Start: handleRangeStart, End: handleRangeEnd}
	if err := g.c.Send(&cmd); err != nil {
		return nil, err
	}
	resp, err := client.Receive[bgapi.FindInformationResponse](g.c)
	if err != nil {
		return nil, err
	}
	if resp.Result != 0 {
		return nil, &ResultError{Op: "find information", Code: resp.Result}
	}

	chars := make(map[string]uint16)
	var procedure *bgapi.ProcedureCompletedEvent
	for procedure == nil {
		err := g.c.ReceiveAny(
			client.OnPartial(func(ev *bgapi.FindInformationFoundEvent, uuid []byte) {
				if ev.Connection == g.conn {
					chars[bgapi.UUIDString(uuid)] = ev.Handle
				}
			}),
			client.On(func(ev *bgapi.ProcedureCompletedEvent) {
				if ev.Connection == g.conn {
					procedure = ev
				}
			}),
		)
		if err != nil {
			return nil, err
		}
	}
	if procedure.Result != 0 {
		return nil, &ResultError{Op: "find information", Code: procedure.Result}
	}
	return chars, nil
}

// ReadAttribute reads one attribute value. The data arrives in an
// AttributeValueEvent on success; a failing procedure terminates with a
// non-zero ProcedureCompletedEvent instead.
func (g *Client) ReadAttribute(handle uint16) ([]byte, error) {
	if !g.connected {
		return nil, ErrNotConnected
	}
	if err := g.c.Send(&bgapi.ReadByHandle{Connection: g.conn, Handle: handle}); err != nil {
		return nil, err
	}
	resp, err := client.Receive[bgapi.ReadByHandleResponse](g.c)
	if err != nil {
		return nil, err
	}
	if resp.Result != 0 {
		return nil, &ResultError{Op: "read attribute", Code: resp.Result}
	}

	for {
		var (
			value     []byte
			gotValue  bool
			procedure *bgapi.ProcedureCompletedEvent
		)
		err := g.c.ReceiveAny(
			client.OnPartial(func(ev *bgapi.AttributeValueEvent, data []byte) {
				if ev.Connection == g.conn && ev.Handle == handle {
					value = append([]byte(nil), data...)
					gotValue = true
				}
			}),
			client.On(func(ev *bgapi.ProcedureCompletedEvent) {
				if ev.Connection == g.conn {
					procedure = ev
				}
			}),
		)
		if err != nil {
			return nil, err
		}
		if gotValue {
			return value, nil
		}
		if procedure != nil {
			return nil, &ResultError{Op: "read attribute", Code: procedure.Result}
		}
	}
}

// WriteAttribute writes one attribute value. Acked writes use the
// attribute write procedure and wait for its completion; unacked writes
// use the write command and only check the command response.
func (g *Client) WriteAttribute(handle uint16, value []byte, ack bool) error {
	if !g.connected {
		return ErrNotConnected
	}
	if len(value) > 0xFF {
		return fmt.Errorf("gatt: attribute value too long: %d bytes", len(value))
	}

	if !ack {
		cmd := bgapi.WriteCommand{Connection: g.conn, Handle: handle, ValueLength: uint8(len(value))}
		if err := g.c.SendWithTrailing(&cmd, value); err != nil {
			return err
		}
		resp, err := client.Receive[bgapi.WriteCommandResponse](g.c)
		if err != nil {
			return err
		}
		if resp.Result != 0 {
			return &ResultError{Op: "write command", Code: resp.Result}
		}
		return nil
	}

	cmd := bgapi.AttributeWrite{Connection: g.conn, Handle: handle, ValueLength: uint8(len(value))}
	if err := g.c.SendWithTrailing(&cmd, value); err != nil {
		return err
	}
	resp, err := client.Receive[bgapi.AttributeWriteResponse](g.c)
	if err != nil {
		return err
	}
	if resp.Result != 0 {
		return &ResultError{Op: "attribute write", Code: resp.Result}
	}

	for {
		var procedure *bgapi.ProcedureCompletedEvent
		err := g.c.ReceiveAny(client.On(func(ev *bgapi.ProcedureCompletedEvent) {
			if ev.Connection == g.conn {
				procedure = ev
			}
		}))
		if err != nil {
			return err
		}
		if procedure == nil {
			continue
		}
		if procedure.Result != 0 {
			return &ResultError{Op: "attribute write", Code: procedure.Result}
		}
		return nil
	}
}

// ListenValue streams attribute value notifications to fn until fn returns
// false.
func (g *Client) ListenValue(fn func(handle uint16, value []byte) bool) error {
	if !g.connected {
		return ErrNotConnected
	}
	stop := false
	for !stop {
		err := g.c.ReceiveAny(client.OnPartial(func(ev *bgapi.AttributeValueEvent, data []byte) {
			if ev.Connection == g.conn {
				stop = !fn(ev.Handle, append([]byte(nil), data...))
			}
		}))
		if err != nil {
			return err
		}
	}
	return nil
}
