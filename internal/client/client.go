package client

import (
	"github.com/bluegill/bledctl/internal/protocol"
	"github.com/bluegill/bledctl/internal/transport"
)

// Client frames requests onto and decodes messages off one transport.
type Client struct {
	tr transport.Transport
}

func New(tr transport.Transport) *Client {
	return &Client{tr: tr}
}

// Send writes one message: header then the fixed-size payload.
func (c *Client) Send(m protocol.Message) error {
	return c.send(m, nil)
}

// SendWithTrailing writes one partial message followed by its trailing
// buffer; the header length covers both.
func (c *Client) SendWithTrailing(m protocol.Message, trailing []byte) error {
	return c.send(m, trailing)
}

func (c *Client) send(m protocol.Message, trailing []byte) error {
	d := m.Descriptor()
	hb, err := protocol.EncodeHeader(d.WireHeader(len(trailing)))
	if err != nil {
		return err
	}
	if err := c.tr.Write(hb); err != nil {
		return err
	}
	if d.Size > 0 {
		if err := c.tr.Write(m.MarshalWire()); err != nil {
			return err
		}
	}
	if len(trailing) > 0 {
		return c.tr.Write(trailing)
	}
	return nil
}

func (c *Client) readHeader() (protocol.Header, error) {
	b, err := c.tr.Read(protocol.HeaderSize)
	if err != nil {
		return protocol.Header{}, err
	}
	return protocol.DecodeHeader(b)
}

// messagePtr constrains P to a pointer to T that speaks the wire contract.
type messagePtr[T any] interface {
	*T
	protocol.Message
}

// Receive blocks for one message of the fixed-size type T. A header that
// does not identify T fails the call with the validator's error; there is
// no retry and no second read. It panics when T is a partial type, before
// touching the transport; that mismatch is a programming error, not a
// runtime condition.
func Receive[T any, P messagePtr[T]](c *Client) (*T, error) {
	var v T
	p := P(&v)
	d := p.Descriptor()
	if d.Partial {
		panic("client: Receive requires a fixed-size message type, use ReceivePartial")
	}
	h, err := c.readHeader()
	if err != nil {
		return nil, err
	}
	if err := protocol.CheckHeader(d, h); err != nil {
		return nil, err
	}
	body, err := c.tr.Read(int(h.Length))
	if err != nil {
		return nil, err
	}
	if err := p.UnmarshalWire(body); err != nil {
		return nil, err
	}
	return &v, nil
}

// ReceivePartial blocks for one message of the partial type T and returns
// the decoded fixed-size prefix plus the trailing buffer of
// length-minus-fixed-size bytes. It panics when T is a fixed-size type.
func ReceivePartial[T any, P messagePtr[T]](c *Client) (*T, []byte, error) {
	var v T
	p := P(&v)
	d := p.Descriptor()
	if !d.Partial {
		panic("client: ReceivePartial requires a partial message type, use Receive")
	}
	h, err := c.readHeader()
	if err != nil {
		return nil, nil, err
	}
	if err := protocol.CheckHeader(d, h); err != nil {
		return nil, nil, err
	}
	body, err := c.tr.Read(int(h.Length))
	if err != nil {
		return nil, nil, err
	}
	if err := p.UnmarshalWire(body[:d.Size]); err != nil {
		return nil, nil, err
	}
	return &v, body[d.Size:], nil
}

// Close closes the underlying transport.
func (c *Client) Close() error {
	return c.tr.Close()
}
