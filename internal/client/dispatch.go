package client

import (
	"github.com/rs/zerolog/log"

	"github.com/bluegill/bledctl/internal/protocol"
)

// Handler binds one message type to a callback for ReceiveAny.
type Handler struct {
	desc   protocol.Descriptor
	invoke func(body, trailing []byte) error
}

// On binds fn to the fixed-size message type T. It panics when T is a
// partial type; that mismatch is a programming error, not a runtime
// condition.
func On[T any, P messagePtr[T]](fn func(*T)) Handler {
	d := P(new(T)).Descriptor()
	if d.Partial {
		panic("client: On requires a fixed-size message type, use OnPartial")
	}
	return Handler{
		desc: d,
		invoke: func(body, _ []byte) error {
			var v T
			if err := P(&v).UnmarshalWire(body); err != nil {
				return err
			}
			fn(&v)
			return nil
		},
	}
}

// OnPartial binds fn to the partial message type T; fn receives the decoded
// prefix and the trailing buffer.
func OnPartial[T any, P messagePtr[T]](fn func(*T, []byte)) Handler {
	d := P(new(T)).Descriptor()
	if !d.Partial {
		panic("client: OnPartial requires a partial message type, use On")
	}
	return Handler{
		desc: d,
		invoke: func(body, trailing []byte) error {
			var v T
			if err := P(&v).UnmarshalWire(body); err != nil {
				return err
			}
			fn(&v, trailing)
			return nil
		},
	}
}

// ReceiveAny blocks for one message and dispatches it to the first handler
// whose bound type matches the header: fixed types on the exact payload
// length, partial types on at least their fixed size. Handlers are tested
// in argument order and the first match wins; later handlers are never
// evaluated, even when they would also match. When nothing matches the
// payload is consumed and dropped and ReceiveAny returns nil, so unknown
// or unsolicited messages never fail the caller.
func (c *Client) ReceiveAny(handlers ...Handler) error {
	h, err := c.readHeader()
	if err != nil {
		return err
	}
	body, err := c.tr.Read(int(h.Length))
	if err != nil {
		return err
	}
	for _, hd := range handlers {
		if !hd.desc.Matches(h) {
			continue
		}
		if hd.desc.Partial {
			return hd.invoke(body[:hd.desc.Size], body[hd.desc.Size:])
		}
		return hd.invoke(body, nil)
	}
	log.Debug().
		Uint8("class", h.Class).
		Uint8("command", h.Command).
		Uint16("length", h.Length).
		Msg("client: no handler matched, message dropped")
	return nil
}
