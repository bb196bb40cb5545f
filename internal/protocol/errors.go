package protocol

import "errors"

var (
	ErrClassMismatch   = errors.New("protocol: class does not match the expected message")
	ErrCommandMismatch = errors.New("protocol: command does not match the expected message")
	ErrLengthMismatch  = errors.New("protocol: payload length does not match the expected message")
	ErrPayloadTooLarge = errors.New("protocol: payload too large")
	ErrShortPayload    = errors.New("protocol: short payload")
)
