// Package client implements the BGAPI framing and dispatch engine.
//
// The engine is strictly synchronous: one message is in flight at a time,
// every receive call blocks for exactly one header plus its payload, and no
// buffering happens beyond the message currently being decoded. A Client
// exclusively owns its transport and holds no locks; concurrent calls on
// one instance must be serialized by the caller.
package client
