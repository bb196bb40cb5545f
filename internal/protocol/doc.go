// Package protocol owns the BGAPI wire contract primitives.
//
// Ownership boundary:
// - 4-byte header packing/unpacking
// - per-message-type descriptors
// - header validation against an expected message type
package protocol
