// Package bgapi defines the typed BGAPI messages the BLED112 dongle speaks.
//
// Each message type carries its wire identity as a definition-time
// descriptor and hand-written little-endian codecs for the fixed-size
// region of its payload. Messages whose BGAPI declaration ends in a
// uint8array keep the one-byte length prefix inside the fixed region; the
// array body is the trailing buffer handled by the client layer.
package bgapi
