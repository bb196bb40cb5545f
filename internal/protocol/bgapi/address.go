package bgapi

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Message class ids.
const (
	ClassSystem     uint8 = 0
	ClassConnection uint8 = 3
	ClassAttClient  uint8 = 4
	ClassGAP        uint8 = 6
)

// BD address types.
const (
	AddressTypePublic uint8 = 0
	AddressTypeRandom uint8 = 1
)

// Address is a 6-byte Bluetooth device address in wire order, which is the
// reverse of the colon-separated display order.
type Address [6]byte

// ParseAddress parses a colon-separated address like "00:07:80:ab:cd:ef".
func ParseAddress(s string) (Address, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 6 {
		return Address{}, fmt.Errorf("bgapi: invalid address %q", s)
	}
	var a Address
	for i, p := range parts {
		b, err := hex.DecodeString(p)
		if err != nil || len(b) != 1 {
			return Address{}, fmt.Errorf("bgapi: invalid address %q", s)
		}
		a[5-i] = b[0]
	}
	return a, nil
}

func (a Address) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", a[5], a[4], a[3], a[2], a[1], a[0])
}

// UUIDString formats attribute UUID bytes, delivered least significant byte
// first on the wire, in their conventional hex form.
func UUIDString(b []byte) string {
	rev := make([]byte, len(b))
	for i, c := range b {
		rev[len(b)-1-i] = c
	}
	return hex.EncodeToString(rev)
}
