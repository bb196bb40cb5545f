package transport

import (
	"fmt"
	"time"

	"github.com/tarm/serial"
)

// SerialConfig describes the serial port the dongle enumerates as.
// A zero ReadTimeout blocks forever; a positive value bounds every Read
// call, which is the only timeout mechanism the stack offers.
type SerialConfig struct {
	Port        string
	Baud        int
	ReadTimeout time.Duration
}

// Serial is a Transport over a local serial port.
type Serial struct {
	port *serial.Port
}

func OpenSerial(cfg SerialConfig) (*Serial, error) {
	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Port,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("transport: open %s: %w", cfg.Port, err)
	}
	return &Serial{port: port}, nil
}

func (s *Serial) Read(n int) ([]byte, error) {
	buf := make([]byte, n)
	// the port returns a zero-byte read when ReadTimeout expires
	for read := 0; read < n; {
		k, err := s.port.Read(buf[read:])
		if err != nil {
			return nil, err
		}
		if k == 0 {
			return nil, ErrReadTimeout
		}
		read += k
	}
	return buf, nil
}

func (s *Serial) Write(p []byte) error {
	for len(p) > 0 {
		n, err := s.port.Write(p)
		if err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}

func (s *Serial) Close() error {
	return s.port.Close()
}
