package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/bluegill/bledctl/internal/client"
	"github.com/bluegill/bledctl/internal/config"
	"github.com/bluegill/bledctl/internal/gatt"
	"github.com/bluegill/bledctl/internal/protocol/bgapi"
	"github.com/bluegill/bledctl/internal/transport"
)

// Persistent flags shared by every subcommand. Flag values override the
// config file where both are given.
var (
	flagConfig  string
	flagPort    string
	flagBaud    int
	flagAddress string
)

func loadDeviceConfig() (config.DeviceConfig, error) {
	cfg := config.DefaultDeviceConfig()
	if flagConfig != "" {
		loaded, err := config.LoadDeviceConfig(flagConfig)
		if err != nil {
			return config.DeviceConfig{}, err
		}
		cfg = loaded
	}
	if flagPort != "" {
		cfg.Port = flagPort
	}
	if flagBaud != 0 {
		cfg.Baud = flagBaud
	}
	if flagAddress != "" {
		cfg.Address = flagAddress
	}
	if err := config.ValidateDeviceConfig(cfg); err != nil {
		return config.DeviceConfig{}, err
	}
	return cfg, nil
}

// openClient opens the configured serial port and wraps it in a BGAPI
// client. The caller owns the returned client and must Close it.
func openClient() (*client.Client, error) {
	cfg, err := loadDeviceConfig()
	if err != nil {
		return nil, err
	}
	port, err := transport.OpenSerial(transport.SerialConfig{
		Port:        cfg.Port,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout(),
	})
	if err != nil {
		return nil, err
	}
	log.Debug().Str("port", cfg.Port).Int("baud", cfg.Baud).Msg("serial port open")
	return client.New(port), nil
}

// openConnected opens the dongle and connects to the configured peer.
func openConnected() (*gatt.Client, *client.Client, error) {
	cfg, err := loadDeviceConfig()
	if err != nil {
		return nil, nil, err
	}
	if cfg.Address == "" {
		return nil, nil, fmt.Errorf("no peer address given: set --address or the address config key")
	}
	addr, err := bgapi.ParseAddress(cfg.Address)
	if err != nil {
		return nil, nil, err
	}
	port, err := transport.OpenSerial(transport.SerialConfig{
		Port:        cfg.Port,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout(),
	})
	if err != nil {
		return nil, nil, err
	}
	c := client.New(port)
	g := gatt.NewClient(c)
	if err := g.Connect(addr); err != nil {
		c.Close()
		return nil, nil, err
	}
	return g, c, nil
}
