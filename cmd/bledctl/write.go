package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func writeCmd() *cobra.Command {
	var noAck bool

	cmd := &cobra.Command{
		Use:   "write <handle> <hex-value>",
		Short: "Write an attribute value by handle",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			handle, err := parseHandle(args[0])
			if err != nil {
				return err
			}
			value, err := hex.DecodeString(args[1])
			if err != nil {
				return fmt.Errorf("invalid hex value %q: %w", args[1], err)
			}
			g, c, err := openConnected()
			if err != nil {
				return err
			}
			defer c.Close()
			defer g.Disconnect()

			return g.WriteAttribute(handle, value, !noAck)
		},
	}

	cmd.Flags().BoolVar(&noAck, "no-ack", false, "Send an unacknowledged write command")

	return cmd
}

func parseHandle(s string) (uint16, error) {
	s = strings.TrimPrefix(s, "0x")
	handle, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid attribute handle %q: %w", s, err)
	}
	return uint16(handle), nil
}
