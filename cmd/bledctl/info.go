package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bluegill/bledctl/internal/client"
	"github.com/bluegill/bledctl/internal/protocol/bgapi"
)

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print dongle firmware and protocol versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := openClient()
			if err != nil {
				return err
			}
			defer c.Close()

			if err := c.Send(&bgapi.GetInfo{}); err != nil {
				return err
			}
			info, err := client.Receive[bgapi.GetInfoResponse](c)
			if err != nil {
				return err
			}
			fmt.Printf("Firmware:   %d.%d.%d build %d\n", info.Major, info.Minor, info.Patch, info.Build)
			fmt.Printf("Link layer: %d\n", info.LinkLayer)
			fmt.Printf("Protocol:   %d\n", info.ProtocolVersion)
			fmt.Printf("Hardware:   %d\n", info.Hardware)
			return nil
		},
	}
}
