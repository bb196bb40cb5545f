package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listenCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Print attribute value notifications as they arrive",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, c, err := openConnected()
			if err != nil {
				return err
			}
			defer c.Close()
			defer g.Disconnect()

			seen := 0
			return g.ListenValue(func(handle uint16, value []byte) bool {
				fmt.Printf("0x%04x  %x\n", handle, value)
				seen++
				return limit == 0 || seen < limit
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Stop after this many notifications (0 = forever)")

	return cmd
}
