package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bluegill/bledctl/internal/gatt"
)

func scanCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan for advertising devices",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := openClient()
			if err != nil {
				return err
			}
			defer c.Close()

			g := gatt.NewClient(c)
			seen := 0
			return g.Discover(func(adv gatt.Advertisement) bool {
				fmt.Printf("%s  rssi=%d  data=%x\n", adv.Address, adv.RSSI, adv.Data)
				seen++
				return seen < limit
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Stop after this many scan responses")

	return cmd
}
