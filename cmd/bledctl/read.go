package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func readCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <handle>",
		Short: "Read one attribute value by handle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handle, err := parseHandle(args[0])
			if err != nil {
				return err
			}
			g, c, err := openConnected()
			if err != nil {
				return err
			}
			defer c.Close()
			defer g.Disconnect()

			value, err := g.ReadAttribute(handle)
			if err != nil {
				return err
			}
			fmt.Printf("%x\n", value)
			return nil
		},
	}
}
