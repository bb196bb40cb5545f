package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func characteristicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "characteristics",
		Aliases: []string{"chars"},
		Short:   "List the attribute handles of the connected device",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, c, err := openConnected()
			if err != nil {
				return err
			}
			defer c.Close()
			defer g.Disconnect()

			chars, err := g.Characteristics()
			if err != nil {
				return err
			}
			uuids := make([]string, 0, len(chars))
			for uuid := range chars {
				uuids = append(uuids, uuid)
			}
			sort.Strings(uuids)
			for _, uuid := range uuids {
				fmt.Printf("%-36s 0x%04x\n", uuid, chars[uuid])
			}
			return nil
		},
	}
}
