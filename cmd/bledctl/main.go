package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bluegill/bledctl/internal/logging"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bledctl",
		Short: "Control a BLED112 Bluetooth Smart dongle",
		Long: `bledctl drives a BLED112 USB dongle over its serial interface.

The dongle speaks the BGAPI binary protocol; bledctl frames commands,
waits for their responses, and sequences the GATT procedures needed to
scan for devices, connect, and read or write attributes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.ConfigureRuntime()
		},
	}

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a TOML device config")
	rootCmd.PersistentFlags().StringVar(&flagPort, "port", "", "Serial port the dongle enumerates as")
	rootCmd.PersistentFlags().IntVar(&flagBaud, "baud", 0, "Serial baud rate")
	rootCmd.PersistentFlags().StringVar(&flagAddress, "address", "", "Peer device address (aa:bb:cc:dd:ee:ff)")

	rootCmd.AddCommand(
		infoCmd(),
		scanCmd(),
		characteristicsCmd(),
		readCmd(),
		writeCmd(),
		listenCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
