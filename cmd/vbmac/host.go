package main

import (
	"github.com/spf13/cobra"
)

var hostCmd = &cobra.Command{
	Use:   "host",
	Short: "Show host capabilities",
	Long: `Show the host facts every derivation starts from: computer name,
processor count, physical memory, the active display, bridgeable network
interfaces, and entitlements.

The host is read from --host-file when set, otherwise from libvirt.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.close()

		result, err := e.formatter.FormatHost(e.snapshot)
		return writeResult(cmd, result, err)
	},
}

var rangesCmd = &cobra.Command{
	Use:   "ranges",
	Short: "Show legal hardware ranges",
	Long: `Show the CPU, memory, and display ranges allowed on this host.

Ranges combine the host's capacity with the virtualization platform's
limits. A range with equal bounds is a fixed value.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.close()

		result, err := e.formatter.FormatRanges(e.resolver.Summary())
		return writeResult(cmd, result, err)
	},
}

var bridgesCmd = &cobra.Command{
	Use:   "bridges",
	Short: "Show bridgeable host interfaces",
	Long: `List the host interfaces a network device can bridge to, the default
choice for new bridged devices, and whether bridging is entitled at all.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.close()

		report := bridgeReport(e.snapshot.Interfaces, e.snapshot.Entitlements)
		result, err := e.formatter.FormatBridges(report)
		return writeResult(cmd, result, err)
	},
}
