package main

import (
	"fmt"
	"os"

	units "github.com/docker/go-units"
	"github.com/spf13/cobra"

	"github.com/jbweber/vbmac/internal/libvirt"
)

var testConnCmd = &cobra.Command{
	Use:   "test-conn",
	Short: "Test libvirt connection",
	Long:  `Test connectivity to the libvirt daemon and display what it reports about the host.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		fmt.Println("Testing libvirt connection...")

		client, err := libvirt.Dial(cmd.Context(), settings.LibvirtSocket, settings.LibvirtTimeout)
		if err != nil {
			return fmt.Errorf("failed to connect to libvirt: %w", err)
		}
		defer func() {
			if closeErr := client.Close(); closeErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close libvirt connection: %v\n", closeErr)
			}
		}()

		fmt.Printf("✓ Connected to libvirt daemon at %s\n", client.Socket())

		if err := client.Ping(); err != nil {
			return fmt.Errorf("connection test failed: %w", err)
		}

		version, err := client.Version()
		if err != nil {
			return fmt.Errorf("failed to get libvirt version: %w", err)
		}

		hostname, err := client.Hostname()
		if err != nil {
			return fmt.Errorf("failed to get hostname: %w", err)
		}

		info, err := client.NodeInfo()
		if err != nil {
			return fmt.Errorf("failed to get node info: %w", err)
		}

		fmt.Printf("✓ Libvirt version: %s\n", version)
		fmt.Printf("✓ Hypervisor hostname: %s\n", hostname)
		fmt.Printf("✓ Host: %d CPUs, %s memory\n", info.CPUs, units.BytesSize(float64(info.MemoryKiB*1024)))

		fmt.Println("\n✓ Connection test successful!")
		return nil
	},
}
