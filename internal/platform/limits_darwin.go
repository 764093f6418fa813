//go:build darwin

package platform

import "github.com/Code-Hex/vz/v3"

// Detect reads the limits from Virtualization.framework.
func Detect() Limits {
	return Limits{
		MinCPUCount:    int(vz.VirtualMachineConfigurationMinimumAllowedCPUCount()),
		MaxCPUCount:    int(vz.VirtualMachineConfigurationMaximumAllowedCPUCount()),
		MinMemoryBytes: vz.VirtualMachineConfigurationMinimumAllowedMemorySize(),
		MaxMemoryBytes: vz.VirtualMachineConfigurationMaximumAllowedMemorySize(),
	}.Normalize()
}
