//go:build darwin

package host

import "github.com/Code-Hex/vz/v3"

// SystemInterfaces returns the interfaces Virtualization.framework can
// bridge to, with their localized names.
func SystemInterfaces() StaticInterfaces {
	networks := vz.NetworkInterfaces()
	out := make(StaticInterfaces, 0, len(networks))
	for _, n := range networks {
		out = append(out, NetworkInterface{
			ID:          n.Identifier(),
			DisplayName: n.LocalizedDisplayName(),
		})
	}
	return out
}
