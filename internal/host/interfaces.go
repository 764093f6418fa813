package host

// BridgedNetworkingEntitlement is the capability an application needs
// before it may attach a guest to a host interface.
const BridgedNetworkingEntitlement = "com.apple.vm.networking"

// NetworkInterface is a host interface a guest can bridge to.
type NetworkInterface struct {
	// ID is the BSD name or other stable identifier (e.g. "en0").
	ID string `json:"id" yaml:"id"`

	// DisplayName is the localized name. Empty when unavailable.
	// +optional
	DisplayName string `json:"displayName,omitempty" yaml:"displayName,omitempty"`
}

// NetworkInterfaceProvider lists the host's bridgeable interfaces.
type NetworkInterfaceProvider interface {
	NetworkInterfaces() []NetworkInterface
}

// Entitlements answers whether the running application holds a capability.
type Entitlements interface {
	Has(name string) bool
}

// StaticInterfaces is a fixed interface list.
type StaticInterfaces []NetworkInterface

// NetworkInterfaces implements NetworkInterfaceProvider.
func (s StaticInterfaces) NetworkInterfaces() []NetworkInterface {
	out := make([]NetworkInterface, len(s))
	copy(out, s)
	return out
}

// EntitlementSet is a fixed set of granted entitlements.
type EntitlementSet []string

// Has implements Entitlements.
func (s EntitlementSet) Has(name string) bool {
	for _, e := range s {
		if e == name {
			return true
		}
	}
	return false
}

// Snapshot bundles every host collaborator read at startup.
type Snapshot struct {
	Capabilities `json:",inline" yaml:",inline"`

	Interfaces   StaticInterfaces `json:"networkInterfaces,omitempty" yaml:"networkInterfaces,omitempty"`
	Entitlements EntitlementSet   `json:"entitlements,omitempty" yaml:"entitlements,omitempty"`
}
