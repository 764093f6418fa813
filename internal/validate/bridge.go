package validate

import "github.com/jbweber/vbmac/internal/host"

// BridgeInterface is a host interface offered for bridging.
type BridgeInterface struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// SupportsBridgedNetworking reports whether the application holds the
// bridged networking entitlement. A nil lookup grants nothing.
func SupportsBridgedNetworking(ents host.Entitlements) bool {
	return ents != nil && ents.Has(host.BridgedNetworkingEntitlement)
}

// DefaultBridgeInterfaceID returns the first interface the provider lists.
func DefaultBridgeInterfaceID(p host.NetworkInterfaceProvider) (string, bool) {
	if p == nil {
		return "", false
	}
	ifaces := p.NetworkInterfaces()
	if len(ifaces) == 0 {
		return "", false
	}
	return ifaces[0].ID, true
}

// BridgeInterfaces maps the provider's interfaces to (id, name) pairs in
// provider order. A missing display name defaults to the id.
func BridgeInterfaces(p host.NetworkInterfaceProvider) []BridgeInterface {
	if p == nil {
		return nil
	}
	ifaces := p.NetworkInterfaces()
	out := make([]BridgeInterface, 0, len(ifaces))
	for _, iface := range ifaces {
		name := iface.DisplayName
		if name == "" {
			name = iface.ID
		}
		out = append(out, BridgeInterface{ID: iface.ID, Name: name})
	}
	return out
}
