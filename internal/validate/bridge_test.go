package validate

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jbweber/vbmac/internal/host"
)

func TestSupportsBridgedNetworking(t *testing.T) {
	tests := []struct {
		name string
		ents host.Entitlements
		want bool
	}{
		{name: "granted", ents: host.EntitlementSet{host.BridgedNetworkingEntitlement}, want: true},
		{name: "other entitlements", ents: host.EntitlementSet{"com.apple.security.virtualization"}, want: false},
		{name: "none", ents: host.EntitlementSet{}, want: false},
		{name: "nil", ents: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SupportsBridgedNetworking(tt.ents); got != tt.want {
				t.Errorf("SupportsBridgedNetworking() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultBridgeInterfaceID(t *testing.T) {
	tests := []struct {
		name     string
		provider host.NetworkInterfaceProvider
		wantID   string
		wantOK   bool
	}{
		{
			name:     "first interface",
			provider: host.StaticInterfaces{{ID: "en0"}, {ID: "en1"}},
			wantID:   "en0",
			wantOK:   true,
		},
		{name: "empty", provider: host.StaticInterfaces{}, wantOK: false},
		{name: "nil provider", provider: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := DefaultBridgeInterfaceID(tt.provider)
			if id != tt.wantID || ok != tt.wantOK {
				t.Errorf("DefaultBridgeInterfaceID() = (%q, %v), want (%q, %v)", id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestBridgeInterfaces(t *testing.T) {
	provider := host.StaticInterfaces{
		{ID: "en0", DisplayName: "Ethernet"},
		{ID: "en1"},
		{ID: "bridge100", DisplayName: "Thunderbolt Bridge"},
	}

	want := []BridgeInterface{
		{ID: "en0", Name: "Ethernet"},
		{ID: "en1", Name: "en1"},
		{ID: "bridge100", Name: "Thunderbolt Bridge"},
	}

	if diff := cmp.Diff(want, BridgeInterfaces(provider)); diff != "" {
		t.Errorf("BridgeInterfaces() mismatch (-want +got):\n%s", diff)
	}
	if got := BridgeInterfaces(nil); got != nil {
		t.Errorf("BridgeInterfaces(nil) = %v, want nil", got)
	}
}
