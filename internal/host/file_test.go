package host

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const studioYAML = `computerName: studio
logicalProcessorCount: 12
physicalMemoryBytes: 34359738368
activeDisplay:
  name: Studio Display
  sizePoints: {width: 2560, height: 1440}
  backingScaleFactor: 2
  deviceResolution: {width: 218, height: 218}
networkInterfaces:
  - id: en0
    displayName: Ethernet
  - id: en1
entitlements:
  - com.apple.vm.networking
`

func TestParseYAML(t *testing.T) {
	snap, err := ParseYAML([]byte(studioYAML))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}

	want := Snapshot{
		Capabilities: Capabilities{
			ComputerName:          "studio",
			LogicalProcessorCount: 12,
			PhysicalMemoryBytes:   32 << 30,
			ActiveDisplay: &Display{
				Name:               "Studio Display",
				SizePoints:         Size{Width: 2560, Height: 1440},
				BackingScaleFactor: 2,
				DeviceResolution:   Size{Width: 218, Height: 218},
			},
		},
		Interfaces:   StaticInterfaces{{ID: "en0", DisplayName: "Ethernet"}, {ID: "en1"}},
		Entitlements: EntitlementSet{BridgedNetworkingEntitlement},
	}

	if diff := cmp.Diff(want, snap); diff != "" {
		t.Errorf("ParseYAML() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseYAML_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{name: "malformed", yaml: "computerName: [", wantErr: "failed to parse"},
		{name: "negative cpus", yaml: "logicalProcessorCount: -1", wantErr: "logicalProcessorCount"},
		{
			name:    "negative scale",
			yaml:    "activeDisplay:\n  backingScaleFactor: -2",
			wantErr: "backingScaleFactor",
		},
		{
			name:    "inset taller than panel",
			yaml:    "activeDisplay:\n  sizePoints: {width: 1512, height: 20}\n  topSafeAreaInset: 32",
			wantErr: "topSafeAreaInset",
		},
		{
			name:    "negative inset",
			yaml:    "activeDisplay:\n  sizePoints: {width: 1512, height: 982}\n  topSafeAreaInset: -1",
			wantErr: "topSafeAreaInset",
		},
		{
			name:    "interface without id",
			yaml:    "networkInterfaces:\n  - displayName: Wi-Fi",
			wantErr: "networkInterfaces[0].id",
		},
		{
			name:    "duplicate interface",
			yaml:    "networkInterfaces:\n  - id: en0\n  - id: en0",
			wantErr: "duplicate id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.yaml))
			if err == nil {
				t.Fatal("ParseYAML() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ParseYAML() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host.yaml")
	if err := os.WriteFile(path, []byte(studioYAML), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	snap, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if snap.LogicalProcessorCount != 12 {
		t.Errorf("LogicalProcessorCount = %d, want 12", snap.LogicalProcessorCount)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFile() of missing file expected error, got nil")
	}
}
