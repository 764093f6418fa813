package validate

import (
	"strings"
	"testing"

	"github.com/coreos/go-semver/semver"

	"github.com/jbweber/vbmac/api/v1alpha1"
	"github.com/jbweber/vbmac/internal/host"
	"github.com/jbweber/vbmac/internal/platform"
	"github.com/jbweber/vbmac/internal/ranges"
)

func testResolver() *ranges.Resolver {
	return ranges.NewResolver(platform.Default(), host.Capabilities{
		LogicalProcessorCount: 8,
		PhysicalMemoryBytes:   16 * v1alpha1.GiB,
	})
}

func validConfiguration() *v1alpha1.VBMacConfiguration {
	cfg := v1alpha1.NewConfiguration(v1alpha1.MacHardwareDevice{
		CPUCount:       4,
		MemorySize:     8 * v1alpha1.GiB,
		PointingDevice: v1alpha1.PointingDevice{Kind: v1alpha1.PointingDeviceMouse},
		Displays: []v1alpha1.DisplayDevice{
			{ID: "d1", Name: "Default", Width: 1920, Height: 1080, PixelsPerInch: 144},
		},
		NetworkDevices: []v1alpha1.NetworkDevice{
			{ID: "n1", Name: "Default", Kind: v1alpha1.NetworkKindNAT, MACAddress: "5a:00:00:00:00:01"},
		},
	})
	cfg.SharedFolders = []v1alpha1.SharedFolder{{ID: "f1", Path: "/Users/me/Projects"}}
	return cfg
}

func testOptions() Options {
	return Options{
		GuestVersion: semver.New("14.0.0"),
		Interfaces:   host.StaticInterfaces{{ID: "en0"}},
		Entitlements: host.EntitlementSet{host.BridgedNetworkingEntitlement},
	}
}

func TestConfiguration_Valid(t *testing.T) {
	if issues := Configuration(validConfiguration(), testResolver(), testOptions()); len(issues) != 0 {
		t.Errorf("Configuration() = %v, want no issues", issues)
	}
}

func TestConfiguration_Issues(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(cfg *v1alpha1.VBMacConfiguration)
		opts      func(o *Options)
		wantField string
		wantFatal bool
	}{
		{
			name:      "too many cpus",
			mutate:    func(cfg *v1alpha1.VBMacConfiguration) { cfg.Hardware.CPUCount = 16 },
			wantField: "hardware.cpuCount",
			wantFatal: true,
		},
		{
			name:      "zero cpus",
			mutate:    func(cfg *v1alpha1.VBMacConfiguration) { cfg.Hardware.CPUCount = 0 },
			wantField: "hardware.cpuCount",
			wantFatal: true,
		},
		{
			name:      "memory above platform",
			mutate:    func(cfg *v1alpha1.VBMacConfiguration) { cfg.Hardware.MemorySize = 128 * v1alpha1.GiB },
			wantField: "hardware.memorySize",
			wantFatal: true,
		},
		{
			name:      "memory above host range",
			mutate:    func(cfg *v1alpha1.VBMacConfiguration) { cfg.Hardware.MemorySize = 32 * v1alpha1.GiB },
			wantField: "hardware.memorySize",
			wantFatal: false,
		},
		{
			name:      "no displays",
			mutate:    func(cfg *v1alpha1.VBMacConfiguration) { cfg.Hardware.Displays = nil },
			wantField: "hardware.displays",
			wantFatal: true,
		},
		{
			name:      "display too narrow",
			mutate:    func(cfg *v1alpha1.VBMacConfiguration) { cfg.Hardware.Displays[0].Width = 640 },
			wantField: "hardware.displays[0].width",
			wantFatal: true,
		},
		{
			name:      "display too tall",
			mutate:    func(cfg *v1alpha1.VBMacConfiguration) { cfg.Hardware.Displays[0].Height = 4000 },
			wantField: "hardware.displays[0].height",
			wantFatal: true,
		},
		{
			name:      "display ppi",
			mutate:    func(cfg *v1alpha1.VBMacConfiguration) { cfg.Hardware.Displays[0].PixelsPerInch = 300 },
			wantField: "hardware.displays[0].pixelsPerInch",
			wantFatal: true,
		},
		{
			name:      "bad mac",
			mutate:    func(cfg *v1alpha1.VBMacConfiguration) { cfg.Hardware.NetworkDevices[0].MACAddress = "zz:00:00:00:00:01" },
			wantField: "hardware.networkDevices[0].macAddress",
			wantFatal: true,
		},
		{
			name:      "globally administered mac",
			mutate:    func(cfg *v1alpha1.VBMacConfiguration) { cfg.Hardware.NetworkDevices[0].MACAddress = "00:11:22:33:44:55" },
			wantField: "hardware.networkDevices[0].macAddress",
			wantFatal: true,
		},
		{
			name:      "multicast mac",
			mutate:    func(cfg *v1alpha1.VBMacConfiguration) { cfg.Hardware.NetworkDevices[0].MACAddress = "5b:00:00:00:00:01" },
			wantField: "hardware.networkDevices[0].macAddress",
			wantFatal: true,
		},
		{
			name:      "nat with bridge id",
			mutate:    func(cfg *v1alpha1.VBMacConfiguration) { cfg.Hardware.NetworkDevices[0].BridgeInterfaceID = "en0" },
			wantField: "hardware.networkDevices[0].bridgeInterfaceID",
			wantFatal: false,
		},
		{
			name:      "bridge without interface",
			mutate:    func(cfg *v1alpha1.VBMacConfiguration) { cfg.Hardware.NetworkDevices[0].Kind = v1alpha1.NetworkKindBridge },
			wantField: "hardware.networkDevices[0].bridgeInterfaceID",
			wantFatal: true,
		},
		{
			name: "bridge to unknown interface",
			mutate: func(cfg *v1alpha1.VBMacConfiguration) {
				cfg.Hardware.NetworkDevices[0].Kind = v1alpha1.NetworkKindBridge
				cfg.Hardware.NetworkDevices[0].BridgeInterfaceID = "en7"
			},
			wantField: "hardware.networkDevices[0].bridgeInterfaceID",
			wantFatal: false,
		},
		{
			name: "bridge without entitlement",
			mutate: func(cfg *v1alpha1.VBMacConfiguration) {
				cfg.Hardware.NetworkDevices[0].Kind = v1alpha1.NetworkKindBridge
				cfg.Hardware.NetworkDevices[0].BridgeInterfaceID = "en0"
			},
			opts:      func(o *Options) { o.Entitlements = host.EntitlementSet{} },
			wantField: "hardware.networkDevices[0].kind",
			wantFatal: false,
		},
		{
			name:      "unknown network kind",
			mutate:    func(cfg *v1alpha1.VBMacConfiguration) { cfg.Hardware.NetworkDevices[0].Kind = "host-only" },
			wantField: "hardware.networkDevices[0].kind",
			wantFatal: true,
		},
		{
			name:      "unknown pointing kind",
			mutate:    func(cfg *v1alpha1.VBMacConfiguration) { cfg.Hardware.PointingDevice.Kind = "" },
			wantField: "hardware.pointingDevice.kind",
			wantFatal: true,
		},
		{
			name:      "trackpad on old guest",
			mutate:    func(cfg *v1alpha1.VBMacConfiguration) { cfg.Hardware.PointingDevice.Kind = v1alpha1.PointingDeviceTrackpad },
			opts:      func(o *Options) { o.GuestVersion = semver.New("12.7.0") },
			wantField: "hardware.pointingDevice.kind",
			wantFatal: false,
		},
		{
			name:      "empty shared folder path",
			mutate:    func(cfg *v1alpha1.VBMacConfiguration) { cfg.SharedFolders[0].Path = "" },
			wantField: "sharedFolders[0].path",
			wantFatal: true,
		},
		{
			name: "duplicate shared folder",
			mutate: func(cfg *v1alpha1.VBMacConfiguration) {
				cfg.SharedFolders = append(cfg.SharedFolders, v1alpha1.SharedFolder{ID: "f2", Path: "/Users/me/Projects"})
			},
			wantField: "sharedFolders[1].path",
			wantFatal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfiguration()
			tt.mutate(cfg)
			opts := testOptions()
			if tt.opts != nil {
				tt.opts(&opts)
			}

			issues := Configuration(cfg, testResolver(), opts)
			if len(issues) != 1 {
				t.Fatalf("Configuration() = %v, want exactly one issue", issues)
			}
			if issues[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", issues[0].Field, tt.wantField)
			}
			if issues[0].Fatal != tt.wantFatal {
				t.Errorf("Fatal = %v, want %v", issues[0].Fatal, tt.wantFatal)
			}
			if HasFatal(issues) != tt.wantFatal {
				t.Errorf("HasFatal() = %v, want %v", HasFatal(issues), tt.wantFatal)
			}
		})
	}
}

func TestConfiguration_NilCollaborators(t *testing.T) {
	cfg := validConfiguration()
	cfg.Hardware.NetworkDevices[0].Kind = v1alpha1.NetworkKindBridge
	cfg.Hardware.NetworkDevices[0].BridgeInterfaceID = "en9"

	issues := Configuration(cfg, testResolver(), Options{})
	if len(issues) != 0 {
		t.Errorf("Configuration() with nil collaborators = %v, want no issues", issues)
	}
}

func TestConfiguration_Nil(t *testing.T) {
	issues := Configuration(nil, testResolver(), Options{})
	if !HasFatal(issues) {
		t.Errorf("Configuration(nil) = %v, want a fatal issue", issues)
	}
}

func TestConfiguration_DoesNotModify(t *testing.T) {
	cfg := validConfiguration()
	cfg.Hardware.Displays[0].Width = 1
	before := cfg.DeepCopy()

	Configuration(cfg, testResolver(), testOptions())
	if !cfg.Equal(before) {
		t.Error("Configuration() modified its input")
	}
}

func TestFormatIssues(t *testing.T) {
	if got := FormatIssues(nil); got != "" {
		t.Errorf("FormatIssues(nil) = %q, want empty", got)
	}

	got := FormatIssues([]Issue{
		{Field: "hardware.cpuCount", Message: "too many", Fatal: true},
		{Field: "hardware.pointingDevice.kind", Message: "old guest"},
	})

	for _, want := range []string{
		"Configuration issues:",
		"Error [hardware.cpuCount]: too many",
		"Warning [hardware.pointingDevice.kind]: old guest",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatIssues() = %q, missing %q", got, want)
		}
	}
}
