package defaults

import (
	"testing"

	"github.com/jbweber/vbmac/api/v1alpha1"
	"github.com/jbweber/vbmac/internal/host"
)

func editedConfiguration() *v1alpha1.VBMacConfiguration {
	return v1alpha1.NewConfiguration(v1alpha1.MacHardwareDevice{
		CPUCount:       2,
		MemorySize:     4 * v1alpha1.GiB,
		PointingDevice: v1alpha1.PointingDevice{Kind: v1alpha1.PointingDeviceTrackpad},
		Displays: []v1alpha1.DisplayDevice{
			{ID: "d1", Name: "Old", Width: 800, Height: 600, PixelsPerInch: 80},
		},
		NetworkDevices: []v1alpha1.NetworkDevice{
			{ID: "n1", Name: "Bridge", Kind: v1alpha1.NetworkKindBridge, MACAddress: "5a:00:00:00:00:99", BridgeInterfaceID: "en0"},
		},
		SoundDevices: []v1alpha1.SoundDevice{
			{ID: "s1", Name: "Mute"},
		},
		NVRAM: []v1alpha1.NVRAMVariable{{Key: "boot-args", Value: "-v"}},
	})
}

func TestFactory_Reset(t *testing.T) {
	tests := []struct {
		name  string
		part  Part
		check func(t *testing.T, got *v1alpha1.VBMacConfiguration)
	}{
		{
			name: "display",
			part: PartDisplay,
			check: func(t *testing.T, got *v1alpha1.VBMacConfiguration) {
				if d := got.Hardware.Displays[0]; d.Width != 3024 || d.Height != 1900 {
					t.Errorf("Displays[0] = %+v, want host match", d)
				}
			},
		},
		{
			name: "network",
			part: PartNetwork,
			check: func(t *testing.T, got *v1alpha1.VBMacConfiguration) {
				n := got.Hardware.NetworkDevices[0]
				if n.Kind != v1alpha1.NetworkKindNAT || n.BridgeInterfaceID != "" || n.MACAddress != "5a:00:00:00:00:01" {
					t.Errorf("NetworkDevices[0] = %+v, want fresh NAT device", n)
				}
			},
		},
		{
			name: "sound",
			part: PartSound,
			check: func(t *testing.T, got *v1alpha1.VBMacConfiguration) {
				if s := got.Hardware.SoundDevices[0]; !s.EnableInput || !s.EnableOutput {
					t.Errorf("SoundDevices[0] = %+v, want both enabled", s)
				}
			},
		},
		{
			name: "pointing",
			part: PartPointing,
			check: func(t *testing.T, got *v1alpha1.VBMacConfiguration) {
				if got.Hardware.PointingDevice.Kind != v1alpha1.PointingDeviceMouse {
					t.Errorf("PointingDevice = %v, want mouse", got.Hardware.PointingDevice.Kind)
				}
			},
		},
		{
			name: "hardware keeps nvram",
			part: PartHardware,
			check: func(t *testing.T, got *v1alpha1.VBMacConfiguration) {
				if got.Hardware.CPUCount != 4 {
					t.Errorf("CPUCount = %d, want 4", got.Hardware.CPUCount)
				}
				if len(got.Hardware.NVRAM) != 1 || got.Hardware.NVRAM[0].Value != "-v" {
					t.Errorf("NVRAM = %+v, want preserved", got.Hardware.NVRAM)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := editedConfiguration()
			before := orig.DeepCopy()

			got, err := newTestFactory(notchedMacBook()).Reset(orig, tt.part, 0)
			if err != nil {
				t.Fatalf("Reset() error = %v", err)
			}
			tt.check(t, got)

			if !orig.Equal(before) {
				t.Error("Reset() modified its input")
			}
		})
	}
}

func TestFactory_Reset_Errors(t *testing.T) {
	f := newTestFactory(host.Capabilities{})

	if _, err := f.Reset(editedConfiguration(), PartDisplay, 1); err == nil {
		t.Error("Reset() with out-of-range index expected error, got nil")
	}
	if _, err := f.Reset(editedConfiguration(), PartSound, -1); err == nil {
		t.Error("Reset() with negative index expected error, got nil")
	}
	if _, err := f.Reset(editedConfiguration(), Part("gpu"), 0); err == nil {
		t.Error("Reset() with unknown part expected error, got nil")
	}
	if _, err := f.Reset(nil, PartPointing, 0); err == nil {
		t.Error("Reset() of nil configuration expected error, got nil")
	}
}

func TestParsePart(t *testing.T) {
	for _, p := range Parts {
		got, err := ParsePart(string(p))
		if err != nil || got != p {
			t.Errorf("ParsePart(%q) = %q, %v", p, got, err)
		}
	}
	if _, err := ParsePart("keyboard"); err == nil {
		t.Error("ParsePart() of unknown part expected error, got nil")
	}
}
