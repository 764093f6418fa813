package validate

import "testing"

func TestValidateMAC(t *testing.T) {
	tests := []struct {
		address string
		want    bool
	}{
		{"5a:00:00:00:00:01", true},
		{"5A:0B:CC:dd:EE:ff", true},
		{"00-11-22-33-44-55", true},
		{"00:11:22:33:44", false},
		{"00:11:22:33:44:55:66", false},
		{"00:11:22:33:44:5g", false},
		{"0011.2233.4455", false},
		{"00:11-22:33:44:55", false},
		{"001122334455", false},
		{"", false},
		{"00:11:22:33:44:55:66:77", false},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			if got := ValidateMAC(tt.address); got != tt.want {
				t.Errorf("ValidateMAC(%q) = %v, want %v", tt.address, got, tt.want)
			}
		})
	}
}

func TestConfiguration_KeepsMACCase(t *testing.T) {
	cfg := validConfiguration()
	cfg.Hardware.NetworkDevices[0].MACAddress = "5A:00:00:00:00:0F"
	before := cfg.DeepCopy()

	if issues := Configuration(cfg, testResolver(), testOptions()); len(issues) != 0 {
		t.Errorf("Configuration() = %v, want no issues for upper-case MAC", issues)
	}
	if !cfg.Equal(before) {
		t.Errorf("Configuration() changed its input: MAC is now %q", cfg.Hardware.NetworkDevices[0].MACAddress)
	}
}

func TestIsLocallyAdministered(t *testing.T) {
	tests := []struct {
		address string
		want    bool
	}{
		{"02:00:00:00:00:01", true},
		{"5a:00:00:00:00:01", true},
		{"00:11:22:33:44:55", false},
		{"03:00:00:00:00:01", false},
		{"not-a-mac", false},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			if got := IsLocallyAdministered(tt.address); got != tt.want {
				t.Errorf("IsLocallyAdministered(%q) = %v, want %v", tt.address, got, tt.want)
			}
		})
	}
}
