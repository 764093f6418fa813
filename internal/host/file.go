package host

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a static host description from a YAML file.
func LoadFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read host file: %w", err)
	}

	snap, err := ParseYAML(data)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%s: %w", path, err)
	}
	return snap, nil
}

// ParseYAML parses a static host description.
//
// Example:
//
//	computerName: studio
//	logicalProcessorCount: 12
//	physicalMemoryBytes: 34359738368
//	activeDisplay:
//	  name: Studio Display
//	  sizePoints: {width: 2560, height: 1440}
//	  backingScaleFactor: 2
//	  deviceResolution: {width: 218, height: 218}
//	networkInterfaces:
//	  - id: en0
//	    displayName: Ethernet
//	entitlements:
//	  - com.apple.vm.networking
func ParseYAML(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse host YAML: %w", err)
	}

	if err := validateSnapshot(&snap); err != nil {
		return Snapshot{}, fmt.Errorf("invalid host description: %w", err)
	}

	return snap, nil
}

func validateSnapshot(s *Snapshot) error {
	if s.LogicalProcessorCount < 0 {
		return fmt.Errorf("logicalProcessorCount must not be negative, got %d", s.LogicalProcessorCount)
	}

	if d := s.ActiveDisplay; d != nil {
		if d.SizePoints.Width < 0 || d.SizePoints.Height < 0 {
			return fmt.Errorf("activeDisplay.sizePoints must not be negative")
		}
		if d.BackingScaleFactor < 0 {
			return fmt.Errorf("activeDisplay.backingScaleFactor must not be negative")
		}
		if d.TopSafeAreaInset < 0 || d.TopSafeAreaInset > d.SizePoints.Height {
			return fmt.Errorf("activeDisplay.topSafeAreaInset must be between 0 and sizePoints.height, got %g", d.TopSafeAreaInset)
		}
	}

	seen := make(map[string]bool, len(s.Interfaces))
	for i, iface := range s.Interfaces {
		if iface.ID == "" {
			return fmt.Errorf("networkInterfaces[%d].id is required", i)
		}
		if seen[iface.ID] {
			return fmt.Errorf("networkInterfaces[%d]: duplicate id %q", i, iface.ID)
		}
		seen[iface.ID] = true
	}

	return nil
}
