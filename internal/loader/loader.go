// Package loader reads and writes VBMacConfiguration resources as YAML
// (or JSON) files.
package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/jbweber/vbmac/api/v1alpha1"
)

// LoadFromFile loads a VBMacConfiguration from a YAML file.
// The file must be in the vbmac.cofront.xyz/v1alpha1 format.
func LoadFromFile(path string) (*v1alpha1.VBMacConfiguration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	return LoadFromYAML(data)
}

// LoadFromYAML loads a VBMacConfiguration from YAML bytes.
func LoadFromYAML(data []byte) (*v1alpha1.VBMacConfiguration, error) {
	var cfg v1alpha1.VBMacConfiguration
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}
	return finish(&cfg)
}

// LoadFromJSON loads a VBMacConfiguration from JSON bytes.
func LoadFromJSON(data []byte) (*v1alpha1.VBMacConfiguration, error) {
	var cfg v1alpha1.VBMacConfiguration
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return finish(&cfg)
}

func finish(cfg *v1alpha1.VBMacConfiguration) (*v1alpha1.VBMacConfiguration, error) {
	if cfg.APIVersion == "" {
		return nil, fmt.Errorf("missing required field: apiVersion")
	}
	if cfg.Kind == "" {
		return nil, fmt.Errorf("missing required field: kind")
	}

	expectedAPIVersion := v1alpha1.GroupName + "/" + v1alpha1.Version
	if cfg.APIVersion != expectedAPIVersion {
		return nil, fmt.Errorf("unsupported apiVersion: %s (expected: %s)", cfg.APIVersion, expectedAPIVersion)
	}
	if cfg.Kind != v1alpha1.ConfigurationKind {
		return nil, fmt.Errorf("unsupported kind: %s (expected: %s)", cfg.Kind, v1alpha1.ConfigurationKind)
	}

	applyDefaults(cfg)

	if err := validateSpec(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return cfg, nil
}

// MarshalYAML encodes cfg with TypeMeta filled in. cfg is not modified.
func MarshalYAML(cfg *v1alpha1.VBMacConfiguration) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is nil")
	}
	out := cfg.DeepCopy()
	v1alpha1.SetDefaultAPIVersion(out)

	data, err := yaml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal configuration to YAML: %w", err)
	}
	return data, nil
}

// SaveToFile saves a VBMacConfiguration to a YAML file.
func SaveToFile(cfg *v1alpha1.VBMacConfiguration, path string) error {
	data, err := MarshalYAML(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return nil
}

// applyDefaults fills identities, names, and flags that may be omitted.
func applyDefaults(cfg *v1alpha1.VBMacConfiguration) {
	hw := &cfg.Hardware

	for i := range hw.Displays {
		d := &hw.Displays[i]
		defaultID(&d.ID)
		defaultName(&d.Name)
	}
	for i := range hw.NetworkDevices {
		n := &hw.NetworkDevices[i]
		defaultID(&n.ID)
		defaultName(&n.Name)
	}
	for i := range hw.SoundDevices {
		s := &hw.SoundDevices[i]
		defaultID(&s.ID)
		defaultName(&s.Name)
	}

	for i := range cfg.SharedFolders {
		f := &cfg.SharedFolders[i]
		defaultID(&f.ID)
	}
}

func defaultID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

func defaultName(name *string) {
	if *name == "" {
		*name = v1alpha1.DefaultDeviceName
	}
}

// validateSpec checks the structure a configuration needs to be usable.
// Host-dependent ranges are checked by the validate package.
func validateSpec(cfg *v1alpha1.VBMacConfiguration) error {
	hw := &cfg.Hardware

	if hw.CPUCount <= 0 {
		return fmt.Errorf("hardware.cpuCount must be greater than 0")
	}
	if hw.MemorySize == 0 {
		return fmt.Errorf("hardware.memorySize must be greater than 0")
	}

	if !hw.PointingDevice.Kind.Valid() {
		return fmt.Errorf("hardware.pointingDevice.kind %q must be one of mouse, trackpad", hw.PointingDevice.Kind)
	}

	if len(hw.Displays) == 0 {
		return fmt.Errorf("hardware.displays must have at least one display")
	}
	for i, d := range hw.Displays {
		if d.Width <= 0 || d.Height <= 0 {
			return fmt.Errorf("hardware.displays[%d] must have a positive width and height", i)
		}
		if d.PixelsPerInch <= 0 {
			return fmt.Errorf("hardware.displays[%d].pixelsPerInch must be greater than 0", i)
		}
	}

	idsSeen := make(map[string]bool)
	checkID := func(field, id string) error {
		if idsSeen[id] {
			return fmt.Errorf("%s.id %q is duplicated", field, id)
		}
		idsSeen[id] = true
		return nil
	}

	for i, d := range hw.Displays {
		if err := checkID(fmt.Sprintf("hardware.displays[%d]", i), d.ID); err != nil {
			return err
		}
	}

	for i, n := range hw.NetworkDevices {
		field := fmt.Sprintf("hardware.networkDevices[%d]", i)
		if err := checkID(field, n.ID); err != nil {
			return err
		}
		if !n.Kind.Valid() {
			return fmt.Errorf("%s.kind %q must be one of NAT, bridge", field, n.Kind)
		}
		if n.Kind == v1alpha1.NetworkKindBridge && n.BridgeInterfaceID == "" {
			return fmt.Errorf("%s.bridgeInterfaceID is required for bridge devices", field)
		}
		if n.MACAddress == "" {
			return fmt.Errorf("%s.macAddress is required", field)
		}
	}

	for i, s := range hw.SoundDevices {
		if err := checkID(fmt.Sprintf("hardware.soundDevices[%d]", i), s.ID); err != nil {
			return err
		}
	}

	for i, k := range hw.NVRAM {
		if k.Key == "" {
			return fmt.Errorf("hardware.nvram[%d].key is required", i)
		}
	}

	for i, f := range cfg.SharedFolders {
		if f.Path == "" {
			return fmt.Errorf("sharedFolders[%d].path is required", i)
		}
	}

	return nil
}
