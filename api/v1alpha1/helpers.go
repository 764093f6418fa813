package v1alpha1

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/google/uuid"
)

const (
	// GroupName is the API group for vbmac resources.
	GroupName = "vbmac.cofront.xyz"

	// Version is the API version.
	Version = "v1alpha1"

	// ConfigurationKind is the kind string for VBMacConfiguration resources.
	ConfigurationKind = "VBMacConfiguration"

	// DefaultDeviceName labels devices that have no better name.
	DefaultDeviceName = "Default"

	// GiB is one gibibyte in bytes.
	GiB = uint64(1024 * 1024 * 1024)
)

// NewConfiguration wraps a hardware device set in a VBMacConfiguration with
// TypeMeta populated and no shared folders.
func NewConfiguration(hw MacHardwareDevice) *VBMacConfiguration {
	return &VBMacConfiguration{
		TypeMeta: TypeMeta{
			APIVersion: GroupName + "/" + Version,
			Kind:       ConfigurationKind,
		},
		Hardware: hw,
	}
}

// SetDefaultAPIVersion ensures the configuration has the correct apiVersion and kind.
// Useful when loading from files that might be missing these fields.
func SetDefaultAPIVersion(cfg *VBMacConfiguration) {
	if cfg.APIVersion == "" {
		cfg.APIVersion = GroupName + "/" + Version
	}
	if cfg.Kind == "" {
		cfg.Kind = ConfigurationKind
	}
}

// NewSharedFolder creates a read-only shared folder for path with a fresh ID.
func NewSharedFolder(path string) SharedFolder {
	readOnly := true
	return SharedFolder{
		ID:       uuid.New().String(),
		Path:     path,
		ReadOnly: &readOnly,
	}
}

// Name returns the folder name, derived from the last path component.
// Trailing separators are ignored ("/Users/me/Projects/" -> "Projects").
func (f SharedFolder) Name() string {
	p := strings.TrimRight(f.Path, "/")
	if p == "" {
		return f.Path
	}
	return filepath.Base(p)
}

// IsReadOnly returns true if the folder is shared read-only.
// Handles nil pointer by returning default value (true).
func (f SharedFolder) IsReadOnly() bool {
	if f.ReadOnly == nil {
		return true // default
	}
	return *f.ReadOnly
}

// Valid reports whether k is a known network kind.
func (k NetworkKind) Valid() bool {
	return k == NetworkKindNAT || k == NetworkKindBridge
}

// String returns the kind as written in configuration files.
func (k NetworkKind) String() string {
	return string(k)
}

// Valid reports whether k is a known pointing device kind.
func (k PointingDeviceKind) Valid() bool {
	return k == PointingDeviceMouse || k == PointingDeviceTrackpad
}

// String returns the kind as written in configuration files.
func (k PointingDeviceKind) String() string {
	return string(k)
}

// MemoryGiB returns the memory size in whole gibibytes, rounded down.
func (h *MacHardwareDevice) MemoryGiB() int {
	return int(h.MemorySize / GiB)
}

// Equal reports whether two configurations are structurally equal.
// Nil and empty lists compare equal, matching their serialized form, and an
// unset shared folder read-only flag equals an explicit true.
func (cfg *VBMacConfiguration) Equal(other *VBMacConfiguration) bool {
	if cfg == nil || other == nil {
		return cfg == other
	}
	return reflect.DeepEqual(normalized(cfg), normalized(other))
}

// Fingerprint returns a structural hash of the configuration.
// Equal configurations always have the same fingerprint.
func (cfg *VBMacConfiguration) Fingerprint() string {
	// Struct field order makes the JSON encoding canonical; the types
	// contain no maps, so encoding cannot fail.
	data, _ := json.Marshal(normalized(cfg))
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// normalized returns a copy with empty lists collapsed to nil and every
// shared folder's read-only flag resolved.
func normalized(cfg *VBMacConfiguration) *VBMacConfiguration {
	out := cfg.DeepCopy()
	if len(out.SharedFolders) == 0 {
		out.SharedFolders = nil
	}
	for i := range out.SharedFolders {
		readOnly := out.SharedFolders[i].IsReadOnly()
		out.SharedFolders[i].ReadOnly = &readOnly
	}
	hw := &out.Hardware
	if len(hw.Displays) == 0 {
		hw.Displays = nil
	}
	if len(hw.NetworkDevices) == 0 {
		hw.NetworkDevices = nil
	}
	if len(hw.SoundDevices) == 0 {
		hw.SoundDevices = nil
	}
	if len(hw.NVRAM) == 0 {
		hw.NVRAM = nil
	}
	return out
}
