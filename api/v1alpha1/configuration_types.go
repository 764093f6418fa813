package v1alpha1

// VBMacConfiguration is the hardware configuration of one macOS virtual machine.
//
// It is the unit that is persisted and edited: one hardware device set plus
// the host folders shared with the guest. Equality and hashing are structural
// over every nested field (see Equal and Fingerprint).
//
// +kubebuilder:object:root=true
type VBMacConfiguration struct {
	// TypeMeta contains the API version and kind.
	TypeMeta `json:",inline" yaml:",inline"`

	// Hardware is the virtual machine's device set.
	Hardware MacHardwareDevice `json:"hardware" yaml:"hardware"`

	// SharedFolders are host directories exposed to the guest, in order.
	// +optional
	SharedFolders []SharedFolder `json:"sharedFolders,omitempty" yaml:"sharedFolders,omitempty"`
}

// MacHardwareDevice is the complete device set of a virtual Mac.
//
// +k8s:deepcopy-gen=true
type MacHardwareDevice struct {
	// CPUCount is the number of virtual CPUs.
	// Must lie within the host's CPU range.
	CPUCount int `json:"cpuCount" yaml:"cpuCount"`

	// MemorySize is the guest memory size in bytes.
	MemorySize uint64 `json:"memorySize" yaml:"memorySize"`

	// PointingDevice is the single pointing device attached to the guest.
	PointingDevice PointingDevice `json:"pointingDevice" yaml:"pointingDevice"`

	// Displays are the guest displays, in order.
	// +kubebuilder:validation:MinItems=1
	Displays []DisplayDevice `json:"displays" yaml:"displays"`

	// NetworkDevices are the guest network adapters, in order.
	// +optional
	NetworkDevices []NetworkDevice `json:"networkDevices,omitempty" yaml:"networkDevices,omitempty"`

	// SoundDevices are the guest audio devices, in order.
	// +optional
	SoundDevices []SoundDevice `json:"soundDevices,omitempty" yaml:"soundDevices,omitempty"`

	// NVRAM holds firmware variables. Order is preserved and the values are
	// never interpreted.
	// +optional
	NVRAM []NVRAMVariable `json:"nvram,omitempty" yaml:"nvram,omitempty"`
}

// DisplayDevice is a virtual display.
//
// The type permits out-of-range values so that an editor can hold transient
// input; range checks happen in the validate package.
//
// +k8s:deepcopy-gen=true
type DisplayDevice struct {
	// ID identifies the display within the configuration.
	ID string `json:"id" yaml:"id"`

	// Name is a human readable label.
	Name string `json:"name" yaml:"name"`

	// Width is the horizontal resolution in pixels.
	Width int `json:"width" yaml:"width"`

	// Height is the vertical resolution in pixels.
	Height int `json:"height" yaml:"height"`

	// PixelsPerInch is the display density.
	PixelsPerInch int `json:"pixelsPerInch" yaml:"pixelsPerInch"`
}

// NetworkKind selects how a network device reaches the outside world.
type NetworkKind string

const (
	// NetworkKindNAT shares the host's connection through NAT.
	NetworkKindNAT NetworkKind = "NAT"

	// NetworkKindBridge attaches the device to a host interface.
	// Requires BridgeInterfaceID.
	NetworkKindBridge NetworkKind = "bridge"
)

// NetworkDevice is a virtual network adapter.
//
// +k8s:deepcopy-gen=true
type NetworkDevice struct {
	// ID identifies the device within the configuration.
	ID string `json:"id" yaml:"id"`

	// Name is a human readable label.
	Name string `json:"name" yaml:"name"`

	// Kind is the attachment kind.
	// +kubebuilder:validation:Enum=NAT;bridge
	Kind NetworkKind `json:"kind" yaml:"kind"`

	// MACAddress is the adapter's hardware address (xx:xx:xx:xx:xx:xx).
	MACAddress string `json:"macAddress" yaml:"macAddress"`

	// BridgeInterfaceID is the host interface to bridge to.
	// Only set when Kind is bridge.
	// +optional
	BridgeInterfaceID string `json:"bridgeInterfaceID,omitempty" yaml:"bridgeInterfaceID,omitempty"`
}

// PointingDeviceKind selects the guest pointing device.
type PointingDeviceKind string

const (
	// PointingDeviceMouse is a USB screen-coordinate pointer. Works with every guest.
	PointingDeviceMouse PointingDeviceKind = "mouse"

	// PointingDeviceTrackpad is a Mac trackpad with gesture support.
	// Only newer guests understand it; see validate.PointingCompatibility.
	PointingDeviceTrackpad PointingDeviceKind = "trackpad"
)

// PointingDevice is the guest pointing device.
//
// +k8s:deepcopy-gen=true
type PointingDevice struct {
	// Kind is the device kind.
	// +kubebuilder:validation:Enum=mouse;trackpad
	Kind PointingDeviceKind `json:"kind" yaml:"kind"`
}

// SoundDevice is a virtual audio device. Input and output are independent.
//
// +k8s:deepcopy-gen=true
type SoundDevice struct {
	// ID identifies the device within the configuration.
	ID string `json:"id" yaml:"id"`

	// Name is a human readable label.
	Name string `json:"name" yaml:"name"`

	// EnableOutput streams guest audio to the host.
	EnableOutput bool `json:"enableOutput" yaml:"enableOutput"`

	// EnableInput streams host audio input to the guest.
	EnableInput bool `json:"enableInput" yaml:"enableInput"`
}

// NVRAMVariable is an opaque firmware variable.
//
// +k8s:deepcopy-gen=true
type NVRAMVariable struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// SharedFolder is a host directory shared with the guest.
//
// +k8s:deepcopy-gen=true
type SharedFolder struct {
	// ID identifies the folder within the configuration.
	ID string `json:"id" yaml:"id"`

	// Path is the host filesystem path. The folder name is derived from it.
	Path string `json:"path" yaml:"path"`

	// ReadOnly prevents the guest from writing to the folder.
	// Defaults to true.
	// +optional
	// +kubebuilder:default=true
	ReadOnly *bool `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
}

// DeepCopy creates a deep copy of VBMacConfiguration.
func (in *VBMacConfiguration) DeepCopy() *VBMacConfiguration {
	if in == nil {
		return nil
	}
	out := new(VBMacConfiguration)
	out.TypeMeta = *in.TypeMeta.DeepCopy()
	out.Hardware = *in.Hardware.DeepCopy()

	if in.SharedFolders != nil {
		out.SharedFolders = make([]SharedFolder, len(in.SharedFolders))
		for i := range in.SharedFolders {
			out.SharedFolders[i] = *in.SharedFolders[i].DeepCopy()
		}
	}

	return out
}

// DeepCopy creates a deep copy of MacHardwareDevice.
func (in *MacHardwareDevice) DeepCopy() *MacHardwareDevice {
	if in == nil {
		return nil
	}
	out := new(MacHardwareDevice)
	*out = *in

	// Element types below hold no pointers, so copy() is enough.
	if in.Displays != nil {
		out.Displays = make([]DisplayDevice, len(in.Displays))
		copy(out.Displays, in.Displays)
	}
	if in.NetworkDevices != nil {
		out.NetworkDevices = make([]NetworkDevice, len(in.NetworkDevices))
		copy(out.NetworkDevices, in.NetworkDevices)
	}
	if in.SoundDevices != nil {
		out.SoundDevices = make([]SoundDevice, len(in.SoundDevices))
		copy(out.SoundDevices, in.SoundDevices)
	}
	if in.NVRAM != nil {
		out.NVRAM = make([]NVRAMVariable, len(in.NVRAM))
		copy(out.NVRAM, in.NVRAM)
	}

	return out
}

// DeepCopy creates a deep copy of SharedFolder.
func (in *SharedFolder) DeepCopy() *SharedFolder {
	if in == nil {
		return nil
	}
	out := new(SharedFolder)
	*out = *in

	if in.ReadOnly != nil {
		readOnly := *in.ReadOnly
		out.ReadOnly = &readOnly
	}

	return out
}
