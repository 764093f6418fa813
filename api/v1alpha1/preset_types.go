package v1alpha1

import "fmt"

// DisplayPreset is a named display configuration offered to the user.
//
// Presets are built once per host snapshot; Available and the Name (which
// may embed the host display's name) are fixed at build time.
type DisplayPreset struct {
	// Name is the preset's label and identity.
	Name string `json:"name" yaml:"name"`

	// Device is the display the preset applies.
	Device DisplayDevice `json:"device" yaml:"device"`

	// Warning is shown when the preset is picked. Empty means no warning.
	// +optional
	Warning string `json:"warning,omitempty" yaml:"warning,omitempty"`

	// Available reports whether the preset makes sense on this host.
	Available bool `json:"available" yaml:"available"`
}

// Range is a closed integer range [Min, Max].
type Range struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp returns v limited to the range.
func (r Range) Clamp(v int) int {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// IsSingleValue reports whether the range has collapsed to one value.
// Editors should render such a range as a fixed value, not a slider.
func (r Range) IsSingleValue() bool {
	return r.Min == r.Max
}

// String formats the range as "min-max".
func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}
