// Package host describes the machine a virtual Mac will run on.
//
// Everything here is a snapshot: providers read the host once and hand back
// plain values, so the derivation packages can be tested without a live
// display, hypervisor, or entitlement store.
package host

// Size is a two-dimensional size in points, pixels, or dots per inch,
// depending on the field that holds it.
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Display describes the host's active display.
type Display struct {
	// Name is the display's localized name (e.g. "Built-in Retina Display").
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// SizePoints is the full panel size in points.
	SizePoints Size `json:"sizePoints" yaml:"sizePoints"`

	// VisibleSizePoints is the usable area in points, excluding the menu
	// bar and dock. Zero when unknown.
	// +optional
	VisibleSizePoints Size `json:"visibleSizePoints,omitempty" yaml:"visibleSizePoints,omitempty"`

	// BackingScaleFactor converts points to pixels (2 on Retina panels).
	BackingScaleFactor float64 `json:"backingScaleFactor" yaml:"backingScaleFactor"`

	// TopSafeAreaInset is the height in points hidden by a camera notch.
	TopSafeAreaInset float64 `json:"topSafeAreaInset,omitempty" yaml:"topSafeAreaInset,omitempty"`

	// DeviceResolution is the panel density in dots per inch.
	DeviceResolution Size `json:"deviceResolution" yaml:"deviceResolution"`

	// HasNotch reports a notch-style cutout at the top of the panel.
	HasNotch bool `json:"hasNotch,omitempty" yaml:"hasNotch,omitempty"`
}

// Capabilities is a snapshot of the host's hardware.
type Capabilities struct {
	// ComputerName is the user-visible host name.
	ComputerName string `json:"computerName" yaml:"computerName"`

	// LogicalProcessorCount is the number of logical CPUs.
	LogicalProcessorCount int `json:"logicalProcessorCount" yaml:"logicalProcessorCount"`

	// PhysicalMemoryBytes is the installed memory.
	PhysicalMemoryBytes uint64 `json:"physicalMemoryBytes" yaml:"physicalMemoryBytes"`

	// ActiveDisplay is nil when the host reports no display (headless hosts).
	// +optional
	ActiveDisplay *Display `json:"activeDisplay,omitempty" yaml:"activeDisplay,omitempty"`
}

// DisplayName returns the active display's name, falling back to the
// computer name and then to fallback.
func (c Capabilities) DisplayName(fallback string) string {
	if c.ActiveDisplay != nil && c.ActiveDisplay.Name != "" {
		return c.ActiveDisplay.Name
	}
	if c.ComputerName != "" {
		return c.ComputerName
	}
	return fallback
}

// Geometry is a display resolution and density in whole pixels.
type Geometry struct {
	Width         int
	Height        int
	PixelsPerInch int
}

// FitDescriber computes the display geometry that exactly fits a host
// display at native scale.
type FitDescriber interface {
	SizeToFit(d Display) Geometry
}

// VisibleFrameDescriber sizes a display to the host display's visible area.
// When the visible area is unknown it uses the panel minus the notch inset.
type VisibleFrameDescriber struct{}

// SizeToFit implements FitDescriber.
func (VisibleFrameDescriber) SizeToFit(d Display) Geometry {
	size := d.VisibleSizePoints
	if size.Width <= 0 || size.Height <= 0 {
		size = Size{
			Width:  d.SizePoints.Width,
			Height: d.SizePoints.Height - d.TopSafeAreaInset,
		}
	}

	scale := d.BackingScaleFactor
	if scale <= 0 {
		scale = 1
	}

	return Geometry{
		Width:         int(size.Width * scale),
		Height:        int(size.Height * scale),
		PixelsPerInch: int(d.DeviceResolution.Width),
	}
}
