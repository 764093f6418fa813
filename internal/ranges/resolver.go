// Package ranges computes the legal values of a virtual Mac's hardware on a
// given host.
//
// A Resolver is built once from the hypervisor limits and the host snapshot
// and is immutable afterwards. Every range it returns is closed and never
// inverted, though it may collapse to a single value.
package ranges

import (
	"github.com/jbweber/vbmac/api/v1alpha1"
	"github.com/jbweber/vbmac/internal/host"
	"github.com/jbweber/vbmac/internal/platform"
)

const (
	// MinimumMemoryGB is the smallest memory size offered for editing.
	MinimumMemoryGB = 2

	// MinimumDisplayDimension applies to both width and height.
	MinimumDisplayDimension = 800

	// DefaultMaxDisplayWidth and DefaultMaxDisplayHeight are the display
	// ceilings used unless overridden with WithDisplayCeiling.
	DefaultMaxDisplayWidth  = 6016
	DefaultMaxDisplayHeight = 3384

	MinimumDisplayPPI = 80
	MaximumDisplayPPI = 218
)

// Resolver derives hardware ranges for one host.
type Resolver struct {
	limits    platform.Limits
	host      host.Capabilities
	maxWidth  int
	maxHeight int
}

// NewResolver returns a resolver over limits and the host snapshot caps,
// using the default display ceilings.
func NewResolver(limits platform.Limits, caps host.Capabilities) *Resolver {
	return &Resolver{
		limits:    limits.Normalize(),
		host:      caps,
		maxWidth:  DefaultMaxDisplayWidth,
		maxHeight: DefaultMaxDisplayHeight,
	}
}

// WithDisplayCeiling returns a copy of r with new display maxima. Zero
// keeps the current value; anything below the minimum dimension is raised
// to it.
func (r *Resolver) WithDisplayCeiling(width, height int) *Resolver {
	out := *r
	if width != 0 {
		out.maxWidth = max(width, MinimumDisplayDimension)
	}
	if height != 0 {
		out.maxHeight = max(height, MinimumDisplayDimension)
	}
	return &out
}

// Limits returns the normalized platform limits.
func (r *Resolver) Limits() platform.Limits {
	return r.limits
}

// Host returns the host snapshot the resolver was built from.
func (r *Resolver) Host() host.Capabilities {
	return r.host
}

// CPURange is [platform minimum, min(host processors, platform maximum)].
// A host reporting fewer processors than the platform minimum gets a single
// value range.
func (r *Resolver) CPURange() v1alpha1.Range {
	hi := min(r.host.LogicalProcessorCount, r.limits.MaxCPUCount)
	return v1alpha1.Range{
		Min: r.limits.MinCPUCount,
		Max: max(hi, r.limits.MinCPUCount),
	}
}

// MemoryRangeGB is [2, floor(min(host memory, platform maximum) / GiB)],
// with the maximum never below 2.
func (r *Resolver) MemoryRangeGB() v1alpha1.Range {
	bytes := min(r.host.PhysicalMemoryBytes, r.limits.MaxMemoryBytes)
	return v1alpha1.Range{
		Min: MinimumMemoryGB,
		Max: max(int(bytes/v1alpha1.GiB), MinimumMemoryGB),
	}
}

// DisplayWidthRange is [800, width ceiling].
func (r *Resolver) DisplayWidthRange() v1alpha1.Range {
	return v1alpha1.Range{Min: MinimumDisplayDimension, Max: r.maxWidth}
}

// DisplayHeightRange is [800, height ceiling].
func (r *Resolver) DisplayHeightRange() v1alpha1.Range {
	return v1alpha1.Range{Min: MinimumDisplayDimension, Max: r.maxHeight}
}

// DisplayPPIRange is the fixed [80, 218].
func (r *Resolver) DisplayPPIRange() v1alpha1.Range {
	return v1alpha1.Range{Min: MinimumDisplayPPI, Max: MaximumDisplayPPI}
}

// Summary bundles every range for display.
type Summary struct {
	CPUCount      v1alpha1.Range `json:"cpuCount" yaml:"cpuCount"`
	MemoryGB      v1alpha1.Range `json:"memoryGB" yaml:"memoryGB"`
	DisplayWidth  v1alpha1.Range `json:"displayWidth" yaml:"displayWidth"`
	DisplayHeight v1alpha1.Range `json:"displayHeight" yaml:"displayHeight"`
	DisplayPPI    v1alpha1.Range `json:"displayPPI" yaml:"displayPPI"`
}

// Summary returns all five ranges.
func (r *Resolver) Summary() Summary {
	return Summary{
		CPUCount:      r.CPURange(),
		MemoryGB:      r.MemoryRangeGB(),
		DisplayWidth:  r.DisplayWidthRange(),
		DisplayHeight: r.DisplayHeightRange(),
		DisplayPPI:    r.DisplayPPIRange(),
	}
}
