// Package platform describes the hard limits the hypervisor places on a
// virtual Mac, independent of the host it runs on.
package platform

import "github.com/jbweber/vbmac/api/v1alpha1"

// Default limits, used when the hypervisor cannot be queried.
const (
	DefaultMinCPUCount    = 1
	DefaultMaxCPUCount    = 64
	DefaultMinMemoryBytes = 128 * 1024 * 1024
	DefaultMaxMemoryBytes = 64 * v1alpha1.GiB
)

// Limits are the hypervisor's CPU and memory bounds.
type Limits struct {
	MinCPUCount    int    `json:"minCPUCount" yaml:"minCPUCount"`
	MaxCPUCount    int    `json:"maxCPUCount" yaml:"maxCPUCount"`
	MinMemoryBytes uint64 `json:"minMemoryBytes" yaml:"minMemoryBytes"`
	MaxMemoryBytes uint64 `json:"maxMemoryBytes" yaml:"maxMemoryBytes"`
}

// Default returns the built-in limits.
func Default() Limits {
	return Limits{
		MinCPUCount:    DefaultMinCPUCount,
		MaxCPUCount:    DefaultMaxCPUCount,
		MinMemoryBytes: DefaultMinMemoryBytes,
		MaxMemoryBytes: DefaultMaxMemoryBytes,
	}
}

// Normalize returns a copy with every bound usable: minimums of at least
// one CPU and one byte, and maximums no lower than their minimums.
func (l Limits) Normalize() Limits {
	if l.MinCPUCount < 1 {
		l.MinCPUCount = 1
	}
	if l.MaxCPUCount < l.MinCPUCount {
		l.MaxCPUCount = l.MinCPUCount
	}
	if l.MinMemoryBytes == 0 {
		l.MinMemoryBytes = 1
	}
	if l.MaxMemoryBytes < l.MinMemoryBytes {
		l.MaxMemoryBytes = l.MinMemoryBytes
	}
	return l
}

// WithMaxMemory returns a copy with the memory ceiling replaced.
// A zero value keeps the current ceiling.
func (l Limits) WithMaxMemory(bytes uint64) Limits {
	if bytes != 0 {
		l.MaxMemoryBytes = bytes
	}
	return l.Normalize()
}
