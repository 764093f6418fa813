// Package defaults builds host-appropriate default hardware for a virtual Mac.
package defaults

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jbweber/vbmac/api/v1alpha1"
	"github.com/jbweber/vbmac/internal/host"
	"github.com/jbweber/vbmac/internal/naming"
	"github.com/jbweber/vbmac/internal/ranges"
)

// DefaultDeviceName labels every generated device that has no better name.
const DefaultDeviceName = v1alpha1.DefaultDeviceName

// Fallback display used when the host reports no active display.
const (
	FallbackDisplayWidth  = 1920
	FallbackDisplayHeight = 1080
	FallbackDisplayPPI    = 144
)

// Factory produces default devices for one host.
type Factory struct {
	resolver *ranges.Resolver
	fit      host.FitDescriber
	macs     naming.MACGenerator
	newID    func() string
}

// Option configures a Factory.
type Option func(*Factory)

// WithFitDescriber sets the geometry query used by SizeToFitDisplay.
func WithFitDescriber(d host.FitDescriber) Option {
	return func(f *Factory) { f.fit = d }
}

// WithMACGenerator sets the MAC source for new network devices.
func WithMACGenerator(g naming.MACGenerator) Option {
	return func(f *Factory) { f.macs = g }
}

// WithIDFunc sets the identity source for new devices.
func WithIDFunc(fn func() string) Option {
	return func(f *Factory) { f.newID = fn }
}

// NewFactory returns a factory over resolver's host. By default it uses
// random MACs, UUID identities, and host.VisibleFrameDescriber.
func NewFactory(resolver *ranges.Resolver, opts ...Option) *Factory {
	f := &Factory{
		resolver: resolver,
		fit:      host.VisibleFrameDescriber{},
		macs:     &naming.RandomMAC{},
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Resolver returns the range resolver the factory clamps against.
func (f *Factory) Resolver() *ranges.Resolver {
	return f.resolver
}

// DefaultHardware returns the default device set: half the host's
// processors and memory, a mouse, one display matching the host, one NAT
// network device, and one sound device with input and output enabled.
func (f *Factory) DefaultHardware() (v1alpha1.MacHardwareDevice, error) {
	network, err := f.DefaultNetwork()
	if err != nil {
		return v1alpha1.MacHardwareDevice{}, err
	}

	return v1alpha1.MacHardwareDevice{
		CPUCount:       f.DefaultCPUCount(),
		MemorySize:     f.DefaultMemorySize(),
		PointingDevice: f.DefaultPointing(),
		Displays:       []v1alpha1.DisplayDevice{f.MatchHostDisplay()},
		NetworkDevices: []v1alpha1.NetworkDevice{network},
		SoundDevices:   []v1alpha1.SoundDevice{f.DefaultSound()},
	}, nil
}

// DefaultConfiguration wraps DefaultHardware with no shared folders.
func (f *Factory) DefaultConfiguration() (*v1alpha1.VBMacConfiguration, error) {
	hw, err := f.DefaultHardware()
	if err != nil {
		return nil, fmt.Errorf("failed to build default hardware: %w", err)
	}
	return v1alpha1.NewConfiguration(hw), nil
}

// DefaultCPUCount is half the host's processors (one on single-processor
// hosts), clamped into the CPU range.
func (f *Factory) DefaultCPUCount() int {
	n := f.resolver.Host().LogicalProcessorCount
	count := 1
	if n > 1 {
		count = n / 2
	}
	return f.resolver.CPURange().Clamp(count)
}

// DefaultMemorySize is half the host's memory clamped to the platform's
// byte limits. It is not rounded to the gigabyte range used for editing.
func (f *Factory) DefaultMemorySize() uint64 {
	limits := f.resolver.Limits()
	size := f.resolver.Host().PhysicalMemoryBytes / 2
	return min(max(size, limits.MinMemoryBytes), limits.MaxMemoryBytes)
}

// MatchHostDisplay returns a display with the host panel's resolution
// minus the notch inset, at the panel's density.
func (f *Factory) MatchHostDisplay() v1alpha1.DisplayDevice {
	caps := f.resolver.Host()
	d := caps.ActiveDisplay
	if d == nil {
		return f.fallbackDisplay()
	}

	return v1alpha1.DisplayDevice{
		ID:            f.newID(),
		Name:          f.displayName(caps),
		Width:         int(d.SizePoints.Width * d.BackingScaleFactor),
		Height:        int(max(d.SizePoints.Height-d.TopSafeAreaInset, 0) * d.BackingScaleFactor),
		PixelsPerInch: int(d.DeviceResolution.Width),
	}
}

// SizeToFitDisplay returns a display that exactly fits the host display at
// native scale, as computed by the factory's FitDescriber.
func (f *Factory) SizeToFitDisplay() v1alpha1.DisplayDevice {
	caps := f.resolver.Host()
	if caps.ActiveDisplay == nil {
		return f.fallbackDisplay()
	}

	g := f.fit.SizeToFit(*caps.ActiveDisplay)
	return v1alpha1.DisplayDevice{
		ID:            f.newID(),
		Name:          f.displayName(caps),
		Width:         g.Width,
		Height:        g.Height,
		PixelsPerInch: g.PixelsPerInch,
	}
}

// DefaultNetwork returns a NAT device with a fresh MAC address.
func (f *Factory) DefaultNetwork() (v1alpha1.NetworkDevice, error) {
	mac, err := f.macs.NewMAC()
	if err != nil {
		return v1alpha1.NetworkDevice{}, fmt.Errorf("failed to generate MAC address: %w", err)
	}

	return v1alpha1.NetworkDevice{
		ID:         f.newID(),
		Name:       DefaultDeviceName,
		Kind:       v1alpha1.NetworkKindNAT,
		MACAddress: mac,
	}, nil
}

// DefaultSound returns a sound device with input and output enabled.
func (f *Factory) DefaultSound() v1alpha1.SoundDevice {
	return v1alpha1.SoundDevice{
		ID:           f.newID(),
		Name:         DefaultDeviceName,
		EnableOutput: true,
		EnableInput:  true,
	}
}

// DefaultPointing returns a mouse, which every guest supports.
func (f *Factory) DefaultPointing() v1alpha1.PointingDevice {
	return v1alpha1.PointingDevice{Kind: v1alpha1.PointingDeviceMouse}
}

func (f *Factory) fallbackDisplay() v1alpha1.DisplayDevice {
	return v1alpha1.DisplayDevice{
		ID:            f.newID(),
		Name:          DefaultDeviceName,
		Width:         FallbackDisplayWidth,
		Height:        FallbackDisplayHeight,
		PixelsPerInch: FallbackDisplayPPI,
	}
}

func (f *Factory) displayName(caps host.Capabilities) string {
	if caps.ComputerName == "" {
		return DefaultDeviceName
	}
	return caps.ComputerName
}
