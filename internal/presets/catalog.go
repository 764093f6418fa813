// Package presets offers named display configurations for a host.
package presets

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jbweber/vbmac/api/v1alpha1"
	"github.com/jbweber/vbmac/internal/defaults"
	"github.com/jbweber/vbmac/internal/naming"
)

const (
	FullHDName       = "Full HD"
	RetinaName       = "4.5K Retina"
	MatchHostWarning = "After booting, select a HiDPI scaled resolution for this display in the guest's display settings."
)

// Catalog builds the preset list for the factory's host.
type Catalog struct {
	factory *defaults.Factory
	newID   func() string
}

// NewCatalog returns a catalog backed by factory. newID assigns identities
// to applied presets; nil means UUIDs.
func NewCatalog(factory *defaults.Factory, newID func() string) *Catalog {
	if newID == nil {
		newID = uuid.NewString
	}
	return &Catalog{factory: factory, newID: newID}
}

// Presets returns every preset in catalog order. Availability and the
// host-derived names are fixed when the list is built. Preset devices
// carry no ID; one is assigned when a preset is applied.
func (c *Catalog) Presets() []v1alpha1.DisplayPreset {
	caps := c.factory.Resolver().Host()
	displayName := caps.DisplayName(defaults.DefaultDeviceName)
	hasNotch := caps.ActiveDisplay != nil && caps.ActiveDisplay.HasNotch

	match := c.factory.MatchHostDisplay()
	match.ID = ""
	fit := c.factory.SizeToFitDisplay()
	fit.ID = ""

	return []v1alpha1.DisplayPreset{
		{
			Name:      FullHDName,
			Device:    v1alpha1.DisplayDevice{Name: FullHDName, Width: 1920, Height: 1080, PixelsPerInch: 144},
			Available: true,
		},
		{
			Name:      RetinaName,
			Device:    v1alpha1.DisplayDevice{Name: RetinaName, Width: 4480, Height: 2520, PixelsPerInch: 218},
			Available: true,
		},
		{
			Name:      naming.MatchPresetName(displayName),
			Device:    match,
			Warning:   MatchHostWarning,
			Available: hasNotch,
		},
		{
			Name:      naming.SizeToFitPresetName(displayName),
			Device:    fit,
			Available: true,
		},
	}
}

// AvailablePresets returns Presets filtered to those available on the host.
func (c *Catalog) AvailablePresets() []v1alpha1.DisplayPreset {
	all := c.Presets()
	out := make([]v1alpha1.DisplayPreset, 0, len(all))
	for _, p := range all {
		if p.Available {
			out = append(out, p)
		}
	}
	return out
}

// Find returns the preset named name, available or not.
func (c *Catalog) Find(name string) (v1alpha1.DisplayPreset, bool) {
	for _, p := range c.Presets() {
		if p.Name == name {
			return p, true
		}
	}
	return v1alpha1.DisplayPreset{}, false
}

// Apply returns a copy of cfg whose display at index is replaced by the
// preset's device under a fresh ID. cfg is never modified.
func (c *Catalog) Apply(cfg *v1alpha1.VBMacConfiguration, preset v1alpha1.DisplayPreset, index int) (*v1alpha1.VBMacConfiguration, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is nil")
	}
	if index < 0 || index >= len(cfg.Hardware.Displays) {
		return nil, fmt.Errorf("displays[%d] does not exist (have %d)", index, len(cfg.Hardware.Displays))
	}

	out := cfg.DeepCopy()
	device := preset.Device
	device.ID = c.newID()
	out.Hardware.Displays[index] = device
	return out, nil
}
