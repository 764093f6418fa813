package defaults

import (
	"fmt"

	"github.com/jbweber/vbmac/api/v1alpha1"
)

// Part names a device group that can be reset to its default.
type Part string

const (
	PartDisplay  Part = "display"
	PartNetwork  Part = "network"
	PartSound    Part = "sound"
	PartPointing Part = "pointing"
	PartHardware Part = "hardware"
)

// Parts lists every resettable part in display order.
var Parts = []Part{PartDisplay, PartNetwork, PartSound, PartPointing, PartHardware}

// ParsePart converts a string to a Part.
func ParsePart(s string) (Part, error) {
	for _, p := range Parts {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown part %q (must be one of %v)", s, Parts)
}

// Reset returns a copy of cfg with one device replaced wholesale by its
// default. index selects the display, network, or sound device and is
// ignored for pointing and hardware. A hardware reset keeps NVRAM.
//
// cfg is never modified.
func (f *Factory) Reset(cfg *v1alpha1.VBMacConfiguration, part Part, index int) (*v1alpha1.VBMacConfiguration, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is nil")
	}
	out := cfg.DeepCopy()
	hw := &out.Hardware

	switch part {
	case PartDisplay:
		if err := checkIndex("displays", index, len(hw.Displays)); err != nil {
			return nil, err
		}
		hw.Displays[index] = f.MatchHostDisplay()

	case PartNetwork:
		if err := checkIndex("networkDevices", index, len(hw.NetworkDevices)); err != nil {
			return nil, err
		}
		network, err := f.DefaultNetwork()
		if err != nil {
			return nil, err
		}
		hw.NetworkDevices[index] = network

	case PartSound:
		if err := checkIndex("soundDevices", index, len(hw.SoundDevices)); err != nil {
			return nil, err
		}
		hw.SoundDevices[index] = f.DefaultSound()

	case PartPointing:
		hw.PointingDevice = f.DefaultPointing()

	case PartHardware:
		fresh, err := f.DefaultHardware()
		if err != nil {
			return nil, err
		}
		fresh.NVRAM = hw.NVRAM
		out.Hardware = fresh

	default:
		return nil, fmt.Errorf("unknown part %q", part)
	}

	return out, nil
}

func checkIndex(field string, index, n int) error {
	if index < 0 || index >= n {
		return fmt.Errorf("%s[%d] does not exist (have %d)", field, index, n)
	}
	return nil
}
