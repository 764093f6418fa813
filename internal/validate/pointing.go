package validate

import (
	"fmt"
	"strings"

	"github.com/coreos/go-semver/semver"

	"github.com/jbweber/vbmac/api/v1alpha1"
)

// MinimumTrackpadGuest is the oldest guest macOS that drives a trackpad.
var MinimumTrackpadGuest = semver.Version{Major: 13}

// Compatibility says whether a device works with a guest. A device can be
// selected even when unsupported; Warning explains the consequence.
type Compatibility struct {
	Supported bool
	Warning   string
}

// PointingCompatibility reports whether kind works with guest. A nil guest
// version is unknown and treated as too old for a trackpad.
func PointingCompatibility(kind v1alpha1.PointingDeviceKind, guest *semver.Version) Compatibility {
	switch kind {
	case v1alpha1.PointingDeviceTrackpad:
		if guest != nil && !guest.LessThan(MinimumTrackpadGuest) {
			return Compatibility{Supported: true}
		}
		return Compatibility{
			Warning: fmt.Sprintf("trackpad requires macOS %d or later in the guest; older guests get no pointer input", MinimumTrackpadGuest.Major),
		}

	case v1alpha1.PointingDeviceMouse:
		return Compatibility{Supported: true}

	default:
		return Compatibility{Warning: fmt.Sprintf("unknown pointing device %q", kind)}
	}
}

// ParseGuestVersion parses a macOS version such as "14", "13.5" or
// "15.0.1". Missing components are zero.
func ParseGuestVersion(s string) (*semver.Version, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	switch strings.Count(s, ".") {
	case 0:
		s += ".0.0"
	case 1:
		s += ".0"
	}

	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("invalid guest version: %w", err)
	}
	return v, nil
}
