// Package validate checks hardware configurations against the rules of the
// host they will run on.
//
// Nothing here fails hard: validators answer with booleans, and
// Configuration reports problems as Issues that the caller may treat as
// blocking (Fatal) or advisory.
package validate

import "net"

// ValidateMAC reports whether address is a six-octet MAC address written as
// colon- or hyphen-separated hex pairs (e.g. "5a:00:00:00:00:01").
// The address is not normalized.
func ValidateMAC(address string) bool {
	// net.ParseMAC also accepts dotted and 8 or 20 octet forms.
	if len(address) != 17 {
		return false
	}
	hw, err := net.ParseMAC(address)
	return err == nil && len(hw) == 6
}

// IsLocallyAdministered reports whether address is a valid unicast MAC with
// the locally-administered bit set.
func IsLocallyAdministered(address string) bool {
	if !ValidateMAC(address) {
		return false
	}
	hw, _ := net.ParseMAC(address)
	return hw[0]&0x02 != 0 && hw[0]&0x01 == 0
}
