// Package naming provides the identity and naming rules for generated
// devices: locally-administered MAC addresses and the labels of
// host-derived display presets.
package naming

import (
	"crypto/rand"
	"fmt"
	"io"
	"net"
	"sync"
)

// MACGenerator produces MAC addresses for new network devices.
type MACGenerator interface {
	NewMAC() (string, error)
}

// RandomMAC generates random locally-administered unicast addresses.
// The zero value reads from crypto/rand. It is safe for concurrent use.
type RandomMAC struct {
	// Source overrides the random source. Nil means crypto/rand.
	Source io.Reader

	mu sync.Mutex
}

// NewMAC implements MACGenerator.
func (g *RandomMAC) NewMAC() (string, error) {
	src := g.Source
	if src == nil {
		src = rand.Reader
	}

	buf := make([]byte, 6)
	g.mu.Lock()
	_, err := io.ReadFull(src, buf)
	g.mu.Unlock()
	if err != nil {
		return "", fmt.Errorf("failed to read random MAC: %w", err)
	}

	return FormatLocalMAC(buf), nil
}

// SequentialMAC hands out 5a:00:00:xx:xx:xx addresses in order, starting
// at Next. It is deterministic and meant for tests and reproducible output.
type SequentialMAC struct {
	Next uint32

	mu sync.Mutex
}

// NewMAC implements MACGenerator.
func (g *SequentialMAC) NewMAC() (string, error) {
	g.mu.Lock()
	n := g.Next
	g.Next++
	g.mu.Unlock()

	if n > 0xffffff {
		return "", fmt.Errorf("sequential MAC space exhausted")
	}
	return FormatLocalMAC([]byte{0x5a, 0, 0, byte(n >> 16), byte(n >> 8), byte(n)}), nil
}

// FormatLocalMAC formats six octets as a MAC address with the
// locally-administered bit set and the multicast bit cleared.
//
// Example: 00:11:22:33:44:55 → 02:11:22:33:44:55
func FormatLocalMAC(octets []byte) string {
	hw := make(net.HardwareAddr, 6)
	copy(hw, octets)
	hw[0] = (hw[0] | 0x02) &^ 0x01
	return hw.String()
}

// MatchPresetName returns the label of the preset matching a host display.
// Format: Match "{displayName}"
func MatchPresetName(displayName string) string {
	return fmt.Sprintf("Match %q", displayName)
}

// SizeToFitPresetName returns the label of the preset fitting a host display.
// Format: Size to fit in "{displayName}"
func SizeToFitPresetName(displayName string) string {
	return fmt.Sprintf("Size to fit in %q", displayName)
}
