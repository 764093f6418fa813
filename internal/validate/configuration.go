package validate

import (
	"fmt"
	"strings"

	"github.com/coreos/go-semver/semver"

	"github.com/jbweber/vbmac/api/v1alpha1"
	"github.com/jbweber/vbmac/internal/host"
	"github.com/jbweber/vbmac/internal/ranges"
)

// Issue is one problem found in a configuration.
type Issue struct {
	Field   string `json:"field" yaml:"field"`
	Message string `json:"message" yaml:"message"`
	Fatal   bool   `json:"fatal" yaml:"fatal"` // true = cannot run, false = advisory
}

// Options supplies the host collaborators a configuration is checked
// against. Nil fields skip the checks that need them.
type Options struct {
	GuestVersion *semver.Version
	Interfaces   host.NetworkInterfaceProvider
	Entitlements host.Entitlements
}

// Configuration checks cfg against the ranges of r and the collaborators
// in opts. It returns every issue found, in field order.
func Configuration(cfg *v1alpha1.VBMacConfiguration, r *ranges.Resolver, opts Options) []Issue {
	if cfg == nil {
		return []Issue{{Field: "hardware", Message: "configuration is empty", Fatal: true}}
	}

	var issues []Issue
	add := func(fatal bool, field, format string, args ...any) {
		issues = append(issues, Issue{Field: field, Message: fmt.Sprintf(format, args...), Fatal: fatal})
	}

	hw := &cfg.Hardware

	if cpu := r.CPURange(); !cpu.Contains(hw.CPUCount) {
		add(true, "hardware.cpuCount", "%d is outside the host range %s", hw.CPUCount, cpu)
	}

	limits := r.Limits()
	if hw.MemorySize < limits.MinMemoryBytes || hw.MemorySize > limits.MaxMemoryBytes {
		add(true, "hardware.memorySize", "%d bytes is outside the platform limits [%d, %d]",
			hw.MemorySize, limits.MinMemoryBytes, limits.MaxMemoryBytes)
	} else if mem := r.MemoryRangeGB(); !mem.Contains(hw.MemoryGiB()) {
		add(false, "hardware.memorySize", "%d GB is outside the editable range %s GB", hw.MemoryGiB(), mem)
	}

	pointing := hw.PointingDevice.Kind
	if !pointing.Valid() {
		add(true, "hardware.pointingDevice.kind", "unknown kind %q", pointing)
	} else if c := PointingCompatibility(pointing, opts.GuestVersion); !c.Supported {
		add(false, "hardware.pointingDevice.kind", "%s", c.Warning)
	}

	if len(hw.Displays) == 0 {
		add(true, "hardware.displays", "at least one display is required")
	}
	for i, d := range hw.Displays {
		field := fmt.Sprintf("hardware.displays[%d]", i)
		if w := r.DisplayWidthRange(); !w.Contains(d.Width) {
			add(true, field+".width", "%d is outside %s", d.Width, w)
		}
		if h := r.DisplayHeightRange(); !h.Contains(d.Height) {
			add(true, field+".height", "%d is outside %s", d.Height, h)
		}
		if p := r.DisplayPPIRange(); !p.Contains(d.PixelsPerInch) {
			add(true, field+".pixelsPerInch", "%d is outside %s", d.PixelsPerInch, p)
		}
	}

	var known map[string]bool
	if opts.Interfaces != nil {
		known = make(map[string]bool)
		for _, iface := range opts.Interfaces.NetworkInterfaces() {
			known[iface.ID] = true
		}
	}

	for i, n := range hw.NetworkDevices {
		field := fmt.Sprintf("hardware.networkDevices[%d]", i)

		if !ValidateMAC(n.MACAddress) {
			add(true, field+".macAddress", "%q is not a valid MAC address", n.MACAddress)
		} else if !IsLocallyAdministered(n.MACAddress) {
			add(true, field+".macAddress", "%s is not a locally-administered unicast address", n.MACAddress)
		}

		switch n.Kind {
		case v1alpha1.NetworkKindNAT:
			if n.BridgeInterfaceID != "" {
				add(false, field+".bridgeInterfaceID", "ignored for NAT devices")
			}
		case v1alpha1.NetworkKindBridge:
			if n.BridgeInterfaceID == "" {
				add(true, field+".bridgeInterfaceID", "required for bridge devices")
			} else if known != nil && !known[n.BridgeInterfaceID] {
				add(false, field+".bridgeInterfaceID", "host has no bridgeable interface %q", n.BridgeInterfaceID)
			}
			if opts.Entitlements != nil && !SupportsBridgedNetworking(opts.Entitlements) {
				add(false, field+".kind", "bridged networking needs the %s entitlement", host.BridgedNetworkingEntitlement)
			}
		default:
			add(true, field+".kind", "unknown kind %q", n.Kind)
		}
	}

	seen := make(map[string]int)
	for i, f := range cfg.SharedFolders {
		field := fmt.Sprintf("sharedFolders[%d].path", i)
		if f.Path == "" {
			add(true, field, "path is required")
			continue
		}
		if j, ok := seen[f.Path]; ok {
			add(true, field, "%s is already shared by sharedFolders[%d]", f.Path, j)
			continue
		}
		seen[f.Path] = i
	}

	return issues
}

// HasFatal reports whether any issue blocks the configuration.
func HasFatal(issues []Issue) bool {
	for _, i := range issues {
		if i.Fatal {
			return true
		}
	}
	return false
}

// FormatIssues returns a human-readable summary, or "" when there are none.
func FormatIssues(issues []Issue) string {
	if len(issues) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Configuration issues:\n")
	for _, i := range issues {
		prefix := "Warning"
		if i.Fatal {
			prefix = "Error"
		}
		fmt.Fprintf(&b, "  %s [%s]: %s\n", prefix, i.Field, i.Message)
	}
	return b.String()
}
