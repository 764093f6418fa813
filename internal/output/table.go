package output

import (
	"bytes"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/docker/go-units"

	"github.com/jbweber/vbmac/api/v1alpha1"
	"github.com/jbweber/vbmac/internal/host"
	"github.com/jbweber/vbmac/internal/ranges"
	"github.com/jbweber/vbmac/internal/validate"
)

// TableFormatter formats resources as human-readable tables.
type TableFormatter struct {
	// NoHeaders omits the header row.
	NoHeaders bool
}

// table writes header (unless suppressed) and the rows produced by fill.
func (f *TableFormatter) table(header string, fill func(w io.Writer)) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	if !f.NoHeaders {
		_, _ = fmt.Fprintln(w, header)
	}
	fill(w)

	_ = w.Flush()
	return buf.String()
}

// FormatConfiguration formats a configuration as one row per device.
func (f *TableFormatter) FormatConfiguration(cfg *v1alpha1.VBMacConfiguration) (string, error) {
	if cfg == nil {
		return "", fmt.Errorf("configuration is nil")
	}
	hw := &cfg.Hardware

	return f.table("DEVICE\tID\tDETAILS", func(w io.Writer) {
		row := func(device, id, details string) {
			if id == "" {
				id = "-"
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", device, id, details)
		}

		row("cpu", "", fmt.Sprintf("%d", hw.CPUCount))
		row("memory", "", formatBytes(hw.MemorySize))
		row("pointing", "", hw.PointingDevice.Kind.String())
		for _, d := range hw.Displays {
			row("display", d.ID, fmt.Sprintf("%s %dx%d @%dppi", d.Name, d.Width, d.Height, d.PixelsPerInch))
		}
		for _, n := range hw.NetworkDevices {
			details := fmt.Sprintf("%s %s %s", n.Name, n.Kind, n.MACAddress)
			if n.Kind == v1alpha1.NetworkKindBridge {
				details += " via " + n.BridgeInterfaceID
			}
			row("network", n.ID, details)
		}
		for _, s := range hw.SoundDevices {
			row("sound", s.ID, fmt.Sprintf("%s output=%s input=%s", s.Name, onOff(s.EnableOutput), onOff(s.EnableInput)))
		}
		for _, sf := range cfg.SharedFolders {
			mode := "read-write"
			if sf.IsReadOnly() {
				mode = "read-only"
			}
			row("folder", sf.ID, fmt.Sprintf("%s %s (%s)", sf.Name(), sf.Path, mode))
		}
		for _, v := range hw.NVRAM {
			row("nvram", "", fmt.Sprintf("%s=%s", v.Key, v.Value))
		}
	}), nil
}

// FormatPresets formats presets as a table.
func (f *TableFormatter) FormatPresets(presets []v1alpha1.DisplayPreset) (string, error) {
	if len(presets) == 0 {
		return "No presets available\n", nil
	}

	return f.table("NAME\tRESOLUTION\tPPI\tAVAILABLE\tWARNING", func(w io.Writer) {
		for _, p := range presets {
			warning := p.Warning
			if warning == "" {
				warning = "-"
			}
			_, _ = fmt.Fprintf(w, "%s\t%dx%d\t%d\t%s\t%s\n",
				p.Name, p.Device.Width, p.Device.Height, p.Device.PixelsPerInch, yesNo(p.Available), warning)
		}
	}), nil
}

// FormatRanges formats the ranges as a table.
func (f *TableFormatter) FormatRanges(s ranges.Summary) (string, error) {
	return f.table("SETTING\tMIN\tMAX", func(w io.Writer) {
		for _, r := range []struct {
			name string
			r    v1alpha1.Range
		}{
			{"cpuCount", s.CPUCount},
			{"memoryGB", s.MemoryGB},
			{"displayWidth", s.DisplayWidth},
			{"displayHeight", s.DisplayHeight},
			{"displayPPI", s.DisplayPPI},
		} {
			_, _ = fmt.Fprintf(w, "%s\t%d\t%d\n", r.name, r.r.Min, r.r.Max)
		}
	}), nil
}

// FormatHost formats a host snapshot as field/value rows.
func (f *TableFormatter) FormatHost(s host.Snapshot) (string, error) {
	return f.table("FIELD\tVALUE", func(w io.Writer) {
		row := func(field, value string) {
			_, _ = fmt.Fprintf(w, "%s\t%s\n", field, value)
		}

		row("computerName", dash(s.ComputerName))
		row("processors", fmt.Sprintf("%d", s.LogicalProcessorCount))
		row("memory", formatBytes(s.PhysicalMemoryBytes))

		if d := s.ActiveDisplay; d != nil {
			row("display", dash(d.Name))
			row("displayPoints", fmt.Sprintf("%gx%g @%gx", d.SizePoints.Width, d.SizePoints.Height, d.BackingScaleFactor))
			row("displayDPI", fmt.Sprintf("%g", d.DeviceResolution.Width))
			row("displayNotch", yesNo(d.HasNotch))
		} else {
			row("display", "-")
		}

		for _, iface := range s.Interfaces {
			row("interface", iface.ID)
		}
		for _, e := range s.Entitlements {
			row("entitlement", e)
		}
	}), nil
}

// FormatBridges formats the bridging report as a table.
func (f *TableFormatter) FormatBridges(r BridgeReport) (string, error) {
	if len(r.Interfaces) == 0 {
		return fmt.Sprintf("No bridgeable interfaces found (bridging supported: %s)\n", yesNo(r.Supported)), nil
	}

	out := f.table("ID\tNAME\tDEFAULT", func(w io.Writer) {
		for _, iface := range r.Interfaces {
			def := ""
			if iface.ID == r.DefaultID {
				def = "*"
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", iface.ID, iface.Name, def)
		}
	})

	if !r.Supported {
		out += fmt.Sprintf("\nBridged networking requires the %s entitlement.\n", host.BridgedNetworkingEntitlement)
	}
	return out, nil
}

// FormatIssues formats issues the way the validate package summarizes them.
func (f *TableFormatter) FormatIssues(issues []validate.Issue) (string, error) {
	if len(issues) == 0 {
		return "Configuration is valid\n", nil
	}
	return validate.FormatIssues(issues), nil
}

// formatBytes renders a byte count in binary units (e.g. "8GiB").
func formatBytes(n uint64) string {
	return units.BytesSize(float64(n))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
