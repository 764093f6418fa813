package output

import (
	"encoding/json"
	"fmt"

	"github.com/jbweber/vbmac/api/v1alpha1"
	"github.com/jbweber/vbmac/internal/host"
	"github.com/jbweber/vbmac/internal/ranges"
	"github.com/jbweber/vbmac/internal/validate"
)

// JSONFormatter formats resources as JSON.
type JSONFormatter struct{}

func (f *JSONFormatter) marshal(what string, v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s to JSON: %w", what, err)
	}
	return string(data) + "\n", nil
}

// FormatConfiguration formats a configuration as JSON.
func (f *JSONFormatter) FormatConfiguration(cfg *v1alpha1.VBMacConfiguration) (string, error) {
	out, err := withTypeMeta(cfg)
	if err != nil {
		return "", err
	}
	return f.marshal("configuration", out)
}

// FormatPresets formats presets as a JSON array.
func (f *JSONFormatter) FormatPresets(presets []v1alpha1.DisplayPreset) (string, error) {
	if len(presets) == 0 {
		return "[]\n", nil
	}
	return f.marshal("presets", presets)
}

// FormatRanges formats the ranges as JSON.
func (f *JSONFormatter) FormatRanges(s ranges.Summary) (string, error) {
	return f.marshal("ranges", s)
}

// FormatHost formats a host snapshot as JSON.
func (f *JSONFormatter) FormatHost(s host.Snapshot) (string, error) {
	return f.marshal("host", s)
}

// FormatBridges formats the bridging report as JSON.
func (f *JSONFormatter) FormatBridges(r BridgeReport) (string, error) {
	if r.Interfaces == nil {
		r.Interfaces = []validate.BridgeInterface{}
	}
	return f.marshal("bridges", r)
}

// FormatIssues formats issues as a JSON array.
func (f *JSONFormatter) FormatIssues(issues []validate.Issue) (string, error) {
	if len(issues) == 0 {
		return "[]\n", nil
	}
	return f.marshal("issues", issues)
}
