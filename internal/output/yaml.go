package output

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jbweber/vbmac/api/v1alpha1"
	"github.com/jbweber/vbmac/internal/host"
	"github.com/jbweber/vbmac/internal/ranges"
	"github.com/jbweber/vbmac/internal/validate"
)

// YAMLFormatter formats resources as YAML.
type YAMLFormatter struct{}

func (f *YAMLFormatter) marshal(what string, v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s to YAML: %w", what, err)
	}
	return string(data), nil
}

// FormatConfiguration formats a configuration as YAML, in the same form
// the loader reads.
func (f *YAMLFormatter) FormatConfiguration(cfg *v1alpha1.VBMacConfiguration) (string, error) {
	out, err := withTypeMeta(cfg)
	if err != nil {
		return "", err
	}
	return f.marshal("configuration", out)
}

// FormatPresets formats presets as a YAML sequence.
func (f *YAMLFormatter) FormatPresets(presets []v1alpha1.DisplayPreset) (string, error) {
	if len(presets) == 0 {
		return "[]\n", nil
	}
	return f.marshal("presets", presets)
}

// FormatRanges formats the ranges as YAML.
func (f *YAMLFormatter) FormatRanges(s ranges.Summary) (string, error) {
	return f.marshal("ranges", s)
}

// FormatHost formats a host snapshot as YAML, in the same form
// host.ParseYAML reads.
func (f *YAMLFormatter) FormatHost(s host.Snapshot) (string, error) {
	return f.marshal("host", s)
}

// FormatBridges formats the bridging report as YAML.
func (f *YAMLFormatter) FormatBridges(r BridgeReport) (string, error) {
	return f.marshal("bridges", r)
}

// FormatIssues formats issues as a YAML sequence.
func (f *YAMLFormatter) FormatIssues(issues []validate.Issue) (string, error) {
	if len(issues) == 0 {
		return "[]\n", nil
	}
	return f.marshal("issues", issues)
}
