// Package output provides formatters for displaying vbmac resources
// in various formats (table, YAML, JSON).
package output

import (
	"fmt"

	"github.com/jbweber/vbmac/api/v1alpha1"
	"github.com/jbweber/vbmac/internal/host"
	"github.com/jbweber/vbmac/internal/ranges"
	"github.com/jbweber/vbmac/internal/validate"
)

// Format represents an output format type.
type Format string

const (
	// FormatTable is a human-readable table format.
	FormatTable Format = "table"
	// FormatYAML is a YAML format for declarative configs.
	FormatYAML Format = "yaml"
	// FormatJSON is a JSON format for machine consumption.
	FormatJSON Format = "json"
)

// BridgeReport describes the host's bridging options.
type BridgeReport struct {
	Interfaces []validate.BridgeInterface `json:"interfaces" yaml:"interfaces"`
	DefaultID  string                     `json:"defaultID,omitempty" yaml:"defaultID,omitempty"`
	Supported  bool                       `json:"supported" yaml:"supported"`
}

// Formatter formats vbmac resources for output.
type Formatter interface {
	// FormatConfiguration formats a single VBMacConfiguration.
	FormatConfiguration(cfg *v1alpha1.VBMacConfiguration) (string, error)

	// FormatPresets formats a display preset list.
	FormatPresets(presets []v1alpha1.DisplayPreset) (string, error)

	// FormatRanges formats the legal hardware ranges.
	FormatRanges(s ranges.Summary) (string, error)

	// FormatHost formats a host snapshot.
	FormatHost(s host.Snapshot) (string, error)

	// FormatBridges formats the bridging report.
	FormatBridges(r BridgeReport) (string, error)

	// FormatIssues formats validation issues.
	FormatIssues(issues []validate.Issue) (string, error)
}

// Options contains options for formatting output.
type Options struct {
	// Format specifies the output format.
	Format Format
	// NoHeaders omits headers in table format.
	NoHeaders bool
}

// NewFormatter creates a new Formatter based on the specified format.
func NewFormatter(opts Options) (Formatter, error) {
	switch opts.Format {
	case FormatTable:
		return &TableFormatter{NoHeaders: opts.NoHeaders}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (supported: table, yaml, json)", opts.Format)
	}
}

// ValidateFormat checks if a format string is valid.
func ValidateFormat(format string) error {
	f := Format(format)
	switch f {
	case FormatTable, FormatYAML, FormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid formats: table, yaml, json)", format)
	}
}

// withTypeMeta returns a copy of cfg with apiVersion and kind filled in.
func withTypeMeta(cfg *v1alpha1.VBMacConfiguration) (*v1alpha1.VBMacConfiguration, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is nil")
	}
	out := cfg.DeepCopy()
	v1alpha1.SetDefaultAPIVersion(out)
	return out, nil
}
