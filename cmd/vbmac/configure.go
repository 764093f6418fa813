package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jbweber/vbmac/api/v1alpha1"
	"github.com/jbweber/vbmac/internal/defaults"
	"github.com/jbweber/vbmac/internal/host"
	"github.com/jbweber/vbmac/internal/loader"
	"github.com/jbweber/vbmac/internal/output"
	"github.com/jbweber/vbmac/internal/validate"
)

var (
	saveFile     string
	showAll      bool
	force        bool
	displayIndex int
	resetIndex   int
	guestVersion string
)

func init() {
	defaultsCmd.Flags().StringVar(&saveFile, "save", "", "Write the configuration to this file")

	presetsCmd.Flags().BoolVar(&showAll, "all", false, "Include presets that are unavailable on this host")

	applyPresetCmd.Flags().IntVar(&displayIndex, "display", 0, "Index of the display to replace")
	applyPresetCmd.Flags().BoolVar(&force, "force", false, "Apply a preset even if it is unavailable on this host")

	resetCmd.Flags().IntVar(&resetIndex, "index", 0, "Index of the display, network, or sound device to reset")

	validateCmd.Flags().StringVar(&guestVersion, "guest-version", "", "Guest macOS version (e.g. 14.2) for pointing device checks")
}

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Generate the default configuration for this host",
	Long: `Generate the hardware a new virtual Mac gets on this host: half the
host's processors and memory, one display matching the host display,
a NAT network device with a fresh MAC address, sound, and a mouse.

Use --save to write the result to a file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.close()

		cfg, err := e.factory.DefaultConfiguration()
		if err != nil {
			return fmt.Errorf("failed to generate defaults: %w", err)
		}

		if saveFile != "" {
			if err := loader.SaveToFile(cfg, saveFile); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "✓ Configuration saved to %s\n", saveFile)
		}

		result, err := e.formatter.FormatConfiguration(cfg)
		return writeResult(cmd, result, err)
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List display presets",
	Long: `List the display presets offered on this host.

Presets that make no sense on this host (matching a display without a
notch, for example) are hidden unless --all is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.close()

		list := e.catalog.AvailablePresets()
		if showAll {
			list = e.catalog.Presets()
		}
		result, err := e.formatter.FormatPresets(list)
		return writeResult(cmd, result, err)
	},
}

var applyPresetCmd = &cobra.Command{
	Use:   "apply-preset <config.yaml> <preset-name>",
	Short: "Apply a display preset to a configuration",
	Long: `Replace one display of a configuration file with a display preset.

The replaced display gets a fresh identifier. The file is rewritten in
place and the updated configuration is printed.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, name := args[0], args[1]

		e, err := newEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.close()

		cfg, err := loader.LoadFromFile(path)
		if err != nil {
			return err
		}

		preset, ok := e.catalog.Find(name)
		if !ok {
			return fmt.Errorf("unknown preset %q (available: %s)", name, presetNames(e.catalog.Presets()))
		}
		if !preset.Available {
			if !force {
				return fmt.Errorf("preset %q is not available on this host (use --force to apply anyway)", preset.Name)
			}
			e.logger.Warn("applying unavailable preset", zap.String("preset", preset.Name))
		}
		if preset.Warning != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", preset.Warning)
		}

		updated, err := e.catalog.Apply(cfg, preset, displayIndex)
		if err != nil {
			return err
		}
		if err := loader.SaveToFile(updated, path); err != nil {
			return err
		}

		result, err := e.formatter.FormatConfiguration(updated)
		return writeResult(cmd, result, err)
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset <config.yaml> <part>",
	Short: "Reset part of a configuration to its default",
	Long: `Reset one part of a configuration file to the default for this host.

Parts:
  display   Replace a display with one matching the host display
  network   Replace a network device with a NAT device and a fresh MAC
  sound     Replace a sound device with one that has input and output
  pointing  Replace the pointing device with a mouse
  hardware  Replace all hardware, keeping NVRAM

The file is rewritten in place and the updated configuration is printed.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		part, err := defaults.ParsePart(args[1])
		if err != nil {
			return err
		}

		e, err := newEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.close()

		cfg, err := loader.LoadFromFile(path)
		if err != nil {
			return err
		}

		updated, err := e.factory.Reset(cfg, part, resetIndex)
		if err != nil {
			return err
		}
		if err := loader.SaveToFile(updated, path); err != nil {
			return err
		}

		result, err := e.formatter.FormatConfiguration(updated)
		return writeResult(cmd, result, err)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <config.yaml>",
	Short: "Check a configuration against this host",
	Long: `Check a configuration file against the ranges and capabilities of this
host and report every issue found.

Errors make the configuration unusable and cause a non-zero exit status.
Warnings are reported but do not fail the command.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.close()

		cfg, err := loader.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		opts := e.validateOptions()
		if guestVersion != "" {
			gv, err := validate.ParseGuestVersion(guestVersion)
			if err != nil {
				return err
			}
			opts.GuestVersion = gv
		}

		issues := validate.Configuration(cfg, e.resolver, opts)
		e.logger.Debug("configuration checked",
			zap.String("path", args[0]),
			zap.Int("issues", len(issues)),
			zap.String("fingerprint", cfg.Fingerprint()),
		)

		result, err := e.formatter.FormatIssues(issues)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), result)

		if validate.HasFatal(issues) {
			return fmt.Errorf("configuration %s has errors", args[0])
		}
		return nil
	},
}

// presetNames joins preset names for error messages.
func presetNames(list []v1alpha1.DisplayPreset) string {
	names := make([]string, 0, len(list))
	for _, p := range list {
		names = append(names, fmt.Sprintf("%q", p.Name))
	}
	return strings.Join(names, ", ")
}

// bridgeReport summarizes bridging support for output.
func bridgeReport(p host.NetworkInterfaceProvider, ents host.Entitlements) output.BridgeReport {
	defaultID, _ := validate.DefaultBridgeInterfaceID(p)
	return output.BridgeReport{
		Interfaces: validate.BridgeInterfaces(p),
		DefaultID:  defaultID,
		Supported:  validate.SupportsBridgedNetworking(ents),
	}
}
