package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jbweber/vbmac/internal/config"
	"github.com/jbweber/vbmac/internal/output"
)

var (
	version = "dev"
	commit  = "unknown"
)

// Global flags
var (
	cfgFile      string
	debug        bool
	outputFormat string
	noHeaders    bool

	v = viper.New()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vbmac",
	Short: "vbmac - virtual Mac hardware configuration tool",
	Long: `vbmac derives legal and default hardware for macOS virtual machines
from the capabilities of the host they will run on.

It reads host facts from a static host file or a libvirt daemon, and
creates, edits, and validates VBMacConfiguration YAML files.`,
	Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Settings file (default: ~/.config/vbmac/config.yaml)")
	flags.String("host-file", "", "Static host description (YAML) instead of libvirt")
	flags.String("libvirt-socket", "", "libvirt daemon socket")
	flags.BoolVar(&debug, "debug", false, "Enable debug logging")
	flags.StringVarP(&outputFormat, "output", "o", "", "Output format (table, yaml, json)")
	flags.BoolVar(&noHeaders, "no-headers", false, "Omit headers in table output")

	_ = v.BindPFlag("host_file", flags.Lookup("host-file"))
	_ = v.BindPFlag("libvirt_socket", flags.Lookup("libvirt-socket"))

	rootCmd.AddCommand(hostCmd)
	rootCmd.AddCommand(rangesCmd)
	rootCmd.AddCommand(defaultsCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(applyPresetCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(bridgesCmd)
	rootCmd.AddCommand(testConnCmd)
}

// loadSettings reads settings with flags applied.
func loadSettings() (*config.Settings, error) {
	s, err := config.Load(v, cfgFile)
	if err != nil {
		return nil, err
	}
	if outputFormat != "" {
		if err := output.ValidateFormat(outputFormat); err != nil {
			return nil, err
		}
		s.Output = outputFormat
	}
	return s, nil
}

// newLogger builds the CLI logger: warnings and above in production form,
// or everything in development form with --debug.
func newLogger() (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.Encoding = "console"
	return cfg.Build()
}

// newFormatter creates the formatter selected by settings.
func newFormatter(s *config.Settings) (output.Formatter, error) {
	return output.NewFormatter(output.Options{
		Format:    output.Format(s.Output),
		NoHeaders: noHeaders,
	})
}

// writeResult writes formatted output to the command's stdout.
func writeResult(cmd *cobra.Command, result string, err error) error {
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), result)
	return nil
}
