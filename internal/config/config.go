// Package config loads vbmac's own settings: where host facts come from and
// how output is rendered. It does not describe virtual machines; those are
// v1alpha1.VBMacConfiguration files handled by the loader package.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/spf13/viper"

	"github.com/jbweber/vbmac/internal/libvirt"
	"github.com/jbweber/vbmac/internal/output"
)

// ErrInvalidSettings is wrapped by every Validate failure.
var ErrInvalidSettings = errors.New("invalid settings")

// EnvPrefix prefixes environment overrides: VBMAC_HOST_FILE, VBMAC_OUTPUT, etc.
const EnvPrefix = "VBMAC"

// Settings holds all vbmac settings.
type Settings struct {
	// LibvirtSocket is the libvirt daemon socket used when no host file is set.
	LibvirtSocket string `mapstructure:"libvirt_socket"`

	// LibvirtTimeout bounds the libvirt dial.
	LibvirtTimeout time.Duration `mapstructure:"libvirt_timeout"`

	// HostFile is a static host description (see host.ParseYAML).
	// Takes precedence over libvirt when set.
	HostFile string `mapstructure:"host_file"`

	// DisplayMaxWidth and DisplayMaxHeight raise or lower the display
	// ceilings. Zero keeps the built-in values.
	DisplayMaxWidth  int `mapstructure:"display_max_width"`
	DisplayMaxHeight int `mapstructure:"display_max_height"`

	// PlatformMaxMemory overrides the hypervisor memory ceiling, as a human
	// size ("32GiB", "48g"). Empty keeps the detected value.
	PlatformMaxMemory string `mapstructure:"platform_max_memory"`

	// Entitlements are granted in addition to those in the host file.
	Entitlements []string `mapstructure:"entitlements"`

	// Output is the default output format.
	Output string `mapstructure:"output"`
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		LibvirtSocket:  libvirt.DefaultSocket,
		LibvirtTimeout: libvirt.DefaultTimeout,
		Entitlements:   []string{},
		Output:         string(output.FormatTable),
	}
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/vbmac, or ~/.config/vbmac.
func DefaultConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "vbmac"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "vbmac"), nil
}

// Load reads settings from configFile (or config.yaml in the default
// directory when empty), the environment, and defaults, in increasing
// order of precedence: defaults, file, environment, then any flags
// already bound to v. A missing default file is not an error; a missing
// explicit file is. v may be nil.
func Load(v *viper.Viper, configFile string) (*Settings, error) {
	if v == nil {
		v = viper.New()
	}

	defaults := Default()
	v.SetDefault("libvirt_socket", defaults.LibvirtSocket)
	v.SetDefault("libvirt_timeout", defaults.LibvirtTimeout)
	v.SetDefault("host_file", defaults.HostFile)
	v.SetDefault("display_max_width", defaults.DisplayMaxWidth)
	v.SetDefault("display_max_height", defaults.DisplayMaxHeight)
	v.SetDefault("platform_max_memory", defaults.PlatformMaxMemory)
	v.SetDefault("entitlements", defaults.Entitlements)
	v.SetDefault("output", defaults.Output)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := DefaultConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks the settings for errors.
func (s *Settings) Validate() error {
	if s.LibvirtTimeout < 0 {
		return fmt.Errorf("%w: libvirt_timeout must not be negative, got %s", ErrInvalidSettings, s.LibvirtTimeout)
	}
	if s.DisplayMaxWidth < 0 {
		return fmt.Errorf("%w: display_max_width must not be negative, got %d", ErrInvalidSettings, s.DisplayMaxWidth)
	}
	if s.DisplayMaxHeight < 0 {
		return fmt.Errorf("%w: display_max_height must not be negative, got %d", ErrInvalidSettings, s.DisplayMaxHeight)
	}
	if _, err := s.MaxMemoryBytes(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if err := output.ValidateFormat(s.Output); err != nil {
		return fmt.Errorf("%w: output: %v", ErrInvalidSettings, err)
	}
	return nil
}

// MaxMemoryBytes parses PlatformMaxMemory. Zero means unset.
func (s *Settings) MaxMemoryBytes() (uint64, error) {
	if s.PlatformMaxMemory == "" {
		return 0, nil
	}
	n, err := units.RAMInBytes(s.PlatformMaxMemory)
	if err != nil {
		return 0, fmt.Errorf("platform_max_memory %q: %w", s.PlatformMaxMemory, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("platform_max_memory must be positive, got %q", s.PlatformMaxMemory)
	}
	return uint64(n), nil
}
