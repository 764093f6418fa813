package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jbweber/vbmac/internal/config"
	"github.com/jbweber/vbmac/internal/defaults"
	"github.com/jbweber/vbmac/internal/host"
	"github.com/jbweber/vbmac/internal/libvirt"
	"github.com/jbweber/vbmac/internal/output"
	"github.com/jbweber/vbmac/internal/platform"
	"github.com/jbweber/vbmac/internal/presets"
	"github.com/jbweber/vbmac/internal/ranges"
	"github.com/jbweber/vbmac/internal/validate"
)

// env is everything a command needs, read once at startup.
type env struct {
	settings  *config.Settings
	logger    *zap.Logger
	formatter output.Formatter
	snapshot  host.Snapshot
	resolver  *ranges.Resolver
	factory   *defaults.Factory
	catalog   *presets.Catalog
}

// newEnv loads settings, reads the host, and builds the derivation stack.
// The caller must call close.
func newEnv(ctx context.Context) (*env, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}

	logger, err := newLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	formatter, err := newFormatter(settings)
	if err != nil {
		return nil, err
	}

	snap, err := readHost(ctx, settings, logger)
	if err != nil {
		return nil, err
	}

	maxMemory, err := settings.MaxMemoryBytes()
	if err != nil {
		return nil, err
	}
	limits := platform.Detect().WithMaxMemory(maxMemory)

	resolver := ranges.NewResolver(limits, snap.Capabilities).
		WithDisplayCeiling(settings.DisplayMaxWidth, settings.DisplayMaxHeight)
	factory := defaults.NewFactory(resolver)

	logger.Debug("host resolved",
		zap.String("computer_name", snap.ComputerName),
		zap.Int("cpus", snap.LogicalProcessorCount),
		zap.Uint64("memory_bytes", snap.PhysicalMemoryBytes),
		zap.Bool("display", snap.ActiveDisplay != nil),
		zap.Int("interfaces", len(snap.Interfaces)),
		zap.Any("limits", limits),
	)

	return &env{
		settings:  settings,
		logger:    logger,
		formatter: formatter,
		snapshot:  snap,
		resolver:  resolver,
		factory:   factory,
		catalog:   presets.NewCatalog(factory, nil),
	}, nil
}

func (e *env) close() {
	_ = e.logger.Sync()
}

// interfaces returns the bridgeable interface provider, or nil when the
// host reported none and membership cannot be checked.
func (e *env) interfaces() host.NetworkInterfaceProvider {
	if len(e.snapshot.Interfaces) == 0 {
		return nil
	}
	return e.snapshot.Interfaces
}

// validateOptions returns the collaborators used to check configurations.
func (e *env) validateOptions() validate.Options {
	return validate.Options{
		Interfaces:   e.interfaces(),
		Entitlements: e.snapshot.Entitlements,
	}
}

// readHost reads the host snapshot from the host file, or from libvirt
// when no file is configured, then merges configured entitlements and
// falls back to the system's bridgeable interfaces.
func readHost(ctx context.Context, s *config.Settings, logger *zap.Logger) (host.Snapshot, error) {
	var snap host.Snapshot

	if s.HostFile != "" {
		logger.Debug("reading host file", zap.String("path", s.HostFile))
		loaded, err := host.LoadFile(s.HostFile)
		if err != nil {
			return host.Snapshot{}, err
		}
		snap = loaded
	} else {
		logger.Debug("reading host from libvirt", zap.String("socket", s.LibvirtSocket))
		client, err := libvirt.Dial(ctx, s.LibvirtSocket, s.LibvirtTimeout)
		if err != nil {
			return host.Snapshot{}, fmt.Errorf("no host file configured and libvirt is unavailable: %w", err)
		}
		defer func() {
			if closeErr := client.Close(); closeErr != nil {
				logger.Warn("failed to close libvirt connection", zap.Error(closeErr))
			}
		}()

		caps, err := host.FromLibvirt(ctx, client, logger)
		if err != nil {
			return host.Snapshot{}, err
		}
		snap.Capabilities = caps

		ifaces, err := host.LibvirtInterfaces(ctx, client, logger)
		if err != nil {
			logger.Warn("host interfaces unavailable", zap.Error(err))
		}
		snap.Interfaces = ifaces
	}

	if len(snap.Interfaces) == 0 {
		snap.Interfaces = host.SystemInterfaces()
	}

	for _, e := range s.Entitlements {
		if !snap.Entitlements.Has(e) {
			snap.Entitlements = append(snap.Entitlements, e)
		}
	}

	return snap, nil
}
