package host

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"libvirt.org/go/libvirtxml"

	"github.com/jbweber/vbmac/internal/libvirt"
)

// LibvirtSource is the subset of the libvirt client used for host
// introspection.
type LibvirtSource interface {
	NodeInfo() (libvirt.NodeInfo, error)
	Hostname() (string, error)
	ActiveInterfaces() ([]libvirt.InterfaceDesc, error)
}

// FromLibvirt reads processor count, memory, and host name from a libvirt
// daemon. The daemon knows nothing of displays, so ActiveDisplay is nil.
func FromLibvirt(ctx context.Context, src LibvirtSource, logger *zap.Logger) (Capabilities, error) {
	if err := ctx.Err(); err != nil {
		return Capabilities{}, err
	}

	info, err := src.NodeInfo()
	if err != nil {
		return Capabilities{}, fmt.Errorf("failed to read host capabilities: %w", err)
	}

	caps := Capabilities{
		LogicalProcessorCount: info.CPUs,
		PhysicalMemoryBytes:   info.MemoryKiB * 1024,
	}

	if err := ctx.Err(); err != nil {
		return Capabilities{}, err
	}

	name, err := src.Hostname()
	if err != nil {
		logger.Warn("hostname unavailable", zap.Error(err))
	} else {
		caps.ComputerName = name
	}

	logger.Debug("read host capabilities from libvirt",
		zap.String("model", info.Model),
		zap.Int("cpus", caps.LogicalProcessorCount),
		zap.Uint64("memory_bytes", caps.PhysicalMemoryBytes),
		zap.String("computer_name", caps.ComputerName),
	)

	return caps, nil
}

// LibvirtInterfaces lists the active host bridges known to libvirt.
// Interfaces whose XML cannot be parsed are skipped.
func LibvirtInterfaces(ctx context.Context, src LibvirtSource, logger *zap.Logger) (StaticInterfaces, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	descs, err := src.ActiveInterfaces()
	if err != nil {
		return nil, fmt.Errorf("failed to list host interfaces: %w", err)
	}

	var out StaticInterfaces
	for _, desc := range descs {
		var iface libvirtxml.Interface
		if err := iface.Unmarshal(desc.XML); err != nil {
			logger.Warn("skipping unparsable interface", zap.String("name", desc.Name), zap.Error(err))
			continue
		}
		if iface.Bridge == nil {
			logger.Debug("skipping non-bridge interface", zap.String("name", desc.Name))
			continue
		}

		id := iface.Name
		if id == "" {
			id = desc.Name
		}
		out = append(out, NetworkInterface{ID: id})
	}

	return out, nil
}
