package libvirt

import (
	"context"
	"fmt"
	"time"

	"github.com/digitalocean/go-libvirt"
	"github.com/digitalocean/go-libvirt/socket/dialers"
)

const (
	// DefaultSocket is the qemu:///system UNIX socket.
	DefaultSocket = "/var/run/libvirt/libvirt-sock"

	// DefaultTimeout bounds the initial dial.
	DefaultTimeout = 5 * time.Second
)

// Client is a connection to a libvirt daemon.
type Client struct {
	libvirt *libvirt.Libvirt
	socket  string
}

// NodeInfo is the host hardware summary reported by the daemon.
type NodeInfo struct {
	Model     string
	MemoryKiB uint64
	CPUs      int
	MHz       int
	Sockets   int
	Cores     int
	Threads   int
}

// InterfaceDesc is an active host interface and its XML description.
type InterfaceDesc struct {
	Name string
	MAC  string
	XML  string
}

// Connect establishes a connection to the local libvirt daemon.
// It returns a Client that must be closed via Close() when done.
//
// If socketPath is empty, DefaultSocket is used.
// If timeout is zero, DefaultTimeout is used.
func Connect(socketPath string, timeout time.Duration) (*Client, error) {
	if socketPath == "" {
		socketPath = DefaultSocket
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	dialer := dialers.NewLocal(
		dialers.WithSocket(socketPath),
		dialers.WithLocalTimeout(timeout),
	)

	l := libvirt.NewWithDialer(dialer)
	if err := l.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to libvirt at %s: %w", socketPath, err)
	}

	return &Client{libvirt: l, socket: socketPath}, nil
}

// Dial is Connect with cancellation. If ctx ends first the pending
// connection is closed once it completes.
func Dial(ctx context.Context, socketPath string, timeout time.Duration) (*Client, error) {
	type result struct {
		client *Client
		err    error
	}
	resultCh := make(chan result, 1)

	go func() {
		c, err := Connect(socketPath, timeout)
		resultCh <- result{client: c, err: err}
	}()

	select {
	case <-ctx.Done():
		go func() {
			if res := <-resultCh; res.client != nil {
				_ = res.client.Close()
			}
		}()
		return nil, fmt.Errorf("connection cancelled: %w", ctx.Err())
	case res := <-resultCh:
		return res.client, res.err
	}
}

// Close closes the libvirt connection.
// It is safe to call Close multiple times.
func (c *Client) Close() error {
	if c.libvirt == nil {
		return nil
	}

	l := c.libvirt
	c.libvirt = nil
	if err := l.Disconnect(); err != nil {
		return fmt.Errorf("failed to disconnect from libvirt: %w", err)
	}

	return nil
}

// Socket returns the socket path the client dialed.
func (c *Client) Socket() string {
	return c.socket
}

// Ping verifies the connection is still alive.
func (c *Client) Ping() error {
	if c.libvirt == nil {
		return fmt.Errorf("client not connected")
	}

	if _, err := c.libvirt.ConnectGetLibVersion(); err != nil {
		return fmt.Errorf("libvirt connection is dead: %w", err)
	}

	return nil
}

// Version returns the daemon's libvirt version as "major.minor.patch".
func (c *Client) Version() (string, error) {
	if c.libvirt == nil {
		return "", fmt.Errorf("client not connected")
	}

	v, err := c.libvirt.ConnectGetLibVersion()
	if err != nil {
		return "", fmt.Errorf("failed to get libvirt version: %w", err)
	}

	// Encoded as major*1000000 + minor*1000 + patch.
	return fmt.Sprintf("%d.%d.%d", v/1000000, (v%1000000)/1000, v%1000), nil
}

// NodeInfo returns the host's CPU and memory summary.
func (c *Client) NodeInfo() (NodeInfo, error) {
	if c.libvirt == nil {
		return NodeInfo{}, fmt.Errorf("client not connected")
	}

	model, memory, cpus, mhz, _, sockets, cores, threads, err := c.libvirt.NodeGetInfo()
	if err != nil {
		return NodeInfo{}, fmt.Errorf("failed to get node info: %w", err)
	}

	return NodeInfo{
		Model:     cString(model[:]),
		MemoryKiB: memory,
		CPUs:      int(cpus),
		MHz:       int(mhz),
		Sockets:   int(sockets),
		Cores:     int(cores),
		Threads:   int(threads),
	}, nil
}

// Hostname returns the hypervisor host name.
func (c *Client) Hostname() (string, error) {
	if c.libvirt == nil {
		return "", fmt.Errorf("client not connected")
	}

	name, err := c.libvirt.ConnectGetHostname()
	if err != nil {
		return "", fmt.Errorf("failed to get hostname: %w", err)
	}
	return name, nil
}

// ActiveInterfaces returns every active host interface with its XML.
func (c *Client) ActiveInterfaces() ([]InterfaceDesc, error) {
	if c.libvirt == nil {
		return nil, fmt.Errorf("client not connected")
	}

	ifaces, _, err := c.libvirt.ConnectListAllInterfaces(1, libvirt.ConnectListInterfacesActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list interfaces: %w", err)
	}

	out := make([]InterfaceDesc, 0, len(ifaces))
	for _, iface := range ifaces {
		xml, err := c.libvirt.InterfaceGetXMLDesc(iface, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to describe interface %s: %w", iface.Name, err)
		}
		out = append(out, InterfaceDesc{Name: iface.Name, MAC: iface.Mac, XML: xml})
	}

	return out, nil
}

// cString converts a NUL-terminated C char array to a string.
func cString(b []int8) string {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c == 0 {
			break
		}
		out = append(out, byte(c))
	}
	return string(out)
}
