// Package libvirt wraps github.com/digitalocean/go-libvirt for reading host
// facts from a libvirt daemon.
//
// The Client exposes only the queries vbmac needs (node info, hostname,
// active interfaces) as plain Go values. Consumers define their own
// interfaces over these methods, so tests can substitute a fake without
// a daemon:
//
//	client, err := libvirt.Dial(ctx, "", 0)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	info, err := client.NodeInfo()
package libvirt
