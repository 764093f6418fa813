package host

import "github.com/jbweber/vbmac/internal/libvirt"

// mockLibvirtSource implements LibvirtSource for testing.
type mockLibvirtSource struct {
	NodeInfoFunc         func() (libvirt.NodeInfo, error)
	HostnameFunc         func() (string, error)
	ActiveInterfacesFunc func() ([]libvirt.InterfaceDesc, error)
}

func (m *mockLibvirtSource) NodeInfo() (libvirt.NodeInfo, error) {
	if m.NodeInfoFunc != nil {
		return m.NodeInfoFunc()
	}
	return libvirt.NodeInfo{}, nil
}

func (m *mockLibvirtSource) Hostname() (string, error) {
	if m.HostnameFunc != nil {
		return m.HostnameFunc()
	}
	return "", nil
}

func (m *mockLibvirtSource) ActiveInterfaces() ([]libvirt.InterfaceDesc, error) {
	if m.ActiveInterfacesFunc != nil {
		return m.ActiveInterfacesFunc()
	}
	return nil, nil
}
