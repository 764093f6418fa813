//go:build !darwin

package host

// SystemInterfaces returns nil; bridged interfaces are only enumerable
// through Virtualization.framework.
func SystemInterfaces() StaticInterfaces {
	return nil
}
