//go:build !darwin

package platform

// Detect returns the built-in limits; there is no hypervisor to ask.
func Detect() Limits {
	return Default()
}
