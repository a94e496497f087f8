//go:build !windows

package serial

// registryPortNames has no registry to read outside Windows.
func registryPortNames() []string {
	return nil
}
