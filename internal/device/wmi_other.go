//go:build !windows

package device

type unsupportedBackend struct{}

// DefaultBackend returns the backend for this platform. Outside Windows
// every query fails with ErrUnsupported.
func DefaultBackend() Backend {
	return unsupportedBackend{}
}

func (unsupportedBackend) ControllerDependents() ([]string, error) { return nil, ErrUnsupported }

func (unsupportedBackend) EntitiesByID(string) ([]Entity, error) { return nil, ErrUnsupported }

func (unsupportedBackend) USBEntities() ([]Entity, error) { return nil, ErrUnsupported }
