//go:build windows

package device

import (
	"github.com/bi-zone/wmi"
)

type win32USBControllerDevice struct {
	Dependent string
}

type win32PnPEntity struct {
	Name        *string
	Description *string
	DeviceID    *string
}

// WMIBackend queries the local root\cimv2 namespace.
type WMIBackend struct{}

// DefaultBackend returns the backend for this platform.
func DefaultBackend() Backend {
	return &WMIBackend{}
}

func (b *WMIBackend) ControllerDependents() ([]string, error) {
	var dst []win32USBControllerDevice
	if err := wmi.Query(controllerDevicesQuery, &dst); err != nil {
		return nil, err
	}

	deps := make([]string, 0, len(dst))
	for _, d := range dst {
		deps = append(deps, d.Dependent)
	}
	return deps, nil
}

func (b *WMIBackend) EntitiesByID(id string) ([]Entity, error) {
	return queryEntities(entityByIDQuery(id))
}

func (b *WMIBackend) USBEntities() ([]Entity, error) {
	return queryEntities(usbEntitiesQuery)
}

func queryEntities(query string) ([]Entity, error) {
	var dst []win32PnPEntity
	if err := wmi.Query(query, &dst); err != nil {
		return nil, err
	}

	entities := make([]Entity, 0, len(dst))
	for _, d := range dst {
		entities = append(entities, Entity{
			Name:        d.Name,
			Description: d.Description,
			DeviceID:    d.DeviceID,
		})
	}
	return entities, nil
}
