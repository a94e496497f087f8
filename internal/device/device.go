// Package device queries the host's device-management facility for USB
// devices and the controller relationships that attach them.
//
// The platform-specific part is the Backend (WMI on Windows). Service turns
// backend rows into Records and is the Querier the reports consume.
package device

import (
	"errors"
	"fmt"
)

// Fallbacks used when the device facility reports a NULL property.
const (
	UnknownName   = "Unknown Device"
	NoDescription = "No Description"
	NoDeviceID    = "No Device ID"
)

var (
	// ErrUnsupported is returned by the backend on hosts without a device
	// facility.
	ErrUnsupported = errors.New("device enumeration is only supported on Windows")

	// ErrUnknownFilter is returned for a FilterKind outside the defined set.
	ErrUnknownFilter = errors.New("unknown device filter")
)

// FilterKind selects which device records a query returns.
type FilterKind int

const (
	// ControllerRelationship returns devices hosted by USB controllers,
	// resolved through their controller association records.
	ControllerRelationship FilterKind = iota

	// UsbPnpEntities returns PnP entities whose identifier contains "USB".
	UsbPnpEntities
)

func (k FilterKind) String() string {
	switch k {
	case ControllerRelationship:
		return "controller-relationship"
	case UsbPnpEntities:
		return "usb-pnp-entities"
	default:
		return fmt.Sprintf("filter(%d)", int(k))
	}
}

// Record is one device as printed by the reports.
type Record struct {
	Name        string
	Description string
	DeviceID    string

	// DependentID is the raw association string the record was resolved
	// from. Empty for UsbPnpEntities.
	DependentID string

	// EntityID is the DeviceID property of the resolved entity. Empty when
	// the entity did not report one.
	EntityID string
}

// Entity is one PnP entity row. Nil fields were NULL in the source.
type Entity struct {
	Name        *string
	Description *string
	DeviceID    *string
}

// Querier returns device records for a filter.
type Querier interface {
	Query(kind FilterKind) ([]Record, error)
}

// Backend is the narrow platform binding to the OS device facility.
type Backend interface {
	// ControllerDependents returns the Dependent reference of every USB
	// controller association.
	ControllerDependents() ([]string, error)

	// EntitiesByID returns the PnP entities whose DeviceID equals id.
	EntitiesByID(id string) ([]Entity, error)

	// USBEntities returns the PnP entities whose PNPDeviceID contains "USB".
	USBEntities() ([]Entity, error)
}

func valueOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}
