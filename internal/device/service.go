package device

import "fmt"

// Service resolves Records from a Backend. It is the Querier used by the
// reports.
type Service struct {
	backend Backend
	logf    func(format string, args ...any)
}

// Option configures a Service.
type Option func(*Service)

// WithLogger routes diagnostic messages (skipped associations, row counts)
// to logf.
func WithLogger(logf func(format string, args ...any)) Option {
	return func(s *Service) {
		if logf != nil {
			s.logf = logf
		}
	}
}

// NewService creates a Service over backend.
func NewService(backend Backend, opts ...Option) *Service {
	s := &Service{
		backend: backend,
		logf:    func(string, ...any) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Query returns the records for kind. On a failed secondary lookup the
// records resolved so far are returned along with the error.
func (s *Service) Query(kind FilterKind) ([]Record, error) {
	if s.backend == nil {
		return nil, ErrUnsupported
	}

	switch kind {
	case ControllerRelationship:
		return s.controllerDevices()
	case UsbPnpEntities:
		return s.usbEntities()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFilter, kind)
	}
}

// controllerDevices joins every controller association to its PnP entity
// with one lookup per association.
func (s *Service) controllerDevices() ([]Record, error) {
	dependents, err := s.backend.ControllerDependents()
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", ControllerRelationship, err)
	}
	s.logf("%d controller associations", len(dependents))

	var records []Record
	for _, dep := range dependents {
		id, ok := ParseDependent(dep)
		if !ok {
			s.logf("skipping association without device id: %q", dep)
			continue
		}

		entities, err := s.backend.EntitiesByID(id)
		if err != nil {
			return records, fmt.Errorf("look up %s: %w", id, err)
		}
		if len(entities) == 0 {
			s.logf("no entity for %s", id)
		}

		for _, e := range entities {
			records = append(records, Record{
				Name:        valueOr(e.Name, UnknownName),
				Description: valueOr(e.Description, NoDescription),
				DeviceID:    id,
				DependentID: dep,
				EntityID:    valueOr(e.DeviceID, ""),
			})
		}
	}
	return records, nil
}

func (s *Service) usbEntities() ([]Record, error) {
	entities, err := s.backend.USBEntities()
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", UsbPnpEntities, err)
	}
	s.logf("%d USB entities", len(entities))

	records := make([]Record, 0, len(entities))
	for _, e := range entities {
		records = append(records, Record{
			Name:        valueOr(e.Name, UnknownName),
			Description: valueOr(e.Description, NoDescription),
			DeviceID:    valueOr(e.DeviceID, NoDeviceID),
		})
	}
	return records, nil
}
