package serial

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.bug.st/serial/enumerator"
)

// PortInfo holds details about a serial port.
type PortInfo struct {
	Name         string
	IsUSB        bool
	VID          string
	PID          string
	SerialNumber string
}

// Source selects where port names come from.
type Source string

const (
	// SourceEnumerator asks the serial enumerator, falling back to the
	// registry when the enumerator fails.
	SourceEnumerator Source = "enumerator"

	// SourceRegistry reads HKLM\HARDWARE\DEVICEMAP\SERIALCOMM only.
	SourceRegistry Source = "registry"

	// SourceAuto asks the enumerator and falls back to the registry when it
	// fails or finds nothing.
	SourceAuto Source = "auto"
)

// ParseSource validates a source name. Empty means SourceEnumerator.
func ParseSource(s string) (Source, error) {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case "", SourceEnumerator:
		return SourceEnumerator, nil
	case SourceRegistry:
		return SourceRegistry, nil
	case SourceAuto:
		return SourceAuto, nil
	}
	return "", fmt.Errorf("invalid port source %q (valid: enumerator, registry, auto)", s)
}

// ListPorts returns available serial ports.
func ListPorts() ([]PortInfo, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, err
	}

	var result []PortInfo
	for _, p := range ports {
		result = append(result, PortInfo{
			Name:         p.Name,
			IsUSB:        p.IsUSB,
			VID:          p.VID,
			PID:          p.PID,
			SerialNumber: p.SerialNumber,
		})
	}
	return result, nil
}

// Lister returns the serial ports present at call time.
type Lister interface {
	Ports() []PortInfo
}

// OSLister lists ports from the operating system. Results are never cached.
type OSLister struct {
	source   Source
	detailed func() ([]PortInfo, error)
	registry func() []string
}

// NewLister creates an OSLister reading from source.
func NewLister(source Source) *OSLister {
	return &OSLister{
		source:   source,
		detailed: ListPorts,
		registry: registryPortNames,
	}
}

// Ports returns the ports in natural name order. Failures and missing
// hardware yield an empty result rather than an error. Ports read from the
// registry carry only a name.
func (l *OSLister) Ports() []PortInfo {
	var ports []PortInfo
	switch l.source {
	case SourceRegistry:
		ports = l.fromRegistry()
	case SourceAuto:
		ports, _ = l.detailed()
		if len(ports) == 0 {
			ports = l.fromRegistry()
		}
	default:
		var err error
		ports, err = l.detailed()
		if err != nil {
			ports = l.fromRegistry()
		}
	}
	return SortPorts(ports)
}

// PortNames returns the names of Ports in the same order.
func (l *OSLister) PortNames() []string {
	return Names(l.Ports())
}

func (l *OSLister) fromRegistry() []PortInfo {
	var ports []PortInfo
	for _, name := range l.registry() {
		ports = append(ports, PortInfo{Name: name})
	}
	return ports
}

// Names returns the name of each port.
func Names(ports []PortInfo) []string {
	if len(ports) == 0 {
		return nil
	}
	names := make([]string, 0, len(ports))
	for _, p := range ports {
		names = append(names, p.Name)
	}
	return names
}

// SortPorts trims names, drops blank and repeated names (the first entry
// wins) and orders the rest so that COM2 sorts before COM10. Returns nil
// when nothing remains.
func SortPorts(ports []PortInfo) []PortInfo {
	seen := make(map[string]bool, len(ports))
	var out []PortInfo
	for _, p := range ports {
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" || seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return lessName(out[i].Name, out[j].Name)
	})
	return out
}

// SortNames is SortPorts for bare names.
func SortNames(names []string) []string {
	ports := make([]PortInfo, 0, len(names))
	for _, n := range names {
		ports = append(ports, PortInfo{Name: n})
	}
	return Names(SortPorts(ports))
}

func lessName(a, b string) bool {
	pa, na := splitNumber(a)
	pb, nb := splitNumber(b)
	if pa != pb {
		return pa < pb
	}
	if na != nb {
		return na < nb
	}
	return a < b
}

// splitNumber splits "COM12" into ("COM", 12). Names without a numeric
// suffix get -1.
func splitNumber(name string) (string, int) {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	if i == len(name) {
		return name, -1
	}
	n, err := strconv.Atoi(name[i:])
	if err != nil {
		return name, -1
	}
	return name[:i], n
}
