package serial

import (
	"errors"
	"reflect"
	"testing"
)

func fakeLister(source Source, ports []PortInfo, enumErr error, registry []string) (*OSLister, *int) {
	registryCalls := 0
	return &OSLister{
		source: source,
		detailed: func() ([]PortInfo, error) {
			return ports, enumErr
		},
		registry: func() []string {
			registryCalls++
			return registry
		},
	}, &registryCalls
}

func TestSortNamesNaturalOrder(t *testing.T) {
	got := SortNames([]string{"COM10", "COM3", " COM2 ", "COM3", "", "/dev/ttyUSB1", "/dev/ttyUSB0", "COM1"})
	want := []string{"/dev/ttyUSB0", "/dev/ttyUSB1", "COM1", "COM2", "COM3", "COM10"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSortNamesEmpty(t *testing.T) {
	if got := SortNames(nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
	if got := SortNames([]string{"", "  "}); got != nil {
		t.Errorf("expected nil for blank names, got %v", got)
	}
}

func TestPortNamesFromEnumerator(t *testing.T) {
	l, registryCalls := fakeLister(SourceEnumerator, []PortInfo{{Name: "COM4"}, {Name: "COM3", IsUSB: true}}, nil, []string{"COM9"})

	got := l.PortNames()
	want := []string{"COM3", "COM4"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if *registryCalls != 0 {
		t.Errorf("registry should not be read when the enumerator succeeds, got %d calls", *registryCalls)
	}
}

func TestPortNamesEnumeratorErrorFallsBackToRegistry(t *testing.T) {
	l, registryCalls := fakeLister(SourceEnumerator, nil, errors.New("enumeration failed"), []string{"COM7"})

	got := l.PortNames()
	if !reflect.DeepEqual(got, []string{"COM7"}) {
		t.Errorf("expected registry ports, got %v", got)
	}
	if *registryCalls != 1 {
		t.Errorf("expected 1 registry call, got %d", *registryCalls)
	}
}

func TestPortNamesEnumeratorEmptyDoesNotFallBack(t *testing.T) {
	l, registryCalls := fakeLister(SourceEnumerator, nil, nil, []string{"COM7"})

	if got := l.PortNames(); got != nil {
		t.Errorf("expected no ports, got %v", got)
	}
	if *registryCalls != 0 {
		t.Errorf("expected no registry call, got %d", *registryCalls)
	}
}

func TestPortNamesAutoFallsBackWhenEmpty(t *testing.T) {
	l, _ := fakeLister(SourceAuto, nil, nil, []string{"COM12", "COM2"})

	got := l.PortNames()
	want := []string{"COM2", "COM12"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPortNamesRegistryOnly(t *testing.T) {
	l, _ := fakeLister(SourceRegistry, []PortInfo{{Name: "COM1"}}, nil, nil)

	if got := l.PortNames(); got != nil {
		t.Errorf("expected registry source to ignore the enumerator, got %v", got)
	}
}

func TestParseSource(t *testing.T) {
	tests := []struct {
		in      string
		want    Source
		wantErr bool
	}{
		{"", SourceEnumerator, false},
		{"enumerator", SourceEnumerator, false},
		{"Registry", SourceRegistry, false},
		{" auto ", SourceAuto, false},
		{"wmi", "", true},
	}

	for _, tt := range tests {
		got, err := ParseSource(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSource(%q): unexpected error state: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseSource(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestPortsKeepUSBDetails(t *testing.T) {
	l, _ := fakeLister(SourceEnumerator, []PortInfo{
		{Name: "COM10"},
		{Name: "COM3", IsUSB: true, VID: "2341", PID: "0043", SerialNumber: "7573"},
		{Name: "COM3"},
	}, nil, nil)

	got := l.Ports()
	want := []PortInfo{
		{Name: "COM3", IsUSB: true, VID: "2341", PID: "0043", SerialNumber: "7573"},
		{Name: "COM10"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestPortsFromRegistryCarryOnlyNames(t *testing.T) {
	l, _ := fakeLister(SourceRegistry, nil, nil, []string{"COM4"})

	got := l.Ports()
	if !reflect.DeepEqual(got, []PortInfo{{Name: "COM4"}}) {
		t.Errorf("expected a name-only port, got %+v", got)
	}
}
