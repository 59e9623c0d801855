package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/rjsim/internal/physics"
)

const (
	DefaultMachinePath = "machine.yaml"
	DefaultPolymerPath = "polymer.yaml"

	MachineSection = "Machines"
	PolymerSection = "Polymers"
)

// Document keys.
const (
	KeyName            = "Name"
	KeyReservoirRadius = "Reservoir Radius"
	KeyCollectorRadius = "Collector Radius"
	KeyOrificeRadius   = "Orifice Radius"
	KeyAngularVelocity = "Angular Velocity"
	KeyDensity         = "Density"
	KeyViscosity       = "Viscosity"
	KeySurfaceTension  = "Surface Tension"
)

var (
	ErrMissingSection = errors.New("config: missing section")
	ErrMissingKey     = errors.New("config: missing key")
	ErrNotNumeric     = errors.New("config: value is not numeric")
	ErrFormat         = errors.New("config: unsupported document format")
	ErrNotMapping     = errors.New("config: section is not a mapping")
)

// KeyError locates a configuration failure.
type KeyError struct {
	Path    string
	Section string
	Key     string
	Wrapped error
}

func (e *KeyError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Section, e.Wrapped)
	}
	return fmt.Sprintf("%s: %s.%s: %v", e.Path, e.Section, e.Key, e.Wrapped)
}

func (e *KeyError) Unwrap() error {
	return e.Wrapped
}

// Document is one section of a key-value configuration file. Values are
// kept as their raw text and converted on lookup.
type Document struct {
	Path    string
	Section string
	values  map[string]string
}

// Load reads a YAML (.yaml, .yml) or INI (.ini) file and returns the named
// top-level section.
func Load(path, section string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var values map[string]string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ini":
		values, err = parseINI(data, section)
	case ".yaml", ".yml", "":
		values, err = parseYAML(data, section)
	default:
		return nil, fmt.Errorf("%w: %s", ErrFormat, path)
	}
	if err != nil {
		var ke *KeyError
		if errors.As(err, &ke) {
			ke.Path = path
			return nil, ke
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &Document{Path: path, Section: section, values: values}, nil
}

func parseYAML(data []byte, section string) (map[string]string, error) {
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	node, ok := doc[section]
	if !ok {
		return nil, &KeyError{Section: section, Wrapped: ErrMissingSection}
	}
	if node.Kind != yaml.MappingNode {
		return nil, &KeyError{Section: section, Wrapped: fmt.Errorf("%w (got %s)", ErrNotMapping, kindName(node.Kind))}
	}

	var sec map[string]yaml.Node
	if err := node.Decode(&sec); err != nil {
		return nil, &KeyError{Section: section, Wrapped: err}
	}

	values := make(map[string]string, len(sec))
	for k, n := range sec {
		if n.Kind != yaml.ScalarNode {
			// Non-scalar values are kept visible so lookups report them as non-numeric.
			values[k] = fmt.Sprintf("<%s>", kindName(n.Kind))
			continue
		}
		values[k] = n.Value
	}
	return values, nil
}

func parseINI(data []byte, section string) (map[string]string, error) {
	f, err := ini.Load(data)
	if err != nil {
		return nil, err
	}
	sec, err := f.GetSection(section)
	if err != nil {
		return nil, &KeyError{Section: section, Wrapped: ErrMissingSection}
	}

	values := make(map[string]string, len(sec.Keys()))
	for _, k := range sec.Keys() {
		values[k.Name()] = k.Value()
	}
	return values, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.AliasNode:
		return "alias"
	case yaml.ScalarNode:
		return "scalar"
	default:
		return "document"
	}
}

func (d *Document) keyErr(key string, err error) error {
	return &KeyError{Path: d.Path, Section: d.Section, Key: key, Wrapped: err}
}

// String returns the raw value of key.
func (d *Document) String(key string) (string, error) {
	v, ok := d.values[key]
	if !ok {
		return "", d.keyErr(key, ErrMissingKey)
	}
	return v, nil
}

// Float returns key converted to float64. Numeric strings such as "1e-3"
// are accepted.
func (d *Document) Float(key string) (float64, error) {
	v, err := d.String(key)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, d.keyErr(key, fmt.Errorf("%w: %q", ErrNotNumeric, v))
	}
	return f, nil
}

type floatField struct {
	key string
	dst *float64
}

// Machine reads the machine parameters. The angular velocity is only
// looked up when withOmega is set.
func (d *Document) Machine(withOmega bool) (physics.Machine, error) {
	var m physics.Machine
	var err error

	if m.Name, err = d.String(KeyName); err != nil {
		return m, err
	}
	fields := []floatField{
		{KeyReservoirRadius, &m.ReservoirRadius},
		{KeyCollectorRadius, &m.CollectorRadius},
		{KeyOrificeRadius, &m.OrificeRadius},
	}
	if withOmega {
		fields = append(fields, floatField{KeyAngularVelocity, &m.AngularVelocity})
	}
	for _, f := range fields {
		if *f.dst, err = d.Float(f.key); err != nil {
			return m, err
		}
	}
	return m, nil
}

// Polymer reads the polymer parameters. The dynamic viscosity is only
// looked up when withViscosity is set.
func (d *Document) Polymer(withViscosity bool) (physics.Polymer, error) {
	var p physics.Polymer
	var err error

	if p.Name, err = d.String(KeyName); err != nil {
		return p, err
	}
	if p.Density, err = d.Float(KeyDensity); err != nil {
		return p, err
	}
	if withViscosity {
		if p.Viscosity, err = d.Float(KeyViscosity); err != nil {
			return p, err
		}
	}
	if p.SurfaceTension, err = d.Float(KeySurfaceTension); err != nil {
		return p, err
	}
	return p, nil
}

// LoadMachine loads path and reads the Machines section.
func LoadMachine(path string, withOmega bool) (physics.Machine, error) {
	d, err := Load(path, MachineSection)
	if err != nil {
		return physics.Machine{}, err
	}
	return d.Machine(withOmega)
}

// LoadPolymer loads path and reads the Polymers section.
func LoadPolymer(path string, withViscosity bool) (physics.Polymer, error) {
	d, err := Load(path, PolymerSection)
	if err != nil {
		return physics.Polymer{}, err
	}
	return d.Polymer(withViscosity)
}
