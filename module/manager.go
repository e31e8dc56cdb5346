// The module registry: registration, lookup, ports, and child records.
package module

import "fmt"

// record is one registered module.
type record struct {
	name     string
	ports    []Port
	portSet  map[string]struct{}
	children []ChildInstance
}

// Manager owns every module generated during a run.
type Manager struct {
	modules []record
	byName  map[string]ModuleID
}

// NewManager returns an empty module registry.
func NewManager() *Manager {
	return &Manager{byName: make(map[string]ModuleID)}
}

// AddModule registers a new, empty module under name.
// Returns ErrDuplicateModule when the name is already taken.
func (m *Manager) AddModule(name string) (ModuleID, error) {
	if name == "" {
		return InvalidModuleID, fmt.Errorf("empty module name: %w", ErrInvalidPort)
	}
	if _, dup := m.byName[name]; dup {
		return InvalidModuleID, fmt.Errorf("module %q: %w", name, ErrDuplicateModule)
	}
	id := ModuleID(len(m.modules))
	m.modules = append(m.modules, record{name: name, portSet: make(map[string]struct{})})
	m.byName[name] = id

	return id, nil
}

// AddPort appends a port to a module's declaration list.
// Returns ErrModuleNotFound, ErrInvalidPort, or ErrDuplicatePort.
func (m *Manager) AddPort(id ModuleID, p Port) error {
	rec, err := m.record(id)
	if err != nil {
		return err
	}
	if p.Name == "" || p.Width < 1 {
		return fmt.Errorf("module %q port %q width %d: %w", rec.name, p.Name, p.Width, ErrInvalidPort)
	}
	if _, dup := rec.portSet[p.Name]; dup {
		return fmt.Errorf("module %q port %q: %w", rec.name, p.Name, ErrDuplicatePort)
	}
	rec.portSet[p.Name] = struct{}{}
	rec.ports = append(rec.ports, p)

	return nil
}

// AddChildModule records a completed parent/child relationship. It must be
// called after the corresponding instance has been emitted; the manager
// never emits from it.
func (m *Manager) AddChildModule(parent ModuleID, inst ChildInstance) error {
	rec, err := m.record(parent)
	if err != nil {
		return err
	}
	if _, err = m.record(inst.Child); err != nil {
		return err
	}
	rec.children = append(rec.children, inst)

	return nil
}

// FindModule resolves a module name; InvalidModuleID when absent.
// Lookups never create: an absent module is the caller's ordering bug.
func (m *Manager) FindModule(name string) ModuleID {
	if id, ok := m.byName[name]; ok {
		return id
	}

	return InvalidModuleID
}

// Valid reports whether id refers to a registered module.
func (m *Manager) Valid(id ModuleID) bool {
	return id.Valid() && int(id) < len(m.modules)
}

// Name returns a module's registered name.
func (m *Manager) Name(id ModuleID) (string, error) {
	rec, err := m.record(id)
	if err != nil {
		return "", err
	}

	return rec.name, nil
}

// Ports returns a module's ports in declaration order.
func (m *Manager) Ports(id ModuleID) ([]Port, error) {
	rec, err := m.record(id)
	if err != nil {
		return nil, err
	}
	out := make([]Port, len(rec.ports))
	copy(out, rec.ports)

	return out, nil
}

// Port resolves one of a module's ports by name.
func (m *Manager) Port(id ModuleID, name string) (Port, error) {
	rec, err := m.record(id)
	if err != nil {
		return Port{}, err
	}
	for _, p := range rec.ports {
		if p.Name == name {
			return p, nil
		}
	}

	return Port{}, fmt.Errorf("module %q port %q: %w", rec.name, name, ErrModuleNotFound)
}

// Children returns a module's recorded child instances in record order.
func (m *Manager) Children(id ModuleID) ([]ChildInstance, error) {
	rec, err := m.record(id)
	if err != nil {
		return nil, err
	}
	out := make([]ChildInstance, len(rec.children))
	copy(out, rec.children)

	return out, nil
}

// NumModules returns the number of registered modules.
func (m *Manager) NumModules() int { return len(m.modules) }

// record resolves an id to its mutable slot.
func (m *Manager) record(id ModuleID) (*record, error) {
	if !m.Valid(id) {
		return nil, fmt.Errorf("module id %d: %w", id, ErrModuleNotFound)
	}

	return &m.modules[id], nil
}
