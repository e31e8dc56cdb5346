// Library registration and lookup. Write-once-per-name, read-many.
package circuit

import "fmt"

// Library registers circuit models and resolves them by ModelID or name.
// Registration order is preserved: Models() iterates in the order models
// were added, which keeps downstream artifacts reproducible across runs.
type Library struct {
	models []Model
	byName map[string]ModelID
}

// NewLibrary returns an empty model registry.
func NewLibrary() *Library {
	return &Library{byName: make(map[string]ModelID)}
}

// AddModel validates and registers m, returning its stable ModelID.
// Returns ErrInvalidModel for structurally broken records,
// ErrDuplicateModel when the name is taken, and ErrDuplicatePort when two
// ports of m share a name.
func (lib *Library) AddModel(m Model) (ModelID, error) {
	if m.Name == "" {
		return InvalidModelID, fmt.Errorf("empty model name: %w", ErrInvalidModel)
	}
	if m.Kind == KindMux && !m.PassGate.Valid() {
		return InvalidModelID, fmt.Errorf("mux model %q lacks a pass-gate binding: %w", m.Name, ErrInvalidModel)
	}
	seen := make(map[string]struct{}, len(m.Ports))
	for _, p := range m.Ports {
		if p.Name == "" || p.Width < 1 {
			return InvalidModelID, fmt.Errorf("model %q port %q: %w", m.Name, p.Name, ErrInvalidModel)
		}
		if _, dup := seen[p.Name]; dup {
			return InvalidModelID, fmt.Errorf("model %q port %q: %w", m.Name, p.Name, ErrDuplicatePort)
		}
		seen[p.Name] = struct{}{}
	}
	if _, dup := lib.byName[m.Name]; dup {
		return InvalidModelID, fmt.Errorf("model %q: %w", m.Name, ErrDuplicateModel)
	}
	id := ModelID(len(lib.models))
	lib.models = append(lib.models, m)
	lib.byName[m.Name] = id

	return id, nil
}

// Model resolves id to its fact record.
func (lib *Library) Model(id ModelID) (Model, error) {
	if !id.Valid() || int(id) >= len(lib.models) {
		return Model{}, fmt.Errorf("model id %d: %w", id, ErrModelNotFound)
	}

	return lib.models[id], nil
}

// FindModel resolves a model name; InvalidModelID when absent.
func (lib *Library) FindModel(name string) ModelID {
	if id, ok := lib.byName[name]; ok {
		return id
	}

	return InvalidModelID
}

// Models returns all registered ids in registration order.
func (lib *Library) Models() []ModelID {
	out := make([]ModelID, len(lib.models))
	for i := range lib.models {
		out[i] = ModelID(i)
	}

	return out
}

// PortsByKind returns the model's ports of the given kind, in declaration
// order. Global ports are excluded unless includeGlobal is set.
func (lib *Library) PortsByKind(id ModelID, kind PortKind, includeGlobal bool) ([]Port, error) {
	m, err := lib.Model(id)
	if err != nil {
		return nil, err
	}
	var out []Port
	for _, p := range m.Ports {
		if p.Kind != kind {
			continue
		}
		if p.Global && !includeGlobal {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

// GlobalPortsByKind returns only the model's global ports of the given kind.
func (lib *Library) GlobalPortsByKind(id ModelID, kind PortKind) ([]Port, error) {
	m, err := lib.Model(id)
	if err != nil {
		return nil, err
	}
	var out []Port
	for _, p := range m.Ports {
		if p.Kind == kind && p.Global {
			out = append(out, p)
		}
	}

	return out, nil
}

// NumConfigBits sums the widths of the model's configuration ports.
func (lib *Library) NumConfigBits(id ModelID) (int, error) {
	ports, err := lib.PortsByKind(id, PortConfig, true)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, p := range ports {
		total += p.Width
	}

	return total, nil
}
