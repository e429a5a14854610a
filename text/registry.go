package text

import "sync"

// faceKey identifies a cached sized face.
type faceKey struct {
	family string
	size   float64
}

// Registry maps font family names to sources and caches sized faces.
// Resolving a face for an unregistered family returns the builtin bitmap
// face, so drawing always produces output.
type Registry struct {
	mu      sync.RWMutex
	sources map[string]*FontSource
	faces   map[faceKey]Face
	shaper  *Shaper
	builtin Face
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		sources: make(map[string]*FontSource),
		faces:   make(map[faceKey]Face),
		shaper:  NewShaper(),
		builtin: newBuiltinFace(),
	}
}

// Register adds a font source under its family name, replacing any
// previous source for that family. Cached faces for the family are
// invalidated.
func (r *Registry) Register(s *FontSource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources[s.family] = s
	for k := range r.faces {
		if k.family == s.family {
			delete(r.faces, k)
		}
	}
}

// Face resolves a parsed font to a sized face. Style keywords select the
// family as-is; register style variants under their own family names
// ("Go Mono Bold") if you need distinct faces per style.
func (r *Registry) Face(f Font) Face {
	key := faceKey{family: f.Family, size: f.Size}

	r.mu.RLock()
	if face, ok := r.faces[key]; ok {
		r.mu.RUnlock()
		return face
	}
	source, ok := r.sources[f.Family]
	r.mu.RUnlock()
	if !ok {
		return r.builtin
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if face, ok := r.faces[key]; ok {
		return face
	}
	face, err := newSourceFace(source, f.Size, r.shaper)
	if err != nil {
		return r.builtin
	}
	r.faces[key] = face
	return face
}
