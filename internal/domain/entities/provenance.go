package entities

// ProvenanceMap is the closure of physical files reachable from one entry
// manifest via include directives, including the entry file itself. Files
// are keyed by their name relative to the entry manifest's directory and
// kept in discovery order.
type ProvenanceMap struct {
	names []string
	files map[string]*ParsedRequirements
}

// NewProvenanceMap creates an empty provenance map.
func NewProvenanceMap() *ProvenanceMap {
	return &ProvenanceMap{files: make(map[string]*ParsedRequirements)}
}

// Add records one parsed file under its relative name.
func (it *ProvenanceMap) Add(name string, parsed *ParsedRequirements) {
	if _, ok := it.files[name]; ok {
		return
	}
	it.names = append(it.names, name)
	it.files[name] = parsed
}

// Names returns the relative file names in discovery order, entry first.
func (it *ProvenanceMap) Names() []string {
	out := make([]string, len(it.names))
	copy(out, it.names)
	return out
}

// File returns the parsed requirements for a relative name, or nil.
func (it *ProvenanceMap) File(name string) *ParsedRequirements {
	return it.files[name]
}

// Len returns the number of files in the closure.
func (it *ProvenanceMap) Len() int { return len(it.names) }
