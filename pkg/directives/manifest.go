package directives

// Manifest is the outcome of parsing one file's directives
type Manifest struct {
	// Included paths in first-seen order, without duplicates
	Included []string
	// Excluded paths
	Excluded map[string]struct{}

	seen map[string]struct{}
}

// NewManifest returns an empty manifest
func NewManifest() *Manifest {
	return &Manifest{
		Excluded: make(map[string]struct{}),
		seen:     make(map[string]struct{}),
	}
}

// Include records p unless it was already included
func (m *Manifest) Include(p string) {
	if m.seen == nil {
		m.seen = make(map[string]struct{})
	}
	if _, ok := m.seen[p]; ok {
		return
	}
	m.seen[p] = struct{}{}
	m.Included = append(m.Included, p)
}

// Exclude records p as excluded. Position does not matter: an exclude
// after a require still removes the path.
func (m *Manifest) Exclude(p string) {
	if m.Excluded == nil {
		m.Excluded = make(map[string]struct{})
	}
	m.Excluded[p] = struct{}{}
}

// IsExcluded reports whether p was excluded
func (m *Manifest) IsExcluded(p string) bool {
	_, ok := m.Excluded[p]
	return ok
}

// Files returns the final file list: Included minus Excluded, each path
// once, in first-seen order. It is never nil.
func (m *Manifest) Files() []string {
	files := make([]string, 0, len(m.Included))
	seen := make(map[string]struct{}, len(m.Included))
	for _, p := range m.Included {
		if m.IsExcluded(p) {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}
	return files
}
