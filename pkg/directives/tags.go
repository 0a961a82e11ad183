package directives

import (
	"regexp"
	"strings"
	"sync"
)

// Tag rewrites a path referenced by a directive. A tag whose pattern does
// not match must return its input unchanged.
type Tag func(path string) string

type tagEntry struct {
	name string
	tag  Tag
}

// TagRegistry holds named tags in registration order. Register and
// Deregister take the write lock; Apply only reads.
type TagRegistry struct {
	mu      sync.RWMutex
	entries []tagEntry
}

// NewTagRegistry creates an empty registry
func NewTagRegistry() *TagRegistry {
	return &TagRegistry{}
}

// Register adds a tag under name. Registering an existing name replaces its
// function and keeps its position in the chain.
func (r *TagRegistry) Register(name string, tag Tag) {
	if tag == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].name == name {
			r.entries[i].tag = tag
			return
		}
	}
	r.entries = append(r.entries, tagEntry{name: name, tag: tag})
}

// Deregister removes the named tag, reporting whether it existed
func (r *TagRegistry) Deregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].name == name {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Names lists the registered tags in application order
func (r *TagRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.name
	}
	return names
}

// Len returns the number of registered tags
func (r *TagRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Apply threads p through every tag in registration order, each tag
// receiving the previous one's output. A nil registry is the identity.
func (r *TagRegistry) Apply(p string) string {
	if r == nil {
		return p
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		p = e.tag(p)
	}
	return p
}

// PlaceholderTag rewrites {kind:NAME} into root/NAME, so with kind "theme"
// and root "themes" the path {theme:admin}/x.css becomes
// themes/admin/x.css. Paths without the placeholder pass through.
func PlaceholderTag(kind, root string) Tag {
	re := regexp.MustCompile(`\{` + regexp.QuoteMeta(kind) + `:([^{}/]+)\}`)

	replacement := "${1}"
	if root = strings.TrimRight(root, "/"); root != "" {
		replacement = strings.ReplaceAll(root, "$", "$$") + "/${1}"
	}

	return func(p string) string {
		if !strings.Contains(p, "{"+kind+":") {
			return p
		}
		return re.ReplaceAllString(p, replacement)
	}
}
