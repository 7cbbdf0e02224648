package htmlrender

import (
	"strings"

	"github.com/npillmayer/mdxe/core/option"
)

// Reference is a link definition for reference-style links and images.
type Reference struct {
	Destination string
	Title       option.Maybe[string]
}

// References resolves reference identifiers to link definitions.
type References interface {
	Lookup(id string) (Reference, bool)
}

// ReferenceMap is a References implementation. Identifiers are matched
// case-insensitively, and runs of whitespace in identifiers are
// treated as a single space.
type ReferenceMap map[string]Reference

// Add enters a link definition for id.
func (m ReferenceMap) Add(id string, dest string, title string) {
	ref := Reference{Destination: dest, Title: option.Nothing[string]()}
	if title != "" {
		ref.Title = option.Something(title)
	}
	m[normalizeID(id)] = ref
}

// Lookup finds the link definition for id.
func (m ReferenceMap) Lookup(id string) (Reference, bool) {
	ref, ok := m[normalizeID(id)]
	return ref, ok
}

func normalizeID(id string) string {
	return strings.ToLower(strings.Join(strings.Fields(id), " "))
}

type noReferences struct{}

func (noReferences) Lookup(string) (Reference, bool) {
	return Reference{}, false
}
