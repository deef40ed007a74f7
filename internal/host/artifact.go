package host

// Artifact is a publishable build output reference.
type Artifact struct {
	Name string
	Type string
	Path string
}

// ArtifactSet holds the artifacts published by a configuration.
type ArtifactSet struct {
	items []Artifact
}

// Add appends an artifact to the set.
func (s *ArtifactSet) Add(a Artifact) {
	s.items = append(s.items, a)
}

// Remove deletes the first artifact equal to a and reports whether one was
// found.
func (s *ArtifactSet) Remove(a Artifact) bool {
	for i, item := range s.items {
		if item == a {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// List returns the artifacts in insertion order.
func (s *ArtifactSet) List() []Artifact {
	return append([]Artifact(nil), s.items...)
}

// Len returns the number of artifacts in the set.
func (s *ArtifactSet) Len() int {
	return len(s.items)
}
