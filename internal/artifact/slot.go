package artifact

import (
	"github.com/alexisbeaulieu97/buildwire/internal/host"
)

// Slot is a single-slot holder for the one artifact a project publishes.
// Multiple actions may write it; the last write before the host reads the
// value wins. The slot keeps the backing artifact set in step: setting a new
// artifact removes the previously published one, so the set never carries
// more than one slot-managed artifact.
//
// Which writer wins depends on the host's plugin-application order, not on
// registration order. The slot does not arbitrate between writers.
type Slot struct {
	artifacts *host.ArtifactSet
	current   *host.Artifact
}

// NewSlot creates a slot backed by the given artifact set.
func NewSlot(artifacts *host.ArtifactSet) *Slot {
	return &Slot{artifacts: artifacts}
}

// Set publishes a, replacing any previously published artifact.
func (s *Slot) Set(a host.Artifact) {
	if s.current != nil {
		s.artifacts.Remove(*s.current)
	}
	s.artifacts.Add(a)
	published := a
	s.current = &published
}

// Get returns the most recently published artifact, if any.
func (s *Slot) Get() (host.Artifact, bool) {
	if s.current == nil {
		return host.Artifact{}, false
	}
	return *s.current, true
}
