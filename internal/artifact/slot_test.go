package artifact

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/buildwire/internal/host"
)

func TestSlotEmptyRead(t *testing.T) {
	t.Parallel()

	slot := NewSlot(&host.ArtifactSet{})
	_, ok := slot.Get()
	require.False(t, ok)
}

func TestSlotLastWriteWins(t *testing.T) {
	t.Parallel()

	set := &host.ArtifactSet{}
	slot := NewSlot(set)

	first := host.Artifact{Name: "demo-boot", Type: "tgz", Path: "build/dist/demo-boot.tgz"}
	second := host.Artifact{Name: "demo-boot", Type: "bundle", Path: "build/dist/demo-boot.bundle"}
	third := host.Artifact{Name: "renamed-boot", Type: "bundle", Path: "build/dist/renamed-boot.bundle"}

	slot.Set(first)
	slot.Set(second)
	slot.Set(third)

	got, ok := slot.Get()
	require.True(t, ok)
	require.Equal(t, third, got)

	// The backing set carries only the winner.
	require.Equal(t, []host.Artifact{third}, set.List())
}

func TestSlotLeavesForeignArtifactsAlone(t *testing.T) {
	t.Parallel()

	set := &host.ArtifactSet{}
	foreign := host.Artifact{Name: "sources", Type: "zip", Path: "build/dist/sources.zip"}
	set.Add(foreign)

	slot := NewSlot(set)
	published := host.Artifact{Name: "demo-boot", Type: "tgz", Path: "build/dist/demo-boot.tgz"}
	slot.Set(published)

	require.ElementsMatch(t, []host.Artifact{foreign, published}, set.List())
}
