package boot

import (
	"fmt"
	"path"

	"github.com/alexisbeaulieu97/buildwire/internal/artifact"
	"github.com/alexisbeaulieu97/buildwire/internal/host"
)

// Capabilities the boot plugin reacts to. A project normally carries at most
// one of the archive-producing capabilities; nothing enforces that, and when
// both appear the later one wins the published-artifact slot.
const (
	CapabilityBinary   host.Capability = "binary"
	CapabilityWebApp   host.Capability = "webapp"
	CapabilityPublish  host.Capability = "publish"
	CapabilityLockfile host.Capability = "lockfile"
	CapabilityLauncher host.Capability = "launcher"
)

// Attribute keys written by the actions.
const (
	AttributeUploadTask      = "upload.task"
	AttributeDependencyLocks = "dependency-locks"
	AttributeLaunchScript    = "launch-script"
)

// binaryAction publishes the executable boot archive when the binary
// capability appears.
type binaryAction struct {
	slot *artifact.Slot
	ext  *Extension
}

func (a *binaryAction) Capability() host.Capability {
	return CapabilityBinary
}

func (a *binaryAction) Execute(p *host.Project) error {
	base := a.ext.BaseName()
	a.slot.Set(host.Artifact{
		Name: base + "-boot",
		Type: "tgz",
		Path: path.Join("build", "dist", base+"-boot.tgz"),
	})
	return nil
}

// webAppAction publishes the deployable web bundle. When it runs after
// binaryAction it replaces the executable archive in the slot.
type webAppAction struct {
	slot *artifact.Slot
	ext  *Extension
}

func (a *webAppAction) Capability() host.Capability {
	return CapabilityWebApp
}

func (a *webAppAction) Execute(p *host.Project) error {
	base := a.ext.BaseName()
	a.slot.Set(host.Artifact{
		Name: base + "-boot",
		Type: "bundle",
		Path: path.Join("build", "dist", base+"-boot.bundle"),
	})
	return nil
}

// publishAction marks the archives configuration for upload.
type publishAction struct {
	configuration string
}

func (a *publishAction) Capability() host.Capability {
	return CapabilityPublish
}

func (a *publishAction) Execute(p *host.Project) error {
	cfg, ok := p.Configurations().Get(a.configuration)
	if !ok {
		return fmt.Errorf("configuration '%s' not found", a.configuration)
	}
	cfg.SetAttribute(AttributeUploadTask, UploadBootArchivesTaskName)
	return nil
}

// lockfileAction enforces dependency locks on every configuration, including
// ones created after the action runs.
type lockfileAction struct{}

func (a *lockfileAction) Capability() host.Capability {
	return CapabilityLockfile
}

func (a *lockfileAction) Execute(p *host.Project) error {
	p.Configurations().Each(func(c *host.Configuration) {
		c.SetAttribute(AttributeDependencyLocks, "enforced")
	})
	return nil
}

// launcherAction defaults the extension's entry point and asks for an
// embedded launch script on the boot archives.
type launcherAction struct {
	ext *Extension
}

func (a *launcherAction) Capability() host.Capability {
	return CapabilityLauncher
}

func (a *launcherAction) Execute(p *host.Project) error {
	if a.ext.MainEntry == "" {
		a.ext.MainEntry = "main"
	}

	cfg, ok := p.Configurations().Get(BootArchivesConfigurationName)
	if !ok {
		return fmt.Errorf("configuration '%s' not found", BootArchivesConfigurationName)
	}
	cfg.SetAttribute(AttributeLaunchScript, "embedded")
	return nil
}
