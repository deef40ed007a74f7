package host

import (
	"fmt"
)

// Capability identifies a detectable plugin or component type on a project.
// Membership is set-like; capabilities carry no ordering.
type Capability string

// CapabilityCallback reacts to a capability becoming present on a project.
type CapabilityCallback func(p *Project) error

// Project models the host build tool's per-project object graph: the
// extension container, the configuration container, the capability set, and
// the build lifecycle hooks plugins subscribe to. All methods are invoked on
// the host's single build-orchestration thread; there is no locking here.
type Project struct {
	name           string
	hostVersion    string
	extensions     map[string]any
	configurations *ConfigurationContainer
	capabilities   map[Capability]struct{}
	watchers       map[Capability][]CapabilityCallback
	finishHooks    []func(p *Project)
	finished       bool
}

// NewProject creates a project for the given name and host tool version.
func NewProject(name, hostVersion string) *Project {
	return &Project{
		name:           name,
		hostVersion:    hostVersion,
		extensions:     make(map[string]any),
		configurations: newConfigurationContainer(),
		capabilities:   make(map[Capability]struct{}),
		watchers:       make(map[Capability][]CapabilityCallback),
	}
}

// Name returns the project name.
func (p *Project) Name() string {
	return p.name
}

// HostVersion returns the version of the host build tool running the project.
func (p *Project) HostVersion() string {
	return p.hostVersion
}

// Configurations returns the project's configuration container.
func (p *Project) Configurations() *ConfigurationContainer {
	return p.configurations
}

// CreateExtension registers a named extension object on the project.
func (p *Project) CreateExtension(name string, ext any) error {
	if _, exists := p.extensions[name]; exists {
		return fmt.Errorf("extension '%s' already created", name)
	}
	p.extensions[name] = ext
	return nil
}

// Extension retrieves a previously created extension by name.
func (p *Project) Extension(name string) (any, bool) {
	ext, ok := p.extensions[name]
	return ext, ok
}

// HasCapability reports whether the capability is currently present.
func (p *Project) HasCapability(c Capability) bool {
	_, ok := p.capabilities[c]
	return ok
}

// Capabilities returns the present capabilities. Arrival order is not
// tracked; callers needing order must record it themselves.
func (p *Project) Capabilities() []Capability {
	out := make([]Capability, 0, len(p.capabilities))
	for c := range p.capabilities {
		out = append(out, c)
	}
	return out
}

// OnCapabilityPresent registers fn to run when the capability becomes
// present. If the capability is already present, fn runs immediately and its
// error is returned. The host may report presence more than once; callbacks
// that must run at most once guard themselves.
func (p *Project) OnCapabilityPresent(c Capability, fn CapabilityCallback) error {
	if p.HasCapability(c) {
		if err := fn(p); err != nil {
			return err
		}
	}
	p.watchers[c] = append(p.watchers[c], fn)
	return nil
}

// AddCapability marks the capability present and notifies its watchers in
// registration order. A watcher error aborts notification immediately and is
// returned to the caller unmodified.
func (p *Project) AddCapability(c Capability) error {
	p.capabilities[c] = struct{}{}
	for _, fn := range p.watchers[c] {
		if err := fn(p); err != nil {
			return err
		}
	}
	return nil
}

// OnBuildFinished registers fn to run when the build completes.
func (p *Project) OnBuildFinished(fn func(p *Project)) {
	p.finishHooks = append(p.finishHooks, fn)
}

// FinishBuild runs the build-finish hooks. Only the first call has any
// effect; the finished state is terminal.
func (p *Project) FinishBuild() {
	if p.finished {
		return
	}
	p.finished = true
	for _, fn := range p.finishHooks {
		fn(p)
	}
}

// Finished reports whether FinishBuild has run.
func (p *Project) Finished() bool {
	return p.finished
}
