package host

import (
	"fmt"
)

// ModuleID identifies a dependency module, conventionally group:name:version.
type ModuleID string

// Resolver decides whether a declared module can be located.
type Resolver interface {
	Resolve(m ModuleID) bool
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(m ModuleID) bool

func (f ResolverFunc) Resolve(m ModuleID) bool {
	return f(m)
}

// ResolutionCallback observes the outcome of a configuration resolution pass.
// The unresolved slice holds the declared modules the resolver could not
// locate; it is empty when resolution was complete.
type ResolutionCallback func(configuration string, unresolved []ModuleID)

// ConfigurationContainer manages a project's named dependency configurations.
type ConfigurationContainer struct {
	order           []string
	byName          map[string]*Configuration
	eachHooks       []func(c *Configuration)
	resolutionHooks []ResolutionCallback
}

func newConfigurationContainer() *ConfigurationContainer {
	return &ConfigurationContainer{byName: make(map[string]*Configuration)}
}

// Create declares a new named configuration. Duplicate names are an error.
func (cc *ConfigurationContainer) Create(name string) (*Configuration, error) {
	if _, exists := cc.byName[name]; exists {
		return nil, fmt.Errorf("configuration '%s' already exists", name)
	}

	c := &Configuration{
		name:       name,
		container:  cc,
		attributes: make(map[string]string),
		artifacts:  &ArtifactSet{},
	}
	cc.byName[name] = c
	cc.order = append(cc.order, name)

	for _, fn := range cc.eachHooks {
		fn(c)
	}
	return c, nil
}

// Get retrieves a configuration by name.
func (cc *ConfigurationContainer) Get(name string) (*Configuration, bool) {
	c, ok := cc.byName[name]
	return c, ok
}

// Names returns configuration names in creation order.
func (cc *ConfigurationContainer) Names() []string {
	return append([]string(nil), cc.order...)
}

// Each applies fn to every existing configuration and to every configuration
// created afterwards.
func (cc *ConfigurationContainer) Each(fn func(c *Configuration)) {
	for _, name := range cc.order {
		fn(cc.byName[name])
	}
	cc.eachHooks = append(cc.eachHooks, fn)
}

// OnResolutionEvent registers fn to observe every resolution pass on every
// configuration in the container.
func (cc *ConfigurationContainer) OnResolutionEvent(fn ResolutionCallback) {
	cc.resolutionHooks = append(cc.resolutionHooks, fn)
}

func (cc *ConfigurationContainer) notifyResolved(c *Configuration, unresolved []ModuleID) {
	for _, fn := range cc.resolutionHooks {
		fn(c.name, unresolved)
	}
}

// Configuration is a named bucket of declared modules, attributes, and
// publishable artifacts.
type Configuration struct {
	name       string
	container  *ConfigurationContainer
	modules    []ModuleID
	attributes map[string]string
	artifacts  *ArtifactSet
}

// Name returns the configuration name.
func (c *Configuration) Name() string {
	return c.name
}

// DeclareModule adds a module dependency to the configuration.
func (c *Configuration) DeclareModule(m ModuleID) {
	c.modules = append(c.modules, m)
}

// Modules returns the declared modules in declaration order.
func (c *Configuration) Modules() []ModuleID {
	return append([]ModuleID(nil), c.modules...)
}

// SetAttribute records a named attribute on the configuration.
func (c *Configuration) SetAttribute(key, value string) {
	c.attributes[key] = value
}

// Attribute retrieves a named attribute.
func (c *Configuration) Attribute(key string) (string, bool) {
	v, ok := c.attributes[key]
	return v, ok
}

// Artifacts returns the configuration's artifact set.
func (c *Configuration) Artifacts() *ArtifactSet {
	return c.artifacts
}

// Resolve partitions the declared modules into located and unresolved using
// the supplied resolver, fires the container's resolution hooks, and returns
// the unresolved modules. Re-resolving is allowed; every pass fires hooks.
func (c *Configuration) Resolve(r Resolver) []ModuleID {
	var unresolved []ModuleID
	for _, m := range c.modules {
		if !r.Resolve(m) {
			unresolved = append(unresolved, m)
		}
	}
	c.container.notifyResolved(c, unresolved)
	return unresolved
}
