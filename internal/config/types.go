package config

// Manifest describes a host project for the CLI: its identity, the host tool
// version it runs under, the capabilities applied to it, and its dependency
// configurations.
type Manifest struct {
	Name           string              `yaml:"name" validate:"required,min=1,max=100"`
	HostVersion    string              `yaml:"host_version" validate:"required,semver"`
	Capabilities   []string            `yaml:"capabilities,omitempty" validate:"omitempty,dive,capability_id"`
	Configurations []ConfigurationSpec `yaml:"configurations,omitempty" validate:"omitempty,dive"`

	// AvailableModules is the set of modules the resolver can locate.
	// Declared modules outside this set resolve as unresolved.
	AvailableModules []string `yaml:"available_modules,omitempty" validate:"omitempty,dive,module_id"`
}

// ConfigurationSpec declares one named dependency configuration.
type ConfigurationSpec struct {
	Name    string   `yaml:"name" validate:"required,configuration_name"`
	Modules []string `yaml:"modules,omitempty" validate:"omitempty,dive,module_id"`
}
