package boot

import (
	"github.com/alexisbeaulieu97/buildwire/internal/host"
)

// Extension is the DSL object the plugin registers on the project under
// ExtensionName. Build scripts mutate its fields; actions read them lazily at
// execution time, so a script may set them before or after the capability
// that consumes them appears.
type Extension struct {
	project *host.Project

	// MainEntry is the entry point launched by the boot archive.
	MainEntry string

	// ArchiveBaseName overrides the base name used for boot archives.
	// Empty means the project name.
	ArchiveBaseName string
}

// NewExtension creates the extension for a project.
func NewExtension(project *host.Project) *Extension {
	return &Extension{project: project}
}

// BaseName returns the effective archive base name.
func (e *Extension) BaseName() string {
	if e.ArchiveBaseName != "" {
		return e.ArchiveBaseName
	}
	return e.project.Name()
}

// ExtensionFrom retrieves the boot extension previously created on project.
func ExtensionFrom(project *host.Project) (*Extension, bool) {
	raw, ok := project.Extension(ExtensionName)
	if !ok {
		return nil, false
	}
	ext, ok := raw.(*Extension)
	return ext, ok
}
